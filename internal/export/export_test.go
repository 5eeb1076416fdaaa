package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Ramsha-Haris/table/internal/model"
)

var bookings = []model.Booking{
	{
		ID: "b1", BookingNumber: "BK-1", FirstName: "Sara", LastName: "Ali",
		Guests: 4, Date: "2025-03-15T00:00:00.000Z", TimeSlot: "7:30 PM",
		Tables: model.Codes{"12", "7"}, Tags: []string{"VIP", "Family"}, Status: "Confirmed",
	},
	{ID: "b2", FirstName: "Zain", Date: "2025-03-16", TimeSlot: "1:00 PM"},
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("XLSX")
	require.NoError(t, err)
	assert.Equal(t, XLSX, f)
	_, err = ParseFormat("pdf")
	assert.Error(t, err)
}

func TestRow(t *testing.T) {
	row := Row(bookings[0])
	require.Len(t, row, len(Headers))
	assert.Equal(t, "2025-03-15", row[5])
	assert.Equal(t, "12, 7", row[8])
	assert.Equal(t, "VIP, Family", row[10])
	assert.Equal(t, "Unknown", Row(bookings[1])[11])
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, CSV, bookings))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, Headers, records[0])
	assert.Equal(t, "Sara", records[1][1])
	assert.Equal(t, "Zain", records[2][1])
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, XLSX, bookings))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Headers, rows[0])
	assert.Equal(t, "Confirmed", rows[1][11])
	assert.Equal(t, "12, 7", rows[1][8])
}

func TestFileName(t *testing.T) {
	now := time.Date(2025, 3, 14, 18, 5, 9, 0, time.UTC)
	assert.Equal(t, "bookings_2025-03-14_180509.csv", FileName(CSV, now))
}
