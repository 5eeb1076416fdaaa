package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Ramsha-Haris/table/internal/listing"
	"github.com/Ramsha-Haris/table/internal/model"
)

// Format is an export file format.
type Format string

// Formats.
const (
	CSV  Format = "csv"
	XLSX Format = "xlsx"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case CSV, XLSX:
		return f, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want csv or xlsx)", s)
	}
}

// SheetName is the worksheet holding the bookings.
const SheetName = "Bookings"

// Headers are the exported columns.
var Headers = []string{
	"Booking #", "First Name", "Last Name", "Contact", "Guests", "Date",
	"Time Slot", "Duration", "Tables", "Type", "Tags", "Status", "Notes",
}

// Row renders one booking in Headers order.
func Row(b model.Booking) []string {
	return []string{
		b.BookingNumber,
		b.FirstName,
		b.LastName,
		b.Contact,
		strconv.Itoa(b.Guests.Int()),
		b.DateOnly(),
		b.TimeSlot,
		strconv.Itoa(b.Duration.Int()),
		b.Tables.String(),
		b.Type,
		strings.Join(b.Tags, ", "),
		b.StatusLabel(),
		b.Notes,
	}
}

// FileName is the default output name for an export made at now.
func FileName(f Format, now time.Time) string {
	return fmt.Sprintf("bookings_%s.%s", now.Format("2006-01-02_150405"), f)
}

// Write encodes bookings in format f.
func Write(w io.Writer, f Format, bookings []model.Booking) error {
	switch f {
	case CSV:
		return WriteCSV(w, bookings)
	case XLSX:
		return WriteXLSX(w, bookings)
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
}

// WriteCSV writes a header row followed by one row per booking.
func WriteCSV(w io.Writer, bookings []model.Booking) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Headers); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, b := range bookings {
		if err := cw.Write(Row(b)); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", b.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}

var fills = map[string]string{
	"success":   "#E2EFDA",
	"danger":    "#F8CBAD",
	"warning":   "#FFF2CC",
	"secondary": "#EDEDED",
	"dark":      "#D9D9D9",
}

// WriteXLSX writes a workbook with a styled header and status cells shaded
// by status.
func WriteXLSX(w io.Writer, bookings []model.Booking) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &Headers); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(Headers), 1)
	if err := f.SetCellStyle(SheetName, "A1", last, header); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	statusCol := len(Headers) - 1
	styles := map[string]int{}
	for i, b := range bookings {
		row := Row(b)
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}

		color := listing.StatusColor(b.StatusLabel())
		id, ok := styles[color]
		if !ok {
			id, err = f.NewStyle(&excelize.Style{
				Fill: excelize.Fill{Type: "pattern", Color: []string{fills[color]}, Pattern: 1},
			})
			if err != nil {
				return fmt.Errorf("creating status style: %w", err)
			}
			styles[color] = id
		}
		status, _ := excelize.CoordinatesToCellName(statusCol, i+2)
		if err := f.SetCellStyle(SheetName, status, status, id); err != nil {
			return fmt.Errorf("styling status cell: %w", err)
		}
	}

	if err := f.SetColWidth(SheetName, "A", "M", 16); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
