package listing

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/Ramsha-Haris/table/internal/model"
)

// SortKey names a sortable column.
type SortKey string

// Sortable columns.
const (
	SortNone      SortKey = ""
	SortFirstName SortKey = "firstName"
	SortDate      SortKey = "date"
	SortTimeSlot  SortKey = "timeSlot"
)

// Direction is a sort direction.
type Direction string

// Directions.
const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortConfig is the active sort column and direction.
type SortConfig struct {
	Key       SortKey
	Direction Direction
}

// ParseSortKey validates a column name.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case SortFirstName, SortDate, SortTimeSlot:
		return k, nil
	default:
		return SortNone, fmt.Errorf("unknown sort key %q (want firstName, date, or timeSlot)", s)
	}
}

// Request returns the configuration after clicking the header for key:
// the same key while ascending flips to descending, anything else sorts
// ascending by key.
func (c SortConfig) Request(key SortKey) SortConfig {
	dir := Asc
	if c.Key == key && c.Direction == Asc {
		dir = Desc
	}
	return SortConfig{Key: key, Direction: dir}
}

// Sort returns a sorted copy of bookings. With no key the order is kept.
func Sort(bookings []model.Booking, cfg SortConfig) []model.Booking {
	out := append([]model.Booking(nil), bookings...)
	if cfg.Key == SortNone {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		return compare(out[i], out[j], cfg.Key) < 0
	})
	// Descending is the exact reverse of ascending, ties included.
	if cfg.Direction == Desc {
		slices.Reverse(out)
	}
	return out
}

func compare(a, b model.Booking, key SortKey) int {
	if key == SortDate {
		ta, okA := a.ParsedDate()
		tb, okB := b.ParsedDate()
		// Unparseable dates compare equal to everything, as NaN does.
		if !okA || !okB {
			return 0
		}
		return ta.Compare(tb)
	}
	return strings.Compare(strings.ToLower(field(a, key)), strings.ToLower(field(b, key)))
}

func field(b model.Booking, key SortKey) string {
	switch key {
	case SortFirstName:
		return b.FirstName
	case SortTimeSlot:
		return b.TimeSlot
	default:
		return ""
	}
}
