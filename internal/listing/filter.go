package listing

import (
	"strings"

	"github.com/Ramsha-Haris/table/internal/model"
)

// TabAll is the status tab that disables status filtering.
const TabAll = "All"

// Criteria is the filter configuration. Dates are "YYYY-MM-DD"; empty
// values disable the corresponding filter. Today is the local calendar date
// used by TodayOnly.
type Criteria struct {
	Search    string
	StartDate string
	EndDate   string
	Tab       string
	TodayOnly bool
	Today     string
}

// Filter returns the bookings matching every active criterion, in order.
func Filter(bookings []model.Booking, c Criteria) []model.Booking {
	out := make([]model.Booking, 0, len(bookings))
	for _, b := range bookings {
		if Matches(b, c) {
			out = append(out, b)
		}
	}
	return out
}

// Matches reports whether a single booking passes the criteria.
func Matches(b model.Booking, c Criteria) bool {
	return matchesSearch(b, c.Search) &&
		matchesTab(b, c.Tab) &&
		inRange(b, c.StartDate, c.EndDate) &&
		(!c.TodayOnly || b.DateOnly() == c.Today)
}

// matchesSearch is a case-insensitive substring match on the guest's first
// name, or a substring match on any assigned table code.
func matchesSearch(b model.Booking, q string) bool {
	if strings.Contains(strings.ToLower(b.FirstName), strings.ToLower(q)) {
		return true
	}
	for _, code := range b.Tables {
		if strings.Contains(code, q) {
			return true
		}
	}
	return false
}

func matchesTab(b model.Booking, tab string) bool {
	if tab == "" || strings.EqualFold(tab, TabAll) {
		return true
	}
	return strings.EqualFold(b.StatusLabel(), tab)
}

// inRange compares calendar days, so both bounds include the whole day.
func inRange(b model.Booking, start, end string) bool {
	if start == "" && end == "" {
		return true
	}
	t, ok := b.ParsedDate()
	if !ok {
		return false
	}
	day := t.UTC().Format("2006-01-02")
	if start != "" && day < start {
		return false
	}
	if end != "" && day > end {
		return false
	}
	return true
}
