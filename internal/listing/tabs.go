package listing

import (
	"strings"

	"github.com/Ramsha-Haris/table/internal/model"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Tab is one status tab with its booking count.
type Tab struct {
	Status string
	Count  int
	Color  string
}

// Label renders the tab as "Confirmed (1,204)".
func (t Tab) Label() string {
	return printer.Sprintf("%s (%d)", t.Status, t.Count)
}

// Statuses returns "All" followed by the distinct status labels in the
// order they first appear.
func Statuses(bookings []model.Booking) []string {
	out := []string{TabAll}
	seen := map[string]bool{}
	for _, b := range bookings {
		s := b.StatusLabel()
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// Counts maps each status label to its number of bookings.
func Counts(bookings []model.Booking) map[string]int {
	out := map[string]int{}
	for _, b := range bookings {
		out[b.StatusLabel()]++
	}
	return out
}

// Tabs combines Statuses and Counts; the All tab counts every booking.
func Tabs(bookings []model.Booking) []Tab {
	counts := Counts(bookings)
	var out []Tab
	for _, s := range Statuses(bookings) {
		n := counts[s]
		if s == TabAll {
			n = len(bookings)
		}
		out = append(out, Tab{Status: s, Count: n, Color: StatusColor(s)})
	}
	return out
}

// StatusColor returns the badge color class for a status.
func StatusColor(status string) string {
	switch strings.ToLower(status) {
	case "confirmed":
		return "success"
	case "cancelled":
		return "danger"
	case "wait list":
		return "warning"
	case "not confirmed":
		return "secondary"
	default:
		return "dark"
	}
}
