package model

import (
	"strings"
	"time"
)

// Booking statuses.
const (
	StatusNotConfirmed = "Not Confirmed"
	StatusConfirmed    = "Confirmed"
	StatusCancelled    = "Cancelled"
	StatusWaitList     = "Wait List"
	StatusDeleted      = "Deleted"

	// StatusUnknown labels bookings the backend returned without a status.
	StatusUnknown = "Unknown"
)

// Booking types.
const (
	TypeWalkIn = "Walk-in"
	TypeOnCall = "On Call"
)

// Reservation tags.
const (
	TagVIP     = "VIP"
	TagRegular = "Regular"
	TagFamily  = "Family"
	TagParty   = "Party"
)

// Statuses lists the statuses a form may set. Deleted is reached only
// through the soft-delete endpoint.
var Statuses = []string{StatusNotConfirmed, StatusConfirmed, StatusCancelled, StatusWaitList}

// BookingTypes lists the booking types in display order.
var BookingTypes = []string{TypeWalkIn, TypeOnCall}

// Tags lists the reservation tags in display order.
var Tags = []string{TagVIP, TagRegular, TagFamily, TagParty}

// Booking is a reservation as returned by the store endpoints.
type Booking struct {
	ID            string   `json:"_id"`
	BookingNumber string   `json:"bookingNumber,omitempty"`
	FirstName     string   `json:"firstName"`
	LastName      string   `json:"lastName,omitempty"`
	Contact       string   `json:"guestContactDetails,omitempty"`
	Guests        FlexInt  `json:"CapacityCovers"`
	Date          string   `json:"date"`
	TimeSlot      string   `json:"timeSlot"`
	Duration      FlexInt  `json:"bookingDuration,omitempty"`
	Tables        Codes    `json:"tableName"`
	Type          string   `json:"bookingType,omitempty"`
	Notes         string   `json:"bookingNotes,omitempty"`
	Tags          []string `json:"reservationTag,omitempty"`
	Status        string   `json:"bookingStatus"`
	CreatedBy     *Ref     `json:"createdBy,omitempty"`
	EditedBy      *Ref     `json:"editedBy,omitempty"`
}

// DateOnly returns the calendar-date portion of Date ("2025-03-14T00:00:00Z"
// becomes "2025-03-14").
func (b Booking) DateOnly() string {
	d, _, _ := strings.Cut(b.Date, "T")
	return d
}

// ParsedDate parses Date as RFC 3339 or a bare date. ok is false when the
// value is empty or malformed.
func (b Booking) ParsedDate() (t time.Time, ok bool) {
	return ParseDate(b.Date)
}

// StatusLabel returns the status, or StatusUnknown when empty.
func (b Booking) StatusLabel() string {
	if b.Status == "" {
		return StatusUnknown
	}
	return b.Status
}

// ParseDate accepts the date shapes the backend and the form produce.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// GuestSuggestion is one entry of the first-name lookup.
type GuestSuggestion struct {
	FirstName  string `json:"firstName"`
	SecondName string `json:"secondName,omitempty"`
	Contact    string `json:"contact,omitempty"`
}

// Label renders the suggestion the way the dropdown shows it.
func (s GuestSuggestion) Label() string {
	return s.FirstName + " " + s.SecondName + " - " + s.Contact
}
