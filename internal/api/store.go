package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/Ramsha-Haris/table/internal/model"
)

// ListBookings fetches every reservation.
func (c *Client) ListBookings(ctx context.Context) ([]model.Booking, error) {
	var out struct {
		Bookings []model.Booking `json:"bookings"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/api/store/get-all-bookings", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Bookings, nil
}

// GetBooking fetches one reservation for editing.
func (c *Client) GetBooking(ctx context.Context, id string) (*model.Booking, error) {
	var out struct {
		Booking *model.Booking `json:"booking"`
	}
	q := url.Values{"editing": {"true"}}
	if _, err := c.do(ctx, http.MethodGet, "/api/store/TableBookingForm/"+url.PathEscape(id), q, nil, &out); err != nil {
		return nil, err
	}
	if out.Booking == nil {
		return nil, &Error{Status: http.StatusNotFound, Message: "booking not found"}
	}
	return out.Booking, nil
}

// CreateBooking submits a new reservation and returns the response status.
func (c *Client) CreateBooking(ctx context.Context, payload any) (int, error) {
	return c.do(ctx, http.MethodPost, "/api/store/create-booking", nil, payload, nil)
}

// UpdateBooking submits an edited reservation and returns the response status.
func (c *Client) UpdateBooking(ctx context.Context, payload any) (int, error) {
	return c.do(ctx, http.MethodPost, "/api/store/TableBookingForm", nil, payload, nil)
}

// DeleteReservation soft-deletes a reservation. The backend flips its status
// rather than removing the document.
func (c *Client) DeleteReservation(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodPatch, "/api/store/delete-reservation/"+url.PathEscape(id), nil, nil, nil)
	return err
}

// CheckAvailability returns the table codes already booked for the slot.
func (c *Client) CheckAvailability(ctx context.Context, date, timeSlot string) (model.Codes, error) {
	var out struct {
		Booked model.Codes `json:"bookedTableCodes"`
	}
	q := url.Values{"date": {date}, "timeSlot": {timeSlot}}
	if _, err := c.do(ctx, http.MethodGet, "/api/store/check-table-availability", q, nil, &out); err != nil {
		return nil, err
	}
	return out.Booked, nil
}

// FirstNameSuggestions looks up previous guests by first-name prefix. A
// response that is not a list yields no suggestions.
func (c *Client) FirstNameSuggestions(ctx context.Context, q string) ([]model.GuestSuggestion, error) {
	var raw json.RawMessage
	query := url.Values{"q": {q}}
	if _, err := c.do(ctx, http.MethodGet, "/api/store/firstname-suggestions", query, nil, &raw); err != nil {
		return nil, err
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, nil
	}
	var out []model.GuestSuggestion
	for _, item := range items {
		var s model.GuestSuggestion
		if err := json.Unmarshal(item, &s); err != nil {
			c.log.WithError(err).Debug("skipping malformed suggestion")
			continue
		}
		out = append(out, s)
	}
	return out, nil
}
