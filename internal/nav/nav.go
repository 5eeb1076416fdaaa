// Package nav names the screens a flow can send the user to once it
// finishes, and the delayed redirect that follows a success notification.
package nav

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// Routes.
const (
	Login      = "/login"
	Signup     = "/signup"
	Bookings   = "/store/bookings"
	NewBooking = "/store/book-table"
	EditPrefix = "/store/TableBookingForm/"
	HostTables = "/host/host-table-list"
	AddTable   = "/host/add-table"
)

// Redirect sends the user to a route after a delay.
type Redirect struct {
	To    string
	Delay time.Duration
}

// Now is an immediate redirect.
func Now(to string) *Redirect {
	return &Redirect{To: to}
}

// After is a redirect that waits d first.
func After(to string, d time.Duration) *Redirect {
	return &Redirect{To: to, Delay: d}
}

// Wait blocks for the redirect delay on clock, or until ctx is done.
func (r *Redirect) Wait(ctx context.Context, clock clockwork.Clock) error {
	if r.Delay <= 0 {
		return nil
	}
	select {
	case <-clock.After(r.Delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
