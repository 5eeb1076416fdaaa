package listing

import (
	"context"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"github.com/Ramsha-Haris/table/internal/model"
	"github.com/Ramsha-Haris/table/internal/notify"
)

// State is the lifecycle of the list screen.
type State int

// States.
const (
	Loading State = iota
	Loaded
	Failed
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Service is the subset of the API the list screen uses.
type Service interface {
	ListBookings(ctx context.Context) ([]model.Booking, error)
	DeleteReservation(ctx context.Context, id string) error
}

// View is the booking list screen: raw bookings plus sort and filter
// configuration.
type View struct {
	mu       sync.Mutex
	svc      Service
	notifier notify.Notifier
	log      logrus.FieldLogger
	clock    clockwork.Clock

	state    State
	bookings []model.Booking
	sort     SortConfig
	criteria Criteria
}

// NewView creates a view in the Loading state with no filters.
func NewView(svc Service, n notify.Notifier, log logrus.FieldLogger, clock clockwork.Clock) *View {
	return &View{
		svc:      svc,
		notifier: n,
		log:      log,
		clock:    clock,
		state:    Loading,
		sort:     SortConfig{Direction: Asc},
		criteria: Criteria{Tab: TabAll},
	}
}

// Load fetches every booking. Failure moves the view to Failed and notifies.
func (v *View) Load(ctx context.Context) {
	v.mu.Lock()
	v.state = Loading
	v.mu.Unlock()

	bookings, err := v.svc.ListBookings(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		v.log.WithError(err).Error("fetching bookings")
		v.state = Failed
		v.notifier.Error("Failed to load bookings")
		return
	}
	v.bookings = bookings
	v.state = Loaded
}

// State returns the current lifecycle state.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// RequestSort applies a header click on key.
func (v *View) RequestSort(key SortKey) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sort = v.sort.Request(key)
}

// Sort returns the active sort configuration.
func (v *View) Sort() SortConfig {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.sort
}

// SetSearch sets the search text.
func (v *View) SetSearch(q string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.criteria.Search = q
}

// SetDateRange sets the inclusive date bounds; empty strings clear them.
func (v *View) SetDateRange(start, end string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.criteria.StartDate, v.criteria.EndDate = start, end
}

// SetTab selects a status tab.
func (v *View) SetTab(tab string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if tab == "" {
		tab = TabAll
	}
	v.criteria.Tab = tab
}

// SetTodayOnly toggles the today filter.
func (v *View) SetTodayOnly(on bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.criteria.TodayOnly = on
}

// Criteria returns the active filter with Today filled from the clock.
func (v *View) Criteria() Criteria {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.currentCriteria()
}

func (v *View) currentCriteria() Criteria {
	c := v.criteria
	c.Today = v.clock.Now().Local().Format("2006-01-02")
	return c
}

// Rows returns the bookings to display: sorted, then filtered.
func (v *View) Rows() []model.Booking {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Filter(Sort(v.bookings, v.sort), v.currentCriteria())
}

// Tabs returns the status tabs over all loaded bookings.
func (v *View) Tabs() []Tab {
	v.mu.Lock()
	defer v.mu.Unlock()
	return Tabs(v.bookings)
}

// Bookings returns a copy of the raw loaded bookings.
func (v *View) Bookings() []model.Booking {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]model.Booking(nil), v.bookings...)
}

// Delete soft-deletes a booking and drops its row once the backend accepts.
// On failure the row stays and the user is notified.
func (v *View) Delete(ctx context.Context, id string) bool {
	if err := v.svc.DeleteReservation(ctx, id); err != nil {
		v.log.WithError(err).WithField("booking", id).Error("delete failed")
		v.notifier.Error("Failed to delete booking")
		return false
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	kept := v.bookings[:0:0]
	for _, b := range v.bookings {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	v.bookings = kept
	v.notifier.Success("Booking deleted")
	return true
}
