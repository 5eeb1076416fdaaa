package booking

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/jinzhu/copier"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"github.com/Ramsha-Haris/table/internal/model"
	"github.com/Ramsha-Haris/table/internal/nav"
	"github.com/Ramsha-Haris/table/internal/notify"
	"github.com/Ramsha-Haris/table/internal/selector"
)

// ErrPastDate is returned when a date before today is chosen.
var ErrPastDate = errors.New("date is in the past")

// Service is the subset of the API the form uses.
type Service interface {
	BookTableData(ctx context.Context) ([]model.Table, error)
	CheckAvailability(ctx context.Context, date, timeSlot string) (model.Codes, error)
	FirstNameSuggestions(ctx context.Context, q string) ([]model.GuestSuggestion, error)
	CreateBooking(ctx context.Context, payload any) (int, error)
	UpdateBooking(ctx context.Context, payload any) (int, error)
}

// Deps are the collaborators of a Form.
type Deps struct {
	Service       Service
	Notifier      notify.Notifier
	Log           logrus.FieldLogger
	Clock         clockwork.Clock
	User          *model.User
	Debounce      time.Duration
	RedirectDelay time.Duration
}

// Fields is the editable state of the form, encoded with the backend's
// field names.
type Fields struct {
	BookingNumber string        `json:"bookingNumber"`
	FirstName     string        `json:"firstName"`
	LastName      string        `json:"lastName"`
	Contact       string        `json:"guestContactDetails"`
	Guests        model.FlexInt `json:"CapacityCovers"`
	Date          string        `json:"date"`
	TimeSlot      string        `json:"timeSlot"`
	Duration      model.FlexInt `json:"bookingDuration"`
	Tables        model.Codes   `json:"tableName"`
	Type          string        `json:"bookingType"`
	Notes         string        `json:"bookingNotes"`
	Tags          []string      `json:"reservationTag"`
	Status        string        `json:"bookingStatus"`
}

// Payload is the submitted body: the fields plus the record ID and the
// acting user.
type Payload struct {
	Fields
	ID        string `json:"id"`
	CreatedBy string `json:"createdBy,omitempty"`
	EditedBy  string `json:"editedBy,omitempty"`
}

// Result is the outcome of Submit.
type Result struct {
	OK       bool
	Status   int
	Issues   []Issue
	Redirect *nav.Redirect
}

// Form is the reservation form state.
type Form struct {
	mu      sync.Mutex
	deps    Deps
	editing bool
	id      string
	fields  Fields
	picker  *selector.Selector
	names   *Typeahead
}

// NewForm returns a form for a new reservation, or for editing existing
// when it is non-nil.
func NewForm(deps Deps, existing *model.Booking) (*Form, error) {
	if deps.Log == nil {
		deps.Log = logrus.New()
	}
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}

	f := &Form{deps: deps, fields: Fields{Status: model.StatusNotConfirmed}}
	if existing != nil {
		if err := copier.Copy(&f.fields, existing); err != nil {
			return nil, fmt.Errorf("copying booking into form: %w", err)
		}
		f.editing = true
		f.id = existing.ID
		f.fields.Date = existing.DateOnly()
		if f.fields.Status == "" {
			f.fields.Status = model.StatusNotConfirmed
		}
	}
	if f.fields.Tables == nil {
		f.fields.Tables = model.Codes{}
	}
	if f.fields.Tags == nil {
		f.fields.Tags = []string{}
	}

	f.picker = selector.New(nil, f.fields.Tables, true)
	f.names = NewTypeahead(deps.Service.FirstNameSuggestions, deps.Clock, deps.Debounce, deps.Log)
	f.names.value = f.fields.FirstName
	return f, nil
}

// Editing reports whether the form edits an existing booking.
func (f *Form) Editing() bool { return f.editing }

// Title is the form heading.
func (f *Form) Title() string {
	if f.editing {
		return "Edit Table Booking"
	}
	return "Table Reservation"
}

// SubmitLabel is the submit button text.
func (f *Form) SubmitLabel() string {
	if f.editing {
		return "Update Table Booking"
	}
	return "Book Table"
}

// CreatedBy is the read-only creator shown in edit mode.
func (f *Form) CreatedBy() string {
	return f.deps.User.DisplayName()
}

// Fields returns a copy of the current field values.
func (f *Form) Fields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.fields
	out.Tables = append(model.Codes{}, f.fields.Tables...)
	out.Tags = append([]string{}, f.fields.Tags...)
	return out
}

// LoadTables fetches the inventory shown by the table picker, then marks
// availability when a slot is already chosen. Tables stay unselectable
// until availability is known.
func (f *Form) LoadTables(ctx context.Context) bool {
	tables, err := f.deps.Service.BookTableData(ctx)
	if err != nil {
		f.deps.Log.WithError(err).Error("fetching tables")
		f.deps.Notifier.Error("Failed to load tables")
		return false
	}
	for i := range tables {
		tables[i].Available = false
	}

	f.mu.Lock()
	f.picker.SetTables(tables)
	f.mu.Unlock()

	f.refreshAvailability(ctx)
	return true
}

// Tables returns the picker inventory with availability flags.
func (f *Form) Tables() []model.Table {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Table(nil), f.picker.Tables()...)
}

func (f *Form) refreshAvailability(ctx context.Context) {
	f.mu.Lock()
	date, slot := f.fields.Date, f.fields.TimeSlot
	f.mu.Unlock()
	if date == "" || slot == "" {
		return
	}

	booked, err := f.deps.Service.CheckAvailability(ctx, date, slot)
	if err != nil {
		f.deps.Log.WithError(err).WithFields(logrus.Fields{"date": date, "slot": slot}).Error("checking availability")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	// The slot may have changed while the request was in flight.
	if f.fields.Date != date || f.fields.TimeSlot != slot {
		return
	}
	tables := append([]model.Table(nil), f.picker.Tables()...)
	for i := range tables {
		tables[i].Available = !booked.Contains(tables[i].CodeString())
	}
	f.picker.SetTables(tables)
}

// SetDate sets the reservation date ("YYYY-MM-DD") and refreshes
// availability. Dates before today are refused.
func (f *Form) SetDate(ctx context.Context, date string) error {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: want YYYY-MM-DD", date)
	}
	today := f.deps.Clock.Now().Local().Format("2006-01-02")
	if d.Format("2006-01-02") < today {
		return fmt.Errorf("%w: %s", ErrPastDate, date)
	}

	f.mu.Lock()
	f.fields.Date = date
	f.mu.Unlock()
	f.refreshAvailability(ctx)
	return nil
}

// SetTimeSlot sets the slot label and refreshes availability.
func (f *Form) SetTimeSlot(ctx context.Context, slot string) {
	f.mu.Lock()
	f.fields.TimeSlot = FormatTime(slot)
	f.mu.Unlock()
	f.refreshAvailability(ctx)
}

// NameInput updates the first name and feeds the typeahead.
func (f *Form) NameInput(ctx context.Context, value string) {
	f.mu.Lock()
	f.fields.FirstName = value
	f.mu.Unlock()
	f.names.Input(ctx, value)
}

// NameKey forwards a navigation key to the typeahead and applies a
// committed suggestion.
func (f *Form) NameKey(k Key) bool {
	s, ok := f.names.Key(k)
	if ok {
		f.applySuggestion(s)
	}
	return ok
}

// Names exposes the typeahead for rendering.
func (f *Form) Names() *Typeahead { return f.names }

// SelectSuggestion applies suggestion i of the visible list.
func (f *Form) SelectSuggestion(i int) bool {
	s, ok := f.names.Select(i)
	if ok {
		f.applySuggestion(s)
	}
	return ok
}

func (f *Form) applySuggestion(s model.GuestSuggestion) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields.FirstName = s.FirstName
	f.fields.LastName = s.SecondName
	f.fields.Contact = s.Contact
	f.names.mu.Lock()
	f.names.value = s.FirstName
	f.names.mu.Unlock()
}

// SetFirstName sets the first name without a suggestion lookup.
func (f *Form) SetFirstName(v string) {
	f.names.Close()
	f.mu.Lock()
	f.fields.FirstName = v
	f.mu.Unlock()
	f.names.mu.Lock()
	f.names.value = v
	f.names.mu.Unlock()
}

// SetLastName sets the guest's last name.
func (f *Form) SetLastName(v string) { f.set(func(x *Fields) { x.LastName = v }) }

// SetContact sets the guest's contact details.
func (f *Form) SetContact(v string) { f.set(func(x *Fields) { x.Contact = v }) }

// SetGuests sets the party size.
func (f *Form) SetGuests(n int) { f.set(func(x *Fields) { x.Guests = model.FlexInt(n) }) }

// SetDuration sets the booking duration in hours.
func (f *Form) SetDuration(h int) { f.set(func(x *Fields) { x.Duration = model.FlexInt(h) }) }

// SetNotes sets the free-text notes.
func (f *Form) SetNotes(v string) { f.set(func(x *Fields) { x.Notes = v }) }

// SetType sets the booking type.
func (f *Form) SetType(v string) error {
	if v != "" && !slices.Contains(model.BookingTypes, v) {
		return fmt.Errorf("unknown booking type %q (want %s)", v, strings.Join(model.BookingTypes, ", "))
	}
	f.set(func(x *Fields) { x.Type = v })
	return nil
}

// SetStatus sets the booking status.
func (f *Form) SetStatus(v string) error {
	if !slices.Contains(model.Statuses, v) {
		return fmt.Errorf("unknown booking status %q (want %s)", v, strings.Join(model.Statuses, ", "))
	}
	f.set(func(x *Fields) { x.Status = v })
	return nil
}

// ToggleTag adds or removes a reservation tag.
func (f *Form) ToggleTag(tag string) error {
	if !slices.Contains(model.Tags, tag) {
		return fmt.Errorf("unknown reservation tag %q (want %s)", tag, strings.Join(model.Tags, ", "))
	}
	f.set(func(x *Fields) {
		if i := slices.Index(x.Tags, tag); i >= 0 {
			x.Tags = slices.Delete(slices.Clone(x.Tags), i, i+1)
		} else {
			x.Tags = append(slices.Clone(x.Tags), tag)
		}
	})
	return nil
}

// ToggleTable adds or removes a table from the selection.
func (f *Form) ToggleTable(code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.picker.Toggle(code); err != nil {
		return err
	}
	f.fields.Tables = f.picker.Selected()
	return nil
}

func (f *Form) set(fn func(*Fields)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(&f.fields)
}

// Summary is the capacity banner for the current selection.
func (f *Form) Summary() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.picker.Summary(f.fields.Guests.Int())
}

// SelectedText is the table field label.
func (f *Form) SelectedText() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.picker.Text()
}

// Complete reports whether the selected tables seat the whole party.
func (f *Form) Complete() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.picker.Capacity() >= f.fields.Guests.Int()
}

// Payload builds the request body, tagged with the acting user as creator
// or editor.
func (f *Form) Payload() Payload {
	p := Payload{Fields: f.Fields()}
	f.mu.Lock()
	p.ID = f.id
	f.mu.Unlock()

	var uid string
	if f.deps.User != nil {
		uid = f.deps.User.ID
	}
	if f.editing {
		p.EditedBy = uid
	} else {
		p.CreatedBy = uid
	}
	return p
}

// Validate checks the payload against the booking schema.
func (f *Form) Validate() ([]Issue, error) {
	return ValidatePayload(f.Payload())
}

// Submit validates and posts the form. Only 200 and 201 count as success;
// on success the result carries the redirect to the booking list. Failures
// are notified and leave the form as it was.
func (f *Form) Submit(ctx context.Context) Result {
	payload := f.Payload()

	issues, err := ValidatePayload(payload)
	if err != nil {
		f.deps.Log.WithError(err).Error("validating booking")
		f.deps.Notifier.Error("Submission failed! Please try again.")
		return Result{}
	}
	if len(issues) > 0 {
		f.deps.Notifier.Error("Please correct the booking: " + issues[0].String())
		return Result{Issues: issues}
	}
	if !f.Complete() {
		f.deps.Notifier.Warn(f.Summary())
	}

	submit := f.deps.Service.CreateBooking
	success := "Booking successful!"
	if f.editing {
		submit = f.deps.Service.UpdateBooking
		success = "Booking updated!"
	}

	status, err := submit(ctx, payload)
	if err != nil {
		f.deps.Log.WithError(err).WithField("editing", f.editing).Error("submitting booking")
		f.deps.Notifier.Error("Submission failed! Please try again.")
		return Result{Status: status}
	}
	if status != http.StatusOK && status != http.StatusCreated {
		f.deps.Notifier.Error("Error saving booking")
		return Result{Status: status}
	}

	f.deps.Notifier.Success(success)
	return Result{
		OK:       true,
		Status:   status,
		Redirect: nav.After(nav.Bookings, f.deps.RedirectDelay),
	}
}
