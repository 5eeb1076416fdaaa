package selector

import (
	"errors"
	"fmt"

	"github.com/Ramsha-Haris/table/internal/model"
)

var (
	// ErrUnknownTable is returned when toggling a code not in the inventory.
	ErrUnknownTable = errors.New("unknown table")
	// ErrUnavailable is returned when toggling a table booked for the slot.
	ErrUnavailable = errors.New("table is not available for this slot")
)

// Selector is the dropdown picker state.
type Selector struct {
	tables   []model.Table
	selected model.Codes
	multiple bool
	open     bool
}

// New returns a picker over tables with the given initial selection.
// With multiple false, each toggle replaces the selection.
func New(tables []model.Table, selected model.Codes, multiple bool) *Selector {
	return &Selector{
		tables:   tables,
		selected: append(model.Codes(nil), selected...),
		multiple: multiple,
	}
}

// SetTables replaces the inventory, e.g. after an availability refresh.
// The selection is kept.
func (s *Selector) SetTables(tables []model.Table) {
	s.tables = tables
}

// Tables returns the inventory the picker shows.
func (s *Selector) Tables() []model.Table {
	return s.tables
}

// Selected returns a copy of the selected codes.
func (s *Selector) Selected() model.Codes {
	return append(model.Codes(nil), s.selected...)
}

// Toggle changes membership of code. Unknown and unavailable tables are
// refused and leave the selection untouched.
func (s *Selector) Toggle(code string) error {
	t, ok := s.find(code)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTable, code)
	}
	// A selected table can always be removed, even once it reads as booked.
	if !t.Available && !s.selected.Contains(code) {
		return fmt.Errorf("%w: table %s", ErrUnavailable, code)
	}
	if s.multiple {
		s.selected = Toggle(s.selected, code)
	} else {
		s.selected = model.Codes{code}
	}
	return nil
}

func (s *Selector) find(code string) (model.Table, bool) {
	for _, t := range s.tables {
		if t.CodeString() == code {
			return t, true
		}
	}
	return model.Table{}, false
}

// Open reports whether the dropdown grid is shown.
func (s *Selector) Open() bool { return s.open }

// Click toggles the dropdown, as clicking the field does.
func (s *Selector) Click() { s.open = !s.open }

// Done closes the dropdown.
func (s *Selector) Done() { s.open = false }

// PointerDown closes the dropdown when the interaction is outside the widget.
func (s *Selector) PointerDown(inside bool) {
	if !inside {
		s.open = false
	}
}

// Capacity is the combined capacity of the selection.
func (s *Selector) Capacity() int {
	return Capacity(s.tables, s.selected)
}

// Summary is the capacity banner shown above the picker.
func (s *Selector) Summary(guests int) string {
	capacity := s.Capacity()
	msg := fmt.Sprintf("Total Selected Capacity: %d / Guests: %d", capacity, guests)
	if r := Remaining(guests, capacity); r > 0 {
		return msg + fmt.Sprintf(" — Need %d more", r)
	}
	return msg + " — Enough capacity"
}

// Text is the field label: the selected codes, or a placeholder.
func (s *Selector) Text() string {
	if len(s.selected) == 0 {
		return "Select Table(s)"
	}
	return s.selected.String()
}
