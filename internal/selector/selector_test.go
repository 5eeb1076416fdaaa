package selector

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Ramsha-Haris/table/internal/model"
)

var tables = []model.Table{
	{Code: 1, Capacity: 4, Available: true},
	{Code: 2, Capacity: 2, Available: true},
	{Code: 3, Capacity: 6, Available: false},
}

func TestCapacityAndRemaining(t *testing.T) {
	tests := []struct {
		name     string
		selected model.Codes
		guests   int
		wantCap  int
		wantLeft int
	}{
		{"enough", model.Codes{"1", "2"}, 5, 6, 0},
		{"short by one", model.Codes{"1", "2"}, 7, 6, 1},
		{"nothing selected", nil, 3, 0, 3},
		{"unknown code ignored", model.Codes{"9"}, 2, 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Capacity(tables, tt.selected)
			if c != tt.wantCap {
				t.Errorf("Capacity = %d, want %d", c, tt.wantCap)
			}
			if r := Remaining(tt.guests, c); r != tt.wantLeft {
				t.Errorf("Remaining = %d, want %d", r, tt.wantLeft)
			}
		})
	}
}

func TestToggle(t *testing.T) {
	in := model.Codes{"1"}
	added := Toggle(in, "2")
	if !reflect.DeepEqual(added, model.Codes{"1", "2"}) {
		t.Errorf("Toggle add = %v", added)
	}
	removed := Toggle(added, "1")
	if !reflect.DeepEqual(removed, model.Codes{"2"}) {
		t.Errorf("Toggle remove = %v", removed)
	}
	if !reflect.DeepEqual(in, model.Codes{"1"}) {
		t.Errorf("input modified: %v", in)
	}
}

func TestSelectorRefusesUnavailable(t *testing.T) {
	s := New(tables, nil, true)

	if err := s.Toggle("3"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Toggle(3) error = %v, want ErrUnavailable", err)
	}
	if err := s.Toggle("42"); !errors.Is(err, ErrUnknownTable) {
		t.Errorf("Toggle(42) error = %v, want ErrUnknownTable", err)
	}
	if len(s.Selected()) != 0 {
		t.Errorf("selection changed: %v", s.Selected())
	}
}

func TestSelectorReleasesBookedSelection(t *testing.T) {
	s := New(tables, model.Codes{"3"}, true)

	if err := s.Toggle("3"); err != nil {
		t.Fatalf("Toggle(3) on a selected table: %v", err)
	}
	if len(s.Selected()) != 0 {
		t.Errorf("Selected() = %v, want empty", s.Selected())
	}
	if err := s.Toggle("3"); !errors.Is(err, ErrUnavailable) {
		t.Errorf("reselecting error = %v, want ErrUnavailable", err)
	}
}

func TestSelectorModes(t *testing.T) {
	multi := New(tables, nil, true)
	_ = multi.Toggle("1")
	_ = multi.Toggle("2")
	if got := multi.Text(); got != "1, 2" {
		t.Errorf("multi Text() = %q", got)
	}
	if got := multi.Summary(5); got != "Total Selected Capacity: 6 / Guests: 5 — Enough capacity" {
		t.Errorf("Summary(5) = %q", got)
	}
	if got := multi.Summary(7); got != "Total Selected Capacity: 6 / Guests: 7 — Need 1 more" {
		t.Errorf("Summary(7) = %q", got)
	}

	single := New(tables, nil, false)
	if got := single.Text(); got != "Select Table(s)" {
		t.Errorf("empty Text() = %q", got)
	}
	_ = single.Toggle("1")
	_ = single.Toggle("2")
	if !reflect.DeepEqual(single.Selected(), model.Codes{"2"}) {
		t.Errorf("single selection = %v", single.Selected())
	}
}

func TestSelectorDropdown(t *testing.T) {
	s := New(tables, nil, true)
	s.Click()
	if !s.Open() {
		t.Fatal("Click should open")
	}
	s.PointerDown(true)
	if !s.Open() {
		t.Error("inside pointer should keep it open")
	}
	s.PointerDown(false)
	if s.Open() {
		t.Error("outside pointer should close")
	}
	s.Click()
	s.Done()
	if s.Open() {
		t.Error("Done should close")
	}
}
