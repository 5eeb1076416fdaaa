package booking

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"

	"github.com/Ramsha-Haris/table/internal/debounce"
	"github.com/Ramsha-Haris/table/internal/model"
)

// Key is a navigation key on the name field.
type Key int

// Keys.
const (
	KeyDown Key = iota
	KeyUp
	KeyEnter
)

// LookupFunc fetches suggestions for a first-name query.
type LookupFunc func(ctx context.Context, q string) ([]model.GuestSuggestion, error)

// lookupReq is a query tagged with the input generation that produced it.
type lookupReq struct {
	q   string
	gen uint64
}

// Typeahead is the debounced guest-name lookup. Only the debounce timer
// issues lookups, and a response is applied only if no newer input arrived
// while it was in flight.
type Typeahead struct {
	mu          sync.Mutex
	lookup      LookupFunc
	log         logrus.FieldLogger
	debouncer   *debounce.Debouncer[lookupReq]
	ctx         context.Context
	value       string
	suggestions []model.GuestSuggestion
	show        bool
	highlight   int
	gen         uint64
	onSettle    func(q string, applied bool)
}

// NewTypeahead returns a typeahead that waits delay after the last input.
func NewTypeahead(lookup LookupFunc, clock clockwork.Clock, delay time.Duration, log logrus.FieldLogger) *Typeahead {
	t := &Typeahead{lookup: lookup, log: log, highlight: -1, ctx: context.Background()}
	t.debouncer = debounce.New(clock, delay, t.fetch)
	return t
}

// OnSettle registers a hook called after every lookup completes, with
// applied false when the response was discarded or failed.
func (t *Typeahead) OnSettle(fn func(q string, applied bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onSettle = fn
}

// Input records a keystroke. Blank input hides the list and cancels any
// pending lookup.
func (t *Typeahead) Input(ctx context.Context, value string) {
	t.mu.Lock()
	t.value = value
	t.highlight = -1
	t.gen++
	if strings.TrimSpace(value) == "" {
		t.suggestions = nil
		t.show = false
		t.mu.Unlock()
		t.debouncer.Cancel()
		return
	}
	t.ctx = ctx
	req := lookupReq{q: value, gen: t.gen}
	t.mu.Unlock()
	t.debouncer.Trigger(req)
}

func (t *Typeahead) fetch(req lookupReq) {
	q, gen := req.q, req.gen
	t.mu.Lock()
	ctx, settle := t.ctx, t.onSettle
	t.mu.Unlock()

	results, err := t.lookup(ctx, q)

	t.mu.Lock()
	applied := false
	switch {
	case err != nil:
		t.log.WithError(err).WithField("query", q).Warn("name suggestions failed")
	case gen != t.gen:
		t.log.WithField("query", q).Debug("discarding superseded suggestions")
	default:
		t.suggestions = results
		t.show = len(results) > 0
		applied = true
	}
	t.mu.Unlock()

	if settle != nil {
		settle(q, applied)
	}
}

// Value returns the current field text.
func (t *Typeahead) Value() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.value
}

// Suggestions returns the visible suggestions, or nil when the list is
// hidden.
func (t *Typeahead) Suggestions() []model.GuestSuggestion {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.show {
		return nil
	}
	return append([]model.GuestSuggestion(nil), t.suggestions...)
}

// Highlight returns the highlighted index, -1 for none.
func (t *Typeahead) Highlight() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.highlight
}

// Key moves the highlight circularly. Enter on a highlighted suggestion
// returns it and closes the list.
func (t *Typeahead) Key(k Key) (model.GuestSuggestion, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := len(t.suggestions)
	if !t.show || n == 0 {
		return model.GuestSuggestion{}, false
	}
	switch k {
	case KeyDown:
		if t.highlight < n-1 {
			t.highlight++
		} else {
			t.highlight = 0
		}
	case KeyUp:
		if t.highlight > 0 {
			t.highlight--
		} else {
			t.highlight = n - 1
		}
	case KeyEnter:
		if t.highlight >= 0 && t.highlight < n {
			s := t.suggestions[t.highlight]
			t.closeLocked()
			return s, true
		}
	}
	return model.GuestSuggestion{}, false
}

// Select returns suggestion i and closes the list.
func (t *Typeahead) Select(i int) (model.GuestSuggestion, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.show || i < 0 || i >= len(t.suggestions) {
		return model.GuestSuggestion{}, false
	}
	s := t.suggestions[i]
	t.closeLocked()
	return s, true
}

// Close hides the list and drops any pending or in-flight lookup.
func (t *Typeahead) Close() {
	t.mu.Lock()
	t.closeLocked()
	t.mu.Unlock()
	t.debouncer.Cancel()
}

func (t *Typeahead) closeLocked() {
	t.suggestions = nil
	t.show = false
	t.highlight = -1
	t.gen++
}

// Pending reports whether a lookup is scheduled.
func (t *Typeahead) Pending() bool {
	return t.debouncer.Pending()
}
