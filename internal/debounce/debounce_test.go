package debounce

import (
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

type calls struct {
	mu  sync.Mutex
	got []string
	ch  chan struct{}
}

func newCalls() *calls { return &calls{ch: make(chan struct{}, 16)} }

func (c *calls) record(s string) {
	c.mu.Lock()
	c.got = append(c.got, s)
	c.mu.Unlock()
	c.ch <- struct{}{}
}

func (c *calls) values() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.got...)
}

func (c *calls) wait(t *testing.T) {
	t.Helper()
	select {
	case <-c.ch:
	case <-time.After(2 * time.Second):
		t.Fatal("callback not invoked")
	}
}

func TestBurstCoalesces(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := newCalls()
	d := New(clock, 300*time.Millisecond, c.record)

	d.Trigger("Al")
	clock.Advance(100 * time.Millisecond)
	d.Trigger("Ali")
	clock.Advance(100 * time.Millisecond)
	d.Trigger("Alic")

	if !d.Pending() {
		t.Fatal("expected a pending call")
	}
	clock.Advance(299 * time.Millisecond)
	if got := c.values(); len(got) != 0 {
		t.Fatalf("fired early: %v", got)
	}

	clock.Advance(time.Millisecond)
	c.wait(t)
	if got := c.values(); len(got) != 1 || got[0] != "Alic" {
		t.Fatalf("calls = %v, want [Alic]", got)
	}
	if d.Pending() {
		t.Error("nothing should be pending after firing")
	}
}

func TestCancel(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := newCalls()
	d := New(clock, 300*time.Millisecond, c.record)

	d.Trigger("Al")
	d.Cancel()
	if d.Pending() {
		t.Fatal("Cancel should clear the pending call")
	}
	clock.Advance(time.Second)

	select {
	case <-c.ch:
		t.Fatalf("cancelled call fired: %v", c.values())
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSeparateBurstsEachFire(t *testing.T) {
	clock := clockwork.NewFakeClock()
	c := newCalls()
	d := New(clock, 300*time.Millisecond, c.record)

	d.Trigger("a")
	clock.Advance(300 * time.Millisecond)
	c.wait(t)

	d.Trigger("b")
	clock.Advance(300 * time.Millisecond)
	c.wait(t)

	got := c.values()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("calls = %v, want [a b]", got)
	}
}
