package nav

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestWaitImmediate(t *testing.T) {
	if err := Now(Bookings).Wait(context.Background(), clockwork.NewFakeClock()); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
}

func TestWaitDelay(t *testing.T) {
	clock := clockwork.NewFakeClock()
	done := make(chan error, 1)
	go func() { done <- After(Login, 2*time.Second).Wait(context.Background(), clock) }()

	if err := clock.BlockUntilContext(context.Background(), 1); err != nil {
		t.Fatal(err)
	}
	select {
	case <-done:
		t.Fatal("returned before the delay elapsed")
	default:
	}
	clock.Advance(2 * time.Second)
	if err := <-done; err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
}

func TestWaitCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := After(Bookings, time.Hour).Wait(ctx, clockwork.NewFakeClock()); err == nil {
		t.Fatal("expected context error")
	}
}
