package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"boleteria/internal/venueapi"
)

type fakeOrderFetcher struct {
	mu       sync.Mutex
	statuses []string
	errs     []error
	calls    int
}

func (f *fakeOrderFetcher) GetOrder(ctx context.Context, id string) (venueapi.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	idx := f.calls
	f.calls++
	if idx < len(f.errs) && f.errs[idx] != nil {
		return venueapi.Order{}, f.errs[idx]
	}
	status := venueapi.OrderStatusPending
	if idx < len(f.statuses) {
		status = f.statuses[idx]
	} else if len(f.statuses) > 0 {
		status = f.statuses[len(f.statuses)-1]
	}
	return venueapi.Order{ID: id, Status: status}, nil
}

func (f *fakeOrderFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// TestPollerStopsOnPaid verifies terminal-status behavior.
func TestPollerStopsOnPaid(t *testing.T) {
	t.Parallel()

	fetcher := &fakeOrderFetcher{statuses: []string{
		venueapi.OrderStatusPending,
		venueapi.OrderStatusPending,
		venueapi.OrderStatusPaid,
	}}
	p := NewPoller(fetcher, nil)
	p.interval = 5 * time.Millisecond
	p.timeout = time.Second

	outcomes := make(chan PollOutcome, 1)
	p.Run(context.Background(), "order-1", func(o PollOutcome) { outcomes <- o })

	select {
	case got := <-outcomes:
		if got != PollPaid {
			t.Fatalf("outcome = %v, want PollPaid", got)
		}
	default:
		t.Fatalf("done was not invoked")
	}
	if fetcher.callCount() != 3 {
		t.Fatalf("fetch calls = %d, want 3", fetcher.callCount())
	}
}

// TestPollerStopsOnCancelled verifies the cancelled order path.
func TestPollerStopsOnCancelled(t *testing.T) {
	t.Parallel()

	fetcher := &fakeOrderFetcher{statuses: []string{venueapi.OrderStatusCancelled}}
	p := NewPoller(fetcher, nil)
	p.interval = 5 * time.Millisecond
	p.timeout = time.Second

	outcomes := make(chan PollOutcome, 1)
	p.Run(context.Background(), "order-2", func(o PollOutcome) { outcomes <- o })

	if got := <-outcomes; got != PollCancelled {
		t.Fatalf("outcome = %v, want PollCancelled", got)
	}
}

// TestPollerTimeout verifies the deadline fires for never-terminal orders.
func TestPollerTimeout(t *testing.T) {
	t.Parallel()

	fetcher := &fakeOrderFetcher{}
	p := NewPoller(fetcher, nil)
	p.interval = 5 * time.Millisecond
	p.timeout = 30 * time.Millisecond

	outcomes := make(chan PollOutcome, 1)
	p.Run(context.Background(), "order-3", func(o PollOutcome) { outcomes <- o })

	if got := <-outcomes; got != PollTimedOut {
		t.Fatalf("outcome = %v, want PollTimedOut", got)
	}
}

// TestPollerCancellation verifies a cancelled context stops without done.
func TestPollerCancellation(t *testing.T) {
	t.Parallel()

	fetcher := &fakeOrderFetcher{}
	p := NewPoller(fetcher, nil)
	p.interval = 5 * time.Millisecond
	p.timeout = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	called := make(chan PollOutcome, 1)
	go func() {
		p.Run(ctx, "order-4", func(o PollOutcome) { called <- o })
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("poller did not stop after cancel")
	}
	select {
	case got := <-called:
		t.Fatalf("done should not run on cancellation, got %v", got)
	default:
	}
}

// TestPollerRetriesAfterError verifies fetch errors do not stop the loop.
func TestPollerRetriesAfterError(t *testing.T) {
	t.Parallel()

	fetcher := &fakeOrderFetcher{
		errs:     []error{errors.New("boom"), nil},
		statuses: []string{venueapi.OrderStatusPending, venueapi.OrderStatusPaid},
	}
	p := NewPoller(fetcher, nil)
	p.interval = 5 * time.Millisecond
	p.timeout = time.Second

	outcomes := make(chan PollOutcome, 1)
	p.Run(context.Background(), "order-5", func(o PollOutcome) { outcomes <- o })

	if got := <-outcomes; got != PollPaid {
		t.Fatalf("outcome = %v, want PollPaid", got)
	}
	if fetcher.callCount() < 2 {
		t.Fatalf("fetch calls = %d, want at least 2", fetcher.callCount())
	}
}

// TestCheckOnce verifies single-shot status mapping.
func TestCheckOnce(t *testing.T) {
	t.Parallel()

	cases := []struct {
		status   string
		outcome  PollOutcome
		terminal bool
	}{
		{venueapi.OrderStatusPaid, PollPaid, true},
		{venueapi.OrderStatusCancelled, PollCancelled, true},
		{venueapi.OrderStatusPending, 0, false},
	}
	for _, tc := range cases {
		fetcher := &fakeOrderFetcher{statuses: []string{tc.status}}
		p := NewPoller(fetcher, nil)
		outcome, terminal, err := p.CheckOnce(context.Background(), "order")
		if err != nil {
			t.Fatalf("status %s: unexpected error %v", tc.status, err)
		}
		if terminal != tc.terminal {
			t.Fatalf("status %s: terminal = %v, want %v", tc.status, terminal, tc.terminal)
		}
		if terminal && outcome != tc.outcome {
			t.Fatalf("status %s: outcome = %v, want %v", tc.status, outcome, tc.outcome)
		}
	}
}
