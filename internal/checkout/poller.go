package checkout

import (
	"context"
	"log/slog"
	"time"

	"boleteria/internal/venueapi"
)

// OrderFetcher is the single venue-API call the poller depends on.
type OrderFetcher interface {
	GetOrder(ctx context.Context, id string) (venueapi.Order, error)
}

type PollOutcome int

const (
	PollPaid PollOutcome = iota
	PollCancelled
	PollTimedOut
)

const (
	defaultPollInterval = 5 * time.Second
	defaultPollTimeout  = 10 * time.Minute
)

// Poller watches an order after the buyer was sent to the provider's hosted
// payment page. It checks on a fixed interval until the order reaches a
// terminal status or the deadline passes; cancelling the context stops it
// silently (flow torn down, nobody left to tell).
type Poller struct {
	orders   OrderFetcher
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

func NewPoller(orders OrderFetcher, logger *slog.Logger) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		orders:   orders,
		interval: defaultPollInterval,
		timeout:  defaultPollTimeout,
		logger:   logger,
	}
}

// Run blocks until a terminal outcome, the deadline, or cancellation, and
// invokes done at most once. Fetch errors do not stop the loop; the next
// tick simply retries.
func (p *Poller) Run(ctx context.Context, orderID string, done func(PollOutcome)) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	deadline := time.NewTimer(p.timeout)
	defer deadline.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-deadline.C:
			p.logger.Warn("payment_poll_timeout", "order_id", orderID)
			done(PollTimedOut)
			return
		case <-ticker.C:
			outcome, terminal, err := p.CheckOnce(ctx, orderID)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				p.logger.Warn("payment_poll_check_failed", "order_id", orderID, "error", err)
				continue
			}
			if terminal {
				done(outcome)
				return
			}
		}
	}
}

// CheckOnce performs a single status fetch, shared by the interval loop and
// the user-triggered manual verification.
func (p *Poller) CheckOnce(ctx context.Context, orderID string) (PollOutcome, bool, error) {
	order, err := p.orders.GetOrder(ctx, orderID)
	if err != nil {
		return 0, false, err
	}
	switch order.Status {
	case venueapi.OrderStatusPaid:
		return PollPaid, true, nil
	case venueapi.OrderStatusCancelled:
		return PollCancelled, true, nil
	default:
		return 0, false, nil
	}
}
