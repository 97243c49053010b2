package paymentpoll

import (
	"context"
	"time"
)

const (
	defaultPollInterval  = 30 * time.Second
	defaultCountdownTick = time.Second
)

// Update is one observation pushed to the consumer: either a fresh order
// snapshot, a countdown tick, or a fetch error.
type Update struct {
	Order     *Order
	Countdown time.Duration
	// Expired is set when the countdown hit zero while the payment was
	// still waiting. The server sweeps the actual transition; this only
	// surfaces the notice to the UI.
	Expired bool
	Err     error
}

type Poller struct {
	client        *Client
	pollInterval  time.Duration
	countdownTick time.Duration
}

func NewPoller(client *Client) *Poller {
	return &Poller{
		client:        client,
		pollInterval:  defaultPollInterval,
		countdownTick: defaultCountdownTick,
	}
}

// NewPollerWithIntervals exists for consumers (and tests) that need faster
// cadence than the production 30s/1s.
func NewPollerWithIntervals(client *Client, pollInterval, countdownTick time.Duration) *Poller {
	return &Poller{
		client:        client,
		pollInterval:  pollInterval,
		countdownTick: countdownTick,
	}
}

// Run polls the order until it reaches a terminal status or ctx is
// cancelled. The countdown is re-derived from the authoritative expires_at
// on every tick, never from a locally started timer, so it stays correct
// across restarts of the consuming UI.
func (p *Poller) Run(ctx context.Context, paymentID string) <-chan Update {
	updates := make(chan Update)

	go func() {
		defer close(updates)

		pollTicker := time.NewTicker(p.pollInterval)
		defer pollTicker.Stop()
		countdownTicker := time.NewTicker(p.countdownTick)
		defer countdownTicker.Stop()

		var current *Order
		expiredNotified := false

		fetch := func() bool {
			order, err := p.client.GetOrder(ctx, paymentID)
			if err != nil {
				select {
				case updates <- Update{Err: err}:
				case <-ctx.Done():
				}
				return false
			}
			current = order
			select {
			case updates <- Update{Order: order, Countdown: remaining(order)}:
			case <-ctx.Done():
				return false
			}
			return order.Terminal()
		}

		if done := fetch(); done {
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-pollTicker.C:
				if done := fetch(); done {
					return
				}
			case <-countdownTicker.C:
				if current == nil {
					continue
				}
				left := remaining(current)
				expired := false
				if left == 0 && current.PaymentStatus == "waiting" && !expiredNotified {
					expired = true
					expiredNotified = true
				}
				select {
				case updates <- Update{Order: current, Countdown: left, Expired: expired}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return updates
}

func remaining(order *Order) time.Duration {
	left := time.Until(order.ExpiresAt)
	if left < 0 {
		return 0
	}
	return left
}
