package order

import (
	"context"
	"log/slog"
	"time"
)

// Poller periodically reloads the order snapshot. It is the recovery path
// for failed transitions and for push events the realtime channel missed.
type Poller struct {
	api      API
	ctrl     *Controller
	interval time.Duration
	log      *slog.Logger

	// OnError is called with every failed fetch. The last good snapshot stays.
	OnError func(ctx context.Context, err error)
	// refresh wakes Run for an immediate fetch.
	refresh chan struct{}
}

func NewPoller(api API, ctrl *Controller, interval time.Duration, log *slog.Logger) *Poller {
	return &Poller{
		api:      api,
		ctrl:     ctrl,
		interval: interval,
		log:      log.With("component", "poller"),
		refresh:  make(chan struct{}, 1),
	}
}

// Refresh fetches once and merges the result into the controller.
func (p *Poller) Refresh(ctx context.Context) error {
	orders, err := p.api.ListOrders(ctx)
	if err != nil {
		p.log.Error("order snapshot fetch failed", "err", err)
		if p.OnError != nil {
			p.OnError(ctx, err)
		}
		return err
	}
	p.ctrl.IngestOrderList(orders)
	p.log.Debug("order snapshot merged", "count", len(orders))
	return nil
}

// Kick asks a running poller to fetch now instead of waiting for the tick.
func (p *Poller) Kick() {
	select {
	case p.refresh <- struct{}{}:
	default:
	}
}

// Run fetches immediately and then every interval until ctx is done.
func (p *Poller) Run(ctx context.Context) error {
	_ = p.Refresh(ctx)
	t := time.NewTicker(p.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		case <-p.refresh:
		}
		_ = p.Refresh(ctx)
	}
}
