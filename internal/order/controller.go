package order

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"
)

// Source says who caused a Change.
type Source string

const (
	SourceOperator Source = "operator"
	SourceExternal Source = "external"
	SourceSnapshot Source = "snapshot"
)

// Change is published to subscribers whenever an order is added or its
// status moves. From is empty for newly seen orders.
type Change struct {
	OrderID string
	From    Status
	To      Status
	Source  Source
	At      time.Time
	Order   Order
}

// Controller owns the local view of a partner's orders. Every mutation goes
// through it and is serialized by mu; backend calls are made without holding
// the lock.
type Controller struct {
	api     API
	log     *slog.Logger
	timeout time.Duration
	now     func() time.Time

	mu     sync.Mutex
	orders map[string]*Order
	seq    []string

	subMu   sync.Mutex
	subs    map[int]func(Change)
	nextSub int
}

// NewController builds a controller. timeout bounds each status update call;
// zero leaves it to the HTTP client.
func NewController(api API, log *slog.Logger, timeout time.Duration) *Controller {
	return &Controller{
		api:     api,
		log:     log.With("component", "orders"),
		timeout: timeout,
		now:     time.Now,
		orders:  make(map[string]*Order),
		subs:    make(map[int]func(Change)),
	}
}

// Subscribe registers fn for every future Change. Calling the returned func
// removes it.
func (c *Controller) Subscribe(fn func(Change)) (cancel func()) {
	c.subMu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.subMu.Unlock()
	return func() {
		c.subMu.Lock()
		delete(c.subs, id)
		c.subMu.Unlock()
	}
}

func (c *Controller) publish(changes []Change) {
	if len(changes) == 0 {
		return
	}
	c.subMu.Lock()
	fns := make([]func(Change), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.subMu.Unlock()
	for _, ch := range changes {
		for _, fn := range fns {
			fn(ch)
		}
	}
}

// List returns copies of the orders matching f. FilterAll is sorted newest
// first; the other tabs keep insertion order.
func (c *Controller) List(f Filter) []Order {
	c.mu.Lock()
	out := make([]Order, 0, len(c.seq))
	for _, id := range c.seq {
		o := c.orders[id]
		if f.Match(o.Status) {
			out = append(out, o.clone())
		}
	}
	c.mu.Unlock()

	if f == FilterAll {
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	}
	return out
}

// Counts returns the number of orders on each tab.
func (c *Controller) Counts() map[Filter]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	counts := make(map[Filter]int, len(Filters))
	for _, f := range Filters {
		counts[f] = 0
	}
	for _, o := range c.orders {
		for _, f := range Filters {
			if f.Match(o.Status) {
				counts[f]++
			}
		}
	}
	return counts
}

func (c *Controller) Get(id string) (Order, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	o, ok := c.orders[id]
	if !ok || o.Status == StatusPending {
		return Order{}, false
	}
	return o.clone(), true
}

// RequestTransition asks the backend to move an order along an operator edge.
// Local state changes only after the backend accepts; failures are returned
// as-is and never retried.
func (c *Controller) RequestTransition(ctx context.Context, id string, to Status) (Order, error) {
	c.mu.Lock()
	o, ok := c.orders[id]
	if !ok {
		c.mu.Unlock()
		return Order{}, ErrNotFound
	}
	from := o.Status
	c.mu.Unlock()

	if !CanOperatorTransition(from, to) {
		c.log.Warn("rejected operator transition", "order_id", id, "from", from, "to", to)
		return Order{}, &TransitionError{OrderID: id, From: from, To: to}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	updated, err := c.api.UpdateStatus(ctx, id, to)
	if err != nil {
		if !errors.Is(err, ErrRemoteCall) {
			err = &RemoteCallError{Op: "update status", Err: err}
		}
		c.log.Error("status update failed", "order_id", id, "to", to, "err", err)
		return Order{}, err
	}

	c.mu.Lock()
	o, ok = c.orders[id]
	if !ok {
		c.mu.Unlock()
		return Order{}, ErrNotFound
	}
	cur := o.Status
	var changes []Change
	switch {
	case cur == from:
		o.Status = to
		o.withTimestamps(updated)
		changes = append(changes, Change{OrderID: id, From: from, To: to, Source: SourceOperator, At: c.now(), Order: o.clone()})
	case Reachable(cur, to):
		o.Status = to
		o.withTimestamps(updated)
		changes = append(changes, Change{OrderID: id, From: cur, To: to, Source: SourceOperator, At: c.now(), Order: o.clone()})
	default:
		// Something further along (a courier event or a poll) won the race.
		c.log.Info("keeping newer status after operator transition", "order_id", id, "requested", to, "current", cur)
	}
	res := o.clone()
	c.mu.Unlock()

	c.publish(changes)
	return res, nil
}

// ApplyExternalStatusChange applies a status pushed by another actor. Any
// forward move through the lifecycle graph is accepted; repeats are ignored;
// backward moves and moves out of a terminal status are dropped.
func (c *Controller) ApplyExternalStatusChange(id string, to Status) error {
	c.mu.Lock()
	o, ok := c.orders[id]
	if !ok {
		c.mu.Unlock()
		return ErrNotFound
	}
	from := o.Status
	if !to.Valid() {
		c.mu.Unlock()
		return &TransitionError{OrderID: id, From: from, To: to}
	}
	if from == to {
		c.mu.Unlock()
		c.log.Debug("duplicate status event", "order_id", id, "status", to)
		return nil
	}
	if !Reachable(from, to) {
		c.mu.Unlock()
		c.log.Warn("dropped out-of-order status event", "order_id", id, "from", from, "to", to)
		return &TransitionError{OrderID: id, From: from, To: to}
	}
	o.Status = to
	ch := Change{OrderID: id, From: from, To: to, Source: SourceExternal, At: c.now(), Order: o.clone()}
	c.mu.Unlock()

	c.publish([]Change{ch})
	return nil
}

// IngestOrderList merges a fetched snapshot (or a single pushed order) into
// the local collection. For orders known on both sides the status that has
// progressed further wins, so a stale snapshot never undoes local progress.
func (c *Controller) IngestOrderList(orders []Order) {
	now := c.now()
	var changes []Change

	c.mu.Lock()
	for _, in := range orders {
		if in.ID == "" || !in.Status.Valid() {
			c.log.Warn("skipping order without a known status", "order_id", in.ID, "status", in.Status)
			continue
		}
		cur, ok := c.orders[in.ID]
		if !ok {
			cp := in.clone()
			c.orders[in.ID] = &cp
			c.seq = append(c.seq, in.ID)
			changes = append(changes, Change{OrderID: in.ID, To: cp.Status, Source: SourceSnapshot, At: now, Order: cp.clone()})
			continue
		}
		from := cur.Status
		status := reconcile(from, in.Status)
		merged := in.clone()
		merged.Status = status
		merged.ConfirmedAt, merged.ReadyAt, merged.PickedUpAt = cur.ConfirmedAt, cur.ReadyAt, cur.PickedUpAt
		merged.DeliveredAt, merged.CancelledAt = cur.DeliveredAt, cur.CancelledAt
		merged.withTimestamps(in)
		*cur = merged
		if status != from {
			changes = append(changes, Change{OrderID: in.ID, From: from, To: status, Source: SourceSnapshot, At: now, Order: cur.clone()})
		}
	}
	c.mu.Unlock()

	c.publish(changes)
}

// reconcile picks the winner between the local and the fetched status.
func reconcile(local, fetched Status) Status {
	switch {
	case local == fetched:
		return local
	case local.Terminal():
		return local
	case fetched.Terminal():
		return fetched
	case fetched.rank() > local.rank():
		return fetched
	}
	return local
}
