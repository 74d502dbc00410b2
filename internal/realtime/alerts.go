package realtime

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MikeMC777/partner-dashboard/internal/order"
)

// Alert is the transient notice raised for a new order. It disappears at
// ExpiresAt whether or not anyone acknowledged it.
type Alert struct {
	ID        string      `json:"id"`
	Order     order.Order `json:"order"`
	Message   string      `json:"message,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

type alertEntry struct {
	Alert
	timer Timer
}

type AlertSet struct {
	clock Clock
	ttl   time.Duration

	mu     sync.Mutex
	alerts []*alertEntry
	// onEmpty runs (outside mu) when the last alert is acknowledged.
	onEmpty func()
}

func NewAlertSet(clock Clock, ttl time.Duration) *AlertSet {
	return &AlertSet{clock: clock, ttl: ttl}
}

// Add raises an alert for o. An order that already has an active alert gets
// a fresh one in its place.
func (s *AlertSet) Add(o order.Order, msg string) Alert {
	now := s.clock.Now()
	e := &alertEntry{Alert: Alert{
		ID:        uuid.NewString(),
		Order:     o,
		Message:   msg,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}}
	id := e.ID
	e.timer = s.clock.AfterFunc(s.ttl, func() { s.remove(id) })

	s.mu.Lock()
	kept := s.alerts[:0]
	for _, a := range s.alerts {
		if a.Order.ID == o.ID {
			a.timer.Stop()
			continue
		}
		kept = append(kept, a)
	}
	s.alerts = append(kept, e)
	s.mu.Unlock()
	return e.Alert
}

// Active returns the alerts that have not expired, oldest first.
func (s *AlertSet) Active() []Alert {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked(now)
	out := make([]Alert, 0, len(s.alerts))
	for _, a := range s.alerts {
		out = append(out, a.Alert)
	}
	return out
}

// Ack removes one alert and reports whether it was active.
func (s *AlertSet) Ack(id string) bool {
	now := s.clock.Now()
	s.mu.Lock()
	s.pruneLocked(now)
	found := false
	for i, a := range s.alerts {
		if a.ID == id {
			a.timer.Stop()
			s.alerts = append(s.alerts[:i], s.alerts[i+1:]...)
			found = true
			break
		}
	}
	empty := len(s.alerts) == 0
	fn := s.onEmpty
	s.mu.Unlock()

	if found && empty && fn != nil {
		fn()
	}
	return found
}

// AckAll clears every alert and returns how many were active.
func (s *AlertSet) AckAll() int {
	now := s.clock.Now()
	s.mu.Lock()
	s.pruneLocked(now)
	n := len(s.alerts)
	for _, a := range s.alerts {
		a.timer.Stop()
	}
	s.alerts = nil
	fn := s.onEmpty
	s.mu.Unlock()

	if fn != nil {
		fn()
	}
	return n
}

func (s *AlertSet) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.alerts {
		if a.ID == id {
			s.alerts = append(s.alerts[:i], s.alerts[i+1:]...)
			return
		}
	}
}

func (s *AlertSet) pruneLocked(now time.Time) {
	kept := s.alerts[:0]
	for _, a := range s.alerts {
		if now.Before(a.ExpiresAt) {
			kept = append(kept, a)
		} else {
			a.timer.Stop()
		}
	}
	s.alerts = kept
}
