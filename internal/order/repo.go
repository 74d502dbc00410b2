package order

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Event is one journal row: a status change the controller applied.
type Event struct {
	OrderID     string    `json:"order_id"`
	OrderNumber int       `json:"order_number"`
	From        Status    `json:"from_status,omitempty"`
	To          Status    `json:"to_status"`
	Source      Source    `json:"source"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Journal keeps the status history of every order seen by this dashboard.
type Journal interface {
	Append(ctx context.Context, e Event) error
	Timeline(ctx context.Context, orderID string, limit, offset int) ([]Event, error)
}

// recordQueue bounds the changes waiting for the journal writer.
const recordQueue = 1024

// Record subscribes j to ctrl. Changes are appended by a single background
// writer so a slow journal never holds up the controller; when the queue is
// full the change is logged and dropped. Journal failures are logged and
// never reach the controller. Calling the returned func unsubscribes and
// waits for the queued changes to be written.
func Record(ctrl *Controller, j Journal, log *slog.Logger) (cancel func()) {
	log = log.With("component", "journal")
	queue := make(chan Event, recordQueue)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for e := range queue {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := j.Append(ctx, e); err != nil {
				log.Error("journal append failed", "order_id", e.OrderID, "err", err)
			}
			cancel()
		}
	}()

	var (
		mu     sync.Mutex
		closed bool
	)
	unsubscribe := ctrl.Subscribe(func(ch Change) {
		e := Event{
			OrderID:     ch.OrderID,
			OrderNumber: ch.Order.OrderNumber,
			From:        ch.From,
			To:          ch.To,
			Source:      ch.Source,
			OccurredAt:  ch.At,
		}
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		select {
		case queue <- e:
		default:
			log.Warn("journal queue full, dropping event", "order_id", e.OrderID, "to", e.To)
		}
	})

	var once sync.Once
	return func() {
		once.Do(func() {
			unsubscribe()
			mu.Lock()
			closed = true
			close(queue)
			mu.Unlock()
			<-done
		})
	}
}

const journalSchema = `
CREATE TABLE IF NOT EXISTS order_status_events (
  id           BIGSERIAL PRIMARY KEY,
  order_id     TEXT        NOT NULL,
  order_number INTEGER     NOT NULL,
  from_status  TEXT,
  to_status    TEXT        NOT NULL,
  source       TEXT        NOT NULL,
  occurred_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS order_status_events_order_idx
  ON order_status_events (order_id, occurred_at);
`

type PGJournal struct{ db *pgxpool.Pool }

func NewPGJournal(db *pgxpool.Pool) *PGJournal { return &PGJournal{db: db} }

// Migrate creates the journal table if it is missing.
func (r *PGJournal) Migrate(ctx context.Context) error {
	_, err := r.db.Exec(ctx, journalSchema)
	return err
}

func (r *PGJournal) Append(ctx context.Context, e Event) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
    INSERT INTO order_status_events (order_id, order_number, from_status, to_status, source, occurred_at)
    VALUES ($1,$2,NULLIF($3,''),$4,$5,$6)
  `, e.OrderID, e.OrderNumber, string(e.From), string(e.To), string(e.Source), e.OccurredAt)
	return err
}

func (r *PGJournal) Timeline(ctx context.Context, orderID string, limit, offset int) ([]Event, error) {
	limit, offset = clampPage(limit, offset)
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
    SELECT order_id, order_number, COALESCE(from_status,''), to_status, source, occurred_at
    FROM order_status_events WHERE order_id=$1
    ORDER BY occurred_at ASC, id ASC LIMIT $2 OFFSET $3
  `, orderID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Event{}
	for rows.Next() {
		var (
			e             Event
			from, to, src string
		)
		if err := rows.Scan(&e.OrderID, &e.OrderNumber, &from, &to, &src, &e.OccurredAt); err != nil {
			return nil, err
		}
		e.From, e.To, e.Source = Status(from), Status(to), Source(src)
		out = append(out, e)
	}
	return out, rows.Err()
}

// MemoryJournal is used when no database is configured.
type MemoryJournal struct {
	mu     sync.Mutex
	events map[string][]Event
}

func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{events: make(map[string][]Event)}
}

func (m *MemoryJournal) Append(_ context.Context, e Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events[e.OrderID] = append(m.events[e.OrderID], e)
	return nil
}

func (m *MemoryJournal) Timeline(_ context.Context, orderID string, limit, offset int) ([]Event, error) {
	limit, offset = clampPage(limit, offset)
	m.mu.Lock()
	evs := append([]Event(nil), m.events[orderID]...)
	m.mu.Unlock()

	sort.SliceStable(evs, func(i, j int) bool { return evs[i].OccurredAt.Before(evs[j].OccurredAt) })
	if offset >= len(evs) {
		return []Event{}, nil
	}
	end := offset + limit
	if end > len(evs) {
		end = len(evs)
	}
	return evs[offset:end], nil
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
