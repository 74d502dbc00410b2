package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"
)

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

// fakeClock only moves when Advance is called.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	c    *fakeClock
	at   time.Time
	f    func()
	done bool
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{c: c, at: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.c.mu.Lock()
	defer t.c.mu.Unlock()
	was := !t.done
	t.done = true
	return was
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.done && !t.at.After(c.now) {
			t.done = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()
	for _, t := range due {
		t.f()
	}
}

type fakeAudio struct {
	mu        sync.Mutex
	unlockErr error
	playErr   error
	plays     []bool
	stops     int
}

func (a *fakeAudio) Unlock(context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.unlockErr
}

func (a *fakeAudio) Play(_ context.Context, loop bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.playErr != nil {
		return a.playErr
	}
	a.plays = append(a.plays, loop)
	return nil
}

func (a *fakeAudio) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stops++
}

func (a *fakeAudio) counts() (plays, stops int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.plays), a.stops
}

// fakeConn delivers frames pushed on in and records every write.
type fakeConn struct {
	in     chan []byte
	closed chan struct{}
	once   sync.Once

	mu     sync.Mutex
	writes []Envelope
}

func newFakeConn() *fakeConn {
	return &fakeConn{in: make(chan []byte, 16), closed: make(chan struct{})}
}

func (c *fakeConn) ReadMessage() ([]byte, error) {
	select {
	case <-c.closed:
		return nil, errors.New("use of closed connection")
	default:
	}
	select {
	case m := <-c.in:
		return m, nil
	case <-c.closed:
		return nil, errors.New("use of closed connection")
	}
}

func (c *fakeConn) WriteJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var env Envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writes = append(c.writes, env)
	return nil
}

func (c *fakeConn) Close() error {
	c.once.Do(func() { close(c.closed) })
	return nil
}

func (c *fakeConn) written() []Envelope {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Envelope(nil), c.writes...)
}

func (c *fakeConn) push(event string, data any) {
	b, _ := json.Marshal(map[string]any{"event": event, "data": data})
	c.in <- b
}

type fakeDialer struct {
	mu      sync.Mutex
	dials   int
	failing bool
	conns   chan *fakeConn
}

func newFakeDialer(failing bool) *fakeDialer {
	return &fakeDialer{failing: failing, conns: make(chan *fakeConn, 16)}
}

func (d *fakeDialer) Dial(ctx context.Context) (Conn, error) {
	d.mu.Lock()
	d.dials++
	failing := d.failing
	d.mu.Unlock()
	if failing {
		return nil, errors.New("connection refused")
	}
	c := newFakeConn()
	d.conns <- c
	return c, nil
}

func (d *fakeDialer) setFailing(v bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.failing = v
}

func (d *fakeDialer) dialCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dials
}

func (d *fakeDialer) next(timeout time.Duration) *fakeConn {
	select {
	case c := <-d.conns:
		return c
	case <-time.After(timeout):
		return nil
	}
}
