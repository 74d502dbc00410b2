// Package notify delivers the short, non-blocking messages ("toasts") the
// dashboard shows to an operator.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

type Toast struct {
	Level       Level         `json:"level"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Duration    time.Duration `json:"duration"`
	At          time.Time     `json:"at"`
}

type Toaster interface {
	Toast(ctx context.Context, t Toast) error
}

// LogToaster writes toasts to the log.
type LogToaster struct{ Log *slog.Logger }

func (l LogToaster) Toast(ctx context.Context, t Toast) error {
	lvl := slog.LevelInfo
	switch t.Level {
	case LevelWarning:
		lvl = slog.LevelWarn
	case LevelError:
		lvl = slog.LevelError
	}
	l.Log.Log(ctx, lvl, "toast", "level", t.Level, "title", t.Title, "description", t.Description)
	return nil
}

// Recorder keeps the most recent toasts in memory so the UI can poll them.
type Recorder struct {
	mu    sync.Mutex
	max   int
	items []Toast
}

func NewRecorder(max int) *Recorder {
	if max <= 0 {
		max = 50
	}
	return &Recorder{max: max}
}

func (r *Recorder) Toast(_ context.Context, t Toast) error {
	if t.At.IsZero() {
		t.At = time.Now()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, t)
	if len(r.items) > r.max {
		r.items = append([]Toast(nil), r.items[len(r.items)-r.max:]...)
	}
	return nil
}

// Recent returns toasts newer than since, oldest first.
func (r *Recorder) Recent(since time.Time) []Toast {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []Toast{}
	for _, t := range r.items {
		if t.At.After(since) {
			out = append(out, t)
		}
	}
	return out
}

// Multi sends every toast to all of its toasters and returns the first error.
type Multi []Toaster

func (m Multi) Toast(ctx context.Context, t Toast) error {
	var first error
	for _, tt := range m {
		if err := tt.Toast(ctx, t); err != nil && first == nil {
			first = err
		}
	}
	return first
}
