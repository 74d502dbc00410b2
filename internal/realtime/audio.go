package realtime

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	ErrAudioUnlock = errors.New("audio unlock failed")
	ErrNoConsent   = errors.New("audio consent not granted")
)

// AudioAlerter is the platform's sound output. Unlock must be called from a
// direct operator gesture; Play with loop=true repeats until Stop.
type AudioAlerter interface {
	Unlock(ctx context.Context) error
	Play(ctx context.Context, loop bool) error
	Stop()
}

// NopAudio is used where there is no speaker (tests, headless hosts). The
// UI still learns that a sound should be playing through AudioGate.Playing.
type NopAudio struct{}

func (NopAudio) Unlock(context.Context) error     { return nil }
func (NopAudio) Play(context.Context, bool) error { return nil }
func (NopAudio) Stop()                            {}

// AudioGate holds the session's audio consent and enforces the alert ceiling.
type AudioGate struct {
	audio   AudioAlerter
	clock   Clock
	ceiling time.Duration

	mu      sync.Mutex
	consent bool
	playing bool
	stopper Timer
	gen     uint64
}

func NewAudioGate(a AudioAlerter, clock Clock, ceiling time.Duration) *AudioGate {
	return &AudioGate{audio: a, clock: clock, ceiling: ceiling}
}

// GrantConsent unlocks playback. Consent stays granted for the life of the
// gate; a failed unlock leaves it off.
func (g *AudioGate) GrantConsent(ctx context.Context) error {
	if err := g.audio.Unlock(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrAudioUnlock, err)
	}
	g.mu.Lock()
	g.consent = true
	g.mu.Unlock()
	return nil
}

func (g *AudioGate) Consent() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.consent
}

func (g *AudioGate) Playing() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.playing
}

// Alert starts the looping new-order sound if consent was granted. The sound
// stops by itself after the ceiling. It reports whether playback started.
func (g *AudioGate) Alert(ctx context.Context) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.consent {
		return false, nil
	}
	if err := g.audio.Play(ctx, true); err != nil {
		return false, err
	}
	g.playing = true
	if g.stopper != nil {
		g.stopper.Stop()
	}
	g.gen++
	gen := g.gen
	g.stopper = g.clock.AfterFunc(g.ceiling, func() { g.expire(gen) })
	return true, nil
}

// expire is the ceiling timer for the loop started at generation gen. A timer
// that fired while a newer Alert held the lock is ignored.
func (g *AudioGate) expire(gen uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if gen != g.gen {
		return
	}
	g.stopLocked()
}

// TestSound plays the alert once so the operator can check the speaker.
func (g *AudioGate) TestSound(ctx context.Context) error {
	if !g.Consent() {
		return ErrNoConsent
	}
	return g.audio.Play(ctx, false)
}

func (g *AudioGate) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stopLocked()
}

func (g *AudioGate) stopLocked() {
	if g.stopper != nil {
		g.stopper.Stop()
		g.stopper = nil
	}
	if g.playing {
		g.playing = false
		g.audio.Stop()
	}
}
