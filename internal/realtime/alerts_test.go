package realtime

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/partner-dashboard/internal/order"
)

func TestAlertExpiresAfterTTL(t *testing.T) {
	t.Parallel()
	clock := newFakeClock()
	s := NewAlertSet(clock, 30*time.Second)

	a := s.Add(testOrder("o1", 1, order.StatusConfirmed), "")
	assert.Equal(t, clock.Now().Add(30*time.Second), a.ExpiresAt)

	clock.Advance(29 * time.Second)
	assert.Len(t, s.Active(), 1)

	clock.Advance(2 * time.Second)
	assert.Empty(t, s.Active())
	assert.False(t, s.Ack(a.ID))
}

func TestAlertReplacedForSameOrder(t *testing.T) {
	t.Parallel()
	clock := newFakeClock()
	s := NewAlertSet(clock, 30*time.Second)

	first := s.Add(testOrder("o1", 1, order.StatusConfirmed), "")
	clock.Advance(20 * time.Second)
	second := s.Add(testOrder("o1", 1, order.StatusConfirmed), "again")

	active := s.Active()
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)
	assert.NotEqual(t, first.ID, second.ID)

	// the first alert's timer must not remove the replacement
	clock.Advance(15 * time.Second)
	assert.Len(t, s.Active(), 1)
}

func TestAckAllCallsOnEmpty(t *testing.T) {
	t.Parallel()
	clock := newFakeClock()
	s := NewAlertSet(clock, 30*time.Second)
	calls := 0
	s.onEmpty = func() { calls++ }

	s.Add(testOrder("o1", 1, order.StatusConfirmed), "")
	s.Add(testOrder("o2", 2, order.StatusConfirmed), "")
	assert.Equal(t, 2, s.AckAll())
	assert.Empty(t, s.Active())
	assert.Equal(t, 1, calls)
}

func TestAudioGate(t *testing.T) {
	t.Parallel()
	clock := newFakeClock()
	a := &fakeAudio{}
	g := NewAudioGate(a, clock, 30*time.Second)
	ctx := context.Background()

	played, err := g.Alert(ctx)
	require.NoError(t, err)
	assert.False(t, played)
	assert.ErrorIs(t, g.TestSound(ctx), ErrNoConsent)
	plays, _ := a.counts()
	assert.Equal(t, 0, plays)

	require.NoError(t, g.GrantConsent(ctx))
	require.NoError(t, g.TestSound(ctx))
	played, err = g.Alert(ctx)
	require.NoError(t, err)
	assert.True(t, played)
	assert.True(t, g.Playing())

	a.mu.Lock()
	assert.Equal(t, []bool{false, true}, a.plays)
	a.mu.Unlock()

	clock.Advance(30 * time.Second)
	assert.False(t, g.Playing())
	_, stops := a.counts()
	assert.Equal(t, 1, stops)

	// Stop on a silent gate does nothing
	g.Stop()
	_, stops = a.counts()
	assert.Equal(t, 1, stops)
}

func TestAudioGatePlayFailure(t *testing.T) {
	t.Parallel()
	a := &fakeAudio{playErr: errors.New("blocked")}
	g := NewAudioGate(a, newFakeClock(), time.Second)
	require.NoError(t, g.GrantConsent(context.Background()))

	played, err := g.Alert(context.Background())
	assert.Error(t, err)
	assert.False(t, played)
	assert.False(t, g.Playing())
}

func TestAudioGateIgnoresStaleCeiling(t *testing.T) {
	t.Parallel()
	clock := newFakeClock()
	a := &fakeAudio{}
	g := NewAudioGate(a, clock, 30*time.Second)
	ctx := context.Background()
	require.NoError(t, g.GrantConsent(ctx))

	_, err := g.Alert(ctx)
	require.NoError(t, err)
	clock.mu.Lock()
	first := clock.timers[0].f
	clock.mu.Unlock()

	clock.Advance(20 * time.Second)
	_, err = g.Alert(ctx)
	require.NoError(t, err)

	// the first ceiling fires late, after the second loop started
	first()
	assert.True(t, g.Playing())
	_, stops := a.counts()
	assert.Equal(t, 0, stops)

	clock.Advance(30 * time.Second)
	assert.False(t, g.Playing())
	_, stops = a.counts()
	assert.Equal(t, 1, stops)
}
