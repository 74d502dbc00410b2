// Package realtime keeps the partner's push connection to the platform
// backend and turns its events into order updates, alerts and toasts.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/MikeMC777/partner-dashboard/internal/notify"
	"github.com/MikeMC777/partner-dashboard/internal/order"
)

var ErrConnectionLost = errors.New("push connection lost")

type ConnState int

const (
	Disconnected ConnState = iota
	Connecting
	Connected
)

func (s ConnState) String() string {
	switch s {
	case Connecting:
		return "CONNECTING"
	case Connected:
		return "CONNECTED"
	}
	return "DISCONNECTED"
}

func (s ConnState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Sink receives the order updates decoded from push events.
// *order.Controller implements it.
type Sink interface {
	IngestOrderList(orders []order.Order)
	ApplyExternalStatusChange(id string, to order.Status) error
}

// Identity is what the channel registers with after every connect.
type Identity struct {
	UserID    string
	PartnerID string
}

type Options struct {
	Dialer   Dialer
	Identity Identity
	Sink     Sink
	Toaster  notify.Toaster
	Audio    AudioAlerter
	Clock    Clock
	Log      *slog.Logger

	AlertTTL       time.Duration
	AudioCeiling   time.Duration
	ReconnectDelay time.Duration
	MaxReconnects  int

	// OnStateChange is called after every connection state change.
	OnStateChange func(ConnState)
	// OnGiveUp is called once the reconnect budget is spent.
	OnGiveUp func()
}

// Channel is the realtime notification channel for one partner. Create it
// with New, run it with Run and stop it by cancelling Run's context or
// calling Close.
type Channel struct {
	opts   Options
	log    *slog.Logger
	alerts *AlertSet
	audio  *AudioGate

	mu        sync.Mutex
	state     ConnState
	cancel    context.CancelFunc
	reconnect chan struct{}
}

func New(o Options) *Channel {
	if o.Clock == nil {
		o.Clock = realClock{}
	}
	if o.Audio == nil {
		o.Audio = NopAudio{}
	}
	if o.Log == nil {
		o.Log = slog.Default()
	}
	if o.Toaster == nil {
		o.Toaster = notify.LogToaster{Log: o.Log}
	}
	if o.AlertTTL <= 0 {
		o.AlertTTL = 30 * time.Second
	}
	if o.AudioCeiling <= 0 {
		o.AudioCeiling = 30 * time.Second
	}
	if o.ReconnectDelay <= 0 {
		o.ReconnectDelay = time.Second
	}
	if o.MaxReconnects <= 0 {
		o.MaxReconnects = 5
	}
	c := &Channel{
		opts:      o,
		log:       o.Log.With("component", "realtime"),
		alerts:    NewAlertSet(o.Clock, o.AlertTTL),
		audio:     NewAudioGate(o.Audio, o.Clock, o.AudioCeiling),
		reconnect: make(chan struct{}, 1),
	}
	c.alerts.onEmpty = c.audio.Stop
	return c
}

func (c *Channel) State() ConnState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Channel) Alerts() *AlertSet { return c.alerts }

func (c *Channel) Audio() *AudioGate { return c.audio }

// GrantAudioConsent must be triggered by an operator click or tap.
func (c *Channel) GrantAudioConsent(ctx context.Context) error {
	if err := c.audio.GrantConsent(ctx); err != nil {
		c.log.Error("audio unlock failed", "err", err)
		c.toast(ctx, notify.LevelError, "Could not enable sound", "Please try again")
		return err
	}
	c.toast(ctx, notify.LevelSuccess, "Sound enabled", "You will hear an alert for every new order")
	return nil
}

// Acknowledge dismisses one alert. Dismissing the last one stops the sound.
func (c *Channel) Acknowledge(id string) bool { return c.alerts.Ack(id) }

// AcknowledgeAll dismisses every alert and stops the sound.
func (c *Channel) AcknowledgeAll() int { return c.alerts.AckAll() }

// Reconnect restarts the connection cycle after the channel gave up.
func (c *Channel) Reconnect() {
	select {
	case c.reconnect <- struct{}{}:
	default:
	}
}

// Close stops a running channel.
func (c *Channel) Close() {
	c.mu.Lock()
	cancel := c.cancel
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (c *Channel) setState(s ConnState) {
	c.mu.Lock()
	changed := c.state != s
	c.state = s
	c.mu.Unlock()
	if changed {
		c.log.Info("connection state", "state", s.String())
		if c.opts.OnStateChange != nil {
			c.opts.OnStateChange(s)
		}
	}
}

// Run connects and keeps the connection alive until ctx is cancelled. After
// MaxReconnects consecutive failures it settles in Disconnected and waits for
// Reconnect. Connection errors are logged, never returned.
func (c *Channel) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	c.mu.Lock()
	c.cancel = cancel
	c.mu.Unlock()
	defer cancel()
	defer c.setState(Disconnected)

	for {
		c.connectLoop(ctx)
		if ctx.Err() != nil {
			return nil
		}
		c.log.Warn("giving up on push connection", "attempts", c.opts.MaxReconnects)
		if c.opts.OnGiveUp != nil {
			c.opts.OnGiveUp()
		}
		select {
		case <-ctx.Done():
			return nil
		case <-c.reconnect:
			c.log.Info("manual reconnect requested")
		}
	}
}

func (c *Channel) connectLoop(ctx context.Context) {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.opts.ReconnectDelay
	exp.MaxInterval = 30 * time.Second
	exp.MaxElapsedTime = 0
	b := backoff.WithMaxRetries(exp, uint64(c.opts.MaxReconnects))
	b.Reset()

	for {
		connected, err := c.session(ctx)
		if ctx.Err() != nil {
			return
		}
		if connected {
			b.Reset()
		}
		c.log.Warn("push connection down", "err", err)

		wait := b.NextBackOff()
		if wait == backoff.Stop {
			return
		}
		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return
		case <-t.C:
		}
	}
}

// session runs one connection: dial, register once, then read until the
// connection fails. It reports whether the dial succeeded.
func (c *Channel) session(ctx context.Context) (bool, error) {
	c.setState(Connecting)
	conn, err := c.opts.Dialer.Dial(ctx)
	if err != nil {
		c.setState(Disconnected)
		return false, fmt.Errorf("dial: %w", err)
	}
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()
	defer conn.Close()
	defer c.setState(Disconnected)

	c.setState(Connected)
	reg := outbound{Event: EventRegister, Data: RegisterMessage{
		UserID:    c.opts.Identity.UserID,
		UserType:  "partner",
		PartnerID: c.opts.Identity.PartnerID,
	}}
	if err := conn.WriteJSON(reg); err != nil {
		return true, fmt.Errorf("%w: register: %v", ErrConnectionLost, err)
	}
	c.log.Info("registered", "user_id", c.opts.Identity.UserID, "partner_id", c.opts.Identity.PartnerID)

	for {
		msg, err := conn.ReadMessage()
		if err != nil {
			return true, fmt.Errorf("%w: %v", ErrConnectionLost, err)
		}
		c.handle(ctx, msg)
	}
}

func (c *Channel) handle(ctx context.Context, msg []byte) {
	var env Envelope
	if err := json.Unmarshal(msg, &env); err != nil {
		c.log.Warn("undecodable push frame", "err", err)
		return
	}
	switch env.Event {
	case EventNewOrder:
		var ev NewOrderEvent
		if err := json.Unmarshal(env.Data, &ev); err != nil || ev.Order.ID == "" || !ev.Order.Status.Valid() {
			c.log.Warn("bad new-order payload", "order_id", ev.Order.ID, "status", ev.Order.Status, "err", err)
			return
		}
		c.onNewOrder(ctx, ev)
	case EventStatusChanged:
		var ev StatusChangedEvent
		if err := json.Unmarshal(env.Data, &ev); err != nil || ev.Order.ID == "" {
			c.log.Warn("bad order-status-changed payload", "err", err)
			return
		}
		if ev.Status == "" {
			ev.Status = ev.Order.Status
		}
		if !ev.Status.Valid() {
			c.log.Warn("order-status-changed without a status", "order_id", ev.Order.ID)
			return
		}
		c.onStatusChanged(ctx, ev)
	default:
		c.log.Debug("ignoring push event", "event", env.Event)
	}
}

func (c *Channel) onNewOrder(ctx context.Context, ev NewOrderEvent) {
	o := ev.Order
	c.log.Info("new order", "order_id", o.ID, "order_number", o.OrderNumber, "status", o.Status)

	c.opts.Sink.IngestOrderList([]order.Order{o})
	if o.Status == order.StatusPending {
		// unpaid: tracked, but not shown or announced until confirmed
		return
	}
	c.alerts.Add(o, ev.Message)
	c.toast(ctx, notify.LevelSuccess,
		fmt.Sprintf("New order #%d", o.OrderNumber),
		fmt.Sprintf("%s - %s MT", o.CustomerName, o.Total.StringFixed(2)))

	played, err := c.audio.Alert(ctx)
	switch {
	case err != nil:
		c.log.Error("audio play failed", "err", err)
		c.toast(ctx, notify.LevelError, "Sound blocked", "Click 'Enable sound' to hear new order alerts")
	case !played:
		c.toast(ctx, notify.LevelWarning, "Sound disabled", "Click 'Enable sound' to hear new order alerts")
	}
}

func (c *Channel) onStatusChanged(ctx context.Context, ev StatusChangedEvent) {
	to := ev.Status
	err := c.opts.Sink.ApplyExternalStatusChange(ev.Order.ID, to)
	switch {
	case errors.Is(err, order.ErrNotFound):
		o := ev.Order
		o.Status = to
		c.opts.Sink.IngestOrderList([]order.Order{o})
	case err != nil:
		c.log.Warn("status event not applied", "order_id", ev.Order.ID, "status", to, "err", err)
	}
	c.toast(ctx, notify.LevelInfo, fmt.Sprintf("Order #%d", ev.Order.OrderNumber), ev.Message)
}

func (c *Channel) toast(ctx context.Context, lvl notify.Level, title, desc string) {
	d := 5 * time.Second
	if lvl == notify.LevelSuccess {
		d = 10 * time.Second
	}
	t := notify.Toast{Level: lvl, Title: title, Description: desc, Duration: d, At: c.opts.Clock.Now()}
	if err := c.opts.Toaster.Toast(ctx, t); err != nil {
		c.log.Warn("toast delivery failed", "err", err)
	}
}
