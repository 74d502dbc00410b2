package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/partner-dashboard/internal/notify"
	ord "github.com/MikeMC777/partner-dashboard/internal/order"
	"github.com/MikeMC777/partner-dashboard/internal/realtime"
)

//
// ---------- STUBS & FAKES ----------
//

// stubAPI implements ord.API in memory so the real controller can be used.
type stubAPI struct {
	mu     sync.Mutex
	err    error
	called int
}

func (s *stubAPI) ListOrders(ctx context.Context) ([]ord.Order, error) { return nil, nil }

func (s *stubAPI) UpdateStatus(ctx context.Context, id string, to ord.Status) (ord.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.called++
	if s.err != nil {
		return ord.Order{}, s.err
	}
	return ord.Order{ID: id, Status: to}, nil
}

type stubDialer struct{}

func (stubDialer) Dial(ctx context.Context) (realtime.Conn, error) {
	return nil, errors.New("offline")
}

type stubAudio struct{ unlockErr error }

func (a stubAudio) Unlock(context.Context) error     { return a.unlockErr }
func (a stubAudio) Play(context.Context, bool) error { return nil }
func (a stubAudio) Stop()                            {}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

type env struct {
	r      *gin.Engine
	api    *stubAPI
	ctrl   *ord.Controller
	live   *realtime.Channel
	toasts *notify.Recorder
}

func newEnv(t *testing.T, audio realtime.AudioAlerter) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)
	e := &env{api: &stubAPI{}, toasts: notify.NewRecorder(50)}
	e.ctrl = ord.NewController(e.api, discard(), time.Second)
	journal := ord.NewMemoryJournal()
	t.Cleanup(ord.Record(e.ctrl, journal, discard()))
	e.live = realtime.New(realtime.Options{
		Dialer:  stubDialer{},
		Sink:    e.ctrl,
		Toaster: e.toasts,
		Audio:   audio,
		Log:     discard(),
	})
	e.r = NewRouter(Deps{
		Orders:  e.ctrl,
		Journal: journal,
		Live:    e.live,
		Toasts:  e.toasts,
		Toaster: e.toasts,
		Log:     discard(),
	})
	return e
}

func (e *env) do(method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	e.r.ServeHTTP(w, req)
	return w
}

func seed(id string, n int, st ord.Status) ord.Order {
	return ord.Order{
		ID:           id,
		OrderNumber:  n,
		Status:       st,
		Total:        decimal.RequireFromString("320.00"),
		CustomerName: "Ana",
		CreatedAt:    time.Now(),
	}
}

//
// ---------- TESTS ----------
//

func TestHealthz(t *testing.T) {
	t.Parallel()
	e := newEnv(t, nil)
	w := e.do(http.MethodGet, "/healthz", "")
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestListOrders_Filter(t *testing.T) {
	t.Parallel()
	e := newEnv(t, nil)
	e.ctrl.IngestOrderList([]ord.Order{
		seed("a", 1, ord.StatusConfirmed),
		seed("b", 2, ord.StatusPreparing),
		seed("c", 3, ord.StatusPending),
	})

	w := e.do(http.MethodGet, "/orders?filter=new", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var res struct {
		Filter string         `json:"filter"`
		Count  int            `json:"count"`
		Counts map[string]int `json:"counts"`
		Orders []ord.Order    `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "new", res.Filter)
	require.Len(t, res.Orders, 1)
	assert.Equal(t, "a", res.Orders[0].ID)
	assert.Equal(t, 2, res.Counts["all"])

	w = e.do(http.MethodGet, "/orders?filter=kitchen", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrder_NotFound(t *testing.T) {
	t.Parallel()
	e := newEnv(t, nil)
	e.ctrl.IngestOrderList([]ord.Order{seed("p", 1, ord.StatusPending)})

	for _, id := range []string{uuid.NewString(), "p"} {
		w := e.do(http.MethodGet, "/orders/"+id, "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("id=%s status=%d body=%s (expected 404)", id, w.Code, w.Body.String())
		}
	}
}

func TestUpdateOrderStatus_OK(t *testing.T) {
	t.Parallel()
	e := newEnv(t, nil)
	e.ctrl.IngestOrderList([]ord.Order{seed("a", 7, ord.StatusConfirmed)})

	w := e.do(http.MethodPatch, "/orders/a/status", `{"status":"PREPARING"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	o, _ := e.ctrl.Get("a")
	assert.Equal(t, ord.StatusPreparing, o.Status)

	toasts := e.toasts.Recent(time.Time{})
	require.Len(t, toasts, 1)
	assert.Equal(t, "Order #7 is now Preparing", toasts[0].Description)

	var evs []ord.Event
	require.Eventually(t, func() bool {
		w = e.do(http.MethodGet, "/orders/a/timeline", "")
		evs = nil
		return w.Code == http.StatusOK && json.Unmarshal(w.Body.Bytes(), &evs) == nil && len(evs) == 2
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, ord.SourceOperator, evs[1].Source)
}

func TestUpdateOrderStatus_ErrorMapping(t *testing.T) {
	t.Parallel()
	e := newEnv(t, nil)
	e.ctrl.IngestOrderList([]ord.Order{seed("a", 1, ord.StatusReadyForPickup), seed("b", 2, ord.StatusConfirmed)})

	cases := []struct {
		path, body string
		want       int
	}{
		{"/orders/a/status", `{"status":"PICKED_UP"}`, http.StatusUnprocessableEntity},
		{"/orders/a/status", `{"status":"LOST"}`, http.StatusBadRequest},
		{"/orders/a/status", `not json`, http.StatusBadRequest},
		{"/orders/zzz/status", `{"status":"CONFIRMED"}`, http.StatusNotFound},
	}
	for _, tc := range cases {
		w := e.do(http.MethodPatch, tc.path, tc.body)
		assert.Equal(t, tc.want, w.Code, "%s %s: %s", tc.path, tc.body, w.Body.String())
	}
	assert.Equal(t, 0, e.api.called)

	e.api.mu.Lock()
	e.api.err = errors.New("connection reset")
	e.api.mu.Unlock()
	w := e.do(http.MethodPatch, "/orders/b/status", `{"status":"PREPARING"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	o, _ := e.ctrl.Get("b")
	assert.Equal(t, ord.StatusConfirmed, o.Status)

	toasts := e.toasts.Recent(time.Time{})
	require.NotEmpty(t, toasts)
	assert.Equal(t, "Failed to update status", toasts[len(toasts)-1].Title)
}

func TestStatuses(t *testing.T) {
	t.Parallel()
	e := newEnv(t, nil)
	w := e.do(http.MethodGet, "/orders/statuses", "")
	require.Equal(t, http.StatusOK, w.Code)
	var ds []ord.Descriptor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ds))
	assert.Len(t, ds, len(ord.Statuses))
}

func TestConnectionAndAudio(t *testing.T) {
	t.Parallel()
	e := newEnv(t, nil)

	w := e.do(http.MethodGet, "/connection", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"state":"DISCONNECTED","audioConsentGranted":false,"playing":false,"activeAlerts":0}`, w.Body.String())

	assert.Equal(t, http.StatusConflict, e.do(http.MethodPost, "/audio/test", "").Code)
	assert.Equal(t, http.StatusNoContent, e.do(http.MethodPost, "/audio/consent", "").Code)
	assert.Equal(t, http.StatusNoContent, e.do(http.MethodPost, "/audio/test", "").Code)

	w = e.do(http.MethodGet, "/connection", "")
	assert.Contains(t, w.Body.String(), `"audioConsentGranted":true`)
}

func TestAudioConsent_UnlockFailure(t *testing.T) {
	t.Parallel()
	e := newEnv(t, stubAudio{unlockErr: errors.New("NotAllowedError")})
	w := e.do(http.MethodPost, "/audio/consent", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d body=%s (expected 500)", w.Code, w.Body.String())
	}
}

func TestAlerts(t *testing.T) {
	t.Parallel()
	e := newEnv(t, nil)
	a := e.live.Alerts().Add(seed("a", 1, ord.StatusConfirmed), "New order")
	e.live.Alerts().Add(seed("b", 2, ord.StatusConfirmed), "New order")

	w := e.do(http.MethodGet, "/alerts", "")
	require.Equal(t, http.StatusOK, w.Code)
	var alerts []realtime.Alert
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &alerts))
	assert.Len(t, alerts, 2)

	assert.Equal(t, http.StatusNoContent, e.do(http.MethodPost, "/alerts/"+a.ID+"/ack", "").Code)
	assert.Equal(t, http.StatusNotFound, e.do(http.MethodPost, "/alerts/"+a.ID+"/ack", "").Code)

	w = e.do(http.MethodPost, "/alerts/ack", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"acknowledged":1}`, w.Body.String())
}

func TestToasts_Since(t *testing.T) {
	t.Parallel()
	e := newEnv(t, nil)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	_ = e.toasts.Toast(context.Background(), notify.Toast{Title: "old", At: base})
	_ = e.toasts.Toast(context.Background(), notify.Toast{Title: "new", At: base.Add(time.Minute)})

	w := e.do(http.MethodGet, "/toasts?since="+base.Format(time.RFC3339), "")
	require.Equal(t, http.StatusOK, w.Code)
	var ts []notify.Toast
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ts))
	require.Len(t, ts, 1)
	assert.Equal(t, "new", ts[0].Title)

	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodGet, "/toasts?since=yesterday", "").Code)
}

func TestRefreshAndReconnect(t *testing.T) {
	t.Parallel()
	e := newEnv(t, nil)
	kicks := 0
	e.r = NewRouter(Deps{
		Orders:  e.ctrl,
		Live:    e.live,
		Refresh: func() { kicks++ },
		Log:     discard(),
	})

	assert.Equal(t, http.StatusAccepted, e.do(http.MethodPost, "/orders/refresh", "").Code)
	assert.Equal(t, 1, kicks)
	assert.Equal(t, http.StatusAccepted, e.do(http.MethodPost, "/connection/reconnect", "").Code)
}
