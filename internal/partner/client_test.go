package partner

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/partner-dashboard/internal/httpx"
)

func newServer(t *testing.T) (*Client, chan string) {
	t.Helper()
	availability := make(chan string, 4)
	mux := http.NewServeMux()
	mux.HandleFunc("/partners/users/", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/partners/users/u1":
			_, _ = w.Write([]byte(`{"user":{"id":"u1","name":"Rita","partnerId":"p1"}}`))
		case "/partners/users/u2":
			_, _ = w.Write([]byte(`{"user":{"id":"u2","name":"Zé"}}`))
		default:
			http.Error(w, `{"message":"user not found"}`, http.StatusNotFound)
		}
	})
	mux.HandleFunc("/partners/profile", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"partner":{"id":"p1","name":"Casa do Frango","availability":"OPEN"}}`))
	})
	mux.HandleFunc("/partners/availability", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		availability <- body["availability"]
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return NewClient(httpx.NewClient(srv.URL, "tok", 2*time.Second)), availability
}

func TestResolvePartnerID(t *testing.T) {
	t.Parallel()
	c, _ := newServer(t)
	ctx := context.Background()

	id, err := ResolvePartnerID(ctx, c, "u1")
	require.NoError(t, err)
	assert.Equal(t, "p1", id)

	_, err = ResolvePartnerID(ctx, c, "u2")
	assert.ErrorIs(t, err, ErrNoPartner)

	_, err = ResolvePartnerID(ctx, c, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileAndAvailability(t *testing.T) {
	t.Parallel()
	c, last := newServer(t)
	ctx := context.Background()

	p, err := c.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, Open, p.Availability)

	require.NoError(t, c.SetAvailability(ctx, Busy))
	assert.Equal(t, "BUSY", <-last)

	assert.ErrorIs(t, c.SetAvailability(ctx, Availability("LUNCH")), ErrInvalidAvailability)
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()
	sent := make(chan map[string]any, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/partners/profile" {
			http.NotFound(w, r)
			return
		}
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		sent <- body
		_, _ = w.Write([]byte(`{"partner":{"id":"p1","name":"Casa Nova","city":"Maputo","availability":"OPEN","latitude":-25.96}}`))
	}))
	t.Cleanup(srv.Close)
	c := NewClient(httpx.NewClient(srv.URL, "tok", 2*time.Second))
	ctx := context.Background()

	name, lat := "Casa Nova", -25.96
	p, err := c.UpdateProfile(ctx, ProfileUpdate{Name: &name, Latitude: &lat})
	require.NoError(t, err)
	assert.Equal(t, "Casa Nova", p.Name)
	require.NotNil(t, p.Latitude)
	assert.InDelta(t, -25.96, *p.Latitude, 1e-9)
	assert.Equal(t, map[string]any{"name": "Casa Nova", "latitude": -25.96}, <-sent)

	blank, far, lunch := "  ", 120.0, Availability("LUNCH")
	for _, u := range []ProfileUpdate{{Name: &blank}, {Latitude: &far}, {Availability: &lunch}} {
		_, err := c.UpdateProfile(ctx, u)
		assert.Error(t, err)
	}
	_, err = c.UpdateProfile(ctx, ProfileUpdate{Availability: &lunch})
	assert.ErrorIs(t, err, ErrInvalidAvailability)
	_, err = c.UpdateProfile(ctx, ProfileUpdate{Latitude: &far})
	assert.ErrorIs(t, err, ErrInvalidProfile)
	assert.Empty(t, sent)
}
