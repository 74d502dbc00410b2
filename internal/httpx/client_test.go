package httpx

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type headers struct {
	auth, rid, contentType string
}

func TestDoJSON_ForwardsTokenAndRequestID(t *testing.T) {
	t.Parallel()
	got := make(chan headers, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got <- headers{r.Header.Get("Authorization"), r.Header.Get(RequestIDHeader), r.Header.Get("Content-Type")}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "tok", time.Second)
	ctx := WithRequestID(context.Background(), "rid-42")
	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, c.DoJSON(ctx, http.MethodPost, "/x", map[string]int{"a": 1}, &out))
	assert.True(t, out.OK)

	h := <-got
	assert.Equal(t, "Bearer tok", h.auth)
	assert.Equal(t, "rid-42", h.rid)
	assert.Equal(t, "application/json", h.contentType)
}

func TestDoJSON_ErrorBody(t *testing.T) {
	t.Parallel()
	cases := []struct {
		body string
		want string
	}{
		{`{"message":"order not found"}`, "order not found"},
		{`{"error":"forbidden"}`, "forbidden"},
		{`<html>bad gateway</html>`, ""},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(tc.body))
		}))
		err := NewClient(srv.URL, "", time.Second).DoJSON(context.Background(), http.MethodGet, "/x", nil, nil)
		srv.Close()

		var se *StatusError
		require.True(t, errors.As(err, &se), tc.body)
		assert.Equal(t, http.StatusNotFound, se.Code)
		assert.Equal(t, tc.want, se.Message, tc.body)
	}
}

func TestDoJSON_NoContentAndBadJSON(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/empty" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_, _ = w.Write([]byte(`{"ok":`))
	}))
	defer srv.Close()
	c := NewClient(srv.URL, "", time.Second)

	var out map[string]any
	require.NoError(t, c.DoJSON(context.Background(), http.MethodPatch, "/empty", nil, &out))
	assert.Nil(t, out)

	err := c.DoJSON(context.Background(), http.MethodGet, "/broken", nil, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode GET /broken")
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Logger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, RequestIDFrom(c.Request.Context())) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Body.String())
	assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Body.String())
	assert.Equal(t, w.Body.String(), w.Header().Get(RequestIDHeader))
}
