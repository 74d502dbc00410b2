package realtime

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Conn is one live push connection.
type Conn interface {
	ReadMessage() ([]byte, error)
	WriteJSON(v any) error
	Close() error
}

type Dialer interface {
	Dial(ctx context.Context) (Conn, error)
}

// WSDialer connects to the backend push endpoint over a websocket.
type WSDialer struct {
	URL    string
	Header http.Header
	Dialer *websocket.Dialer
}

func NewWSDialer(url, token string) *WSDialer {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return &WSDialer{
		URL:    url,
		Header: h,
		Dialer: &websocket.Dialer{HandshakeTimeout: 10 * time.Second, Proxy: http.ProxyFromEnvironment},
	}
}

func (d *WSDialer) Dial(ctx context.Context) (Conn, error) {
	c, _, err := d.Dialer.DialContext(ctx, d.URL, d.Header)
	if err != nil {
		return nil, err
	}
	return &wsConn{c: c}, nil
}

type wsConn struct {
	c  *websocket.Conn
	mu sync.Mutex // gorilla allows one concurrent writer
}

func (w *wsConn) ReadMessage() ([]byte, error) {
	_, b, err := w.c.ReadMessage()
	return b, err
}

func (w *wsConn) WriteJSON(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_ = w.c.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return w.c.WriteJSON(v)
}

func (w *wsConn) Close() error { return w.c.Close() }
