package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/MikeMC777/partner-dashboard/internal/httpx"
)

// API is the slice of the platform backend the controller depends on.
type API interface {
	ListOrders(ctx context.Context) ([]Order, error)
	UpdateStatus(ctx context.Context, id string, status Status) (Order, error)
}

type Client struct {
	HTTP *httpx.Client
	Log  *slog.Logger
}

func NewClient(c *httpx.Client, log *slog.Logger) *Client {
	return &Client{HTTP: c, Log: log}
}

// ListOrders fetches the partner's order snapshot. Orders whose status this
// build does not know are skipped rather than failing the whole snapshot.
func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	var res listOrdersResponse
	if err := c.HTTP.DoJSON(ctx, http.MethodGet, "/partners/orders", nil, &res); err != nil {
		return nil, remoteErr("list orders", err)
	}
	if !res.Success {
		return nil, &RemoteCallError{Op: "list orders", Err: errors.New(orDefault(res.Message, "backend reported failure"))}
	}
	out := make([]Order, 0, len(res.Orders))
	for _, raw := range res.Orders {
		var o Order
		if err := json.Unmarshal(raw, &o); err != nil {
			c.Log.Warn("skipping undecodable order", "err", err)
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (c *Client) UpdateStatus(ctx context.Context, id string, status Status) (Order, error) {
	var res updateStatusResponse
	path := fmt.Sprintf("/partners/orders/%s/status", url.PathEscape(id))
	if err := c.HTTP.DoJSON(ctx, http.MethodPatch, path, updateStatusRequest{Status: status}, &res); err != nil {
		return Order{}, remoteErr("update status", err)
	}
	if !res.Success {
		return Order{}, &RemoteCallError{Op: "update status", Err: errors.New(orDefault(res.Message, "backend reported failure"))}
	}
	return res.Order, nil
}

func remoteErr(op string, err error) error {
	var se *httpx.StatusError
	if errors.As(err, &se) {
		return &RemoteCallError{Op: op, StatusCode: se.Code, Err: err}
	}
	return &RemoteCallError{Op: op, Err: err}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
