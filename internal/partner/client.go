// Package partner wraps the account and profile endpoints of the platform
// backend.
package partner

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MikeMC777/partner-dashboard/internal/httpx"
)

var (
	ErrNotFound            = errors.New("user not found")
	ErrNoPartner           = errors.New("user is not linked to a partner")
	ErrInvalidAvailability = errors.New("invalid availability")
	ErrInvalidProfile      = errors.New("invalid profile")
)

type Service interface {
	User(ctx context.Context, id string) (*User, error)
	Profile(ctx context.Context) (*Profile, error)
	UpdateProfile(ctx context.Context, u ProfileUpdate) (*Profile, error)
	SetAvailability(ctx context.Context, a Availability) error
}

type Client struct{ http *httpx.Client }

func NewClient(c *httpx.Client) *Client { return &Client{http: c} }

func (c *Client) User(ctx context.Context, id string) (*User, error) {
	var res userResponse
	if err := c.http.DoJSON(ctx, http.MethodGet, "/partners/users/"+url.PathEscape(id), nil, &res); err != nil {
		var se *httpx.StatusError
		if errors.As(err, &se) && se.Code == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &res.User, nil
}

func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	var res profileResponse
	if err := c.http.DoJSON(ctx, http.MethodGet, "/partners/profile", nil, &res); err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &res.Partner, nil
}

func (c *Client) UpdateProfile(ctx context.Context, u ProfileUpdate) (*Profile, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	var res profileResponse
	if err := c.http.DoJSON(ctx, http.MethodPut, "/partners/profile", u, &res); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return &res.Partner, nil
}

func (c *Client) SetAvailability(ctx context.Context, a Availability) error {
	if _, err := ParseAvailability(string(a)); err != nil {
		return err
	}
	body := map[string]Availability{"availability": a}
	if err := c.http.DoJSON(ctx, http.MethodPatch, "/partners/availability", body, nil); err != nil {
		return fmt.Errorf("set availability: %w", err)
	}
	return nil
}

// ResolvePartnerID returns the partner the user belongs to.
func ResolvePartnerID(ctx context.Context, s Service, userID string) (string, error) {
	u, err := s.User(ctx, userID)
	if err != nil {
		return "", err
	}
	if u.PartnerID == "" {
		return "", ErrNoPartner
	}
	return u.PartnerID, nil
}
