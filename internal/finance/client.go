// Package finance reads the partner's balance and reports and files
// withdrawal requests. Amounts and fees are computed by the backend.
package finance

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/partner-dashboard/internal/httpx"
)

var (
	ErrInvalidWithdrawal = errors.New("invalid withdrawal request")
	ErrBackend           = errors.New("finance backend failure")
	ErrInvalidRange      = errors.New("invalid report range")
)

// Report windows, in days.
const (
	DefaultDays     = 30
	MaxDays         = 365
	DefaultTopLimit = 10
	MaxTopLimit     = 50
)

// MinWithdrawal is the smallest payout the platform accepts, in MT.
var MinWithdrawal = decimal.NewFromInt(100)

type Service interface {
	Balance(ctx context.Context) (*Balance, error)
	Overview(ctx context.Context) (*Overview, error)
	Withdrawals(ctx context.Context) ([]Withdrawal, error)
	RequestWithdrawal(ctx context.Context, req WithdrawalRequest) (*Withdrawal, error)
	RevenueByDay(ctx context.Context, days int) ([]DayRevenue, error)
	TopProducts(ctx context.Context, days, limit int) ([]TopProduct, error)
	OrdersByStatus(ctx context.Context, days int) ([]StatusCount, error)
	RevenueComparison(ctx context.Context, days int) (*Comparison, error)
}

type Client struct{ http *httpx.Client }

func NewClient(c *httpx.Client) *Client { return &Client{http: c} }

func (c *Client) Balance(ctx context.Context) (*Balance, error) {
	var res balanceResponse
	if err := c.http.DoJSON(ctx, http.MethodGet, "/partners/balance", nil, &res); err != nil {
		return nil, fmt.Errorf("%w: balance: %v", ErrBackend, err)
	}
	if !res.Success {
		return nil, fmt.Errorf("%w: balance: %s", ErrBackend, res.Message)
	}
	return &res.Data, nil
}

func (c *Client) Overview(ctx context.Context) (*Overview, error) {
	var res overviewResponse
	if err := c.http.DoJSON(ctx, http.MethodGet, "/partners/finances/overview", nil, &res); err != nil {
		return nil, fmt.Errorf("%w: overview: %v", ErrBackend, err)
	}
	if !res.Success {
		return nil, fmt.Errorf("%w: overview: %s", ErrBackend, res.Message)
	}
	return &res.Data.Overview, nil
}

func (c *Client) Withdrawals(ctx context.Context) ([]Withdrawal, error) {
	var res withdrawalsResponse
	if err := c.http.DoJSON(ctx, http.MethodGet, "/partners/withdrawals", nil, &res); err != nil {
		return nil, fmt.Errorf("%w: withdrawals: %v", ErrBackend, err)
	}
	if !res.Success {
		return nil, fmt.Errorf("%w: withdrawals: %s", ErrBackend, res.Message)
	}
	if res.Withdrawals == nil {
		res.Withdrawals = []Withdrawal{}
	}
	return res.Withdrawals, nil
}

// RequestWithdrawal checks the request against the current available balance
// before sending it.
func (c *Client) RequestWithdrawal(ctx context.Context, req WithdrawalRequest) (*Withdrawal, error) {
	bal, err := c.Balance(ctx)
	if err != nil {
		return nil, err
	}
	if err := ValidateWithdrawal(req, bal.AvailableForWithdrawal); err != nil {
		return nil, err
	}
	var res withdrawalResponse
	if err := c.http.DoJSON(ctx, http.MethodPost, "/partners/withdrawals", req, &res); err != nil {
		return nil, fmt.Errorf("%w: request withdrawal: %v", ErrBackend, err)
	}
	if !res.Success {
		return nil, fmt.Errorf("%w: request withdrawal: %s", ErrBackend, res.Message)
	}
	return &res.Withdrawal, nil
}

func ValidateWithdrawal(req WithdrawalRequest, available decimal.Decimal) error {
	if req.Amount.LessThan(MinWithdrawal) {
		return fmt.Errorf("%w: minimum amount is %s MT", ErrInvalidWithdrawal, MinWithdrawal.StringFixed(2))
	}
	if req.Amount.GreaterThan(available) {
		return fmt.Errorf("%w: insufficient balance", ErrInvalidWithdrawal)
	}
	digits := 0
	for _, r := range req.MpesaPhone {
		if unicode.IsDigit(r) {
			digits++
		} else if r != ' ' && r != '+' {
			return fmt.Errorf("%w: invalid phone number", ErrInvalidWithdrawal)
		}
	}
	if digits < 9 {
		return fmt.Errorf("%w: invalid phone number", ErrInvalidWithdrawal)
	}
	return nil
}

// ReportDays applies the default window to zero and rejects anything outside
// 1..MaxDays.
func ReportDays(days int) (int, error) {
	if days == 0 {
		return DefaultDays, nil
	}
	if days < 0 || days > MaxDays {
		return 0, fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidRange, MaxDays)
	}
	return days, nil
}

func daysQuery(days int) (url.Values, error) {
	d, err := ReportDays(days)
	if err != nil {
		return nil, err
	}
	return url.Values{"days": {strconv.Itoa(d)}}, nil
}

func (c *Client) RevenueByDay(ctx context.Context, days int) ([]DayRevenue, error) {
	q, err := daysQuery(days)
	if err != nil {
		return nil, err
	}
	var res chartResponse[DayRevenue]
	if err := c.http.DoJSON(ctx, http.MethodGet, "/partners/finances/revenue-by-day?"+q.Encode(), nil, &res); err != nil {
		return nil, fmt.Errorf("%w: revenue by day: %v", ErrBackend, err)
	}
	if !res.Success {
		return nil, fmt.Errorf("%w: revenue by day: %s", ErrBackend, res.Message)
	}
	if res.Data.ChartData == nil {
		return []DayRevenue{}, nil
	}
	return res.Data.ChartData, nil
}

func (c *Client) TopProducts(ctx context.Context, days, limit int) ([]TopProduct, error) {
	q, err := daysQuery(days)
	if err != nil {
		return nil, err
	}
	switch {
	case limit == 0:
		limit = DefaultTopLimit
	case limit < 0 || limit > MaxTopLimit:
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidRange, MaxTopLimit)
	}
	q.Set("limit", strconv.Itoa(limit))

	var res topProductsResponse
	if err := c.http.DoJSON(ctx, http.MethodGet, "/partners/finances/top-products?"+q.Encode(), nil, &res); err != nil {
		return nil, fmt.Errorf("%w: top products: %v", ErrBackend, err)
	}
	if !res.Success {
		return nil, fmt.Errorf("%w: top products: %s", ErrBackend, res.Message)
	}
	if res.Data.TopProducts == nil {
		return []TopProduct{}, nil
	}
	return res.Data.TopProducts, nil
}

func (c *Client) OrdersByStatus(ctx context.Context, days int) ([]StatusCount, error) {
	q, err := daysQuery(days)
	if err != nil {
		return nil, err
	}
	var res chartResponse[StatusCount]
	if err := c.http.DoJSON(ctx, http.MethodGet, "/partners/finances/orders-by-status?"+q.Encode(), nil, &res); err != nil {
		return nil, fmt.Errorf("%w: orders by status: %v", ErrBackend, err)
	}
	if !res.Success {
		return nil, fmt.Errorf("%w: orders by status: %s", ErrBackend, res.Message)
	}
	if res.Data.ChartData == nil {
		return []StatusCount{}, nil
	}
	return res.Data.ChartData, nil
}

func (c *Client) RevenueComparison(ctx context.Context, days int) (*Comparison, error) {
	q, err := daysQuery(days)
	if err != nil {
		return nil, err
	}
	var res comparisonResponse
	if err := c.http.DoJSON(ctx, http.MethodGet, "/partners/finances/revenue-comparison?"+q.Encode(), nil, &res); err != nil {
		return nil, fmt.Errorf("%w: revenue comparison: %v", ErrBackend, err)
	}
	if !res.Success {
		return nil, fmt.Errorf("%w: revenue comparison: %s", ErrBackend, res.Message)
	}
	return &res.Data, nil
}
