package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/partner-dashboard/internal/finance"
	"github.com/MikeMC777/partner-dashboard/internal/notify"
	"github.com/MikeMC777/partner-dashboard/internal/partner"
)

// stubFinance validates like the real client but never leaves the process.
type stubFinance struct {
	available decimal.Decimal
	down      bool
}

func (s *stubFinance) Balance(ctx context.Context) (*finance.Balance, error) {
	if s.down {
		return nil, fmt.Errorf("%w: balance: timeout", finance.ErrBackend)
	}
	return &finance.Balance{Balance: s.available, AvailableForWithdrawal: s.available}, nil
}

func (s *stubFinance) Overview(ctx context.Context) (*finance.Overview, error) {
	return &finance.Overview{TotalOrders: 42, TotalRevenue: decimal.NewFromInt(12600)}, nil
}

func (s *stubFinance) Withdrawals(ctx context.Context) ([]finance.Withdrawal, error) {
	return []finance.Withdrawal{}, nil
}

func (s *stubFinance) RequestWithdrawal(ctx context.Context, req finance.WithdrawalRequest) (*finance.Withdrawal, error) {
	if err := finance.ValidateWithdrawal(req, s.available); err != nil {
		return nil, err
	}
	return &finance.Withdrawal{ID: "w1", Amount: req.Amount, Status: "PENDING", CreatedAt: time.Now()}, nil
}

func (s *stubFinance) RevenueByDay(ctx context.Context, days int) ([]finance.DayRevenue, error) {
	d, err := finance.ReportDays(days)
	if err != nil {
		return nil, err
	}
	return []finance.DayRevenue{{Date: "2024-05-01", Revenue: decimal.NewFromInt(int64(d)), Orders: 1}}, nil
}

func (s *stubFinance) TopProducts(ctx context.Context, days, limit int) ([]finance.TopProduct, error) {
	return []finance.TopProduct{{ProductID: "p1", ProductName: "Frango", TotalQuantity: limit}}, nil
}

func (s *stubFinance) OrdersByStatus(ctx context.Context, days int) ([]finance.StatusCount, error) {
	return []finance.StatusCount{{Status: "DELIVERED", Count: 3}}, nil
}

func (s *stubFinance) RevenueComparison(ctx context.Context, days int) (*finance.Comparison, error) {
	return &finance.Comparison{Current: finance.PeriodTotals{Orders: 3}, Previous: finance.PeriodTotals{Orders: 2}}, nil
}

type stubPartner struct{ availability partner.Availability }

func (s *stubPartner) User(ctx context.Context, id string) (*partner.User, error) {
	return nil, partner.ErrNotFound
}

func (s *stubPartner) Profile(ctx context.Context) (*partner.Profile, error) {
	return &partner.Profile{ID: "p1", Name: "Casa do Frango", Availability: s.availability}, nil
}

func (s *stubPartner) UpdateProfile(ctx context.Context, u partner.ProfileUpdate) (*partner.Profile, error) {
	p := &partner.Profile{ID: "p1", Name: "Casa do Frango", Availability: s.availability}
	if u.Name != nil {
		p.Name = *u.Name
	}
	return p, nil
}

func (s *stubPartner) SetAvailability(ctx context.Context, a partner.Availability) error {
	s.availability = a
	return nil
}

func newAccountsEnv(t *testing.T, fin *stubFinance, p *stubPartner) (*env, *notify.Recorder) {
	t.Helper()
	e := newEnv(t, nil)
	e.r = NewRouter(Deps{
		Orders:  e.ctrl,
		Toaster: e.toasts,
		Finance: fin,
		Partner: p,
		Log:     discard(),
	})
	return e, e.toasts
}

func TestRequestWithdrawal(t *testing.T) {
	t.Parallel()
	e, toasts := newAccountsEnv(t, &stubFinance{available: decimal.NewFromInt(800)}, &stubPartner{})

	w := e.do(http.MethodPost, "/finance/withdrawals", `{"amount":250,"mpesaPhone":"841234567"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var wd finance.Withdrawal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &wd))
	assert.True(t, wd.Amount.Equal(decimal.NewFromInt(250)))
	require.Len(t, toasts.Recent(time.Time{}), 1)
	assert.Equal(t, "250.00 MT to 841234567", toasts.Recent(time.Time{})[0].Description)

	for _, body := range []string{
		`{"amount":50,"mpesaPhone":"841234567"}`,
		`{"amount":900,"mpesaPhone":"841234567"}`,
		`{"amount":250,"mpesaPhone":"12"}`,
		`{"amount":`,
	} {
		w := e.do(http.MethodPost, "/finance/withdrawals", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestBalance_BackendDown(t *testing.T) {
	t.Parallel()
	e, _ := newAccountsEnv(t, &stubFinance{down: true}, &stubPartner{})
	w := e.do(http.MethodGet, "/finance/balance", "")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status=%d body=%s (expected 502)", w.Code, w.Body.String())
	}
}

func TestOverviewAndWithdrawals(t *testing.T) {
	t.Parallel()
	e, _ := newAccountsEnv(t, &stubFinance{}, &stubPartner{})

	w := e.do(http.MethodGet, "/finance/overview", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalOrders":42`)

	w = e.do(http.MethodGet, "/finance/withdrawals", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestPartnerAvailability(t *testing.T) {
	t.Parallel()
	p := &stubPartner{availability: partner.Open}
	e, _ := newAccountsEnv(t, &stubFinance{}, p)

	assert.Equal(t, http.StatusNoContent, e.do(http.MethodPatch, "/partner/availability", `{"availability":"BUSY"}`).Code)
	assert.Equal(t, partner.Busy, p.availability)
	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodPatch, "/partner/availability", `{"availability":"LUNCH"}`).Code)

	w := e.do(http.MethodGet, "/partner/profile", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"availability":"BUSY"`)
}

func TestOptionalRoutesAbsent(t *testing.T) {
	t.Parallel()
	e := newEnv(t, nil)
	assert.Equal(t, http.StatusNotFound, e.do(http.MethodGet, "/finance/balance", "").Code)
	assert.Equal(t, http.StatusNotFound, e.do(http.MethodGet, "/partner/profile", "").Code)
}

func TestFinanceReports(t *testing.T) {
	t.Parallel()
	e, _ := newAccountsEnv(t, &stubFinance{}, &stubPartner{})

	w := e.do(http.MethodGet, "/finance/revenue-by-day?days=7", "")
	require.Equal(t, http.StatusOK, w.Code)
	var days []finance.DayRevenue
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &days))
	require.Len(t, days, 1)
	assert.True(t, days[0].Revenue.Equal(decimal.NewFromInt(7)))

	w = e.do(http.MethodGet, "/finance/top-products?limit=5", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalQuantity":5`)

	assert.Equal(t, http.StatusOK, e.do(http.MethodGet, "/finance/orders-by-status", "").Code)
	assert.Equal(t, http.StatusOK, e.do(http.MethodGet, "/finance/revenue-comparison?days=30", "").Code)

	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodGet, "/finance/revenue-by-day?days=400", "").Code)
	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodGet, "/finance/top-products?limit=ten", "").Code)
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()
	e, toasts := newAccountsEnv(t, &stubFinance{}, &stubPartner{availability: partner.Open})

	w := e.do(http.MethodPut, "/partner/profile", `{"name":"Casa Nova"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"name":"Casa Nova"`)
	require.Len(t, toasts.Recent(time.Time{}), 1)
	assert.Equal(t, "Profile updated", toasts.Recent(time.Time{})[0].Title)

	for _, body := range []string{`{"name":" "}`, `{"availability":"LUNCH"}`, `{"latitude":95}`, `{"name":`} {
		assert.Equal(t, http.StatusBadRequest, e.do(http.MethodPut, "/partner/profile", body).Code, body)
	}
}
