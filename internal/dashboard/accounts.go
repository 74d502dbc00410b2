package dashboard

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/partner-dashboard/internal/finance"
	"github.com/MikeMC777/partner-dashboard/internal/notify"
	"github.com/MikeMC777/partner-dashboard/internal/partner"
)

// Balance godoc
// @Summary     Current balance and recent movements
// @Tags        finance
// @Produce     json
// @Success     200 {object} finance.Balance
// @Failure     502 {object} errorResponse
// @Router      /finance/balance [get]
func balanceHandler(svc finance.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		b, err := svc.Balance(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

// Overview godoc
// @Summary     Revenue report for the current period
// @Tags        finance
// @Produce     json
// @Success     200 {object} finance.Overview
// @Failure     502 {object} errorResponse
// @Router      /finance/overview [get]
func overviewHandler(svc finance.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := svc.Overview(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// ListWithdrawals godoc
// @Summary     Withdrawal history
// @Tags        finance
// @Produce     json
// @Success     200 {array}  finance.Withdrawal
// @Failure     502 {object} errorResponse
// @Router      /finance/withdrawals [get]
func listWithdrawalsHandler(svc finance.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := svc.Withdrawals(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, ws)
	}
}

// RequestWithdrawal godoc
// @Summary     Request a payout to M-Pesa
// @Tags        finance
// @Accept      json
// @Produce     json
// @Param       body body finance.WithdrawalRequest true "Amount and phone"
// @Success     201 {object} finance.Withdrawal
// @Failure     400 {object} errorResponse
// @Failure     502 {object} errorResponse
// @Router      /finance/withdrawals [post]
func requestWithdrawalHandler(svc finance.Service, toaster notify.Toaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req finance.WithdrawalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}
		w, err := svc.RequestWithdrawal(c.Request.Context(), req)
		if err != nil {
			fail(c, err)
			return
		}
		toastDetached(c.Request.Context(), toaster, notify.Toast{
			Level:       notify.LevelSuccess,
			Title:       "Withdrawal requested",
			Description: fmt.Sprintf("%s MT to %s", w.Amount.StringFixed(2), req.MpesaPhone),
			Duration:    5 * time.Second,
		})
		c.JSON(http.StatusCreated, w)
	}
}

// queryInt reads an optional integer query parameter. A missing parameter
// is 0; a malformed one answers 400 and reports false.
func queryInt(c *gin.Context, key string) (int, bool) {
	s := c.Query(key)
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: key + " must be an integer"})
		return 0, false
	}
	return n, true
}

// RevenueByDay godoc
// @Summary     Daily revenue and order count
// @Tags        finance
// @Produce     json
// @Param       days query int false "Window in days (default 30, max 365)"
// @Success     200 {array}  finance.DayRevenue
// @Failure     400 {object} errorResponse
// @Failure     502 {object} errorResponse
// @Router      /finance/revenue-by-day [get]
func revenueByDayHandler(svc finance.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		days, ok := queryInt(c, "days")
		if !ok {
			return
		}
		out, err := svc.RevenueByDay(c.Request.Context(), days)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// TopProducts godoc
// @Summary     Best selling products
// @Tags        finance
// @Produce     json
// @Param       days  query int false "Window in days (default 30, max 365)"
// @Param       limit query int false "Number of products (default 10, max 50)"
// @Success     200 {array}  finance.TopProduct
// @Failure     400 {object} errorResponse
// @Failure     502 {object} errorResponse
// @Router      /finance/top-products [get]
func topProductsHandler(svc finance.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		days, ok := queryInt(c, "days")
		if !ok {
			return
		}
		limit, ok := queryInt(c, "limit")
		if !ok {
			return
		}
		out, err := svc.TopProducts(c.Request.Context(), days, limit)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// OrdersByStatus godoc
// @Summary     Order count per status
// @Tags        finance
// @Produce     json
// @Param       days query int false "Window in days (default 30, max 365)"
// @Success     200 {array}  finance.StatusCount
// @Failure     400 {object} errorResponse
// @Failure     502 {object} errorResponse
// @Router      /finance/orders-by-status [get]
func ordersByStatusHandler(svc finance.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		days, ok := queryInt(c, "days")
		if !ok {
			return
		}
		out, err := svc.OrdersByStatus(c.Request.Context(), days)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// RevenueComparison godoc
// @Summary     Revenue of the last N days against the N days before
// @Tags        finance
// @Produce     json
// @Param       days query int false "Window in days (default 30, max 365)"
// @Success     200 {object} finance.Comparison
// @Failure     400 {object} errorResponse
// @Failure     502 {object} errorResponse
// @Router      /finance/revenue-comparison [get]
func revenueComparisonHandler(svc finance.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		days, ok := queryInt(c, "days")
		if !ok {
			return
		}
		out, err := svc.RevenueComparison(c.Request.Context(), days)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// Profile godoc
// @Summary     Restaurant profile
// @Tags        partner
// @Produce     json
// @Success     200 {object} partner.Profile
// @Failure     502 {object} errorResponse
// @Router      /partner/profile [get]
func profileHandler(svc partner.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.Profile(c.Request.Context())
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// UpdateProfile godoc
// @Summary     Edit the restaurant profile
// @Tags        partner
// @Accept      json
// @Produce     json
// @Param       body body partner.ProfileUpdate true "Fields to change"
// @Success     200 {object} partner.Profile
// @Failure     400 {object} errorResponse
// @Failure     502 {object} errorResponse
// @Router      /partner/profile [put]
func updateProfileHandler(svc partner.Service, toaster notify.Toaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req partner.ProfileUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}
		if err := req.Validate(); err != nil {
			fail(c, err)
			return
		}
		p, err := svc.UpdateProfile(c.Request.Context(), req)
		if err != nil {
			fail(c, err)
			return
		}
		toastDetached(c.Request.Context(), toaster, notify.Toast{
			Level:    notify.LevelSuccess,
			Title:    "Profile updated",
			Duration: 5 * time.Second,
		})
		c.JSON(http.StatusOK, p)
	}
}

// SetAvailability godoc
// @Summary     Open, close or pause the restaurant
// @Tags        partner
// @Accept      json
// @Param       body body partner.AvailabilityRequest true "OPEN|CLOSED|BUSY"
// @Success     204
// @Failure     400 {object} errorResponse
// @Failure     502 {object} errorResponse
// @Router      /partner/availability [patch]
func availabilityHandler(svc partner.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req partner.AvailabilityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}
		a, err := partner.ParseAvailability(req.Availability)
		if err != nil {
			fail(c, err)
			return
		}
		if err := svc.SetAvailability(c.Request.Context(), a); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
