// Package dashboard is the HTTP surface the partner UI talks to.
package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/MikeMC777/partner-dashboard/internal/finance"
	"github.com/MikeMC777/partner-dashboard/internal/httpx"
	"github.com/MikeMC777/partner-dashboard/internal/menu"
	"github.com/MikeMC777/partner-dashboard/internal/notify"
	"github.com/MikeMC777/partner-dashboard/internal/order"
	"github.com/MikeMC777/partner-dashboard/internal/partner"
	"github.com/MikeMC777/partner-dashboard/internal/realtime"
)

// Orders is the part of *order.Controller the handlers use.
type Orders interface {
	List(f order.Filter) []order.Order
	Counts() map[order.Filter]int
	Get(id string) (order.Order, bool)
	RequestTransition(ctx context.Context, id string, to order.Status) (order.Order, error)
}

type Deps struct {
	Orders  Orders
	Journal order.Journal
	Live    *realtime.Channel
	Toasts  *notify.Recorder
	Toaster notify.Toaster
	Finance finance.Service
	Partner partner.Service
	Menu    menu.Service
	Refresh func()
	Log     *slog.Logger
}

type errorResponse struct {
	Error string `json:"error" example:"order not found"`
}

func NewRouter(d Deps) *gin.Engine {
	if d.Log == nil {
		d.Log = slog.Default()
	}
	if d.Toaster == nil {
		d.Toaster = notify.LogToaster{Log: d.Log}
	}
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(d.Log.With("component", "http")))

	r.GET("/healthz", healthHandler())

	r.GET("/orders", listOrdersHandler(d.Orders))
	r.GET("/orders/statuses", statusesHandler())
	r.POST("/orders/refresh", refreshHandler(d.Refresh))
	r.GET("/orders/:id", getOrderHandler(d.Orders))
	r.PATCH("/orders/:id/status", updateOrderStatusHandler(d.Orders, d.Toaster, d.Log))
	r.GET("/orders/:id/timeline", timelineHandler(d.Orders, d.Journal))

	if d.Live != nil {
		r.GET("/alerts", listAlertsHandler(d.Live))
		r.POST("/alerts/ack", ackAllAlertsHandler(d.Live))
		r.POST("/alerts/:id/ack", ackAlertHandler(d.Live))
		r.POST("/audio/consent", audioConsentHandler(d.Live))
		r.POST("/audio/test", audioTestHandler(d.Live))
		r.GET("/connection", connectionHandler(d.Live))
		r.POST("/connection/reconnect", reconnectHandler(d.Live))
	}
	if d.Toasts != nil {
		r.GET("/toasts", toastsHandler(d.Toasts))
	}
	if d.Finance != nil {
		r.GET("/finance/balance", balanceHandler(d.Finance))
		r.GET("/finance/overview", overviewHandler(d.Finance))
		r.GET("/finance/withdrawals", listWithdrawalsHandler(d.Finance))
		r.POST("/finance/withdrawals", requestWithdrawalHandler(d.Finance, d.Toaster))
		r.GET("/finance/revenue-by-day", revenueByDayHandler(d.Finance))
		r.GET("/finance/top-products", topProductsHandler(d.Finance))
		r.GET("/finance/orders-by-status", ordersByStatusHandler(d.Finance))
		r.GET("/finance/revenue-comparison", revenueComparisonHandler(d.Finance))
	}
	if d.Partner != nil {
		r.GET("/partner/profile", profileHandler(d.Partner))
		r.PUT("/partner/profile", updateProfileHandler(d.Partner, d.Toaster))
		r.PATCH("/partner/availability", availabilityHandler(d.Partner))
	}
	if d.Menu != nil {
		r.GET("/menu/categories", listCategoriesHandler(d.Menu))
		r.POST("/menu/categories", createCategoryHandler(d.Menu, d.Toaster))
		r.PUT("/menu/categories/:id", updateCategoryHandler(d.Menu, d.Toaster))
		r.DELETE("/menu/categories/:id", deleteCategoryHandler(d.Menu, d.Toaster))
		r.GET("/menu/products", listProductsHandler(d.Menu))
		r.POST("/menu/products", createProductHandler(d.Menu, d.Toaster))
		r.PUT("/menu/products/:id", updateProductHandler(d.Menu, d.Toaster))
		r.DELETE("/menu/products/:id", deleteProductHandler(d.Menu, d.Toaster))
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return r
}

// Health godoc
// @Summary     Liveness probe
// @Tags        health
// @Produce     plain
// @Success     200 {string} string "ok"
// @Router      /healthz [get]
func healthHandler() gin.HandlerFunc {
	return func(c *gin.Context) { c.String(http.StatusOK, "ok") }
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, order.ErrNotFound), errors.Is(err, partner.ErrNotFound), errors.Is(err, menu.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, order.ErrUnknownFilter),
		errors.Is(err, finance.ErrInvalidWithdrawal),
		errors.Is(err, finance.ErrInvalidRange),
		errors.Is(err, partner.ErrInvalidAvailability),
		errors.Is(err, partner.ErrInvalidProfile),
		errors.Is(err, menu.ErrInvalidItem):
		return http.StatusBadRequest
	case errors.Is(err, realtime.ErrNoConsent):
		return http.StatusConflict
	case errors.Is(err, realtime.ErrAudioUnlock):
		return http.StatusInternalServerError
	case errors.Is(err, order.ErrRemoteCall), errors.Is(err, finance.ErrBackend):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	var se *httpx.StatusError
	if errors.As(err, &se) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), errorResponse{Error: err.Error()})
}
