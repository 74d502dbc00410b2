package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/partner-dashboard/internal/notify"
	"github.com/MikeMC777/partner-dashboard/internal/order"
)

// ListOrders godoc
// @Summary     List orders on a dashboard tab
// @Tags        orders
// @Produce     json
// @Param       filter query string false "new|preparing|ready|completed|all"
// @Success     200 {object} order.ListResponse
// @Failure     400 {object} errorResponse
// @Router      /orders [get]
func listOrdersHandler(orders Orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		f, err := order.ParseFilter(c.Query("filter"))
		if err != nil {
			fail(c, err)
			return
		}
		list := orders.List(f)
		c.JSON(http.StatusOK, order.ListResponse{
			Filter: string(f),
			Count:  len(list),
			Counts: orders.Counts(),
			Orders: list,
		})
	}
}

// orderDetail carries the statuses the operator can move the order to.
type orderDetail struct {
	Order order.Order    `json:"order"`
	Next  []order.Status `json:"next"`
}

// GetOrder godoc
// @Summary     Get one visible order
// @Tags        orders
// @Produce     json
// @Param       id path string true "Order ID"
// @Success     200 {object} orderDetail
// @Failure     404 {object} errorResponse
// @Router      /orders/{id} [get]
func getOrderHandler(orders Orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, ok := orders.Get(c.Param("id"))
		if !ok {
			fail(c, order.ErrNotFound)
			return
		}
		next := order.NextOperatorStatuses(o.Status)
		if next == nil {
			next = []order.Status{}
		}
		c.JSON(http.StatusOK, orderDetail{Order: o, Next: next})
	}
}

// UpdateOrderStatus godoc
// @Summary     Move an order along an operator transition
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       id   path string                    true "Order ID"
// @Param       body body order.UpdateStatusRequest true "Target status"
// @Success     200 {object} order.Order
// @Failure     400 {object} errorResponse
// @Failure     404 {object} errorResponse
// @Failure     422 {object} errorResponse
// @Failure     502 {object} errorResponse
// @Router      /orders/{id}/status [patch]
func updateOrderStatusHandler(orders Orders, toaster notify.Toaster, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}
		to, err := order.ParseStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		ctx := c.Request.Context()
		o, err := orders.RequestTransition(ctx, c.Param("id"), to)
		if err != nil {
			log.Warn("status update failed", "order_id", c.Param("id"), "to", to, "err", err)
			if errors.Is(err, order.ErrRemoteCall) {
				toastDetached(ctx, toaster, notify.Toast{
					Level:       notify.LevelError,
					Title:       "Failed to update status",
					Description: "Please try again",
					Duration:    5 * time.Second,
				})
			}
			fail(c, err)
			return
		}
		toastDetached(ctx, toaster, notify.Toast{
			Level:       notify.LevelSuccess,
			Title:       "Status updated",
			Description: fmt.Sprintf("Order #%d is now %s", o.OrderNumber, order.Describe(o.Status).Label),
			Duration:    5 * time.Second,
		})
		c.JSON(http.StatusOK, o)
	}
}

// toastDetached delivers t without tying it to the request lifetime.
func toastDetached(ctx context.Context, toaster notify.Toaster, t notify.Toast) {
	t.At = time.Now()
	_ = toaster.Toast(context.WithoutCancel(ctx), t)
}

// OrderTimeline godoc
// @Summary     Status history of an order
// @Tags        orders
// @Produce     json
// @Param       id     path  string true  "Order ID"
// @Param       limit  query int    false "Page size (max 100)"
// @Param       offset query int    false "Offset"
// @Success     200 {array}  order.Event
// @Failure     404 {object} errorResponse
// @Router      /orders/{id}/timeline [get]
func timelineHandler(orders Orders, j order.Journal) gin.HandlerFunc {
	return func(c *gin.Context) {
		if j == nil {
			c.JSON(http.StatusOK, []order.Event{})
			return
		}
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
		evs, err := j.Timeline(c.Request.Context(), c.Param("id"), limit, offset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, errorResponse{Error: "db error"})
			return
		}
		if len(evs) == 0 {
			if _, ok := orders.Get(c.Param("id")); !ok {
				fail(c, order.ErrNotFound)
				return
			}
		}
		c.JSON(http.StatusOK, evs)
	}
}

// OrderStatuses godoc
// @Summary     Display label, color and icon of every status
// @Tags        orders
// @Produce     json
// @Success     200 {array} order.Descriptor
// @Router      /orders/statuses [get]
func statusesHandler() gin.HandlerFunc {
	descs := order.Descriptors()
	return func(c *gin.Context) { c.JSON(http.StatusOK, descs) }
}

// RefreshOrders godoc
// @Summary     Trigger an immediate order list refresh
// @Tags        orders
// @Success     202
// @Router      /orders/refresh [post]
func refreshHandler(refresh func()) gin.HandlerFunc {
	return func(c *gin.Context) {
		if refresh != nil {
			refresh()
		}
		c.Status(http.StatusAccepted)
	}
}
