package dashboard

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/partner-dashboard/internal/notify"
	"github.com/MikeMC777/partner-dashboard/internal/realtime"
)

// connectionResponse drives the connection indicator and the sound
// call-to-action.
type connectionResponse struct {
	State               realtime.ConnState `json:"state" swaggertype:"string" example:"CONNECTED"`
	AudioConsentGranted bool               `json:"audioConsentGranted"`
	Playing             bool               `json:"playing"`
	ActiveAlerts        int                `json:"activeAlerts"`
}

// ListAlerts godoc
// @Summary     Active new-order alerts
// @Tags        alerts
// @Produce     json
// @Success     200 {array} realtime.Alert
// @Router      /alerts [get]
func listAlertsHandler(live *realtime.Channel) gin.HandlerFunc {
	return func(c *gin.Context) { c.JSON(http.StatusOK, live.Alerts().Active()) }
}

// AckAlert godoc
// @Summary     Acknowledge one alert
// @Tags        alerts
// @Param       id path string true "Alert ID"
// @Success     204
// @Failure     404 {object} errorResponse
// @Router      /alerts/{id}/ack [post]
func ackAlertHandler(live *realtime.Channel) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !live.Acknowledge(c.Param("id")) {
			c.JSON(http.StatusNotFound, errorResponse{Error: "alert not found"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// AckAllAlerts godoc
// @Summary     Acknowledge every alert and silence the sound
// @Tags        alerts
// @Produce     json
// @Success     200 {object} map[string]int
// @Router      /alerts/ack [post]
func ackAllAlertsHandler(live *realtime.Channel) gin.HandlerFunc {
	return func(c *gin.Context) {
		n := live.AcknowledgeAll()
		c.JSON(http.StatusOK, gin.H{"acknowledged": n})
	}
}

// AudioConsent godoc
// @Summary     Enable the new-order sound (must follow an operator click)
// @Tags        audio
// @Success     204
// @Failure     500 {object} errorResponse
// @Router      /audio/consent [post]
func audioConsentHandler(live *realtime.Channel) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := live.GrantAudioConsent(c.Request.Context()); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// AudioTest godoc
// @Summary     Play the alert sound once
// @Tags        audio
// @Success     204
// @Failure     409 {object} errorResponse
// @Router      /audio/test [post]
func audioTestHandler(live *realtime.Channel) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := live.Audio().TestSound(c.Request.Context()); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// Connection godoc
// @Summary     Realtime connection state and sound consent
// @Tags        connection
// @Produce     json
// @Success     200 {object} connectionResponse
// @Router      /connection [get]
func connectionHandler(live *realtime.Channel) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, connectionResponse{
			State:               live.State(),
			AudioConsentGranted: live.Audio().Consent(),
			Playing:             live.Audio().Playing(),
			ActiveAlerts:        len(live.Alerts().Active()),
		})
	}
}

// Reconnect godoc
// @Summary     Restart the realtime connection after it gave up
// @Tags        connection
// @Success     202
// @Router      /connection/reconnect [post]
func reconnectHandler(live *realtime.Channel) gin.HandlerFunc {
	return func(c *gin.Context) {
		live.Reconnect()
		c.Status(http.StatusAccepted)
	}
}

// Toasts godoc
// @Summary     Toasts raised since a point in time
// @Tags        toasts
// @Produce     json
// @Param       since query string false "RFC 3339 timestamp"
// @Success     200 {array}  notify.Toast
// @Failure     400 {object} errorResponse
// @Router      /toasts [get]
func toastsHandler(rec *notify.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var since time.Time
		if s := c.Query("since"); s != "" {
			t, err := time.Parse(time.RFC3339Nano, s)
			if err != nil {
				c.JSON(http.StatusBadRequest, errorResponse{Error: "since must be an RFC 3339 timestamp"})
				return
			}
			since = t
		}
		c.JSON(http.StatusOK, rec.Recent(since))
	}
}
