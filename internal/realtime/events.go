package realtime

import (
	"encoding/json"

	"github.com/MikeMC777/partner-dashboard/internal/order"
)

// Event names on the push connection.
const (
	EventRegister      = "register"
	EventNewOrder      = "new-order"
	EventStatusChanged = "order-status-changed"
)

// Envelope is the frame every push message travels in.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type outbound struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type RegisterMessage struct {
	UserID    string `json:"userId"`
	UserType  string `json:"userType"`
	PartnerID string `json:"partnerId"`
}

type NewOrderEvent struct {
	Order   order.Order `json:"order"`
	Message string      `json:"message"`
}

type StatusChangedEvent struct {
	Order   order.Order  `json:"order"`
	Status  order.Status `json:"status"`
	Message string       `json:"message"`
}
