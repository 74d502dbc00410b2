package order

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending        Status = "PENDING"
	StatusConfirmed      Status = "CONFIRMED"
	StatusPreparing      Status = "PREPARING"
	StatusReadyForPickup Status = "READY_FOR_PICKUP"
	StatusPickedUp       Status = "PICKED_UP"
	StatusInTransit      Status = "IN_TRANSIT"
	StatusDelivered      Status = "DELIVERED"
	StatusCancelled      Status = "CANCELLED"
)

// Statuses lists every status in happy-path order, CANCELLED last.
var Statuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusReadyForPickup,
	StatusPickedUp,
	StatusInTransit,
	StatusDelivered,
	StatusCancelled,
}

func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

func (s *Status) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	st, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = st
	return nil
}

type Order struct {
	ID          string `json:"id"`
	OrderNumber int    `json:"orderNumber"`
	Status      Status `json:"status"`

	// Money is kept as decimal so it round-trips the backend JSON numbers exactly.
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
	Discount    decimal.Decimal `json:"discount"`
	Total       decimal.Decimal `json:"total"`

	Items []Item `json:"items"`

	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone,omitempty"`
	DeliveryAddress string `json:"deliveryAddress,omitempty"`
	PaymentMethod   string `json:"paymentMethod,omitempty"`
	PaymentStatus   string `json:"paymentStatus,omitempty"`
	Notes           string `json:"notes,omitempty"`

	CreatedAt   time.Time  `json:"createdAt"`
	ConfirmedAt *time.Time `json:"confirmedAt,omitempty"`
	ReadyAt     *time.Time `json:"readyAt,omitempty"`
	PickedUpAt  *time.Time `json:"pickedUpAt,omitempty"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
}

type Item struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"productName"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Notes     string          `json:"notes,omitempty"`
}

// clone returns a copy that shares no slices or timestamp pointers with o.
func (o Order) clone() Order {
	cp := o
	if o.Items != nil {
		cp.Items = append([]Item(nil), o.Items...)
	}
	cp.ConfirmedAt = cloneTime(o.ConfirmedAt)
	cp.ReadyAt = cloneTime(o.ReadyAt)
	cp.PickedUpAt = cloneTime(o.PickedUpAt)
	cp.DeliveredAt = cloneTime(o.DeliveredAt)
	cp.CancelledAt = cloneTime(o.CancelledAt)
	return cp
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// withTimestamps copies the per-transition timestamps the backend set on src
// without touching fields it left empty.
func (o *Order) withTimestamps(src Order) {
	if src.ConfirmedAt != nil {
		o.ConfirmedAt = cloneTime(src.ConfirmedAt)
	}
	if src.ReadyAt != nil {
		o.ReadyAt = cloneTime(src.ReadyAt)
	}
	if src.PickedUpAt != nil {
		o.PickedUpAt = cloneTime(src.PickedUpAt)
	}
	if src.DeliveredAt != nil {
		o.DeliveredAt = cloneTime(src.DeliveredAt)
	}
	if src.CancelledAt != nil {
		o.CancelledAt = cloneTime(src.CancelledAt)
	}
}
