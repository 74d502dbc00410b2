package order

import "encoding/json"

type listOrdersResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Orders  []json.RawMessage `json:"orders"`
}

type updateStatusRequest struct {
	Status Status `json:"status"`
}

type updateStatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Order   Order  `json:"order"`
}

// UpdateStatusRequest payload to move an order to a new status.
// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	Status string `json:"status" example:"PREPARING"`
}

// ListResponse is the order list returned to the UI.
// swagger:model OrderListResponse
type ListResponse struct {
	Filter string         `json:"filter" example:"new"`
	Count  int            `json:"count"`
	Counts map[Filter]int `json:"counts"`
	Orders []Order        `json:"orders"`
}
