package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Balance struct {
	Balance                decimal.Decimal `json:"balance"`
	TotalEarnings          decimal.Decimal `json:"totalEarnings"`
	PendingBalance         decimal.Decimal `json:"pendingBalance"`
	AvailableForWithdrawal decimal.Decimal `json:"availableForWithdrawal"`
	RecentTransactions     []Transaction   `json:"recentTransactions"`
	RecentWithdrawals      []Withdrawal    `json:"recentWithdrawals"`
}

type Transaction struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type Withdrawal struct {
	ID         string          `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	MpesaPhone string          `json:"mpesaPhone,omitempty"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type Period struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

type Overview struct {
	TotalRevenue       decimal.Decimal `json:"totalRevenue"`
	TotalOrders        int             `json:"totalOrders"`
	AverageOrderValue  decimal.Decimal `json:"averageOrderValue"`
	PendingAmount      decimal.Decimal `json:"pendingAmount"`
	PendingOrdersCount int             `json:"pendingOrdersCount"`
	CancelledOrders    int             `json:"cancelledOrders"`
	DeliveredOrders    int             `json:"deliveredOrders"`
	Period             Period          `json:"period"`
}

// WithdrawalRequest payload to request a payout to an M-Pesa number.
// swagger:model WithdrawalRequest
type WithdrawalRequest struct {
	Amount     decimal.Decimal `json:"amount" swaggertype:"number" example:"250.00"`
	MpesaPhone string          `json:"mpesaPhone" example:"841234567"`
}

type balanceResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Data    Balance `json:"data"`
}

type overviewResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Overview Overview `json:"overview"`
	} `json:"data"`
}

type withdrawalsResponse struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message"`
	Withdrawals []Withdrawal `json:"withdrawals"`
}

type withdrawalResponse struct {
	Success    bool       `json:"success"`
	Message    string     `json:"message"`
	Withdrawal Withdrawal `json:"withdrawal"`
}

type DayRevenue struct {
	Date    string          `json:"date" example:"2024-05-01"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
}

type TopProduct struct {
	ProductID     string          `json:"productId"`
	ProductName   string          `json:"productName"`
	ProductImage  string          `json:"productImage,omitempty"`
	TotalQuantity int             `json:"totalQuantity"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	OrdersCount   int             `json:"ordersCount"`
}

type StatusCount struct {
	Status string `json:"status" example:"DELIVERED"`
	Count  int    `json:"count"`
}

type PeriodTotals struct {
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int             `json:"orders"`
	Period  Period          `json:"period"`
}

// Comparison sets the last N days against the N days before them. Changes
// are percentages computed by the backend.
type Comparison struct {
	Current  PeriodTotals `json:"current"`
	Previous PeriodTotals `json:"previous"`
	Changes  struct {
		RevenueChange decimal.Decimal `json:"revenueChange"`
		OrdersChange  decimal.Decimal `json:"ordersChange"`
	} `json:"changes"`
}

type chartResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		ChartData []T `json:"chartData"`
	} `json:"data"`
}

type topProductsResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		TopProducts []TopProduct `json:"topProducts"`
	} `json:"data"`
}

type comparisonResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Data    Comparison `json:"data"`
}
