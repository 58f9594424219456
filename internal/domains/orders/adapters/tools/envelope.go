package tools

import (
	ordermapper "github.com/salesdata/orders-api/internal/domains/orders/adapters/http/mapper"
)

// Envelope keys use snake_case metadata around camelCase order payloads, a
// success discriminator on every response, and an error description instead
// of a fault when anything goes wrong.

// ErrorEnvelope reports a failed tool invocation.
type ErrorEnvelope struct {
	Error   string `json:"error"`
	Success bool   `json:"success"`
}

// OrdersEnvelope wraps list-shaped results with their derived count.
type OrdersEnvelope struct {
	Orders       []ordermapper.Order `json:"orders"`
	CustomerName string              `json:"customer_name,omitempty"`
	CustomerID   string              `json:"customer_id,omitempty"`
	FilterDate   string              `json:"filter_date,omitempty"`
	StartDate    string              `json:"start_date,omitempty"`
	EndDate      string              `json:"end_date,omitempty"`
	TotalCount   int                 `json:"total_count"`
	Success      bool                `json:"success"`
}

// OrderEnvelope wraps a single-order lookup.
type OrderEnvelope struct {
	Order   ordermapper.Order `json:"order"`
	Success bool              `json:"success"`
}

// TotalSpentEnvelope wraps a customer spending lookup.
type TotalSpentEnvelope struct {
	CustomerName string  `json:"customer_name"`
	TotalSpent   float64 `json:"total_spent"`
	Success      bool    `json:"success"`
}

// TopProductEntry is one (product, quantity) pair in the summary.
type TopProductEntry struct {
	Product       string `json:"product"`
	TotalQuantity int    `json:"total_quantity"`
}

// SummaryEnvelope wraps the tool-side order summary. The revenue here is
// deliberately unrounded and customers are counted by name; the engine's
// stats endpoint rounds and counts by identifier. Both agree whenever the
// dataset keeps the id-to-name mapping consistent.
type SummaryEnvelope struct {
	TotalOrders       int               `json:"total_orders"`
	TotalRevenue      float64           `json:"total_revenue"`
	UniqueCustomers   int               `json:"unique_customers"`
	AverageOrderValue float64           `json:"average_order_value"`
	TopProducts       []TopProductEntry `json:"top_products"`
	Success           bool              `json:"success"`
}

// ConnectionEnvelope reports the API connectivity probe.
type ConnectionEnvelope struct {
	Connected bool   `json:"connected"`
	Endpoint  string `json:"endpoint,omitempty"`
	Error     string `json:"error,omitempty"`
}

func errorEnvelope(message string) ErrorEnvelope {
	return ErrorEnvelope{Error: message, Success: false}
}
