package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/salesdata/orders-api/internal/clients/http/salesapi"
	ordermapper "github.com/salesdata/orders-api/internal/domains/orders/adapters/http/mapper"
)

const invalidDateMessage = "Invalid date format. Please use YYYY-MM-DD"

// Toolset binds the tool handlers to the query API client.
type Toolset struct {
	client   *salesapi.Client
	endpoint string
	validate *validator.Validate
}

// NewToolset builds the façade and registers every tool.
func NewToolset(client *salesapi.Client, endpoint string) (*Toolset, *Registry) {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	ts := &Toolset{
		client:   client,
		endpoint: endpoint,
		validate: validate,
	}
	registry := NewRegistry()
	registry.Register("test_connection",
		"Test the connection to the sales query API.", ts.testConnection)
	registry.Register("get_all_orders",
		"Retrieve all orders with complete details.", ts.getAllOrders)
	registry.Register("get_order_by_id",
		"Retrieve a specific order by its ID.", ts.getOrderByID)
	registry.Register("get_orders_by_customer_name",
		"Retrieve all orders for a specific customer by name.", ts.getOrdersByCustomerName)
	registry.Register("get_orders_by_customer_id",
		"Retrieve all orders for a specific customer by ID.", ts.getOrdersByCustomerID)
	registry.Register("get_total_spent_by_customer",
		"Get the total amount spent by a customer.", ts.getTotalSpentByCustomer)
	registry.Register("orders_after_date",
		"Retrieve all orders after a given date (YYYY-MM-DD).", ts.ordersAfterDate)
	registry.Register("orders_between_dates",
		"Retrieve all orders between two dates, inclusive.", ts.ordersBetweenDates)
	registry.Register("get_order_summary",
		"Get a summary of all orders including counts and totals.", ts.getOrderSummary)
	return ts, registry
}

type orderIDParams struct {
	OrderID string `json:"order_id" validate:"required"`
}

type customerNameParams struct {
	CustomerName string `json:"customer_name" validate:"required"`
}

type customerIDParams struct {
	CustomerID string `json:"customer_id" validate:"required"`
}

type afterDateParams struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type betweenDatesParams struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

func (ts *Toolset) testConnection(ctx context.Context, _ json.RawMessage) any {
	if err := ts.client.Health(ctx); err != nil {
		return ConnectionEnvelope{Connected: false, Error: upstreamMessage(err)}
	}
	return ConnectionEnvelope{Connected: true, Endpoint: ts.endpoint}
}

func (ts *Toolset) getAllOrders(ctx context.Context, _ json.RawMessage) any {
	orders, err := ts.client.Orders(ctx)
	if err != nil {
		return errorEnvelope(upstreamMessage(err))
	}
	return OrdersEnvelope{Orders: orders, TotalCount: len(orders), Success: true}
}

func (ts *Toolset) getOrderByID(ctx context.Context, raw json.RawMessage) any {
	var params orderIDParams
	if msg, ok := ts.decodeParams(raw, &params); !ok {
		return errorEnvelope(msg)
	}
	order, err := ts.client.OrderByID(ctx, params.OrderID)
	if err != nil {
		if salesapi.IsNotFound(err) {
			return errorEnvelope(fmt.Sprintf("Order with ID '%s' not found", params.OrderID))
		}
		return errorEnvelope(upstreamMessage(err))
	}
	return OrderEnvelope{Order: *order, Success: true}
}

func (ts *Toolset) getOrdersByCustomerName(ctx context.Context, raw json.RawMessage) any {
	var params customerNameParams
	if msg, ok := ts.decodeParams(raw, &params); !ok {
		return errorEnvelope(msg)
	}
	orders, err := ts.client.OrdersByCustomerName(ctx, params.CustomerName)
	if err != nil {
		return errorEnvelope(upstreamMessage(err))
	}
	return OrdersEnvelope{
		Orders:       orders,
		CustomerName: params.CustomerName,
		TotalCount:   len(orders),
		Success:      true,
	}
}

func (ts *Toolset) getOrdersByCustomerID(ctx context.Context, raw json.RawMessage) any {
	var params customerIDParams
	if msg, ok := ts.decodeParams(raw, &params); !ok {
		return errorEnvelope(msg)
	}
	orders, err := ts.client.OrdersByCustomerID(ctx, params.CustomerID)
	if err != nil {
		return errorEnvelope(upstreamMessage(err))
	}
	return OrdersEnvelope{
		Orders:     orders,
		CustomerID: params.CustomerID,
		TotalCount: len(orders),
		Success:    true,
	}
}

func (ts *Toolset) getTotalSpentByCustomer(ctx context.Context, raw json.RawMessage) any {
	var params customerNameParams
	if msg, ok := ts.decodeParams(raw, &params); !ok {
		return errorEnvelope(msg)
	}
	total, err := ts.client.TotalSpentByCustomer(ctx, params.CustomerName)
	if err != nil {
		return errorEnvelope(upstreamMessage(err))
	}
	return TotalSpentEnvelope{CustomerName: params.CustomerName, TotalSpent: total, Success: true}
}

// ordersAfterDate filters locally over the full order list fetched from the
// API rather than calling the API's own date filter. Both paths produce
// identical results for the same input.
func (ts *Toolset) ordersAfterDate(ctx context.Context, raw json.RawMessage) any {
	var params afterDateParams
	if msg, ok := ts.decodeParams(raw, &params); !ok {
		return errorEnvelope(msg)
	}
	orders, err := ts.client.Orders(ctx)
	if err != nil {
		return errorEnvelope(upstreamMessage(err))
	}
	filtered := []ordermapper.Order{}
	for _, order := range orders {
		if order.OrderDetails.OrderDate > params.Date {
			filtered = append(filtered, order)
		}
	}
	return OrdersEnvelope{
		Orders:     filtered,
		FilterDate: params.Date,
		TotalCount: len(filtered),
		Success:    true,
	}
}

func (ts *Toolset) ordersBetweenDates(ctx context.Context, raw json.RawMessage) any {
	var params betweenDatesParams
	if msg, ok := ts.decodeParams(raw, &params); !ok {
		return errorEnvelope(msg)
	}
	if params.StartDate > params.EndDate {
		return errorEnvelope("Start date must be before or equal to end date")
	}
	orders, err := ts.client.Orders(ctx)
	if err != nil {
		return errorEnvelope(upstreamMessage(err))
	}
	filtered := []ordermapper.Order{}
	for _, order := range orders {
		date := order.OrderDetails.OrderDate
		if params.StartDate <= date && date <= params.EndDate {
			filtered = append(filtered, order)
		}
	}
	return OrdersEnvelope{
		Orders:     filtered,
		StartDate:  params.StartDate,
		EndDate:    params.EndDate,
		TotalCount: len(filtered),
		Success:    true,
	}
}

// getOrderSummary aggregates client-side over the full order list. Unlike
// the engine's stats endpoint, revenue stays unrounded here and customers
// are counted by name rather than id.
func (ts *Toolset) getOrderSummary(ctx context.Context, _ json.RawMessage) any {
	orders, err := ts.client.Orders(ctx)
	if err != nil {
		return errorEnvelope(upstreamMessage(err))
	}

	var revenue float64
	customers := map[string]struct{}{}
	quantityIndex := map[string]int{}
	topProducts := []TopProductEntry{}
	for _, order := range orders {
		revenue += order.OrderDetails.TotalPrice
		customers[order.CustomerDetails.CustomerName] = struct{}{}
		for _, item := range order.Products {
			pos, seen := quantityIndex[item.Product]
			if !seen {
				pos = len(topProducts)
				quantityIndex[item.Product] = pos
				topProducts = append(topProducts, TopProductEntry{Product: item.Product})
			}
			topProducts[pos].TotalQuantity += item.Quantity
		}
	}
	sort.SliceStable(topProducts, func(i, j int) bool {
		return topProducts[i].TotalQuantity > topProducts[j].TotalQuantity
	})
	if len(topProducts) > 10 {
		topProducts = topProducts[:10]
	}

	average := 0.0
	if len(orders) > 0 {
		average = revenue / float64(len(orders))
	}
	return SummaryEnvelope{
		TotalOrders:       len(orders),
		TotalRevenue:      revenue,
		UniqueCustomers:   len(customers),
		AverageOrderValue: average,
		TopProducts:       topProducts,
		Success:           true,
	}
}

// decodeParams unmarshals and validates tool parameters. The boolean is
// false on any failure; the string carries the envelope-ready message.
func (ts *Toolset) decodeParams(raw json.RawMessage, params any) (string, bool) {
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, params); err != nil {
			return fmt.Sprintf("Invalid parameters: %s", err), false
		}
	}
	if err := ts.validate.Struct(params); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			field := fieldErrors[0]
			if field.Tag() == "required" {
				return fmt.Sprintf("Missing required parameter '%s'", field.Field()), false
			}
			return invalidDateMessage, false
		}
		return fmt.Sprintf("Invalid parameters: %s", err), false
	}
	return "", true
}

func upstreamMessage(err error) string {
	var apiErr *salesapi.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("Sales API error: %s", apiErr.Error())
	}
	return fmt.Sprintf("Network error: %s", err)
}
