package application

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/salesdata/orders-api/internal/domains/orders/application/types"
	"github.com/salesdata/orders-api/internal/domains/orders/domain"
	"github.com/salesdata/orders-api/internal/domains/orders/ports"
)

const dateLayout = "2006-01-02"

// DefaultTopProductsLimit applies when the caller gives no usable limit.
const DefaultTopProductsLimit = 10

// Service is the query engine. Every operation recomputes from the full store
// on each call; the dataset is small, static, and read-only, so no incremental
// index is kept. Grouping uses exact string equality throughout.
type Service struct {
	store ports.Store
}

// NewService wires the engine with its store.
func NewService(store ports.Store) *Service {
	return &Service{store: store}
}

// Orders returns the full order sequence.
func (s *Service) Orders(ctx context.Context) []domain.Order {
	return s.store.All(ctx)
}

// OrderByID returns the first order matching the identifier, or ErrNotFound.
func (s *Service) OrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	for _, order := range s.store.All(ctx) {
		if order.Details.OrderID == orderID {
			match := order.Clone()
			return &match, nil
		}
	}
	return nil, ports.ErrNotFound
}

// OrdersByCustomerID returns all orders placed under the customer identifier.
func (s *Service) OrdersByCustomerID(ctx context.Context, customerID string) []domain.Order {
	return s.filterOrders(ctx, func(o domain.Order) bool {
		return o.Customer.CustomerID == customerID
	})
}

// OrdersByCustomerName returns all orders placed under the customer name.
func (s *Service) OrdersByCustomerName(ctx context.Context, customerName string) []domain.Order {
	return s.filterOrders(ctx, func(o domain.Order) bool {
		return o.Customer.CustomerName == customerName
	})
}

// TotalSpentByCustomer sums total prices over orders matching the customer
// name, rounded to two decimals. No match yields 0.
func (s *Service) TotalSpentByCustomer(ctx context.Context, customerName string) float64 {
	var total float64
	for _, order := range s.store.All(ctx) {
		if order.Customer.CustomerName == customerName {
			total += order.Details.TotalPrice
		}
	}
	return round2(total)
}

// TotalSpentByCustomerID is TotalSpentByCustomer keyed on the identifier.
func (s *Service) TotalSpentByCustomerID(ctx context.Context, customerID string) float64 {
	var total float64
	for _, order := range s.store.All(ctx) {
		if order.Customer.CustomerID == customerID {
			total += order.Details.TotalPrice
		}
	}
	return round2(total)
}

// OrdersCountByCustomerName counts orders matching the customer name.
func (s *Service) OrdersCountByCustomerName(ctx context.Context, customerName string) int {
	count := 0
	for _, order := range s.store.All(ctx) {
		if order.Customer.CustomerName == customerName {
			count++
		}
	}
	return count
}

// OrdersCountByCustomerID counts orders matching the customer identifier.
func (s *Service) OrdersCountByCustomerID(ctx context.Context, customerID string) int {
	count := 0
	for _, order := range s.store.All(ctx) {
		if order.Customer.CustomerID == customerID {
			count++
		}
	}
	return count
}

// CustomersSalesSummary groups orders by customer identifier, summing total
// price and counting orders per group. Rows come out descending by the chosen
// key; ties keep the grouping traversal order, which follows first appearance
// in the store and carries no further guarantee.
func (s *Service) CustomersSalesSummary(ctx context.Context, sortBy types.SortKey, limit int) []types.CustomerSalesSummary {
	index := map[string]int{}
	rows := []types.CustomerSalesSummary{}

	for _, order := range s.store.All(ctx) {
		id := order.Customer.CustomerID
		pos, seen := index[id]
		if !seen {
			pos = len(rows)
			index[id] = pos
			rows = append(rows, types.CustomerSalesSummary{
				CustomerID:   id,
				CustomerName: order.Customer.CustomerName,
			})
		}
		rows[pos].TotalSales += order.Details.TotalPrice
		rows[pos].OrderCount++
	}
	for i := range rows {
		rows[i].TotalSales = round2(rows[i].TotalSales)
	}

	if sortBy == types.SortByOrderCount {
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].OrderCount > rows[j].OrderCount })
	} else {
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].TotalSales > rows[j].TotalSales })
	}
	return truncate(rows, limit)
}

// ProductsSalesSummary groups line items across all orders by product name,
// summing line totals and quantities. The representative unit price is the
// last one observed for the product name, deliberately not an average.
func (s *Service) ProductsSalesSummary(ctx context.Context, sortBy types.SortKey, limit int) []types.ProductSalesSummary {
	index := map[string]int{}
	rows := []types.ProductSalesSummary{}

	for _, order := range s.store.All(ctx) {
		for _, item := range order.Products {
			pos, seen := index[item.Product]
			if !seen {
				pos = len(rows)
				index[item.Product] = pos
				rows = append(rows, types.ProductSalesSummary{Product: item.Product})
			}
			rows[pos].UnitPrice = item.UnitPrice
			rows[pos].TotalSales += item.Total
			rows[pos].TotalQuantity += item.Quantity
		}
	}
	for i := range rows {
		rows[i].TotalSales = round2(rows[i].TotalSales)
	}

	if sortBy == types.SortByTotalQuantity {
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].TotalQuantity > rows[j].TotalQuantity })
	} else {
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].TotalSales > rows[j].TotalSales })
	}
	return truncate(rows, limit)
}

// SummaryStats aggregates the whole store. An empty store yields an explicit
// placeholder summary instead of an error.
func (s *Service) SummaryStats(ctx context.Context) types.SummaryStats {
	orders := s.store.All(ctx)
	if len(orders) == 0 {
		return types.SummaryStats{DateRange: "No data available"}
	}

	var revenue float64
	customers := map[string]struct{}{}
	var minDate, maxDate string
	for _, order := range orders {
		revenue += order.Details.TotalPrice
		customers[order.Customer.CustomerID] = struct{}{}
		if date := order.Details.OrderDate; date != "" {
			if minDate == "" || date < minDate {
				minDate = date
			}
			if date > maxDate {
				maxDate = date
			}
		}
	}

	dateRange := "Unknown"
	if minDate != "" {
		dateRange = fmt.Sprintf("%s to %s", minDate, maxDate)
	}
	return types.SummaryStats{
		TotalOrders:       len(orders),
		TotalRevenue:      round2(revenue),
		UniqueCustomers:   len(customers),
		AverageOrderValue: round2(revenue / float64(len(orders))),
		DateRange:         dateRange,
	}
}

// OrdersAfterDate returns orders strictly after the given date. A date that
// is not a valid YYYY-MM-DD calendar date yields an empty result, not an
// error; callers cannot tell bad input from no matches through this channel.
func (s *Service) OrdersAfterDate(ctx context.Context, date string) []domain.Order {
	if !validDate(date) {
		return []domain.Order{}
	}
	return s.filterOrders(ctx, func(o domain.Order) bool {
		return o.Details.OrderDate > date
	})
}

// OrdersBetweenDates returns orders with dates in [startDate, endDate]
// inclusive. Invalid dates or an inverted range yield an empty result.
func (s *Service) OrdersBetweenDates(ctx context.Context, startDate, endDate string) []domain.Order {
	if !validDate(startDate) || !validDate(endDate) || startDate > endDate {
		return []domain.Order{}
	}
	return s.filterOrders(ctx, func(o domain.Order) bool {
		return startDate <= o.Details.OrderDate && o.Details.OrderDate <= endDate
	})
}

// TopProductsByQuantity sums quantities per product name across all line
// items, ranks descending, and truncates. A non-positive limit falls back to
// the default of 10. Tie order follows the stable sort and is unspecified.
func (s *Service) TopProductsByQuantity(ctx context.Context, limit int) []types.TopProduct {
	if limit <= 0 {
		limit = DefaultTopProductsLimit
	}

	index := map[string]int{}
	rows := []types.TopProduct{}
	for _, order := range s.store.All(ctx) {
		for _, item := range order.Products {
			pos, seen := index[item.Product]
			if !seen {
				pos = len(rows)
				index[item.Product] = pos
				rows = append(rows, types.TopProduct{Product: item.Product})
			}
			rows[pos].TotalQuantity += item.Quantity
		}
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].TotalQuantity > rows[j].TotalQuantity })
	rows = truncate(rows, limit)
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

func (s *Service) filterOrders(ctx context.Context, keep func(domain.Order) bool) []domain.Order {
	matched := []domain.Order{}
	for _, order := range s.store.All(ctx) {
		if keep(order) {
			matched = append(matched, order)
		}
	}
	return matched
}

func validDate(date string) bool {
	_, err := time.Parse(dateLayout, date)
	return err == nil
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

func truncate[T any](rows []T, limit int) []T {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}

var _ ports.Service = (*Service)(nil)
