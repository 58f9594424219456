package ports

import (
	"context"

	"github.com/salesdata/orders-api/internal/domains/orders/application/types"
	"github.com/salesdata/orders-api/internal/domains/orders/domain"
)

// Service exposes every read operation of the query engine to adapters. All
// operations are pure functions of the store contents and their parameters;
// bad input normalizes to empty or zero results instead of errors, except the
// single-order lookup which reports ErrNotFound.
type Service interface {
	Orders(ctx context.Context) []domain.Order
	OrderByID(ctx context.Context, orderID string) (*domain.Order, error)
	OrdersByCustomerID(ctx context.Context, customerID string) []domain.Order
	OrdersByCustomerName(ctx context.Context, customerName string) []domain.Order
	TotalSpentByCustomer(ctx context.Context, customerName string) float64
	TotalSpentByCustomerID(ctx context.Context, customerID string) float64
	OrdersCountByCustomerName(ctx context.Context, customerName string) int
	OrdersCountByCustomerID(ctx context.Context, customerID string) int
	CustomersSalesSummary(ctx context.Context, sortBy types.SortKey, limit int) []types.CustomerSalesSummary
	ProductsSalesSummary(ctx context.Context, sortBy types.SortKey, limit int) []types.ProductSalesSummary
	SummaryStats(ctx context.Context) types.SummaryStats
	OrdersAfterDate(ctx context.Context, date string) []domain.Order
	OrdersBetweenDates(ctx context.Context, startDate, endDate string) []domain.Order
	TopProductsByQuantity(ctx context.Context, limit int) []types.TopProduct
}
