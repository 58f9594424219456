package types

// SortKey selects the ranking field for the grouped summaries.
type SortKey string

const (
	SortByTotalSales    SortKey = "total_sales"
	SortByTotalQuantity SortKey = "total_quantity"
	SortByOrderCount    SortKey = "order_count"
)

// ParseSortKey maps a symbolic value onto a SortKey. Anything unknown falls
// back to total_sales, matching the engine-level default.
func ParseSortKey(value string) SortKey {
	switch SortKey(value) {
	case SortByTotalQuantity:
		return SortByTotalQuantity
	case SortByOrderCount:
		return SortByOrderCount
	default:
		return SortByTotalSales
	}
}

// CustomerSalesSummary is one row of the per-customer aggregation.
type CustomerSalesSummary struct {
	CustomerName string
	CustomerID   string
	TotalSales   float64
	OrderCount   int
}

// ProductSalesSummary is one row of the per-product aggregation. UnitPrice is
// the last observed unit price for the product name, not an average.
type ProductSalesSummary struct {
	Product       string
	UnitPrice     float64
	TotalSales    float64
	TotalQuantity int
}

// SummaryStats aggregates the whole store.
type SummaryStats struct {
	TotalOrders       int
	TotalRevenue      float64
	UniqueCustomers   int
	AverageOrderValue float64
	DateRange         string
}

// TopProduct ranks a product by summed quantity, 1-based.
type TopProduct struct {
	Product       string
	TotalQuantity int
	Rank          int
}
