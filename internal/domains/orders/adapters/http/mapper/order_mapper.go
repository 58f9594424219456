// Package mapper owns the rename between internal field names and the
// camelCase wire schema. Handlers and clients share these shapes; nothing
// else in the repo spells out a transport field name.
package mapper

import (
	"github.com/salesdata/orders-api/internal/domains/orders/application/types"
	"github.com/salesdata/orders-api/internal/domains/orders/domain"
)

// Order is the transport representation of a sales order.
type Order struct {
	OrderDetails    OrderDetails    `json:"orderDetails"`
	CustomerDetails CustomerDetails `json:"customerDetails"`
	EmployeeDetails EmployeeDetails `json:"employeeDetails"`
	ShipmentDetails ShipmentDetails `json:"shipmentDetails"`
	Products        []LineItem      `json:"products"`
}

type OrderDetails struct {
	OrderID    string  `json:"orderId"`
	OrderDate  string  `json:"orderDate"`
	TotalPrice float64 `json:"totalPrice"`
}

type CustomerDetails struct {
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
}

type EmployeeDetails struct {
	EmployeeName string `json:"employeeName"`
}

type ShipmentDetails struct {
	ShipName       string `json:"shipName"`
	ShipAddress    string `json:"shipAddress"`
	ShipCity       string `json:"shipCity"`
	ShipRegion     string `json:"shipRegion"`
	ShipPostalCode string `json:"shipPostalCode"`
	ShipCountry    string `json:"shipCountry"`
	ShipperID      string `json:"shipperId"`
	ShipperName    string `json:"shipperName"`
	ShippedDate    string `json:"shippedDate"`
}

type LineItem struct {
	Product   string  `json:"product"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`
}

// CustomerSalesSummary is one wire row of the per-customer aggregation.
type CustomerSalesSummary struct {
	CustomerName string  `json:"customerName"`
	CustomerID   string  `json:"customerId"`
	TotalSales   float64 `json:"totalSales"`
	OrderCount   int     `json:"orderCount"`
}

// ProductSalesSummary is one wire row of the per-product aggregation.
type ProductSalesSummary struct {
	Product       string  `json:"product"`
	UnitPrice     float64 `json:"unitPrice"`
	TotalSales    float64 `json:"totalSales"`
	TotalQuantity int     `json:"totalQuantity"`
}

// SummaryStats is the wire shape of the store-wide aggregate.
type SummaryStats struct {
	TotalOrders       int     `json:"totalOrders"`
	TotalRevenue      float64 `json:"totalRevenue"`
	UniqueCustomers   int     `json:"uniqueCustomers"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	DateRange         string  `json:"dateRange"`
}

// TopProduct is one ranked wire row.
type TopProduct struct {
	Product       string `json:"product"`
	TotalQuantity int    `json:"totalQuantity"`
	Rank          int    `json:"rank"`
}

// TotalSpent reports a customer spending lookup.
type TotalSpent struct {
	CustomerID   string  `json:"customerId,omitempty"`
	CustomerName string  `json:"customerName,omitempty"`
	TotalSpent   float64 `json:"totalSpent"`
}

// OrderCount reports a customer order-count lookup.
type OrderCount struct {
	CustomerID   string `json:"customerId,omitempty"`
	CustomerName string `json:"customerName,omitempty"`
	OrderCount   int    `json:"orderCount"`
}

// FromDomainOrder converts a domain order to the transport representation.
// Every field passes through verbatim.
func FromDomainOrder(order domain.Order) Order {
	items := make([]LineItem, 0, len(order.Products))
	for _, item := range order.Products {
		items = append(items, LineItem{
			Product:   item.Product,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.Total,
		})
	}
	return Order{
		OrderDetails: OrderDetails{
			OrderID:    order.Details.OrderID,
			OrderDate:  order.Details.OrderDate,
			TotalPrice: order.Details.TotalPrice,
		},
		CustomerDetails: CustomerDetails{
			CustomerID:   order.Customer.CustomerID,
			CustomerName: order.Customer.CustomerName,
		},
		EmployeeDetails: EmployeeDetails{
			EmployeeName: order.Employee.EmployeeName,
		},
		ShipmentDetails: ShipmentDetails{
			ShipName:       order.Shipment.ShipName,
			ShipAddress:    order.Shipment.ShipAddress,
			ShipCity:       order.Shipment.ShipCity,
			ShipRegion:     order.Shipment.ShipRegion,
			ShipPostalCode: order.Shipment.ShipPostalCode,
			ShipCountry:    order.Shipment.ShipCountry,
			ShipperID:      order.Shipment.ShipperID,
			ShipperName:    order.Shipment.ShipperName,
			ShippedDate:    order.Shipment.ShippedDate,
		},
		Products: items,
	}
}

// FromDomainOrders converts a list of domain orders.
func FromDomainOrders(orders []domain.Order) []Order {
	out := make([]Order, 0, len(orders))
	for _, order := range orders {
		out = append(out, FromDomainOrder(order))
	}
	return out
}

// FromCustomerSummaries converts engine summary rows to the wire shape.
func FromCustomerSummaries(rows []types.CustomerSalesSummary) []CustomerSalesSummary {
	out := make([]CustomerSalesSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, CustomerSalesSummary{
			CustomerName: row.CustomerName,
			CustomerID:   row.CustomerID,
			TotalSales:   row.TotalSales,
			OrderCount:   row.OrderCount,
		})
	}
	return out
}

// FromProductSummaries converts engine summary rows to the wire shape.
func FromProductSummaries(rows []types.ProductSalesSummary) []ProductSalesSummary {
	out := make([]ProductSalesSummary, 0, len(rows))
	for _, row := range rows {
		out = append(out, ProductSalesSummary{
			Product:       row.Product,
			UnitPrice:     row.UnitPrice,
			TotalSales:    row.TotalSales,
			TotalQuantity: row.TotalQuantity,
		})
	}
	return out
}

// FromSummaryStats converts the store-wide aggregate to the wire shape.
func FromSummaryStats(stats types.SummaryStats) SummaryStats {
	return SummaryStats{
		TotalOrders:       stats.TotalOrders,
		TotalRevenue:      stats.TotalRevenue,
		UniqueCustomers:   stats.UniqueCustomers,
		AverageOrderValue: stats.AverageOrderValue,
		DateRange:         stats.DateRange,
	}
}

// FromTopProducts converts ranked rows to the wire shape.
func FromTopProducts(rows []types.TopProduct) []TopProduct {
	out := make([]TopProduct, 0, len(rows))
	for _, row := range rows {
		out = append(out, TopProduct{
			Product:       row.Product,
			TotalQuantity: row.TotalQuantity,
			Rank:          row.Rank,
		})
	}
	return out
}
