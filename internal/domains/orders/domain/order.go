package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyOrderID     = errors.New("order id is required")
	ErrNegativeTotal    = errors.New("order total price must not be negative")
	ErrEmptyProduct     = errors.New("line item product name is required")
	ErrNegativeQuantity = errors.New("line item quantity must not be negative")
	ErrNegativePrice    = errors.New("line item prices must not be negative")
)

// LineItem is one product entry within an order. The line total is taken as
// authoritative and never recomputed from quantity and unit price.
type LineItem struct {
	Product   string
	Quantity  int
	UnitPrice float64
	Total     float64
}

// OrderDetails carries the order's own identifying attributes. The date stays
// a string; comparisons are lexicographic and rely on zero-padded YYYY-MM-DD.
type OrderDetails struct {
	OrderID    string
	OrderDate  string
	TotalPrice float64
}

// CustomerDetails identifies the purchasing customer. The dataset maps one
// customer id to exactly one name; this is assumed, not enforced.
type CustomerDetails struct {
	CustomerID   string
	CustomerName string
}

// EmployeeDetails names the employee who handled the order, when known.
type EmployeeDetails struct {
	EmployeeName string
}

// ShipmentDetails holds pass-through shipping fields. They are never computed
// on and are emitted verbatim at the transport boundary.
type ShipmentDetails struct {
	ShipName       string
	ShipAddress    string
	ShipCity       string
	ShipRegion     string
	ShipPostalCode string
	ShipCountry    string
	ShipperID      string
	ShipperName    string
	ShippedDate    string
}

// Order is the aggregate held by the order store. Instances are immutable
// after the one-time dataset load.
type Order struct {
	Details  OrderDetails
	Customer CustomerDetails
	Employee EmployeeDetails
	Shipment ShipmentDetails
	Products []LineItem
}

// Validate enforces the load-time invariants. It runs once when the dataset
// is built; queries trust the data afterwards.
func (o Order) Validate() error {
	if strings.TrimSpace(o.Details.OrderID) == "" {
		return ErrEmptyOrderID
	}
	if o.Details.TotalPrice < 0 {
		return ErrNegativeTotal
	}
	for _, item := range o.Products {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks a single line item.
func (li LineItem) Validate() error {
	if strings.TrimSpace(li.Product) == "" {
		return ErrEmptyProduct
	}
	if li.Quantity < 0 {
		return ErrNegativeQuantity
	}
	if li.UnitPrice < 0 || li.Total < 0 {
		return ErrNegativePrice
	}
	return nil
}

// Clone returns a deep copy so store snapshots cannot be aliased by callers.
func (o Order) Clone() Order {
	clone := o
	if len(o.Products) > 0 {
		clone.Products = append([]LineItem{}, o.Products...)
	}
	return clone
}
