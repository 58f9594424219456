// Package dataset loads the raw sales order file and converts it into typed
// domain records. Parsing and validation happen exactly once, at startup;
// the loosely-keyed source document never leaks past this package.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"

	"github.com/salesdata/orders-api/internal/domains/orders/domain"
)

// Raw source keys are the title-case names used by the dataset file. The
// transport layer uses camelCase; that rename lives in the http mapper, not
// here.
type rawOrder struct {
	OrderDetails    rawOrderDetails    `json:"Order Details"`
	CustomerDetails rawCustomerDetails `json:"Customer Details"`
	EmployeeDetails rawEmployeeDetails `json:"Employee Details"`
	ShipmentDetails rawShipmentDetails `json:"Shipment Details"`
	Products        []rawLineItem      `json:"Products"`
}

type rawOrderDetails struct {
	OrderID    string  `json:"Order ID"`
	OrderDate  string  `json:"Order Date"`
	TotalPrice float64 `json:"Total Price"`
}

type rawCustomerDetails struct {
	CustomerID   string `json:"Customer ID"`
	CustomerName string `json:"Customer Name"`
}

type rawEmployeeDetails struct {
	EmployeeName string `json:"Employee Name"`
}

type rawShipmentDetails struct {
	ShipName       string `json:"Ship Name"`
	ShipAddress    string `json:"Ship Address"`
	ShipCity       string `json:"Ship City"`
	ShipRegion     string `json:"Ship Region"`
	ShipPostalCode string `json:"Ship Postal Code"`
	ShipCountry    string `json:"Ship Country"`
	ShipperID      string `json:"Shipper ID"`
	ShipperName    string `json:"Shipper Name"`
	ShippedDate    string `json:"Shipped Date"`
}

type rawLineItem struct {
	Product   string  `json:"Product"`
	Quantity  int     `json:"Quantity"`
	UnitPrice float64 `json:"Unit Price"`
	Total     float64 `json:"Total"`
}

// LoadFile reads and parses the dataset at path. Any schema violation or
// decode failure rejects the whole file.
func LoadFile(path string) ([]domain.Order, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	orders, err := Parse(payload)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return orders, nil
}

// Parse validates the raw document against the dataset schema and converts it
// into domain orders.
func Parse(payload []byte) ([]domain.Order, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(datasetSchema),
		gojsonschema.NewBytesLoader(payload),
	)
	if err != nil {
		return nil, fmt.Errorf("validate dataset: %w", err)
	}
	if !result.Valid() {
		return nil, fmt.Errorf("dataset schema violation: %s", firstSchemaError(result))
	}

	var raw []rawOrder
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}

	orders := make([]domain.Order, 0, len(raw))
	for i, record := range raw {
		order := record.toDomain()
		if err := order.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func firstSchemaError(result *gojsonschema.Result) string {
	for _, desc := range result.Errors() {
		return desc.String()
	}
	return "unknown violation"
}

func (r rawOrder) toDomain() domain.Order {
	items := make([]domain.LineItem, 0, len(r.Products))
	for _, p := range r.Products {
		items = append(items, domain.LineItem{
			Product:   p.Product,
			Quantity:  p.Quantity,
			UnitPrice: p.UnitPrice,
			Total:     p.Total,
		})
	}
	return domain.Order{
		Details: domain.OrderDetails{
			OrderID:    r.OrderDetails.OrderID,
			OrderDate:  r.OrderDetails.OrderDate,
			TotalPrice: r.OrderDetails.TotalPrice,
		},
		Customer: domain.CustomerDetails{
			CustomerID:   r.CustomerDetails.CustomerID,
			CustomerName: r.CustomerDetails.CustomerName,
		},
		Employee: domain.EmployeeDetails{
			EmployeeName: r.EmployeeDetails.EmployeeName,
		},
		Shipment: domain.ShipmentDetails{
			ShipName:       r.ShipmentDetails.ShipName,
			ShipAddress:    r.ShipmentDetails.ShipAddress,
			ShipCity:       r.ShipmentDetails.ShipCity,
			ShipRegion:     r.ShipmentDetails.ShipRegion,
			ShipPostalCode: r.ShipmentDetails.ShipPostalCode,
			ShipCountry:    r.ShipmentDetails.ShipCountry,
			ShipperID:      r.ShipmentDetails.ShipperID,
			ShipperName:    r.ShipmentDetails.ShipperName,
			ShippedDate:    r.ShipmentDetails.ShippedDate,
		},
		Products: items,
	}
}
