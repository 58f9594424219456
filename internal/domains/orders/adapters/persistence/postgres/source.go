package postgres

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/salesdata/orders-api/internal/domains/orders/domain"
)

// Source reads the sales dataset out of PostgreSQL. It is a load-once
// alternative to the JSON file: the full order set is fetched at startup and
// frozen into the in-memory store, after which no query touches the database.
type Source struct {
	db *gorm.DB
}

// NewSource wires a PostgreSQL-backed dataset source and ensures the schema
// exists. Caller manages DB lifecycle.
func NewSource(db *gorm.DB) (*Source, error) {
	if db == nil {
		return nil, errors.New("postgres dataset source requires a database handle")
	}
	if err := db.AutoMigrate(&orderRecord{}); err != nil {
		return nil, err
	}
	return &Source{db: db}, nil
}

// orderRecord maps one sales order row. Line items are serialized JSON on the
// row; product_names is a denormalized array kept for ad-hoc SQL filtering.
type orderRecord struct {
	OrderID        string         `gorm:"primaryKey;column:order_id"`
	OrderDate      string         `gorm:"column:order_date;type:varchar(10);index"`
	TotalPrice     float64        `gorm:"column:total_price"`
	CustomerID     string         `gorm:"column:customer_id;index"`
	CustomerName   string         `gorm:"column:customer_name;index"`
	EmployeeName   string         `gorm:"column:employee_name"`
	ShipName       string         `gorm:"column:ship_name"`
	ShipAddress    string         `gorm:"column:ship_address"`
	ShipCity       string         `gorm:"column:ship_city"`
	ShipRegion     string         `gorm:"column:ship_region"`
	ShipPostalCode string         `gorm:"column:ship_postal_code"`
	ShipCountry    string         `gorm:"column:ship_country"`
	ShipperID      string         `gorm:"column:shipper_id"`
	ShipperName    string         `gorm:"column:shipper_name"`
	ShippedDate    string         `gorm:"column:shipped_date"`
	ProductNames   pq.StringArray `gorm:"column:product_names;type:text[]"`
	Products       []lineItem     `gorm:"column:products;serializer:json"`
}

type lineItem struct {
	Product   string  `json:"product"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`
}

func (orderRecord) TableName() string { return "sales_orders" }

// LoadAll fetches every order in insertion order.
func (s *Source) LoadAll(ctx context.Context) ([]domain.Order, error) {
	if err := s.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := s.db.WithContext(ctx).Order("order_id").Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders, nil
}

// Seed inserts orders for test and bootstrap scenarios. The serving path
// never writes; the dataset is read-only for the process lifetime.
func (s *Source) Seed(ctx context.Context, orders []domain.Order) error {
	if err := s.ensureDB(); err != nil {
		return err
	}
	for i := range orders {
		record := toRecord(orders[i])
		if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Source) ensureDB() error {
	if s == nil || s.db == nil {
		return errors.New("postgres dataset source not configured")
	}
	return nil
}

func toRecord(order domain.Order) orderRecord {
	record := orderRecord{
		OrderID:        order.Details.OrderID,
		OrderDate:      order.Details.OrderDate,
		TotalPrice:     order.Details.TotalPrice,
		CustomerID:     order.Customer.CustomerID,
		CustomerName:   order.Customer.CustomerName,
		EmployeeName:   order.Employee.EmployeeName,
		ShipName:       order.Shipment.ShipName,
		ShipAddress:    order.Shipment.ShipAddress,
		ShipCity:       order.Shipment.ShipCity,
		ShipRegion:     order.Shipment.ShipRegion,
		ShipPostalCode: order.Shipment.ShipPostalCode,
		ShipCountry:    order.Shipment.ShipCountry,
		ShipperID:      order.Shipment.ShipperID,
		ShipperName:    order.Shipment.ShipperName,
		ShippedDate:    order.Shipment.ShippedDate,
	}
	for _, item := range order.Products {
		record.ProductNames = append(record.ProductNames, item.Product)
		record.Products = append(record.Products, lineItem{
			Product:   item.Product,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.Total,
		})
	}
	return record
}

func (r orderRecord) toDomain() domain.Order {
	order := domain.Order{
		Details: domain.OrderDetails{
			OrderID:    r.OrderID,
			OrderDate:  r.OrderDate,
			TotalPrice: r.TotalPrice,
		},
		Customer: domain.CustomerDetails{
			CustomerID:   r.CustomerID,
			CustomerName: r.CustomerName,
		},
		Employee: domain.EmployeeDetails{EmployeeName: r.EmployeeName},
		Shipment: domain.ShipmentDetails{
			ShipName:       r.ShipName,
			ShipAddress:    r.ShipAddress,
			ShipCity:       r.ShipCity,
			ShipRegion:     r.ShipRegion,
			ShipPostalCode: r.ShipPostalCode,
			ShipCountry:    r.ShipCountry,
			ShipperID:      r.ShipperID,
			ShipperName:    r.ShipperName,
			ShippedDate:    r.ShippedDate,
		},
	}
	for _, item := range r.Products {
		order.Products = append(order.Products, domain.LineItem{
			Product:   item.Product,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Total:     item.Total,
		})
	}
	return order
}
