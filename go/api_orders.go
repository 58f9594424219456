package salesserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	ordermapper "github.com/salesdata/orders-api/internal/domains/orders/adapters/http/mapper"
	"github.com/salesdata/orders-api/internal/domains/orders/application/types"
	"github.com/salesdata/orders-api/internal/domains/orders/ports"
)

// OrdersAPI wires HTTP transport with the order query engine.
type OrdersAPI struct {
	service ports.Service
}

// NewOrdersAPI creates an OrdersAPI backed by the provided service.
func NewOrdersAPI(service ports.Service) OrdersAPI {
	return OrdersAPI{service: service}
}

// Get /v1/orders
// Retrieve all orders with complete details
func (api *OrdersAPI) GetOrders(c *gin.Context) {
	orders := api.service.Orders(c.Request.Context())
	c.JSON(http.StatusOK, ordermapper.FromDomainOrders(orders))
}

// Get /v1/order/:orderId
// Find an order by its identifier
func (api *OrdersAPI) GetOrderByID(c *gin.Context) {
	orderID := c.Param("orderId")
	order, err := api.service.OrderByID(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			respondNotFound(c, "order", orderID)
			return
		}
		respondError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, ordermapper.FromDomainOrder(*order))
}

// Get /v1/customers/orders
// Orders for one customer, keyed by customerId or customerName
func (api *OrdersAPI) GetOrdersByCustomer(c *gin.Context) {
	key, byID, ok := customerKey(c)
	if !ok {
		return
	}
	var orders []ordermapper.Order
	if byID {
		orders = ordermapper.FromDomainOrders(api.service.OrdersByCustomerID(c.Request.Context(), key))
	} else {
		orders = ordermapper.FromDomainOrders(api.service.OrdersByCustomerName(c.Request.Context(), key))
	}
	c.JSON(http.StatusOK, orders)
}

// Get /v1/customers/total-spent
// Total amount spent by one customer, rounded to two decimals
func (api *OrdersAPI) GetTotalSpentByCustomer(c *gin.Context) {
	key, byID, ok := customerKey(c)
	if !ok {
		return
	}
	response := ordermapper.TotalSpent{}
	if byID {
		response.CustomerID = key
		response.TotalSpent = api.service.TotalSpentByCustomerID(c.Request.Context(), key)
	} else {
		response.CustomerName = key
		response.TotalSpent = api.service.TotalSpentByCustomer(c.Request.Context(), key)
	}
	c.JSON(http.StatusOK, response)
}

// Get /v1/customers/order-count
// Number of orders placed by one customer
func (api *OrdersAPI) GetOrdersCountByCustomer(c *gin.Context) {
	key, byID, ok := customerKey(c)
	if !ok {
		return
	}
	response := ordermapper.OrderCount{}
	if byID {
		response.CustomerID = key
		response.OrderCount = api.service.OrdersCountByCustomerID(c.Request.Context(), key)
	} else {
		response.CustomerName = key
		response.OrderCount = api.service.OrdersCountByCustomerName(c.Request.Context(), key)
	}
	c.JSON(http.StatusOK, response)
}

// Get /v1/customers/sales-summary
// Per-customer sales aggregation, sorted descending by sortBy
func (api *OrdersAPI) GetCustomersSalesSummary(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}
	sortBy := types.ParseSortKey(c.Query("sortBy"))
	rows := api.service.CustomersSalesSummary(c.Request.Context(), sortBy, limit)
	c.JSON(http.StatusOK, ordermapper.FromCustomerSummaries(rows))
}

// Get /v1/products/sales-summary
// Per-product sales aggregation, sorted descending by sortBy
func (api *OrdersAPI) GetProductsSalesSummary(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}
	sortBy := types.ParseSortKey(c.Query("sortBy"))
	rows := api.service.ProductsSalesSummary(c.Request.Context(), sortBy, limit)
	c.JSON(http.StatusOK, ordermapper.FromProductSummaries(rows))
}

// Get /v1/orders/stats
// Store-wide summary statistics
func (api *OrdersAPI) GetSummaryStats(c *gin.Context) {
	stats := api.service.SummaryStats(c.Request.Context())
	c.JSON(http.StatusOK, ordermapper.FromSummaryStats(stats))
}

// Get /v1/orders/after
// Orders strictly after the given YYYY-MM-DD date
func (api *OrdersAPI) GetOrdersAfterDate(c *gin.Context) {
	date, ok := requireQuery(c, "date")
	if !ok {
		return
	}
	orders := api.service.OrdersAfterDate(c.Request.Context(), date)
	c.JSON(http.StatusOK, ordermapper.FromDomainOrders(orders))
}

// Get /v1/orders/between
// Orders with dates in [startDate, endDate] inclusive
func (api *OrdersAPI) GetOrdersBetweenDates(c *gin.Context) {
	startDate, ok := requireQuery(c, "startDate")
	if !ok {
		return
	}
	endDate, ok := requireQuery(c, "endDate")
	if !ok {
		return
	}
	orders := api.service.OrdersBetweenDates(c.Request.Context(), startDate, endDate)
	c.JSON(http.StatusOK, ordermapper.FromDomainOrders(orders))
}

// Get /v1/products/top-by-quantity
// Products ranked by total quantity sold
func (api *OrdersAPI) GetTopProductsByQuantity(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}
	rows := api.service.TopProductsByQuantity(c.Request.Context(), limit)
	c.JSON(http.StatusOK, ordermapper.FromTopProducts(rows))
}

// customerKey extracts the customer lookup key. Exactly one of customerId and
// customerName must be present; requests without either never reach the core.
func customerKey(c *gin.Context) (key string, byID bool, ok bool) {
	if id := c.Query("customerId"); id != "" {
		return id, true, true
	}
	if name := c.Query("customerName"); name != "" {
		return name, false, true
	}
	respondMissingParam(c, "customerId", "customerName")
	return "", false, false
}

func parseLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return 0, false
	}
	return limit, true
}

func requireQuery(c *gin.Context, name string) (string, bool) {
	value := c.Query(name)
	if value == "" {
		respondMissingParam(c, name)
		return "", false
	}
	return value, true
}
