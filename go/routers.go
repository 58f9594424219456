package salesserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ApiHandleFunctions groups the handler sets mounted on the router.
type ApiHandleFunctions struct {
	OrdersAPI OrdersAPI
}

// Route binds one HTTP method and pattern to a handler.
type Route struct {
	Method      string
	Pattern     string
	HandlerFunc gin.HandlerFunc
}

// NewRouter returns a gin engine with all query API routes registered.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	router := gin.Default()
	for _, route := range getRoutes(handleFunctions) {
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

func getRoutes(h ApiHandleFunctions) []Route {
	return []Route{
		{http.MethodGet, "/healthz", healthz},
		{http.MethodGet, "/v1/orders", h.OrdersAPI.GetOrders},
		{http.MethodGet, "/v1/orders/stats", h.OrdersAPI.GetSummaryStats},
		{http.MethodGet, "/v1/orders/after", h.OrdersAPI.GetOrdersAfterDate},
		{http.MethodGet, "/v1/orders/between", h.OrdersAPI.GetOrdersBetweenDates},
		{http.MethodGet, "/v1/order/:orderId", h.OrdersAPI.GetOrderByID},
		{http.MethodGet, "/v1/customers/orders", h.OrdersAPI.GetOrdersByCustomer},
		{http.MethodGet, "/v1/customers/total-spent", h.OrdersAPI.GetTotalSpentByCustomer},
		{http.MethodGet, "/v1/customers/order-count", h.OrdersAPI.GetOrdersCountByCustomer},
		{http.MethodGet, "/v1/customers/sales-summary", h.OrdersAPI.GetCustomersSalesSummary},
		{http.MethodGet, "/v1/products/sales-summary", h.OrdersAPI.GetProductsSalesSummary},
		{http.MethodGet, "/v1/products/top-by-quantity", h.OrdersAPI.GetTopProductsByQuantity},
	}
}

func healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
