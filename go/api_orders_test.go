package salesserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	ordermapper "github.com/salesdata/orders-api/internal/domains/orders/adapters/http/mapper"
	ordermemory "github.com/salesdata/orders-api/internal/domains/orders/adapters/memory"
	ordersapp "github.com/salesdata/orders-api/internal/domains/orders/application"
	"github.com/salesdata/orders-api/internal/domains/orders/domain"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store, err := ordermemory.NewStore([]domain.Order{
		{
			Details:  domain.OrderDetails{OrderID: "ORD-001", OrderDate: "2024-01-10", TotalPrice: 120.50},
			Customer: domain.CustomerDetails{CustomerID: "CUST-1", CustomerName: "Alice Smith"},
			Products: []domain.LineItem{
				{Product: "Widget", Quantity: 2, UnitPrice: 10.25, Total: 20.50},
				{Product: "Gadget", Quantity: 1, UnitPrice: 100.00, Total: 100.00},
			},
		},
		{
			Details:  domain.OrderDetails{OrderID: "ORD-002", OrderDate: "2024-02-05", TotalPrice: 80.25},
			Customer: domain.CustomerDetails{CustomerID: "CUST-2", CustomerName: "Bob Jones"},
			Products: []domain.LineItem{
				{Product: "Widget", Quantity: 5, UnitPrice: 10.40, Total: 52.00},
			},
		},
	})
	require.NoError(t, err)
	return NewRouter(ApiHandleFunctions{OrdersAPI: NewOrdersAPI(ordersapp.NewService(store))})
}

func doRequest(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetOrders_ReturnsWireShapedList(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), "/v1/orders")

	require.Equal(t, http.StatusOK, rec.Code)
	var orders []ordermapper.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 2)
	require.Equal(t, "ORD-001", orders[0].OrderDetails.OrderID)
	require.Equal(t, "Alice Smith", orders[0].CustomerDetails.CustomerName)
}

func TestGetOrderByID_Found(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), "/v1/order/ORD-002")

	require.Equal(t, http.StatusOK, rec.Code)
	var order ordermapper.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	require.Equal(t, "Bob Jones", order.CustomerDetails.CustomerName)
}

func TestGetOrderByID_NotFoundIsProblemDetail(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), "/v1/order/ORD-999")

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "application/problem+json")
	var problem struct {
		Title  string `json:"title"`
		Status int    `json:"status"`
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	require.Equal(t, http.StatusNotFound, problem.Status)
	require.Contains(t, problem.Detail, "ORD-999")
}

func TestGetOrdersByCustomer_RequiresAKey(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), "/v1/customers/orders")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetOrdersByCustomer_ByName(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), "/v1/customers/orders?customerName=Alice%20Smith")

	require.Equal(t, http.StatusOK, rec.Code)
	var orders []ordermapper.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
}

func TestGetOrdersByCustomer_UnknownNameIsEmptyArray(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), "/v1/customers/orders?customerName=Nobody")

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
}

func TestGetTotalSpentByCustomer(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), "/v1/customers/total-spent?customerName=Alice%20Smith")

	require.Equal(t, http.StatusOK, rec.Code)
	var response ordermapper.TotalSpent
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Equal(t, "Alice Smith", response.CustomerName)
	require.Equal(t, 120.50, response.TotalSpent)
}

func TestGetCustomersSalesSummary_BadLimit(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), "/v1/customers/sales-summary?limit=abc")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCustomersSalesSummary_SortedDescending(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), "/v1/customers/sales-summary")

	require.Equal(t, http.StatusOK, rec.Code)
	var rows []ordermapper.CustomerSalesSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	require.Equal(t, "Alice Smith", rows[0].CustomerName)
	require.GreaterOrEqual(t, rows[0].TotalSales, rows[1].TotalSales)
}

func TestGetOrdersAfterDate_RequiresDate(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), "/v1/orders/after")

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetOrdersAfterDate_InvalidDateIsEmptyArray(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), "/v1/orders/after?date=2024/01/01")

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
}

func TestGetOrdersBetweenDates(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), "/v1/orders/between?startDate=2024-01-01&endDate=2024-01-31")

	require.Equal(t, http.StatusOK, rec.Code)
	var orders []ordermapper.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	require.Equal(t, "ORD-001", orders[0].OrderDetails.OrderID)
}

func TestGetSummaryStats(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), "/v1/orders/stats")

	require.Equal(t, http.StatusOK, rec.Code)
	var stats ordermapper.SummaryStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	require.Equal(t, 2, stats.TotalOrders)
	require.Equal(t, 200.75, stats.TotalRevenue)
	require.Equal(t, "2024-01-10 to 2024-02-05", stats.DateRange)
}

func TestGetTopProductsByQuantity_WithLimit(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), "/v1/products/top-by-quantity?limit=1")

	require.Equal(t, http.StatusOK, rec.Code)
	var rows []ordermapper.TopProduct
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	require.Equal(t, "Widget", rows[0].Product)
	require.Equal(t, 7, rows[0].TotalQuantity)
	require.Equal(t, 1, rows[0].Rank)
}

func TestHealthz(t *testing.T) {
	rec := doRequest(t, newTestRouter(t), "/healthz")

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
