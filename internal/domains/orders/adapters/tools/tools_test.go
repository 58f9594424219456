package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/salesdata/orders-api/internal/clients/http/salesapi"
)

const fixtureOrdersJSON = `[
  {
    "orderDetails": {"orderId": "ORD-001", "orderDate": "2024-01-10", "totalPrice": 120.5},
    "customerDetails": {"customerId": "CUST-1", "customerName": "Alice Smith"},
    "employeeDetails": {"employeeName": "Dana Reeves"},
    "shipmentDetails": {"shipName": "Alice Smith"},
    "products": [
      {"product": "Widget", "quantity": 2, "unitPrice": 10.25, "total": 20.5},
      {"product": "Gadget", "quantity": 1, "unitPrice": 100, "total": 100}
    ]
  },
  {
    "orderDetails": {"orderId": "ORD-002", "orderDate": "2024-02-05", "totalPrice": 80.25},
    "customerDetails": {"customerId": "CUST-2", "customerName": "Bob Jones"},
    "employeeDetails": {"employeeName": "Dana Reeves"},
    "shipmentDetails": {"shipName": "Bob Jones"},
    "products": [
      {"product": "Widget", "quantity": 5, "unitPrice": 10.4, "total": 52}
    ]
  }
]`

func newFixtureAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	mux.HandleFunc("/v1/orders", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(fixtureOrdersJSON))
	})
	mux.HandleFunc("/v1/order/ORD-001", func(w http.ResponseWriter, _ *http.Request) {
		var orders []json.RawMessage
		_ = json.Unmarshal([]byte(fixtureOrdersJSON), &orders)
		w.Header().Set("Content-Type", "application/json")
		w.Write(orders[0])
	})
	mux.HandleFunc("/v1/order/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"title":"Resource Not Found","status":404,"detail":"order with identifier 'ORD-999' not found"}`))
	})
	mux.HandleFunc("/v1/customers/orders", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("customerName") == "Alice Smith" || r.URL.Query().Get("customerId") == "CUST-1" {
			var orders []json.RawMessage
			_ = json.Unmarshal([]byte(fixtureOrdersJSON), &orders)
			w.Write([]byte(`[`))
			w.Write(orders[0])
			w.Write([]byte(`]`))
			return
		}
		w.Write([]byte(`[]`))
	})
	mux.HandleFunc("/v1/customers/total-spent", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"customerName":"Alice Smith","totalSpent":120.5}`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newFixtureRegistry(t *testing.T) *Registry {
	t.Helper()
	server := newFixtureAPI(t)
	client, err := salesapi.NewClient(server.URL, server.Client())
	require.NoError(t, err)
	_, registry := NewToolset(client, server.URL)
	return registry
}

func invoke(t *testing.T, registry *Registry, name, params string) any {
	t.Helper()
	result, known := registry.Invoke(context.Background(), name, json.RawMessage(params))
	require.True(t, known)
	return result
}

func TestRegistry_ListsToolsInRegistrationOrder(t *testing.T) {
	registry := newFixtureRegistry(t)

	listed := registry.List()

	require.Len(t, listed, 9)
	require.Equal(t, "test_connection", listed[0].Name)
	require.Equal(t, "get_order_summary", listed[8].Name)
}

func TestRegistry_UnknownTool(t *testing.T) {
	registry := newFixtureRegistry(t)

	_, known := registry.Invoke(context.Background(), "no_such_tool", nil)

	require.False(t, known)
}

func TestTestConnection_Connected(t *testing.T) {
	registry := newFixtureRegistry(t)

	result := invoke(t, registry, "test_connection", "")

	envelope, ok := result.(ConnectionEnvelope)
	require.True(t, ok)
	require.True(t, envelope.Connected)
	require.NotEmpty(t, envelope.Endpoint)
}

func TestTestConnection_Unreachable(t *testing.T) {
	client, err := salesapi.NewClient("http://127.0.0.1:1", nil)
	require.NoError(t, err)
	_, registry := NewToolset(client, "http://127.0.0.1:1")

	result := invoke(t, registry, "test_connection", "")

	envelope, ok := result.(ConnectionEnvelope)
	require.True(t, ok)
	require.False(t, envelope.Connected)
	require.Contains(t, envelope.Error, "Network error")
}

func TestGetAllOrders(t *testing.T) {
	registry := newFixtureRegistry(t)

	result := invoke(t, registry, "get_all_orders", "")

	envelope, ok := result.(OrdersEnvelope)
	require.True(t, ok)
	require.True(t, envelope.Success)
	require.Equal(t, 2, envelope.TotalCount)
	require.Equal(t, "ORD-001", envelope.Orders[0].OrderDetails.OrderID)
}

func TestGetOrderByID_Success(t *testing.T) {
	registry := newFixtureRegistry(t)

	result := invoke(t, registry, "get_order_by_id", `{"order_id": "ORD-001"}`)

	envelope, ok := result.(OrderEnvelope)
	require.True(t, ok)
	require.True(t, envelope.Success)
	require.Equal(t, "Alice Smith", envelope.Order.CustomerDetails.CustomerName)
}

func TestGetOrderByID_NotFound(t *testing.T) {
	registry := newFixtureRegistry(t)

	result := invoke(t, registry, "get_order_by_id", `{"order_id": "ORD-999"}`)

	envelope, ok := result.(ErrorEnvelope)
	require.True(t, ok)
	require.False(t, envelope.Success)
	require.Equal(t, "Order with ID 'ORD-999' not found", envelope.Error)
}

func TestGetOrderByID_MissingParam(t *testing.T) {
	registry := newFixtureRegistry(t)

	result := invoke(t, registry, "get_order_by_id", `{}`)

	envelope, ok := result.(ErrorEnvelope)
	require.True(t, ok)
	require.Equal(t, "Missing required parameter 'order_id'", envelope.Error)
}

func TestGetOrdersByCustomerName(t *testing.T) {
	registry := newFixtureRegistry(t)

	result := invoke(t, registry, "get_orders_by_customer_name", `{"customer_name": "Alice Smith"}`)

	envelope, ok := result.(OrdersEnvelope)
	require.True(t, ok)
	require.True(t, envelope.Success)
	require.Equal(t, "Alice Smith", envelope.CustomerName)
	require.Equal(t, 1, envelope.TotalCount)
}

func TestGetTotalSpentByCustomer(t *testing.T) {
	registry := newFixtureRegistry(t)

	result := invoke(t, registry, "get_total_spent_by_customer", `{"customer_name": "Alice Smith"}`)

	envelope, ok := result.(TotalSpentEnvelope)
	require.True(t, ok)
	require.True(t, envelope.Success)
	require.Equal(t, 120.5, envelope.TotalSpent)
}

func TestOrdersAfterDate_FiltersLocally(t *testing.T) {
	registry := newFixtureRegistry(t)

	result := invoke(t, registry, "orders_after_date", `{"date": "2024-01-10"}`)

	envelope, ok := result.(OrdersEnvelope)
	require.True(t, ok)
	require.True(t, envelope.Success)
	require.Equal(t, 1, envelope.TotalCount)
	require.Equal(t, "ORD-002", envelope.Orders[0].OrderDetails.OrderID)
	require.Equal(t, "2024-01-10", envelope.FilterDate)
}

func TestOrdersAfterDate_InvalidFormat(t *testing.T) {
	registry := newFixtureRegistry(t)

	result := invoke(t, registry, "orders_after_date", `{"date": "2024/01/10"}`)

	envelope, ok := result.(ErrorEnvelope)
	require.True(t, ok)
	require.Equal(t, "Invalid date format. Please use YYYY-MM-DD", envelope.Error)
}

func TestOrdersBetweenDates_InclusiveBounds(t *testing.T) {
	registry := newFixtureRegistry(t)

	result := invoke(t, registry, "orders_between_dates", `{"start_date": "2024-01-10", "end_date": "2024-02-05"}`)

	envelope, ok := result.(OrdersEnvelope)
	require.True(t, ok)
	require.True(t, envelope.Success)
	require.Equal(t, 2, envelope.TotalCount)
	require.Equal(t, "2024-01-10", envelope.StartDate)
	require.Equal(t, "2024-02-05", envelope.EndDate)
}

func TestOrdersBetweenDates_InvertedRange(t *testing.T) {
	registry := newFixtureRegistry(t)

	result := invoke(t, registry, "orders_between_dates", `{"start_date": "2024-03-01", "end_date": "2024-01-01"}`)

	envelope, ok := result.(ErrorEnvelope)
	require.True(t, ok)
	require.Equal(t, "Start date must be before or equal to end date", envelope.Error)
}

func TestGetOrderSummary(t *testing.T) {
	registry := newFixtureRegistry(t)

	result := invoke(t, registry, "get_order_summary", "")

	envelope, ok := result.(SummaryEnvelope)
	require.True(t, ok)
	require.True(t, envelope.Success)
	require.Equal(t, 2, envelope.TotalOrders)
	require.Equal(t, 200.75, envelope.TotalRevenue)
	require.Equal(t, 2, envelope.UniqueCustomers)
	require.Equal(t, 100.375, envelope.AverageOrderValue)
	require.Equal(t, "Widget", envelope.TopProducts[0].Product)
	require.Equal(t, 7, envelope.TopProducts[0].TotalQuantity)
}

func TestNetworkFailureBecomesErrorEnvelope(t *testing.T) {
	client, err := salesapi.NewClient("http://127.0.0.1:1", nil)
	require.NoError(t, err)
	_, registry := NewToolset(client, "http://127.0.0.1:1")

	result := invoke(t, registry, "get_all_orders", "")

	envelope, ok := result.(ErrorEnvelope)
	require.True(t, ok)
	require.False(t, envelope.Success)
	require.Contains(t, envelope.Error, "Network error")
}
