//go:build pact
// +build pact

// Package pacttest holds the shared names, provider states, and path helpers
// for the consumer and provider contract suites.
package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "sales-orders-api"
	ConsumerName = "sales-tools-relay"

	StateOrdersBaseline = "orders baseline"
	StateOrderExists    = "order ORD-001 exists"
	StateOrderMissing   = "no order with id ORD-999"
)

const (
	ExistingOrderID = "ORD-001"
	MissingOrderID  = "ORD-999"

	ExampleCustomerName = "Alice Smith"
	ExampleCustomerID   = "CUST-1"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the tool relay consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleOrderBody provides stable order data for pact interactions.
func ExampleOrderBody() map[string]any {
	return map[string]any{
		"orderDetails": map[string]any{
			"orderId":    ExistingOrderID,
			"orderDate":  "2024-01-10",
			"totalPrice": 120.50,
		},
		"customerDetails": map[string]any{
			"customerId":   ExampleCustomerID,
			"customerName": ExampleCustomerName,
		},
		"employeeDetails": map[string]any{
			"employeeName": "Dana Reeves",
		},
		"shipmentDetails": map[string]any{
			"shipName": ExampleCustomerName,
		},
		"products": []map[string]any{
			{
				"product":   "Widget",
				"quantity":  2,
				"unitPrice": 10.25,
				"total":     20.50,
			},
		},
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
