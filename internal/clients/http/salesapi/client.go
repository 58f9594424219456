// Package salesapi is the HTTP client the tool relay uses to reach the query
// API. Transport failures and problem responses come back as errors; the tool
// layer turns them into error envelopes.
package salesapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	ordermapper "github.com/salesdata/orders-api/internal/domains/orders/adapters/http/mapper"
)

// DefaultTimeout bounds every request to the query API.
const DefaultTimeout = 30 * time.Second

// Client calls the sales query API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// APIError carries a non-2xx problem response from the query API.
type APIError struct {
	StatusCode int
	Title      string
	Detail     string
}

func (e *APIError) Error() string {
	msg := e.Title
	if msg == "" {
		msg = "api error"
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	return fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
}

// IsNotFound reports whether err is a 404 from the query API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// NewClient instantiates the query API client with sane defaults.
func NewClient(baseURL string, httpClient *http.Client) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("sales API base URL is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}, nil
}

// Health probes the liveness endpoint.
func (c *Client) Health(ctx context.Context) error {
	var payload map[string]any
	return c.get(ctx, "/healthz", nil, &payload)
}

// Orders fetches the full order list.
func (c *Client) Orders(ctx context.Context) ([]ordermapper.Order, error) {
	var orders []ordermapper.Order
	if err := c.get(ctx, "/v1/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// OrderByID fetches a single order; a miss surfaces as a 404 APIError.
func (c *Client) OrderByID(ctx context.Context, orderID string) (*ordermapper.Order, error) {
	var order ordermapper.Order
	path := "/v1/order/" + url.PathEscape(orderID)
	if err := c.get(ctx, path, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// OrdersByCustomerName fetches all orders for a customer name.
func (c *Client) OrdersByCustomerName(ctx context.Context, customerName string) ([]ordermapper.Order, error) {
	var orders []ordermapper.Order
	query := url.Values{"customerName": {customerName}}
	if err := c.get(ctx, "/v1/customers/orders", query, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// OrdersByCustomerID fetches all orders for a customer identifier.
func (c *Client) OrdersByCustomerID(ctx context.Context, customerID string) ([]ordermapper.Order, error) {
	var orders []ordermapper.Order
	query := url.Values{"customerId": {customerID}}
	if err := c.get(ctx, "/v1/customers/orders", query, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// TotalSpentByCustomer fetches the rounded spending total for a customer name.
func (c *Client) TotalSpentByCustomer(ctx context.Context, customerName string) (float64, error) {
	var response ordermapper.TotalSpent
	query := url.Values{"customerName": {customerName}}
	if err := c.get(ctx, "/v1/customers/total-spent", query, &response); err != nil {
		return 0, err
	}
	return response.TotalSpent, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call sales API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read sales API response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return decodeProblem(resp.StatusCode, body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode sales API response: %w", err)
	}
	return nil
}

func decodeProblem(status int, body []byte) error {
	apiErr := &APIError{StatusCode: status}
	var problem struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &problem); err == nil {
		apiErr.Title = problem.Title
		apiErr.Detail = problem.Detail
	}
	return apiErr
}
