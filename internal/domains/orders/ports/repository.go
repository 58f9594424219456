package ports

import (
	"context"
	"errors"

	"github.com/salesdata/orders-api/internal/domains/orders/domain"
)

var ErrNotFound = errors.New("order not found")

// Store exposes the full ordered sequence of orders for traversal. The
// dataset is loaded once at startup and never mutated, so this is the whole
// contract: no indexing, no writes.
type Store interface {
	All(ctx context.Context) []domain.Order
}
