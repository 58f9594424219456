package memory

import (
	"context"
	"fmt"

	"github.com/salesdata/orders-api/internal/domains/orders/domain"
	"github.com/salesdata/orders-api/internal/domains/orders/ports"
)

var _ ports.Store = (*Store)(nil)

// Store holds the immutable in-memory order collection. It is constructed
// once at startup from a loaded dataset and needs no locking: nothing writes
// to it afterwards, so concurrent readers share the same snapshot.
type Store struct {
	orders []domain.Order
}

// NewStore validates the loaded orders and freezes them into a store.
// Duplicate order identifiers or an invalid record fail construction; a bad
// dataset is a startup-time fatal, never a per-query error.
func NewStore(orders []domain.Order) (*Store, error) {
	seen := make(map[string]struct{}, len(orders))
	frozen := make([]domain.Order, 0, len(orders))
	for i, order := range orders {
		if err := order.Validate(); err != nil {
			return nil, fmt.Errorf("order %d: %w", i, err)
		}
		if _, dup := seen[order.Details.OrderID]; dup {
			return nil, fmt.Errorf("order %d: duplicate order id %q", i, order.Details.OrderID)
		}
		seen[order.Details.OrderID] = struct{}{}
		frozen = append(frozen, order.Clone())
	}
	return &Store{orders: frozen}, nil
}

// All returns a defensive copy of the full order sequence in load order.
func (s *Store) All(_ context.Context) []domain.Order {
	out := make([]domain.Order, 0, len(s.orders))
	for _, order := range s.orders {
		out = append(out, order.Clone())
	}
	return out
}

// Len reports the number of stored orders.
func (s *Store) Len() int {
	return len(s.orders)
}
