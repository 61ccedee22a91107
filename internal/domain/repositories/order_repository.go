package repositories

import (
	"context"

	"github.com/kvasnikov/workorders/internal/domain/entities"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	// Create persists a new order; the id is taken from the record
	Create(ctx context.Context, order *entities.Order) error

	// GetByID retrieves an order by id
	GetByID(ctx context.Context, id int) (*entities.Order, error)

	// Update replaces the mutable fields of an existing order
	Update(ctx context.Context, order *entities.Order) error

	// Delete removes an order; dependent offers are left untouched
	Delete(ctx context.Context, id int) error

	// List retrieves all orders in storage order
	List(ctx context.Context) ([]*entities.Order, error)
}
