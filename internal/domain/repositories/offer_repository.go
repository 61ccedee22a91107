package repositories

import (
	"context"

	"github.com/kvasnikov/workorders/internal/domain/entities"
)

// OfferRepository defines the interface for offer data operations
type OfferRepository interface {
	// Create persists a new offer; the id is taken from the record
	Create(ctx context.Context, offer *entities.Offer) error

	// GetByID retrieves an offer by id
	GetByID(ctx context.Context, id int) (*entities.Offer, error)

	// Update replaces the mutable fields of an existing offer
	Update(ctx context.Context, offer *entities.Offer) error

	// Delete removes an offer
	Delete(ctx context.Context, id int) error

	// List retrieves all offers in storage order
	List(ctx context.Context) ([]*entities.Offer, error)
}
