package repositories

import (
	"context"

	"github.com/kvasnikov/workorders/internal/domain/entities"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// Create persists a new user; the id is taken from the record
	Create(ctx context.Context, user *entities.User) error

	// GetByID retrieves a user by id
	GetByID(ctx context.Context, id int) (*entities.User, error)

	// ListByIDs retrieves the users whose ids appear in ids; missing ids
	// are simply absent from the result, never an error
	ListByIDs(ctx context.Context, ids []int) ([]*entities.User, error)

	// Update replaces the mutable fields of an existing user
	Update(ctx context.Context, user *entities.User) error

	// Delete removes a user
	Delete(ctx context.Context, id int) error

	// List retrieves all users in storage order
	List(ctx context.Context) ([]*entities.User, error)
}
