package ports

import (
	"context"

	"github.com/poseidontrading/refdata-api/internal/core/domain"
)

// Repository defines the persistence operations shared by every reference
// entity. Implementations return domain.ErrNotFound for missing rows; any
// other error is a storage failure.
type Repository[T any] interface {
	GetAll(ctx context.Context) ([]T, error)
	// GetByID returns the entity with the given key, or domain.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*T, error)
	// Add persists the entity and fills in the store-assigned identifier.
	Add(ctx context.Context, entity *T) error
	// Update persists the full entity state. The caller is expected to have
	// merged new values into an existing record first. Returns
	// domain.ErrNotFound when the row vanished before commit.
	Update(ctx context.Context, entity *T) error
	// Delete removes the entity. Returns domain.ErrNotFound when the row
	// was already gone.
	Delete(ctx context.Context, id int64) error
}

// UserRepository defines persistence operations for user accounts, which are
// keyed by an opaque string identifier rather than a store-assigned integer.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}
