package ports

import "context"

// CrudService is the use-case surface shared by every reference entity.
// C is the create payload, U the partial update payload.
type CrudService[T any, C any, U any] interface {
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	// Create builds a new record from the payload, stamps its creation
	// date and persists it.
	Create(ctx context.Context, input C) (*T, error)
	// Update loads the record, overwrites only the fields carried by U and
	// persists the result. Creation metadata is preserved.
	Update(ctx context.Context, id int64, input U) (*T, error)
	Delete(ctx context.Context, id int64) error
}
