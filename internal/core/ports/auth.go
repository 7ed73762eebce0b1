package ports

import (
	"context"

	"github.com/poseidontrading/refdata-api/internal/core/domain"
)

// RegisterInput carries the self-service registration payload. Password is
// plaintext in transit only; it is hashed before anything is persisted.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Fullname string
}

// AuthService implements registration and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies the credentials and returns a signed bearer token.
	Login(ctx context.Context, username, password string) (string, error)
}

// LoginLimiter throttles repeated failed logins per username. A nil-safe
// no-op implementation is acceptable when throttling is disabled.
type LoginLimiter interface {
	// Blocked reports whether the username has exhausted its attempts.
	Blocked(ctx context.Context, username string) (bool, error)
	// Fail records one failed attempt.
	Fail(ctx context.Context, username string) error
	// Reset clears the counter after a successful login.
	Reset(ctx context.Context, username string) error
}

// CreateUserInput carries the admin-facing user creation payload.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Fullname string
	Role     string
}

// UpdateUserInput carries the partial user update payload. Empty fields are
// left untouched; Role may only be changed by an Admin caller.
type UpdateUserInput struct {
	Username string
	Email    string
	Fullname string
	Role     string
}

// UserService manages user accounts on behalf of administrators.
type UserService interface {
	GetAll(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
