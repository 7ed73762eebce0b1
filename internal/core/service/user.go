package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/poseidontrading/refdata-api/internal/core/domain"
	"github.com/poseidontrading/refdata-api/internal/core/ports"
)

// UserService manages accounts on behalf of administrators. Unlike
// self-service registration, creation here may assign any recognised role.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) GetAll(ctx context.Context) ([]domain.User, error) {
	return s.users.GetAll(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if !domain.ValidRole(input.Role) {
		return nil, fmt.Errorf("%w: role must be one of Admin, User", domain.ErrValidation)
	}
	if err := validateRegistration(ports.RegisterInput{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		Fullname: input.Fullname,
	}); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Fullname:     input.Fullname,
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Str("role", user.Role).Msg("user created by admin")
	return user, nil
}

// Update overwrites only the fields the payload carries; empty fields leave
// the stored value untouched. A non-empty role must be recognised.
func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Username != "" {
		user.Username = input.Username
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Fullname != "" {
		user.Fullname = input.Fullname
	}
	if input.Role != "" {
		if !domain.ValidRole(input.Role) {
			return nil, fmt.Errorf("%w: role must be one of Admin, User", domain.ErrValidation)
		}
		user.Role = input.Role
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
