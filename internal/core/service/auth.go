package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"
	"unicode"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/poseidontrading/refdata-api/internal/core/domain"
	"github.com/poseidontrading/refdata-api/internal/core/ports"
)

const (
	usernameMaxLength = 50
	fullnameMaxLength = 100
	passwordMinLength = 8
)

// AuthService implements registration and login.
type AuthService struct {
	users   ports.UserRepository
	tokens  *TokenIssuer
	limiter ports.LoginLimiter
	logger  zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *TokenIssuer, limiter ports.LoginLimiter, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, limiter: limiter, logger: logger}
}

// Register creates a self-service account. The role is always "User"; the
// role is written in the same insert as the account, so there is no window
// in which a user exists without one.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if err := validateRegistration(input); err != nil {
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
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			s.logger.Warn().Str("username", input.Username).Msg("registration rejected: duplicate user")
		}
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Login verifies the credentials and returns a signed token. Unknown
// usernames and wrong passwords produce the same error so the response does
// not leak which one it was.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		blocked, err := s.limiter.Blocked(ctx, username)
		if err != nil {
			s.logger.Error().Err(err).Msg("login limiter check failed")
		} else if blocked {
			s.logger.Warn().Str("username", username).Msg("login throttled")
			return "", domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Burn a comparison anyway to keep the unknown-user path close
			// in timing to the wrong-password path.
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			s.recordFailure(ctx, username)
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, username)
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	if s.limiter != nil {
		_ = s.limiter.Reset(ctx, username)
	}
	s.logger.Info().Str("username", user.Username).Str("user_id", user.ID).Msg("user logged in")
	return token, nil
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	s.logger.Warn().Str("username", username).Msg("login failed")
	if s.limiter != nil {
		_ = s.limiter.Fail(ctx, username)
	}
}

// dummyHash is a valid bcrypt hash of a random string, compared against when
// the username is unknown.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

func validateRegistration(in ports.RegisterInput) error {
	switch {
	case in.Username == "" || len(in.Username) > usernameMaxLength:
		return fmt.Errorf("%w: username is required and must not exceed %d characters", domain.ErrValidation, usernameMaxLength)
	case in.Fullname == "" || len(in.Fullname) > fullnameMaxLength:
		return fmt.Errorf("%w: fullname is required and must not exceed %d characters", domain.ErrValidation, fullnameMaxLength)
	case in.Email == "":
		return fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	if _, err := mail.ParseAddress(in.Email); err != nil {
		return fmt.Errorf("%w: invalid email address", domain.ErrValidation)
	}

	return validatePassword(in.Password)
}

// validatePassword enforces the registration password policy: at least
// passwordMinLength characters, one uppercase letter and one digit.
func validatePassword(password string) error {
	if len(password) < passwordMinLength {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, passwordMinLength)
	}

	hasUpper := false
	hasDigit := false
	for _, r := range password {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if unicode.IsDigit(r) {
			hasDigit = true
		}
	}
	if !hasUpper || !hasDigit {
		return fmt.Errorf("%w: password must contain at least one uppercase letter and one digit", domain.ErrValidation)
	}
	return nil
}
