package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/poseidontrading/refdata-api/internal/core/domain"
	"github.com/poseidontrading/refdata-api/internal/core/ports"
)

type stubUserRepo struct {
	byID map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.byID {
		if u.Username == user.Username || u.Email == user.Email {
			return domain.ErrUserExists
		}
	}
	user.ID = uuid.NewString()
	clone := *user
	r.byID[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) GetAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.byID[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *user
	r.byID[user.ID] = &clone
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	return nil
}

// stubLimiter counts failures in memory and blocks after three.
type stubLimiter struct {
	failures map[string]int
}

func newStubLimiter() *stubLimiter { return &stubLimiter{failures: make(map[string]int)} }

func (l *stubLimiter) Blocked(_ context.Context, username string) (bool, error) {
	return l.failures[username] >= 3, nil
}

func (l *stubLimiter) Fail(_ context.Context, username string) error {
	l.failures[username]++
	return nil
}

func (l *stubLimiter) Reset(_ context.Context, username string) error {
	delete(l.failures, username)
	return nil
}

func newTestAuthService(repo ports.UserRepository, limiter ports.LoginLimiter) *AuthService {
	issuer := NewTokenIssuer(testSecret, testIssuer, testAudience, 30*time.Minute)
	return NewAuthService(repo, issuer, limiter, zerolog.Nop())
}

func validRegistration() ports.RegisterInput {
	return ports.RegisterInput{
		Username: "alice",
		Email:    "a@x.com",
		Password: "Abcdef12",
		Fullname: "Alice A",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), nil)

	user, err := svc.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role %q, got %q", domain.RoleUser, user.Role)
	}
	if user.PasswordHash == "" || user.PasswordHash == "Abcdef12" {
		t.Fatalf("password not hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Abcdef12")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_PasswordPolicy(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), nil)

	cases := []struct {
		name     string
		password string
	}{
		{"too short", "Ab1"},
		{"no uppercase", "abcdef12"},
		{"no digit", "Abcdefgh"},
	}
	for _, tc := range cases {
		input := validRegistration()
		input.Password = tc.password
		if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("%s: expected ErrValidation, got %v", tc.name, err)
		}
	}
}

func TestAuthService_Register_MalformedInput(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), nil)

	missingEmail := validRegistration()
	missingEmail.Email = ""
	if _, err := svc.Register(context.Background(), missingEmail); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for missing email, got %v", err)
	}

	badEmail := validRegistration()
	badEmail.Email = "not-an-address"
	if _, err := svc.Register(context.Background(), badEmail); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for malformed email, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, nil)

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if _, err := svc.Register(context.Background(), validRegistration()); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_IssuesTokenWithRoleClaim(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, nil)

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("register: %v", err)
	}

	token, err := svc.Login(context.Background(), "alice", "Abcdef12")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	}, jwt.WithIssuer(testIssuer), jwt.WithAudience(testAudience))
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != domain.RoleUser {
		t.Fatalf("expected role claim %q, got %v", domain.RoleUser, claims["role"])
	}
	if claims["sub"] != "alice" {
		t.Fatalf("expected sub claim alice, got %v", claims["sub"])
	}
}

func TestAuthService_Login_GenericFailure(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, nil)

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Unknown username and wrong password must be indistinguishable.
	if _, err := svc.Login(context.Background(), "nobody", "Abcdef12"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "alice", "WrongPass1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_ThrottledAfterRepeatedFailures(t *testing.T) {
	repo := newStubUserRepo()
	limiter := newStubLimiter()
	svc := newTestAuthService(repo, limiter)

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("register: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := svc.Login(context.Background(), "alice", "WrongPass1"); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i, err)
		}
	}

	if _, err := svc.Login(context.Background(), "alice", "Abcdef12"); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts after repeated failures, got %v", err)
	}
}

func TestAuthService_Login_ResetsLimiterOnSuccess(t *testing.T) {
	repo := newStubUserRepo()
	limiter := newStubLimiter()
	svc := newTestAuthService(repo, limiter)

	if _, err := svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _ = svc.Login(context.Background(), "alice", "WrongPass1")
	_, _ = svc.Login(context.Background(), "alice", "WrongPass1")

	if _, err := svc.Login(context.Background(), "alice", "Abcdef12"); err != nil {
		t.Fatalf("expected successful login before the limit, got %v", err)
	}
	if limiter.failures["alice"] != 0 {
		t.Fatalf("expected limiter reset on success, got %d failures", limiter.failures["alice"])
	}
}

func TestUserService_Update_MergesAndValidatesRole(t *testing.T) {
	repo := newStubUserRepo()
	auth := newTestAuthService(repo, nil)
	users := NewUserService(repo, zerolog.Nop())

	created, err := auth.Register(context.Background(), validRegistration())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	updated, err := users.Update(context.Background(), created.ID, ports.UpdateUserInput{Fullname: "Alice B"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Fullname != "Alice B" || updated.Username != "alice" || updated.Email != "a@x.com" {
		t.Fatalf("partial update clobbered fields: %+v", updated)
	}

	if _, err := users.Update(context.Background(), created.ID, ports.UpdateUserInput{Role: "Superuser"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown role, got %v", err)
	}
}

func TestUserService_Delete_NotFound(t *testing.T) {
	users := NewUserService(newStubUserRepo(), zerolog.Nop())
	if err := users.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
