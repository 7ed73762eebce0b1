package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"github.com/poseidontrading/refdata-api/internal/core/domain"
)

func setupUserMock(t *testing.T) (*UserRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	repo := NewUserRepository(db)
	cleanup := func() { db.Close() }
	return repo, mock, cleanup
}

var userCols = []string{"id", "username", "email", "password_hash", "fullname", "role", "created_at", "updated_at"}

func testUser() *domain.User {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return &domain.User{
		Username:     "alice",
		Email:        "a@x.com",
		PasswordHash: "$2a$10$hash",
		Fullname:     "Alice A",
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestUserRepository_Create_GeneratesID(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	user := testUser()
	mock.ExpectExec(regexp.QuoteMeta(
		`INSERT INTO users (id, username, email, password_hash, fullname, role, created_at, updated_at)`,
	)).WithArgs(sqlmock.AnyArg(), user.Username, user.Email, user.PasswordHash, user.Fullname, user.Role, user.CreatedAt, user.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	user := testUser()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs(sqlmock.AnyArg(), user.Username, user.Email, user.PasswordHash, user.Fullname, user.Role, user.CreatedAt, user.UpdatedAt).
		WillReturnError(&pq.Error{Code: uniqueViolation})

	if err := repo.Create(context.Background(), user); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestUserRepository_FindByUsername(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, username, email, password_hash, fullname, role, created_at, updated_at FROM users WHERE username = $1`,
	)).WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow("u-1", "alice", "a@x.com", "$2a$10$hash", "Alice A", domain.RoleUser, now, now))

	user, err := repo.FindByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "u-1" || user.Role != domain.RoleUser {
		t.Fatalf("unexpected user: %+v", user)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestUserRepository_FindByUsername_NotFound(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users WHERE username = $1`)).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows(userCols))

	if _, err := repo.FindByUsername(context.Background(), "nobody"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestUserRepository_Delete_NotFound(t *testing.T) {
	repo, mock, cleanup := setupUserMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users WHERE id = $1`)).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
