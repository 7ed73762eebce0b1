package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/poseidontrading/refdata-api/internal/core/domain"
)

func render(t *testing.T, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/bidlist/list", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(err, c)

	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec.Code, body.Error
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"not found", domain.ErrNotFound, http.StatusNotFound, "not found"},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"user exists", domain.ErrUserExists, http.StatusBadRequest, "user already exists"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid username or password"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{"throttled", domain.ErrTooManyAttempts, http.StatusTooManyRequests, "too many login attempts, try again later"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := render(t, tc.err)
			if code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, code)
			}
			if msg != tc.wantMsg {
				t.Fatalf("expected %q, got %q", tc.wantMsg, msg)
			}
		})
	}
}

func TestHTTPErrorHandler_ValidationCarriesDetail(t *testing.T) {
	err := fmt.Errorf("%w: password must contain an uppercase letter", domain.ErrValidation)
	code, msg := render(t, err)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if msg != err.Error() {
		t.Fatalf("expected %q, got %q", err.Error(), msg)
	}
}

func TestHTTPErrorHandler_EchoErrorsPassThrough(t *testing.T) {
	code, msg := render(t, echo.NewHTTPError(http.StatusUnauthorized, "invalid token"))
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if msg != "invalid token" {
		t.Fatalf("expected %q, got %q", "invalid token", msg)
	}
}

func TestHTTPErrorHandler_UnexpectedErrorIsGeneric(t *testing.T) {
	code, msg := render(t, errors.New("pq: connection refused"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if msg != "an internal server error occurred, please try again later" {
		t.Fatalf("internal detail leaked: %q", msg)
	}
}
