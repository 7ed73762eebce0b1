package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/poseidontrading/refdata-api/internal/api/metrics"
	"github.com/poseidontrading/refdata-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, auth middleware).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code == http.StatusUnauthorized {
			metrics.AuthRejectionsTotal.WithLabelValues("unauthenticated").Inc()
		}
		audit(log, c, he.Code, fmt.Sprintf("%v", he.Message))
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to deterministic HTTP codes.
	code := 0
	msg := ""
	switch {
	case errors.Is(err, domain.ErrNotFound):
		code, msg = http.StatusNotFound, "not found"
	case errors.Is(err, domain.ErrUserNotFound):
		code, msg = http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrValidation):
		code, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUserExists):
		code, msg = http.StatusBadRequest, "user already exists"
	case errors.Is(err, domain.ErrInvalidCredentials):
		code, msg = http.StatusUnauthorized, "invalid username or password"
	case errors.Is(err, domain.ErrForbidden):
		code, msg = http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrTooManyAttempts):
		code, msg = http.StatusTooManyRequests, "too many login attempts, try again later"
	}
	if code != 0 {
		audit(log, c, code, msg)
		return code, msg
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "an internal server error occurred, please try again later"
}

// audit records 4xx outcomes at warn severity with the route and caller so
// rejected requests leave a trace.
func audit(log zerolog.Logger, c echo.Context, code int, msg string) {
	username, _ := c.Get("username").(string)
	log.Warn().
		Int("status", code).
		Str("method", c.Request().Method).
		Str("path", c.Request().URL.Path).
		Str("username", username).
		Msg(msg)
}
