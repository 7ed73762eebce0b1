package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// AuthConfig carries the token verification parameters. Tokens signed with a
// different key, issuer or audience are rejected as unauthenticated.
type AuthConfig struct {
	Secret   string
	Issuer   string
	Audience string
}

// Auth validates the bearer JWT and injects its claims into the request
// context. Missing header, malformed token, bad signature, wrong
// issuer/audience and expired tokens all yield 401.
func Auth(cfg AuthConfig) echo.MiddlewareFunc {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(cfg.Secret), nil
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, keyFunc,
				jwt.WithIssuer(cfg.Issuer),
				jwt.WithAudience(cfg.Audience),
				jwt.WithExpirationRequired(),
			)
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			username, _ := claims["sub"].(string)
			userID, _ := claims["uid"].(string)
			role, _ := claims["role"].(string)
			c.Set("username", username)
			c.Set("user_id", userID)
			c.Set("role", role)

			return next(c)
		}
	}
}
