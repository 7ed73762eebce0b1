package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// ctxIdentity extracts the claims injected by the Auth middleware. An empty
// role means the middleware did not run; fail closed with 401.
func ctxIdentity(c echo.Context) (username, userID, role string, err error) {
	role, _ = c.Get("role").(string)
	if role == "" {
		return "", "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	username, _ = c.Get("username").(string)
	userID, _ = c.Get("user_id").(string)
	return username, userID, role, nil
}

// pathID parses the :id route parameter as the entity's integer key.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
