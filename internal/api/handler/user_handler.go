package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/poseidontrading/refdata-api/internal/api/metrics"
	"github.com/poseidontrading/refdata-api/internal/core/domain"
	"github.com/poseidontrading/refdata-api/internal/core/ports"
)

// UserHandler serves the account-management endpoints. List, add and delete
// are Admin-only (enforced by the router); update additionally allows a
// regular user acting on their own account.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Fullname string `json:"fullname" validate:"required,max=100"`
	Role     string `json:"role"     validate:"required,oneof=Admin User"`
}

type updateUserRequest struct {
	Username string `json:"username" validate:"omitempty,max=50"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Fullname string `json:"fullname" validate:"omitempty,max=100"`
	Role     string `json:"role"     validate:"omitempty,oneof=Admin User"`
}

// userResponse is the wire shape for user records; it never carries the
// password hash.
type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Fullname string `json:"fullname"`
	Role     string `json:"role"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Fullname: u.Fullname,
		Role:     u.Role,
	}
}

// List handles GET /api/user/list.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/user/list [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Create handles POST /api/user/add.
//
// @Summary      Create a user with an explicit role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/user/add [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Fullname: req.Fullname,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("user", "create").Inc()
	c.Response().Header().Set(echo.HeaderLocation, "/api/user/"+user.ID)
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Update handles PUT /api/user/update/:id. Admins may update any account; a
// regular user may only update their own, and may not change their role.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  userResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/user/update/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	_, callerID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	targetID := c.Param("id")
	if role != domain.RoleAdmin && callerID != targetID {
		return domain.ErrForbidden
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Only Admins may change roles, including their own.
	if req.Role != "" && role != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	user, err := h.service.Update(c.Request().Context(), targetID, ports.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Fullname: req.Fullname,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("user", "update").Inc()
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Delete handles DELETE /api/user/:id.
//
// @Summary      Delete a user
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/user/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("user", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
