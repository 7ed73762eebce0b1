package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/poseidontrading/refdata-api/internal/api/metrics"
	"github.com/poseidontrading/refdata-api/internal/core/domain"
	"github.com/poseidontrading/refdata-api/internal/core/ports"
)

// RatingHandler serves CRUD endpoints for agency ratings.
type RatingHandler struct {
	service ports.CrudService[domain.Rating, ports.CreateRatingInput, ports.UpdateRatingInput]
}

func NewRatingHandler(service ports.CrudService[domain.Rating, ports.CreateRatingInput, ports.UpdateRatingInput]) *RatingHandler {
	return &RatingHandler{service: service}
}

type createRatingRequest struct {
	MoodysRating string `json:"moodys_rating" validate:"required,max=50"`
	SandPRating  string `json:"sandp_rating"  validate:"required,max=50"`
	FitchRating  string `json:"fitch_rating"  validate:"required,max=50"`
	OrderNumber  *int16 `json:"order_number"  validate:"omitempty,gte=0,lte=255"`
}

type updateRatingRequest struct {
	MoodysRating string `json:"moodys_rating" validate:"max=50"`
	SandPRating  string `json:"sandp_rating"  validate:"max=50"`
	FitchRating  string `json:"fitch_rating"  validate:"max=50"`
	OrderNumber  *int16 `json:"order_number"  validate:"omitempty,gte=0,lte=255"`
}

// List handles GET /api/rating/list.
//
// @Summary      List all ratings
// @Tags         ratings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Rating
// @Router       /api/rating/list [get]
func (h *RatingHandler) List(c echo.Context) error {
	ratings, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	if ratings == nil {
		ratings = []domain.Rating{}
	}
	return c.JSON(http.StatusOK, ratings)
}

// Create handles POST /api/rating/add.
//
// @Summary      Create a new rating
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRatingRequest  true  "Rating details"
// @Success      201   {object}  domain.Rating
// @Failure      400   {object}  errorResponse
// @Router       /api/rating/add [post]
func (h *RatingHandler) Create(c echo.Context) error {
	var req createRatingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rating, err := h.service.Create(c.Request().Context(), ports.CreateRatingInput{
		MoodysRating: req.MoodysRating,
		SandPRating:  req.SandPRating,
		FitchRating:  req.FitchRating,
		OrderNumber:  req.OrderNumber,
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("rating", "create").Inc()
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/rating/%d", rating.ID))
	return c.JSON(http.StatusCreated, rating)
}

// Update handles PUT /api/rating/update/:id.
//
// @Summary      Update a rating
// @Tags         ratings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int            true  "Rating id"
// @Param        body  body      updateRatingRequest  true  "Fields to update"
// @Success      200   {object}  domain.Rating
// @Failure      404   {object}  errorResponse
// @Router       /api/rating/update/{id} [put]
func (h *RatingHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateRatingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rating, err := h.service.Update(c.Request().Context(), id, ports.UpdateRatingInput{
		MoodysRating: req.MoodysRating,
		SandPRating:  req.SandPRating,
		FitchRating:  req.FitchRating,
		OrderNumber:  req.OrderNumber,
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("rating", "update").Inc()
	return c.JSON(http.StatusOK, rating)
}

// Delete handles DELETE /api/rating/:id. Restricted to administrators at
// the routing layer.
//
// @Summary      Delete a rating
// @Tags         ratings
// @Security     BearerAuth
// @Param        id  path  int  true  "Rating id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/rating/{id} [delete]
func (h *RatingHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("rating", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
