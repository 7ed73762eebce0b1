package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/poseidontrading/refdata-api/internal/api/metrics"
	"github.com/poseidontrading/refdata-api/internal/core/domain"
	"github.com/poseidontrading/refdata-api/internal/core/ports"
)

// CurvePointHandler serves CRUD endpoints for curve points.
type CurvePointHandler struct {
	service ports.CrudService[domain.CurvePoint, ports.CreateCurvePointInput, ports.UpdateCurvePointInput]
}

func NewCurvePointHandler(service ports.CrudService[domain.CurvePoint, ports.CreateCurvePointInput, ports.UpdateCurvePointInput]) *CurvePointHandler {
	return &CurvePointHandler{service: service}
}

// createCurvePointRequest uses pointers for the numeric fields so "absent"
// and "zero" stay distinguishable: every field must be present on create.
type createCurvePointRequest struct {
	CurveID  *int16    `json:"curve_id"   validate:"required,gte=0,lte=255"`
	AsOfDate time.Time `json:"as_of_date" validate:"required"`
	Term     *float64  `json:"term"       validate:"required,gte=0"`
	Value    *float64  `json:"value"      validate:"required,gte=0"`
}

type updateCurvePointRequest struct {
	CurveID  int16     `json:"curve_id"   validate:"gte=0,lte=255"`
	AsOfDate time.Time `json:"as_of_date" validate:"required"`
	Term     float64   `json:"term"       validate:"gte=0"`
	Value    float64   `json:"value"      validate:"gte=0"`
}

// List handles GET /api/curvepoint/list.
//
// @Summary      List all curve points
// @Tags         curvepoints
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.CurvePoint
// @Router       /api/curvepoint/list [get]
func (h *CurvePointHandler) List(c echo.Context) error {
	points, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	if points == nil {
		points = []domain.CurvePoint{}
	}
	return c.JSON(http.StatusOK, points)
}

// Create handles POST /api/curvepoint/add.
//
// @Summary      Create a new curve point
// @Tags         curvepoints
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCurvePointRequest  true  "Curve point details"
// @Success      201   {object}  domain.CurvePoint
// @Failure      400   {object}  errorResponse
// @Router       /api/curvepoint/add [post]
func (h *CurvePointHandler) Create(c echo.Context) error {
	var req createCurvePointRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	point, err := h.service.Create(c.Request().Context(), ports.CreateCurvePointInput{
		CurveID:  *req.CurveID,
		AsOfDate: req.AsOfDate,
		Term:     *req.Term,
		Value:    *req.Value,
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("curve_point", "create").Inc()
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/curvepoint/%d", point.ID))
	return c.JSON(http.StatusCreated, point)
}

// Update handles PUT /api/curvepoint/update/:id.
//
// @Summary      Update a curve point
// @Tags         curvepoints
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Curve point id"
// @Param        body  body      updateCurvePointRequest  true  "Fields to update"
// @Success      200   {object}  domain.CurvePoint
// @Failure      404   {object}  errorResponse
// @Router       /api/curvepoint/update/{id} [put]
func (h *CurvePointHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateCurvePointRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	point, err := h.service.Update(c.Request().Context(), id, ports.UpdateCurvePointInput{
		CurveID:  req.CurveID,
		AsOfDate: req.AsOfDate,
		Term:     req.Term,
		Value:    req.Value,
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("curve_point", "update").Inc()
	return c.JSON(http.StatusOK, point)
}

// Delete handles DELETE /api/curvepoint/:id.
//
// @Summary      Delete a curve point
// @Tags         curvepoints
// @Security     BearerAuth
// @Param        id  path  int  true  "Curve point id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/curvepoint/{id} [delete]
func (h *CurvePointHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("curve_point", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
