package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/poseidontrading/refdata-api/internal/api/metrics"
	"github.com/poseidontrading/refdata-api/internal/core/domain"
	"github.com/poseidontrading/refdata-api/internal/core/ports"
)

// RuleNameHandler serves CRUD endpoints for rule definitions.
type RuleNameHandler struct {
	service ports.CrudService[domain.RuleName, ports.CreateRuleNameInput, ports.UpdateRuleNameInput]
}

func NewRuleNameHandler(service ports.CrudService[domain.RuleName, ports.CreateRuleNameInput, ports.UpdateRuleNameInput]) *RuleNameHandler {
	return &RuleNameHandler{service: service}
}

type createRuleNameRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"max=250"`
	JSON        string `json:"json"        validate:"required,max=500"`
	Template    string `json:"template"    validate:"required,max=250"`
	SQLStr      string `json:"sql_str"     validate:"required,max=500"`
	SQLPart     string `json:"sql_part"    validate:"max=500"`
}

type updateRuleNameRequest struct {
	Name        string `json:"name"        validate:"max=100"`
	Description string `json:"description" validate:"max=250"`
	JSON        string `json:"json"        validate:"max=500"`
	Template    string `json:"template"    validate:"max=250"`
	SQLStr      string `json:"sql_str"     validate:"max=500"`
	SQLPart     string `json:"sql_part"    validate:"max=500"`
}

// List handles GET /api/rulename/list.
//
// @Summary      List all rules
// @Tags         rules
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.RuleName
// @Router       /api/rulename/list [get]
func (h *RuleNameHandler) List(c echo.Context) error {
	rules, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	if rules == nil {
		rules = []domain.RuleName{}
	}
	return c.JSON(http.StatusOK, rules)
}

// Create handles POST /api/rulename/add.
//
// @Summary      Create a new rule
// @Tags         rules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRuleNameRequest  true  "Rule details"
// @Success      201   {object}  domain.RuleName
// @Failure      400   {object}  errorResponse
// @Router       /api/rulename/add [post]
func (h *RuleNameHandler) Create(c echo.Context) error {
	var req createRuleNameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rule, err := h.service.Create(c.Request().Context(), ports.CreateRuleNameInput{
		Name:        req.Name,
		Description: req.Description,
		JSON:        req.JSON,
		Template:    req.Template,
		SQLStr:      req.SQLStr,
		SQLPart:     req.SQLPart,
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("rule_name", "create").Inc()
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/rulename/%d", rule.ID))
	return c.JSON(http.StatusCreated, rule)
}

// Update handles PUT /api/rulename/update/:id.
//
// @Summary      Update a rule
// @Tags         rules
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true  "Rule id"
// @Param        body  body      updateRuleNameRequest  true  "Fields to update"
// @Success      200   {object}  domain.RuleName
// @Failure      404   {object}  errorResponse
// @Router       /api/rulename/update/{id} [put]
func (h *RuleNameHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateRuleNameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rule, err := h.service.Update(c.Request().Context(), id, ports.UpdateRuleNameInput{
		Name:        req.Name,
		Description: req.Description,
		JSON:        req.JSON,
		Template:    req.Template,
		SQLStr:      req.SQLStr,
		SQLPart:     req.SQLPart,
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("rule_name", "update").Inc()
	return c.JSON(http.StatusOK, rule)
}

// Delete handles DELETE /api/rulename/:id.
//
// @Summary      Delete a rule
// @Tags         rules
// @Security     BearerAuth
// @Param        id  path  int  true  "Rule id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/rulename/{id} [delete]
func (h *RuleNameHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("rule_name", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
