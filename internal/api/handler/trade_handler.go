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

// TradeHandler serves CRUD endpoints for trade records.
type TradeHandler struct {
	service ports.CrudService[domain.Trade, ports.CreateTradeInput, ports.UpdateTradeInput]
}

func NewTradeHandler(service ports.CrudService[domain.Trade, ports.CreateTradeInput, ports.UpdateTradeInput]) *TradeHandler {
	return &TradeHandler{service: service}
}

type createTradeRequest struct {
	Account      string     `json:"account"        validate:"required,max=50"`
	AccountType  string     `json:"account_type"   validate:"required,max=50"`
	BuyQuantity  *float64   `json:"buy_quantity"   validate:"omitempty,gte=0"`
	SellQuantity *float64   `json:"sell_quantity"  validate:"omitempty,gte=0"`
	BuyPrice     *float64   `json:"buy_price"      validate:"omitempty,gte=0"`
	SellPrice    *float64   `json:"sell_price"     validate:"omitempty,gte=0"`
	TradeDate    *time.Time `json:"trade_date"`
	Security     string     `json:"security"       validate:"required,max=100"`
	Status       string     `json:"status"         validate:"required,max=50"`
	Trader       string     `json:"trader"         validate:"max=50"`
	Benchmark    string     `json:"benchmark"      validate:"max=100"`
	Book         string     `json:"book"           validate:"max=50"`
	CreationName string     `json:"creation_name"  validate:"max=50"`
	RevisionName string     `json:"revision_name"  validate:"max=50"`
	DealName     string     `json:"deal_name"      validate:"max=50"`
	DealType     string     `json:"deal_type"      validate:"max=50"`
	SourceListID string     `json:"source_list_id" validate:"max=50"`
	Side         string     `json:"side"           validate:"max=50"`
}

type updateTradeRequest struct {
	Account      string     `json:"account"       validate:"required,max=50"`
	AccountType  string     `json:"account_type"  validate:"required,max=50"`
	BuyQuantity  *float64   `json:"buy_quantity"  validate:"omitempty,gte=0"`
	SellQuantity *float64   `json:"sell_quantity" validate:"omitempty,gte=0"`
	BuyPrice     *float64   `json:"buy_price"     validate:"omitempty,gte=0"`
	SellPrice    *float64   `json:"sell_price"    validate:"omitempty,gte=0"`
	TradeDate    *time.Time `json:"trade_date"`
	Security     string     `json:"security"      validate:"max=100"`
	Status       string     `json:"status"        validate:"max=50"`
}

// List handles GET /api/trade/list.
//
// @Summary      List all trades
// @Tags         trades
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Trade
// @Router       /api/trade/list [get]
func (h *TradeHandler) List(c echo.Context) error {
	trades, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	if trades == nil {
		trades = []domain.Trade{}
	}
	return c.JSON(http.StatusOK, trades)
}

// Create handles POST /api/trade/add.
//
// @Summary      Create a new trade
// @Tags         trades
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTradeRequest  true  "Trade details"
// @Success      201   {object}  domain.Trade
// @Failure      400   {object}  errorResponse
// @Router       /api/trade/add [post]
func (h *TradeHandler) Create(c echo.Context) error {
	var req createTradeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	trade, err := h.service.Create(c.Request().Context(), ports.CreateTradeInput{
		Account:      req.Account,
		AccountType:  req.AccountType,
		BuyQuantity:  req.BuyQuantity,
		SellQuantity: req.SellQuantity,
		BuyPrice:     req.BuyPrice,
		SellPrice:    req.SellPrice,
		TradeDate:    req.TradeDate,
		Security:     req.Security,
		Status:       req.Status,
		Trader:       req.Trader,
		Benchmark:    req.Benchmark,
		Book:         req.Book,
		CreationName: req.CreationName,
		RevisionName: req.RevisionName,
		DealName:     req.DealName,
		DealType:     req.DealType,
		SourceListID: req.SourceListID,
		Side:         req.Side,
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("trade", "create").Inc()
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/trade/%d", trade.ID))
	return c.JSON(http.StatusCreated, trade)
}

// Update handles PUT /api/trade/update/:id.
//
// @Summary      Update a trade
// @Tags         trades
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Trade id"
// @Param        body  body      updateTradeRequest  true  "Fields to update"
// @Success      200   {object}  domain.Trade
// @Failure      404   {object}  errorResponse
// @Router       /api/trade/update/{id} [put]
func (h *TradeHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateTradeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	trade, err := h.service.Update(c.Request().Context(), id, ports.UpdateTradeInput{
		Account:      req.Account,
		AccountType:  req.AccountType,
		BuyQuantity:  req.BuyQuantity,
		SellQuantity: req.SellQuantity,
		BuyPrice:     req.BuyPrice,
		SellPrice:    req.SellPrice,
		TradeDate:    req.TradeDate,
		Security:     req.Security,
		Status:       req.Status,
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("trade", "update").Inc()
	return c.JSON(http.StatusOK, trade)
}

// Delete handles DELETE /api/trade/:id.
//
// @Summary      Delete a trade
// @Tags         trades
// @Security     BearerAuth
// @Param        id  path  int  true  "Trade id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/trade/{id} [delete]
func (h *TradeHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("trade", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
