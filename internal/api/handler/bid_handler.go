package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/poseidontrading/refdata-api/internal/api/metrics"
	"github.com/poseidontrading/refdata-api/internal/core/domain"
	"github.com/poseidontrading/refdata-api/internal/core/ports"
)

// BidHandler serves CRUD endpoints for bid records.
type BidHandler struct {
	service ports.CrudService[domain.Bid, ports.CreateBidInput, ports.UpdateBidInput]
}

func NewBidHandler(service ports.CrudService[domain.Bid, ports.CreateBidInput, ports.UpdateBidInput]) *BidHandler {
	return &BidHandler{service: service}
}

type createBidRequest struct {
	Account      string   `json:"account"        validate:"required,max=50"`
	BidType      string   `json:"bid_type"       validate:"required,max=50"`
	BidQuantity  *float64 `json:"bid_quantity"   validate:"omitempty,gte=0"`
	AskQuantity  *float64 `json:"ask_quantity"   validate:"omitempty,gte=0"`
	Bid          *float64 `json:"bid"            validate:"omitempty,gte=0"`
	Ask          *float64 `json:"ask"            validate:"omitempty,gte=0"`
	Benchmark    string   `json:"benchmark"      validate:"max=100"`
	Commentary   string   `json:"commentary"     validate:"max=200"`
	Security     string   `json:"security"       validate:"max=100"`
	Status       string   `json:"status"         validate:"max=50"`
	Trader       string   `json:"trader"         validate:"max=50"`
	Book         string   `json:"book"           validate:"max=50"`
	CreationName string   `json:"creation_name"  validate:"max=50"`
	RevisionName string   `json:"revision_name"  validate:"max=50"`
	DealName     string   `json:"deal_name"      validate:"max=50"`
	DealType     string   `json:"deal_type"      validate:"max=50"`
	SourceListID string   `json:"source_list_id" validate:"max=50"`
	Side         string   `json:"side"           validate:"max=50"`
}

type updateBidRequest struct {
	Account     string   `json:"account"      validate:"required,max=50"`
	BidType     string   `json:"bid_type"     validate:"required,max=50"`
	BidQuantity *float64 `json:"bid_quantity" validate:"omitempty,gte=0"`
	AskQuantity *float64 `json:"ask_quantity" validate:"omitempty,gte=0"`
	Bid         *float64 `json:"bid"          validate:"omitempty,gte=0"`
	Ask         *float64 `json:"ask"          validate:"omitempty,gte=0"`
}

// List handles GET /api/bidlist/list.
//
// @Summary      List all bids
// @Tags         bids
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Bid
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/bidlist/list [get]
func (h *BidHandler) List(c echo.Context) error {
	bids, err := h.service.GetAll(c.Request().Context())
	if err != nil {
		return err
	}
	if bids == nil {
		bids = []domain.Bid{}
	}
	return c.JSON(http.StatusOK, bids)
}

// Create handles POST /api/bidlist/add.
//
// @Summary      Create a new bid
// @Tags         bids
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBidRequest  true  "Bid details"
// @Success      201   {object}  domain.Bid
// @Failure      400   {object}  errorResponse
// @Router       /api/bidlist/add [post]
func (h *BidHandler) Create(c echo.Context) error {
	var req createBidRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bid, err := h.service.Create(c.Request().Context(), ports.CreateBidInput{
		Account:      req.Account,
		BidType:      req.BidType,
		BidQuantity:  req.BidQuantity,
		AskQuantity:  req.AskQuantity,
		Bid:          req.Bid,
		Ask:          req.Ask,
		Benchmark:    req.Benchmark,
		Commentary:   req.Commentary,
		Security:     req.Security,
		Status:       req.Status,
		Trader:       req.Trader,
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

	metrics.EntityWritesTotal.WithLabelValues("bid", "create").Inc()
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/bidlist/%d", bid.ID))
	return c.JSON(http.StatusCreated, bid)
}

// Update handles PUT /api/bidlist/update/:id.
//
// @Summary      Update a bid
// @Tags         bids
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int               true  "Bid id"
// @Param        body  body      updateBidRequest  true  "Fields to update"
// @Success      200   {object}  domain.Bid
// @Failure      404   {object}  errorResponse
// @Router       /api/bidlist/update/{id} [put]
func (h *BidHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateBidRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bid, err := h.service.Update(c.Request().Context(), id, ports.UpdateBidInput{
		Account:     req.Account,
		BidType:     req.BidType,
		BidQuantity: req.BidQuantity,
		AskQuantity: req.AskQuantity,
		Bid:         req.Bid,
		Ask:         req.Ask,
	})
	if err != nil {
		return err
	}

	metrics.EntityWritesTotal.WithLabelValues("bid", "update").Inc()
	return c.JSON(http.StatusOK, bid)
}

// Delete handles DELETE /api/bidlist/delete/:id.
//
// @Summary      Delete a bid
// @Tags         bids
// @Security     BearerAuth
// @Param        id  path  int  true  "Bid id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/bidlist/delete/{id} [delete]
func (h *BidHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.EntityWritesTotal.WithLabelValues("bid", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
