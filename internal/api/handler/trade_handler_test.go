package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/poseidontrading/refdata-api/internal/core/domain"
	"github.com/poseidontrading/refdata-api/internal/core/ports"
)

type stubTradeService struct {
	createFn func(ctx context.Context, input ports.CreateTradeInput) (*domain.Trade, error)
}

func (s *stubTradeService) GetAll(ctx context.Context) ([]domain.Trade, error) {
	return nil, nil
}

func (s *stubTradeService) GetByID(ctx context.Context, id int64) (*domain.Trade, error) {
	return nil, domain.ErrNotFound
}

func (s *stubTradeService) Create(ctx context.Context, input ports.CreateTradeInput) (*domain.Trade, error) {
	return s.createFn(ctx, input)
}

func (s *stubTradeService) Update(ctx context.Context, id int64, input ports.UpdateTradeInput) (*domain.Trade, error) {
	return nil, domain.ErrNotFound
}

func (s *stubTradeService) Delete(ctx context.Context, id int64) error {
	return domain.ErrNotFound
}

func TestTradeHandler_Create_Success(t *testing.T) {
	stub := &stubTradeService{
		createFn: func(ctx context.Context, input ports.CreateTradeInput) (*domain.Trade, error) {
			if input.Account != "acc-1" || input.Security != "GOVT-10Y" || input.Status != "open" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Trade{ID: 8, Account: input.Account}, nil
		},
	}
	h := NewTradeHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/trade/add",
		`{"account":"acc-1","account_type":"margin","security":"GOVT-10Y","status":"open"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestTradeHandler_Create_EmptyBodyRejected(t *testing.T) {
	stub := &stubTradeService{
		createFn: func(ctx context.Context, input ports.CreateTradeInput) (*domain.Trade, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewTradeHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/trade/add", `{}`)

	if code := httpStatus(t, h.Create(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestTradeHandler_Create_MissingSecurityRejected(t *testing.T) {
	stub := &stubTradeService{
		createFn: func(ctx context.Context, input ports.CreateTradeInput) (*domain.Trade, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewTradeHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/trade/add",
		`{"account":"acc-1","account_type":"margin","status":"open"}`)

	if code := httpStatus(t, h.Create(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}
