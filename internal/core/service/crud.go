package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/poseidontrading/refdata-api/internal/core/ports"
)

// Crud is the one CRUD implementation shared by every reference entity.
// Entity-specific behaviour is injected as two functions: construct builds a
// fresh record from the create payload, merge copies the update payload's
// fields onto an existing record.
type Crud[T any, C any, U any] struct {
	repo      ports.Repository[T]
	construct func(input C, now time.Time) T
	merge     func(existing *T, input U)
	entity    string
	logger    zerolog.Logger
}

func NewCrud[T any, C any, U any](
	repo ports.Repository[T],
	construct func(C, time.Time) T,
	merge func(*T, U),
	entity string,
	logger zerolog.Logger,
) *Crud[T, C, U] {
	return &Crud[T, C, U]{
		repo:      repo,
		construct: construct,
		merge:     merge,
		entity:    entity,
		logger:    logger,
	}
}

func (s *Crud[T, C, U]) GetAll(ctx context.Context) ([]T, error) {
	return s.repo.GetAll(ctx)
}

func (s *Crud[T, C, U]) GetByID(ctx context.Context, id int64) (*T, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Crud[T, C, U]) Create(ctx context.Context, input C) (*T, error) {
	record := s.construct(input, time.Now().UTC())
	if err := s.repo.Add(ctx, &record); err != nil {
		s.logger.Error().Err(err).Str("entity", s.entity).Msg("create failed")
		return nil, err
	}
	s.logger.Info().Str("entity", s.entity).Msg("record created")
	return &record, nil
}

func (s *Crud[T, C, U]) Update(ctx context.Context, id int64, input U) (*T, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.merge(existing, input)
	if err := s.repo.Update(ctx, existing); err != nil {
		s.logger.Error().Err(err).Str("entity", s.entity).Int64("id", id).Msg("update failed")
		return nil, err
	}
	return existing, nil
}

func (s *Crud[T, C, U]) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("entity", s.entity).Int64("id", id).Msg("delete failed")
		return err
	}
	s.logger.Info().Str("entity", s.entity).Int64("id", id).Msg("record deleted")
	return nil
}
