// Package region exposes the read side of the region hierarchy.
package region

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vndialect/tudien-backend/internal/domain"
)

type regionRepo interface {
	List(ctx context.Context, level *domain.RegionLevel) ([]domain.Region, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Region, error)
}

type expander interface {
	ExpandToProvinces(ctx context.Context, regionID uuid.UUID) ([]string, error)
}

// Service provides region lookups.
type Service struct {
	regions  regionRepo
	expander expander
	log      *slog.Logger
}

// NewService creates a new region service.
func NewService(log *slog.Logger, regions regionRepo, expander expander) *Service {
	return &Service{
		regions:  regions,
		expander: expander,
		log:      log.With("service", "region"),
	}
}

// List returns regions ordered by level, sort order and name, optionally
// restricted to one level.
func (s *Service) List(ctx context.Context, level *domain.RegionLevel) ([]domain.Region, error) {
	if level != nil && !level.IsValid() {
		return nil, domain.NewValidationError("level", "must be broad, subregion or province")
	}

	regions, err := s.regions.List(ctx, level)
	if err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}
	return regions, nil
}

// Get returns a region by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Region, error) {
	return s.regions.GetByID(ctx, id)
}

// Provinces returns the province codes a region covers. Unknown regions
// cover nothing.
func (s *Service) Provinces(ctx context.Context, id uuid.UUID) ([]string, error) {
	return s.expander.ExpandToProvinces(ctx, id)
}
