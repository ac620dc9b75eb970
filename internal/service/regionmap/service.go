// Package regionmap turns word-region links into per-province usage maps by
// expanding broad regions and subregions down to their provinces.
package regionmap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vndialect/tudien-backend/internal/domain"
)

type regionRepo interface {
	ListAll(ctx context.Context) ([]domain.Region, error)
}

type linkRepo interface {
	ListByWordID(ctx context.Context, wordID uuid.UUID) ([]domain.WordRegion, error)
	ListAll(ctx context.Context) ([]domain.WordRegion, error)
}

// mapCache stores the all-words map between link changes. Optional.
// SetAllWords must not store entries once the generation moved past gen.
type mapCache interface {
	GetAllWords(ctx context.Context) ([]domain.MapEntry, bool, error)
	Generation(ctx context.Context) (int64, error)
	SetAllWords(ctx context.Context, gen int64, entries []domain.MapEntry) (bool, error)
	Invalidate(ctx context.Context) error
}

// Service computes province-level usage maps.
type Service struct {
	regions regionRepo
	links   linkRepo
	cache   mapCache
	log     *slog.Logger
}

// NewService creates a region map service. cache may be nil.
func NewService(log *slog.Logger, regions regionRepo, links linkRepo, cache mapCache) *Service {
	return &Service{
		regions: regions,
		links:   links,
		cache:   cache,
		log:     log.With("service", "regionmap"),
	}
}

// Hierarchy loads the region tree. Every call reads storage again and returns
// an independent index.
func (s *Service) Hierarchy(ctx context.Context) (*Hierarchy, error) {
	regions, err := s.regions.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}
	return NewHierarchy(regions), nil
}

// ExpandToProvinces returns the province codes covered by a region.
// An unknown region yields an empty result, not an error.
func (s *Service) ExpandToProvinces(ctx context.Context, regionID uuid.UUID) ([]string, error) {
	h, err := s.Hierarchy(ctx)
	if err != nil {
		return nil, err
	}
	codes := h.ExpandToProvinces(regionID)
	if codes == nil {
		codes = []string{}
	}
	return codes, nil
}

// WordRegionMapData returns the usage map of a single word. Every link is
// expanded to its provinces; when links at different levels cover the same
// province (say the word is linked to both a broad region and one of its
// provinces), the province appears once with the maximum strength, never a
// sum. Entries are ordered by province code.
func (s *Service) WordRegionMapData(ctx context.Context, wordID uuid.UUID) ([]domain.MapEntry, error) {
	links, err := s.links.ListByWordID(ctx, wordID)
	if err != nil {
		return nil, fmt.Errorf("list word links: %w", err)
	}
	if len(links) == 0 {
		return []domain.MapEntry{}, nil
	}

	h, err := s.Hierarchy(ctx)
	if err != nil {
		return nil, err
	}
	return Aggregate(h, links), nil
}

// AllWordsRegionMapData returns the combined usage map of every word, where
// the strongest link wins per province.
//
// A computed map is cached only if no Invalidate ran while it was being
// built, so a slow reader cannot overwrite the cache with pre-write data.
func (s *Service) AllWordsRegionMapData(ctx context.Context) ([]domain.MapEntry, error) {
	cacheable := false
	var gen int64
	if s.cache != nil {
		entries, ok, err := s.cache.GetAllWords(ctx)
		if err != nil {
			s.log.WarnContext(ctx, "map cache read failed", slog.String("error", err.Error()))
		} else if ok {
			return entries, nil
		}

		gen, err = s.cache.Generation(ctx)
		if err != nil {
			s.log.WarnContext(ctx, "map cache generation read failed", slog.String("error", err.Error()))
		} else {
			cacheable = true
		}
	}

	links, err := s.links.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}

	h, err := s.Hierarchy(ctx)
	if err != nil {
		return nil, err
	}
	entries := Aggregate(h, links)

	if cacheable {
		stored, err := s.cache.SetAllWords(ctx, gen, entries)
		switch {
		case err != nil:
			s.log.WarnContext(ctx, "map cache write failed", slog.String("error", err.Error()))
		case !stored:
			s.log.DebugContext(ctx, "map cache write skipped, links changed during load")
		}
	}
	return entries, nil
}

// Invalidate drops the cached all-words map. Called after link changes.
func (s *Service) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.WarnContext(ctx, "map cache invalidate failed", slog.String("error", err.Error()))
	}
}
