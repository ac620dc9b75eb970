package word

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vndialect/tudien-backend/internal/domain"
)

// ListResult is one page of words.
type ListResult struct {
	Words  []domain.Word
	Total  int
	Limit  int
	Offset int
}

// Search finds words containing q, ignoring case and diacritics.
func (s *Service) Search(ctx context.Context, q string) ([]domain.Word, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, domain.NewValidationError("q", "search query is required")
	}

	words, err := s.words.Search(ctx, q, s.cfg.SearchLimit)
	if err != nil {
		return nil, fmt.Errorf("search words: %w", err)
	}
	return words, nil
}

// GetByID returns a word by id.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	return s.words.GetByID(ctx, id)
}

// GetByContent returns a word by its exact content.
func (s *Service) GetByContent(ctx context.Context, content string) (*domain.Word, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.NewValidationError("content", "required")
	}
	return s.words.GetByContent(ctx, content)
}

// List returns a page of words, newest first.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.DefaultPageSize
	}
	limit = min(limit, s.cfg.MaxPageSize)

	filter := domain.WordFilter{Dialect: input.Dialect, Limit: limit, Offset: input.Offset}

	words, err := s.words.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	total, err := s.words.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count words: %w", err)
	}

	return &ListResult{Words: words, Total: total, Limit: limit, Offset: input.Offset}, nil
}

// Regions returns the regions a word is linked to.
func (s *Service) Regions(ctx context.Context, wordID uuid.UUID) ([]domain.LinkedRegion, error) {
	if _, err := s.words.GetByID(ctx, wordID); err != nil {
		return nil, err
	}

	regions, err := s.links.ListRegionsByWordID(ctx, wordID)
	if err != nil {
		return nil, fmt.Errorf("list word regions: %w", err)
	}
	return regions, nil
}

// Map returns the per-province usage map of a word.
func (s *Service) Map(ctx context.Context, wordID uuid.UUID) ([]domain.MapEntry, error) {
	if _, err := s.words.GetByID(ctx, wordID); err != nil {
		return nil, err
	}
	return s.maps.WordRegionMapData(ctx, wordID)
}
