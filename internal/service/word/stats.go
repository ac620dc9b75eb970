package word

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vndialect/tudien-backend/internal/domain"
)

// StatsResult is the dictionary-wide usage map with summary counters.
type StatsResult struct {
	MapData []domain.MapEntry
	Stats   domain.WordStats
}

// Stats returns the all-words usage map and totals. The word count and the
// map are loaded concurrently.
func (s *Service) Stats(ctx context.Context) (*StatsResult, error) {
	var (
		total   int
		mapData []domain.MapEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.words.Count(gctx, domain.WordFilter{})
		if err != nil {
			return fmt.Errorf("count words: %w", err)
		}
		total = n
		return nil
	})
	g.Go(func() error {
		entries, err := s.maps.AllWordsRegionMapData(gctx)
		if err != nil {
			return fmt.Errorf("all words map: %w", err)
		}
		mapData = entries
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &StatsResult{
		MapData: mapData,
		Stats: domain.WordStats{
			TotalWords:            total,
			TotalRegionsWithWords: len(mapData),
		},
	}, nil
}
