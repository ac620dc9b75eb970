// Package wordofday picks and serves one word per calendar day.
package wordofday

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vndialect/tudien-backend/internal/domain"
)

type entryRepo interface {
	GetByDate(ctx context.Context, day time.Time) (*domain.WordOfTheDay, error)
	Create(ctx context.Context, wordID uuid.UUID, day time.Time) (*domain.WordOfTheDay, error)
	IncrementViews(ctx context.Context, id uuid.UUID) (int, error)
}

type wordRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	RandomID(ctx context.Context) (uuid.UUID, error)
}

// Service serves the word of the day.
type Service struct {
	entries entryRepo
	words   wordRepo
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new word-of-the-day service.
func NewService(log *slog.Logger, entries entryRepo, words wordRepo) *Service {
	return &Service{
		entries: entries,
		words:   words,
		log:     log.With("service", "wordofday"),
		now:     time.Now,
	}
}

// Result is today's word with the number of views before this one.
type Result struct {
	Word      domain.Word
	Date      time.Time
	ViewCount int
}

// Today returns the word pinned to the current UTC date, picking a random
// word when the date has none yet. Returns ErrNotFound when the dictionary
// is empty.
func (s *Service) Today(ctx context.Context) (*Result, error) {
	day := domain.TruncateToDate(s.now())

	// 1. Existing entry for today.
	entry, err := s.entries.GetByDate(ctx, day)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get word of the day: %w", err)
	}

	// 2. None yet: pick one. A concurrent request may win the insert.
	if entry == nil {
		entry, err = s.pick(ctx, day)
		if err != nil {
			return nil, err
		}
	}

	// 3. Count the view.
	views, err := s.entries.IncrementViews(ctx, entry.ID)
	if err != nil {
		return nil, fmt.Errorf("increment views: %w", err)
	}

	word, err := s.words.GetByID(ctx, entry.WordID)
	if err != nil {
		return nil, fmt.Errorf("get word %s: %w", entry.WordID, err)
	}

	return &Result{Word: *word, Date: entry.Date, ViewCount: views}, nil
}

func (s *Service) pick(ctx context.Context, day time.Time) (*domain.WordOfTheDay, error) {
	wordID, err := s.words.RandomID(ctx)
	if err != nil {
		return nil, fmt.Errorf("pick random word: %w", err)
	}

	entry, err := s.entries.Create(ctx, wordID, day)
	if errors.Is(err, domain.ErrAlreadyExists) {
		entry, err = s.entries.GetByDate(ctx, day)
	}
	if err != nil {
		return nil, fmt.Errorf("create word of the day: %w", err)
	}

	if entry.WordID == wordID {
		s.log.InfoContext(ctx, "word of the day picked",
			slog.String("date", day.Format(time.DateOnly)),
			slog.String("word_id", wordID.String()),
		)
	}
	return entry, nil
}
