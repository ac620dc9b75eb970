// Package wordofday implements the word-of-the-day repository using PostgreSQL.
package wordofday

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/vndialect/tudien-backend/internal/adapter/postgres"
	"github.com/vndialect/tudien-backend/internal/domain"
)

const columns = "id, word_id, date, view_count, created_at"

// Repo provides word-of-the-day persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new word-of-the-day repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	WordID    uuid.UUID `db:"word_id"`
	Date      time.Time `db:"date"`
	ViewCount int       `db:"view_count"`
	CreatedAt time.Time `db:"created_at"`
}

// GetByDate returns the entry for the calendar date of day.
func (r *Repo) GetByDate(ctx context.Context, day time.Time) (*domain.WordOfTheDay, error) {
	day = domain.TruncateToDate(day)

	var rw row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw,
		`SELECT `+columns+` FROM word_of_the_day WHERE date = $1`, day)
	if err != nil {
		return nil, postgres.MapError(err, "word_of_the_day", day.Format(time.DateOnly))
	}

	return toDomain(rw), nil
}

// Create pins wordID to the calendar date of day.
// Returns ErrAlreadyExists when the date already has an entry.
func (r *Repo) Create(ctx context.Context, wordID uuid.UUID, day time.Time) (*domain.WordOfTheDay, error) {
	day = domain.TruncateToDate(day)

	var rw row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw,
		`INSERT INTO word_of_the_day (word_id, date) VALUES ($1, $2) RETURNING `+columns,
		wordID, day)
	if err != nil {
		return nil, postgres.MapError(err, "word_of_the_day", day.Format(time.DateOnly))
	}

	return toDomain(rw), nil
}

// IncrementViews bumps the view counter and returns its value before the bump.
func (r *Repo) IncrementViews(ctx context.Context, id uuid.UUID) (int, error) {
	var previous int
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`UPDATE word_of_the_day SET view_count = view_count + 1 WHERE id = $1 RETURNING view_count - 1`,
		id,
	).Scan(&previous)
	if err != nil {
		return 0, postgres.MapError(err, "word_of_the_day", id)
	}
	return previous, nil
}

func toDomain(rw row) *domain.WordOfTheDay {
	return &domain.WordOfTheDay{
		ID:        rw.ID,
		WordID:    rw.WordID,
		Date:      rw.Date,
		ViewCount: rw.ViewCount,
		CreatedAt: rw.CreatedAt,
	}
}
