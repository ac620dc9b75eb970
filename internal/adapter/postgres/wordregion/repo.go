// Package wordregion implements the word_regions link repository using PostgreSQL.
package wordregion

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/vndialect/tudien-backend/internal/adapter/postgres"
	"github.com/vndialect/tudien-backend/internal/domain"
)

const linkColumns = "id, word_id, region_id, usage_strength, created_at"

// Repo provides word-region link persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new word-region repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type linkRow struct {
	ID            uuid.UUID `db:"id"`
	WordID        uuid.UUID `db:"word_id"`
	RegionID      uuid.UUID `db:"region_id"`
	UsageStrength int       `db:"usage_strength"`
	CreatedAt     time.Time `db:"created_at"`
}

const upsertSQL = `INSERT INTO word_regions (word_id, region_id, usage_strength)
VALUES ($1, $2, $3)
ON CONFLICT (word_id, region_id) DO UPDATE SET usage_strength = EXCLUDED.usage_strength
RETURNING ` + linkColumns

// Upsert links a word to a region, replacing the strength of an existing link.
func (r *Repo) Upsert(ctx context.Context, wordID, regionID uuid.UUID, strength int) (*domain.WordRegion, error) {
	var row linkRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, upsertSQL, wordID, regionID, strength)
	if err != nil {
		return nil, postgres.MapError(err, "word_region", regionID)
	}

	wr := toDomain(row)
	return &wr, nil
}

// UpsertBatch links many regions at once in a single round trip.
func (r *Repo) UpsertBatch(ctx context.Context, links []domain.WordRegion) error {
	if len(links) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, l := range links {
		batch.Queue(upsertSQL, l.WordID, l.RegionID, l.UsageStrength)
	}

	br := postgres.QuerierFromCtx(ctx, r.db).SendBatch(ctx, batch)
	defer br.Close()

	for _, l := range links {
		if _, err := br.Exec(); err != nil {
			return postgres.MapError(err, "word_region", l.RegionID)
		}
	}
	return nil
}

// Delete removes the link between a word and a region.
func (r *Repo) Delete(ctx context.Context, wordID, regionID uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`DELETE FROM word_regions WHERE word_id = $1 AND region_id = $2`, wordID, regionID)
	if err != nil {
		return postgres.MapError(err, "word_region", regionID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word_region %s: %w", regionID, domain.ErrNotFound)
	}
	return nil
}

// ListByWordID returns every link of one word.
func (r *Repo) ListByWordID(ctx context.Context, wordID uuid.UUID) ([]domain.WordRegion, error) {
	return r.list(ctx, `SELECT `+linkColumns+` FROM word_regions WHERE word_id = $1 ORDER BY created_at`, wordID)
}

// ListAll returns every link in the system.
func (r *Repo) ListAll(ctx context.Context) ([]domain.WordRegion, error) {
	return r.list(ctx, `SELECT `+linkColumns+` FROM word_regions`)
}

type linkedRegionRow struct {
	ID             uuid.UUID  `db:"id"`
	CountryID      uuid.UUID  `db:"country_id"`
	Name           string     `db:"name"`
	Code           string     `db:"code"`
	Level          string     `db:"level"`
	ParentRegionID *uuid.UUID `db:"parent_region_id"`
	Description    *string    `db:"description"`
	SortOrder      int        `db:"sort_order"`
	CreatedAt      time.Time  `db:"created_at"`
	UsageStrength  int        `db:"usage_strength"`
}

// ListRegionsByWordID returns the regions a word is linked to with the link strength.
func (r *Repo) ListRegionsByWordID(ctx context.Context, wordID uuid.UUID) ([]domain.LinkedRegion, error) {
	var rows []linkedRegionRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT r.id, r.country_id, r.name, r.code, r.level, r.parent_region_id,
		        r.description, r.sort_order, r.created_at, wr.usage_strength
		 FROM word_regions wr
		 JOIN regions r ON r.id = wr.region_id
		 WHERE wr.word_id = $1
		 ORDER BY r.level, r.sort_order, r.name`,
		wordID,
	)
	if err != nil {
		return nil, fmt.Errorf("word_region list regions: %w", err)
	}

	result := make([]domain.LinkedRegion, len(rows))
	for i, row := range rows {
		result[i] = domain.LinkedRegion{
			Region: domain.Region{
				ID:             row.ID,
				CountryID:      row.CountryID,
				Name:           row.Name,
				Code:           row.Code,
				Level:          domain.RegionLevel(row.Level),
				ParentRegionID: row.ParentRegionID,
				Description:    row.Description,
				SortOrder:      row.SortOrder,
				CreatedAt:      row.CreatedAt,
			},
			UsageStrength: row.UsageStrength,
		}
	}
	return result, nil
}

func (r *Repo) list(ctx context.Context, sql string, args ...any) ([]domain.WordRegion, error) {
	var rows []linkRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("word_region list: %w", err)
	}

	result := make([]domain.WordRegion, len(rows))
	for i, row := range rows {
		result[i] = toDomain(row)
	}
	return result, nil
}

func toDomain(row linkRow) domain.WordRegion {
	return domain.WordRegion{
		ID:            row.ID,
		WordID:        row.WordID,
		RegionID:      row.RegionID,
		UsageStrength: row.UsageStrength,
		CreatedAt:     row.CreatedAt,
	}
}
