// Package region implements the country and region repositories using PostgreSQL.
package region

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/vndialect/tudien-backend/internal/adapter/postgres"
	"github.com/vndialect/tudien-backend/internal/domain"
)

const regionColumns = "id, country_id, name, code, level, parent_region_id, description, sort_order, created_at"

// Repo provides region and country persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new region repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type regionRow struct {
	ID             uuid.UUID  `db:"id"`
	CountryID      uuid.UUID  `db:"country_id"`
	Name           string     `db:"name"`
	Code           string     `db:"code"`
	Level          string     `db:"level"`
	ParentRegionID *uuid.UUID `db:"parent_region_id"`
	Description    *string    `db:"description"`
	SortOrder      int        `db:"sort_order"`
	CreatedAt      time.Time  `db:"created_at"`
}

// ---------------------------------------------------------------------------
// Regions
// ---------------------------------------------------------------------------

// ListAll returns every region. The hierarchy expander indexes this set in memory.
func (r *Repo) ListAll(ctx context.Context) ([]domain.Region, error) {
	return r.List(ctx, nil)
}

// List returns regions ordered by level depth, sort order and name,
// optionally restricted to one level.
func (r *Repo) List(ctx context.Context, level *domain.RegionLevel) ([]domain.Region, error) {
	q := postgres.Builder().
		Select(regionColumns).
		From("regions").
		OrderBy("level", "sort_order", "name")
	if level != nil {
		q = q.Where("level = ?", string(*level))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("region list: build query: %w", err)
	}

	var rows []regionRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("region list: %w", err)
	}

	return toDomainRegions(rows), nil
}

// GetByID returns a region by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Region, error) {
	var row regionRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT `+regionColumns+` FROM regions WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "region", id)
	}

	reg := toDomainRegion(row)
	return &reg, nil
}

// GetByCode returns the region with the given code.
func (r *Repo) GetByCode(ctx context.Context, code string) (*domain.Region, error) {
	var row regionRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT `+regionColumns+` FROM regions WHERE code = $1 ORDER BY created_at LIMIT 1`, code)
	if err != nil {
		return nil, postgres.MapError(err, "region", code)
	}

	reg := toDomainRegion(row)
	return &reg, nil
}

// Upsert inserts a region or updates the existing one with the same
// (country_id, code) and returns the stored row.
func (r *Repo) Upsert(ctx context.Context, reg *domain.Region) (*domain.Region, error) {
	var row regionRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`INSERT INTO regions (country_id, name, code, level, parent_region_id, description, sort_order)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (country_id, code) DO UPDATE
		 SET name = EXCLUDED.name,
		     level = EXCLUDED.level,
		     parent_region_id = EXCLUDED.parent_region_id,
		     description = EXCLUDED.description,
		     sort_order = EXCLUDED.sort_order
		 RETURNING `+regionColumns,
		reg.CountryID, reg.Name, reg.Code, string(reg.Level), reg.ParentRegionID, reg.Description, reg.SortOrder,
	)
	if err != nil {
		return nil, postgres.MapError(err, "region", reg.Code)
	}

	result := toDomainRegion(row)
	return &result, nil
}

// ---------------------------------------------------------------------------
// Countries
// ---------------------------------------------------------------------------

// UpsertCountry inserts a country or renames the existing one with the same code.
func (r *Repo) UpsertCountry(ctx context.Context, name, code string) (*domain.Country, error) {
	var c domain.Country
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`INSERT INTO countries (name, code) VALUES ($1, $2)
		 ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id, name, code, created_at`,
		name, code,
	).Scan(&c.ID, &c.Name, &c.Code, &c.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "country", code)
	}
	return &c, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomainRegion(row regionRow) domain.Region {
	return domain.Region{
		ID:             row.ID,
		CountryID:      row.CountryID,
		Name:           row.Name,
		Code:           row.Code,
		Level:          domain.RegionLevel(row.Level),
		ParentRegionID: row.ParentRegionID,
		Description:    row.Description,
		SortOrder:      row.SortOrder,
		CreatedAt:      row.CreatedAt,
	}
}

func toDomainRegions(rows []regionRow) []domain.Region {
	result := make([]domain.Region, len(rows))
	for i, row := range rows {
		result[i] = toDomainRegion(row)
	}
	return result
}
