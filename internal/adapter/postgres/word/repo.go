// Package word implements the Word repository using PostgreSQL.
package word

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/vndialect/tudien-backend/internal/adapter/postgres"
	"github.com/vndialect/tudien-backend/internal/domain"
)

const wordColumns = "id, content, definition, dialect_type, pronunciation, etymology, usage_example, notes, created_at, updated_at"

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new word repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type wordRow struct {
	ID            uuid.UUID `db:"id"`
	Content       string    `db:"content"`
	Definition    string    `db:"definition"`
	DialectType   string    `db:"dialect_type"`
	Pronunciation *string   `db:"pronunciation"`
	Etymology     *string   `db:"etymology"`
	UsageExample  *string   `db:"usage_example"`
	Notes         *string   `db:"notes"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// Search returns words whose content contains q, ignoring case and diacritics.
func (r *Repo) Search(ctx context.Context, q string, limit int) ([]domain.Word, error) {
	query := postgres.Builder().
		Select(wordColumns).
		From("words").
		Where("immutable_unaccent(content) ILIKE immutable_unaccent(?)", "%"+escapeLike(q)+"%").
		OrderBy("char_length(content)", "content").
		Limit(uint64(limit))

	return r.selectWords(ctx, query, "word search")
}

// List returns a page of words, newest first.
func (r *Repo) List(ctx context.Context, filter domain.WordFilter) ([]domain.Word, error) {
	query := applyFilter(postgres.Builder().Select(wordColumns).From("words"), filter).
		OrderBy("created_at DESC", "id").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	return r.selectWords(ctx, query, "word list")
}

// Count returns the number of words matching the filter; paging fields are ignored.
func (r *Repo) Count(ctx context.Context, filter domain.WordFilter) (int, error) {
	sql, args, err := applyFilter(postgres.Builder().Select("count(*)").From("words"), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("word count: build query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("word count: %w", err)
	}
	return n, nil
}

// GetByID returns a word by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	var row wordRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT `+wordColumns+` FROM words WHERE id = $1`, id)
	if err != nil {
		return nil, postgres.MapError(err, "word", id)
	}

	w := toDomain(row)
	return &w, nil
}

// GetByContent returns the oldest word with exactly this content.
func (r *Repo) GetByContent(ctx context.Context, content string) (*domain.Word, error) {
	var row wordRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT `+wordColumns+` FROM words WHERE content = $1 ORDER BY created_at LIMIT 1`, content)
	if err != nil {
		return nil, postgres.MapError(err, "word", content)
	}

	w := toDomain(row)
	return &w, nil
}

// RandomID returns the ID of a uniformly chosen word.
// Returns domain.ErrNotFound when the dictionary is empty.
func (r *Repo) RandomID(ctx context.Context) (uuid.UUID, error) {
	var id uuid.UUID
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`SELECT id FROM words ORDER BY random() LIMIT 1`,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, postgres.MapError(err, "word", "random")
	}
	return id, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a new word and returns the stored row.
func (r *Repo) Create(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	id := w.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	var row wordRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`INSERT INTO words (id, content, definition, dialect_type, pronunciation, etymology, usage_example, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+wordColumns,
		id, w.Content, w.Definition, string(w.DialectType), w.Pronunciation, w.Etymology, w.UsageExample, w.Notes,
	)
	if err != nil {
		return nil, postgres.MapError(err, "word", id)
	}

	result := toDomain(row)
	return &result, nil
}

// Update applies a partial update and bumps updated_at.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, p domain.WordUpdateParams) (*domain.Word, error) {
	q := postgres.Builder().
		Update("words").
		Set("updated_at", squirrel.Expr("now()")).
		Where("id = ?", id).
		Suffix("RETURNING " + wordColumns)

	if p.Content != nil {
		q = q.Set("content", *p.Content)
	}
	if p.Definition != nil {
		q = q.Set("definition", *p.Definition)
	}
	if p.DialectType != nil {
		q = q.Set("dialect_type", string(*p.DialectType))
	}
	if p.Pronunciation != nil {
		q = q.Set("pronunciation", emptyToNull(*p.Pronunciation))
	}
	if p.Etymology != nil {
		q = q.Set("etymology", emptyToNull(*p.Etymology))
	}
	if p.UsageExample != nil {
		q = q.Set("usage_example", emptyToNull(*p.UsageExample))
	}
	if p.Notes != nil {
		q = q.Set("notes", emptyToNull(*p.Notes))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("word update: build query: %w", err)
	}

	var row wordRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "word", id)
	}

	w := toDomain(row)
	return &w, nil
}

// Delete removes a word; its region links cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, `DELETE FROM words WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "word", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) selectWords(ctx context.Context, q squirrel.SelectBuilder, op string) ([]domain.Word, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	var rows []wordRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := make([]domain.Word, len(rows))
	for i, row := range rows {
		result[i] = toDomain(row)
	}
	return result, nil
}

func applyFilter(q squirrel.SelectBuilder, f domain.WordFilter) squirrel.SelectBuilder {
	if f.Dialect != nil {
		q = q.Where(squirrel.Eq{"dialect_type": string(*f.Dialect)})
	}
	return q
}

// emptyToNull stores an empty optional text column as NULL.
func emptyToNull(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case '\\', '%', '_':
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}

func toDomain(row wordRow) domain.Word {
	return domain.Word{
		ID:            row.ID,
		Content:       row.Content,
		Definition:    row.Definition,
		DialectType:   domain.DialectType(row.DialectType),
		Pronunciation: row.Pronunciation,
		Etymology:     row.Etymology,
		UsageExample:  row.UsageExample,
		Notes:         row.Notes,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
