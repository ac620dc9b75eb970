// Package blog implements blog post and comment repositories using PostgreSQL.
package blog

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/vndialect/tudien-backend/internal/adapter/postgres"
	"github.com/vndialect/tudien-backend/internal/domain"
)

const (
	postColumns    = "id, title, slug, excerpt, content, author_id, word_id, published_at, view_count, created_at, updated_at"
	commentColumns = "id, post_id, author_id, author_name, content, created_at"
)

// Repo provides blog persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new blog repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type postRow struct {
	ID          uuid.UUID  `db:"id"`
	Title       string     `db:"title"`
	Slug        string     `db:"slug"`
	Excerpt     *string    `db:"excerpt"`
	Content     string     `db:"content"`
	AuthorID    uuid.UUID  `db:"author_id"`
	WordID      *uuid.UUID `db:"word_id"`
	PublishedAt *time.Time `db:"published_at"`
	ViewCount   int        `db:"view_count"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

type commentRow struct {
	ID         uuid.UUID `db:"id"`
	PostID     uuid.UUID `db:"post_id"`
	AuthorID   uuid.UUID `db:"author_id"`
	AuthorName string    `db:"author_name"`
	Content    string    `db:"content"`
	CreatedAt  time.Time `db:"created_at"`
}

// ---------------------------------------------------------------------------
// Posts
// ---------------------------------------------------------------------------

// CreatePost inserts a post. Slug collisions return ErrAlreadyExists.
func (r *Repo) CreatePost(ctx context.Context, p *domain.BlogPost) (*domain.BlogPost, error) {
	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	var row postRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`INSERT INTO blog_posts (id, title, slug, excerpt, content, author_id, word_id, published_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+postColumns,
		id, p.Title, p.Slug, p.Excerpt, p.Content, p.AuthorID, p.WordID, p.PublishedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "blog_post", p.Slug)
	}

	return toDomainPost(row), nil
}

// GetBySlug returns any post, published or draft, by its slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	var row postRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`SELECT `+postColumns+` FROM blog_posts WHERE slug = $1`, slug)
	if err != nil {
		return nil, postgres.MapError(err, "blog_post", slug)
	}

	return toDomainPost(row), nil
}

// IncrementViews bumps the view counter of a post.
func (r *Repo) IncrementViews(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		`UPDATE blog_posts SET view_count = view_count + 1 WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "blog_post", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("blog_post %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ListPublished returns published posts, newest first.
func (r *Repo) ListPublished(ctx context.Context, limit, offset int) ([]domain.BlogPost, error) {
	query, args, err := postgres.Builder().
		Select(postColumns).
		From("blog_posts").
		Where("published_at IS NOT NULL").
		OrderBy("published_at DESC", "id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list published query: %w", err)
	}

	var rows []postRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("blog_post list published: %w", err)
	}

	posts := make([]domain.BlogPost, len(rows))
	for i, row := range rows {
		posts[i] = *toDomainPost(row)
	}
	return posts, nil
}

// CountPublished returns the number of published posts.
func (r *Repo) CountPublished(ctx context.Context) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx,
		`SELECT count(*) FROM blog_posts WHERE published_at IS NOT NULL`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("blog_post count published: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Comments
// ---------------------------------------------------------------------------

// CreateComment inserts a comment on a post.
func (r *Repo) CreateComment(ctx context.Context, c *domain.BlogComment) (*domain.BlogComment, error) {
	var row commentRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		`INSERT INTO blog_comments (post_id, author_id, author_name, content)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+commentColumns,
		c.PostID, c.AuthorID, c.AuthorName, c.Content,
	)
	if err != nil {
		return nil, postgres.MapError(err, "blog_comment", c.PostID)
	}

	comment := toDomainComment(row)
	return &comment, nil
}

// ListComments returns the comments of a post, newest first.
func (r *Repo) ListComments(ctx context.Context, postID uuid.UUID) ([]domain.BlogComment, error) {
	var rows []commentRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows,
		`SELECT `+commentColumns+` FROM blog_comments WHERE post_id = $1 ORDER BY created_at DESC, id`,
		postID,
	)
	if err != nil {
		return nil, fmt.Errorf("blog_comment list: %w", err)
	}

	comments := make([]domain.BlogComment, len(rows))
	for i, row := range rows {
		comments[i] = toDomainComment(row)
	}
	return comments, nil
}

func toDomainPost(row postRow) *domain.BlogPost {
	return &domain.BlogPost{
		ID:          row.ID,
		Title:       row.Title,
		Slug:        row.Slug,
		Excerpt:     row.Excerpt,
		Content:     row.Content,
		AuthorID:    row.AuthorID,
		WordID:      row.WordID,
		PublishedAt: row.PublishedAt,
		ViewCount:   row.ViewCount,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func toDomainComment(row commentRow) domain.BlogComment {
	return domain.BlogComment{
		ID:         row.ID,
		PostID:     row.PostID,
		AuthorID:   row.AuthorID,
		AuthorName: row.AuthorName,
		Content:    row.Content,
		CreatedAt:  row.CreatedAt,
	}
}
