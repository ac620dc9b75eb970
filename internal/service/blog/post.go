package blog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vndialect/tudien-backend/internal/domain"
	"github.com/vndialect/tudien-backend/pkg/ctxutil"
)

// ListResult is one page of published posts.
type ListResult struct {
	Posts      []domain.BlogPost
	Page       int
	PageSize   int
	Total      int
	TotalPages int
}

// CreatePost stores a post authored by the current user.
// Publish stamps the post with the current time, otherwise it stays a draft.
func (s *Service) CreatePost(ctx context.Context, input CreatePostInput) (*domain.BlogPost, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	post := &domain.BlogPost{
		Title:    strings.TrimSpace(input.Title),
		Slug:     Slugify(input.Title, now),
		Content:  input.Content,
		AuthorID: userID,
		WordID:   input.WordID,
	}
	if input.Excerpt != nil && strings.TrimSpace(*input.Excerpt) != "" {
		excerpt := strings.TrimSpace(*input.Excerpt)
		post.Excerpt = &excerpt
	}
	if input.Publish {
		post.PublishedAt = &now
	}

	created, err := s.posts.CreatePost(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	s.log.InfoContext(ctx, "blog post created",
		slog.String("user_id", userID.String()),
		slog.String("post_id", created.ID.String()),
		slog.String("slug", created.Slug),
		slog.Bool("published", created.IsPublished()),
	)

	return created, nil
}

// GetBySlug returns a post and counts the view.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	post, err := s.posts.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if err := s.posts.IncrementViews(ctx, post.ID); err != nil {
		return nil, fmt.Errorf("increment views: %w", err)
	}
	return post, nil
}

// ListPublished returns the 1-based page of published posts, newest first.
// Pages below 1 are treated as the first page.
func (s *Service) ListPublished(ctx context.Context, page int) (*ListResult, error) {
	if page < 1 {
		page = 1
	}
	size := s.cfg.PageSize
	if size <= 0 {
		size = 9
	}

	total, err := s.posts.CountPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	posts, err := s.posts.ListPublished(ctx, size, (page-1)*size)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return &ListResult{
		Posts:      posts,
		Page:       page,
		PageSize:   size,
		Total:      total,
		TotalPages: (total + size - 1) / size,
	}, nil
}
