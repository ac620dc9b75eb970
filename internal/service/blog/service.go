package blog

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vndialect/tudien-backend/internal/config"
	"github.com/vndialect/tudien-backend/internal/domain"
)

type postRepo interface {
	CreatePost(ctx context.Context, p *domain.BlogPost) (*domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	IncrementViews(ctx context.Context, id uuid.UUID) error
	ListPublished(ctx context.Context, limit, offset int) ([]domain.BlogPost, error)
	CountPublished(ctx context.Context) (int, error)
	CreateComment(ctx context.Context, c *domain.BlogComment) (*domain.BlogComment, error)
	ListComments(ctx context.Context, postID uuid.UUID) ([]domain.BlogComment, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Service implements blog posts and comments.
type Service struct {
	log   *slog.Logger
	cfg   config.BlogConfig
	posts postRepo
	users userRepo
	now   func() time.Time
}

// NewService creates a new blog service.
func NewService(log *slog.Logger, cfg config.BlogConfig, posts postRepo, users userRepo) *Service {
	return &Service{
		log:   log.With("service", "blog"),
		cfg:   cfg,
		posts: posts,
		users: users,
		now:   time.Now,
	}
}
