// Package seeder loads the reference region hierarchy and sample content.
package seeder

import (
	"context"

	"github.com/google/uuid"

	"github.com/vndialect/tudien-backend/internal/domain"
	"github.com/vndialect/tudien-backend/internal/service/auth"
)

// RegionRepo upserts the hierarchy. Implemented by region.Repo.
type RegionRepo interface {
	UpsertCountry(ctx context.Context, name, code string) (*domain.Country, error)
	Upsert(ctx context.Context, reg *domain.Region) (*domain.Region, error)
	GetByCode(ctx context.Context, code string) (*domain.Region, error)
}

// WordRepo is implemented by word.Repo.
type WordRepo interface {
	GetByContent(ctx context.Context, content string) (*domain.Word, error)
	Create(ctx context.Context, w *domain.Word) (*domain.Word, error)
}

// LinkRepo is implemented by wordregion.Repo.
type LinkRepo interface {
	UpsertBatch(ctx context.Context, links []domain.WordRegion) error
}

// UserRepo is implemented by user.Repo.
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error)
}

// Registrar creates accounts with a password credential. Implemented by the
// auth service.
type Registrar interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
}

// PostRepo is implemented by blog.Repo.
type PostRepo interface {
	GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	CreatePost(ctx context.Context, p *domain.BlogPost) (*domain.BlogPost, error)
}

// MapCache drops the cached all-words usage map. Implemented by
// cache.MapCache.
type MapCache interface {
	Invalidate(ctx context.Context) error
}

// Repos bundles the storage the pipeline writes to. Maps is nil when no
// cache is configured.
type Repos struct {
	Regions   RegionRepo
	Words     WordRepo
	Links     LinkRepo
	Users     UserRepo
	Registrar Registrar
	Posts     PostRepo
	Maps      MapCache
}
