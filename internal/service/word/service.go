// Package word implements the dictionary operations: search, browse,
// contribution and region linking.
package word

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vndialect/tudien-backend/internal/config"
	"github.com/vndialect/tudien-backend/internal/domain"
)

type wordRepo interface {
	Search(ctx context.Context, q string, limit int) ([]domain.Word, error)
	List(ctx context.Context, filter domain.WordFilter) ([]domain.Word, error)
	Count(ctx context.Context, filter domain.WordFilter) (int, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	GetByContent(ctx context.Context, content string) (*domain.Word, error)
	Create(ctx context.Context, w *domain.Word) (*domain.Word, error)
	Update(ctx context.Context, id uuid.UUID, p domain.WordUpdateParams) (*domain.Word, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type linkRepo interface {
	Upsert(ctx context.Context, wordID, regionID uuid.UUID, strength int) (*domain.WordRegion, error)
	UpsertBatch(ctx context.Context, links []domain.WordRegion) error
	Delete(ctx context.Context, wordID, regionID uuid.UUID) error
	ListRegionsByWordID(ctx context.Context, wordID uuid.UUID) ([]domain.LinkedRegion, error)
}

type regionMap interface {
	WordRegionMapData(ctx context.Context, wordID uuid.UUID) ([]domain.MapEntry, error)
	AllWordsRegionMapData(ctx context.Context) ([]domain.MapEntry, error)
	Invalidate(ctx context.Context)
}

type auditRepo interface {
	Log(ctx context.Context, rec domain.AuditRecord) error
	ListByEntityID(ctx context.Context, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides word operations.
type Service struct {
	words wordRepo
	links linkRepo
	maps  regionMap
	audit auditRepo
	tx    txManager
	log   *slog.Logger
	cfg   config.DictionaryConfig
}

// NewService creates a new word service.
func NewService(
	log *slog.Logger,
	cfg config.DictionaryConfig,
	words wordRepo,
	links linkRepo,
	maps regionMap,
	audit auditRepo,
	tx txManager,
) *Service {
	return &Service{
		words: words,
		links: links,
		maps:  maps,
		audit: audit,
		tx:    tx,
		log:   log.With("service", "word"),
		cfg:   cfg,
	}
}
