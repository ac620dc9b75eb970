package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vndialect/tudien-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error)
	List(ctx context.Context, limit, offset int) ([]domain.User, error)
	Count(ctx context.Context) (int, error)
}

// auditRepo records role changes.
type auditRepo interface {
	Log(ctx context.Context, rec domain.AuditRecord) error
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements profile and user administration operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	audit auditRepo
	tx    txManager
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, audit auditRepo, tx txManager) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		audit: audit,
		tx:    tx,
	}
}
