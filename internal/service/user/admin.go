package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vndialect/tudien-backend/internal/domain"
	"github.com/vndialect/tudien-backend/pkg/ctxutil"
)

const (
	defaultUserPageSize = 50
	maxUserPageSize     = 100
)

// SetUserRole changes the role of a user (admin only).
func (s *Service) SetUserRole(ctx context.Context, targetUserID uuid.UUID, role domain.UserRole) (*domain.User, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "invalid role: must be 'user' or 'admin'")
	}

	// An admin demoting themselves could leave nobody able to moderate.
	if callerID == targetUserID && role == domain.UserRoleUser {
		return nil, domain.NewValidationError("role", "cannot demote yourself")
	}

	var user *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var setErr error
		user, setErr = s.users.SetRole(txCtx, targetUserID, role)
		if setErr != nil {
			return setErr
		}
		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     callerID,
			EntityType: domain.EntityTypeUser,
			EntityID:   targetUserID,
			Action:     domain.AuditActionUpdate,
			Changes:    map[string]any{"role": role.String()},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("user.SetUserRole: %w", err)
	}

	s.log.InfoContext(ctx, "user role updated",
		slog.String("admin_id", callerID.String()),
		slog.String("target_user_id", targetUserID.String()),
		slog.String("new_role", role.String()),
	)

	return user, nil
}

// ListResult is a page of users with the paging that was applied.
type ListResult struct {
	Users  []domain.User
	Total  int
	Limit  int
	Offset int
}

// ListUsers returns a page of users and the total count (admin only).
// limit defaults to 50 and is capped at 100.
func (s *Service) ListUsers(ctx context.Context, limit, offset int) (*ListResult, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if limit <= 0 {
		limit = defaultUserPageSize
	}
	limit = min(limit, maxUserPageSize)
	offset = max(offset, 0)

	users, err := s.users.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("user.ListUsers: %w", err)
	}

	total, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.ListUsers count: %w", err)
	}

	return &ListResult{Users: users, Total: total, Limit: limit, Offset: offset}, nil
}
