package word

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vndialect/tudien-backend/internal/domain"
	"github.com/vndialect/tudien-backend/pkg/ctxutil"
)

const historyLimit = 100

// History returns the newest audit records for a word and its region links
// (admin only). Records outlive the word, so a deleted word still has one.
func (s *Service) History(ctx context.Context, wordID uuid.UUID) ([]domain.AuditRecord, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	records, err := s.audit.ListByEntityID(ctx, wordID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("word history: %w", err)
	}
	return records, nil
}
