package word

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/vndialect/tudien-backend/internal/domain"
	"github.com/vndialect/tudien-backend/pkg/ctxutil"
)

// Create adds a contributed word together with its initial region links.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Word
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.words.Create(txCtx, &domain.Word{
			Content:       strings.TrimSpace(input.Content),
			Definition:    strings.TrimSpace(input.Definition),
			DialectType:   input.DialectType,
			Pronunciation: nonEmpty(input.Pronunciation),
			Etymology:     nonEmpty(input.Etymology),
			UsageExample:  nonEmpty(input.UsageExample),
			Notes:         nonEmpty(input.Notes),
		})
		if createErr != nil {
			return fmt.Errorf("create word: %w", createErr)
		}

		if len(input.Regions) > 0 {
			links := make([]domain.WordRegion, len(input.Regions))
			for i, r := range input.Regions {
				links[i] = domain.WordRegion{
					WordID:        created.ID,
					RegionID:      r.RegionID,
					UsageStrength: strengthOrDefault(r.UsageStrength),
				}
			}
			if err := s.links.UpsertBatch(txCtx, links); err != nil {
				return fmt.Errorf("link regions: %w", err)
			}
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeWord,
			EntityID:   created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"content":      created.Content,
				"dialect_type": created.DialectType.String(),
				"regions":      len(input.Regions),
			},
		})
	})
	if err != nil {
		return nil, err
	}

	if len(input.Regions) > 0 {
		s.maps.Invalidate(ctx)
	}

	s.log.InfoContext(ctx, "word created",
		slog.String("user_id", userID.String()),
		slog.String("word_id", created.ID.String()),
		slog.String("content", created.Content),
		slog.Int("regions", len(input.Regions)),
	)

	return created, nil
}

// Update applies a partial update to a word.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.WordUpdateParams{
		DialectType:   input.DialectType,
		Pronunciation: trimOrNil(input.Pronunciation),
		Etymology:     trimOrNil(input.Etymology),
		UsageExample:  trimOrNil(input.UsageExample),
		Notes:         trimOrNil(input.Notes),
	}
	if input.Content != nil {
		v := strings.TrimSpace(*input.Content)
		params.Content = &v
	}
	if input.Definition != nil {
		v := strings.TrimSpace(*input.Definition)
		params.Definition = &v
	}

	var updated *domain.Word
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.words.Update(txCtx, input.WordID, params)
		if updateErr != nil {
			return fmt.Errorf("update word: %w", updateErr)
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeWord,
			EntityID:   updated.ID,
			Action:     domain.AuditActionUpdate,
			Changes:    updateChanges(params),
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "word updated",
		slog.String("user_id", userID.String()),
		slog.String("word_id", updated.ID.String()),
	)

	return updated, nil
}

// Delete removes a word and its region links.
func (s *Service) Delete(ctx context.Context, wordID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.words.Delete(txCtx, wordID); err != nil {
			return fmt.Errorf("delete word: %w", err)
		}
		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeWord,
			EntityID:   wordID,
			Action:     domain.AuditActionDelete,
		})
	})
	if err != nil {
		return err
	}
	s.maps.Invalidate(ctx)

	s.log.InfoContext(ctx, "word deleted",
		slog.String("user_id", userID.String()),
		slog.String("word_id", wordID.String()),
	)
	return nil
}

// LinkRegion links a word to a region or changes the strength of an existing link.
func (s *Service) LinkRegion(ctx context.Context, input LinkInput) (*domain.WordRegion, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var link *domain.WordRegion
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var linkErr error
		link, linkErr = s.links.Upsert(txCtx, input.WordID, input.RegionID, strengthOrDefault(input.UsageStrength))
		if linkErr != nil {
			return fmt.Errorf("link region: %w", linkErr)
		}
		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeWordRegion,
			EntityID:   input.WordID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"region_id":      input.RegionID.String(),
				"usage_strength": link.UsageStrength,
			},
		})
	})
	if err != nil {
		return nil, err
	}
	s.maps.Invalidate(ctx)

	s.log.InfoContext(ctx, "word linked to region",
		slog.String("user_id", userID.String()),
		slog.String("word_id", input.WordID.String()),
		slog.String("region_id", input.RegionID.String()),
		slog.Int("usage_strength", link.UsageStrength),
	)

	return link, nil
}

// UnlinkRegion removes the link between a word and a region.
func (s *Service) UnlinkRegion(ctx context.Context, wordID, regionID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.links.Delete(txCtx, wordID, regionID); err != nil {
			return fmt.Errorf("unlink region: %w", err)
		}
		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeWordRegion,
			EntityID:   wordID,
			Action:     domain.AuditActionDelete,
			Changes:    map[string]any{"region_id": regionID.String()},
		})
	})
	if err != nil {
		return err
	}
	s.maps.Invalidate(ctx)

	s.log.InfoContext(ctx, "word unlinked from region",
		slog.String("user_id", userID.String()),
		slog.String("word_id", wordID.String()),
		slog.String("region_id", regionID.String()),
	)
	return nil
}

// updateChanges lists the new value of every column an update touches.
// A cleared optional field is recorded as "".
func updateChanges(p domain.WordUpdateParams) map[string]any {
	changes := make(map[string]any)
	set := func(field string, v *string) {
		if v != nil {
			changes[field] = *v
		}
	}
	set("content", p.Content)
	set("definition", p.Definition)
	set("pronunciation", p.Pronunciation)
	set("etymology", p.Etymology)
	set("usage_example", p.UsageExample)
	set("notes", p.Notes)
	if p.DialectType != nil {
		changes["dialect_type"] = p.DialectType.String()
	}
	return changes
}
