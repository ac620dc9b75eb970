package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vndialect/tudien-backend/internal/auth"
	"github.com/vndialect/tudien-backend/internal/domain"
)

// Refresh performs token rotation and returns new access/refresh tokens.
// Presenting an already revoked token is treated as theft: every token of
// that user is revoked and ErrUnauthorized is returned.
// If the token is unknown, expired or the user is deleted, returns ErrUnauthorized.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Hash the refresh token
	hash := auth.HashToken(input.RefreshToken)

	// Step 3: Get active token from DB
	token, err := s.tokens.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, s.rejectInactive(ctx, hash)
		}
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}

	// Step 4: Check if token is expired
	if token.IsExpired(time.Now()) {
		return nil, domain.ErrUnauthorized
	}

	// Step 5: Get user
	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for deleted user",
				slog.String("user_id", token.UserID.String()))
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	// Step 6: Revoke old token
	if err := s.tokens.RevokeByID(ctx, token.ID); err != nil {
		return nil, fmt.Errorf("auth.Refresh revoke token: %w", err)
	}

	// Step 7: Issue new token pair
	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh issue tokens: %w", err)
	}
	return result, nil
}

// rejectInactive handles a token that is not active. A revoked token means
// reuse, so the whole token family of its owner is revoked.
func (s *Service) rejectInactive(ctx context.Context, hash string) error {
	stale, err := s.tokens.GetByHashAny(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrUnauthorized
		}
		return fmt.Errorf("auth.Refresh get token: %w", err)
	}
	if !stale.IsRevoked() {
		return domain.ErrUnauthorized
	}

	s.log.WarnContext(ctx, "refresh token reuse detected",
		slog.String("user_id", stale.UserID.String()))
	if err := s.tokens.RevokeAllByUser(ctx, stale.UserID); err != nil {
		return fmt.Errorf("auth.Refresh revoke all: %w", err)
	}
	return domain.ErrUnauthorized
}
