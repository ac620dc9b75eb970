package blog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vndialect/tudien-backend/internal/domain"
	"github.com/vndialect/tudien-backend/pkg/ctxutil"
)

// ListComments returns the comments of the post, newest first.
func (s *Service) ListComments(ctx context.Context, slug string) ([]domain.BlogComment, error) {
	post, err := s.posts.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	comments, err := s.posts.ListComments(ctx, post.ID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// CreateComment adds a comment by the current user. The author name is
// copied from the user so the comment survives profile renames.
func (s *Service) CreateComment(ctx context.Context, input CreateCommentInput) (*domain.BlogComment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.validate(s.maxCommentLen()); err != nil {
		return nil, err
	}

	post, err := s.posts.GetBySlug(ctx, input.Slug)
	if err != nil {
		return nil, err
	}

	author, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}

	comment, err := s.posts.CreateComment(ctx, &domain.BlogComment{
		PostID:     post.ID,
		AuthorID:   author.ID,
		AuthorName: author.Name,
		Content:    strings.TrimSpace(input.Content),
	})
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.InfoContext(ctx, "comment created",
		slog.String("user_id", userID.String()),
		slog.String("post_id", post.ID.String()),
	)

	return comment, nil
}

func (s *Service) maxCommentLen() int {
	if s.cfg.MaxCommentLength > 0 {
		return s.cfg.MaxCommentLength
	}
	return 1000
}
