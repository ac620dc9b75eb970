package domain

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost is an article, optionally about a specific word.
// PublishedAt is nil for drafts.
type BlogPost struct {
	ID          uuid.UUID
	Title       string
	Slug        string
	Excerpt     *string
	Content     string
	AuthorID    uuid.UUID
	WordID      *uuid.UUID
	PublishedAt *time.Time
	ViewCount   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsPublished reports whether the post is visible in public listings.
func (p *BlogPost) IsPublished() bool {
	return p.PublishedAt != nil
}

// BlogComment is a reader comment on a post.
type BlogComment struct {
	ID         uuid.UUID
	PostID     uuid.UUID
	AuthorID   uuid.UUID
	AuthorName string
	Content    string
	CreatedAt  time.Time
}
