package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord logs one change made by a user.
//
// Word region links are recorded against the word: EntityType is
// EntityTypeWordRegion, EntityID is the word and Changes names the region.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
