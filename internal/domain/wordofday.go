package domain

import (
	"time"

	"github.com/google/uuid"
)

// WordOfTheDay pins one word to a calendar date.
type WordOfTheDay struct {
	ID        uuid.UUID
	WordID    uuid.UUID
	Date      time.Time
	ViewCount int
	CreatedAt time.Time
}

// TruncateToDate returns midnight UTC of the calendar day containing t.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
