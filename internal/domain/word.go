package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultUsageStrength is used when a link is created without a strength
	// and when a stored strength is zero.
	DefaultUsageStrength = 50
	MinUsageStrength     = 0
	MaxUsageStrength     = 100
)

// Word is a dictionary entry of a regional dialect.
type Word struct {
	ID            uuid.UUID
	Content       string
	Definition    string
	DialectType   DialectType
	Pronunciation *string
	Etymology     *string
	UsageExample  *string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// WordRegion links a word to a region of any level with a usage strength.
type WordRegion struct {
	ID            uuid.UUID
	WordID        uuid.UUID
	RegionID      uuid.UUID
	UsageStrength int
	CreatedAt     time.Time
}

// EffectiveStrength returns the strength used for map aggregation.
// A zero strength falls back to DefaultUsageStrength.
func (wr WordRegion) EffectiveStrength() int {
	if wr.UsageStrength == 0 {
		return DefaultUsageStrength
	}
	return wr.UsageStrength
}

// LinkedRegion is a region together with the strength of a word link to it.
type LinkedRegion struct {
	Region        Region
	UsageStrength int
}

// WordUpdateParams holds the fields of a partial word update.
// Nil fields are left unchanged; an empty optional text clears the column.
type WordUpdateParams struct {
	Content       *string
	Definition    *string
	DialectType   *DialectType
	Pronunciation *string
	Etymology     *string
	UsageExample  *string
	Notes         *string
}

// WordFilter selects a page of words.
type WordFilter struct {
	Dialect *DialectType
	Limit   int
	Offset  int
}

// WordStats summarizes the dictionary for the statistics endpoint.
type WordStats struct {
	TotalWords            int
	TotalRegionsWithWords int
}
