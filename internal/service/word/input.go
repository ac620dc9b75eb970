package word

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/vndialect/tudien-backend/internal/domain"
)

const (
	maxContentLen    = 100
	maxDefinitionLen = 2000
	maxTextLen       = 2000
)

// RegionLinkInput is a region link submitted together with a new word.
type RegionLinkInput struct {
	RegionID      uuid.UUID
	UsageStrength *int
}

// CreateInput holds a contributed word.
type CreateInput struct {
	Content       string
	Definition    string
	DialectType   domain.DialectType
	Pronunciation *string
	Etymology     *string
	UsageExample  *string
	Notes         *string
	Regions       []RegionLinkInput
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	errs = checkRequired(errs, "content", i.Content, maxContentLen)
	errs = checkRequired(errs, "definition", i.Definition, maxDefinitionLen)
	if !i.DialectType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "dialect_type", Message: "must be North, Central or South"})
	}
	errs = checkOptional(errs, "pronunciation", i.Pronunciation)
	errs = checkOptional(errs, "etymology", i.Etymology)
	errs = checkOptional(errs, "usage_example", i.UsageExample)
	errs = checkOptional(errs, "notes", i.Notes)

	seen := make(map[uuid.UUID]bool, len(i.Regions))
	for _, r := range i.Regions {
		if r.RegionID == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "regions", Message: "region_id required"})
			continue
		}
		if seen[r.RegionID] {
			errs = append(errs, domain.FieldError{Field: "regions", Message: "duplicate region " + r.RegionID.String()})
		}
		seen[r.RegionID] = true
		errs = checkStrength(errs, r.UsageStrength)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds a partial word update.
type UpdateInput struct {
	WordID        uuid.UUID
	Content       *string
	Definition    *string
	DialectType   *domain.DialectType
	Pronunciation *string // nil = don't change; ptr("") = clear
	Etymology     *string
	UsageExample  *string
	Notes         *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.WordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "word_id", Message: "required"})
	}
	if i.Content == nil && i.Definition == nil && i.DialectType == nil &&
		i.Pronunciation == nil && i.Etymology == nil && i.UsageExample == nil && i.Notes == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Content != nil {
		errs = checkRequired(errs, "content", *i.Content, maxContentLen)
	}
	if i.Definition != nil {
		errs = checkRequired(errs, "definition", *i.Definition, maxDefinitionLen)
	}
	if i.DialectType != nil && !i.DialectType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "dialect_type", Message: "must be North, Central or South"})
	}
	errs = checkOptional(errs, "pronunciation", i.Pronunciation)
	errs = checkOptional(errs, "etymology", i.Etymology)
	errs = checkOptional(errs, "usage_example", i.UsageExample)
	errs = checkOptional(errs, "notes", i.Notes)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput selects a page of words.
type ListInput struct {
	Dialect *domain.DialectType
	Limit   int
	Offset  int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Dialect != nil && !i.Dialect.IsValid() {
		errs = append(errs, domain.FieldError{Field: "dialect", Message: "must be North, Central or South"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be positive"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LinkInput links a word to a region.
type LinkInput struct {
	WordID        uuid.UUID
	RegionID      uuid.UUID
	UsageStrength *int // nil = default strength
}

// Validate checks all fields and collects all errors.
func (i LinkInput) Validate() error {
	var errs []domain.FieldError

	if i.WordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "word_id", Message: "required"})
	}
	if i.RegionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "region_id", Message: "required"})
	}
	errs = checkStrength(errs, i.UsageStrength)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func checkRequired(errs []domain.FieldError, field, value string, maxLen int) []domain.FieldError {
	v := strings.TrimSpace(value)
	if v == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if utf8.RuneCountInString(v) > maxLen {
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}

func checkOptional(errs []domain.FieldError, field string, value *string) []domain.FieldError {
	if value != nil && utf8.RuneCountInString(strings.TrimSpace(*value)) > maxTextLen {
		return append(errs, domain.FieldError{Field: field, Message: "max 2000 characters"})
	}
	return errs
}

func checkStrength(errs []domain.FieldError, strength *int) []domain.FieldError {
	if strength != nil && (*strength < domain.MinUsageStrength || *strength > domain.MaxUsageStrength) {
		return append(errs, domain.FieldError{Field: "usage_strength", Message: "must be between 0 and 100"})
	}
	return errs
}

func strengthOrDefault(strength *int) int {
	if strength == nil {
		return domain.DefaultUsageStrength
	}
	return *strength
}

// trimOrNil trims whitespace. Returns nil if the input is nil.
// An all-space value becomes ptr(""), which clears the column on update.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// nonEmpty is trimOrNil that also drops empty values.
func nonEmpty(s *string) *string {
	v := trimOrNil(s)
	if v == nil || *v == "" {
		return nil
	}
	return v
}
