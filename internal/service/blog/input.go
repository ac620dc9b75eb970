package blog

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/vndialect/tudien-backend/internal/domain"
)

const (
	maxTitleLen   = 200
	maxExcerptLen = 500
	maxContentLen = 50000
)

// CreatePostInput holds a new blog post.
type CreatePostInput struct {
	Title   string
	Excerpt *string
	Content string
	WordID  *uuid.UUID
	Publish bool
}

// Validate checks all fields and collects all errors.
func (i CreatePostInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	switch {
	case title == "":
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	case utf8.RuneCountInString(title) > maxTitleLen:
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	} else if utf8.RuneCountInString(i.Content) > maxContentLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
	}

	if i.Excerpt != nil && utf8.RuneCountInString(*i.Excerpt) > maxExcerptLen {
		errs = append(errs, domain.FieldError{Field: "excerpt", Message: "too long"})
	}

	if i.WordID != nil && *i.WordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "word_id", Message: "invalid"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateCommentInput holds a new comment on the post identified by Slug.
type CreateCommentInput struct {
	Slug    string
	Content string
}

func (i CreateCommentInput) validate(maxLen int) error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Slug) == "" {
		errs = append(errs, domain.FieldError{Field: "slug", Message: "required"})
	}

	content := strings.TrimSpace(i.Content)
	switch {
	case content == "":
		errs = append(errs, domain.FieldError{Field: "content", Message: "comment is required"})
	case utf8.RuneCountInString(content) > maxLen:
		errs = append(errs, domain.FieldError{Field: "content", Message: "comment is too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

var slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a unique slug from a title: lowercase ASCII alphanumerics
// joined by dashes, suffixed with the creation time in unix milliseconds.
func Slugify(title string, at time.Time) string {
	base := strings.Trim(slugInvalid.ReplaceAllString(strings.ToLower(title), "-"), "-")
	if base == "" {
		base = "post"
	}
	return base + "-" + strconv.FormatInt(at.UnixMilli(), 10)
}
