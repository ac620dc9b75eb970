package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/vndialect/tudien-backend/internal/domain"
)

type wordResponse struct {
	ID            uuid.UUID `json:"id"`
	Content       string    `json:"content"`
	Definition    string    `json:"definition"`
	DialectType   string    `json:"dialectType"`
	Pronunciation *string   `json:"pronunciation"`
	Etymology     *string   `json:"etymology"`
	UsageExample  *string   `json:"usageExample"`
	Notes         *string   `json:"notes"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func toWordResponse(w *domain.Word) wordResponse {
	return wordResponse{
		ID:            w.ID,
		Content:       w.Content,
		Definition:    w.Definition,
		DialectType:   w.DialectType.String(),
		Pronunciation: w.Pronunciation,
		Etymology:     w.Etymology,
		UsageExample:  w.UsageExample,
		Notes:         w.Notes,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}

func toWordResponses(words []domain.Word) []wordResponse {
	out := make([]wordResponse, len(words))
	for i := range words {
		out[i] = toWordResponse(&words[i])
	}
	return out
}

type regionResponse struct {
	ID             uuid.UUID  `json:"id"`
	CountryID      uuid.UUID  `json:"countryId"`
	Name           string     `json:"name"`
	Code           string     `json:"code"`
	Level          string     `json:"level"`
	ParentRegionID *uuid.UUID `json:"parentRegionId"`
	Description    *string    `json:"description"`
	SortOrder      int        `json:"sortOrder"`
}

func toRegionResponse(r *domain.Region) regionResponse {
	return regionResponse{
		ID:             r.ID,
		CountryID:      r.CountryID,
		Name:           r.Name,
		Code:           r.Code,
		Level:          r.Level.String(),
		ParentRegionID: r.ParentRegionID,
		Description:    r.Description,
		SortOrder:      r.SortOrder,
	}
}

type linkedRegionResponse struct {
	regionResponse
	UsageStrength int `json:"usageStrength"`
}

type wordRegionResponse struct {
	ID            uuid.UUID `json:"id"`
	WordID        uuid.UUID `json:"wordId"`
	RegionID      uuid.UUID `json:"regionId"`
	UsageStrength int       `json:"usageStrength"`
}

type postResponse struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Slug      string     `json:"slug"`
	Excerpt   *string    `json:"excerpt"`
	Content   string     `json:"content"`
	AuthorID  uuid.UUID  `json:"authorId"`
	WordID    *uuid.UUID `json:"wordId"`
	Published *time.Time `json:"published"`
	ViewCount int        `json:"viewCount"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func toPostResponse(p *domain.BlogPost) postResponse {
	return postResponse{
		ID:        p.ID,
		Title:     p.Title,
		Slug:      p.Slug,
		Excerpt:   p.Excerpt,
		Content:   p.Content,
		AuthorID:  p.AuthorID,
		WordID:    p.WordID,
		Published: p.PublishedAt,
		ViewCount: p.ViewCount,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type commentResponse struct {
	ID         uuid.UUID `json:"id"`
	BlogPostID uuid.UUID `json:"blogPostId"`
	AuthorID   uuid.UUID `json:"authorId"`
	AuthorName string    `json:"authorName"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toCommentResponse(c *domain.BlogComment) commentResponse {
	return commentResponse{
		ID:         c.ID,
		BlogPostID: c.PostID,
		AuthorID:   c.AuthorID,
		AuthorName: c.AuthorName,
		Content:    c.Content,
		CreatedAt:  c.CreatedAt,
	}
}

type userResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role.String()}
}
