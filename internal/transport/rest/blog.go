package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/vndialect/tudien-backend/internal/domain"
	"github.com/vndialect/tudien-backend/internal/service/blog"
)

type blogService interface {
	CreatePost(ctx context.Context, input blog.CreatePostInput) (*domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	ListPublished(ctx context.Context, page int) (*blog.ListResult, error)
	ListComments(ctx context.Context, slug string) ([]domain.BlogComment, error)
	CreateComment(ctx context.Context, input blog.CreateCommentInput) (*domain.BlogComment, error)
}

// BlogHandler serves blog posts and comments.
type BlogHandler struct {
	svc blogService
	log *slog.Logger
}

// NewBlogHandler creates a BlogHandler.
func NewBlogHandler(svc blogService, logger *slog.Logger) *BlogHandler {
	return &BlogHandler{svc: svc, log: logger.With("handler", "blog")}
}

type createPostRequest struct {
	Title   string     `json:"title"`
	Excerpt *string    `json:"excerpt"`
	Content string     `json:"content"`
	WordID  *uuid.UUID `json:"wordId"`
	Publish bool       `json:"publish"`
}

type createCommentRequest struct {
	Content string `json:"content"`
}

type postListResponse struct {
	Posts      []postResponse `json:"posts"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	Total      int            `json:"total"`
	TotalPages int            `json:"totalPages"`
}

// List handles GET /api/blog?page=.
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	page, ok := queryInt(w, r, "page", 1)
	if !ok {
		return
	}

	result, err := h.svc.ListPublished(r.Context(), page)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	resp := postListResponse{
		Posts:      make([]postResponse, len(result.Posts)),
		Page:       result.Page,
		PageSize:   result.PageSize,
		Total:      result.Total,
		TotalPages: result.TotalPages,
	}
	for i := range result.Posts {
		resp.Posts[i] = toPostResponse(&result.Posts[i])
	}
	writeData(w, http.StatusOK, resp)
}

// Create handles POST /api/blog.
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	post, err := h.svc.CreatePost(r.Context(), blog.CreatePostInput{
		Title:   req.Title,
		Excerpt: req.Excerpt,
		Content: req.Content,
		WordID:  req.WordID,
		Publish: req.Publish,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusCreated, toPostResponse(post))
}

// Get handles GET /api/blog/{slug}.
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.svc.GetBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, toPostResponse(post))
}

// Comments handles GET /api/blog/{slug}/comments.
func (h *BlogHandler) Comments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.svc.ListComments(r.Context(), r.PathValue("slug"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	out := make([]commentResponse, len(comments))
	for i := range comments {
		out[i] = toCommentResponse(&comments[i])
	}
	writeData(w, http.StatusOK, map[string]any{"comments": out})
}

// CreateComment handles POST /api/blog/{slug}/comments.
func (h *BlogHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var req createCommentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	comment, err := h.svc.CreateComment(r.Context(), blog.CreateCommentInput{
		Slug:    r.PathValue("slug"),
		Content: req.Content,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusCreated, toCommentResponse(comment))
}
