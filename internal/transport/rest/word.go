package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/vndialect/tudien-backend/internal/domain"
	"github.com/vndialect/tudien-backend/internal/service/word"
	"github.com/vndialect/tudien-backend/internal/transport/middleware"
)

type wordService interface {
	Search(ctx context.Context, q string) ([]domain.Word, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	GetByContent(ctx context.Context, content string) (*domain.Word, error)
	List(ctx context.Context, input word.ListInput) (*word.ListResult, error)
	Regions(ctx context.Context, wordID uuid.UUID) ([]domain.LinkedRegion, error)
	Map(ctx context.Context, wordID uuid.UUID) ([]domain.MapEntry, error)
	Stats(ctx context.Context) (*word.StatsResult, error)
	Create(ctx context.Context, input word.CreateInput) (*domain.Word, error)
	Update(ctx context.Context, input word.UpdateInput) (*domain.Word, error)
	Delete(ctx context.Context, wordID uuid.UUID) error
	LinkRegion(ctx context.Context, input word.LinkInput) (*domain.WordRegion, error)
	UnlinkRegion(ctx context.Context, wordID, regionID uuid.UUID) error
	History(ctx context.Context, wordID uuid.UUID) ([]domain.AuditRecord, error)
}

// WordHandler serves dictionary word endpoints.
type WordHandler struct {
	svc wordService
	log *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(svc wordService, logger *slog.Logger) *WordHandler {
	return &WordHandler{svc: svc, log: logger.With("handler", "word")}
}

type regionLinkRequest struct {
	RegionID      uuid.UUID `json:"regionId"`
	UsageStrength *int      `json:"usageStrength"`
}

type createWordRequest struct {
	Content       string              `json:"content"`
	Definition    string              `json:"definition"`
	DialectType   string              `json:"dialectType"`
	Pronunciation *string             `json:"pronunciation"`
	Etymology     *string             `json:"etymology"`
	UsageExample  *string             `json:"usageExample"`
	Notes         *string             `json:"notes"`
	Regions       []regionLinkRequest `json:"regions"`
}

type updateWordRequest struct {
	Content       *string `json:"content"`
	Definition    *string `json:"definition"`
	DialectType   *string `json:"dialectType"`
	Pronunciation *string `json:"pronunciation"`
	Etymology     *string `json:"etymology"`
	UsageExample  *string `json:"usageExample"`
	Notes         *string `json:"notes"`
}

type linkRequest struct {
	UsageStrength *int `json:"usageStrength"`
}

type auditRecordResponse struct {
	ID         uuid.UUID      `json:"id"`
	UserID     uuid.UUID      `json:"userId"`
	EntityType string         `json:"entityType"`
	Action     string         `json:"action"`
	Changes    map[string]any `json:"changes"`
	CreatedAt  time.Time      `json:"createdAt"`
}

type wordListResponse struct {
	Words  []wordResponse `json:"words"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

type statsResponse struct {
	MapData []domain.MapEntry `json:"mapData"`
	Stats   struct {
		TotalWords            int `json:"totalWords"`
		TotalRegionsWithWords int `json:"totalRegionsWithWords"`
	} `json:"stats"`
}

// Search handles GET /api/search?q=.
func (h *WordHandler) Search(w http.ResponseWriter, r *http.Request) {
	words, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, map[string]any{"results": toWordResponses(words)})
}

// List handles GET /api/words?dialect=&limit=&offset=.
func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit", 0)
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset", 0)
	if !ok {
		return
	}

	input := word.ListInput{Limit: limit, Offset: offset}
	if d := r.URL.Query().Get("dialect"); d != "" {
		dialect := domain.DialectType(d)
		input.Dialect = &dialect
	}

	result, err := h.svc.List(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, wordListResponse{
		Words:  toWordResponses(result.Words),
		Total:  result.Total,
		Limit:  result.Limit,
		Offset: result.Offset,
	})
}

// Get handles GET /api/words/{id}.
func (h *WordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	wd, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, toWordResponse(wd))
}

// GetByContent handles GET /api/words/lookup?content=.
func (h *WordHandler) GetByContent(w http.ResponseWriter, r *http.Request) {
	wd, err := h.svc.GetByContent(r.Context(), r.URL.Query().Get("content"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, toWordResponse(wd))
}

// Create handles POST /api/words.
func (h *WordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createWordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := word.CreateInput{
		Content:       req.Content,
		Definition:    req.Definition,
		DialectType:   domain.DialectType(req.DialectType),
		Pronunciation: req.Pronunciation,
		Etymology:     req.Etymology,
		UsageExample:  req.UsageExample,
		Notes:         req.Notes,
	}
	for _, link := range req.Regions {
		input.Regions = append(input.Regions, word.RegionLinkInput{
			RegionID:      link.RegionID,
			UsageStrength: link.UsageStrength,
		})
	}

	created, err := h.svc.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusCreated, toWordResponse(created))
}

// Update handles PATCH /api/words/{id}.
func (h *WordHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updateWordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := word.UpdateInput{
		WordID:        id,
		Content:       req.Content,
		Definition:    req.Definition,
		Pronunciation: req.Pronunciation,
		Etymology:     req.Etymology,
		UsageExample:  req.UsageExample,
		Notes:         req.Notes,
	}
	if req.DialectType != nil {
		dialect := domain.DialectType(*req.DialectType)
		input.DialectType = &dialect
	}

	updated, err := h.svc.Update(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, toWordResponse(updated))
}

// Delete handles DELETE /api/words/{id}. Admin only.
func (h *WordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, map[string]uuid.UUID{"id": id})
}

// Regions handles GET /api/words/{id}/regions.
func (h *WordHandler) Regions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	linked, err := h.svc.Regions(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	out := make([]linkedRegionResponse, len(linked))
	for i := range linked {
		out[i] = linkedRegionResponse{
			regionResponse: toRegionResponse(&linked[i].Region),
			UsageStrength:  linked[i].UsageStrength,
		}
	}
	writeData(w, http.StatusOK, map[string]any{"regions": out})
}

// LinkRegion handles PUT /api/words/{id}/regions/{regionId}.
// An empty body links with the default strength.
func (h *WordHandler) LinkRegion(w http.ResponseWriter, r *http.Request) {
	wordID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	regionID, ok := pathUUID(w, r, "regionId")
	if !ok {
		return
	}
	var req linkRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}

	link, err := h.svc.LinkRegion(r.Context(), word.LinkInput{
		WordID:        wordID,
		RegionID:      regionID,
		UsageStrength: req.UsageStrength,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, wordRegionResponse{
		ID:            link.ID,
		WordID:        link.WordID,
		RegionID:      link.RegionID,
		UsageStrength: link.UsageStrength,
	})
}

// UnlinkRegion handles DELETE /api/words/{id}/regions/{regionId}.
func (h *WordHandler) UnlinkRegion(w http.ResponseWriter, r *http.Request) {
	wordID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	regionID, ok := pathUUID(w, r, "regionId")
	if !ok {
		return
	}

	if err := h.svc.UnlinkRegion(r.Context(), wordID, regionID); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, map[string]uuid.UUID{"wordId": wordID, "regionId": regionID})
}

// Map handles GET /api/words/{id}/map.
func (h *WordHandler) Map(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	mapData, err := h.svc.Map(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, map[string]any{"mapData": nonNilEntries(mapData)})
}

// Stats handles GET /api/stats/regions.
func (h *WordHandler) Stats(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Stats(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	var resp statsResponse
	resp.MapData = nonNilEntries(result.MapData)
	resp.Stats.TotalWords = result.Stats.TotalWords
	resp.Stats.TotalRegionsWithWords = result.Stats.TotalRegionsWithWords
	writeData(w, http.StatusOK, resp)
}

func nonNilEntries(entries []domain.MapEntry) []domain.MapEntry {
	if entries == nil {
		return []domain.MapEntry{}
	}
	return entries
}

// History handles GET /api/words/{id}/history. Admin only.
func (h *WordHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	records, err := h.svc.History(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	out := make([]auditRecordResponse, len(records))
	for i, rec := range records {
		changes := rec.Changes
		if changes == nil {
			changes = map[string]any{}
		}
		out[i] = auditRecordResponse{
			ID:         rec.ID,
			UserID:     rec.UserID,
			EntityType: rec.EntityType.String(),
			Action:     rec.Action.String(),
			Changes:    changes,
			CreatedAt:  rec.CreatedAt,
		}
	}
	writeData(w, http.StatusOK, map[string]any{"history": out})
}
