package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/vndialect/tudien-backend/internal/domain"
)

type regionService interface {
	List(ctx context.Context, level *domain.RegionLevel) ([]domain.Region, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Region, error)
	Provinces(ctx context.Context, id uuid.UUID) ([]string, error)
}

// RegionHandler serves the region hierarchy.
type RegionHandler struct {
	svc regionService
	log *slog.Logger
}

// NewRegionHandler creates a RegionHandler.
func NewRegionHandler(svc regionService, logger *slog.Logger) *RegionHandler {
	return &RegionHandler{svc: svc, log: logger.With("handler", "region")}
}

// List handles GET /api/regions?level=.
func (h *RegionHandler) List(w http.ResponseWriter, r *http.Request) {
	var level *domain.RegionLevel
	if l := r.URL.Query().Get("level"); l != "" {
		lv := domain.RegionLevel(l)
		level = &lv
	}

	regions, err := h.svc.List(r.Context(), level)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	out := make([]regionResponse, len(regions))
	for i := range regions {
		out[i] = toRegionResponse(&regions[i])
	}
	writeData(w, http.StatusOK, map[string]any{"regions": out})
}

// Get handles GET /api/regions/{id}.
func (h *RegionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	region, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, toRegionResponse(region))
}

// Provinces handles GET /api/regions/{id}/provinces.
// Unknown regions yield an empty list, not 404.
func (h *RegionHandler) Provinces(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	codes, err := h.svc.Provinces(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if codes == nil {
		codes = []string{}
	}

	writeData(w, http.StatusOK, map[string]any{"provinces": codes})
}
