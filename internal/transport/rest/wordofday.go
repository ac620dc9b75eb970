package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/vndialect/tudien-backend/internal/service/wordofday"
)

type wordOfDayService interface {
	Today(ctx context.Context) (*wordofday.Result, error)
}

// WordOfDayHandler serves the word of the day.
type WordOfDayHandler struct {
	svc wordOfDayService
	log *slog.Logger
}

// NewWordOfDayHandler creates a WordOfDayHandler.
func NewWordOfDayHandler(svc wordOfDayService, logger *slog.Logger) *WordOfDayHandler {
	return &WordOfDayHandler{svc: svc, log: logger.With("handler", "wordofday")}
}

type wordOfDayResponse struct {
	Word  wordResponse `json:"word"`
	Date  string       `json:"date"`
	Stats struct {
		ViewCount int `json:"viewCount"`
	} `json:"stats"`
}

// Today handles GET /api/word-of-the-day.
func (h *WordOfDayHandler) Today(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Today(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	resp := wordOfDayResponse{
		Word: toWordResponse(&result.Word),
		Date: result.Date.Format("2006-01-02"),
	}
	resp.Stats.ViewCount = result.ViewCount
	writeData(w, http.StatusOK, resp)
}
