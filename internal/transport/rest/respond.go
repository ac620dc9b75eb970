package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/vndialect/tudien-backend/internal/domain"
)

// Error codes of the failure envelope.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeBadRequest = "BAD_REQUEST"
	CodeNotFound   = "NOT_FOUND"
	CodeUnauth     = "UNAUTHORIZED"
	CodeForbidden  = "FORBIDDEN"
	CodeConflict   = "CONFLICT"
	CodeTooLarge   = "PAYLOAD_TOO_LARGE"
	CodeInternal   = "INTERNAL_ERROR"
)

type successBody struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorBody struct {
	Success bool      `json:"success"`
	Error   errorInfo `json:"error"`
}

type errorInfo struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// writeData writes the success envelope.
func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, successBody{Success: true, Data: data})
}

func writeFailure(w http.ResponseWriter, status int, code, message string, details map[string][]string) {
	writeJSON(w, status, errorBody{Error: errorInfo{Code: code, Message: message, Details: details}})
}

// writeError maps a service error to the failure envelope. Unknown errors are
// logged and reported as INTERNAL_ERROR without leaking their text.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeFailure(w, http.StatusBadRequest, CodeValidation,
			"Validation failed. Please check your input.", fieldDetails(ve))
	case errors.Is(err, domain.ErrValidation):
		writeFailure(w, http.StatusBadRequest, CodeValidation, err.Error(), nil)
	case errors.Is(err, domain.ErrNotFound):
		writeFailure(w, http.StatusNotFound, CodeNotFound, "Resource not found", nil)
	case errors.Is(err, domain.ErrUnauthorized):
		writeFailure(w, http.StatusUnauthorized, CodeUnauth, "Authentication required", nil)
	case errors.Is(err, domain.ErrForbidden):
		writeFailure(w, http.StatusForbidden, CodeForbidden, "You do not have permission to perform this action", nil)
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeFailure(w, http.StatusConflict, CodeConflict, "Resource already exists", nil)
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeFailure(w, http.StatusInternalServerError, CodeInternal,
			"An unexpected error occurred. Please try again later.", nil)
	}
}

func fieldDetails(ve *domain.ValidationError) map[string][]string {
	details := make(map[string][]string, len(ve.Errors))
	for _, fe := range ve.Errors {
		details[fe.Field] = append(details[fe.Field], fe.Message)
	}
	return details
}

// decodeJSON reads the request body into dst. It writes the failure response
// itself and returns false when the body is unusable.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		writeFailure(w, http.StatusRequestEntityTooLarge, CodeTooLarge, "Payload too large", nil)
	case errors.Is(err, io.EOF):
		writeFailure(w, http.StatusBadRequest, CodeBadRequest, "request body is required", nil)
	default:
		writeFailure(w, http.StatusBadRequest, CodeBadRequest, "invalid request body", nil)
	}
	return false
}

// pathUUID parses a UUID path value. Malformed IDs are reported as
// VALIDATION_ERROR on the named field.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeFailure(w, http.StatusBadRequest, CodeValidation, "Validation failed. Please check your input.",
			map[string][]string{name: {"Invalid ID format"}})
		return uuid.Nil, false
	}
	return id, true
}

// queryInt returns the integer query parameter or def when absent.
func queryInt(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, CodeValidation, "Validation failed. Please check your input.",
			map[string][]string{name: {"must be an integer"}})
		return 0, false
	}
	return v, true
}
