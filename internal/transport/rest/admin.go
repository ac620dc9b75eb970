package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/vndialect/tudien-backend/internal/domain"
	"github.com/vndialect/tudien-backend/internal/service/user"
)

type userAdminService interface {
	SetUserRole(ctx context.Context, targetUserID uuid.UUID, role domain.UserRole) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) (*user.ListResult, error)
}

// AdminHandler serves admin REST endpoints.
type AdminHandler struct {
	users userAdminService
	log   *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(users userAdminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		users: users,
		log:   logger.With("handler", "admin"),
	}
}

type setRoleRequest struct {
	Role string `json:"role"`
}

type userListResponse struct {
	Users  []userResponse `json:"users"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// ListUsers returns a page of users.
// GET /api/admin/users?limit=50&offset=0
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit", 50)
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset", 0)
	if !ok {
		return
	}

	res, err := h.users.ListUsers(r.Context(), limit, offset)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	resp := userListResponse{
		Users:  make([]userResponse, len(res.Users)),
		Total:  res.Total,
		Limit:  res.Limit,
		Offset: res.Offset,
	}
	for i := range res.Users {
		resp.Users[i] = toUserResponse(&res.Users[i])
	}
	writeData(w, http.StatusOK, resp)
}

// SetRole changes a user's role.
// PUT /api/admin/users/{id}/role
func (h *AdminHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req setRoleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.users.SetUserRole(r.Context(), id, domain.UserRole(req.Role))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, toUserResponse(updated))
}
