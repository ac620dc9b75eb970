package rest

import (
	"net/http"

	"github.com/vndialect/tudien-backend/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Words     *WordHandler
	Regions   *RegionHandler
	WordOfDay *WordOfDayHandler
	Blog      *BlogHandler
	Admin     *AdminHandler
}

// NewRouter registers all routes. api wraps every /api route (rate limit and
// body limit); health routes bypass it.
func NewRouter(h Handlers, api middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	routes := http.NewServeMux()
	authed := func(fn http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(fn)
	}

	routes.HandleFunc("POST /api/auth/register", h.Auth.Register)
	routes.HandleFunc("POST /api/auth/login", h.Auth.Login)
	routes.HandleFunc("POST /api/auth/refresh", h.Auth.Refresh)
	routes.Handle("POST /api/auth/logout", authed(h.Auth.Logout))
	routes.Handle("GET /api/auth/me", authed(h.Auth.Me))

	routes.HandleFunc("GET /api/search", h.Words.Search)
	routes.HandleFunc("GET /api/words", h.Words.List)
	routes.HandleFunc("GET /api/words/lookup", h.Words.GetByContent)
	routes.HandleFunc("GET /api/words/{id}", h.Words.Get)
	routes.Handle("POST /api/words", authed(h.Words.Create))
	routes.Handle("PATCH /api/words/{id}", authed(h.Words.Update))
	routes.Handle("DELETE /api/words/{id}", authed(h.Words.Delete))
	routes.HandleFunc("GET /api/words/{id}/regions", h.Words.Regions)
	routes.Handle("PUT /api/words/{id}/regions/{regionId}", authed(h.Words.LinkRegion))
	routes.Handle("DELETE /api/words/{id}/regions/{regionId}", authed(h.Words.UnlinkRegion))
	routes.HandleFunc("GET /api/words/{id}/map", h.Words.Map)
	routes.Handle("GET /api/words/{id}/history", authed(h.Words.History))
	routes.HandleFunc("GET /api/stats/regions", h.Words.Stats)

	routes.HandleFunc("GET /api/regions", h.Regions.List)
	routes.HandleFunc("GET /api/regions/{id}", h.Regions.Get)
	routes.HandleFunc("GET /api/regions/{id}/provinces", h.Regions.Provinces)

	routes.HandleFunc("GET /api/word-of-the-day", h.WordOfDay.Today)

	routes.HandleFunc("GET /api/blog", h.Blog.List)
	routes.Handle("POST /api/blog", authed(h.Blog.Create))
	routes.HandleFunc("GET /api/blog/{slug}", h.Blog.Get)
	routes.HandleFunc("GET /api/blog/{slug}/comments", h.Blog.Comments)
	routes.Handle("POST /api/blog/{slug}/comments", authed(h.Blog.CreateComment))

	routes.Handle("GET /api/admin/users", authed(h.Admin.ListUsers))
	routes.Handle("PUT /api/admin/users/{id}/role", authed(h.Admin.SetRole))

	routes.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		writeFailure(w, http.StatusNotFound, CodeNotFound, "Route not found", nil)
	})

	mux.Handle("/api/", api(routes))

	return mux
}
