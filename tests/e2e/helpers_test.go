//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/vndialect/tudien-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/vndialect/tudien-backend/internal/adapter/postgres/user"
	"github.com/vndialect/tudien-backend/internal/app"
	"github.com/vndialect/tudien-backend/internal/config"
	"github.com/vndialect/tudien-backend/internal/domain"
	"github.com/vndialect/tudien-backend/internal/transport/middleware"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{MaxBodyBytes: 1 << 20},
		Auth: config.AuthConfig{
			JWTSecret:        "test-secret-at-least-32-chars-long!!",
			JWTIssuer:        "test-issuer",
			AccessTokenTTL:   15 * time.Minute,
			RefreshTokenTTL:  720 * time.Hour,
			PasswordHashCost: 4,
			MinPasswordLen:   8,
		},
		Dictionary: config.DictionaryConfig{SearchLimit: 10, DefaultPageSize: 20, MaxPageSize: 100},
		Blog:       config.BlogConfig{PageSize: 9, MaxCommentLength: 1000},
		Cache:      config.CacheConfig{MapTTL: time.Minute},
		CORS:       config.CORSConfig{AllowedOrigins: "*"},
		RateLimit:  config.RateLimitConfig{Requests: 100000, Window: time.Minute, CleanupInterval: time.Minute},
	}
}

// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	cfg := testConfig()
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	t.Cleanup(limiter.Stop)

	srv := httptest.NewServer(app.NewHandler(cfg, logger, pool, nil, limiter))
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool}
}

// ---------------------------------------------------------------------------
// Envelope helpers
// ---------------------------------------------------------------------------

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type response struct {
	Status int
	Body   envelope
}

// data decodes the success payload into v.
func (r response) data(t *testing.T, v any) {
	t.Helper()
	require.True(t, r.Body.Success, "expected success envelope, got status %d error %+v", r.Status, r.Body.Error)
	require.NoError(t, json.Unmarshal(r.Body.Data, v))
}

func (r response) errorCode(t *testing.T) string {
	t.Helper()
	require.False(t, r.Body.Success)
	require.NotNil(t, r.Body.Error)
	return r.Body.Error.Code
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequestWithContext(context.Background(), method, ts.URL+path, &buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return response{Status: resp.StatusCode, Body: env}
}

// ---------------------------------------------------------------------------
// Account helpers
// ---------------------------------------------------------------------------

type session struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         struct {
		ID    uuid.UUID `json:"id"`
		Email string    `json:"email"`
		Name  string    `json:"name"`
		Role  string    `json:"role"`
	} `json:"user"`
}

const testPassword = "correct-horse-battery"

func uniqueEmail(prefix string) string {
	return prefix + "-" + uuid.NewString()[:8] + "@e2e.test"
}

func (ts *testServer) register(t *testing.T, name string) session {
	t.Helper()
	resp := ts.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    uniqueEmail(strings.ToLower(name)),
		"name":     name,
		"password": testPassword,
	})
	require.Equal(t, http.StatusCreated, resp.Status)
	var s session
	resp.data(t, &s)
	return s
}

func (ts *testServer) login(t *testing.T, email string) session {
	t.Helper()
	resp := ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, resp.Status)
	var s session
	resp.data(t, &s)
	return s
}

// registerAdmin registers a user, grants the admin role directly in the
// database and logs in again so the access token carries the role.
func (ts *testServer) registerAdmin(t *testing.T) session {
	t.Helper()
	s := ts.register(t, "Admin")
	_, err := userrepo.New(ts.Pool).SetRole(context.Background(), s.User.ID, domain.UserRoleAdmin)
	require.NoError(t, err)
	return ts.login(t, s.User.Email)
}
