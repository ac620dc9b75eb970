package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/vndialect/tudien-backend/internal/adapter/cache"
	"github.com/vndialect/tudien-backend/internal/adapter/postgres"
	auditrepo "github.com/vndialect/tudien-backend/internal/adapter/postgres/audit"
	authmethodrepo "github.com/vndialect/tudien-backend/internal/adapter/postgres/authmethod"
	blogrepo "github.com/vndialect/tudien-backend/internal/adapter/postgres/blog"
	regionrepo "github.com/vndialect/tudien-backend/internal/adapter/postgres/region"
	tokenrepo "github.com/vndialect/tudien-backend/internal/adapter/postgres/token"
	userrepo "github.com/vndialect/tudien-backend/internal/adapter/postgres/user"
	wordrepo "github.com/vndialect/tudien-backend/internal/adapter/postgres/word"
	wordofdayrepo "github.com/vndialect/tudien-backend/internal/adapter/postgres/wordofday"
	wordregionrepo "github.com/vndialect/tudien-backend/internal/adapter/postgres/wordregion"
	"github.com/vndialect/tudien-backend/internal/auth"
	"github.com/vndialect/tudien-backend/internal/config"
	authsvc "github.com/vndialect/tudien-backend/internal/service/auth"
	blogsvc "github.com/vndialect/tudien-backend/internal/service/blog"
	regionsvc "github.com/vndialect/tudien-backend/internal/service/region"
	"github.com/vndialect/tudien-backend/internal/service/regionmap"
	usersvc "github.com/vndialect/tudien-backend/internal/service/user"
	wordsvc "github.com/vndialect/tudien-backend/internal/service/word"
	wordofdaysvc "github.com/vndialect/tudien-backend/internal/service/wordofday"
	"github.com/vndialect/tudien-backend/internal/transport/middleware"
	"github.com/vndialect/tudien-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL and the optional Redis cache, wires services and serves HTTP
// until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()
	logger.Info("database connected")

	redisClient := connectCache(ctx, cfg.Cache, logger)
	if redisClient != nil {
		defer redisClient.Close() //nolint:errcheck
	}

	trusted, err := cfg.RateLimit.TrustedPrefixes()
	if err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval, trusted...)
	defer limiter.Stop()

	handler := NewHandler(cfg, logger, pool, redisClient, limiter)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		logger.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("app stopped")
	return nil
}

// connectCache returns nil when caching is disabled. An unreachable Redis is
// logged and the app continues without the cache.
func connectCache(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) *redis.Client {
	if !cfg.Enabled() {
		logger.Info("map cache disabled")
		return nil
	}
	client, err := cache.NewRedis(ctx, cfg)
	if err != nil {
		logger.Warn("map cache unavailable, continuing without it", slog.String("error", err.Error()))
		return nil
	}
	logger.Info("map cache connected", slog.String("addr", cfg.RedisAddr))
	return client
}

// NewHandler wires repositories, services and middleware into the HTTP handler.
// redisClient may be nil.
func NewHandler(
	cfg *config.Config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	redisClient *redis.Client,
	limiter *middleware.RateLimiter,
) http.Handler {
	users := userrepo.New(db)
	tokens := tokenrepo.New(db)
	authMethods := authmethodrepo.New(db)
	regions := regionrepo.New(db)
	words := wordrepo.New(db)
	links := wordregionrepo.New(db)
	wotd := wordofdayrepo.New(db)
	posts := blogrepo.New(db)
	audits := auditrepo.New(db)
	tx := postgres.NewTxManager(db)

	maps := newRegionMap(logger, cfg.Cache, regions, links, redisClient)

	jwtManager := auth.NewJWTManager(cfg.Auth)
	authService := authsvc.NewService(logger, users, tokens, authMethods, tx, jwtManager, cfg.Auth)
	userService := usersvc.NewService(logger, users, audits, tx)

	health := rest.NewHealthHandler(db, Version)
	if redisClient != nil {
		health.WithOptional("cache", rest.PingFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}))
	}

	router := rest.NewRouter(rest.Handlers{
		Health:    health,
		Auth:      rest.NewAuthHandler(authService, userService, logger),
		Words:     rest.NewWordHandler(wordsvc.NewService(logger, cfg.Dictionary, words, links, maps, audits, tx), logger),
		Regions:   rest.NewRegionHandler(regionsvc.NewService(logger, regions, maps), logger),
		WordOfDay: rest.NewWordOfDayHandler(wordofdaysvc.NewService(logger, wotd, words), logger),
		Blog:      rest.NewBlogHandler(blogsvc.NewService(logger, cfg.Blog, posts, users), logger),
		Admin:     rest.NewAdminHandler(userService, logger),
	}, middleware.Chain(
		limiter.Limit(cfg.RateLimit.Requests, cfg.RateLimit.Window),
		middleware.BodyLimit(cfg.Server.MaxBodyBytes),
	))

	// Auth runs before Logger so request logs carry the user ID.
	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.SecureHeaders,
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
		middleware.Logger(logger),
	)(router)
}

// newRegionMap builds the aggregation service. The cache argument stays an
// untyped nil when Redis is off so the service sees no cache at all.
func newRegionMap(
	logger *slog.Logger,
	cfg config.CacheConfig,
	regions *regionrepo.Repo,
	links *wordregionrepo.Repo,
	redisClient *redis.Client,
) *regionmap.Service {
	if redisClient == nil {
		return regionmap.NewService(logger, regions, links, nil)
	}
	return regionmap.NewService(logger, regions, links, cache.NewMapCache(redisClient, cfg.MapTTL))
}
