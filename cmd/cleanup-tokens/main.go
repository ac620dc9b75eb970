// Command cleanup-tokens deletes expired and revoked refresh tokens.
// It is intended to be invoked by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/vndialect/tudien-backend/internal/adapter/postgres"
	authmethodrepo "github.com/vndialect/tudien-backend/internal/adapter/postgres/authmethod"
	tokenrepo "github.com/vndialect/tudien-backend/internal/adapter/postgres/token"
	userrepo "github.com/vndialect/tudien-backend/internal/adapter/postgres/user"
	"github.com/vndialect/tudien-backend/internal/app"
	"github.com/vndialect/tudien-backend/internal/auth"
	"github.com/vndialect/tudien-backend/internal/config"
	authsvc "github.com/vndialect/tudien-backend/internal/service/auth"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := authsvc.NewService(logger, userrepo.New(pool), tokenrepo.New(pool), authmethodrepo.New(pool),
		postgres.NewTxManager(pool), auth.NewJWTManager(cfg.Auth), cfg.Auth)

	deleted, err := svc.CleanupExpiredTokens(ctx)
	if err != nil {
		logger.Error("cleanup tokens failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("refresh tokens cleaned up", slog.Int("deleted", deleted))
}
