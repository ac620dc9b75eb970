// Command promote changes a user's role by email address.
// It is used to bootstrap the first admin before anyone can call
// PUT /api/admin/users/{id}/role.
//
// Usage:
//
//	promote --email=user@example.com [--role=admin|user]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/vndialect/tudien-backend/internal/adapter/postgres"
	userrepo "github.com/vndialect/tudien-backend/internal/adapter/postgres/user"
	"github.com/vndialect/tudien-backend/internal/app"
	"github.com/vndialect/tudien-backend/internal/config"
	"github.com/vndialect/tudien-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the user to update")
	roleFlag := flag.String("role", string(domain.UserRoleAdmin), "role to grant: admin or user")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com [--role=admin|user]")
		os.Exit(1)
	}
	role := domain.UserRole(*roleFlag)
	if !role.IsValid() {
		fmt.Fprintf(os.Stderr, "invalid role %q\n", *roleFlag)
		os.Exit(1)
	}

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

	users := userrepo.New(pool)
	user, err := users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(*email)))
	if errors.Is(err, domain.ErrNotFound) {
		logger.Error("no user with this email", slog.String("email", *email))
		os.Exit(1)
	}
	if err != nil {
		logger.Error("get user", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if user.Role == role {
		logger.Info("role unchanged", slog.String("email", user.Email), slog.String("role", role.String()))
		return
	}

	if _, err := users.SetRole(ctx, user.ID, role); err != nil {
		logger.Error("set role", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("role updated",
		slog.String("email", user.Email),
		slog.String("from", user.Role.String()),
		slog.String("to", role.String()),
	)
}
