// Command seeder loads the Vietnam region hierarchy, sample dialect words
// with their region links, an admin account and sample blog posts.
// Re-running it is safe: regions are upserted by code and existing words,
// users and posts are left as they are.
//
// Flags:
//
//	--phase          comma-separated list of phases to run (default: all)
//	                 phases: regions, words, admin, blog
//	--dry-run        parse the dataset without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/vndialect/tudien-backend/internal/adapter/cache"
	"github.com/vndialect/tudien-backend/internal/adapter/postgres"
	authmethodrepo "github.com/vndialect/tudien-backend/internal/adapter/postgres/authmethod"
	blogrepo "github.com/vndialect/tudien-backend/internal/adapter/postgres/blog"
	regionrepo "github.com/vndialect/tudien-backend/internal/adapter/postgres/region"
	tokenrepo "github.com/vndialect/tudien-backend/internal/adapter/postgres/token"
	userrepo "github.com/vndialect/tudien-backend/internal/adapter/postgres/user"
	wordrepo "github.com/vndialect/tudien-backend/internal/adapter/postgres/word"
	wordregionrepo "github.com/vndialect/tudien-backend/internal/adapter/postgres/wordregion"
	"github.com/vndialect/tudien-backend/internal/app"
	"github.com/vndialect/tudien-backend/internal/app/seeder"
	"github.com/vndialect/tudien-backend/internal/auth"
	"github.com/vndialect/tudien-backend/internal/config"
	authsvc "github.com/vndialect/tudien-backend/internal/service/auth"
)

// Compile-time interface assertions.
var (
	_ seeder.RegionRepo = (*regionrepo.Repo)(nil)
	_ seeder.WordRepo   = (*wordrepo.Repo)(nil)
	_ seeder.LinkRepo   = (*wordregionrepo.Repo)(nil)
	_ seeder.UserRepo   = (*userrepo.Repo)(nil)
	_ seeder.PostRepo   = (*blogrepo.Repo)(nil)
	_ seeder.Registrar  = (*authsvc.Service)(nil)
	_ seeder.MapCache   = (*cache.MapCache)(nil)
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "parse the dataset without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	// Load app config (for DB connection and auth settings).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	dataset, err := seeder.LoadDataset(seederCfg.DatasetPath)
	if err != nil {
		logger.Error("load dataset", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	registrar := authsvc.NewService(logger, users, tokenrepo.New(pool), authmethodrepo.New(pool),
		postgres.NewTxManager(pool), auth.NewJWTManager(appCfg.Auth), appCfg.Auth)

	repos := seeder.Repos{
		Regions:   regionrepo.New(pool),
		Words:     wordrepo.New(pool),
		Links:     wordregionrepo.New(pool),
		Users:     users,
		Registrar: registrar,
		Posts:     blogrepo.New(pool),
	}

	// Seeded links must not be hidden behind a map cached before the run.
	if appCfg.Cache.Enabled() && !seederCfg.DryRun {
		redisClient, err := cache.NewRedis(ctx, appCfg.Cache)
		if err != nil {
			logger.Warn("redis unavailable, map cache not invalidated", slog.String("error", err.Error()))
		} else {
			defer redisClient.Close()
			repos.Maps = cache.NewMapCache(redisClient, appCfg.Cache.MapTTL)
		}
	}

	pipeline := seeder.NewPipeline(logger, repos, dataset, *seederCfg)

	if err := pipeline.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
