package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resume-match/internal/ai"
	"resume-match/internal/ai/gemini"
	"resume-match/internal/config"
	"resume-match/internal/database"
	"resume-match/internal/database/postgres"
	"resume-match/internal/delivery/http/handler"
	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/delivery/http/routes"
	"resume-match/internal/embedding"
	"resume-match/internal/extractor"
	"resume-match/internal/infrastructure/cache"
	"resume-match/internal/logger"
	"resume-match/internal/repository"
	"resume-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
)

type App struct {
	Fiber  *fiber.App
	Logger *zap.Logger
}

// Bootstrap wires the full application. Postgres is used when DB_HOST is
// set; otherwise the in-process store backs the repositories. Redis and
// Gemini are both optional: a missing cache only disables embedding reuse,
// a missing Gemini key only disables qualitative scoring.
func Bootstrap(ctx context.Context, cfg config.Config) (*App, func() error, error) {
	log, err := logger.New(cfg.App.LogJSON, cfg.App.LogDebug)
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}

	if err := os.MkdirAll(filepath.Join(cfg.App.DataDir, "resumes"), 0o755); err != nil {
		return nil, nil, fmt.Errorf("prepare data dir: %w", err)
	}

	var cleanups []func() error
	cleanup := func() error {
		var first error
		for i := len(cleanups) - 1; i >= 0; i-- {
			if err := cleanups[i](); err != nil && first == nil {
				first = err
			}
		}
		return first
	}

	var (
		db            database.DB
		candidateRepo repository.CandidateRepository
		jobRepo       repository.JobRepository
	)
	if strings.TrimSpace(cfg.Database.DBHost) != "" {
		db, err = postgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		cleanups = append(cleanups, db.Close)
		if err := database.EnsureSchema(ctx, db); err != nil {
			_ = cleanup()
			return nil, nil, fmt.Errorf("ensure schema: %w", err)
		}
		candidateRepo = repository.NewPostgresCandidateRepository(db)
		jobRepo = repository.NewPostgresJobRepository(db)
		log.Info("using postgres store", zap.String("host", cfg.Database.DBHost))
	} else {
		candidateRepo = repository.NewMemoryCandidateRepository()
		jobRepo = repository.NewMemoryJobRepository()
		log.Warn("DB_HOST not set, using in-process store")
	}

	redisCache := cache.NewRedis(cfg.Redis, log)
	cleanups = append(cleanups, redisCache.Close)

	embedClient, err := embedding.NewClient(cfg.Embedding)
	if err != nil {
		_ = cleanup()
		return nil, nil, fmt.Errorf("build embedding client: %w", err)
	}
	var embedder embedding.Embedder = embedding.NewCached(
		embedClient, redisCache, cfg.Embedding.Model, cfg.Embedding.CacheTTL, log,
	)

	var assessor ai.Assessor
	if strings.TrimSpace(cfg.Gemini.APIKey) != "" {
		generator, err := gemini.NewGenerator(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			_ = cleanup()
			return nil, nil, fmt.Errorf("build gemini client: %w", err)
		}
		assessor = gemini.NewAssessor(generator, log)
	} else {
		log.Warn("GEMINI_API_KEY not set, qualitative scoring disabled")
	}

	ex := extractor.New(cfg.Matching.PhoneRegion, log)

	candidateUC := usecase.NewCandidateUsecase(candidateRepo, ex, embedder, cfg.App.DataDir, log)
	jobUC := usecase.NewJobUsecase(jobRepo, embedder, log)
	matchUC := usecase.NewMatchUsecase(jobRepo, candidateRepo, assessor, cfg.Matching, log)

	f := fiber.New(fiber.Config{
		AppName:   cfg.App.AppName,
		BodyLimit: 20 * 1024 * 1024,
	})
	f.Use(middleware.NewErrorMiddleware(log).Middleware())
	f.Use(middleware.NewAccessLogMiddleware(log).Middleware())

	registry := routes.NewRegistry(
		handler.NewHealthHandler(dbPinger(db), redisCache),
		handler.NewCandidateHandler(candidateUC),
		handler.NewJobHandler(jobUC),
		handler.NewMatchHandler(matchUC),
	)
	registry.Register(f)

	return &App{Fiber: f, Logger: log}, cleanup, nil
}

// dbPinger keeps a nil database out of the health handler; a typed nil
// inside the interface would report "down" instead of "disabled".
func dbPinger(db database.DB) handler.Pinger {
	if db == nil {
		return nil
	}
	return db
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
