// Copyright (c) 2025 Stablio
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"context"
	"fmt"
	stdlog "log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/stablio/api/auth"
	authHandlers "github.com/stablio/api/auth/handlers"
	authRepository "github.com/stablio/api/auth/repository"
	authServices "github.com/stablio/api/auth/services"
	"github.com/stablio/api/bookmarks"
	bookmarkHandlers "github.com/stablio/api/bookmarks/handlers"
	bookmarkRepository "github.com/stablio/api/bookmarks/repository"
	bookmarkServices "github.com/stablio/api/bookmarks/services"
	"github.com/stablio/api/catalog"
	catalogHandlers "github.com/stablio/api/catalog/handlers"
	catalogRepository "github.com/stablio/api/catalog/repository"
	catalogServices "github.com/stablio/api/catalog/services"
	"github.com/stablio/api/feedback"
	feedbackHandlers "github.com/stablio/api/feedback/handlers"
	feedbackRepository "github.com/stablio/api/feedback/repository"
	feedbackServices "github.com/stablio/api/feedback/services"
	"github.com/stablio/api/internal/cache"
	"github.com/stablio/api/internal/database/postgres"
	"github.com/stablio/api/internal/middleware/requestid"
	"github.com/stablio/api/internal/pkg/log"
	platformconfig "github.com/stablio/api/internal/platform/config"
	"github.com/stablio/api/internal/types"
	"github.com/stablio/api/submissions"
	submissionHandlers "github.com/stablio/api/submissions/handlers"
	submissionRepository "github.com/stablio/api/submissions/repository"
	submissionServices "github.com/stablio/api/submissions/services"
)

func main() {
	cfg, err := platformconfig.LoadFromEnv()
	if err != nil {
		stdlog.Fatalf("Failed to load platform config: %v", err)
	}
	if cfg.Server.Debug {
		log.InfoStruct(cfg.Server, cfg.App, cfg.Cache, cfg.RateLimits)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			// Handlers write their own error bodies; don't override them.
			if len(c.Response().Body()) > 0 {
				return nil
			}

			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.WebDomain,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, PATCH, OPTIONS",
	}))

	ctx := context.Background()

	pgClient, err := postgres.NewClient(ctx, &cfg.Database.Postgres)
	if err != nil {
		stdlog.Fatalf("Failed to create postgres client: %v", err)
	}
	defer pgClient.Close()

	cacheService := buildCacheService(ctx, cfg)
	defer cacheService.Close()

	// Repositories
	catalogRepo := catalogRepository.NewPostgresRepository(pgClient)
	bookmarkRepo := bookmarkRepository.NewPostgresRepository(pgClient)
	submissionRepo := submissionRepository.NewPostgresRepository(pgClient)
	feedbackRepo := feedbackRepository.NewPostgresRepository(pgClient)
	authRepo := authRepository.NewPostgresRepository(pgClient)

	// Services
	catalogService := catalogServices.NewService(catalogRepo, cacheService, &cfg.App)
	bookmarkService := bookmarkServices.NewService(bookmarkRepo, catalogRepo)
	submissionService := submissionServices.NewService(submissionRepo, catalogRepo)
	feedbackService := feedbackServices.NewService(feedbackRepo)
	authService := authServices.NewService(authRepo, cfg.JWT)

	secureCookies := !cfg.Server.Debug

	catalog.RegisterRoutes(app, &catalog.Handlers{
		CatalogHandler: catalogHandlers.NewCatalogHandler(catalogService),
	})
	bookmarks.RegisterRoutes(app, &bookmarks.Handlers{
		BookmarkHandler: bookmarkHandlers.NewBookmarkHandler(bookmarkService),
	}, cfg)
	submissions.RegisterRoutes(app, &submissions.Handlers{
		SubmissionHandler: submissionHandlers.NewSubmissionHandler(submissionService),
	}, cfg, func(ctx context.Context, u types.UserContext) (bool, error) {
		return authService.IsAdmin(ctx, u.Email)
	})
	feedback.RegisterRoutes(app, &feedback.Handlers{
		FeedbackHandler: feedbackHandlers.NewFeedbackHandler(feedbackService),
	}, cfg)
	auth.RegisterRoutes(app, &auth.Handlers{
		AuthHandler: authHandlers.NewAuthHandler(authService, secureCookies),
	}, cfg)

	app.Get("/healthz", func(c *fiber.Ctx) error {
		if err := pgClient.HealthCheck(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("Stablio API listening on %s", addr)
	if err := app.Listen(addr); err != nil {
		stdlog.Fatalf("Server stopped: %v", err)
	}
}

// buildCacheService picks the configured cache backend. Redis failures
// fall back to the in-memory backend so discover paging keeps working on
// a single node.
func buildCacheService(ctx context.Context, cfg *platformconfig.Config) *cache.Service {
	serviceConfig := cache.Config{
		Prefix:     cfg.Cache.Prefix,
		DefaultTTL: cfg.Cache.TTL,
	}

	if !cfg.Cache.Enabled {
		return cache.NewService(nil, serviceConfig)
	}

	if cfg.Cache.Backend == "redis" {
		redisCache, err := cache.NewRedisCache(ctx, cfg.Cache.Redis)
		if err == nil {
			log.Info("Cache backend: redis at %s", cfg.Cache.Redis.Address)
			return cache.NewService(redisCache, serviceConfig)
		}
		log.Warn("Redis unavailable (%v), falling back to in-memory cache", err)
	}

	return cache.NewService(cache.NewMemoryCache(time.Minute), serviceConfig)
}
