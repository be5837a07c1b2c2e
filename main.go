package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skilltracker/config"
	"skilltracker/controller"
	"skilltracker/logger"
	"skilltracker/middleware"
	"skilltracker/repository"
	"skilltracker/seeder"
	"skilltracker/service"
	"skilltracker/storage"
	"skilltracker/util"

	_ "skilltracker/docs" // <-- required to register swagger spec
)

// @title           SkillTracker API
// @version         1.0
// @description     Personal portfolio backend: certificates, skills, projects and a public portfolio page.

// @contact.name    API Support
// @contact.email   support@swagger.io

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host            localhost:5000
// @BasePath        /api

// @securityDefinitions.apikey ApiKeyAuth
// @in              header
// @name            x-auth-token
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if _, err := logger.New(cfg.Log); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Flush()

	db, err := util.InitDB(cfg.DB)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	media, err := storage.New(ctx, cfg.Media)
	if err != nil {
		slog.Error("failed to initialize media store", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	certRepo := repository.NewCertificateRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	statsRepo := repository.NewStatsRepository(db)
	healthRepo := repository.NewHealthRepository(db)

	if cfg.SeedDemo {
		seeder.SeedDemo(ctx, db, cfg.DefaultAvatarURL)
	}

	tokens := util.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TTL, cfg.JWT.Issuer)
	mailer := service.NewEmailService(cfg.SMTP, cfg.AppName)

	services := controller.Services{
		Auth:         service.NewAuthService(userRepo, media, tokens, cfg.DefaultAvatarURL),
		Certificates: service.NewCertificateService(certRepo, media),
		Skills:       service.NewSkillService(skillRepo),
		Projects:     service.NewProjectService(projectRepo, skillRepo),
		Portfolio:    service.NewPortfolioService(userRepo, certRepo, skillRepo, projectRepo, mailer, cfg.PublicBaseURL),
		Dashboard:    service.NewDashboardService(statsRepo),
		Health:       healthRepo,
		Tokens:       tokens,
	}

	app := controller.NewApp(cfg.HTTP)
	limiter := middleware.RateLimiter(cfg.RateLimit, middleware.NewCacheStorage(5*time.Minute))
	controller.SetupRoutes(app, services, limiter)

	go func() {
		if err := app.Listen(":" + cfg.HTTP.Port); err != nil {
			slog.Error("server stopped", "error", err)
		}
	}()
	slog.Info("server started", "port", cfg.HTTP.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
