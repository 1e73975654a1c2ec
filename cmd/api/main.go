package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/collegemonitor/monitor-api/internal/config"
	"github.com/collegemonitor/monitor-api/internal/database"
	"github.com/collegemonitor/monitor-api/internal/handler"
	"github.com/collegemonitor/monitor-api/internal/middleware"
	"github.com/collegemonitor/monitor-api/internal/models"
	"github.com/collegemonitor/monitor-api/internal/repository"
	"github.com/collegemonitor/monitor-api/internal/router"
	"github.com/collegemonitor/monitor-api/internal/service"
	"github.com/collegemonitor/monitor-api/internal/source"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Admin{}, &models.Student{}, &models.Activity{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	} else {
		logger.Warn().Msg("redis url not configured, dashboard caching disabled")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	adminRepo := repository.NewAdminRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	if err := seedDefaultAdmin(adminRepo, logger); err != nil {
		log.Fatalf("failed to seed default admin: %v", err)
	}

	adapters := []source.Adapter{
		source.NewGitHubAdapter(source.GitHubConfig{
			BaseURL: cfg.GitHubAPIBaseURL,
			Token:   cfg.GitHubAuthToken(),
			Timeout: cfg.FetchTimeout,
		}, logger),
		source.NewLeetCodeAdapter(logger),
		source.NewLinkedInAdapter(logger),
	}

	authService := service.NewAuthService(adminRepo, validate, cfg.JWTSecret, cfg.SessionTTL, logger)
	studentService := service.NewStudentService(studentRepo, validate, logger)
	activityService := service.NewActivityService(activityRepo, logger)
	syncService := service.NewSyncService(studentRepo, activityService, adapters, cfg.SyncStudentDelay, logger)
	dashboardService := service.NewDashboardService(studentRepo, redisClient, cfg.DashboardCacheTTL, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:      handler.NewAuthHandler(authService, logger),
		StudentHandler:   handler.NewStudentHandler(studentService, logger),
		ActivityHandler:  handler.NewActivityHandler(activityService, logger),
		SyncHandler:      handler.NewSyncHandler(syncService, logger),
		DashboardHandler: handler.NewDashboardHandler(dashboardService, logger),
		JWTMiddleware:    middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

// seedDefaultAdmin creates an initial account on an empty admin table so the
// panel is reachable after first deploy. The password must be changed.
func seedDefaultAdmin(admins repository.AdminRepository, logger zerolog.Logger) error {
	ctx := context.Background()

	total, err := admins.Count(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		return nil
	}

	hash, err := service.HashPassword("admin123")
	if err != nil {
		return err
	}

	admin := models.Admin{Username: "admin", PasswordHash: hash}
	if err := admins.Create(ctx, &admin); err != nil {
		return err
	}

	logger.Warn().Msg("seeded default admin account, change its password immediately")
	return nil
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
