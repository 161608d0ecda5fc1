package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/research-metadata/catalog-api/internal/config"
	"github.com/research-metadata/catalog-api/internal/database"
	"github.com/research-metadata/catalog-api/internal/handlers"
	"github.com/research-metadata/catalog-api/internal/logging"
	"github.com/research-metadata/catalog-api/internal/metrics"
	"github.com/research-metadata/catalog-api/internal/middleware"
	"github.com/research-metadata/catalog-api/internal/repository"
	"github.com/research-metadata/catalog-api/internal/routes"
	"github.com/research-metadata/catalog-api/internal/services"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// DB log handler (ERROR+ async batch)
	dbLogHandler := logging.NewDBHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		dbLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cleanupDone)

	// Repositories
	analysts := repository.NewAnalystRepository(database.DB)
	resources := repository.NewResourceRepository(database.DB)
	dictionaries := repository.NewDictionaryRepository(database.DB)
	dictTables := repository.NewDictTableRepository(database.DB)
	variables := repository.NewVariableRepository(database.DB)
	valueSets := repository.NewValueSetRepository(database.DB)
	valueSetCodes := repository.NewValueSetCodeRepository(database.DB)
	mappings := repository.NewMappingRepository(database.DB)
	users := repository.NewUserRepository(database.DB)
	refreshTokens := repository.NewRefreshTokenRepository(database.DB)

	// Services
	authService := services.NewAuthService(users, refreshTokens, cfg)
	analystService := services.NewAnalystService(analysts)
	resourceService := services.NewResourceService(resources, analysts)
	dictionaryService := services.NewDictionaryService(dictionaries, resources)
	dictTableService := services.NewDictTableService(dictTables, dictionaries)
	variableService := services.NewVariableService(variables, valueSets, dictTables)
	valueSetService := services.NewValueSetService(valueSets)
	valueSetCodeService := services.NewValueSetCodeService(valueSetCodes, valueSets)
	mappingService := services.NewMappingService(mappings, valueSetCodes)
	userService := services.NewUserService(users)

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    4 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(metrics.Middleware())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, routes.Handlers{
		Auth:          handlers.NewAuthHandler(authService, cfg),
		Health:        handlers.NewHealthHandler(),
		Analysts:      handlers.NewAnalystHandler(analystService),
		Resources:     handlers.NewResourceHandler(resourceService),
		Dictionaries:  handlers.NewDictionaryHandler(dictionaryService),
		DictTables:    handlers.NewDictTableHandler(dictTableService),
		Variables:     handlers.NewVariableHandler(variableService),
		ValueSets:     handlers.NewValueSetHandler(valueSetService),
		ValueSetCodes: handlers.NewValueSetCodeHandler(valueSetCodeService),
		Mappings:      handlers.NewMappingHandler(mappingService),
		Users:         handlers.NewUserHandler(userService),
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	dbLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"success":        false,
		"message":        message,
		"responseObject": nil,
		"statusCode":     code,
	})
}
