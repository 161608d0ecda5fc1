package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/research-metadata/catalog-api/internal/config"
	"github.com/research-metadata/catalog-api/internal/dto"
	"github.com/research-metadata/catalog-api/internal/handlers"
	"github.com/research-metadata/catalog-api/internal/middleware"
	"github.com/research-metadata/catalog-api/internal/models"
)

// Handlers bundles everything Setup mounts.
type Handlers struct {
	Auth   *handlers.AuthHandler
	Health *handlers.HealthHandler

	Analysts      *handlers.CRUDHandler[dto.CreateAnalystRequest, dto.UpdateAnalystRequest, models.Analyst]
	Resources     *handlers.CRUDHandler[dto.CreateResourceRequest, dto.UpdateResourceRequest, models.Resource]
	Dictionaries  *handlers.CRUDHandler[dto.CreateDictionaryRequest, dto.UpdateDictionaryRequest, models.Dictionary]
	DictTables    *handlers.CRUDHandler[dto.CreateDictTableRequest, dto.UpdateDictTableRequest, models.DictTable]
	Variables     *handlers.CRUDHandler[dto.CreateVariableRequest, dto.UpdateVariableRequest, models.Variable]
	ValueSets     *handlers.CRUDHandler[dto.CreateValueSetRequest, dto.UpdateValueSetRequest, models.ValueSet]
	ValueSetCodes *handlers.CRUDHandler[dto.CreateValueSetCodeRequest, dto.UpdateValueSetCodeRequest, models.ValueSetCode]
	Mappings      *handlers.CRUDHandler[dto.CreateMappingRequest, dto.UpdateMappingRequest, models.Mapping]
	Users         *handlers.CRUDHandler[dto.CreateUserRequest, dto.UpdateUserRequest, models.User]
}

func Setup(app *fiber.App, cfg *config.Config, h Handlers) {
	// Prometheus exposition, outside the /api group and its rate limiter
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", h.Health.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)
	auth.Post("/logout", h.Auth.Logout)

	// Catalog — JWT required
	protected := api.Group("", middleware.JWTProtected(cfg))
	h.Analysts.Register(protected.Group("/analysts"))
	h.Resources.Register(protected.Group("/resources"))
	h.Dictionaries.Register(protected.Group("/dictionaries"))
	h.DictTables.Register(protected.Group("/dict-tables"))
	h.Variables.Register(protected.Group("/variables"))
	h.ValueSets.Register(protected.Group("/value-sets"))
	h.ValueSetCodes.Register(protected.Group("/value-set-codes"))
	h.Mappings.Register(protected.Group("/mappings"))
	h.Users.Register(protected.Group("/users"))
}
