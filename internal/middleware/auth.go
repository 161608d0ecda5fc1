package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"

	"github.com/research-metadata/catalog-api/internal/config"
	"github.com/research-metadata/catalog-api/internal/dto"
)

// JWTProtected gates a route group behind a valid HS256 access token.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).
				JSON(dto.Unauthorized[*struct{}]("Unauthorized: invalid or expired token"))
		},
	})
}
