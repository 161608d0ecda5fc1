package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/research-metadata/catalog-api/internal/config"
	"github.com/research-metadata/catalog-api/internal/dto"
	"github.com/research-metadata/catalog-api/internal/services"
)

const refreshCookie = "refresh_token"

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return respond(c, dto.BadRequest[*dto.AuthResponse]("Invalid request body"))
	}
	if err := validateStruct(&req); err != nil {
		return respond(c, dto.BadRequest[*dto.AuthResponse](err.Error()))
	}

	resp := h.authService.Login(&req)
	if resp.Success {
		h.setRefreshCookie(c, resp.ResponseObject.RefreshToken)
	}
	return respond(c, resp)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	resp := h.authService.Refresh(h.refreshToken(c))
	if resp.Success {
		h.setRefreshCookie(c, resp.ResponseObject.RefreshToken)
	}
	return respond(c, resp)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	resp := h.authService.Logout(h.refreshToken(c))
	if resp.Success {
		c.ClearCookie(refreshCookie)
	}
	return respond(c, resp)
}

// refreshToken reads the token from the cookie, falling back to the body for
// clients that do not keep cookies.
func (h *AuthHandler) refreshToken(c *fiber.Ctx) string {
	if token := c.Cookies(refreshCookie); token != "" {
		return token
	}
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return ""
	}
	return req.RefreshToken
}

func (h *AuthHandler) setRefreshCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     refreshCookie,
		Value:    token,
		Expires:  time.Now().Add(h.cfg.JWTRefreshExpiry),
		HTTPOnly: true,
		SameSite: "Strict",
		Path:     "/api/auth",
	})
}
