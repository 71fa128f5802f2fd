package handlers

import (
	"Shelved/internal/dto"
	"Shelved/internal/services"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// AuthCookie is the one durable client-side key: "true" when authenticated,
// absent otherwise.
const AuthCookie = "authenticated"

type AuthHandler struct {
	gate services.GateService
}

func NewAuthHandler(gate services.GateService) *AuthHandler {
	return &AuthHandler{gate: gate}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.AuthDTO
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "password is required"})
	}
	if !h.gate.Authenticate(req.Password) {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "wrong password"})
	}
	c.Cookie(&fiber.Cookie{
		Name:     AuthCookie,
		Value:    "true",
		Expires:  time.Now().AddDate(10, 0, 0),
		HTTPOnly: true,
	})
	return c.SendStatus(http.StatusNoContent)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     AuthCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.SendStatus(http.StatusNoContent)
}

// RequireGate guards every route behind the shared-password gate.
func (h *AuthHandler) RequireGate(c *fiber.Ctx) error {
	if c.Cookies(AuthCookie) != "true" {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	}
	return c.Next()
}
