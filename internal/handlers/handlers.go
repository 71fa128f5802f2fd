package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validate = validator.New()

// storeError maps store failures onto the API's error taxonomy: duplicate
// names get a specific 409 message, missing rows a 404, everything else the
// generic message. Handlers never mutate catalog state on these paths.
func storeError(c *fiber.Ctx, err error, duplicateMsg, genericMsg string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return c.Status(http.StatusConflict).JSON(fiber.Map{"error": duplicateMsg})
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": genericMsg})
}
