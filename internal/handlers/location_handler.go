package handlers

import (
	"Shelved/internal/dto"
	"Shelved/internal/services"
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type LocationHandler struct {
	locationService services.LocationService
}

func NewLocationHandler(locationService services.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

func (h *LocationHandler) ListLocations(c *fiber.Ctx) error {
	return c.JSON(h.locationService.ListLocations())
}

func (h *LocationHandler) CreateLocation(c *fiber.Ctx) error {
	var req dto.NameDTO
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}
	location, err := h.locationService.AddLocation(req.Name)
	if err != nil {
		if errors.Is(err, services.ErrEmptyName) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
		}
		return storeError(c, err, "This location already exists", "could not create location")
	}
	return c.Status(http.StatusCreated).JSON(location)
}

func (h *LocationHandler) DeleteLocation(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid location ID"})
	}
	if err := h.locationService.DeleteLocation(uint(id)); err != nil {
		return storeError(c, err, "", "could not delete location")
	}
	return c.SendStatus(http.StatusNoContent)
}
