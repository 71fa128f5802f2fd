package handlers

import (
	"Shelved/internal/dto"
	"Shelved/internal/services"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type ItemHandler struct {
	itemService services.ItemService
	boxService  services.BoxService
}

func NewItemHandler(itemService services.ItemService, boxService services.BoxService) *ItemHandler {
	return &ItemHandler{itemService: itemService, boxService: boxService}
}

func (h *ItemHandler) ListItems(c *fiber.Ctx) error {
	boxID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid box ID"})
	}
	box, err := h.boxService.GetBoxByID(uint(boxID))
	if err != nil {
		return storeError(c, err, "", "could not load box")
	}
	items, err := h.itemService.LoadItems(*box)
	if err != nil {
		return storeError(c, err, "", "could not load items")
	}
	return c.JSON(items)
}

func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	boxID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid box ID"})
	}
	var req dto.ItemCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if err := validate.Struct(req); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) {
			for _, fieldError := range fieldErrors {
				if fieldError.Field() == "Quantity" {
					return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "quantity must be at least 1"})
				}
			}
		}
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}
	item, err := h.itemService.AddItem(uint(boxID), req.Name, req.Quantity)
	if err != nil {
		if errors.Is(err, services.ErrEmptyItemName) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
		}
		return storeError(c, err, "", "could not create item")
	}
	return c.Status(http.StatusCreated).JSON(item)
}

func (h *ItemHandler) ToggleItem(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid item ID"})
	}
	item, err := h.itemService.ToggleItem(uint(id))
	if err != nil {
		return storeError(c, err, "", "could not toggle item")
	}
	return c.JSON(item)
}

// DeleteItem has no confirmation step, unlike box deletion. The asymmetry is
// deliberate and mirrors the product behavior.
func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid item ID"})
	}
	if err := h.itemService.DeleteItem(uint(id)); err != nil {
		return storeError(c, err, "", "could not delete item")
	}
	return c.SendStatus(http.StatusNoContent)
}
