package handlers

import (
	"Shelved/internal/dto"
	"Shelved/internal/services"
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	categoryService services.CategoryService
}

func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	return c.JSON(h.categoryService.ListCategories())
}

func (h *CategoryHandler) CreateCategory(c *fiber.Ctx) error {
	var req dto.NameDTO
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}
	category, err := h.categoryService.AddCategory(req.Name)
	if err != nil {
		if errors.Is(err, services.ErrEmptyName) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
		}
		return storeError(c, err, "This category already exists", "could not create category")
	}
	return c.Status(http.StatusCreated).JSON(category)
}

func (h *CategoryHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid category ID"})
	}
	if err := h.categoryService.DeleteCategory(uint(id)); err != nil {
		return storeError(c, err, "", "could not delete category")
	}
	return c.SendStatus(http.StatusNoContent)
}
