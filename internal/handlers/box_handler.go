package handlers

import (
	"Shelved/internal/dto"
	"Shelved/internal/services"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type BoxHandler struct {
	boxService  services.BoxService
	itemService services.ItemService
	catalog     services.CatalogService
}

func NewBoxHandler(boxService services.BoxService, itemService services.ItemService, catalog services.CatalogService) *BoxHandler {
	return &BoxHandler{boxService: boxService, itemService: itemService, catalog: catalog}
}

// ListBoxes applies the in-memory filter: free-text query plus exact
// location/category matches, newest box first.
func (h *BoxHandler) ListBoxes(c *fiber.Ctx) error {
	boxes := h.boxService.ListBoxes(c.Query("q"), c.Query("location"), c.Query("category"))
	return c.JSON(boxes)
}

func (h *BoxHandler) GetCatalog(c *fiber.Ctx) error {
	return c.JSON(dto.CatalogDTO{
		Boxes:      h.catalog.Boxes(),
		Locations:  h.catalog.Locations(),
		Categories: h.catalog.Categories(),
	})
}

func (h *BoxHandler) CreateBox(c *fiber.Ctx) error {
	var req dto.BoxCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "name, location and category are required"})
	}
	box, err := h.boxService.CreateBox(req.Name, req.Location, req.Category, req.Description)
	if err != nil {
		return storeError(c, err, "box already exists", "could not create box")
	}
	return c.Status(http.StatusCreated).JSON(box)
}

// GetBoxByID opens the detail view: the box plus its checklist.
func (h *BoxHandler) GetBoxByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid box ID"})
	}
	return h.detail(c, uint(id))
}

// DeepLink resolves GET /?box=<id>, the URL the QR labels encode. Without
// the parameter it reports readiness.
func (h *BoxHandler) DeepLink(c *fiber.Ctx) error {
	boxParam := c.Query("box")
	if boxParam == "" {
		return c.JSON(fiber.Map{"name": "Shelved", "ready": h.catalog.Ready()})
	}
	id, err := strconv.ParseUint(boxParam, 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid box ID"})
	}
	return h.detail(c, uint(id))
}

func (h *BoxHandler) detail(c *fiber.Ctx, id uint) error {
	box, err := h.boxService.GetBoxByID(id)
	if err != nil {
		return storeError(c, err, "", "could not load box")
	}
	items, err := h.itemService.LoadItems(*box)
	if err != nil {
		return storeError(c, err, "", "could not load items")
	}
	return c.JSON(dto.BoxDetailDTO{Box: *box, Items: items})
}

func (h *BoxHandler) UpdateBox(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid box ID"})
	}
	var req dto.BoxUpdateDTO
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "name, location and category are required"})
	}
	box, err := h.boxService.UpdateBox(uint(id), req.Name, req.Location, req.Category, req.Description)
	if err != nil {
		return storeError(c, err, "", "could not update box")
	}
	return c.JSON(box)
}

func (h *BoxHandler) DeleteBox(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid box ID"})
	}
	if err := h.boxService.DeleteBox(uint(id)); err != nil {
		return storeError(c, err, "", "could not delete box")
	}
	return c.SendStatus(http.StatusNoContent)
}

// CloseBox clears the open detail view.
func (h *BoxHandler) CloseBox(c *fiber.Ctx) error {
	h.boxService.CloseBox()
	return c.SendStatus(http.StatusNoContent)
}
