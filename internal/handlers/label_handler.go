package handlers

import (
	"Shelved/internal/services"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type LabelHandler struct {
	boxService   services.BoxService
	labelService services.LabelService
}

func NewLabelHandler(boxService services.BoxService, labelService services.LabelService) *LabelHandler {
	return &LabelHandler{boxService: boxService, labelService: labelService}
}

// GetLabel serves the QR image as a download named after the box.
func (h *LabelHandler) GetLabel(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid box ID"})
	}
	box, err := h.boxService.GetBoxByID(uint(id))
	if err != nil {
		return storeError(c, err, "", "could not load box")
	}
	png, err := h.labelService.GenerateQR(*box)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "could not generate label"})
	}
	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, h.labelService.LabelFilename(*box)))
	return c.Send(png)
}

// PrintLabel serves the print-formatted view with the embedded QR image.
func (h *LabelHandler) PrintLabel(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid box ID"})
	}
	box, err := h.boxService.GetBoxByID(uint(id))
	if err != nil {
		return storeError(c, err, "", "could not load box")
	}
	html, err := h.labelService.PrintHTML(*box)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "could not render label"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(html)
}
