package handlers

import (
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/dto"
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/identity"
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
)

type SavedHandler struct {
	savedService *services.SavedItemService
}

func NewSavedHandler(savedService *services.SavedItemService) *SavedHandler {
	return &SavedHandler{savedService: savedService}
}

// Toggle flips membership server-side and reports the direction taken.
func (h *SavedHandler) Toggle(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.ToggleSavedRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	result, err := h.savedService.Toggle(userID, req.ContentType, req.ContentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(result)
}

func (h *SavedHandler) List(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	items, err := h.savedService.ListForUser(userID, c.Query("content_type"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list saved items",
		})
	}
	return c.JSON(fiber.Map{"items": items})
}
