package handlers

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/cache"
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/dto"
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/identity"
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
)

const (
	settingsCacheKey = "settings:all"
	settingsTTL      = 5 * time.Minute
)

type SettingsHandler struct {
	settingsService *services.SettingsService
}

func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetAll serves the public settings map with cache-aside.
func (h *SettingsHandler) GetAll(c *fiber.Ctx) error {
	var settings map[string]json.RawMessage
	err := cache.Aside(c.UserContext(), settingsCacheKey, &settings, settingsTTL, func() error {
		var fetchErr error
		settings, fetchErr = h.settingsService.GetAll()
		return fetchErr
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch settings",
		})
	}
	return c.JSON(settings)
}

func (h *SettingsHandler) Set(c *fiber.Ctx) error {
	adminID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	key := c.Params("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Key parameter is required",
		})
	}

	var req dto.SetSettingRequest
	if err := c.BodyParser(&req); err != nil || len(req.Value) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Value is required",
		})
	}

	if err := h.settingsService.Set(adminID, key, req.Value); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	cache.Invalidate(c.UserContext(), settingsCacheKey)
	return c.JSON(fiber.Map{"message": "Setting updated"})
}

func (h *SettingsHandler) Delete(c *fiber.Ctx) error {
	adminID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	key := c.Params("key")
	if err := h.settingsService.Delete(adminID, key); err != nil {
		if errors.Is(err, services.ErrSettingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Setting not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete setting",
		})
	}

	cache.Invalidate(c.UserContext(), settingsCacheKey)
	return c.JSON(fiber.Map{"message": "Setting deleted"})
}
