package handlers

import (
	"time"

	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/cache"
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/database"
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/dto"
	"github.com/gofiber/fiber/v2"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(); err != nil {
		dbStatus = "down"
	}

	cacheStatus := "disabled"
	if cache.Client != nil {
		cacheStatus = "ok"
		if err := cache.Client.Ping(c.UserContext()).Err(); err != nil {
			cacheStatus = "down"
		}
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
		Cache:     cacheStatus,
	})
}
