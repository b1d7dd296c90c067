package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/cache"
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/dto"
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/identity"
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/models"
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const eventListTTL = 60 * time.Second

type EventHandler struct {
	eventService *services.EventService
}

func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// List serves the public event listing with a short cache-aside window on the
// first page, which is what the landing page hits.
func (h *EventHandler) List(c *fiber.Ctx) error {
	status := c.Query("status")
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	type listing struct {
		Events []models.Event `json:"events"`
		Total  int64          `json:"total"`
	}

	var payload listing
	fetch := func() error {
		events, total, err := h.eventService.List(status, limit, offset)
		if err != nil {
			return err
		}
		payload = listing{Events: events, Total: total}
		return nil
	}

	var err error
	if offset == 0 {
		err = cache.Aside(c.UserContext(), eventListKey(status, limit), &payload, eventListTTL, fetch)
	} else {
		err = fetch()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list events",
		})
	}

	return c.JSON(payload)
}

func (h *EventHandler) Get(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid event id",
		})
	}

	event, err := h.eventService.Get(eventID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Event not found",
		})
	}
	return c.JSON(event)
}

func (h *EventHandler) Create(c *fiber.Ctx) error {
	adminID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	event, err := h.eventService.Create(adminID, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	h.invalidateListings(c)
	return c.Status(fiber.StatusCreated).JSON(event)
}

func (h *EventHandler) Update(c *fiber.Ctx) error {
	adminID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid event id",
		})
	}

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	event, err := h.eventService.Update(adminID, eventID, &req)
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Event not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update event",
		})
	}

	h.invalidateListings(c)
	return c.JSON(event)
}

func (h *EventHandler) Delete(c *fiber.Ctx) error {
	adminID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid event id",
		})
	}

	if err := h.eventService.Delete(adminID, eventID); err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Event not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete event",
		})
	}

	h.invalidateListings(c)
	return c.JSON(fiber.Map{"message": "Event deleted"})
}

func (h *EventHandler) Register(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid event id",
		})
	}

	result, err := h.eventService.Register(userID, eventID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to register for event",
		})
	}

	h.invalidateListings(c)
	return c.JSON(result)
}

func (h *EventHandler) Unregister(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid event id",
		})
	}

	result, err := h.eventService.Unregister(userID, eventID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to unregister from event",
		})
	}

	h.invalidateListings(c)
	return c.JSON(result)
}

func (h *EventHandler) MyRegistrations(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	registrations, err := h.eventService.ListRegistrations(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list registrations",
		})
	}
	return c.JSON(fiber.Map{"registrations": registrations})
}

func (h *EventHandler) invalidateListings(c *fiber.Ctx) {
	keys := make([]string, 0, 8)
	for _, status := range []string{"", models.EventUpcoming, models.EventOngoing, models.EventCompleted, models.EventCancelled} {
		keys = append(keys, eventListKey(status, 50))
	}
	cache.Invalidate(c.UserContext(), keys...)
}

func eventListKey(status string, limit int) string {
	return fmt.Sprintf("events:list:%s:%d", status, limit)
}
