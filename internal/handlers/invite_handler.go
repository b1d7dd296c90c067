package handlers

import (
	"errors"

	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/dto"
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/identity"
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
)

type InviteHandler struct {
	inviteService *services.InviteService
}

func NewInviteHandler(inviteService *services.InviteService) *InviteHandler {
	return &InviteHandler{inviteService: inviteService}
}

// Create mints a new invite code (admin only).
func (h *InviteHandler) Create(c *fiber.Ctx) error {
	adminID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateInviteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.inviteService.Create(adminID, req.Role, req.ExpiresInDays)
	if err != nil {
		if errors.Is(err, services.ErrInviteRole) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create invite code",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Validate is the read-only pre-check; it never mutates the code.
func (h *InviteHandler) Validate(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Code parameter is required",
		})
	}

	resp, err := h.inviteService.Validate(code)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to validate invite code",
		})
	}
	return c.JSON(resp)
}

// Redeem consumes the code for the authenticated caller. Used and expired
// codes come back as Success=false with HTTP 200: a normal outcome.
func (h *InviteHandler) Redeem(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.RedeemInviteRequest
	if err := c.BodyParser(&req); err != nil || req.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invite code is required",
		})
	}

	result, err := h.inviteService.Redeem(req.Code, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to redeem invite code",
		})
	}
	return c.JSON(result)
}

func (h *InviteHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	invites, total, err := h.inviteService.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list invite codes",
		})
	}

	return c.JSON(fiber.Map{
		"invites": invites,
		"total":   total,
	})
}
