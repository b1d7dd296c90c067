package handlers

import (
	"errors"

	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/dto"
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/identity"
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AdminHandler struct {
	roleService     *services.RoleService
	activityService *services.ActivityService
}

func NewAdminHandler(roleService *services.RoleService, activityService *services.ActivityService) *AdminHandler {
	return &AdminHandler{roleService: roleService, activityService: activityService}
}

func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	profiles, total, err := h.roleService.ListProfiles(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list users",
		})
	}

	return c.JSON(fiber.Map{
		"users": profiles,
		"total": total,
	})
}

func (h *AdminHandler) SetRole(c *fiber.Ctx) error {
	adminID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user id",
		})
	}

	var req dto.SetRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.roleService.Promote(adminID, userID, req.Role); err != nil {
		return h.roleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Role updated"})
}

// PromoteByEmail resolves the email to an identity first, then mutates the
// role. Promoting an unknown email is a 404, never a silent no-op.
func (h *AdminHandler) PromoteByEmail(c *fiber.Ctx) error {
	adminID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.PromoteByEmailRequest
	if err := c.BodyParser(&req); err != nil || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Email is required",
		})
	}

	profile, err := h.roleService.PromoteByEmail(adminID, req.Email, req.Role)
	if err != nil {
		return h.roleError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Role updated",
		"user":    profile,
	})
}

func (h *AdminHandler) SetBlocked(c *fiber.Ctx) error {
	adminID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid user id",
		})
	}

	var req dto.SetBlockedRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.roleService.SetBlocked(adminID, userID, req.Blocked); err != nil {
		return h.roleError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User updated"})
}

func (h *AdminHandler) ListActivity(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	logs, total, err := h.activityService.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list activity",
		})
	}

	return c.JSON(fiber.Map{
		"activity": logs,
		"total":    total,
	})
}

func (h *AdminHandler) roleError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrUserNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "User not found",
		})
	}
	if errors.Is(err, services.ErrInvalidRole) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Internal server error",
	})
}
