package middleware

import (
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/config"
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/dto"
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/identity"
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
)

// AdminRequired gates the admin surface. Precedence mirrors the destination
// resolver: operator token header, then super-admin allowlist, then stored
// profile role. Everything else is 403.
func AdminRequired(roles *services.RoleService, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.AdminToken != "" && c.Get("X-Admin-Token") == cfg.AdminToken {
			return c.Next()
		}

		userID, err := identity.UserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if roles.IsSuperAdmin(userID, identity.Email(c)) || roles.IsAdmin(userID) {
			return c.Next()
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Admin access required",
		})
	}
}
