package routes

import (
	"time"

	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/config"
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/handlers"
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/middleware"
	"github.com/duttasayan835/codebird-quantum-web-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	roleService *services.RoleService,
	authHandler *handlers.AuthHandler,
	inviteHandler *handlers.InviteHandler,
	eventHandler *handlers.EventHandler,
	savedHandler *handlers.SavedHandler,
	settingsHandler *handlers.SettingsHandler,
	adminHandler *handlers.AdminHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Public content
	api.Get("/settings", settingsHandler.GetAll)
	api.Get("/events", eventHandler.List)
	api.Get("/events/:id", eventHandler.Get)
	api.Get("/invites/:code", inviteHandler.Validate)

	// Auth — public, stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected routes (JWT required)
	jwtProtected := middleware.JWTProtected(cfg)
	api.Post("/auth/logout", jwtProtected, authHandler.Logout)
	api.Post("/auth/session", jwtProtected, authHandler.Session)

	api.Get("/me", jwtProtected, authHandler.Me)
	api.Put("/me", jwtProtected, authHandler.UpdateMe)
	api.Get("/me/registrations", jwtProtected, eventHandler.MyRegistrations)

	api.Post("/invites/redeem", jwtProtected, inviteHandler.Redeem)

	api.Post("/events/:id/register", jwtProtected, eventHandler.Register)
	api.Delete("/events/:id/register", jwtProtected, eventHandler.Unregister)

	api.Post("/saved/toggle", jwtProtected, savedHandler.Toggle)
	api.Get("/saved", jwtProtected, savedHandler.List)

	// Admin surface (JWT + admin required)
	admin := api.Group("/admin", jwtProtected, middleware.AdminRequired(roleService, cfg))
	admin.Get("/users", adminHandler.ListUsers)
	admin.Put("/users/:id/role", adminHandler.SetRole)
	admin.Put("/users/:id/block", adminHandler.SetBlocked)
	admin.Post("/users/promote", adminHandler.PromoteByEmail)

	admin.Post("/invites", inviteHandler.Create)
	admin.Get("/invites", inviteHandler.List)

	admin.Post("/events", eventHandler.Create)
	admin.Put("/events/:id", eventHandler.Update)
	admin.Delete("/events/:id", eventHandler.Delete)

	admin.Put("/settings/:key", settingsHandler.Set)
	admin.Delete("/settings/:key", settingsHandler.Delete)

	admin.Get("/activity", adminHandler.ListActivity)
}
