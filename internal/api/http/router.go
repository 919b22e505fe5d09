package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/gas-delivery/internal/api/http/handlers"
	"github.com/spec-kit/gas-delivery/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Orders         *handlers.OrdersHandler
	Admin          *handlers.AdminHandler
	Support        *handlers.SupportHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Post("/users/register", cfg.Users.Register)
	api.Post("/users/login", cfg.Users.Login)

	protected := api.Group("", cfg.AuthMiddleware.Handle)
	protected.Get("/users/profile", cfg.Users.GetProfile)
	protected.Put("/users/profile", cfg.Users.UpdateProfile)

	protected.Post("/orders", cfg.Orders.Create)
	protected.Get("/orders", cfg.Orders.List)
	protected.Put("/orders/:orderId/cancel", cfg.Orders.Cancel)

	protected.Get("/support/tickets", cfg.Support.List)
	protected.Post("/support/tickets", cfg.Support.Submit)

	admin := protected.Group("/admin", auth.RequireAdmin())
	admin.Get("/stats", cfg.Admin.Stats)
	admin.Get("/users", cfg.Admin.ListUsers)
	admin.Get("/orders", cfg.Admin.ListOrders)
}
