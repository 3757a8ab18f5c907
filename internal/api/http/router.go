package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/shopease/helpdesk/internal/api/http/handlers"
	"github.com/shopease/helpdesk/internal/auth"
	"github.com/shopease/helpdesk/internal/domain"
)

// APIPrefix is the route prefix the dashboard and other clients use.
const APIPrefix = "/adsweb/api/v1"

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Tickets        *handlers.TicketsHandler
	Customers      *handlers.CustomersHandler
	Notifications  *handlers.NotificationsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group(APIPrefix)

	api.Post("/signup", cfg.Auth.Signup)
	api.Post("/login", cfg.Auth.Login)
	api.Post("/token", cfg.Auth.Token)

	api.Get("/tickets", cfg.Tickets.List)
	api.Get("/tickets/:id", cfg.Tickets.Get)
	api.Post("/ticket", cfg.AuthMiddleware.Handle, cfg.Tickets.Create)
	api.Put("/ticket/:id", cfg.Tickets.Update)
	api.Delete("/ticket/:id", cfg.Tickets.Delete)

	api.Get("/customer/search/:term", cfg.Customers.Search)
	api.Get("/customer/addresses", cfg.Customers.Addresses)
	api.Get("/customers", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleManager), cfg.Customers.List)

	api.Get("/notifications", cfg.AuthMiddleware.Handle, cfg.Notifications.List)
}
