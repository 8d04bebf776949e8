package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chm-desk/helpdesk/internal/api/http/handlers"
	"github.com/chm-desk/helpdesk/internal/session"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health        *handlers.HealthHandler
	Session       *handlers.SessionHandler
	Tickets       *handlers.TicketsHandler
	Analytics     *handlers.AnalyticsHandler
	Notifications *handlers.NotificationsHandler
	Middleware    *session.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Session.Login)
	authGroup.Post("/logout", cfg.Session.Logout)

	tickets := app.Group("/tickets", cfg.Middleware.Handle)
	tickets.Get("/", cfg.Tickets.ListTickets)
	tickets.Post("/", cfg.Tickets.CreateTicket)
	tickets.Get("/:id", cfg.Tickets.GetTicket)
	tickets.Patch("/:id", cfg.Tickets.UpdateTicket)
	tickets.Delete("/:id", cfg.Tickets.DeleteTicket)
	tickets.Post("/:id/messages", cfg.Tickets.AddMessage)
	tickets.Patch("/:id/status", cfg.Tickets.UpdateStatus)

	app.Get("/analytics/summary", cfg.Analytics.Summary)

	app.Get("/notifications/current", cfg.Notifications.Current)
	app.Delete("/notifications/current", cfg.Notifications.Dismiss)
}
