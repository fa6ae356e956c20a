package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/victoreder/admin-hublabel-sub000/internal/api/http/handlers"
	"github.com/victoreder/admin-hublabel-sub000/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Installations  *handlers.InstallationsHandler
	Clients        *handlers.ClientsHandler
	Versions       *handlers.VersionsHandler
	Sales          *handlers.SalesHandler
	Mail           *handlers.MailHandler
	Automation     *handlers.AutomationHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api/v1")

	api.Post("/auth/login", cfg.Auth.Login)
	api.Get("/public/changelog/:token", cfg.Versions.PublicLookup)

	protected := api.Group("", cfg.AuthMiddleware.Handle)

	protected.Get("/installations/board", cfg.Installations.Board)
	protected.Post("/installations/attachments", cfg.Installations.UploadAttachment)
	protected.Post("/installations", cfg.Installations.Create)
	protected.Get("/installations/:id", cfg.Installations.Get)
	protected.Put("/installations/:id", cfg.Installations.Update)
	protected.Delete("/installations/:id", cfg.Installations.Delete)
	protected.Post("/installations/:id/move", cfg.Installations.Move)

	protected.Get("/clients", cfg.Clients.List)
	protected.Post("/clients", cfg.Clients.Create)
	protected.Get("/clients/:id", cfg.Clients.Get)
	protected.Put("/clients/:id", cfg.Clients.Update)
	protected.Delete("/clients/:id", cfg.Clients.Delete)

	protected.Get("/versions/next", cfg.Versions.SuggestNext)
	protected.Get("/versions", cfg.Versions.List)
	protected.Post("/versions", cfg.Versions.Create)
	protected.Get("/versions/:id", cfg.Versions.Get)
	protected.Put("/versions/:id", cfg.Versions.Update)
	protected.Delete("/versions/:id", cfg.Versions.Delete)

	protected.Get("/sales", cfg.Sales.List)
	protected.Post("/sales", cfg.Sales.Create)
	protected.Get("/sales/:id", cfg.Sales.Get)
	protected.Put("/sales/:id", cfg.Sales.Update)
	protected.Delete("/sales/:id", cfg.Sales.Delete)

	protected.Post("/send-email", cfg.Mail.SendEmail)
	protected.Get("/automation/workflows/:id/asset", cfg.Automation.AssetURL)
}
