// Package server assembles the fiber application: template engine,
// middleware and every route.
package server

import (
	"time"

	"homefit/internal/flash"
	"homefit/internal/handlers"
	"homefit/internal/middleware"
	"homefit/internal/services"
	"homefit/web"

	"github.com/dustin/go-humanize"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/template/html/v2"
)

// Deps are the services and switches the application is built from.
type Deps struct {
	Auth     *services.AuthService
	Beds     *services.BedService
	Workouts *services.WorkoutService

	CSRFEnabled   bool
	EventsEnabled bool
	// Quiet turns off request logging.
	Quiet bool
}

// New builds the fiber app with all routes registered.
func New(d Deps) *fiber.App {
	engine := html.NewFileSystem(web.Templates(), ".html")
	engine.AddFunc("ago", humanize.Time)

	// Form values are stored as parsed, so they must not alias the request buffer.
	app := fiber.New(fiber.Config{
		Immutable:    true,
		Views:        engine,
		ErrorHandler: handlers.ErrorHandler,
	})

	// --- Middleware ---
	app.Use(recover.New())
	if !d.Quiet {
		app.Use(logger.New())
	}
	app.Use(middleware.Authenticate(d.Auth))
	if d.CSRFEnabled {
		app.Use(csrf.New(csrf.Config{
			KeyLookup:      "form:csrf_token",
			CookieName:     "csrf_",
			CookieSameSite: "Lax",
			CookieHTTPOnly: true,
			Expiration:     time.Hour,
			ContextKey:     handlers.CSRFContextKey,
		}))
	}

	sessions := session.New(session.Config{
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	view := handlers.NewView(flash.New(sessions))

	app.Get("/health", func(c *fiber.Ctx) error {
		events := "disabled"
		if d.EventsEnabled {
			events = "connected"
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"rabbitMQ": events,
		})
	})

	// --- Routes ---
	handlers.NewAuthHandler(d.Auth, view).RegisterRoutes(app)

	auth := middleware.AuthRequired(d.Auth)
	handlers.NewBedHandler(d.Beds, view).RegisterRoutes(app, auth)
	handlers.NewWorkoutHandler(d.Workouts, view).RegisterRoutes(app, auth)

	return app
}
