package server

import (
	"log"
	"strings"

	"notes-be/internal/bootstrap"
	"notes-be/internal/config"
	"notes-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/template/html/v2"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	engine := html.New("./views", ".html")

	// Initialize Fiber App
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB
		Views:     engine,
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware(container.Logger))

	// Routes
	registerRoutes(app, container)

	// Unknown routes are 404, never a login redirect.
	app.Use(func(ctx *fiber.Ctx) error {
		if strings.Contains(ctx.Get(fiber.HeaderAccept), "text/html") {
			return ctx.Status(fiber.StatusNotFound).SendString("Not Found")
		}
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
	})

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	app.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Redirect("/login", fiber.StatusFound)
	})

	c.HealthController.RegisterRoutes(app)
	c.AuthController.RegisterRoutes(app)

	c.FolderController.RegisterRoutes(app, c.SessionGate, c.SessionViewGate)
	c.NoteController.RegisterRoutes(app, c.SessionGate)
	c.SummarizeController.RegisterRoutes(app, c.SessionGate)
}
