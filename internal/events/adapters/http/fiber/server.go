package fiber

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

type AppConfig struct {
	AllowedOrigins []string
	EnableDocs     bool
}

// NewApp wires middleware, health, docs and the event routes.
func NewApp(cfg AppConfig, log logrus.FieldLogger, events *EventHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          15 * time.Second,
	})

	app.Use(recover.New())
	app.Use(RequestLogger(log))

	origins := strings.Join(cfg.AllowedOrigins, ",")
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{AllowOrigins: origins}))

	app.Get("/health", Health)

	// Swagger
	if cfg.EnableDocs {
		app.Get("/docs/*", fiberSwagger.WrapHandler)
	}

	events.Register(app)

	return app
}

// Health godoc
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
