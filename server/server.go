package server

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shruggr/go-bpu/docs"
	"github.com/shruggr/go-bpu/idx"
	"github.com/shruggr/go-bpu/lib"
	"github.com/shruggr/go-bpu/server/routes/ord"
	"github.com/shruggr/go-bpu/server/routes/tx"
)

// @title BPU API
// @version 1.0
// @description Projects BSV transactions into tapes and cells, and extracts ord inscriptions

// @contact.name API Support
// @contact.url https://github.com/shruggr/go-bpu

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var httpErr *lib.HttpError
	var fiberErr *fiber.Error
	if errors.As(err, &httpErr) {
		code = httpErr.StatusCode
		err = httpErr.Err
	} else if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	if code >= fiber.StatusInternalServerError {
		slog.Error("Request failed", slog.String("path", c.Path()), slog.Any("error", err))
	}
	return c.Status(code).SendString(err.Error())
}

func Initialize(ingestCtx *idx.IngestCtx) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:    100 * 1024 * 1024, // 100MB
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{AllowOrigins: "*"}))

	// @Summary Health check
	// @Description Simple health check endpoint
	// @Tags health
	// @Success 200 {string} string "yo"
	// @Router /yo [get]
	app.Get("/yo", func(c *fiber.Ctx) error {
		return c.SendString("yo")
	})

	v1 := app.Group("/v1")
	tx.RegisterRoutes(v1.Group("/tx"), ingestCtx)
	ord.RegisterRoutes(v1.Group("/ord"), ingestCtx)

	app.Get("/api-spec/swagger.json", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(docs.SwaggerInfo.ReadDoc())
	})

	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!doctype html>
<html>
<head>
    <title>BPU API</title>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
</head>
<body>
    <script id="api-reference" data-url="/api-spec/swagger.json"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`
		c.Set("Content-Type", "text/html")
		return c.SendString(html)
	})

	return app
}
