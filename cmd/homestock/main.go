package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"homestock/internal/config"
	"homestock/internal/domain"
	"homestock/internal/http/handlers"
	applog "homestock/internal/log"
	"homestock/internal/metrics"
	"homestock/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.SeedDemo {
		if err := repos.SeedIfEmpty(db, domain.Now()); err != nil {
			log.Fatal(err)
		}
	}

	deps := handlers.NewDeps(db)
	// Populate the snapshot before the first page render.
	if err := deps.Snap.Reload(); err != nil {
		log.Fatal(err)
	}

	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals; best-effort render
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/healthz" || c.Path() == "/metrics"
		},
	}))

	// ---------- Static assets ----------
	app.Static("/static", cfg.StaticDir)

	// ---------- Pages ----------
	app.Get("/", deps.Pages.Home)
	app.Post("/items", deps.Pages.Save)
	app.Post("/items/:id", deps.Pages.SaveEdit)
	app.Post("/items/:id/delete", deps.Pages.Remove)
	app.Post("/items/:id/increase", deps.Pages.Increase)
	app.Post("/items/:id/decrease", deps.Pages.Decrease)

	// ---------- JSON API ----------
	api := app.Group("/api")
	api.Get("/items", deps.ItemAPI.List)
	api.Post("/items", deps.ItemAPI.Create)
	api.Put("/items/:id", deps.ItemAPI.Update)
	api.Delete("/items/:id", deps.ItemAPI.Delete)
	api.Post("/items/:id/increment", deps.ItemAPI.Increment)
	api.Post("/items/:id/decrement", deps.ItemAPI.Decrement)

	// Health & metrics & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
