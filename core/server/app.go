package server

import (
	"net/http"
	"strings"
	"time"

	"demo-server/core/loader"
	"demo-server/core/middleware/accesslog"
	"demo-server/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "demo-server/docs/swagger"
)

// APIPrefix is where features mount their routes.
const APIPrefix = "/api"

// NotFoundBody is the body of a 404 for a missing static path.
const NotFoundBody = "File not found"

// contentSecurityPolicy lets the demo pages pull map tiles, fonts and
// scripts from the CDNs they reference.
var contentSecurityPolicy = strings.Join([]string{
	"default-src 'self'",
	"script-src 'self' 'unsafe-inline' https://cdn.jsdelivr.net https://unpkg.com",
	"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com https://cdn.jsdelivr.net https://unpkg.com",
	"img-src 'self' data: https: blob:",
	"font-src 'self' https://fonts.gstatic.com https://cdn.jsdelivr.net",
	"connect-src 'self' ws: wss: https://tile.openstreetmap.org https://a.tile.openstreetmap.org " +
		"https://b.tile.openstreetmap.org https://c.tile.openstreetmap.org https://cdn.jsdelivr.net https://unpkg.com",
}, "; ")

// NewApp assembles the Fiber application: global middleware, the /api
// features from mgr, optional Swagger UI and finally the static file tree
// rooted at baseDir. rec may be nil.
func NewApp(cfg Config, baseDir string, logg *zap.Logger, mgr *loader.Manager, rec accesslog.Recorder) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName:               cfg.Title,
		DisableStartupMessage: true, // We print our own banner
		DisableKeepalive:      cfg.Sequential(),
		ReadTimeout:           cfg.ReadTimeout(),
	})

	// 1. RayID (Must be first to trace everything)
	app.Use(rayid.New())

	// 2. Access log
	app.Use(accesslog.New(logg, rec))

	// 3. Security headers, compression and CORS
	if cfg.SecurityHeaders {
		app.Use(helmet.New(helmet.Config{
			ContentSecurityPolicy:     contentSecurityPolicy,
			CrossOriginEmbedderPolicy: "unsafe-none",
		}))
	}
	if cfg.Compress {
		app.Use(compress.New())
	}

	origins := cfg.AllowOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowCredentials: origins != "*",
	}))

	// 4. API features (rate limited)
	var apiHandlers []fiber.Handler
	if cfg.RateLimitMax > 0 {
		apiHandlers = append(apiHandlers, limiter.New(limiter.Config{
			Max:        cfg.RateLimitMax,
			Expiration: time.Duration(cfg.RateLimitWindowSeconds) * time.Second,
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"error": "Too many requests from this IP, please try again later.",
				})
			},
		}))
	}
	api := app.Group(APIPrefix, apiHandlers...)
	if mgr != nil {
		if err := mgr.LoadAll(api); err != nil {
			return nil, err
		}
		logg.Debug("Features loaded", zap.Strings("features", mgr.Loaded()))
	}

	if cfg.Swagger {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	// 5. Static files, with directory listings for index-less directories
	app.Use(filesystem.New(filesystem.Config{
		Root:   http.Dir(baseDir),
		Browse: true,
		Index:  "index.html",
	}))

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).SendString(NotFoundBody)
	})

	return app, nil
}
