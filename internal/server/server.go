// Package server exposes the extraction engine over HTTP. The OCR step that
// produces the text happens on the client; this API only receives the
// transcription blob and returns the assembled receipt.
package server

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/benshabbat/receipt-scanner/internal/common"
	"github.com/benshabbat/receipt-scanner/internal/engine"
	"github.com/benshabbat/receipt-scanner/internal/export"
)

// Server wires the engine and export service into a fiber app.
type Server struct {
	app    *fiber.App
	engine *engine.Engine
	export *export.Service
	logger *slog.Logger
}

// New wires the handlers into a fiber app. Zero values in cfg fall back to
// fiber's own defaults.
func New(cfg common.ServerConfig, eng *engine.Engine, exp *export.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		engine: eng,
		export: exp,
		logger: logger,
	}
	app := fiber.New(fiber.Config{
		AppName:               "receipt-scanner",
		DisableStartupMessage: true,
		BodyLimit:             cfg.BodyLimit,
		ReadTimeout:           cfg.ReadTimeout,
	})
	app.Use(s.requestLogger)

	app.Get("/api/health", s.handleHealth)
	app.Post("/api/parse", s.handleParse)
	app.Post("/api/lines", s.handleLines)
	app.Post("/api/export", s.handleExport)

	s.app = app
	return s
}

// App returns the underlying fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving HTTP on addr.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown performs a graceful shutdown, waiting up to timeout for in-flight
// requests when timeout is positive.
func (s *Server) Shutdown(timeout time.Duration) error {
	if timeout <= 0 {
		return s.app.Shutdown()
	}
	return s.app.ShutdownWithTimeout(timeout)
}

// requestLogger tags every request with a request ID and logs its outcome.
func (s *Server) requestLogger(c *fiber.Ctx) error {
	requestID := uuid.New().String()
	c.Locals("request_id", requestID)
	c.Set("X-Request-ID", requestID)

	err := c.Next()

	s.logger.Info("http.request",
		"request_id", requestID,
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
	)
	return err
}
