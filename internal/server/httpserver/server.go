// Package httpserver publishes the fixture documents over HTTP with fiber.
package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/ejcdigital/internal/logging"
	"github.com/dmitrijs2005/ejcdigital/internal/server/documents"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

type Server struct {
	address         string
	store           *documents.Store
	logger          logging.Logger
	shutdownTimeout time.Duration
	app             *fiber.App
}

// New builds the fiber app. requestTimeout bounds reads and writes of a
// single request; shutdownTimeout bounds the graceful stop in Run.
func New(address string, store *documents.Store, l logging.Logger, requestTimeout, shutdownTimeout time.Duration) *Server {
	s := &Server{
		address:         address,
		store:           store,
		logger:          l.With("component", "http_server"),
		shutdownTimeout: shutdownTimeout,
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:           requestTimeout,
		WriteTimeout:          requestTimeout,
		DisableStartupMessage: true,
		ErrorHandler:          s.errorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(requestLogger(s.logger))

	app.Get("/healthz", s.health)
	app.Get("/:name", s.document)

	s.app = app
	return s
}

// App exposes the underlying fiber app, mainly for app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run listens until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", s.address)
		errCh <- s.app.Listen(s.address)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return <-errCh
}
