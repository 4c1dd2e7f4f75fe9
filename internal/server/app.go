// Package server initializes and runs the fixture server: it picks the
// document source, handles graceful shutdown and starts the HTTP endpoint.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/ejcdigital/internal/logging"
	"github.com/dmitrijs2005/ejcdigital/internal/server/config"
	"github.com/dmitrijs2005/ejcdigital/internal/server/documents"
	"github.com/dmitrijs2005/ejcdigital/internal/server/httpserver"
)

type App struct {
	config *config.Config
	logger logging.Logger
	store  *documents.Store
}

// NewApp validates c and opens the document source. Logs go to w.
func NewApp(c *config.Config, w io.Writer) (*App, error) {

	logger := logging.New(w, c.LogLevel, c.LogFormat)

	store := documents.Embedded()
	if c.DataDir != "" {
		s, err := documents.Dir(c.DataDir)
		if err != nil {
			return nil, fmt.Errorf("documents init error: %w", err)
		}
		store = s
	}

	return &App{config: c, logger: logger, store: store}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpserver.New(app.config.ListenAddr, app.store, app.logger, app.config.RequestTimeout, app.config.ShutdownTimeout)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "data_dir", app.config.DataDir)

	if err := app.store.Check(); err != nil {
		app.logger.Warn(ctx, "some documents will not decode on the client", "error", err)
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.logger.Info(ctx, "App stopped")
}
