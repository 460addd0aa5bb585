// Package server wires the sondage backend together: it opens the
// configured storage, builds the services and the HTTP API, and runs the
// HTTP server until a shutdown signal arrives.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/sondage/internal/logging"
	"github.com/dmitrijs2005/sondage/internal/server/config"
	"github.com/dmitrijs2005/sondage/internal/server/httpapi"
	"github.com/dmitrijs2005/sondage/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/sondage/internal/server/services"
	"github.com/gin-gonic/gin"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repomanager repomanager.RepositoryManager
	userService *services.UserService
	voteService *services.VoteService
	router      *gin.Engine

	// listening receives the bound address once the server accepts connections.
	listening chan string
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {

	rm, err := repomanager.New(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	us := services.NewUserService(rm, logger)
	vs := services.NewVoteService(rm, logger)

	gin.SetMode(gin.ReleaseMode)
	router := httpapi.NewRouter(httpapi.NewHandler(us, vs, logger), c.CORSOrigin)

	return &App{
		config:      c,
		logger:      logger,
		repomanager: rm,
		userService: us,
		voteService: vs,
		router:      router,
		listening:   make(chan string, 1),
	}, nil
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

	listen, err := net.Listen("tcp", app.config.Addr)
	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	srv := &http.Server{Handler: app.router}

	// Serve returns as soon as Shutdown starts; drained is closed once
	// in-flight requests are done.
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		<-ctx.Done()
		app.logger.Info(context.Background(), "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(shutdownCtx, "shutdown error", "error", err)
		}
	}()

	app.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String(), "storage", app.config.Storage)
	app.listening <- listen.Addr().String()

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}

	<-drained
}

// Run serves until ctx is canceled or a termination signal arrives, then
// drains in-flight requests and closes the storage.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repomanager.Close(); err != nil {
		app.logger.Error(context.Background(), "storage close error", "error", err)
	}

	app.logger.Info(context.Background(), "App stopped")
}
