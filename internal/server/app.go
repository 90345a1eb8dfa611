// Package server initializes and runs the content API server: it wires the
// repository manager, services, and HTTP endpoint, and handles shutdown
// signals.
package server

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/blogkeeper/internal/logging"
	"github.com/dmitrijs2005/blogkeeper/internal/server/config"
	"github.com/dmitrijs2005/blogkeeper/internal/server/httpapi"
	"github.com/dmitrijs2005/blogkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/blogkeeper/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	dbm    *repomanager.PostgresRepositoryManager
	http   *httpapi.Server
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	// The store connection is established lazily on first use; constructing
	// the manager never touches the network.
	dbm := repomanager.NewPostgresRepositoryManager(c.DatabaseDSN)

	us := services.NewUserService(dbm, c)
	cs := services.NewCategoryService(dbm)
	bs := services.NewBlogService(dbm)

	httpServer := httpapi.NewServer(c.EndpointAddr, logger, us, cs, bs, c.SecretKey)

	return &App{config: c, logger: logger, dbm: dbm, http: httpServer}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.http.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.dbm.Close(); err != nil {
		app.logger.Error(ctx, "closing store", "error", err.Error())
	}
}
