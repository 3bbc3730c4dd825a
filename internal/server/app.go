// Package server initializes and runs the board server.
// It wires storage, the authentication stack and the HTTP API together
// and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/redis/go-redis/v9"

	"postboard/internal/logging"
	"postboard/internal/server/auth"
	"postboard/internal/server/config"
	"postboard/internal/server/httpapi"
	"postboard/internal/server/posts"
	"postboard/internal/server/repomanager"
	"postboard/internal/server/users"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	repos       repomanager.RepositoryManager
	userService *users.Service
	postService *posts.Service
	guard       *auth.Guard
	carrier     *auth.SessionCarrier
}

func NewApp(c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	rm, err := repomanager.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	credentials := auth.NewCredentialStore(c.BcryptCost)
	tokens := auth.NewTokenService([]byte(c.SecretKey), c.TokenValidityDuration, c.TokenExpiryLeeway)
	carrier := auth.NewSessionCarrier(c.TokenValidityDuration, c.SecureCookies)

	var denylist auth.Denylist = auth.NoopDenylist{}
	if c.RedisAddr != "" {
		denylist = auth.NewRedisDenylist(redis.NewClient(&redis.Options{Addr: c.RedisAddr}))
	}

	us := users.NewService(rm.Users(), credentials, tokens)
	ps := posts.NewService(rm.Posts())
	guard := auth.NewGuard(tokens, carrier, denylist, us, logger)

	return &App{
		config:      c,
		logger:      logger,
		repos:       rm,
		userService: us,
		postService: ps,
		guard:       guard,
		carrier:     carrier,
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

	s := httpapi.NewServer(app.config.EndpointAddr, app.logger, app.userService, app.postService, app.guard, app.carrier)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.repos.RunMigrations(ctx); err != nil {
		app.logger.Error(ctx, "migration error", "error", err.Error())
		return
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}
}
