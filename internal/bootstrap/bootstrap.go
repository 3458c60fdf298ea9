package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khedhrije/items-archetype/internal/configuration"
	"github.com/khedhrije/items-archetype/internal/greeting"
	"github.com/khedhrije/items-archetype/internal/logging"
	"github.com/khedhrije/items-archetype/internal/ui/rest/handlers"
	"github.com/khedhrije/items-archetype/internal/ui/rest/router"
	"github.com/khedhrije/items-archetype/pkg/metrics"
	"github.com/khedhrije/items-archetype/pkg/monitoring"
)

// Bootstrap holds the wired application.
type Bootstrap struct {
	Config  *configuration.AppConfig
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	Router  *gin.Engine
}

// InitBootstrap loads configuration and wires the application from it.
func InitBootstrap(build configuration.BuildInfo) (Bootstrap, error) {
	cfg, err := configuration.Load(build)
	if err != nil {
		return Bootstrap{}, err
	}
	return initBootstrap(cfg)
}

// initBootstrap sets up logging, initializes services, and configures the router.
func initBootstrap(cfg *configuration.AppConfig) (Bootstrap, error) {
	if cfg == nil {
		return Bootstrap{}, errors.New("configuration is nil")
	}

	logger, err := logging.Init(cfg.LogConfig.Format, cfg.LogConfig.Level)
	if err != nil {
		return Bootstrap{}, fmt.Errorf("init logging: %w", err)
	}
	logger = logger.With(slog.String("app", cfg.AppName), slog.String("env", cfg.Env))

	cfg.OnChange(func(next *configuration.AppConfig) {
		if err := logging.SetLevel(next.LogConfig.Level); err != nil {
			logger.Warn("keeping previous log level", slog.Any("error", err))
			return
		}
		logger.Info("log level applied", slog.String("level", next.LogConfig.Level))
	})

	gin.SetMode(gin.ReleaseMode)

	app := Bootstrap{Config: cfg, Logger: logger}
	app.Metrics = metrics.New()

	monitoringHandler := monitoring.New(cfg)
	itemsHandler := handlers.New(greeting.Default, app.Metrics)

	r, err := router.CreateRouter(router.Dependencies{
		Checks:  monitoringHandler,
		Items:   itemsHandler,
		Metrics: app.Metrics,
	}, router.Options{
		TrustedProxies: cfg.RestConfig.TrustedProxies,
		Logger:         logger,
		MaxBodyBytes:   cfg.RestConfig.MaxBodyBytes,
		Title:          cfg.AppName,
		Version:        cfg.AppVersion,
	})
	if err != nil {
		return Bootstrap{}, fmt.Errorf("create router: %w", err)
	}
	app.Router = r

	return app, nil
}

// Server builds the http.Server for the configured address and timeouts.
func (b Bootstrap) Server() *http.Server {
	rc := b.Config.RestConfig
	return &http.Server{
		Addr:              rc.Addr(),
		Handler:           b.Router,
		ReadTimeout:       rc.ReadTimeout,
		ReadHeaderTimeout: rc.ReadTimeout,
		WriteTimeout:      rc.WriteTimeout,
		IdleTimeout:       rc.IdleTimeout,
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests within
// the configured shutdown timeout.
func (b Bootstrap) Run(ctx context.Context) error {
	srv := b.Server()

	errCh := make(chan error, 1)
	go func() {
		b.Logger.Info("listening",
			slog.String("addr", srv.Addr),
			slog.String("version", b.Config.AppVersion),
			slog.String("revision", b.Config.AppRevision),
			slog.String("builtAt", b.Config.AppBuiltAt),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	b.Logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), b.Config.RestConfig.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	b.Logger.Info("server exiting")
	return nil
}
