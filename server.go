package ogimage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vaan/ogimage/core"
)

type RuntimeConfig struct {
	Env        string
	ConfigPath string
	Port       int
}

// NewHandler assembles the HTTP surface: middleware, the card router,
// optional metrics and, in dev, the preview page and reload socket.
func NewHandler(config core.Config, rt core.RuntimeContext, reloader core.LiveReloaderInterface) http.Handler {
	logger := rt.Logger
	if logger == nil {
		logger = slog.Default()
		rt.Logger = logger
	}
	if config.Metrics && rt.Metrics == nil {
		rt.Metrics = core.NewMetrics()
	}

	r := chi.NewRouter()
	r.Use(core.RequestID)
	r.Use(middleware.RealIP)
	r.Use(core.StructuredLogger(logger))
	r.Use(core.Recoverer(logger))
	r.Use(core.Preflight)

	if config.Metrics {
		r.Handle("/metrics", rt.Metrics.Handler())
	}

	if rt.Env == "dev" {
		reloadPath := ""
		if reloader != nil {
			reloadPath = core.ReloadPath
			r.HandleFunc(core.ReloadPath, reloader.Handler)
		}
		r.Get(core.PreviewPath, core.PreviewHandler(logger, reloadPath))
	}

	cards := core.NewRouter(config, rt)
	r.Handle("/*", cards)
	// chi rejects methods it does not know before routing; cards ignore the method.
	r.MethodNotAllowed(cards.ServeHTTP)
	return r
}

// swapHandler lets dev mode rebuild the handler when the config changes.
type swapHandler struct {
	current atomic.Pointer[http.Handler]
}

func (s *swapHandler) Store(h http.Handler) { s.current.Store(&h) }

func (s *swapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	(*s.current.Load()).ServeHTTP(w, r)
}

func Start(cfg RuntimeConfig) error {
	if cfg.ConfigPath == "" {
		cfg.ConfigPath = core.DefaultConfigPath
	}

	config, err := core.LoadConfig(cfg.ConfigPath)
	if err != nil {
		return err
	}
	if cfg.Env == "dev" {
		config.DebugLogs = true
	}
	if cfg.Port != 0 {
		config.Port = cfg.Port
	}

	logger := core.NewLogger(os.Stdout, config)
	slog.SetDefault(logger)
	logger.Info("starting ogimage", "env", cfg.Env, "config", cfg.ConfigPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt := core.RuntimeContext{Env: cfg.Env, Logger: logger}
	if config.Metrics {
		rt.Metrics = core.NewMetrics()
	}

	handler := &swapHandler{}

	if cfg.Env == "dev" {
		reloader := core.NewLiveReloader()
		handler.Store(NewHandler(config, rt, reloader))

		go func() {
			err := core.WatchFile(ctx, cfg.ConfigPath, func() {
				next, err := core.LoadConfig(cfg.ConfigPath)
				if err != nil {
					logger.Warn("config reload failed", "error", err)
					return
				}
				next.DebugLogs = true
				next.Port = config.Port
				handler.Store(NewHandler(next, rt, reloader))
				logger.Info("config reloaded")
				reloader.BroadcastReload()
			})
			if err != nil {
				logger.Warn("config watcher stopped", "error", err)
			}
		}()
	} else {
		handler.Store(NewHandler(config, rt, nil))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	fmt.Printf("✅ ogimage running at http://localhost:%d\n", config.Port)
	if cfg.Env == "dev" {
		fmt.Printf("🖼  Preview at http://localhost:%d%s\n", config.Port, core.PreviewPath)
	}

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
