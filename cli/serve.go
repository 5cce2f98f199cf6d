package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpLayer "growth-projector/http"
	"growth-projector/repository"
	"growth-projector/service"
)

const redisPingTimeout = 3 * time.Second

func newServeCommand(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				a.cfg.Addr = addr
			}
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := a.logger

	cache, closeCache := a.buildCache(ctx)
	defer closeCache()

	growthService := service.NewGrowthService(cache,
		service.WithCacheTTL(a.cfg.CacheTTL),
		service.WithLogger(logger),
	)
	clockService := service.NewClockService()

	rateLimiter := httpLayer.NewRateLimiter(a.cfg.RateLimit, a.cfg.RateWindow)
	defer rateLimiter.Stop()

	handler := httpLayer.NewRouter(httpLayer.RouterDeps{
		Growth:  httpLayer.NewGrowthHandler(growthService, a.cfg.Defaults.Input(), logger),
		Clock:   httpLayer.NewClockHandler(clockService, logger),
		Limiter: rateLimiter,
		Logger:  logger,
	})

	server := &http.Server{
		Addr:         a.cfg.Addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("growth API listening", slog.String("addr", a.cfg.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		logger.Error("server failed", slog.String("addr", a.cfg.Addr), slog.String("error", err.Error()))
		return err
	case <-quit:
		logger.Info("shutting down server")
	case <-ctx.Done():
		logger.Info("context cancelled, shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", slog.String("error", err.Error()))
		return err
	}

	logger.Info("server exited")
	return nil
}

// buildCache returns Redis when configured and reachable, otherwise an
// in-process cache. A nil repository disables caching.
func (a *app) buildCache(ctx context.Context) (repository.CacheRepository, func()) {
	noop := func() {}
	if a.cfg.CacheDisabled {
		a.logger.Info("projection cache disabled")
		return nil, noop
	}
	if a.cfg.RedisAddr == "" {
		return repository.NewMemoryCache(), noop
	}

	redisCache := repository.NewRedisCache(a.cfg.RedisAddr)
	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		a.logger.Warn("redis unavailable, falling back to memory cache",
			slog.String("addr", a.cfg.RedisAddr),
			slog.String("error", err.Error()),
		)
		_ = redisCache.Close()
		return repository.NewMemoryCache(), noop
	}
	a.logger.Info("using redis projection cache", slog.String("addr", a.cfg.RedisAddr))
	return redisCache, func() { _ = redisCache.Close() }
}
