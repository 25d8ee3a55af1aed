package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	httpLayer "wealth-site/http"
	"wealth-site/page"
	"wealth-site/repository"
	"wealth-site/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the landing page and API",
	RunE:  runServe,
}

const memoryCacheEntries = 10_000

func newCache(ctx context.Context) (repository.CacheRepository, func()) {
	if cfg.Redis.Addr == "" {
		return repository.NewMemoryCache(memoryCacheEntries), func() {}
	}

	redisCache := repository.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.GetTTL())
	if err := redisCache.Ping(ctx); err != nil {
		// not fatal: the cache reports misses and the projection is recomputed
		logger.Warn("redis unreachable, projections will not be cached", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
	}
	return redisCache, func() { _ = redisCache.Close() }
}

func buildServer(ctx context.Context) (*http.Server, func()) {
	cache, closeCache := newCache(ctx)

	projectionService := service.NewProjectionService(cache, logger)

	var mailer service.Mailer
	if cfg.Mail.Configured() {
		mailer = service.NewSMTPMailer(cfg.Mail)
	} else {
		logger.Warn("SMTP is not configured; contact submissions will fail")
	}
	leadService := service.NewLeadService(cfg.Mail, cfg.Site.FirmName, mailer, logger)

	site := page.DefaultSite(cfg.Site.FirmName, cfg.HostedForm.URL, service.Disclaimer)

	contactLimiter := httpLayer.NewRateLimiter(cfg.Server.RateLimit.Capacity, cfg.Server.RateLimit.GetWindow())

	router := httpLayer.NewRouter(httpLayer.Handlers{
		Page:       httpLayer.NewPageHandler(site, projectionService, logger),
		Contact:    httpLayer.NewContactHandler(leadService, logger),
		Projection: httpLayer.NewProjectionHandler(projectionService, cfg.Site.FirmName, logger),
	}, contactLimiter, logger)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.GetReadTimeout(),
		WriteTimeout: cfg.Server.GetWriteTimeout(),
		IdleTimeout:  cfg.Server.GetIdleTimeout(),
	}

	cleanup := func() {
		contactLimiter.Stop()
		closeCache()
	}
	return server, cleanup
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server, cleanup := buildServer(ctx)
	defer cleanup()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.GetShutdownTimeout())
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		return err
	}

	logger.Info("server exited")
	return nil
}
