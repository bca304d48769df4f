package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"betagym/internal/config"
	"betagym/internal/domain/contact"
	"betagym/internal/domain/live"
	"betagym/internal/metrics"
	jwtsvc "betagym/internal/pkg/jwt"
	"betagym/internal/server"
	"betagym/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Serves the site, the JSON API and the live socket until SIGINT or SIGTERM.`,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()
	cfg, log := a.cfg, a.log

	repo := contact.NewRepository(a.db)
	if err := repo.Migrate(); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	store := config.NewContentStore()
	if cfg.ContentFile != "" {
		if err := store.Reload(cfg.ContentFile); err != nil {
			return err
		}
		log.Info("content loaded", zap.String("path", cfg.ContentFile))
	}

	guard, err := a.guard(ctx)
	if err != nil {
		return err
	}

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(promReg)

	hub := live.NewHub(m, log)
	submissions := contact.NewService(repo,
		contact.WithGuard(guard),
		contact.WithTimeout(cfg.SubmitTimeout),
		contact.WithIPSalt(cfg.IPHashSalt),
		contact.WithMetrics(m),
		contact.WithServiceLogger(log),
	)
	registry := session.NewRegistry(submissions,
		session.WithPublisher(hub),
		session.WithIdleTTL(cfg.SessionIdleTTL),
		session.WithTransition(cfg.GalleryTransition),
		session.WithSuccessDisplay(cfg.SuccessDisplay),
		session.WithMaxVisitors(cfg.MaxSessions),
		session.WithMetrics(m),
		session.WithLogger(log),
	)

	srv := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: server.NewRouter(server.Deps{
			Config:   cfg,
			Log:      log,
			Metrics:  m,
			JWT:      jwtsvc.New(cfg.SessionSecret, cfg.SessionCookieTTL),
			Content:  store,
			Registry: registry,
			Hub:      hub,
			DB:       a.db,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server listening", zap.String("addr", cfg.HTTPAddr), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return registry.Run(gctx, cfg.SessionReapInterval)
	})

	if cfg.ContentWatch {
		g.Go(func() error {
			return config.WatchContent(gctx, cfg.ContentFile, store, log)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		// sockets are hijacked, so Shutdown does not wait for them
		hub.Close()
		err := srv.Shutdown(shutdownCtx)
		registry.Close()
		if err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped", zap.Error(err))
		return err
	}
	log.Info("server stopped")
	return nil
}
