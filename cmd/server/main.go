package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"insightx/internal/mail"
	"insightx/internal/platform/config"
	"insightx/internal/platform/httpserver"
	"insightx/internal/platform/logger"
	"insightx/internal/platform/metrics"
	"insightx/internal/registration/handler"
	"insightx/internal/registration/service"
	"insightx/internal/registration/store"
)

// main wires dependencies and keeps the server lifecycle small. Business
// logic lives in internal/registration.
func main() {
	log := logger.New()
	if err := run(log); err != nil {
		log.Error("server exited", "error", err.Error())
		os.Exit(1)
	}
}

func run(log *slog.Logger) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return err
	}
	log.Info("database connected")

	mailer, err := mail.New(cfg.SMTP, cfg.Mail, log)
	if err != nil {
		return err
	}

	m := metrics.New()
	registrations := service.New(store.NewPostgres(db), mailer,
		service.WithLogger(log),
		service.WithMetrics(m),
		service.WithBlockOnEmailFailure(cfg.BlockOnEmailFailure),
	)

	router := chi.NewRouter()
	handler.New(registrations, log, cfg.AllowedOrigin).Register(router)
	router.Handle("/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Addr, router)
	log.Info("starting insightx registration server", "addr", cfg.Addr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
