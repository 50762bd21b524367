package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/YusovID/product-reviews-service/internal/config"
	"github.com/YusovID/product-reviews-service/internal/repository/dummyjson"
	"github.com/YusovID/product-reviews-service/internal/service"
	myhttp "github.com/YusovID/product-reviews-service/internal/transport/http"

	"github.com/YusovID/product-reviews-service/pkg/logger/slogpretty"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg := config.MustLoad()
	log := slogpretty.SetupLogger(cfg.Env, cfg.Log.Level)

	log.Info("starting product-reviews-service",
		slog.String("env", cfg.Env),
		slog.String("upstream", cfg.Upstream.BaseURL),
	)

	source := dummyjson.NewClient(cfg.Upstream, log)
	reviewService := service.NewReviewService(source, log)

	srv := myhttp.NewServer(log, reviewService)
	httpServer := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           srv.Routes(),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	errChan := make(chan error, 1)

	go startServer(log, httpServer, errChan)

	select {
	case err, ok := <-errChan:
		if ok {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil

	case <-ctx.Done():
		log.Info("stopping server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error shutting down http server: %w", err)
	}

	log.Info("server stopped")

	return nil
}

func startServer(log *slog.Logger, httpServer *http.Server, errChan chan error) {
	defer close(errChan)

	log.Info("service started", slog.String("addr", httpServer.Addr))

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		errChan <- fmt.Errorf("error listening and serving: %w", err)
	}
}
