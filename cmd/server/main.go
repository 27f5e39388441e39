package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/agenthands/newsguard/internal/classifier"
	"github.com/agenthands/newsguard/internal/config"
	"github.com/agenthands/newsguard/internal/logging"
	"github.com/agenthands/newsguard/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	envErr := godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if envErr != nil {
		log.Debug("No .env file found, using environment and config file")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The model is loaded once here and shared read-only by every request.
	backend, err := classifier.NewBackend(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize classifier: %w", err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.Warn("failed to release classifier backend", zap.Error(err))
		}
	}()

	svc := classifier.NewService(backend, cfg.Labels, cfg.Classifier.Precision, log)

	gin.SetMode(cfg.Server.Mode)
	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.Server.Port),
		Handler: server.NewServer(svc, log, cfg.Server.Docs).SetupRouter(),
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Starting server",
			zap.String("addr", srv.Addr),
			zap.String("backend", backend.Name()),
			zap.String("mode", cfg.Server.Mode),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownGrace())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server exited")
	return nil
}
