// Command server runs the Solace companion backend.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/iudanet/solace/internal/chat"
	"github.com/iudanet/solace/internal/config"
	"github.com/iudanet/solace/internal/crypto"
	"github.com/iudanet/solace/internal/llm"
	"github.com/iudanet/solace/internal/server"
	"github.com/iudanet/solace/internal/server/auth"
	"github.com/iudanet/solace/internal/server/handlers"
	"github.com/iudanet/solace/internal/server/metrics"
	"github.com/iudanet/solace/internal/server/middleware"
	"github.com/iudanet/solace/internal/server/sessions"
	"github.com/iudanet/solace/internal/server/storage/sqlite"
)

// Build information, set via ldflags.
var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const shutdownTimeout = 10 * time.Second

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("solace-server %s (built %s, commit %s)\n", Version, BuildDate, GitCommit)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", slog.Any("error", err))
		}
	}()

	// Session windows outlive restarts; retention must cover the token TTL so
	// an exhausted window cannot be reopened by a still-valid token.
	tracker, err := sessions.NewTracker(cfg.SessionDBPath, cfg.SessionCap, cfg.TokenTTL, logger)
	if err != nil {
		return fmt.Errorf("failed to open session tracker: %w", err)
	}
	defer func() {
		if err := tracker.Close(); err != nil {
			logger.Error("failed to close session tracker", slog.Any("error", err))
		}
	}()

	cipher, err := crypto.NewCipher(cfg.EncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize note cipher: %w", err)
	}

	completer, err := llm.NewGeminiCompleter(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return fmt.Errorf("failed to initialize completer: %w", err)
	}

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	gate := auth.NewGate(tokens, tracker)
	chatService := chat.NewService(completer, cfg.LLMTimeout, logger)

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow, logger)
	defer rateLimiter.Stop()

	router := server.NewRouter(&server.RouterDeps{
		Logger:            logger,
		Gate:              gate,
		Metrics:           collector,
		Gatherer:          registry,
		RateLimiter:       rateLimiter,
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
		Auth:              handlers.NewAuthHandler(logger, store, tokens),
		Chat:              handlers.NewChatHandler(logger, chatService, collector),
		Mood:              handlers.NewMoodHandler(logger, store, cipher),
		Content:           handlers.NewContentHandler(logger),
		Health:            handlers.NewHealthHandler(logger, Version),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			slog.String("addr", srv.Addr),
			slog.String("version", Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
