package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-finance-api/internal/config"
	pasetoinfra "github.com/go-finance-api/internal/infrastructure/paseto"
	"github.com/go-finance-api/internal/infrastructure/postgres"
	redisinfra "github.com/go-finance-api/internal/infrastructure/redis"
	"github.com/go-finance-api/internal/infrastructure/smtp"
	transporthttp "github.com/go-finance-api/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, reading from environment")
	}

	cfg := config.Load()
	setupLogger(cfg)

	// Postgres pool + schema migrations.
	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		slog.Error("open database", "err", err)
		os.Exit(1)
	}
	if err := postgres.Migrate(db); err != nil {
		slog.Error("migrate database", "err", err)
		os.Exit(1)
	}

	// Redis-backed expiring store for OTP codes.
	redisClient, err := redisinfra.NewClient(cfg)
	if err != nil {
		slog.Error("connect cache", "err", err)
		os.Exit(1)
	}

	// PASETO token provider. Bad key material is fatal: the process cannot
	// issue or verify credentials without it.
	tokenProvider, err := pasetoinfra.NewProvider(cfg)
	if err != nil {
		slog.Error("token provider", "err", err)
		os.Exit(1)
	}

	deps := &transporthttp.Deps{
		UserRepo:      postgres.NewUserRepo(db),
		AccountRepo:   postgres.NewAccountRepo(db),
		OTPStore:      redisinfra.NewStore(redisClient),
		TokenProvider: tokenProvider,
		Mailer:        smtp.NewMailer(cfg),
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.AppPort, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "err", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func setupLogger(cfg *config.Config) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.LogPretty {
		h = slog.NewTextHandler(os.Stdout, opts)
	} else {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(h))
}
