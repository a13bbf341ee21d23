package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/handler"
	"github.com/passforge/passforge-go/internal/metrics"
	"github.com/passforge/passforge-go/internal/middleware"
	"github.com/passforge/passforge-go/internal/repository"
	"github.com/passforge/passforge-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()
	m := metrics.New()

	// Generation metadata goes to the database when one is available, otherwise to the log.
	var recorder service.Recorder = service.LogRecorder{}
	var historyHandler *handler.HistoryHandler

	db, err := repository.NewDB(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed — generation log goes to stdout", "error", err)
	} else {
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := repository.EnsureSchema(ctx, db, cfg.DatabaseDriver)
		cancel()
		if err != nil {
			slog.Warn("generation log schema unavailable — generation log goes to stdout", "error", err)
		} else {
			logRepo := repository.NewGenerationLogRepository(db)
			recorder = logRepo
			historyHandler = handler.NewHistoryHandler(service.NewHistoryService(logRepo))
		}
	}

	genService := service.NewGeneratorService(crypto.NewGenerator(crypto.SecureSource()), recorder, m)
	genHandler := handler.NewGeneratorHandler(genService)
	sessionHandler := handler.NewSessionHandler(service.NewSessionService(cfg.JWTSecret, cfg.SessionTTL))

	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", m.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(bgCtx, cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Use(middleware.SessionAuth(cfg.JWTSecret))

		r.Post("/api/v1/session", sessionHandler.HandleStart)
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
		r.Post("/api/v1/strength", genHandler.HandleStrength)

		if historyHandler != nil {
			r.With(middleware.RequireSession).Get("/api/v1/generations", historyHandler.HandleList)
		}
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "db_driver", cfg.DatabaseDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
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
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
