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

	"github.com/joho/godotenv"

	"github.com/omkarinteriors/backend/internal/config"
	"github.com/omkarinteriors/backend/internal/handler"
	"github.com/omkarinteriors/backend/internal/ledger"
	"github.com/omkarinteriors/backend/internal/logging"
	"github.com/omkarinteriors/backend/internal/mailer"
	"github.com/omkarinteriors/backend/internal/service"
)

func main() {
	_ = godotenv.Load()
	logging.Setup()

	cfg := config.Load()

	writer, err := ledger.New(context.Background(), cfg)
	if err != nil {
		logging.Fatal("ledger init failed", "error", err)
	}

	sender := mailer.NewSMTPSender(cfg)
	contactService := service.NewContactService(sender, writer)

	h := handler.New(cfg.ClientOrigin)
	contactHandler := handler.NewContactHandler(contactService, cfg.Production)
	limiter := handler.NewRateLimiter(cfg.RateLimitPerMinute)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.Handle("/api/contact", limiter.Middleware(http.HandlerFunc(contactHandler.Submit)))

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: handler.RequestLogger(h.CORS(mux)),
		// The submission path makes sequential SMTP and Sheets calls;
		// give it room before the write deadline.
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("contact server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
