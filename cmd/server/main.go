package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"familyfinance/internal/config"
	"familyfinance/internal/handlers"
	"familyfinance/internal/logger"
	"familyfinance/internal/metrics"
	"familyfinance/internal/models"
	"familyfinance/internal/security"
	"familyfinance/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log, err := logger.New(cfg.Environment)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	baseCurrency, err := models.ParseCurrency(cfg.BaseCurrency)
	if err != nil {
		log.Fatal("Invalid base currency", "base_currency", cfg.BaseCurrency, "error", err)
	}

	// Metrics registry
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	// Initialize services
	householdService := service.NewHouseholdService(baseCurrency, m, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	limiter := security.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	go limiter.Run(ctx, time.Hour)

	// Initialize handlers
	middleware := handlers.NewMiddleware(limiter, m, log)
	householdHandler := handlers.NewHouseholdHandler(householdService, log)
	router := handlers.NewRouter(householdHandler, middleware, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", addr, "base_currency", baseCurrency, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", "error", err)
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()
	log.Info("Server shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", "error", err)
	}
}
