package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dias221467/Mongo_Exercises/internal/config"
	"github.com/Dias221467/Mongo_Exercises/internal/handlers"
	"github.com/Dias221467/Mongo_Exercises/internal/jobs"
	"github.com/Dias221467/Mongo_Exercises/internal/metrics"
	"github.com/Dias221467/Mongo_Exercises/internal/scheduler"
	"github.com/Dias221467/Mongo_Exercises/internal/services"
	"github.com/Dias221467/Mongo_Exercises/internal/telemetry"
	"github.com/Dias221467/Mongo_Exercises/pkg/logger"
	"github.com/Dias221467/Mongo_Exercises/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger(cfg.LogLevel, cfg.LogFormat)
	logger.Log.Info("Logger initialized")

	if err := cfg.Validate(); err != nil {
		logger.Log.WithError(err).Fatal("Invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.InitTracing(ctx, cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("Tracing initialization error")
	}

	st, err := openStores(ctx, cfg)
	if err != nil {
		logger.Log.WithError(err).WithField("driver", cfg.StoreDriver).Fatal("Database connection error")
	}

	// --- Metrics ---
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m, err := metrics.New(registry)
	if err != nil {
		logger.Log.WithError(err).Fatal("Metrics registration error")
	}

	// --- Services ---
	confessionService := services.NewConfessionService(st.confessions)
	bucketListService := services.NewBucketListService(st.bucketList)
	expenseService := services.NewExpenseService(st.expenses)

	// --- Jobs ---
	stats := jobs.NewCollectionStats(confessionService, bucketListService, expenseService, m.Documents)
	statsCron, err := scheduler.StartStatsCron(cfg.StatsSchedule, stats)
	if err != nil {
		logger.Log.WithError(err).WithField("schedule", cfg.StatsSchedule).Fatal("Invalid stats schedule")
	}

	// Initialize Gorilla Mux router
	router := mux.NewRouter()
	if cfg.TracingEnabled {
		router.Use(otelmux.Middleware(cfg.ServiceName))
	}
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.MetricsMiddleware(m))

	handlers.RegisterRoutes(router, handlers.Handlers{
		Confession: handlers.NewConfessionHandler(confessionService),
		BucketList: handlers.NewBucketListHandler(bucketListService),
		Expense:    handlers.NewExpenseHandler(expenseService),
		Health:     handlers.NewHealthHandler(st.ping),
		Metrics:    promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           c.Handler(router),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Log.WithField("port", cfg.Port).Info("Server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.WithError(err).Fatal("Server error")
		}
	}()

	<-ctx.Done()
	logger.Log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.WithError(err).Error("HTTP server shutdown failed")
	}
	if statsCron != nil {
		<-statsCron.Stop().Done()
	}
	if err := st.close(shutdownCtx); err != nil {
		logger.Log.WithError(err).Error("Failed to close store")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Log.WithError(err).Error("Failed to flush traces")
	}
}
