package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/yealoro/shop-cart-sub000/internal/catalog"
	httpDelivery "github.com/yealoro/shop-cart-sub000/internal/catalog/delivery/http"
	"github.com/yealoro/shop-cart-sub000/internal/catalog/domain"
	"github.com/yealoro/shop-cart-sub000/internal/catalog/repository"
	"github.com/yealoro/shop-cart-sub000/internal/catalog/storage"
	"github.com/yealoro/shop-cart-sub000/kafka"
	"github.com/yealoro/shop-cart-sub000/pkg/database"
	"github.com/yealoro/shop-cart-sub000/pkg/logger"
	"github.com/yealoro/shop-cart-sub000/pkg/tracing"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	serviceName := getEnv("OTEL_SERVICE_NAME", "catalog-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting catalog service")

	// Initialize tracer
	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "catalogdb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&domain.Category{},
		&domain.Product{},
		&domain.Variant{},
		&domain.Image{},
		&domain.Review{},
		&domain.SEO{},
		&domain.Promotion{},
	); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// The stock ledger lives on its own sqlx connection
	ledger, err := database.NewLedgerConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to stock ledger")
	}
	defer ledger.Close()

	if err := repository.NewSqlxStockRepository(ledger).EnsureSchema(context.Background()); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to ensure stock ledger schema")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	// Optional Redis price cache
	var cache *redis.Client
	if addr := getEnv("REDIS_ADDR", ""); addr != "" {
		cache = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: getEnv("REDIS_PASSWORD", ""),
		})
		if err := cache.Ping(context.Background()).Err(); err != nil {
			logger.Logger.Warn().Err(err).Str("addr", addr).Msg("Redis unavailable, price cache disabled")
			cache = nil
		} else {
			defer cache.Close()
			logger.Logger.Info().Str("addr", addr).Msg("Price cache enabled")
		}
	}

	// Optional Kafka event publisher
	var publisher *kafka.Publisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		publisher, err = kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Warn().Err(err).Str("brokers", brokers).Msg("Kafka unavailable, events disabled")
		} else {
			defer publisher.Close()
			logger.Logger.Info().Str("brokers", brokers).Msg("Event publisher enabled")
		}
	}

	// Upload directory for materialized product images
	uploadDir := getEnv("UPLOAD_DIR", "./uploads")
	store := storage.NewImageStore(uploadDir, "/uploads")

	metrics := httpDelivery.NewMetrics()
	auth := httpDelivery.NewAdminAuth(
		getEnv("ADMIN_USERNAME", "admin"),
		mustGetEnv("ADMIN_PASSWORD_HASH"),
		mustGetEnv("JWT_SECRET"),
	)

	// Initialize handlers with Wire DI
	handlers, err := catalog.InitializeHandlers(db, ledger, store, cache, publisher, metrics, auth)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize handlers")
	}

	// Setup router
	router := mux.NewRouter()
	handlers.RegisterRoutes(router)
	httpDelivery.RegisterHealthCheck(router, sqlDB, ledger)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// Materialized images are served straight from disk
	router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(store.RootDir()))))

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	httpPort := getEnv("HTTP_PORT", "8081")
	server := &http.Server{
		Addr:    ":" + httpPort,
		Handler: otelhttp.NewHandler(c.Handler(router), "catalog-http"),
	}

	go func() {
		logger.Logger.Info().
			Str("port", httpPort).
			Str("metrics_endpoint", "/metrics").
			Msg("HTTP server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Logger.Error().Err(err).Msg("Forced shutdown")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustGetEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		logger.Logger.Fatal().Str("key", key).Msg("Required environment variable is not set")
	}
	return value
}
