package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/OfekRoodich/popcorn-palace/internal/di"
	"github.com/OfekRoodich/popcorn-palace/internal/middleware"
	"github.com/OfekRoodich/popcorn-palace/internal/worker"
	"github.com/OfekRoodich/popcorn-palace/pkg/config"
	"github.com/OfekRoodich/popcorn-palace/pkg/database"
	"github.com/OfekRoodich/popcorn-palace/pkg/kafka"
	"github.com/OfekRoodich/popcorn-palace/pkg/logger"
	"github.com/OfekRoodich/popcorn-palace/pkg/redis"
	"github.com/OfekRoodich/popcorn-palace/pkg/telemetry"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logCfg := &logger.Config{
		Level:       cfg.App.LogLevel,
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}
	if err := logger.Init(logCfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appLog := logger.Get()
	appLog.Info("Starting Popcorn Palace...")

	ctx := context.Background()

	// Initialize OpenTelemetry
	telemetryCfg := &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
		SampleRatio:    cfg.OTel.SampleRatio,
	}
	if _, err := telemetry.Init(ctx, telemetryCfg); err != nil {
		appLog.Warn(fmt.Sprintf("Failed to initialize telemetry: %v", err))
	} else if telemetryCfg.Enabled {
		appLog.Info(fmt.Sprintf("Telemetry initialized (collector: %s)", telemetryCfg.CollectorAddr))
	}
	defer telemetry.Shutdown(ctx)

	// Initialize database connection
	dbCfg := &database.PostgresConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.ConnMaxLifetime,
		MaxConnIdleTime: cfg.Database.ConnMaxIdleTime,
		ConnectTimeout:  5 * time.Second,
		MaxRetries:      3,
		RetryInterval:   1 * time.Second,
		EnableTracing:   cfg.OTel.Enabled,
	}
	db, err := database.NewPostgres(ctx, dbCfg)
	if err != nil {
		appLog.Fatal(fmt.Sprintf("Database connection failed: %v", err))
	}
	defer db.Close()
	appLog.Info(fmt.Sprintf("Database connected (pool: min=%d, max=%d)", dbCfg.MinConns, dbCfg.MaxConns))

	// Initialize Redis connection (optional - caching is disabled if it fails)
	var redisClient *redis.Client
	redisCfg := &redis.Config{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	}
	redisClient, err = redis.NewClient(ctx, redisCfg)
	if err != nil {
		appLog.Warn(fmt.Sprintf("Redis connection failed (caching disabled): %v", err))
		redisClient = nil
	} else {
		defer redisClient.Close()
		appLog.Info(fmt.Sprintf("Redis connected (%s)", redisCfg.Addr()))
	}

	// Initialize Kafka producer (optional - outbox drains only when enabled)
	var publisher worker.Publisher
	if cfg.Kafka.Enabled {
		producer, err := kafka.NewProducer(&kafka.ProducerConfig{
			Brokers:       cfg.Kafka.Brokers,
			ClientID:      cfg.Kafka.ClientID,
			MaxRetries:    3,
			RetryInterval: time.Second,
		})
		if err != nil {
			appLog.Warn(fmt.Sprintf("Kafka producer init failed (events disabled): %v", err))
		} else {
			defer producer.Close()
			publisher = producer
			appLog.Info(fmt.Sprintf("Kafka producer connected (%v)", cfg.Kafka.Brokers))
		}
	}

	// Build dependency injection container
	container := di.NewContainer(&di.ContainerConfig{
		DB:        db,
		Redis:     redisClient,
		Publisher: publisher,
	})

	// Start the outbox worker
	if container.OutboxWorker != nil {
		if err := container.OutboxWorker.Start(ctx); err != nil {
			appLog.Fatal(fmt.Sprintf("Failed to start outbox worker: %v", err))
		}
		defer container.OutboxWorker.Stop()
	}

	// Setup Gin
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(appLog))
	router.Use(middleware.CORS())

	if cfg.OTel.Enabled {
		router.Use(telemetry.TracingMiddleware(cfg.OTel.ServiceName))
	}

	// Health check endpoints
	router.GET("/health", container.HealthHandler.Health)
	router.GET("/ready", container.HealthHandler.Ready)

	// API routes
	movies := router.Group("/movies")
	{
		movies.GET("", container.MovieHandler.List)
		movies.GET("/:id", container.MovieHandler.GetByID)
		movies.POST("", container.MovieHandler.Create)
		movies.PUT("/:id", container.MovieHandler.Update)
		movies.DELETE("/:id", container.MovieHandler.Delete)
	}

	theaters := router.Group("/theaters")
	{
		theaters.GET("", container.TheaterHandler.List)
		theaters.GET("/:id", container.TheaterHandler.GetByID)
		theaters.POST("", container.TheaterHandler.Create)
		theaters.PUT("/:id", container.TheaterHandler.Update)
		theaters.DELETE("/:id", container.TheaterHandler.Delete)
	}

	showtimes := router.Group("/showtimes")
	{
		showtimes.GET("", container.ShowtimeHandler.List)
		showtimes.GET("/:id", container.ShowtimeHandler.GetByID)
		showtimes.POST("", container.ShowtimeHandler.Create)
		showtimes.PUT("/:id", container.ShowtimeHandler.Update)
		showtimes.DELETE("/:id", container.ShowtimeHandler.Delete)
		showtimes.PUT("/:id/seats", container.ShowtimeHandler.BookSeats)
	}

	bookings := router.Group("/bookings")
	{
		bookings.POST("", container.BookingHandler.Create)
		bookings.GET("/:id", container.BookingHandler.GetByID)
		bookings.DELETE("/:id", container.BookingHandler.Cancel)
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 2 * time.Second,
	}

	// Start server in goroutine
	go func() {
		appLog.Info(fmt.Sprintf("Popcorn Palace listening on %s", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal(fmt.Sprintf("Failed to start server: %v", err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Fatal(fmt.Sprintf("Server forced to shutdown: %v", err))
	}

	appLog.Info("Server exited gracefully")
}
