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

	"golang-market-screener/internal/dashboard/config"
	delivery "golang-market-screener/internal/dashboard/delivery/http"
	"golang-market-screener/internal/dashboard/repository"
	"golang-market-screener/internal/dashboard/service"
	"golang-market-screener/pkg/logger"
	"golang-market-screener/pkg/postgres"
	"golang-market-screener/pkg/redis"
	"golang-market-screener/pkg/telegram"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the dashboard service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Dashboard Service", logger.Field("name", cfg.App.Name))

	// Initialize database
	postgresCfg := postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Database.LogLevel,
	}
	db, err := postgres.NewDB(postgresCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Initialize Redis
	redisCfg := redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	}
	redisClient, err := redis.NewClient(redisCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
	}
	defer redisClient.Close()

	// Initialize repositories
	screenerRepo := repository.NewScreenerAPIRepository(cfg, appLogger)
	watchlistRepo := repository.NewWatchlistRepository(redisClient, appLogger)
	scanJobRepo := repository.NewScanJobRepository(db.DB)
	scanStateRepo := repository.NewScanStateRepository(redisClient, appLogger)

	// Initialize services
	indicatorSvc := service.NewIndicatorService()
	projectionSvc := service.NewProjectionService()
	controller := service.NewScanController(cfg, appLogger, screenerRepo, scanJobRepo, scanStateRepo)
	defer controller.Close()

	watchlistSvc, err := service.NewWatchlistService(ctx, watchlistRepo, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to load watchlist", logger.ErrorField(err))
	}
	assetSvc := service.NewAssetDetailService(cfg, appLogger, screenerRepo, indicatorSvc)

	if cfg.Telegram.Enabled {
		notifier, err := telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
		}
		controller.RegisterConsumer(service.NewScanNotifier(appLogger, notifier, projectionSvc))
	}

	rescanScheduler, err := service.NewRescanScheduler(cfg, appLogger, controller, scanStateRepo)
	if err != nil {
		appLogger.Fatal("Invalid rescan schedule", logger.ErrorField(err))
	}
	go rescanScheduler.Start(ctx)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	apiV1 := e.Group("/api/v1")

	scanHandler := delivery.NewScanHandler(controller, projectionSvc, scanJobRepo, appLogger)
	scanHandler.RegisterRoutes(apiV1)

	assetHandler := delivery.NewAssetHandler(assetSvc, appLogger)
	assetHandler.RegisterRoutes(apiV1)

	watchlistHandler := delivery.NewWatchlistHandler(watchlistSvc, appLogger)
	watchlistHandler.RegisterRoutes(apiV1)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop()
		}
	}()

	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

func main() {
	rootCmd := &cobra.Command{Use: "dashboard-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-dashboard.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing dashboard-service CLI: %s\n", err)
		os.Exit(1)
	}
}
