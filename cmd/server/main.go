package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boardinghouse/internal/authz"
	"boardinghouse/internal/cache"
	"boardinghouse/internal/config"
	"boardinghouse/internal/database"
	"boardinghouse/internal/handler"
	"boardinghouse/internal/queue"
	"boardinghouse/internal/repository"
	"boardinghouse/internal/router"
	"boardinghouse/internal/service"
	"boardinghouse/internal/settlement"
	"boardinghouse/internal/storage"
	"boardinghouse/internal/validator"
	"boardinghouse/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// @title           Boarding House API
// @version         1.0
// @description     A REST API for boarding house management built with Gin, MongoDB, and Redis.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	logrus.Info("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// S3 Storage
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.AccessTokenSecret, cfg.AccessTokenExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	refreshTokenRepo := repository.NewRefreshTokenRepository(mongoDB.Database)
	walletRepo := repository.NewWalletRepository(mongoDB.Database)
	contractRepo := repository.NewContractRepository(mongoDB.Database)
	occupancyRepo := repository.NewOccupancyRepository(mongoDB.Database)
	invoiceRepo := repository.NewInvoiceRepository(mongoDB.Database)
	settingsRepo := repository.NewSettingsRepository(mongoDB.Database)
	serviceRequestRepo := repository.NewServiceRequestRepository(mongoDB.Database)

	// Authorization
	authorizer := authz.NewLocalAuthorizer()

	// Settlement queue and simulator
	settlementQueue := queue.NewMemoryQueue(cfg.SettlementQueueSize)
	settler := settlement.NewSimulator(cfg.SettlementSuccessRate, cfg.SettlementMinDelay, cfg.SettlementMaxDelay)

	// Service layer
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Cache:            redisCache,
		JWTManager:       jwtManager,
		AccessTokenTTL:   cfg.AccessTokenExpiry,
		RefreshTokenTTL:  cfg.RefreshTokenExpiry,
	})
	userService := service.NewUserService(userRepo, redisCache)
	walletService := service.NewWalletService(walletRepo, userRepo, settlementQueue, redisCache)
	contractService := service.NewContractService(contractRepo, userRepo)
	occupancyService := service.NewOccupancyService(occupancyRepo, userRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, userRepo, contractRepo)
	settingsService := service.NewSettingsService(settingsRepo, userRepo, s3Client)
	serviceRequestService := service.NewServiceRequestService(serviceRequestRepo, userRepo)

	// Settlement processor (wallet service applies outcomes)
	settlementProcessor := queue.NewProcessor(settlementQueue, settler, walletService, cfg.SettlementWorkers)

	// Handler layer
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	walletHandler := handler.NewWalletHandler(walletService)
	contractHandler := handler.NewContractHandler(contractService)
	occupancyHandler := handler.NewOccupancyHandler(occupancyService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	serviceRequestHandler := handler.NewServiceRequestHandler(serviceRequestService)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:           authHandler,
		UserHandler:           userHandler,
		WalletHandler:         walletHandler,
		ContractHandler:       contractHandler,
		OccupancyHandler:      occupancyHandler,
		InvoiceHandler:        invoiceHandler,
		SettingsHandler:       settingsHandler,
		ServiceRequestHandler: serviceRequestHandler,
		JWTManager:            jwtManager,
		Authorizer:            authorizer,
	})

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start settlement processor
	settlementProcessor.Start(ctx)

	// Re-enqueue transactions left in processing by a previous run
	reconcileCtx, reconcileCancel := context.WithTimeout(ctx, 30*time.Second)
	if err := walletService.Reconcile(reconcileCtx); err != nil {
		logrus.WithError(err).Error("Settlement reconciliation failed")
	}
	reconcileCancel()

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		logrus.WithField("addr", addr).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logrus.Info("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server first (drain connections)
	logrus.Info("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("HTTP server shutdown error")
	}

	// Cancel context to signal processor shutdown
	cancel()

	// Stop settlement processor (waits for workers)
	logrus.Info("Stopping settlement processor...")
	settlementProcessor.Stop()

	logrus.Info("Server shutdown complete")
}
