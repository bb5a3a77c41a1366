//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"time"

	"boardinghouse/internal/authz"
	"boardinghouse/internal/cache"
	"boardinghouse/internal/handler"
	"boardinghouse/internal/queue"
	"boardinghouse/internal/repository"
	"boardinghouse/internal/router"
	"boardinghouse/internal/service"
	"boardinghouse/internal/settlement"
	"boardinghouse/internal/storage"
	"boardinghouse/pkg/auth"
	"boardinghouse/test/api/testdb"

	"github.com/gin-gonic/gin"
)

const (
	// TestAccessTokenSecret is the JWT secret used in tests.
	TestAccessTokenSecret = "test-secret-key-for-api-tests"
	// TestAccessTokenExpiry is the access token expiry time used in tests.
	TestAccessTokenExpiry = 15 * time.Minute
	// TestRefreshTokenExpiry is the refresh token expiry time used in tests.
	TestRefreshTokenExpiry = 7 * 24 * time.Hour
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
	// TestSettlementWorkers is the settlement worker count used in tests.
	TestSettlementWorkers = 2
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer
	MinIO   *testdb.MinIOContainer

	// Repositories (for direct database access in tests)
	UserRepo           repository.UserRepository
	RefreshTokenRepo   repository.RefreshTokenRepository
	WalletRepo         repository.WalletRepository
	ContractRepo       repository.ContractRepository
	OccupancyRepo      repository.OccupancyRepository
	InvoiceRepo        repository.InvoiceRepository
	SettingsRepo       repository.SettingsRepository
	ServiceRequestRepo repository.ServiceRequestRepository

	// Services (for direct service access in tests)
	AuthService           service.AuthServicer
	UserService           service.UserServicer
	WalletService         service.WalletServicer
	ContractService       service.ContractServicer
	OccupancyService      service.OccupancyServicer
	InvoiceService        service.InvoiceServicer
	SettingsService       service.SettingsServicer
	ServiceRequestService service.ServiceRequestServicer

	// Auth
	JWTManager *auth.JWTManager

	// Settlement
	SettlementQueue     *queue.MemoryQueue
	SettlementProcessor *queue.Processor
	settler             settlement.Service
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	// Start containers
	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	minioContainer, err := testdb.SetupMinIO(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		return nil, err
	}

	// Create cache (uses real Redis)
	redisCache := cache.NewRedis(redisContainer.URI)

	// Create storage (uses real MinIO)
	s3Client := storage.NewS3Client(
		minioContainer.Endpoint,
		minioContainer.AccessKey,
		minioContainer.SecretKey,
		minioContainer.Bucket,
		false, // useSSL
	)

	// JWT Manager
	jwtManager := auth.NewJWTManager(TestAccessTokenSecret, TestAccessTokenExpiry)

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

	// Settlement queue with a fast, always-successful settler so tests
	// can rely on deterministic outcomes.
	settlementQueue := queue.NewMemoryQueue(100)
	settler := settlement.NewSimulator(1.0, time.Millisecond, 5*time.Millisecond)

	// Service layer
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:         userRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Cache:            redisCache,
		JWTManager:       jwtManager,
		AccessTokenTTL:   TestAccessTokenExpiry,
		RefreshTokenTTL:  TestRefreshTokenExpiry,
	})
	userService := service.NewUserService(userRepo, redisCache)
	walletService := service.NewWalletService(walletRepo, userRepo, settlementQueue, redisCache)
	contractService := service.NewContractService(contractRepo, userRepo)
	occupancyService := service.NewOccupancyService(occupancyRepo, userRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, userRepo, contractRepo)
	settingsService := service.NewSettingsService(settingsRepo, userRepo, s3Client)
	serviceRequestService := service.NewServiceRequestService(serviceRequestRepo, userRepo)

	// Settlement processor
	settlementProcessor := queue.NewProcessor(settlementQueue, settler, walletService, TestSettlementWorkers)

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

	return &TestServer{
		Router:                r,
		MongoDB:               mongoDB,
		Redis:                 redisContainer,
		MinIO:                 minioContainer,
		UserRepo:              userRepo,
		RefreshTokenRepo:      refreshTokenRepo,
		WalletRepo:            walletRepo,
		ContractRepo:          contractRepo,
		OccupancyRepo:         occupancyRepo,
		InvoiceRepo:           invoiceRepo,
		SettingsRepo:          settingsRepo,
		ServiceRequestRepo:    serviceRequestRepo,
		AuthService:           authService,
		UserService:           userService,
		WalletService:         walletService,
		ContractService:       contractService,
		OccupancyService:      occupancyService,
		InvoiceService:        invoiceService,
		SettingsService:       settingsService,
		ServiceRequestService: serviceRequestService,
		JWTManager:            jwtManager,
		SettlementQueue:       settlementQueue,
		SettlementProcessor:   settlementProcessor,
		settler:               settler,
	}, nil
}

// Cleanup terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.MinIO != nil {
		_ = ts.MinIO.Cleanup(ctx)
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}

// StartSettlementProcessor starts the settlement processor.
func (ts *TestServer) StartSettlementProcessor(ctx context.Context) {
	ts.SettlementProcessor.Start(ctx)
}

// StopSettlementProcessor stops the settlement processor and resets the queue.
// This ensures the queue can be used by subsequent tests.
func (ts *TestServer) StopSettlementProcessor() {
	ts.SettlementProcessor.Stop()
	// Reset the queue so it can be used again
	ts.SettlementQueue.Reset()
	// Create a new processor since the old one has shutdown state
	ts.SettlementProcessor = queue.NewProcessor(ts.SettlementQueue, ts.settler, ts.WalletService, TestSettlementWorkers)
}
