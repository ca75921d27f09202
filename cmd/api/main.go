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
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/kingrain94/vehicle-assess-api/docs"
	"github.com/kingrain94/vehicle-assess-api/internal/api"
	"github.com/kingrain94/vehicle-assess-api/internal/config"
	"github.com/kingrain94/vehicle-assess-api/internal/llm"
	"github.com/kingrain94/vehicle-assess-api/internal/middleware"
	"github.com/kingrain94/vehicle-assess-api/internal/repository/composite"
	"github.com/kingrain94/vehicle-assess-api/internal/service"
	"github.com/kingrain94/vehicle-assess-api/internal/service/calendar"
	"github.com/kingrain94/vehicle-assess-api/internal/service/identity"
	"github.com/kingrain94/vehicle-assess-api/internal/service/pubsub"
	"github.com/kingrain94/vehicle-assess-api/internal/service/queue"
	"github.com/kingrain94/vehicle-assess-api/internal/service/storage"
	"github.com/kingrain94/vehicle-assess-api/pkg/logger"
)

// @title           Vehicle Assess API
// @version         1.0
// @description     Multi-tenant booking, file storage and AI vehicle assessment API.

// @host      localhost:10000
// @BasePath  /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize logger
	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	appLogger.Info("Database connections established - writer and reader connected")

	// Initialize OpenSearch
	osConfig := config.DefaultOpenSearchConfig()
	osClient, err := osConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to OpenSearch", err)
	}

	// Initialize Redis
	redisConfig := config.DefaultRedisConfig()
	redisClient, err := redisConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	// Initialize Redis pub/sub
	redisPubSub := pubsub.NewRedisPubSub(redisClient, appLogger)

	// Initialize SQS
	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	// Initialize S3
	s3Config := config.DefaultS3Config()
	s3Client, err := s3Config.GetClient(context.Background())
	if err != nil {
		appLogger.Fatal("Failed to create S3 client", err)
	}
	objectStorage := storage.NewS3Storage(s3Client, s3Config)
	if err := objectStorage.EnsureBucket(context.Background()); err != nil {
		appLogger.Warnf("Could not ensure bucket %s: %v", s3Config.BucketName, err)
	}

	provider, err := llm.NewProvider(config.DefaultLLMConfig())
	if err != nil {
		appLogger.Fatal("Failed to configure LLM provider", err)
	}

	identityProvider := identity.NewClerkClient(config.DefaultIdentityConfig(), nil)

	// A nil provider turns calendar sync off
	var calendarProvider service.CalendarProvider
	if calendarConfig := config.DefaultCalendarConfig(); calendarConfig.Enabled() {
		calendarProvider = calendar.NewClient(calendarConfig, nil)
	} else {
		appLogger.Info("Calendar sync disabled")
	}

	repo := composite.NewCompositeRepository(dbConnections, osClient, osConfig)

	// Initialize services
	searchService := service.NewSearchService(repo, appLogger)
	fileService := service.NewFileService(repo, objectStorage, s3Config.PresignTTL, appLogger)
	textStreamService := service.NewTextStreamService(repo, redisPubSub, appLogger)
	authService := service.NewAuthService(repo, identityProvider, cfg, appLogger)
	rateLimitEventService := service.NewRateLimitEventService(repo, appLogger)

	services := api.Services{
		Tenant:         service.NewTenantService(repo, cfg.DefaultRateLimit),
		Auth:           authService,
		File:           fileService,
		Booking:        service.NewBookingService(repo, sqsService, calendarProvider, appLogger),
		Search:         searchService,
		Pricing:        service.NewPricingService(repo),
		Notification:   service.NewNotificationService(repo),
		RateLimitEvent: rateLimitEventService,
		Maintenance:    service.NewMaintenanceService(repo, sqsService, appLogger),
		TextStream:     textStreamService,
		Analysis:       service.NewAnalysisService(repo, provider, fileService, textStreamService, searchService, sqsService, appLogger),
		Chat:           service.NewChatService(provider),
		Billing:        service.NewBillingService(repo, appLogger),
	}

	// Initialize middleware
	if err := middleware.RegisterValidators(); err != nil {
		appLogger.Fatal("Failed to register validators", err)
	}
	authMiddleware := middleware.NewAuthMiddleware(cfg, authService)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(redisClient, cfg, rateLimitEventService, appLogger)
	validationMiddleware := middleware.NewValidationMiddleware(appLogger)

	// Initialize server
	server := api.NewServer(
		cfg,
		services,
		authMiddleware,
		rateLimitMiddleware,
		validationMiddleware,
		appLogger,
		redisPubSub,
	)

	// Start WebSocket hub
	server.StartWebSocketHub()

	// Initialize router
	router := gin.Default()
	router.Use(middleware.Metrics())

	// Swagger documentation endpoint
	docs.SwaggerInfo.Title = "Vehicle Assess API"
	docs.SwaggerInfo.Description = "Multi-tenant booking, file storage and AI vehicle assessment API"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.ServerPort)
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Swagger UI endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup API routes
	server.SetupRoutes(router)

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	server.StopWebSocketHub()

	// Shutdown the HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
	appLogger.Sync()
}
