package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/kingrain94/vehicle-assess-api/internal/config"
	"github.com/kingrain94/vehicle-assess-api/internal/llm"
	"github.com/kingrain94/vehicle-assess-api/internal/repository/composite"
	"github.com/kingrain94/vehicle-assess-api/internal/service"
	"github.com/kingrain94/vehicle-assess-api/internal/service/pubsub"
	"github.com/kingrain94/vehicle-assess-api/internal/service/queue"
	"github.com/kingrain94/vehicle-assess-api/internal/service/storage"
	"github.com/kingrain94/vehicle-assess-api/internal/worker"
	"github.com/kingrain94/vehicle-assess-api/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to PostgreSQL", err)
	}
	defer dbConnections.Close()

	osConfig := config.DefaultOpenSearchConfig()
	osClient, err := osConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to OpenSearch", err)
	}
	repo := composite.NewCompositeRepository(dbConnections, osClient, osConfig)

	// Stream chunks reach websocket clients through Redis
	redisClient, err := config.DefaultRedisConfig().GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()
	redisPubSub := pubsub.NewRedisPubSub(redisClient, appLogger)

	s3Config := config.DefaultS3Config()
	s3Client, err := s3Config.GetClient(context.Background())
	if err != nil {
		appLogger.Fatal("Failed to create S3 client", err)
	}

	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	provider, err := llm.NewProvider(config.DefaultLLMConfig())
	if err != nil {
		appLogger.Fatal("Failed to configure LLM provider", err)
	}

	fileService := service.NewFileService(repo, storage.NewS3Storage(s3Client, s3Config), s3Config.PresignTTL, appLogger)
	textStreamService := service.NewTextStreamService(repo, redisPubSub, appLogger)
	analysisService := service.NewAnalysisService(
		repo,
		provider,
		fileService,
		textStreamService,
		service.NewSearchService(repo, appLogger),
		sqsService,
		appLogger,
	)

	analysisWorker := worker.NewAnalysisWorker(sqsService, sqsConfig, analysisService, appLogger, config.DefaultWorkerConfig())
	analysisWorker.Start()
	appLogger.Info("Analysis worker started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down worker...")
	analysisWorker.Stop()
	redisPubSub.Close()
	appLogger.Info("Worker stopped")
	appLogger.Sync()
}
