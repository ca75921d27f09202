package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/kingrain94/vehicle-assess-api/internal/config"
	"github.com/kingrain94/vehicle-assess-api/internal/repository/composite"
	"github.com/kingrain94/vehicle-assess-api/internal/service"
	"github.com/kingrain94/vehicle-assess-api/internal/service/queue"
	"github.com/kingrain94/vehicle-assess-api/internal/worker"
	"github.com/kingrain94/vehicle-assess-api/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize logger
	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	// Initialize PostgreSQL with database connections
	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to PostgreSQL", err)
	}
	defer dbConnections.Close()

	// Cleanup never touches the search index
	repo := composite.NewCompositeRepository(dbConnections, nil, config.DefaultOpenSearchConfig())

	// Initialize SQS
	sqsConfig := config.DefaultSQSConfig()
	sqsClient, err := sqsConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to SQS", err)
	}
	sqsService := queue.NewSQSService(sqsClient, sqsConfig)

	maintenance := service.NewMaintenanceService(repo, sqsService, appLogger)
	cleanupWorker := worker.NewCleanupWorker(sqsService, sqsConfig, maintenance, appLogger, config.DefaultWorkerConfig())

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	appLogger.Info("Starting cleanup worker...")
	cleanupWorker.Start()

	// Wait for shutdown signal
	<-sigChan
	appLogger.Info("Shutting down cleanup worker...")

	cleanupWorker.Stop()
	appLogger.Info("Cleanup worker stopped")
	appLogger.Sync()
}
