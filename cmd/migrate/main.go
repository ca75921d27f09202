package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/kingrain94/vehicle-assess-api/internal/config"
	"github.com/kingrain94/vehicle-assess-api/internal/repository/postgres"
	"github.com/kingrain94/vehicle-assess-api/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	status := flag.Bool("status", false, "List pending migrations without applying them")
	timeout := flag.Duration("timeout", 5*time.Minute, "Give up after this long")
	flag.Parse()

	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	// Migrations always run against the writer
	migrator := postgres.NewMigrator(dbConnections.Writer, postgres.DefaultMigrationSteps(), appLogger.Named("migrate"))

	if *status {
		pending, err := migrator.Pending(ctx)
		if err != nil {
			appLogger.Fatal("Failed to read migration status", err)
		}
		if len(pending) == 0 {
			fmt.Println("Database is up to date")
			return
		}
		for _, step := range pending {
			fmt.Printf("pending: %s\n", step.Name)
		}
		return
	}

	ran, err := migrator.Run(ctx)
	if err != nil {
		appLogger.Fatal("Migration aborted", err)
	}
	appLogger.Infof("Applied %d migrations", len(ran))
	appLogger.Sync()
}
