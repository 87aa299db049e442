package main

import (
	"context"
	"flag"
	"log"

	"github.com/hrmetrics/employee_dashboard/internal/bootstrap"
	"github.com/hrmetrics/employee_dashboard/internal/config"
	"github.com/hrmetrics/employee_dashboard/internal/database"
	"github.com/hrmetrics/employee_dashboard/internal/logger"
)

// Initializes the schema and loads the sample dataset. Run once before
// starting the dashboard; re-running performs a full reseed.
func main() {
	schemaOnly := flag.Bool("schema-only", false, "Create the schema without seeding sample data")
	flag.Parse()

	ctx := context.Background()

	if err := config.LoadEnvConfig(); err != nil {
		log.Fatal(err)
	}
	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH)

	db, err := database.NewDB(ctx, bootstrap.DBConfig())
	if err != nil {
		logger.ErrorLog(ctx, "Failed to open database: %v", err)
		log.Fatal(err)
	}
	defer db.Close()

	if *schemaOnly {
		if err := database.CreateSchema(ctx, db); err != nil {
			logger.ErrorLog(ctx, "Failed to create schema: %v", err)
			log.Fatal(err)
		}
		logger.InfoLog(ctx, "Schema created")
		return
	}

	seeder := database.NewDataSeeder(db)
	if err := seeder.SeedSampleData(ctx); err != nil {
		logger.ErrorLog(ctx, "Failed to seed sample data: %v", err)
		log.Fatal(err)
	}
}
