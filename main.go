package main

import (
	"context"
	"log"

	"github.com/hrmetrics/employee_dashboard/internal/bootstrap"
	"github.com/hrmetrics/employee_dashboard/internal/logger"
)

func main() {
	ctx := context.Background()

	app := bootstrap.NewApp()
	if err := app.Initialize(ctx); err != nil {
		log.Fatal(err)
	}

	logger.InfoLog(ctx, "Starting employee dashboard")
	if err := app.Run(); err != nil {
		logger.ErrorLog(ctx, "Server stopped: %v", err)
		log.Fatal(err)
	}
}
