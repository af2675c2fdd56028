package main

import (
	"context"
	"log"

	"github.com/palletops/opsdash/internal/bootstrap"
	"github.com/palletops/opsdash/internal/logger"
)

func main() {
	ctx := context.Background()

	app := bootstrap.NewApp()
	if err := app.Initialize(ctx); err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	logger.InfoLog(ctx, "Starting report server")
	if err := app.Run(); err != nil {
		logger.ErrorLog(ctx, "Server stopped", err)
		log.Fatal(err)
	}
}
