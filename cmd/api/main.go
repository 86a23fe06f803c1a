package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"alumvote/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load .env (best effort) and typed config.
// 2) Build app wiring (ports + adapters + use cases).
// 3) Start HTTP server.
func main() {
	_ = godotenv.Load()

	app, err := bootstrap.BuildAPI()
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	defer func() { _ = app.Close() }()

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("run: %v", err)
	}
}
