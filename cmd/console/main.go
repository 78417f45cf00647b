package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"clinic-console/cmd/console/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	// SIGINT/SIGTERM cancel the root context; Run drains from there.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx); err != nil {
		log.Fatalf("application exited with error: %v", err)
	}
}
