// Package main implements the entry point for the design-patterns-lab
// server, a small HTTP playground where every endpoint is backed by a
// deliberately pattern-shaped package: a shape factory feeding an SVG
// canvas, channel-dispatched notifications, and a document catalog.
package main

import (
	"context"
	"log"
)

// main loads configuration, wires the application, and runs the HTTP
// server until a shutdown signal arrives.
func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		app.logger.Error("Server exited with error", "error", err)
	}
}
