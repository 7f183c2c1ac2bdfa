package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loop/internal/di"
	"loop/internal/events"
)

func main() {
	log.Println("Starting API Service...")

	app, err := di.InitializeApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Mongo.Close(context.Background())
	defer app.Bus.Shutdown()

	app.Bus.Subscribe(events.NewLogObserver())

	server := &http.Server{
		Addr:    ":" + app.Config.Server.APIPort,
		Handler: app.API.Router(),
	}

	go func() {
		log.Printf("API Service running on port %s", app.Config.Server.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down API Service...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	log.Println("API Service stopped")
}
