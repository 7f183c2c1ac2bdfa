package main

import (
	"context"
	"log"
	"net/http"

	"loop/internal/config"
	"loop/internal/dbmongo"
	"loop/internal/media"
)

func main() {
	cfg := config.LoadConfig()

	mongoClient, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Close(context.Background())

	store := dbmongo.NewObjectStore(mongoClient)
	server := media.NewBlobServer(store)

	log.Printf("Media server starting on port %s", cfg.Server.MediaServerPort)
	log.Printf("Serving blobs at: http://localhost:%s/media/{path}", cfg.Server.MediaServerPort)

	if err := http.ListenAndServe(":"+cfg.Server.MediaServerPort, server); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
