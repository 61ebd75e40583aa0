package main

import (
	"context"
	"errors"
	"log"

	"teamboard/config"
	"teamboard/models"
	"teamboard/realtime"
	"teamboard/routes"
	"teamboard/storage"
)

func main() {
	cfg := config.Load()

	db := config.ConnectDB(cfg)
	if err := db.AutoMigrate(models.All()...); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	hub := realtime.NewHub()
	go hub.Run()

	var files storage.Storage
	s3, err := storage.NewS3Storage(context.Background(), cfg)
	switch {
	case err == nil:
		files = s3
	case errors.Is(err, storage.ErrNotConfigured):
		log.Println("storage: no backend configured, uploads will return 503")
	default:
		log.Fatalf("storage: %v", err)
	}

	r := routes.SetupRouter(db, hub, files, cfg)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
