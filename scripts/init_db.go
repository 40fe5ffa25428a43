package main

import (
	"context"
	"log"

	"github.com/guetofya/storefront/internal/config"
	"github.com/guetofya/storefront/internal/database"
	"github.com/guetofya/storefront/internal/storage"
	"github.com/guetofya/storefront/internal/store"
)

// Provisions the Postgres backend: creates the collections table and
// seeds the catalog if empty. Usage: go run scripts/init_db.go
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Load config: %v", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("Connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	adapter := storage.NewPostgres(db)
	if err := adapter.Init(ctx); err != nil {
		log.Fatalf("Create collections table: %v", err)
	}

	if _, err := store.Open(ctx, adapter); err != nil {
		log.Fatalf("Seed collections: %v", err)
	}

	log.Printf("Database initialized")
}
