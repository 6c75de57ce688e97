package main

import (
	"context"
	"log"
	"time"

	"github.com/KevinDKao/restaurant-website/internal/catalog"
	"github.com/KevinDKao/restaurant-website/internal/config"
	"github.com/KevinDKao/restaurant-website/internal/db"
	"github.com/KevinDKao/restaurant-website/internal/storage"
)

func main() {
	cfg := config.Load()

	if missing := cfg.MissingR2(); len(missing) > 0 {
		log.Fatalf("❌ Missing env vars: %v", missing)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	log.Println("[EXPORT] starting catalog snapshot export...")

	var repo catalog.Repository
	if cfg.DatabaseURL != "" {
		pgDB, err := db.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal("❌ Postgres init failed:", err)
		}
		defer pgDB.Close()
		repo = catalog.NewPostgresRepository(pgDB)
	} else {
		log.Println("[EXPORT] DATABASE_URL not set, exporting sample catalog")
		repo = catalog.NewFixtureRepository()
	}

	r2Client, err := storage.NewR2Client(ctx, cfg.R2)
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	exporter := catalog.NewExporter(catalog.NewService(repo), r2Client)

	url, err := exporter.Export(ctx)
	if err != nil {
		log.Fatal("❌ Export failed:", err)
	}

	log.Printf("[EXPORT] ✅ snapshot uploaded to %s", url)
}
