package main

import (
	"context"
	"log"

	"github.com/KevinDKao/restaurant-website/internal/catalog"
	"github.com/KevinDKao/restaurant-website/internal/config"
	"github.com/KevinDKao/restaurant-website/internal/db"
	"github.com/KevinDKao/restaurant-website/internal/router"

	"github.com/gin-gonic/gin"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	cfg := config.Load()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// ───────────────────────── REPOSITORY ─────────────────────────
	var repo catalog.Repository

	if cfg.DatabaseURL != "" {
		pgDB, err := db.ConnectPostgres(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatal("❌ Postgres init failed:", err)
		}
		defer pgDB.Close()

		repo = catalog.NewPostgresRepository(pgDB)
	} else {
		log.Println("DATABASE_URL not set, serving in-memory sample catalog")
		repo = catalog.NewFixtureRepository()
	}

	// ───────────────────────── SERVICE + ROUTER ─────────────────────────
	catalogService := catalog.NewService(repo)
	r := router.NewRouter(catalogService, cfg.CORSOrigins)

	// ───────────────────────── START ─────────────────────────
	log.Printf("🚀 API running at http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
