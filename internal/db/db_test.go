package db

import (
	"context"
	"os"
	"testing"

	"github.com/KevinDKao/restaurant-website/internal/catalog"
)

func TestConnectPostgres_MissingDSN(t *testing.T) {
	if _, err := ConnectPostgres(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty DATABASE_URL")
	}
}

func TestConnectPostgres_InvalidDSN(t *testing.T) {
	if _, err := ConnectPostgres(context.Background(), "postgres://%zz"); err == nil {
		t.Fatal("expected error for malformed DATABASE_URL")
	}
}

// TestConnectPostgres_SeedsCatalog runs against a real database when
// DATABASE_URL is set.
func TestConnectPostgres_SeedsCatalog(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	pool, err := ConnectPostgres(ctx, dsn)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	repo := catalog.NewPostgresRepository(pool)

	restaurants, err := repo.ListRestaurants(ctx)
	if err != nil {
		t.Fatalf("list restaurants: %v", err)
	}
	if len(restaurants) < len(catalog.FixtureRestaurants()) {
		t.Fatalf("expected at least %d restaurants, got %d", len(catalog.FixtureRestaurants()), len(restaurants))
	}
	if restaurants[0].ID != "1" {
		t.Errorf("expected first restaurant id 1, got %s", restaurants[0].ID)
	}
}
