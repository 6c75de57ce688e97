package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/KevinDKao/restaurant-website/internal/catalog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnectPostgres opens the pool, bootstraps the schema and seeds the
// bundled fixtures into empty tables.
func ConnectPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres connection failed: %w", err)
	}

	log.Println("[DB] connected to PostgreSQL")

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	if err := seedFixtures(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed fixtures: %w", err)
	}

	return db, nil
}

// initSchema creates the catalog tables if they are missing.
func initSchema(ctx context.Context, db *pgxpool.Pool) error {

	// -------------------------------
	// RESTAURANTS
	// -------------------------------
	restaurantsSQL := `
		CREATE TABLE IF NOT EXISTS restaurants (
			position SERIAL UNIQUE,
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			cuisine VARCHAR(100) NOT NULL,
			location VARCHAR(100) NOT NULL,
			price_range VARCHAR(4) NOT NULL
				CHECK (price_range IN ('$', '$$', '$$$', '$$$$')),
			image VARCHAR(500) NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			phone VARCHAR(50) NOT NULL DEFAULT '',
			address VARCHAR(255) NOT NULL DEFAULT ''
		)
	`
	if _, err := db.Exec(ctx, restaurantsSQL); err != nil {
		return err
	}

	// -------------------------------
	// REVIEWS
	// -------------------------------
	reviewsSQL := `
		CREATE TABLE IF NOT EXISTS reviews (
			position BIGSERIAL UNIQUE,
			id UUID PRIMARY KEY,
			restaurant_id VARCHAR(64) NOT NULL REFERENCES restaurants(id),
			reviewer_name VARCHAR(255) NOT NULL,
			rating SMALLINT NOT NULL CHECK (rating BETWEEN 1 AND 5),
			review_text TEXT NOT NULL DEFAULT '',
			review_date DATE NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, reviewsSQL); err != nil {
		return err
	}

	indexSQL := `
		CREATE INDEX IF NOT EXISTS reviews_restaurant_id_idx
		ON reviews (restaurant_id)
	`
	if _, err := db.Exec(ctx, indexSQL); err != nil {
		return err
	}

	log.Println("[DB] schema initialized")
	return nil
}

// seedFixtures loads the sample catalog once, in a single transaction.
func seedFixtures(ctx context.Context, db *pgxpool.Pool) error {
	var count int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM restaurants`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, r := range catalog.FixtureRestaurants() {
		batch.Queue(`
			INSERT INTO restaurants (id, name, cuisine, location, price_range, image, description, phone, address)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, r.ID, r.Name, r.Cuisine, r.Location, string(r.PriceRange), r.Image, r.Description, r.Phone, r.Address)
	}
	for _, rev := range catalog.FixtureReviews() {
		batch.Queue(`
			INSERT INTO reviews (id, restaurant_id, reviewer_name, rating, review_text, review_date)
			VALUES ($1, $2, $3, $4, $5, $6::date)
		`, rev.ID, rev.RestaurantID, rev.ReviewerName, rev.Rating, rev.ReviewText, rev.Date)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	log.Println("[DB] seeded sample restaurants and reviews")
	return nil
}
