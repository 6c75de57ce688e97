package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// List restaurants in insertion order
// --------------------------------------------------
func (r *PostgresRepository) ListRestaurants(ctx context.Context) ([]Restaurant, error) {
	query := `
		SELECT
			id,
			name,
			cuisine,
			location,
			price_range,
			image,
			description,
			phone,
			address
		FROM restaurants
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []Restaurant

	for rows.Next() {
		var res Restaurant
		if err := rows.Scan(
			&res.ID,
			&res.Name,
			&res.Cuisine,
			&res.Location,
			&res.PriceRange,
			&res.Image,
			&res.Description,
			&res.Phone,
			&res.Address,
		); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		restaurants = append(restaurants, res)
	}

	return restaurants, rows.Err()
}

// --------------------------------------------------
// List reviews in submission order
// --------------------------------------------------
func (r *PostgresRepository) ListReviews(ctx context.Context) ([]Review, error) {
	query := `
		SELECT
			id,
			restaurant_id,
			reviewer_name,
			rating,
			review_text,
			to_char(review_date, 'YYYY-MM-DD')
		FROM reviews
		ORDER BY position
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []Review

	for rows.Next() {
		var rev Review
		if err := rows.Scan(
			&rev.ID,
			&rev.RestaurantID,
			&rev.ReviewerName,
			&rev.Rating,
			&rev.ReviewText,
			&rev.Date,
		); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, rev)
	}

	return reviews, rows.Err()
}

// --------------------------------------------------
// Append a review (single INSERT, atomic)
// --------------------------------------------------
func (r *PostgresRepository) AppendReview(ctx context.Context, review Review) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO reviews (
			id,
			restaurant_id,
			reviewer_name,
			rating,
			review_text,
			review_date
		)
		VALUES ($1, $2, $3, $4, $5, $6::date)
	`,
		review.ID,
		review.RestaurantID,
		review.ReviewerName,
		review.Rating,
		review.ReviewText,
		review.Date,
	)
	if err != nil {
		return fmt.Errorf("append review: %w", err)
	}
	return nil
}
