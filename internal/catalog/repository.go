package catalog

import "context"

// Repository holds the restaurant and review collections.
// Service depends ONLY on this interface.
type Repository interface {
	ListRestaurants(ctx context.Context) ([]Restaurant, error)
	ListReviews(ctx context.Context) ([]Review, error)

	// Append is the only mutation.
	AppendReview(ctx context.Context, review Review) error
}
