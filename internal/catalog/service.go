package catalog

import (
	"context"
	"errors"
	"log"
	"time"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// --------------------------------------------------
// Aggregates
// --------------------------------------------------
func (s *Service) AverageRating(ctx context.Context, restaurantID string) (float64, error) {
	reviews, err := s.repo.ListReviews(ctx)
	if err != nil {
		return 0, err
	}
	return AverageRating(reviews, restaurantID), nil
}

func (s *Service) CountReviews(ctx context.Context, restaurantID string) (int, error) {
	reviews, err := s.repo.ListReviews(ctx)
	if err != nil {
		return 0, err
	}
	return CountReviews(reviews, restaurantID), nil
}

func (s *Service) ListReviews(ctx context.Context, restaurantID string) ([]Review, error) {
	reviews, err := s.repo.ListReviews(ctx)
	if err != nil {
		return nil, err
	}
	return ReviewsFor(reviews, restaurantID), nil
}

// --------------------------------------------------
// Listing: filter, then sort
// --------------------------------------------------
func (s *Service) ListRestaurants(
	ctx context.Context,
	criteria Criteria,
	key SortKey,
) ([]Summary, error) {

	restaurants, err := s.repo.ListRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	reviews, err := s.repo.ListReviews(ctx)
	if err != nil {
		return nil, err
	}

	listed := SortRestaurants(FilterRestaurants(restaurants, criteria), key, reviews)

	summaries := make([]Summary, 0, len(listed))
	for _, r := range listed {
		summaries = append(summaries, summarize(r, reviews))
	}
	return summaries, nil
}

func summarize(r Restaurant, reviews []Review) Summary {
	avg := AverageRating(reviews, r.ID)
	return Summary{
		Restaurant:    r,
		AverageRating: avg,
		ReviewCount:   CountReviews(reviews, r.ID),
		Stars:         Stars(avg),
	}
}

// --------------------------------------------------
// Lookup
// --------------------------------------------------
func (s *Service) GetRestaurantByID(ctx context.Context, id string) (*Restaurant, error) {
	restaurants, err := s.repo.ListRestaurants(ctx)
	if err != nil {
		return nil, err
	}

	for i := range restaurants {
		if restaurants[i].ID == id {
			return &restaurants[i], nil
		}
	}
	return nil, ErrRestaurantNotFound
}

func (s *Service) GetRestaurantDetail(ctx context.Context, id string) (*Detail, error) {
	restaurant, err := s.GetRestaurantByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.repo.ListReviews(ctx)
	if err != nil {
		return nil, err
	}

	return &Detail{
		Summary: summarize(*restaurant, reviews),
		Reviews: ReviewsFor(reviews, id),
	}, nil
}

func (s *Service) Options(ctx context.Context) (Options, error) {
	restaurants, err := s.repo.ListRestaurants(ctx)
	if err != nil {
		return Options{}, err
	}
	return BuildOptions(restaurants), nil
}

// --------------------------------------------------
// Review submission
// --------------------------------------------------
func (s *Service) AppendReview(ctx context.Context, in ReviewInput) (*Review, error) {
	review, err := NewReview(in)
	if err != nil {
		return nil, err
	}

	if _, err := s.GetRestaurantByID(ctx, review.RestaurantID); err != nil {
		if errors.Is(err, ErrRestaurantNotFound) {
			return nil, &ValidationError{Field: "restaurant_id", Message: "unknown restaurant " + review.RestaurantID}
		}
		return nil, err
	}

	if err := s.repo.AppendReview(ctx, *review); err != nil {
		return nil, err
	}

	log.Printf(
		"[CATALOG] review %s appended for restaurant %s (rating=%d)",
		review.ID, review.RestaurantID, review.Rating,
	)
	return review, nil
}

// --------------------------------------------------
// Snapshot for export
// --------------------------------------------------
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	summaries, err := s.ListRestaurants(ctx, AllCriteria(), SortNameAsc)
	if err != nil {
		return nil, err
	}
	reviews, err := s.repo.ListReviews(ctx)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		GeneratedAt: time.Now().UTC(),
		Restaurants: summaries,
		Reviews:     reviews,
	}, nil
}
