package catalog

import (
	"context"
	"sync"
)

type InMemoryRepository struct {
	mu          sync.RWMutex
	restaurants []Restaurant
	reviews     []Review
}

func NewInMemoryRepository(restaurants []Restaurant, reviews []Review) *InMemoryRepository {
	return &InMemoryRepository{
		restaurants: append([]Restaurant(nil), restaurants...),
		reviews:     append([]Review(nil), reviews...),
	}
}

// NewFixtureRepository returns a repository seeded with the bundled sample data.
func NewFixtureRepository() *InMemoryRepository {
	return NewInMemoryRepository(FixtureRestaurants(), FixtureReviews())
}

func (r *InMemoryRepository) ListRestaurants(ctx context.Context) ([]Restaurant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Restaurant(nil), r.restaurants...), nil
}

func (r *InMemoryRepository) ListReviews(ctx context.Context) ([]Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Review(nil), r.reviews...), nil
}

func (r *InMemoryRepository) AppendReview(ctx context.Context, review Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews = append(r.reviews, review)
	return nil
}
