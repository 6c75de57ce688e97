package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"
)

// --------------------------------------------------
// Mock Repository
// --------------------------------------------------

type MockRepository struct {
	*InMemoryRepository
	listErr   error
	appendErr error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{InMemoryRepository: NewFixtureRepository()}
}

func (m *MockRepository) ListRestaurants(ctx context.Context) ([]Restaurant, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.InMemoryRepository.ListRestaurants(ctx)
}

func (m *MockRepository) ListReviews(ctx context.Context) ([]Review, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.InMemoryRepository.ListReviews(ctx)
}

func (m *MockRepository) AppendReview(ctx context.Context, review Review) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	return m.InMemoryRepository.AppendReview(ctx, review)
}

// --------------------------------------------------
// TESTS
// --------------------------------------------------

func TestService_AverageRatingAndCount(t *testing.T) {
	service := NewService(NewMockRepository())
	ctx := context.Background()

	avg, err := service.AverageRating(ctx, "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if avg != 4.5 {
		t.Errorf("expected 4.5, got %v", avg)
	}

	count, err := service.CountReviews(ctx, "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2, got %d", count)
	}
}

func TestService_EmptyRepository(t *testing.T) {
	service := NewService(NewInMemoryRepository(FixtureRestaurants(), nil))

	for _, id := range []string{"1", "2", "3", "4", "5", "nope"} {
		avg, err := service.AverageRating(context.Background(), id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if avg != 0 {
			t.Errorf("expected 0 for %s, got %v", id, avg)
		}
	}
}

func TestService_ListRestaurants_Success(t *testing.T) {
	service := NewService(NewMockRepository())

	c := AllCriteria()
	c.PriceRange = "$$"

	summaries, err := service.ListRestaurants(context.Background(), c, SortRatingDesc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(summaries) != 2 {
		t.Fatalf("expected 2 restaurants, got %d", len(summaries))
	}
	if summaries[0].Name != "Sakura Sushi" {
		t.Errorf("expected Sakura Sushi first, got %s", summaries[0].Name)
	}
	if summaries[0].AverageRating != 5 || summaries[0].ReviewCount != 1 || summaries[0].Stars != 5 {
		t.Errorf("unexpected aggregates: %+v", summaries[0])
	}
	if summaries[1].AverageRating != 0 || summaries[1].ReviewCount != 0 {
		t.Errorf("expected no reviews for Spice Route, got %+v", summaries[1])
	}
}

func TestService_ListRestaurants_RepositoryError(t *testing.T) {
	repo := NewMockRepository()
	repo.listErr = errors.New("connection refused")
	service := NewService(repo)

	if _, err := service.ListRestaurants(context.Background(), AllCriteria(), DefaultSort); err == nil {
		t.Fatal("expected repository error")
	}
}

func TestService_GetRestaurantByID(t *testing.T) {
	service := NewService(NewMockRepository())

	r, err := service.GetRestaurantByID(context.Background(), "3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Name != "Mama Mia Pizzeria" {
		t.Errorf("expected Mama Mia Pizzeria, got %s", r.Name)
	}

	_, err = service.GetRestaurantByID(context.Background(), "42")
	if !errors.Is(err, ErrRestaurantNotFound) {
		t.Fatalf("expected ErrRestaurantNotFound, got %v", err)
	}
}

func TestService_GetRestaurantDetail(t *testing.T) {
	service := NewService(NewMockRepository())

	detail, err := service.GetRestaurantDetail(context.Background(), "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.AverageRating != 4.5 || detail.ReviewCount != 2 || len(detail.Reviews) != 2 {
		t.Errorf("unexpected detail: %+v", detail)
	}

	detail, err = service.GetRestaurantDetail(context.Background(), "5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(detail.Reviews) != 0 || detail.AverageRating != 0 {
		t.Errorf("expected empty review state, got %+v", detail)
	}
}

func TestService_AppendReview_Success(t *testing.T) {
	service := NewService(NewMockRepository())
	ctx := context.Background()

	review, err := service.AppendReview(ctx, ReviewInput{
		RestaurantID: "5",
		ReviewerName: "Alex Park",
		Rating:       3,
		ReviewText:   "Good steak, slow service.",
		Date:         "2024-02-01",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if review.ID == "" {
		t.Errorf("expected ID to be set")
	}

	avg, _ := service.AverageRating(ctx, "5")
	count, _ := service.CountReviews(ctx, "5")
	if avg != 3 || count != 1 {
		t.Errorf("expected avg 3 / count 1, got %v / %d", avg, count)
	}
}

func TestService_AppendReview_InvalidRating(t *testing.T) {
	service := NewService(NewMockRepository())

	for _, rating := range []int{0, 6, -1} {
		_, err := service.AppendReview(context.Background(), ReviewInput{
			RestaurantID: "1",
			ReviewerName: "Bad Input",
			Rating:       rating,
		})

		var verr *ValidationError
		if !errors.As(err, &verr) || verr.Field != "rating" {
			t.Errorf("rating %d: expected rating ValidationError, got %v", rating, err)
		}
	}

	count, _ := service.CountReviews(context.Background(), "1")
	if count != 2 {
		t.Errorf("invalid reviews must not be appended, count=%d", count)
	}
}

func TestService_AppendReview_UnknownRestaurant(t *testing.T) {
	service := NewService(NewMockRepository())

	_, err := service.AppendReview(context.Background(), ReviewInput{
		RestaurantID: "404",
		ReviewerName: "Lost",
		Rating:       4,
	})

	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "restaurant_id" {
		t.Fatalf("expected restaurant_id ValidationError, got %v", err)
	}
}

func TestService_AppendReview_RepositoryError(t *testing.T) {
	repo := NewMockRepository()
	repo.appendErr = errors.New("disk full")
	service := NewService(repo)

	_, err := service.AppendReview(context.Background(), ReviewInput{
		RestaurantID: "1",
		ReviewerName: "Someone",
		Rating:       4,
	})
	if err == nil {
		t.Fatal("expected repository error")
	}

	var verr *ValidationError
	if errors.As(err, &verr) {
		t.Fatalf("repository failure must not be reported as validation: %v", err)
	}
}

func TestService_AppendReview_Concurrent(t *testing.T) {
	service := NewService(NewMockRepository())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = service.AppendReview(ctx, ReviewInput{RestaurantID: "4", ReviewerName: "Guest", Rating: 4})
		}()
	}
	wg.Wait()

	count, _ := service.CountReviews(ctx, "4")
	if count != 50 {
		t.Fatalf("expected 50 reviews, got %d", count)
	}
}

func TestService_Snapshot(t *testing.T) {
	service := NewService(NewMockRepository())

	snap, err := service.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.Restaurants) != 5 || len(snap.Reviews) != 4 {
		t.Fatalf("expected 5 restaurants and 4 reviews, got %d / %d", len(snap.Restaurants), len(snap.Reviews))
	}
	if snap.Restaurants[0].Name != "Mama Mia Pizzeria" {
		t.Errorf("expected name-sorted snapshot, got %s first", snap.Restaurants[0].Name)
	}
}
