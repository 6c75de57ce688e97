package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// All is the sentinel criterion value that disables a filter.
const All = "all"

// DateLayout is the ISO date format used for review dates.
const DateLayout = "2006-01-02"

type PriceRange string

const (
	PriceBudget     PriceRange = "$"
	PriceModerate   PriceRange = "$$"
	PriceUpscale    PriceRange = "$$$"
	PriceFineDining PriceRange = "$$$$"
)

// PriceRanges lists the tiers in ordinal order.
var PriceRanges = []PriceRange{PriceBudget, PriceModerate, PriceUpscale, PriceFineDining}

func ParsePriceRange(s string) (PriceRange, error) {
	for _, p := range PriceRanges {
		if string(p) == s {
			return p, nil
		}
	}
	return "", &ValidationError{Field: "price_range", Message: fmt.Sprintf("unknown price range %q", s)}
}

type Restaurant struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Cuisine     string     `json:"cuisine"`
	Location    string     `json:"location"`
	PriceRange  PriceRange `json:"price_range"`
	Image       string     `json:"image"`
	Description string     `json:"description"`
	Phone       string     `json:"phone"`
	Address     string     `json:"address"`
}

// NewRestaurant validates the identifying fields and the price tier.
func NewRestaurant(r Restaurant) (*Restaurant, error) {
	if strings.TrimSpace(r.ID) == "" {
		return nil, &ValidationError{Field: "id", Message: "id is required"}
	}
	if strings.TrimSpace(r.Name) == "" {
		return nil, &ValidationError{Field: "name", Message: "name is required"}
	}
	if _, err := ParsePriceRange(string(r.PriceRange)); err != nil {
		return nil, err
	}
	return &r, nil
}

type Review struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurant_id"`
	ReviewerName string `json:"reviewer_name"`
	Rating       int    `json:"rating"`
	ReviewText   string `json:"review_text"`
	Date         string `json:"date"`
}

// ReviewInput is the submission payload for a new review.
type ReviewInput struct {
	RestaurantID string `json:"restaurant_id"`
	ReviewerName string `json:"reviewer_name"`
	Rating       int    `json:"rating"`
	ReviewText   string `json:"review_text"`
	Date         string `json:"date"`
}

const (
	MinRating = 1
	MaxRating = 5
)

// NewReview builds a review with a fresh id. The rating must already be
// within [MinRating, MaxRating]; it is never clamped.
func NewReview(in ReviewInput) (*Review, error) {
	if strings.TrimSpace(in.RestaurantID) == "" {
		return nil, &ValidationError{Field: "restaurant_id", Message: "restaurant_id is required"}
	}
	if in.Rating < MinRating || in.Rating > MaxRating {
		return nil, &ValidationError{
			Field:   "rating",
			Message: fmt.Sprintf("rating must be between %d and %d, got %d", MinRating, MaxRating, in.Rating),
		}
	}

	date := in.Date
	if date == "" {
		date = time.Now().UTC().Format(DateLayout)
	} else if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, &ValidationError{Field: "date", Message: "date must be formatted as YYYY-MM-DD"}
	}

	return &Review{
		ID:           uuid.New().String(),
		RestaurantID: in.RestaurantID,
		ReviewerName: in.ReviewerName,
		Rating:       in.Rating,
		ReviewText:   in.ReviewText,
		Date:         date,
	}, nil
}

// Criteria holds the listing filters. An empty field behaves like All.
type Criteria struct {
	Cuisine    string `json:"cuisine"`
	Location   string `json:"location"`
	PriceRange string `json:"price_range"`
}

// AllCriteria matches every restaurant.
func AllCriteria() Criteria {
	return Criteria{Cuisine: All, Location: All, PriceRange: All}
}

type SortKey string

const (
	SortRatingDesc SortKey = "rating_desc"
	SortRatingAsc  SortKey = "rating_asc"
	SortNameAsc    SortKey = "name_asc"
	SortNameDesc   SortKey = "name_desc"
)

// DefaultSort is applied when a listing request carries no sort key.
const DefaultSort = SortRatingDesc

// Summary is a restaurant together with its computed aggregates.
type Summary struct {
	Restaurant
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
	Stars         int     `json:"stars"`
}

type Detail struct {
	Summary
	Reviews []Review `json:"reviews"`
}

// Options lists the values offered by the listing dropdowns.
type Options struct {
	Cuisines    []string     `json:"cuisines"`
	Locations   []string     `json:"locations"`
	PriceRanges []PriceRange `json:"price_ranges"`
	SortKeys    []SortKey    `json:"sort_keys"`
}

// Snapshot is the exported view of the whole catalog.
type Snapshot struct {
	GeneratedAt time.Time `json:"generated_at"`
	Restaurants []Summary `json:"restaurants"`
	Reviews     []Review  `json:"reviews"`
}
