package pages

import "github.com/KevinDKao/restaurant-website/internal/catalog"

type Filters struct {
	catalog.Criteria
	Sort catalog.SortKey `json:"sort"`
}

// Card is one entry of the home listing.
type Card struct {
	catalog.Summary
	DetailURL string `json:"detail_url"`
	ReviewURL string `json:"review_url"`
}

type HomePage struct {
	View        string          `json:"view"`
	Filters     Filters         `json:"filters"`
	Options     catalog.Options `json:"options"`
	Restaurants []Card          `json:"restaurants"`
}

type DetailPage struct {
	View       string          `json:"view"`
	Restaurant *catalog.Detail `json:"restaurant,omitempty"`
	ReviewURL  string          `json:"review_url,omitempty"`
	Message    string          `json:"message,omitempty"`
}

type Choice struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AddReviewPage struct {
	View                 string   `json:"view"`
	Restaurants          []Choice `json:"restaurants"`
	Ratings              []int    `json:"ratings"`
	SelectedRestaurantID string   `json:"selected_restaurant_id,omitempty"`
	SubmitURL            string   `json:"submit_url"`
}
