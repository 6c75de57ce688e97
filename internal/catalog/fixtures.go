package catalog

import "github.com/google/uuid"

// FixtureRestaurants returns the bundled sample restaurants.
func FixtureRestaurants() []Restaurant {
	return []Restaurant{
		{
			ID:          "1",
			Name:        "The Garden Bistro",
			Cuisine:     "French",
			Location:    "Downtown",
			PriceRange:  PriceUpscale,
			Image:       "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=400&h=300&fit=crop",
			Description: "Elegant French cuisine in a cozy garden setting with seasonal menus.",
			Phone:       "(555) 123-4567",
			Address:     "123 Main St, Downtown",
		},
		{
			ID:          "2",
			Name:        "Sakura Sushi",
			Cuisine:     "Japanese",
			Location:    "Midtown",
			PriceRange:  PriceModerate,
			Image:       "https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?w=400&h=300&fit=crop",
			Description: "Authentic Japanese sushi bar with fresh ingredients and traditional preparation.",
			Phone:       "(555) 234-5678",
			Address:     "456 Oak Ave, Midtown",
		},
		{
			ID:          "3",
			Name:        "Mama Mia Pizzeria",
			Cuisine:     "Italian",
			Location:    "Little Italy",
			PriceRange:  PriceBudget,
			Image:       "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=400&h=300&fit=crop",
			Description: "Family-owned pizzeria serving authentic wood-fired pizzas since 1952.",
			Phone:       "(555) 345-6789",
			Address:     "789 Pine St, Little Italy",
		},
		{
			ID:          "4",
			Name:        "Spice Route",
			Cuisine:     "Indian",
			Location:    "Uptown",
			PriceRange:  PriceModerate,
			Image:       "https://images.unsplash.com/photo-1565557623262-b51c2513a641?w=400&h=300&fit=crop",
			Description: "Modern Indian cuisine with traditional spices and contemporary presentation.",
			Phone:       "(555) 456-7890",
			Address:     "321 Elm St, Uptown",
		},
		{
			ID:          "5",
			Name:        "The Steakhouse",
			Cuisine:     "American",
			Location:    "Financial District",
			PriceRange:  PriceFineDining,
			Image:       "https://images.unsplash.com/photo-1546833999-b9f581a1996d?w=400&h=300&fit=crop",
			Description: "Premium steaks and fine dining experience in an upscale atmosphere.",
			Phone:       "(555) 567-8901",
			Address:     "654 Broadway, Financial District",
		},
	}
}

// FixtureReviews returns the bundled sample reviews. Ids are generated on
// every call.
func FixtureReviews() []Review {
	return []Review{
		{
			ID:           uuid.New().String(),
			RestaurantID: "1",
			ReviewerName: "Sarah Johnson",
			Rating:       5,
			ReviewText:   "Absolutely amazing! The coq au vin was perfection and the service was impeccable.",
			Date:         "2024-01-15",
		},
		{
			ID:           uuid.New().String(),
			RestaurantID: "1",
			ReviewerName: "Mike Chen",
			Rating:       4,
			ReviewText:   "Great atmosphere and delicious food. The wine selection is excellent.",
			Date:         "2024-01-10",
		},
		{
			ID:           uuid.New().String(),
			RestaurantID: "2",
			ReviewerName: "Emma Wilson",
			Rating:       5,
			ReviewText:   "Best sushi in town! Fresh fish and perfect rice. The chef is a true artist.",
			Date:         "2024-01-12",
		},
		{
			ID:           uuid.New().String(),
			RestaurantID: "3",
			ReviewerName: "David Brown",
			Rating:       4,
			ReviewText:   "Authentic Italian pizza with a perfect crust. Great value for money!",
			Date:         "2024-01-08",
		},
	}
}
