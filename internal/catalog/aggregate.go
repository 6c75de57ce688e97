package catalog

import "sort"

// ReviewsFor returns the reviews of one restaurant in collection order.
func ReviewsFor(reviews []Review, restaurantID string) []Review {
	matched := []Review{}
	for _, r := range reviews {
		if r.RestaurantID == restaurantID {
			matched = append(matched, r)
		}
	}
	return matched
}

func CountReviews(reviews []Review, restaurantID string) int {
	n := 0
	for _, r := range reviews {
		if r.RestaurantID == restaurantID {
			n++
		}
	}
	return n
}

// AverageRating is the mean rating of one restaurant rounded half-up to one
// decimal. Restaurants without reviews (or unknown ids) average 0.
func AverageRating(reviews []Review, restaurantID string) float64 {
	sum, n := 0, 0
	for _, r := range reviews {
		if r.RestaurantID == restaurantID {
			sum += r.Rating
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return roundTenthsHalfUp(sum, n)
}

// roundTenthsHalfUp returns sum/n rounded half-up to tenths, in integer math.
func roundTenthsHalfUp(sum, n int) float64 {
	tenths := (20*sum + n) / (2 * n)
	return float64(tenths) / 10
}

// Stars is the number of filled stars shown next to a rating.
func Stars(avg float64) int {
	filled := 0
	for i := 0; i < MaxRating; i++ {
		if float64(i) < avg {
			filled++
		}
	}
	return filled
}

func averagesByRestaurant(reviews []Review) map[string]float64 {
	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, r := range reviews {
		sums[r.RestaurantID] += r.Rating
		counts[r.RestaurantID]++
	}

	avgs := make(map[string]float64, len(counts))
	for id, n := range counts {
		avgs[id] = roundTenthsHalfUp(sums[id], n)
	}
	return avgs
}

func matches(criterion, value string) bool {
	return isAll(criterion) || criterion == value
}

// FilterRestaurants keeps the restaurants matching every non-"all" criterion,
// preserving input order.
func FilterRestaurants(restaurants []Restaurant, c Criteria) []Restaurant {
	if isAll(c.Cuisine) && isAll(c.Location) && isAll(c.PriceRange) {
		return restaurants
	}

	filtered := []Restaurant{}
	for _, r := range restaurants {
		if matches(c.Cuisine, r.Cuisine) &&
			matches(c.Location, r.Location) &&
			matches(c.PriceRange, string(r.PriceRange)) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func isAll(criterion string) bool {
	return criterion == "" || criterion == All
}

// SortRestaurants returns a stably sorted copy. Rating keys order by the
// average rating computed from reviews. Unknown keys keep the current order.
func SortRestaurants(restaurants []Restaurant, key SortKey, reviews []Review) []Restaurant {
	sorted := append([]Restaurant(nil), restaurants...)

	switch key {
	case SortRatingDesc, SortRatingAsc:
		avgs := averagesByRestaurant(reviews)
		desc := key == SortRatingDesc
		sort.SliceStable(sorted, func(i, j int) bool {
			if desc {
				return avgs[sorted[i].ID] > avgs[sorted[j].ID]
			}
			return avgs[sorted[i].ID] < avgs[sorted[j].ID]
		})
	case SortNameAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Name < sorted[j].Name
		})
	case SortNameDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Name > sorted[j].Name
		})
	}

	return sorted
}

// BuildOptions collects the distinct dropdown values in first-seen order.
// Price ranges follow their ordinal order.
func BuildOptions(restaurants []Restaurant) Options {
	opts := Options{
		Cuisines:    []string{},
		Locations:   []string{},
		PriceRanges: []PriceRange{},
		SortKeys:    []SortKey{SortRatingDesc, SortRatingAsc, SortNameAsc, SortNameDesc},
	}

	seenCuisine := make(map[string]bool)
	seenLocation := make(map[string]bool)
	seenPrice := make(map[PriceRange]bool)

	for _, r := range restaurants {
		if !seenCuisine[r.Cuisine] {
			seenCuisine[r.Cuisine] = true
			opts.Cuisines = append(opts.Cuisines, r.Cuisine)
		}
		if !seenLocation[r.Location] {
			seenLocation[r.Location] = true
			opts.Locations = append(opts.Locations, r.Location)
		}
		seenPrice[r.PriceRange] = true
	}

	for _, p := range PriceRanges {
		if seenPrice[p] {
			opts.PriceRanges = append(opts.PriceRanges, p)
		}
	}

	return opts
}
