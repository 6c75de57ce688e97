// Package view maps a request path and query onto one of the renderable pages.
package view

import (
	"net/url"
	"strings"
)

type Kind int

const (
	KindHome Kind = iota
	KindAddReview
	KindRestaurantDetail
)

func (k Kind) String() string {
	switch k {
	case KindAddReview:
		return "add_review"
	case KindRestaurantDetail:
		return "restaurant_detail"
	default:
		return "home"
	}
}

// View is the resolved page. RestaurantID is the detail id for
// KindRestaurantDetail and the optional pre-selection for KindAddReview.
type View struct {
	Kind         Kind
	RestaurantID string
}

func Home() View { return View{Kind: KindHome} }

func AddReview(restaurantID string) View {
	return View{Kind: KindAddReview, RestaurantID: restaurantID}
}

func RestaurantDetail(id string) View {
	return View{Kind: KindRestaurantDetail, RestaurantID: id}
}

const (
	addReviewPath    = "/add-review"
	restaurantPrefix = "/restaurant/"
)

type route func(path string, query url.Values) (View, bool)

// routes are tried in order; the first match wins.
var routes = []route{
	matchAddReview,
	matchRestaurantDetail,
}

// Resolve selects the view for a path. Unmatched paths fall through to Home.
func Resolve(path string, query url.Values) View {
	for _, r := range routes {
		if v, ok := r(path, query); ok {
			return v
		}
	}
	return Home()
}

func matchAddReview(path string, query url.Values) (View, bool) {
	if path != addReviewPath {
		return View{}, false
	}
	return AddReview(query.Get("restaurant_id")), true
}

func matchRestaurantDetail(path string, _ url.Values) (View, bool) {
	if !strings.HasPrefix(path, restaurantPrefix) {
		return View{}, false
	}
	id := strings.TrimPrefix(path, restaurantPrefix)
	if id == "" || strings.Contains(id, "/") {
		return View{}, false
	}
	return RestaurantDetail(id), true
}
