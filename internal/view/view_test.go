package view

import (
	"net/url"
	"testing"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name  string
		path  string
		query url.Values
		want  View
	}{
		{"root", "/", nil, Home()},
		{"empty path", "", nil, Home()},
		{"unknown path", "/nonsense", url.Values{}, Home()},
		{"detail", "/restaurant/3", url.Values{}, RestaurantDetail("3")},
		{"detail ignores query", "/restaurant/abc", url.Values{"restaurant_id": {"9"}}, RestaurantDetail("abc")},
		{"detail without id", "/restaurant/", nil, Home()},
		{"detail with extra segment", "/restaurant/1/reviews", nil, Home()},
		{"prefix is not a segment", "/restaurants/1", nil, Home()},
		{"add review", "/add-review", nil, AddReview("")},
		{"add review preselect", "/add-review", url.Values{"restaurant_id": {"2"}}, AddReview("2")},
		{"add review trailing slash", "/add-review/", nil, Home()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Resolve(tc.path, tc.query); got != tc.want {
				t.Errorf("Resolve(%q, %v) = %+v, want %+v", tc.path, tc.query, got, tc.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	want := map[Kind]string{
		KindHome:             "home",
		KindAddReview:        "add_review",
		KindRestaurantDetail: "restaurant_detail",
	}
	for k, s := range want {
		if k.String() != s {
			t.Errorf("Kind(%d).String() = %q, want %q", k, k.String(), s)
		}
	}
}
