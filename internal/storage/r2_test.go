package storage

import "testing"

func TestPublicURL(t *testing.T) {
	cases := []struct {
		base, key, want string
	}{
		{"https://cdn.example.com", "snapshots/a.json", "https://cdn.example.com/snapshots/a.json"},
		{"https://cdn.example.com/", "/snapshots/a.json", "https://cdn.example.com/snapshots/a.json"},
	}

	for _, tc := range cases {
		if got := PublicURL(tc.base, tc.key); got != tc.want {
			t.Errorf("PublicURL(%q, %q) = %q, want %q", tc.base, tc.key, got, tc.want)
		}
	}
}
