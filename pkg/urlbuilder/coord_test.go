package urlbuilder

import "testing"

func TestTrimCoord(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want float64
	}{
		{"truncates extra precision", 37.4219, 37.42},
		{"negative longitude", -122.0840, -122.08},
		{"half rounds up", 1.005, 1.01},
		{"half rounds up on magnitude", -1.005, -1.01},
		{"float trap rounds as written", 2.675, 2.68},
		{"two digits untouched", 41.39, 41.39},
		{"integral value untouched", 12, 12},
		{"zero", 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := trimCoord(tc.in); got != tc.want {
				t.Fatalf("trimCoord(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestFormatCoord(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{37.42, "37.42"},
		{-122.08, "-122.08"},
		{12, "12"},
		{-0.5, "-0.5"},
		{0, "0"},
	}

	for _, tc := range cases {
		if got := formatCoord(tc.in); got != tc.want {
			t.Fatalf("formatCoord(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPointFragment(t *testing.T) {
	p := Point{Lat: 37.4219, Lng: -122.0840}.trimmed()
	if got, want := p.fragment(), "37.42,-122.08"; got != want {
		t.Fatalf("fragment = %q, want %q", got, want)
	}
}
