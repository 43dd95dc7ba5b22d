package urlbuilder

import "testing"

func TestPathFragment(t *testing.T) {
	points := []Point{{Lat: 1.1, Lng: 2.2}, {Lat: 3.3, Lng: 4.4}}

	cases := []struct {
		name string
		path path
		want string
	}{
		{
			name: "points only",
			path: path{points: points},
			want: "1.1,2.2%7C3.3,4.4",
		},
		{
			name: "weight only",
			path: path{points: points, weight: 3, weightSet: true},
			want: "weight:3%7C1.1,2.2%7C3.3,4.4",
		},
		{
			name: "weight and color",
			path: path{points: points, weight: 3, weightSet: true, color: blue},
			want: "weight:3%7Ccolor:0x0000ff%7C1.1,2.2%7C3.3,4.4",
		},
		{
			name: "color only",
			path: path{points: points, color: blue},
			want: "color:0x0000ff%7C1.1,2.2%7C3.3,4.4",
		},
		{
			name: "single point",
			path: path{points: points[:1]},
			want: "1.1,2.2",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.path.fragment(); got != tc.want {
				t.Fatalf("fragment = %q, want %q", got, tc.want)
			}
		})
	}
}
