package urlbuilder

import (
	"errors"
	"image/color"
	"testing"
)

var (
	red  = color.RGBA{R: 0xFF, A: 0xFF}
	blue = color.RGBA{B: 0xFF, A: 0xFF}
)

func TestMarkerFragment(t *testing.T) {
	cases := []struct {
		name   string
		marker marker
		want   string
	}{
		{
			name:   "bare coordinate",
			marker: marker{point: Point{Lat: 37.42, Lng: -122.08}},
			want:   "37.42,-122.08",
		},
		{
			name:   "color only",
			marker: marker{point: Point{Lat: 37.42, Lng: -122.08}, color: red},
			want:   "color:0xff0000%7C37.42,-122.08",
		},
		{
			name:   "color and size",
			marker: marker{point: Point{Lat: 37.42, Lng: -122.08}, color: red, size: SizeSmall},
			want:   "color:0xff0000%7Csize:small%7C37.42,-122.08",
		},
		{
			name:   "normal size suppressed",
			marker: marker{point: Point{Lat: 37.42, Lng: -122.08}, color: red, size: SizeNormal},
			want:   "color:0xff0000%7C37.42,-122.08",
		},
		{
			name:   "color size and label",
			marker: marker{point: Point{Lat: 37.42, Lng: -122.08}, color: red, size: SizeTiny, label: 'A'},
			want:   "color:0xff0000%7Csize:tiny%7Clabel:A%7C37.42,-122.08",
		},
		{
			// Size without color never serializes; the size branch only
			// exists inside the color branch.
			name:   "size without color dropped",
			marker: marker{point: Point{Lat: 37.42, Lng: -122.08}, size: SizeSmall},
			want:   "37.42,-122.08",
		},
		{
			name:   "label without color",
			marker: marker{point: Point{Lat: 37.42, Lng: -122.08}, label: '5'},
			want:   "label:5%7C37.42,-122.08",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.marker.fragment(); got != tc.want {
				t.Fatalf("fragment = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMarkerColorDropsAlpha(t *testing.T) {
	m := marker{
		point: Point{Lat: 1, Lng: 2},
		color: color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0x40},
	}
	if got, want := m.fragment(), "color:0x123456%7C1,2"; got != want {
		t.Fatalf("fragment = %q, want %q", got, want)
	}
}

func TestNormalizeLabel(t *testing.T) {
	cases := []struct {
		in      rune
		want    rune
		wantErr bool
	}{
		{'5', '5', false},
		{'A', 'A', false},
		{'a', 'A', false},
		{'z', 'Z', false},
		{'!', 0, true},
		{' ', 0, true},
		{'|', 0, true},
	}

	for _, tc := range cases {
		got, err := normalizeLabel(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidLabel) {
				t.Fatalf("normalizeLabel(%q) err = %v, want ErrInvalidLabel", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("normalizeLabel(%q) unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("normalizeLabel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestHexColor32KeepsTrailingAlpha(t *testing.T) {
	c := color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0x78}
	if got, want := hexColor32(c), "0x12345678"; got != want {
		t.Fatalf("hexColor32 = %q, want %q", got, want)
	}
}
