package urlbuilder

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// hexColor24 renders the 24-bit wire form the API expects for colors,
// masking out the alpha channel entirely. Channels go through the
// non-premultiplied model first so a translucent color keeps its RGB bytes
// instead of picking up premultiplication artifacts.
func hexColor24(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("0x%02x%02x%02x", n.R, n.G, n.B)
}

// hexColor32 renders the 32-bit form with alpha moved to the trailing byte,
// the ordering the API uses for path opacity. The builder does not emit it;
// paths stay on the 24-bit form for parity with the original wire format.
func hexColor32(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("0x%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// ParseHexColor converts "#RRGGBB" or "#AARRGGBB" strings into color values
// usable with WithColor and WithPathColor. Configuration files and CLI
// prompts feed through here.
func ParseHexColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return nil, errors.New("urlbuilder: hex color must start with #")
	}
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 6:
		r, err := parseChannel(h[0:2])
		if err != nil {
			return nil, err
		}
		g, err := parseChannel(h[2:4])
		if err != nil {
			return nil, err
		}
		b, err := parseChannel(h[4:6])
		if err != nil {
			return nil, err
		}
		return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
	case 8:
		a, err := parseChannel(h[0:2])
		if err != nil {
			return nil, err
		}
		r, err := parseChannel(h[2:4])
		if err != nil {
			return nil, err
		}
		g, err := parseChannel(h[4:6])
		if err != nil {
			return nil, err
		}
		b, err := parseChannel(h[6:8])
		if err != nil {
			return nil, err
		}
		return color.NRGBA{R: r, G: g, B: b, A: a}, nil
	default:
		return nil, errors.New("urlbuilder: hex color must be #RRGGBB or #AARRGGBB")
	}
}

func parseChannel(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("urlbuilder: invalid hex channel %q", s)
	}
	return uint8(v), nil
}
