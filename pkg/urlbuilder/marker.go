package urlbuilder

import (
	"image/color"
	"strings"
	"unicode"
)

// marker is an immutable point annotation collected by the builder. The
// coordinate is stored already trimmed; fragment rendering is stateless and
// independent of every other marker.
type marker struct {
	point Point
	color color.Color
	size  MarkerSize
	label rune
}

// MarkerOption styles a marker added through Builder.AddMarker.
type MarkerOption func(*marker)

// WithColor sets the marker color. The alpha channel is not an error but it
// is dropped from the serialized form; the API rejects alpha on markers.
func WithColor(c color.Color) MarkerOption {
	return func(m *marker) {
		m.color = c
	}
}

// WithSize sets the marker size. The API only honors a size when a color is
// set too, and the builder keeps that coupling; see the package doc.
func WithSize(s MarkerSize) MarkerOption {
	return func(m *marker) {
		m.size = s
	}
}

// WithLabel sets the single character rendered inside the marker. Digits
// pass through, letters are upper-cased, anything else fails the add with
// ErrInvalidLabel. The API ignores labels on tiny and mid markers but the
// builder passes them through regardless.
func WithLabel(label rune) MarkerOption {
	return func(m *marker) {
		m.label = label
	}
}

// normalizeLabel upper-cases letters and rejects everything that is neither
// a digit nor a letter. Validation happens after case folding, so lowercase
// input is accepted, not rejected.
func normalizeLabel(label rune) (rune, error) {
	switch {
	case unicode.IsDigit(label):
		return label, nil
	case unicode.IsLetter(label):
		return unicode.ToUpper(label), nil
	default:
		return 0, ErrInvalidLabel
	}
}

// fragment renders the pipe-delimited marker descriptor. Style parts come
// first, each pipe-terminated, then the coordinate. The size part is only
// reachable when a color is present and is suppressed for the normal size,
// which is the API default.
func (m marker) fragment() string {
	var sb strings.Builder

	if m.color != nil {
		sb.WriteString(colorPrefix)
		sb.WriteString(hexColor24(m.color))
		sb.WriteString(pipe)

		if m.size != SizeNormal {
			sb.WriteString(sizePrefix)
			sb.WriteString(m.size.String())
			sb.WriteString(pipe)
		}
		if m.label != 0 {
			sb.WriteString(labelPrefix)
			sb.WriteRune(m.label)
			sb.WriteString(pipe)
		}
	} else if m.label != 0 {
		sb.WriteString(labelPrefix)
		sb.WriteRune(m.label)
		sb.WriteString(pipe)
	}

	sb.WriteString(m.point.fragment())
	return sb.String()
}
