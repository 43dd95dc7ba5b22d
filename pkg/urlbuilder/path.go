package urlbuilder

import (
	"image/color"
	"strconv"
	"strings"
)

// path is an immutable polyline collected by the builder. Points are stored
// already trimmed, in input order.
type path struct {
	points    []Point
	weight    int
	weightSet bool
	color     color.Color
}

// PathOption styles a path added through Builder.AddPath.
type PathOption func(*path)

// WithWeight sets the stroke weight in pixels. Values below 1 fail the add
// with ErrInvalidPathWeight. The API default is 5.
func WithWeight(weight int) PathOption {
	return func(p *path) {
		p.weight = weight
		p.weightSet = true
	}
}

// WithPathColor sets the stroke color. The API accepts alpha on paths, but
// serialization stays on the 24-bit form and drops it; see the package doc.
func WithPathColor(c color.Color) PathOption {
	return func(p *path) {
		p.color = c
	}
}

// fragment renders the pipe-delimited path descriptor: optional weight, then
// optional color, then every point joined by pipes in input order.
func (p path) fragment() string {
	var sb strings.Builder

	if p.weightSet {
		sb.WriteString(weightPrefix)
		sb.WriteString(strconv.Itoa(p.weight))
		sb.WriteString(pipe)
	}
	if p.color != nil {
		sb.WriteString(colorPrefix)
		sb.WriteString(hexColor24(p.color))
		sb.WriteString(pipe)
	}

	for i, pt := range p.points {
		if i > 0 {
			sb.WriteString(pipe)
		}
		sb.WriteString(pt.fragment())
	}
	return sb.String()
}
