package urlbuilder

import (
	"fmt"
	"strings"
)

// API limits. Pure literals owned by the builder; they only change if the
// upstream API changes.
const (
	maxWidth     = 640
	maxHeight    = 640
	maxURLLength = 2048
)

// Wire-format literals. The pipe ships pre-escaped because the API requires
// that exact encoding inside repeated parameters.
const (
	baseURL       = "https://maps.googleapis.com/maps/api/staticmap?&sensor=false"
	mapSizePrefix = "&size="
	mapTypePrefix = "&maptype="
	markerParam   = "&markers="
	pathParam     = "&path="

	pipe         = "%7C"
	colorPrefix  = "color:"
	sizePrefix   = "size:"
	labelPrefix  = "label:"
	weightPrefix = "weight:"
)

// Builder accumulates map options, markers, and paths, and projects them
// into a URL on demand. URL is a pure projection: the builder stays mutable
// afterwards and can be built again, and identical state yields
// byte-identical output.
type Builder struct {
	size    string
	mapType MapType
	markers []marker
	paths   []path
}

// New returns a builder with the defaults the API caps allow: 640x640
// pixels and the hybrid map type.
func New() *Builder {
	return &Builder{
		size:    fmt.Sprintf("%dx%d", maxWidth, maxHeight),
		mapType: TypeHybrid,
	}
}

// SetSize replaces the pixel dimensions of the generated map. Both axes
// must be in [1, 640]; on failure the stored size is left untouched.
func (b *Builder) SetSize(x, y int) error {
	if x < 1 || y < 1 {
		return ErrInvalidSize
	}
	if x > maxWidth || y > maxHeight {
		return ErrSizeExceeded
	}
	b.size = fmt.Sprintf("%dx%d", x, y)
	return nil
}

// SetMapType replaces the base layer. Total over the declared enum values;
// an out-of-range value is only caught later, at URL time.
func (b *Builder) SetMapType(t MapType) {
	b.mapType = t
}

// AddMarker collects one point annotation. Without options this is the
// plain marker form; WithColor, WithSize, and WithLabel attach styling.
// Coordinates are trimmed to two decimals, half-up. A label that is neither
// a digit nor a letter fails with ErrInvalidLabel and nothing is added.
func (b *Builder) AddMarker(lat, lng float64, opts ...MarkerOption) error {
	m := marker{point: Point{Lat: lat, Lng: lng}.trimmed()}
	for _, opt := range opts {
		opt(&m)
	}

	if m.label != 0 {
		normalized, err := normalizeLabel(m.label)
		if err != nil {
			return err
		}
		m.label = normalized
	}

	b.markers = append(b.markers, m)
	return nil
}

// AddPath collects one polyline through the given stops, trimming every
// coordinate to two decimals. Without options the path takes the API's
// default styling; WithWeight and WithPathColor override it. A weight below
// 1 pixel fails with ErrInvalidPathWeight and nothing is added.
func (b *Builder) AddPath(points []Point, opts ...PathOption) error {
	p := path{points: make([]Point, len(points))}
	for i, pt := range points {
		p.points[i] = pt.trimmed()
	}
	for _, opt := range opts {
		opt(&p)
	}

	if p.weightSet && p.weight < 1 {
		return ErrInvalidPathWeight
	}

	b.paths = append(b.paths, p)
	return nil
}

// AddSimplePath collects an unstyled path from exactly A to B.
func (b *Builder) AddSimplePath(latA, lngA, latB, lngB float64) {
	// Two fixed stops cannot fail validation.
	_ = b.AddPath([]Point{{Lat: latA, Lng: lngA}, {Lat: latB, Lng: lngB}})
}

// URL validates cumulative state and assembles the final URL string.
// Repeated &markers= and &path= parameters are legal and expected; the API
// treats each occurrence as a separate map element.
func (b *Builder) URL() (string, error) {
	var mapTypeFragment string
	switch b.mapType {
	case TypeRoadmap:
		// The API default; writing it would only spend URL budget.
	case TypeSatellite, TypeTerrain, TypeHybrid:
		mapTypeFragment = mapTypePrefix + b.mapType.String()
	default:
		return "", ErrMapTypeUnrecognized
	}

	if len(b.markers) == 0 && len(b.paths) == 0 {
		return "", ErrEmptyRequest
	}

	var sb strings.Builder
	sb.WriteString(baseURL)
	sb.WriteString(mapSizePrefix)
	sb.WriteString(b.size)
	sb.WriteString(mapTypeFragment)

	for _, m := range b.markers {
		sb.WriteString(markerParam)
		sb.WriteString(m.fragment())
	}
	for _, p := range b.paths {
		sb.WriteString(pathParam)
		sb.WriteString(p.fragment())
	}

	if sb.Len() > maxURLLength {
		return "", ErrURLTooLong
	}
	return sb.String(), nil
}

// Markers reports how many markers have been collected so far.
func (b *Builder) Markers() int {
	return len(b.markers)
}

// Paths reports how many paths have been collected so far.
func (b *Builder) Paths() int {
	return len(b.paths)
}
