// Package staticmap generates valid Google Static Maps API URLs from map
// options, markers, and paths, and optionally retrieves the rendered image.
//
// The root package re-exports the builder surface from pkg/urlbuilder for
// convenience; the subpackages hold the real implementations:
//
//   - pkg/urlbuilder: the request-construction core
//   - pkg/imagery: image retrieval and decoding
//   - pkg/mapfile: YAML map definitions
//   - pkg/preview: HTML preview rendering
package staticmap

import (
	"context"
	"image"
	"image/color"

	"github.com/mbehan/go-staticmap/pkg/imagery"
	"github.com/mbehan/go-staticmap/pkg/mapfile"
	"github.com/mbehan/go-staticmap/pkg/urlbuilder"
)

// Builder accumulates map state and projects it into a URL; see
// urlbuilder.Builder.
type Builder = urlbuilder.Builder

// Point is a latitude/longitude pair in decimal degrees.
type Point = urlbuilder.Point

// MapType selects the base layer of the generated map.
type MapType = urlbuilder.MapType

// MarkerSize selects the rendered size of a marker icon.
type MarkerSize = urlbuilder.MarkerSize

// MarkerOption styles a marker added through Builder.AddMarker.
type MarkerOption = urlbuilder.MarkerOption

// PathOption styles a path added through Builder.AddPath.
type PathOption = urlbuilder.PathOption

// Map types, re-exported so simple callers never import the subpackage.
const (
	TypeRoadmap   = urlbuilder.TypeRoadmap
	TypeSatellite = urlbuilder.TypeSatellite
	TypeTerrain   = urlbuilder.TypeTerrain
	TypeHybrid    = urlbuilder.TypeHybrid
)

// Marker sizes, re-exported for the same reason.
const (
	SizeNormal = urlbuilder.SizeNormal
	SizeTiny   = urlbuilder.SizeTiny
	SizeMid    = urlbuilder.SizeMid
	SizeSmall  = urlbuilder.SizeSmall
)

// New returns a builder with the API defaults: 640x640 pixels, hybrid type.
func New() *Builder {
	return urlbuilder.New()
}

// WithColor sets a marker color; alpha is dropped during serialization.
func WithColor(c color.Color) MarkerOption {
	return urlbuilder.WithColor(c)
}

// WithSize sets a marker size; only honored when a color is set too.
func WithSize(s MarkerSize) MarkerOption {
	return urlbuilder.WithSize(s)
}

// WithLabel sets the single character rendered inside a marker.
func WithLabel(label rune) MarkerOption {
	return urlbuilder.WithLabel(label)
}

// WithWeight sets a path's stroke weight in pixels.
func WithWeight(weight int) PathOption {
	return urlbuilder.WithWeight(weight)
}

// WithPathColor sets a path's stroke color.
func WithPathColor(c color.Color) PathOption {
	return urlbuilder.WithPathColor(c)
}

// BuildURL applies a mapfile definition and generates the URL in one step.
// It is the simplest entry point for callers with declarative map configs.
func BuildURL(def mapfile.Definition) (string, error) {
	b, err := def.Builder()
	if err != nil {
		return "", err
	}
	return b.URL()
}

// FetchImage builds the URL from the given builder and retrieves the
// rendered map through a freshly constructed fetcher. Callers needing a
// shared rate limiter or client should construct an imagery.Fetcher
// themselves and reuse it.
func FetchImage(ctx context.Context, b *Builder, opts ...imagery.Option) (image.Image, error) {
	return imagery.NewFetcher(opts...).FetchMap(ctx, b)
}
