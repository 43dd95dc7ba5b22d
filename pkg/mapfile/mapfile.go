// Package mapfile loads declarative map definitions from YAML documents and
// applies them to a URL builder. It exists so callers can keep maps in
// configuration instead of code; every validation rule of the builder
// applies unchanged and surfaces the same error kinds.
package mapfile

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mbehan/go-staticmap/pkg/urlbuilder"
)

// Definition is the root of a YAML map document. Title and Notes are only
// used by preview rendering; the API request never sees them.
type Definition struct {
	Title   string   `yaml:"title"`
	Notes   string   `yaml:"notes"`
	Size    *Size    `yaml:"size"`
	MapType string   `yaml:"maptype"`
	Markers []Marker `yaml:"markers"`
	Paths   []Path   `yaml:"paths"`
}

// Size is the pixel size block of a definition.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Marker describes one marker entry. Color is "#RRGGBB" or "#AARRGGBB",
// size one of the wire names, label a single character.
type Marker struct {
	Lat   float64 `yaml:"lat"`
	Lng   float64 `yaml:"lng"`
	Color string  `yaml:"color"`
	Size  string  `yaml:"size"`
	Label string  `yaml:"label"`
}

// Path describes one path entry.
type Path struct {
	Weight int         `yaml:"weight"`
	Color  string      `yaml:"color"`
	Points []PathPoint `yaml:"points"`
}

// PathPoint is one stop along a path.
type PathPoint struct {
	Lat float64 `yaml:"lat"`
	Lng float64 `yaml:"lng"`
}

// Load reads and parses a definition from disk.
func Load(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("mapfile: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML definition from raw bytes.
func Parse(data []byte) (Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return Definition{}, fmt.Errorf("mapfile: parse yaml: %w", err)
	}
	return def, nil
}

// Builder applies the definition to a fresh urlbuilder.Builder. Validation
// fails fast with the entry index in the message and the builder error kind
// preserved for errors.Is.
func (d Definition) Builder() (*urlbuilder.Builder, error) {
	b := urlbuilder.New()

	if d.Size != nil {
		if err := b.SetSize(d.Size.Width, d.Size.Height); err != nil {
			return nil, fmt.Errorf("mapfile: size: %w", err)
		}
	}
	if d.MapType != "" {
		t, err := urlbuilder.ParseMapType(d.MapType)
		if err != nil {
			return nil, fmt.Errorf("mapfile: %w", err)
		}
		b.SetMapType(t)
	}

	for i, m := range d.Markers {
		opts, err := m.options()
		if err != nil {
			return nil, fmt.Errorf("mapfile: marker %d: %w", i, err)
		}
		if err := b.AddMarker(m.Lat, m.Lng, opts...); err != nil {
			return nil, fmt.Errorf("mapfile: marker %d: %w", i, err)
		}
	}

	for i, p := range d.Paths {
		opts, err := p.options()
		if err != nil {
			return nil, fmt.Errorf("mapfile: path %d: %w", i, err)
		}
		points := make([]urlbuilder.Point, len(p.Points))
		for j, pt := range p.Points {
			points[j] = urlbuilder.Point{Lat: pt.Lat, Lng: pt.Lng}
		}
		if err := b.AddPath(points, opts...); err != nil {
			return nil, fmt.Errorf("mapfile: path %d: %w", i, err)
		}
	}

	return b, nil
}

func (m Marker) options() ([]urlbuilder.MarkerOption, error) {
	var opts []urlbuilder.MarkerOption

	if m.Color != "" {
		c, err := urlbuilder.ParseHexColor(m.Color)
		if err != nil {
			return nil, err
		}
		opts = append(opts, urlbuilder.WithColor(c))
	}
	if m.Size != "" {
		s, err := urlbuilder.ParseMarkerSize(m.Size)
		if err != nil {
			return nil, err
		}
		opts = append(opts, urlbuilder.WithSize(s))
	}
	if m.Label != "" {
		runes := []rune(m.Label)
		if len(runes) != 1 {
			return nil, errors.New("label must be a single character")
		}
		opts = append(opts, urlbuilder.WithLabel(runes[0]))
	}
	return opts, nil
}

func (p Path) options() ([]urlbuilder.PathOption, error) {
	var opts []urlbuilder.PathOption

	if p.Weight != 0 {
		opts = append(opts, urlbuilder.WithWeight(p.Weight))
	}
	if p.Color != "" {
		c, err := urlbuilder.ParseHexColor(p.Color)
		if err != nil {
			return nil, err
		}
		opts = append(opts, urlbuilder.WithPathColor(c))
	}
	return opts, nil
}
