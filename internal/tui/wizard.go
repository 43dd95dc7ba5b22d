// Package tui drives the interactive map-building flow of the CLI. The
// survey-backed driver lives behind PromptDriver so the wizard logic stays
// testable with a scripted fake.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mbehan/go-staticmap/pkg/urlbuilder"
)

var mapTypeOptions = []struct {
	name string
	t    urlbuilder.MapType
}{
	{"hybrid", urlbuilder.TypeHybrid},
	{"roadmap", urlbuilder.TypeRoadmap},
	{"satellite", urlbuilder.TypeSatellite},
	{"terrain", urlbuilder.TypeTerrain},
}

var markerSizeOptions = []struct {
	name string
	s    urlbuilder.MarkerSize
}{
	{"normal", urlbuilder.SizeNormal},
	{"small", urlbuilder.SizeSmall},
	{"mid", urlbuilder.SizeMid},
	{"tiny", urlbuilder.SizeTiny},
}

// RunWizard walks the user through map options, markers, and paths, and
// returns the configured builder plus the title for preview rendering.
func RunWizard(ctx context.Context, d PromptDriver) (*urlbuilder.Builder, string, error) {
	if d == nil {
		return nil, "", errors.New("tui: prompt driver is nil")
	}

	b := urlbuilder.New()

	title, err := d.Input(ctx, InputConfig{
		Message: "Map title",
		Default: "Static map",
		Help:    "Only used for the HTML preview, never sent to the API.",
	})
	if err != nil {
		return nil, "", err
	}

	names := make([]string, len(mapTypeOptions))
	for i, opt := range mapTypeOptions {
		names[i] = opt.name
	}
	idx, err := d.Select(ctx, SelectConfig{Message: "Map type", Options: names})
	if err != nil {
		return nil, "", err
	}
	b.SetMapType(mapTypeOptions[idx].t)

	width, err := promptDimension(ctx, d, "Width in pixels")
	if err != nil {
		return nil, "", err
	}
	height, err := promptDimension(ctx, d, "Height in pixels")
	if err != nil {
		return nil, "", err
	}
	if err := b.SetSize(width, height); err != nil {
		return nil, "", err
	}

	for {
		more, err := d.Confirm(ctx, ConfirmConfig{Message: "Add a marker?", Default: b.Markers() == 0})
		if err != nil {
			return nil, "", err
		}
		if !more {
			break
		}
		if err := promptMarker(ctx, d, b); err != nil {
			return nil, "", err
		}
	}

	for {
		more, err := d.Confirm(ctx, ConfirmConfig{Message: "Add a path?", Default: false})
		if err != nil {
			return nil, "", err
		}
		if !more {
			break
		}
		if err := promptPath(ctx, d, b); err != nil {
			return nil, "", err
		}
	}

	return b, title, nil
}

func promptMarker(ctx context.Context, d PromptDriver, b *urlbuilder.Builder) error {
	pt, err := promptPoint(ctx, d, "Marker")
	if err != nil {
		return err
	}

	var opts []urlbuilder.MarkerOption

	colorHex, err := d.Input(ctx, InputConfig{
		Message:   "Marker color (#RRGGBB, empty for default)",
		Validator: optional(validateHexColor),
	})
	if err != nil {
		return err
	}
	if colorHex = strings.TrimSpace(colorHex); colorHex != "" {
		c, err := urlbuilder.ParseHexColor(colorHex)
		if err != nil {
			return err
		}
		opts = append(opts, urlbuilder.WithColor(c))

		names := make([]string, len(markerSizeOptions))
		for i, opt := range markerSizeOptions {
			names[i] = opt.name
		}
		idx, err := d.Select(ctx, SelectConfig{
			Message: "Marker size",
			Options: names,
			Help:    "Sizes are only honored by the API when a color is set.",
		})
		if err != nil {
			return err
		}
		opts = append(opts, urlbuilder.WithSize(markerSizeOptions[idx].s))
	}

	label, err := d.Input(ctx, InputConfig{
		Message:   "Marker label (single 0-9 or A-Z, empty for none)",
		Validator: optional(validateLabel),
	})
	if err != nil {
		return err
	}
	if label = strings.TrimSpace(label); label != "" {
		opts = append(opts, urlbuilder.WithLabel([]rune(label)[0]))
	}

	return b.AddMarker(pt.Lat, pt.Lng, opts...)
}

func promptPath(ctx context.Context, d PromptDriver, b *urlbuilder.Builder) error {
	var points []urlbuilder.Point
	for {
		pt, err := promptPoint(ctx, d, fmt.Sprintf("Path stop %d", len(points)+1))
		if err != nil {
			return err
		}
		points = append(points, pt)
		if len(points) < 2 {
			continue
		}
		more, err := d.Confirm(ctx, ConfirmConfig{Message: "Add another stop?", Default: false})
		if err != nil {
			return err
		}
		if !more {
			break
		}
	}

	var opts []urlbuilder.PathOption

	weightRaw, err := d.Input(ctx, InputConfig{
		Message:   "Path weight in pixels (empty for default)",
		Validator: optional(validateWeight),
	})
	if err != nil {
		return err
	}
	if weightRaw = strings.TrimSpace(weightRaw); weightRaw != "" {
		weight, err := strconv.Atoi(weightRaw)
		if err != nil {
			return fmt.Errorf("tui: parse weight: %w", err)
		}
		opts = append(opts, urlbuilder.WithWeight(weight))
	}

	colorHex, err := d.Input(ctx, InputConfig{
		Message:   "Path color (#RRGGBB, empty for default)",
		Validator: optional(validateHexColor),
	})
	if err != nil {
		return err
	}
	if colorHex = strings.TrimSpace(colorHex); colorHex != "" {
		c, err := urlbuilder.ParseHexColor(colorHex)
		if err != nil {
			return err
		}
		opts = append(opts, urlbuilder.WithPathColor(c))
	}

	return b.AddPath(points, opts...)
}

func promptPoint(ctx context.Context, d PromptDriver, prefix string) (urlbuilder.Point, error) {
	latRaw, err := d.Input(ctx, InputConfig{
		Message:   prefix + " latitude",
		Validator: validateFloat,
	})
	if err != nil {
		return urlbuilder.Point{}, err
	}
	lngRaw, err := d.Input(ctx, InputConfig{
		Message:   prefix + " longitude",
		Validator: validateFloat,
	})
	if err != nil {
		return urlbuilder.Point{}, err
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(latRaw), 64)
	if err != nil {
		return urlbuilder.Point{}, fmt.Errorf("tui: parse latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(lngRaw), 64)
	if err != nil {
		return urlbuilder.Point{}, fmt.Errorf("tui: parse longitude: %w", err)
	}
	return urlbuilder.Point{Lat: lat, Lng: lng}, nil
}

func promptDimension(ctx context.Context, d PromptDriver, message string) (int, error) {
	raw, err := d.Input(ctx, InputConfig{
		Message:   message,
		Default:   "640",
		Validator: validateDimension,
	})
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("tui: parse dimension: %w", err)
	}
	return v, nil
}

// optional wraps a validator so empty input always passes.
func optional(v func(string) error) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		return v(s)
	}
}

func validateFloat(s string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return errors.New("enter a decimal number")
	}
	return nil
}

func validateDimension(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return errors.New("enter a whole number")
	}
	if v < 1 || v > 640 {
		return errors.New("must be between 1 and 640")
	}
	return nil
}

func validateWeight(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return errors.New("enter a whole number")
	}
	if v < 1 {
		return errors.New("weight must be at least 1")
	}
	return nil
}

func validateHexColor(s string) error {
	_, err := urlbuilder.ParseHexColor(strings.TrimSpace(s))
	return err
}

func validateLabel(s string) error {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) != 1 {
		return errors.New("label must be a single character")
	}
	return nil
}
