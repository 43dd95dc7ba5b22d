package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/mbehan/go-staticmap/internal/tui"
	"github.com/mbehan/go-staticmap/pkg/imagery"
	"github.com/mbehan/go-staticmap/pkg/mapfile"
	"github.com/mbehan/go-staticmap/pkg/preview"
	"github.com/mbehan/go-staticmap/pkg/urlbuilder"
)

func main() {
	mapfilePath := flag.String("mapfile", "", "YAML map definition to load")
	interactive := flag.Bool("interactive", false, "build the map through interactive prompts")
	urlOnly := flag.Bool("url-only", false, "print the URL and exit without fetching the image")
	out := flag.String("out", "", "write the fetched map image (PNG) to this file")
	htmlOut := flag.String("html", "", "write an HTML preview page to this file")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout for image retrieval")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	builder, title, notes, err := resolveBuilder(ctx, *mapfilePath, *interactive)
	if err != nil {
		log.Fatalf("Failed to build map: %v", err)
	}

	mapURL, err := builder.URL()
	if err != nil {
		log.Fatalf("Failed to generate URL: %v", err)
	}
	fmt.Println(mapURL)

	if *htmlOut != "" {
		if err := writePreview(builder, title, notes, *htmlOut); err != nil {
			log.Fatalf("Failed to write preview: %v", err)
		}
		fmt.Printf("Preview written to %s\n", *htmlOut)
	}

	if *urlOnly || *out == "" {
		return
	}

	img, err := fetchWithProgress(ctx, builder)
	if err != nil {
		log.Fatalf("Failed to fetch map image: %v", err)
	}
	if err := writePNG(img, *out); err != nil {
		log.Fatalf("Failed to write image: %v", err)
	}
	fmt.Printf("Map image written to %s\n", *out)
}

func resolveBuilder(ctx context.Context, mapfilePath string, interactive bool) (*urlbuilder.Builder, string, string, error) {
	switch {
	case mapfilePath != "":
		def, err := mapfile.Load(mapfilePath)
		if err != nil {
			return nil, "", "", err
		}
		b, err := def.Builder()
		if err != nil {
			return nil, "", "", err
		}
		return b, def.Title, def.Notes, nil
	case interactive:
		b, title, err := tui.RunWizard(ctx, tui.NewSurveyDriver())
		if err != nil {
			return nil, "", "", err
		}
		return b, title, "", nil
	default:
		return nil, "", "", errors.New("either -mapfile or -interactive is required")
	}
}

func fetchWithProgress(ctx context.Context, b *urlbuilder.Builder) (image.Image, error) {
	var bar *progressbar.ProgressBar
	fetcher := imagery.NewFetcher(imagery.WithProgress(func(read, total int64) {
		if bar == nil {
			bar = progressbar.DefaultBytes(total, "fetching map")
		}
		_ = bar.Set64(read)
	}))
	img, err := fetcher.FetchMap(ctx, b)
	if bar != nil {
		_ = bar.Finish()
	}
	return img, err
}

func writePreview(b *urlbuilder.Builder, title, notes, path string) error {
	renderer, err := preview.New()
	if err != nil {
		return err
	}
	html, err := renderer.RenderBuilder(b, title, notes)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(html), 0o644)
}

func writePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return err
	}
	return f.Sync()
}
