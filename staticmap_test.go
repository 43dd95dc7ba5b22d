package staticmap_test

import (
	"errors"
	"strings"
	"testing"

	staticmap "github.com/mbehan/go-staticmap"
	"github.com/mbehan/go-staticmap/pkg/mapfile"
	"github.com/mbehan/go-staticmap/pkg/urlbuilder"
)

func TestRootBuilderRoundTrip(t *testing.T) {
	b := staticmap.New()
	b.SetMapType(staticmap.TypeSatellite)
	if err := b.AddMarker(51.5074, -0.1278, staticmap.WithLabel('L')); err != nil {
		t.Fatalf("add marker: %v", err)
	}

	got, err := b.URL()
	if err != nil {
		t.Fatalf("url: %v", err)
	}
	for _, fragment := range []string{"&maptype=satellite", "&markers=label:L%7C51.51,-0.13"} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("url %q missing %q", got, fragment)
		}
	}
}

func TestBuildURLFromDefinition(t *testing.T) {
	def := mapfile.Definition{
		MapType: "roadmap",
		Markers: []mapfile.Marker{{Lat: 48.8584, Lng: 2.2945}},
	}

	got, err := staticmap.BuildURL(def)
	if err != nil {
		t.Fatalf("build url: %v", err)
	}
	if !strings.Contains(got, "&markers=48.86,2.29") {
		t.Fatalf("url %q missing marker", got)
	}
	if strings.Contains(got, "&maptype=") {
		t.Fatalf("url %q should omit maptype for roadmap", got)
	}
}

func TestBuildURLPropagatesValidation(t *testing.T) {
	def := mapfile.Definition{}
	if _, err := staticmap.BuildURL(def); !errors.Is(err, urlbuilder.ErrEmptyRequest) {
		t.Fatalf("err = %v, want ErrEmptyRequest", err)
	}
}
