package urlbuilder

import "fmt"

// MapType selects the base layer rendered by the Static Maps API.
type MapType int

const (
	// TypeRoadmap is the default road map view of the API itself. It is
	// never written to the URL because the API assumes it.
	TypeRoadmap MapType = iota
	// TypeSatellite is a satellite view with no road information.
	TypeSatellite
	// TypeTerrain shows physical features such as elevation.
	TypeTerrain
	// TypeHybrid overlays road information on satellite imagery. It is the
	// default for builders created by New.
	TypeHybrid
)

// MarkerSize selects the rendered size of a marker icon.
type MarkerSize int

const (
	// SizeNormal is the largest marker and the API default.
	SizeNormal MarkerSize = iota
	// SizeTiny is the smallest marker size. Labels do not fit on it.
	SizeTiny
	// SizeMid sits between tiny and small. Labels do not fit on it either.
	SizeMid
	// SizeSmall is the small marker size.
	SizeSmall
)

// Wire names are defined once and consulted by both String implementations
// so the lowercase literals the API expects never get duplicated.
var mapTypeNames = map[MapType]string{
	TypeRoadmap:   "roadmap",
	TypeSatellite: "satellite",
	TypeTerrain:   "terrain",
	TypeHybrid:    "hybrid",
}

var markerSizeNames = map[MarkerSize]string{
	SizeNormal: "normal",
	SizeTiny:   "tiny",
	SizeMid:    "mid",
	SizeSmall:  "small",
}

// String returns the lowercase wire name of the map type.
func (t MapType) String() string {
	return mapTypeNames[t]
}

// String returns the lowercase wire name of the marker size.
func (s MarkerSize) String() string {
	return markerSizeNames[s]
}

// ParseMapType resolves a wire name back into a MapType. Used by callers
// that read map definitions from configuration rather than code.
func ParseMapType(name string) (MapType, error) {
	for t, n := range mapTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("urlbuilder: unknown map type %q", name)
}

// ParseMarkerSize resolves a wire name back into a MarkerSize.
func ParseMarkerSize(name string) (MarkerSize, error) {
	for s, n := range markerSizeNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("urlbuilder: unknown marker size %q", name)
}
