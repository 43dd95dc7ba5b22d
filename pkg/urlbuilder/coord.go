package urlbuilder

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// coordPrecision is the number of fractional digits the API accepts for
// latitude and longitude values; extra precision only wastes URL budget.
const coordPrecision = 2

// Point is a latitude/longitude pair in decimal degrees. The builder trims
// points to coordPrecision digits on ingestion; it does not range-check them
// against the physical [-90,90]/[-180,180] bounds.
type Point struct {
	Lat float64
	Lng float64
}

func (p Point) trimmed() Point {
	return Point{Lat: trimCoord(p.Lat), Lng: trimCoord(p.Lng)}
}

func (p Point) fragment() string {
	return formatCoord(p.Lat) + "," + formatCoord(p.Lng)
}

// trimCoord rounds to coordPrecision fractional digits, half-up on the
// unsigned magnitude. Decimal arithmetic keeps the "as written" semantics:
// 1.005 rounds to 1.01 even though its float64 image sits just below.
func trimCoord(v float64) float64 {
	return decimal.NewFromFloat(v).Round(coordPrecision).InexactFloat64()
}

// formatCoord renders the shortest plain-decimal form, never scientific
// notation and never locale-dependent separators.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
