// Package geo computes the rectangular prefilter used for "nearby" searches.
package geo

import "math"

const (
	// KmPerDegreeLat is the approximate length of one degree of latitude.
	KmPerDegreeLat = 111.0

	// DefaultRadiusKm applies when a user has no usable radius preference.
	DefaultRadiusKm = 5.0

	// minCosLat keeps the longitude delta finite near the poles.
	minCosLat = 0.1
)

// BoundingBox is an axis-aligned lat/lng rectangle in degrees.
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLng float64 `json:"max_lng"`
}

// Contains reports whether the point lies inside the box (edges included).
func (b BoundingBox) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}

// Deltas returns the latitude and longitude half-widths for radiusKm at lat.
func Deltas(lat, radiusKm float64) (dLat, dLng float64) {
	dLat = radiusKm / KmPerDegreeLat
	cos := math.Max(minCosLat, math.Abs(math.Cos(lat*math.Pi/180)))
	dLng = radiusKm / (KmPerDegreeLat * cos)
	return dLat, dLng
}

// Around returns a box that contains every point within radiusKm of
// (lat, lng). Corners of the box lie outside the circle.
func Around(lat, lng, radiusKm float64) BoundingBox {
	dLat, dLng := Deltas(lat, radiusKm)
	return BoundingBox{
		MinLat: lat - dLat,
		MaxLat: lat + dLat,
		MinLng: lng - dLng,
		MaxLng: lng + dLng,
	}
}

// EffectiveRadius returns the preferred radius, or DefaultRadiusKm when the
// preference is unset or not positive.
func EffectiveRadius(preferred *float64) float64 {
	if preferred == nil || *preferred <= 0 || math.IsNaN(*preferred) {
		return DefaultRadiusKm
	}
	return *preferred
}
