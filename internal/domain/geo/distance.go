// Package geo holds the great-circle math shared by the browse query and its callers.
package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// EarthRadiusKm is the mean earth radius used by every distance calculation in the service.
const EarthRadiusKm = 6371.0

// Point builds an orb point from latitude and longitude. orb stores longitude first.
func Point(lat, lng float64) orb.Point {
	return orb.Point{lng, lat}
}

// DistanceKm returns the haversine distance between two points in kilometres.
// Identical points give exactly 0, which the zero-radius filter relies on.
func DistanceKm(p1, p2 orb.Point) float64 {
	return orbgeo.DistanceHaversine(p1, p2) / orb.EarthRadius * EarthRadiusKm
}

// Within reports whether p2 lies within maxKm of p1.
func Within(p1, p2 orb.Point, maxKm float64) bool {
	return DistanceKm(p1, p2) <= maxKm
}

// SearchBound returns a lat/lng box enclosing every point within radiusKm of center.
// ok is false when the box crosses the antimeridian, in which case callers must not use
// it as a prefilter.
func SearchBound(center orb.Point, radiusKm float64) (orb.Bound, bool) {
	if radiusKm <= 0 {
		return orb.Bound{Min: center, Max: center}, true
	}

	// orb measures on a larger sphere; scale so the box spans the same central angle.
	meters := radiusKm * 1000 * orb.EarthRadius / (EarthRadiusKm * 1000)
	bound := orbgeo.NewBoundAroundPoint(center, meters)
	if bound.Min.Lon() > bound.Max.Lon() ||
		math.IsNaN(bound.Min.Lon()) || math.IsNaN(bound.Max.Lon()) {
		return orb.Bound{}, false
	}

	// Pad slightly so rounding at the box edge never drops a point the exact filter keeps.
	return bound.Pad(0.001), true
}

// IsValidCoordinate checks latitude/longitude ranges.
func IsValidCoordinate(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
