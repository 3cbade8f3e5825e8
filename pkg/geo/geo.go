// Package geo holds the spherical-earth formulae used between two decoded locators.
package geo

import (
	"math"

	"lintang/gridcalc/pkg/datastructure"
)

// GreatCircleDistance is the haversine distance between a and b on a sphere of radius EarthRadius(unit).
//
// https://www.movable-type.co.uk/scripts/latlong.html
func GreatCircleDistance(a, b datastructure.Coordinate, unit Unit) float64 {
	p1 := a.LatLng()
	p2 := b.LatLng()

	lat1 := p1.Lat.Radians()
	lat2 := p2.Lat.Radians()
	diffLat := lat2 - lat1
	diffLon := p2.Lng.Radians() - p1.Lng.Radians()

	h := math.Sin(diffLat/2)*math.Sin(diffLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(diffLon/2)*math.Sin(diffLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadius(unit) * c
}

// InitialBearing is the compass heading at a on the great circle towards b, in [0,360).
// Identical points give 0 since atan2(0, 0) is 0.
//
//	θ = atan2(sin Δλ ⋅ cos φ2, cos φ1 ⋅ sin φ2 − sin φ1 ⋅ cos φ2 ⋅ cos Δλ)
func InitialBearing(a, b datastructure.Coordinate) float64 {
	p1 := a.LatLng()
	p2 := b.LatLng()

	lat1 := p1.Lat.Radians()
	lat2 := p2.Lat.Radians()
	diffLon := p2.Lng.Radians() - p1.Lng.Radians()

	x := math.Sin(diffLon) * math.Cos(lat2)
	y := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(diffLon)
	theta := math.Atan2(x, y)

	return NormalizeAngle(radToDeg(theta))
}

// NormalizeAngle maps any angle in degrees into [0,360).
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 360.0)
	if angle < 0 {
		angle += 360.0
	}
	// tiny negatives round up to exactly 360
	if angle >= 360.0 {
		angle = 0
	}
	return angle
}

var directions = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// CardinalDirection buckets a bearing into one of 16 compass points, each 22.5° wide and centred on its point.
func CardinalDirection(bearing float64) string {
	idx := int(math.Round(NormalizeAngle(bearing)/22.5)) % len(directions)
	return directions[idx]
}

func radToDeg(r float64) float64 {
	return 180.0 * r / math.Pi
}
