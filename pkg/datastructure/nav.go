package datastructure

import "github.com/golang/geo/s2"

// Coordinate is a point in decimal degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

func (c Coordinate) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(c.Lat, c.Lon)
}

// DistanceResult is the outcome of one locator-to-locator calculation.
// BackBearing is the initial bearing of the reverse great-circle path, not Bearing+180.
type DistanceResult struct {
	Distance    float64
	Bearing     float64
	BackBearing float64
	From        Coordinate
	To          Coordinate
}
