// Package maidenhead decodes Maidenhead grid locators (field, square, subsquare,
// extended square) into the centre point of the cell they name.
package maidenhead

import (
	"lintang/gridcalc/domain"
	"lintang/gridcalc/pkg/datastructure"

	"github.com/golang/geo/s2"
)

// tier sizes in degrees, longitude x latitude
const (
	fieldLon = 20.0
	fieldLat = 10.0

	squareLon = 2.0
	squareLat = 1.0

	subsquareLon = 2.0 / 24.0
	subsquareLat = 1.0 / 24.0

	extendedLon = 2.0 / 240.0
	extendedLat = 1.0 / 240.0
)

// Validate reports whether locator is a well formed 2, 4, 6 or 8 character grid square.
// Letters are accepted in either case.
func Validate(locator string) error {
	_, err := normalize(locator)
	return err
}

// Decode returns the centre of the cell named by locator.
func Decode(locator string) (datastructure.Coordinate, error) {
	grid, err := normalize(locator)
	if err != nil {
		return datastructure.Coordinate{}, err
	}

	lat, lon := southWest(grid)
	sizeLon, sizeLat := cellSize(len(grid))
	return datastructure.NewCoordinate(lat+sizeLat/2, lon+sizeLon/2), nil
}

// Bounds returns the rectangle covered by locator, south-west corner to north-east corner.
func Bounds(locator string) (s2.Rect, error) {
	grid, err := normalize(locator)
	if err != nil {
		return s2.EmptyRect(), err
	}

	lat, lon := southWest(grid)
	sizeLon, sizeLat := cellSize(len(grid))
	rect := s2.RectFromLatLng(s2.LatLngFromDegrees(lat, lon))
	return rect.AddPoint(s2.LatLngFromDegrees(lat+sizeLat, lon+sizeLon)), nil
}

func normalize(locator string) (string, error) {
	grid := upperASCII(locator)

	n := len(grid)
	if n != 2 && n != 4 && n != 6 && n != 8 {
		return "", domain.NewErrorf(domain.ErrInvalidFormat, "Grid square must be 2, 4, 6, or 8 characters")
	}

	if !isLetter(grid[0]) || !isLetter(grid[1]) {
		return "", domain.NewErrorf(domain.ErrInvalidFormat, "First two characters must be letters")
	}
	if n >= 4 && (!isDigit(grid[2]) || !isDigit(grid[3])) {
		return "", domain.NewErrorf(domain.ErrInvalidFormat, "Characters 3-4 must be digits")
	}
	if n >= 6 && (!isLetter(grid[4]) || !isLetter(grid[5])) {
		return "", domain.NewErrorf(domain.ErrInvalidFormat, "Characters 5-6 must be letters")
	}
	if n == 8 && (!isDigit(grid[6]) || !isDigit(grid[7])) {
		return "", domain.NewErrorf(domain.ErrInvalidFormat, "Characters 7-8 must be digits")
	}

	return grid, nil
}

// southWest accumulates each tier present in grid. grid must already be normalized.
func southWest(grid string) (lat, lon float64) {
	n := len(grid)

	lon = float64(grid[0]-'A')*fieldLon - 180.0
	lat = float64(grid[1]-'A')*fieldLat - 90.0

	if n >= 4 {
		lon += float64(grid[2]-'0') * squareLon
		lat += float64(grid[3]-'0') * squareLat
	}

	if n >= 6 {
		lon += float64(grid[4]-'A') * subsquareLon
		lat += float64(grid[5]-'A') * subsquareLat
	}

	if n == 8 {
		lon += float64(grid[6]-'0') * extendedLon
		lat += float64(grid[7]-'0') * extendedLat
	}

	return lat, lon
}

// cellSize is the size of the finest tier for a locator of length n.
func cellSize(n int) (lon, lat float64) {
	switch n {
	case 2:
		return fieldLon, fieldLat
	case 4:
		return squareLon, squareLat
	case 6:
		return subsquareLon, subsquareLat
	default:
		return extendedLon, extendedLat
	}
}

// upperASCII folds a-z only, so the byte length of locator never changes.
func upperASCII(locator string) string {
	b := []byte(locator)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

func isLetter(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
