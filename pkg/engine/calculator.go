// Package engine joins the locator decoder and the geodesy formulae into the
// calls a front end needs: a full distance/bearing report or a bare distance.
package engine

import (
	"lintang/gridcalc/domain"
	"lintang/gridcalc/pkg/datastructure"
	"lintang/gridcalc/pkg/geo"
	"lintang/gridcalc/pkg/maidenhead"
)

// Evaluate decodes both locators and reports distance, forward bearing and back bearing.
func Evaluate(from, to string, unit geo.Unit) (datastructure.DistanceResult, error) {
	src, dst, err := decodePair(from, to)
	if err != nil {
		return datastructure.DistanceResult{}, err
	}

	return datastructure.DistanceResult{
		Distance:    geo.GreatCircleDistance(src, dst, unit),
		Bearing:     geo.InitialBearing(src, dst),
		BackBearing: geo.InitialBearing(dst, src),
		From:        src,
		To:          dst,
	}, nil
}

// Distance is Evaluate without the bearings.
func Distance(from, to string, unit geo.Unit) (float64, error) {
	src, dst, err := decodePair(from, to)
	if err != nil {
		return 0, err
	}
	return geo.GreatCircleDistance(src, dst, unit), nil
}

// Bearing is the initial great-circle bearing from one locator to another.
func Bearing(from, to string) (float64, error) {
	src, dst, err := decodePair(from, to)
	if err != nil {
		return 0, err
	}
	return geo.InitialBearing(src, dst), nil
}

// LocatorError names the locator that failed to decode. Its message is the decoder's.
type LocatorError struct {
	Locator string
	err     error
}

func (e *LocatorError) Error() string {
	return e.err.Error()
}

func (e *LocatorError) Unwrap() error {
	return e.err
}

func decode(locator string) (datastructure.Coordinate, error) {
	c, err := maidenhead.Decode(locator)
	if err != nil {
		return datastructure.Coordinate{}, &LocatorError{
			Locator: locator,
			err:     domain.WrapErrorf(err, domain.ErrInvalidFormat, "%s", err),
		}
	}
	return c, nil
}

func decodePair(from, to string) (src, dst datastructure.Coordinate, err error) {
	src, err = decode(from)
	if err != nil {
		return
	}
	dst, err = decode(to)
	return
}
