package geo

import "lintang/gridcalc/domain"

// Earth radius per unit, spherical model.
const (
	EarthRadiusKM = 6371.0
	EarthRadiusMI = 3959.0
	EarthRadiusNM = 3440.0
)

// Unit selects the Earth radius used to scale great-circle distances.
type Unit int

const (
	Kilometers Unit = iota
	Miles
	NauticalMiles
)

var units = []Unit{Kilometers, Miles, NauticalMiles}

// Units lists every supported unit in display order.
func Units() []Unit {
	out := make([]Unit, len(units))
	copy(out, units)
	return out
}

// ParseUnit maps a command-line token (km, mi, nm) to its Unit.
func ParseUnit(token string) (Unit, error) {
	switch token {
	case "km":
		return Kilometers, nil
	case "mi":
		return Miles, nil
	case "nm":
		return NauticalMiles, nil
	}
	return Kilometers, domain.NewErrorf(domain.ErrBadParamInput, "Unknown unit '%s'. Use km, mi, or nm.", token)
}

// Token is the inverse of ParseUnit.
func (u Unit) Token() string {
	switch u {
	case Miles:
		return "mi"
	case NauticalMiles:
		return "nm"
	default:
		return "km"
	}
}

// String returns the short label printed after a distance.
func (u Unit) String() string {
	switch u {
	case Miles:
		return "miles"
	case NauticalMiles:
		return "nm"
	default:
		return "km"
	}
}

// Name returns the spelled out label used in detailed output.
func (u Unit) Name() string {
	if u == NauticalMiles {
		return "nautical miles"
	}
	return u.String()
}

// EarthRadius returns the sphere radius for u. Unknown units fall back to kilometers.
func EarthRadius(u Unit) float64 {
	switch u {
	case Miles:
		return EarthRadiusMI
	case NauticalMiles:
		return EarthRadiusNM
	default:
		return EarthRadiusKM
	}
}
