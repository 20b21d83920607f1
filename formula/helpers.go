package formula

import "math"

// MappedValue linearly maps x from [inMin, inMax] onto [outMin, outMax].
// Values outside the input range extrapolate. A zero-width input range is
// out of domain.
func MappedValue(x, inMin, inMax, outMin, outMax float64) (float64, error) {
	if inMax == inMin {
		return 0, &DomainError{Func: "MappedValue", Param: "inMax", Value: inMax}
	}
	slope := (outMax - outMin) / (inMax - inMin)
	return outMin + slope*(x-inMin), nil
}

// GearSpeedFeetPerMinute is pitch line velocity.
func GearSpeedFeetPerMinute(gearDiameterIn, rpm float64) float64 {
	return math.Pi / 12.0 * gearDiameterIn * rpm
}
