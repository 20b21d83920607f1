package units

const (
	feetPerMeter = 3.2808399
	mmPerInch    = 25.4
	inchesPerFt  = 12.0
)

// FeetFromMeters converts meters to feet.
func FeetFromMeters(m float64) float64 {
	return m * feetPerMeter
}

// MetersFromFeet converts feet to meters.
func MetersFromFeet(ft float64) float64 {
	return ft / feetPerMeter
}

// InchesFromMillimeters converts millimeters to inches.
func InchesFromMillimeters(mm float64) float64 {
	return mm / mmPerInch
}

// MillimetersFromInches converts inches to millimeters.
func MillimetersFromInches(in float64) float64 {
	return in * mmPerInch
}

// FeetFromInches converts inches to feet.
func FeetFromInches(in float64) float64 {
	return in / inchesPerFt
}

// InchesFromFeet converts feet to inches.
func InchesFromFeet(ft float64) float64 {
	return ft * inchesPerFt
}
