package units

const (
	gallonsPerCubicFoot    = 7.48051948
	cubicFeetPerCubicMeter = 35.3146667
	litersPerGallon        = 3.78541178
)

// CubicFeetFromGallons converts US gallons to cubic feet.
func CubicFeetFromGallons(gal float64) float64 {
	return gal / gallonsPerCubicFoot
}

// GallonsFromCubicFeet converts cubic feet to US gallons.
func GallonsFromCubicFeet(ft3 float64) float64 {
	return ft3 * gallonsPerCubicFoot
}

// CubicFeetFromCubicMeters converts cubic meters to cubic feet.
func CubicFeetFromCubicMeters(m3 float64) float64 {
	return m3 * cubicFeetPerCubicMeter
}

// CubicMetersFromCubicFeet converts cubic feet to cubic meters.
func CubicMetersFromCubicFeet(ft3 float64) float64 {
	return ft3 / cubicFeetPerCubicMeter
}

// LitersFromGallons converts US gallons to liters.
func LitersFromGallons(gal float64) float64 {
	return gal * litersPerGallon
}

// GallonsFromLiters converts liters to US gallons.
func GallonsFromLiters(l float64) float64 {
	return l / litersPerGallon
}
