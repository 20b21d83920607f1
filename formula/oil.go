package formula

const (
	// ounces of oil by weight carried per cubic foot of standard air
	// (0.075 lb/ft³) at 1 ppm
	ouncesPerCubicFootPPM = 0.0000012
	ouncesPerGallon       = 128.0
)

// OilCarryoverGallons returns the oil volume lost downstream of a
// compressor running operatingHours at a carryover concentration.
func OilCarryoverGallons(flowRateCFM, concentrationPPM, operatingHours, oilSpecificGravity float64) (float64, error) {
	err := requirePositive("OilCarryoverGallons",
		arg{"flowRateCFM", flowRateCFM},
		arg{"concentrationPPM", concentrationPPM},
		arg{"operatingHours", operatingHours},
		arg{"oilSpecificGravity", oilSpecificGravity},
	)
	if err != nil {
		return 0, err
	}

	ounces := concentrationPPM * flowRateCFM * operatingHours * 60.0 * ouncesPerCubicFootPPM
	return ounces / (oilSpecificGravity * ouncesPerGallon), nil
}

// OilCarryoverConcentrationPPM is the inverse of OilCarryoverGallons: the
// concentration implied by a measured oil loss.
func OilCarryoverConcentrationPPM(flowRateCFM, oilLossGallons, operatingHours, oilSpecificGravity float64) (float64, error) {
	err := requirePositive("OilCarryoverConcentrationPPM",
		arg{"flowRateCFM", flowRateCFM},
		arg{"oilLossGallons", oilLossGallons},
		arg{"operatingHours", operatingHours},
		arg{"oilSpecificGravity", oilSpecificGravity},
	)
	if err != nil {
		return 0, err
	}

	numerator := oilLossGallons * oilSpecificGravity * ouncesPerGallon
	denominator := operatingHours * 60.0 * flowRateCFM * ouncesPerCubicFootPPM
	return numerator / denominator, nil
}
