package formula

import "github.com/madpenguin8/Compulations/units"

// wideBandCorrection compensates for decay tests run over a wide pressure
// band, where the low pressure is half the start pressure or less.
const wideBandCorrection = 1.25

// PumpupTimeInSeconds returns how long a compressor delivering flowRateCFM
// takes to raise a receiver from start to end pressure.
func PumpupTimeInSeconds(tankSizeGallons, flowRateCFM, startPressurePSIG, endPressurePSIG, ambientPSIA float64) (float64, error) {
	deltaP := endPressurePSIG - startPressurePSIG
	err := requirePositive("PumpupTimeInSeconds",
		arg{"tankSizeGallons", tankSizeGallons},
		arg{"flowRateCFM", flowRateCFM},
		arg{"endPressurePSIG-startPressurePSIG", deltaP},
		arg{"ambientPSIA", ambientPSIA},
	)
	if err != nil {
		return 0, err
	}

	numerator := units.CubicFeetFromGallons(tankSizeGallons) * deltaP
	denominator := ambientPSIA * flowRateCFM
	return numerator / denominator * 60.0, nil
}

// LeakRateCFM estimates system leakage from a pressure decay test with no
// demand on the system.
func LeakRateCFM(tankSizeGallons, startPSIG, endPSIG, ambientPSIA, decayTimeMins float64) (float64, error) {
	const fn = "LeakRateCFM"

	err := requirePositive(fn,
		arg{"tankSizeGallons", tankSizeGallons},
		arg{"decayTimeMins", decayTimeMins},
		arg{"startPSIG", startPSIG},
		arg{"ambientPSIA", ambientPSIA},
	)
	if err != nil {
		return 0, err
	}
	if endPSIG > startPSIG {
		return 0, &DomainError{Func: fn, Param: "endPSIG", Value: endPSIG}
	}

	correction := 1.0
	if endPSIG <= startPSIG/2.0 {
		correction = wideBandCorrection
	}

	numerator := units.CubicFeetFromGallons(tankSizeGallons) * (startPSIG - endPSIG) * correction
	denominator := decayTimeMins * ambientPSIA
	return numerator / denominator, nil
}

// RefillRateCFM returns the net flow that refilled storageCF between two
// pressures in refillTimeMins.
func RefillRateCFM(storageCF, startPressurePSIG, endPressurePSIG, refillTimeMins, ambientPSIA float64) (float64, error) {
	deltaP := endPressurePSIG - startPressurePSIG
	err := requirePositive("RefillRateCFM",
		arg{"endPressurePSIG-startPressurePSIG", deltaP},
		arg{"storageCF", storageCF},
		arg{"refillTimeMins", refillTimeMins},
		arg{"ambientPSIA", ambientPSIA},
	)
	if err != nil {
		return 0, err
	}
	return storageCF * deltaP / (refillTimeMins * ambientPSIA), nil
}

// SystemCapacityCF estimates effective system storage from the load and
// unload times of a compressor cycling between two pressures.
func SystemCapacityCF(unloadedTimeSec, loadedTimeSec, unloadPressurePSIG, loadPressurePSIG, ratedFlowCFM, ambientPSIA float64) (float64, error) {
	totalTime := unloadedTimeSec + loadedTimeSec
	deltaP := unloadPressurePSIG - loadPressurePSIG

	err := requirePositive("SystemCapacityCF",
		arg{"unloadedTimeSec+loadedTimeSec", totalTime},
		arg{"unloadPressurePSIG-loadPressurePSIG", deltaP},
		arg{"ratedFlowCFM", ratedFlowCFM},
		arg{"ambientPSIA", ambientPSIA},
	)
	if err != nil {
		return 0, err
	}

	numerator := loadedTimeSec * unloadedTimeSec * ratedFlowCFM * ambientPSIA
	denominator := totalTime * deltaP
	return numerator / denominator, nil
}

// EventStorageCF sizes secondary storage to carry an event that draws
// cfmRequiredForEvent while only meteredCFMSupplied is fed in, without
// dropping below minPressureForEventPSIG.
func EventStorageCF(eventDurationMins, cfmRequiredForEvent, meteredCFMSupplied, ambientPSIA, initialPressurePSIG, minPressureForEventPSIG float64) (float64, error) {
	deltaP := initialPressurePSIG - minPressureForEventPSIG
	deltaV := cfmRequiredForEvent - meteredCFMSupplied

	err := requirePositive("EventStorageCF",
		arg{"eventDurationMins", eventDurationMins},
		arg{"cfmRequiredForEvent-meteredCFMSupplied", deltaV},
		arg{"initialPressurePSIG-minPressureForEventPSIG", deltaP},
		arg{"ambientPSIA", ambientPSIA},
	)
	if err != nil {
		return 0, err
	}
	return eventDurationMins * deltaV * ambientPSIA / deltaP, nil
}
