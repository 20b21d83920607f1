package formula

import (
	"math"

	"github.com/madpenguin8/Compulations/units"
)

// Saturation vapor pressure of water in hPa, e = a·exp(b·T / (c + T)).
const (
	waterA = 6.1121
	waterB = 17.502
	waterC = 240.9

	iceA = 6.1115
	iceB = 22.452
	iceC = 272.55
)

func saturationPressure(a, b, c, tempC float64) float64 {
	return a * math.Exp(b*tempC/(c+tempC))
}

func saturationTemp(a, b, c, hPa float64) float64 {
	l := math.Log(hPa / a)
	return l * c / (b - l)
}

// OilFloodedScrewOperatingTempF returns the lowest discharge temperature an
// oil-flooded screw can run at before water vapor drawn in at inletTempF
// condenses at discharge pressure. Saturated inlet air is assumed.
//
// Vacuum service uses the ice curve for the inlet and positive pressure the
// water curve. The water curve inversion is used unless it lands below 0 °C,
// in which case the ice curve inversion is used.
func OilFloodedScrewOperatingTempF(inletTempF, dischargePressurePSIG, ambientPSIA float64) (float64, error) {
	const fn = "OilFloodedScrewOperatingTempF"

	if err := requirePositive(fn, arg{"ambientPSIA", ambientPSIA}); err != nil {
		return 0, err
	}
	lineAbs := dischargePressurePSIG + ambientPSIA
	if !(lineAbs > 0) {
		return 0, &DomainError{Func: fn, Param: "dischargePressurePSIG", Value: dischargePressurePSIG}
	}
	if !(inletTempF > units.AbsoluteZeroF) {
		return 0, &DomainError{Func: fn, Param: "inletTempF", Value: inletTempF}
	}

	inletC := units.CelsiusFromFahrenheit(inletTempF)

	var vp float64
	if dischargePressurePSIG < 0 {
		vp = saturationPressure(iceA, iceB, iceC, inletC)
	} else {
		vp = saturationPressure(waterA, waterB, waterC, inletC)
	}
	vp *= lineAbs / ambientPSIA

	hi := saturationTemp(waterA, waterB, waterC, vp)
	lo := saturationTemp(iceA, iceB, iceC, vp)

	pdp := hi
	if hi < 0 {
		pdp = lo
	}
	return units.FahrenheitFromCelsius(pdp), nil
}
