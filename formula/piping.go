package formula

import (
	"math"

	"github.com/madpenguin8/Compulations/units"
)

// PipeDiamInForVelocity returns the inside pipe diameter in inches that
// carries flowRateCFM of free air at velocityFPS once compressed to line
// pressure.
func PipeDiamInForVelocity(flowRateCFM, velocityFPS, linePressurePSIG, ambientPSIA float64) (float64, error) {
	err := requirePositive("PipeDiamInForVelocity",
		arg{"flowRateCFM", flowRateCFM},
		arg{"velocityFPS", velocityFPS},
		arg{"linePressurePSIG", linePressurePSIG},
		arg{"ambientPSIA", ambientPSIA},
	)
	if err != nil {
		return 0, err
	}

	numerator := 144.0 * flowRateCFM * ambientPSIA
	denominator := velocityFPS * 60.0 * (linePressurePSIG + ambientPSIA)
	areaSqIn := numerator / denominator
	return 2.0 * math.Sqrt(areaSqIn/math.Pi), nil
}

// VelocityInPipeFPS returns the velocity of flowRateCFM of free air through
// a pipe of the given inside diameter at line pressure.
func VelocityInPipeFPS(flowRateCFM, linePressurePSIG, ambientPSIA, pipeDiameterIn float64) (float64, error) {
	err := requirePositive("VelocityInPipeFPS",
		arg{"flowRateCFM", flowRateCFM},
		arg{"linePressurePSIG", linePressurePSIG},
		arg{"ambientPSIA", ambientPSIA},
		arg{"pipeDiameterIn", pipeDiameterIn},
	)
	if err != nil {
		return 0, err
	}

	compression := ambientPSIA / (linePressurePSIG + ambientPSIA)
	radiusFt := pipeDiameterIn / 24.0
	return flowRateCFM * compression / (60.0 * math.Pi * radiusFt * radiusFt), nil
}

// AirDensityPoundsPerCubicFoot approximates dry air density from the ideal
// gas law.
func AirDensityPoundsPerCubicFoot(linePressurePSIG, ambientPSIA, airTemperatureF float64) (float64, error) {
	const fn = "AirDensityPoundsPerCubicFoot"

	absolute := linePressurePSIG + ambientPSIA
	if err := requirePositive(fn, arg{"linePressurePSIG+ambientPSIA", absolute}); err != nil {
		return 0, err
	}
	if !(airTemperatureF > units.AbsoluteZeroF) {
		return 0, &DomainError{Func: fn, Param: "airTemperatureF", Value: airTemperatureF}
	}
	return 2.7 * absolute / units.RankineFromFahrenheit(airTemperatureF), nil
}
