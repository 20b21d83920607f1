package formula

import (
	"math"

	"github.com/madpenguin8/Compulations/units"
)

const (
	seaLevelPa   = 101325.0
	seaLevelMbar = 1013.25
	paPerPSI     = 6894.75729
)

// AmbientPSIAForAltitudeInFeet returns standard atmospheric pressure at
// altitude. The model holds in the troposphere, below about 36,000 ft.
func AmbientPSIAForAltitudeInFeet(altitudeFt float64) (float64, error) {
	base := 1 - 2.25577e-5*units.MetersFromFeet(altitudeFt)
	if !(base > 0) {
		return 0, &DomainError{Func: "AmbientPSIAForAltitudeInFeet", Param: "altitudeFt", Value: altitudeFt}
	}
	return seaLevelPa * math.Pow(base, 5.25588) / paPerPSI, nil
}

// AltitudeFeetFromPSIA is the pressure altitude for an absolute reading.
func AltitudeFeetFromPSIA(psia float64) (float64, error) {
	if err := requirePositive("AltitudeFeetFromPSIA", arg{"psia", psia}); err != nil {
		return 0, err
	}
	mbar := units.KPaFromPSI(psia) * 10.0
	return (1 - math.Pow(mbar/seaLevelMbar, 0.190284)) * 145366.45, nil
}
