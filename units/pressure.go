package units

// Pressure factors. kPa per psi is derived from psiPerKPa so the pair is an
// exact reciprocal.
const (
	psiPerKPa   = 0.14503773773020923
	psiPerBar   = 14.5037738
	inHgPerPSI  = 2.036025
	inHgPerKPa  = 0.295299802
	mmHgPerInHg = 25.399999705
	mmHgPerKPa  = 7.5006183
	inH2OPerKPa = 4.01474213311
	mmH2OPerKPa = 101.971621298

	// PSIPerMmHg is the factor the vapor pressure formula uses on Antoine output.
	PSIPerMmHg = 0.0193367747
)

// PSIFromKPa converts kilopascals to pounds per square inch.
func PSIFromKPa(kPa float64) float64 {
	return kPa * psiPerKPa
}

// KPaFromPSI converts pounds per square inch to kilopascals.
func KPaFromPSI(psi float64) float64 {
	return psi / psiPerKPa
}

// PSIFromBar converts bar to pounds per square inch.
func PSIFromBar(bar float64) float64 {
	return bar * psiPerBar
}

// BarFromPSI converts pounds per square inch to bar.
func BarFromPSI(psi float64) float64 {
	return psi / psiPerBar
}

// InHgFromPSI converts pounds per square inch to inches of mercury.
func InHgFromPSI(psi float64) float64 {
	return psi * inHgPerPSI
}

// PSIFromInHg converts inches of mercury to pounds per square inch.
func PSIFromInHg(inHg float64) float64 {
	return inHg / inHgPerPSI
}

// InHgFromKPa converts kilopascals to inches of mercury.
func InHgFromKPa(kPa float64) float64 {
	return kPa * inHgPerKPa
}

// KPaFromInHg converts inches of mercury to kilopascals.
func KPaFromInHg(inHg float64) float64 {
	return inHg / inHgPerKPa
}

// MmHgFromInHg converts inches of mercury to millimeters of mercury.
func MmHgFromInHg(inHg float64) float64 {
	return inHg * mmHgPerInHg
}

// InHgFromMmHg converts millimeters of mercury to inches of mercury.
func InHgFromMmHg(mmHg float64) float64 {
	return mmHg / mmHgPerInHg
}

// MmHgFromKPa converts kilopascals to millimeters of mercury.
func MmHgFromKPa(kPa float64) float64 {
	return kPa * mmHgPerKPa
}

// KPaFromMmHg converts millimeters of mercury to kilopascals.
func KPaFromMmHg(mmHg float64) float64 {
	return mmHg / mmHgPerKPa
}

// PSIFromMmHg converts millimeters of mercury to pounds per square inch.
func PSIFromMmHg(mmHg float64) float64 {
	return mmHg * PSIPerMmHg
}

// MmHgFromPSI converts pounds per square inch to millimeters of mercury.
func MmHgFromPSI(psi float64) float64 {
	return psi / PSIPerMmHg
}

// InH2OFromKPa converts kilopascals to inches of water column.
func InH2OFromKPa(kPa float64) float64 {
	return kPa * inH2OPerKPa
}

// KPaFromInH2O converts inches of water column to kilopascals.
func KPaFromInH2O(inH2O float64) float64 {
	return inH2O / inH2OPerKPa
}

// MmH2OFromKPa converts kilopascals to millimeters of water column.
func MmH2OFromKPa(kPa float64) float64 {
	return kPa * mmH2OPerKPa
}

// KPaFromMmH2O converts millimeters of water column to kilopascals.
func KPaFromMmH2O(mmH2O float64) float64 {
	return mmH2O / mmH2OPerKPa
}
