package units

import "math"

const kwPerHP = 0.745699872

var sqrt3 = math.Sqrt(3.0)

// KWFromHP converts horsepower to kilowatts.
func KWFromHP(hp float64) float64 {
	return hp * kwPerHP
}

// HPFromKW converts kilowatts to horsepower.
func HPFromKW(kw float64) float64 {
	return kw / kwPerHP
}

// VoltsPeakFromVoltsRMS assumes a pure sine wave.
func VoltsPeakFromVoltsRMS(vrms float64) float64 {
	return vrms * math.Sqrt2
}

// VoltsRMSFromVoltsPeak converts sinusoidal peak voltage to RMS voltage.
func VoltsRMSFromVoltsPeak(vp float64) float64 {
	return vp / math.Sqrt2
}

// AmpsFLAFromWyeDelta returns line full-load amps for a wye-delta winding
// current.
func AmpsFLAFromWyeDelta(wyeDeltaAmps float64) float64 {
	return wyeDeltaAmps * sqrt3
}

// AmpsWyeDeltaFromFLA converts line full-load amps to wye-delta winding current.
func AmpsWyeDeltaFromFLA(fla float64) float64 {
	return fla / sqrt3
}
