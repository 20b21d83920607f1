package units

import "math"

// SynchronousSpeedRPM returns the rotating field speed of an AC motor.
func SynchronousSpeedRPM(hz float64, poles int) float64 {
	return 120.0 * hz / float64(poles)
}

// FrequencyFromSynchronousSpeed returns the supply frequency that drives a
// motor with the given pole count at rpm.
func FrequencyFromSynchronousSpeed(rpm float64, poles int) float64 {
	return float64(poles) * rpm / 120.0
}

// maxPolePairs bounds the estimate well above any real winding.
const maxPolePairs = 1000

// PolesFromSynchronousSpeed estimates the pole count from nameplate speed and
// supply frequency. Nameplate speed includes slip, so the raw ratio is rounded
// to the nearest even count. Returns 0 when rpm is not positive or the ratio
// is not a plausible pole count.
func PolesFromSynchronousSpeed(rpm, hz float64) int {
	if rpm <= 0 {
		return 0
	}
	pairs := math.Round(60.0 * hz / rpm)
	if !(pairs >= 0 && pairs <= maxPolePairs) {
		return 0
	}
	return int(pairs) * 2
}
