package formula

import "math"

// MotorPowerKW returns input power of a balanced three-phase load.
func MotorPowerKW(volts, amps, powerFactor float64) (float64, error) {
	err := requirePositive("MotorPowerKW",
		arg{"volts", volts},
		arg{"amps", amps},
		arg{"powerFactor", powerFactor},
	)
	if err != nil {
		return 0, err
	}
	return volts * amps * powerFactor * math.Sqrt(3.0) / 1000.0, nil
}
