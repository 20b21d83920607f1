package units

const (
	AbsoluteZeroC = -273.15
	AbsoluteZeroF = -459.67
)

// CelsiusFromFahrenheit converts degrees Fahrenheit to degrees Celsius.
func CelsiusFromFahrenheit(f float64) float64 {
	return (f - 32.0) * 5.0 / 9.0
}

// FahrenheitFromCelsius converts degrees Celsius to degrees Fahrenheit.
func FahrenheitFromCelsius(c float64) float64 {
	return c*1.8 + 32.0
}

// CelsiusFromKelvin converts kelvin to degrees Celsius.
func CelsiusFromKelvin(k float64) float64 {
	return k + AbsoluteZeroC
}

// KelvinFromCelsius converts degrees Celsius to kelvin.
func KelvinFromCelsius(c float64) float64 {
	return c - AbsoluteZeroC
}

// FahrenheitFromKelvin converts kelvin to degrees Fahrenheit.
func FahrenheitFromKelvin(k float64) float64 {
	return FahrenheitFromCelsius(CelsiusFromKelvin(k))
}

// KelvinFromFahrenheit converts degrees Fahrenheit to kelvin.
func KelvinFromFahrenheit(f float64) float64 {
	return KelvinFromCelsius(CelsiusFromFahrenheit(f))
}

// RankineFromFahrenheit converts degrees Fahrenheit to degrees Rankine.
func RankineFromFahrenheit(f float64) float64 {
	return f - AbsoluteZeroF
}

// FahrenheitFromRankine converts degrees Rankine to degrees Fahrenheit.
func FahrenheitFromRankine(r float64) float64 {
	return r + AbsoluteZeroF
}

// RankineFromKelvin scales an absolute temperature; both scales share zero.
func RankineFromKelvin(k float64) float64 {
	return k * 1.8
}

// KelvinFromRankine converts degrees Rankine to kelvin.
func KelvinFromRankine(r float64) float64 {
	return r / 1.8
}
