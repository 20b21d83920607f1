package units

const newtonsPerPound = 4.44822162825

// CFMFromM3PerMinute converts cubic meters per minute to cubic feet per minute.
func CFMFromM3PerMinute(m3min float64) float64 {
	return m3min * cubicFeetPerCubicMeter
}

// M3PerMinuteFromCFM converts cubic feet per minute to cubic meters per minute.
func M3PerMinuteFromCFM(cfm float64) float64 {
	return cfm / cubicFeetPerCubicMeter
}

// NewtonsFromPounds converts pounds-force to newtons.
func NewtonsFromPounds(lbf float64) float64 {
	return lbf * newtonsPerPound
}

// PoundsFromNewtons converts newtons to pounds-force.
func PoundsFromNewtons(n float64) float64 {
	return n / newtonsPerPound
}
