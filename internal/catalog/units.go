package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/madpenguin8/Compulations/units"
)

// unit converts to and from its dimension's base unit. Any two units of the
// same dimension convert through the base.
type unit struct {
	dimension string
	toBase    func(float64) float64
	fromBase  func(float64) float64
}

func identity(v float64) float64 { return v }

func chain(fns ...func(float64) float64) func(float64) float64 {
	return func(v float64) float64 {
		for _, fn := range fns {
			v = fn(v)
		}
		return v
	}
}

var unitAliases = map[string]string{
	"degf": "f", "°f": "f", "fahrenheit": "f",
	"degc": "c", "°c": "c", "celsius": "c",
	"kelvin": "k",
	"degr": "r", "°r": "r", "rankine": "r",
	"psig": "psi", "psia": "psi",
	"feet": "ft", "foot": "ft",
	"meters": "m", "meter": "m",
	"inch": "in", "inches": "in",
	"gallons": "gal", "gallon": "gal",
	"cf": "ft3", "cuft": "ft3", "ft^3": "ft3", "ft³": "ft3",
	"m^3": "m3", "m³": "m3",
	"liters": "l", "liter": "l",
	"m3/min": "m3min", "m³/min": "m3min", "scfm": "cfm", "acfm": "cfm",
	"newtons": "n", "lb": "lbf", "pounds": "lbf",
}

func (r *Registry) registerUnits() {
	add := func(dim, name string, toBase, fromBase func(float64) float64) {
		r.units[name] = unit{dimension: dim, toBase: toBase, fromBase: fromBase}
	}

	add("temperature", "c", identity, identity)
	add("temperature", "f", units.CelsiusFromFahrenheit, units.FahrenheitFromCelsius)
	add("temperature", "k", units.CelsiusFromKelvin, units.KelvinFromCelsius)
	add("temperature", "r",
		chain(units.FahrenheitFromRankine, units.CelsiusFromFahrenheit),
		chain(units.FahrenheitFromCelsius, units.RankineFromFahrenheit))

	add("pressure", "kpa", identity, identity)
	add("pressure", "psi", units.KPaFromPSI, units.PSIFromKPa)
	add("pressure", "bar", chain(units.PSIFromBar, units.KPaFromPSI), chain(units.PSIFromKPa, units.BarFromPSI))
	add("pressure", "inhg", units.KPaFromInHg, units.InHgFromKPa)
	add("pressure", "mmhg", units.KPaFromMmHg, units.MmHgFromKPa)
	add("pressure", "inh2o", units.KPaFromInH2O, units.InH2OFromKPa)
	add("pressure", "mmh2o", units.KPaFromMmH2O, units.MmH2OFromKPa)

	add("length", "ft", identity, identity)
	add("length", "m", units.FeetFromMeters, units.MetersFromFeet)
	add("length", "in", units.FeetFromInches, units.InchesFromFeet)
	add("length", "mm",
		chain(units.InchesFromMillimeters, units.FeetFromInches),
		chain(units.InchesFromFeet, units.MillimetersFromInches))

	add("volume", "ft3", identity, identity)
	add("volume", "gal", units.CubicFeetFromGallons, units.GallonsFromCubicFeet)
	add("volume", "m3", units.CubicFeetFromCubicMeters, units.CubicMetersFromCubicFeet)
	add("volume", "l",
		chain(units.GallonsFromLiters, units.CubicFeetFromGallons),
		chain(units.GallonsFromCubicFeet, units.LitersFromGallons))

	add("power", "kw", identity, identity)
	add("power", "hp", units.KWFromHP, units.HPFromKW)

	add("voltage", "vrms", identity, identity)
	add("voltage", "vpeak", units.VoltsRMSFromVoltsPeak, units.VoltsPeakFromVoltsRMS)

	add("current", "fla", identity, identity)
	add("current", "wyedelta", units.AmpsFLAFromWyeDelta, units.AmpsWyeDeltaFromFLA)

	add("flow", "cfm", identity, identity)
	add("flow", "m3min", units.CFMFromM3PerMinute, units.M3PerMinuteFromCFM)

	add("force", "lbf", identity, identity)
	add("force", "n", units.PoundsFromNewtons, units.NewtonsFromPounds)
}

func canonicalUnit(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if alias, ok := unitAliases[name]; ok {
		return alias
	}
	return name
}

// Convert converts v between two units of the same dimension. Unit names
// are case-insensitive and accept common aliases such as psig or degF.
func (r *Registry) Convert(v float64, from, to string) (float64, error) {
	src, ok := r.units[canonicalUnit(from)]
	if !ok {
		return 0, fmt.Errorf("unknown unit: %s", from)
	}
	dst, ok := r.units[canonicalUnit(to)]
	if !ok {
		return 0, fmt.Errorf("unknown unit: %s", to)
	}
	if src.dimension != dst.dimension {
		return 0, fmt.Errorf("no conversion from %s to %s", from, to)
	}
	return dst.fromBase(src.toBase(v)), nil
}

// Dimension returns the physical dimension a unit measures.
func (r *Registry) Dimension(name string) (string, bool) {
	u, ok := r.units[canonicalUnit(name)]
	return u.dimension, ok
}

// Units lists canonical unit names sorted by dimension, then name.
func (r *Registry) Units() []string {
	names := make([]string, 0, len(r.units))
	for name := range r.units {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		di, dj := r.units[names[i]].dimension, r.units[names[j]].dimension
		if di != dj {
			return di < dj
		}
		return names[i] < names[j]
	})
	return names
}
