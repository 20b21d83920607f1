package config

import "sort"

// Presets are the built-in sites by name.
var Presets = map[string]*Site{
	"sea_level": {
		Name: "sea_level", AltitudeFt: 0, TempF: 68, RH: 0.36, LinePSIG: 100,
		Standard: DefaultStandard(),
	},
	"denver": {
		Name: "denver", AltitudeFt: 5280, TempF: 70, RH: 0.3, LinePSIG: 100,
		Standard: DefaultStandard(),
	},
	"mexico_city": {
		Name: "mexico_city", AltitudeFt: 7350, TempF: 75, RH: 0.5, LinePSIG: 100,
		Standard: DefaultStandard(),
	},
	"humid_gulf": {
		Name: "humid_gulf", AltitudeFt: 0, TempF: 95, RH: 0.8, LinePSIG: 110,
		Standard: DefaultStandard(),
	},
	"dry_desert": {
		Name: "dry_desert", AltitudeFt: 2000, TempF: 110, RH: 0.1, LinePSIG: 110,
		Standard: DefaultStandard(),
	},
}

// GetPreset returns a copy of the named site, or nil.
func GetPreset(name string) *Site {
	site, ok := Presets[name]
	if !ok {
		return nil
	}
	s := *site
	return &s
}

// ListPresets returns preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
