package formula

import (
	"math"

	"github.com/madpenguin8/Compulations/units"
)

type antoine struct {
	a, b, c float64
}

// Antoine coefficients for water, mmHg and °C.
var (
	antoineLow  = antoine{8.07131, 1730.63, 233.426}
	antoineHigh = antoine{8.14019, 1810.94, 244.485}
)

// VaporPressureOfWaterInPsiForTemp returns the saturation pressure of water
// from the Antoine equation. The coefficients switch above 100 °C. The
// equation is fit for 1 °C to 374 °C.
func VaporPressureOfWaterInPsiForTemp(degreesF float64) (float64, error) {
	tempC := units.CelsiusFromFahrenheit(degreesF)

	k := antoineLow
	if tempC > 100.0 {
		k = antoineHigh
	}
	if !(k.c+tempC > 0) {
		return 0, &DomainError{Func: "VaporPressureOfWaterInPsiForTemp", Param: "degreesF", Value: degreesF}
	}

	mmHg := math.Pow(10, k.a-k.b/(k.c+tempC))
	return units.PSIFromMmHg(mmHg), nil
}

// Conditions describes the reference and site air used to convert between
// standard and actual flow. Relative humidity is a fraction in [0, 1].
// InletPSIA is the absolute pressure at the compressor inlet after filter
// and valve losses.
type Conditions struct {
	StandardPSIA  float64
	StandardTempF float64
	StandardRH    float64
	SitePSIA      float64
	SiteTempF     float64
	SiteRH        float64
	InletPSIA     float64
}

// StandardConditions returns CAGI reference air at 14.696 psia, 68 °F and
// 0% RH, with the site set to the same air.
func StandardConditions() Conditions {
	return Conditions{
		StandardPSIA:  14.696,
		StandardTempF: 68.0,
		StandardRH:    0.0,
		SitePSIA:      14.696,
		SiteTempF:     68.0,
		SiteRH:        0.0,
		InletPSIA:     14.696,
	}
}

type flowMultipliers struct {
	humidity    float64
	temperature float64
	inlet       float64
}

func (c Conditions) multipliers(fn string) (flowMultipliers, error) {
	err := requirePositive(fn,
		arg{"standardAmbientPressurePSI", c.StandardPSIA},
		arg{"siteAmbientPressurePSI", c.SitePSIA},
		arg{"inletPressurePSI", c.InletPSIA},
	)
	if err != nil {
		return flowMultipliers{}, err
	}
	for _, t := range []arg{{"standardAmbientTempF", c.StandardTempF}, {"siteAmbientTempF", c.SiteTempF}} {
		if !(t.value > units.AbsoluteZeroF) {
			return flowMultipliers{}, &DomainError{Func: fn, Param: t.name, Value: t.value}
		}
	}
	for _, rh := range []arg{{"standardAmbientRH", c.StandardRH}, {"siteAmbientRH", c.SiteRH}} {
		if !(rh.value >= 0 && rh.value <= 1) {
			return flowMultipliers{}, &DomainError{Func: fn, Param: rh.name, Value: rh.value}
		}
	}

	vpStandard, err := VaporPressureOfWaterInPsiForTemp(c.StandardTempF)
	if err != nil {
		return flowMultipliers{}, err
	}
	vpSite, err := VaporPressureOfWaterInPsiForTemp(c.SiteTempF)
	if err != nil {
		return flowMultipliers{}, err
	}

	dryStandard := c.StandardPSIA - c.StandardRH*vpStandard
	drySite := c.SitePSIA - c.SiteRH*vpSite
	err = requirePositive(fn,
		arg{"standardAmbientPressurePSI-standardAmbientRH*vapor", dryStandard},
		arg{"siteAmbientPressurePSI-siteAmbientRH*vapor", drySite},
	)
	if err != nil {
		return flowMultipliers{}, err
	}

	return flowMultipliers{
		humidity:    dryStandard / drySite,
		temperature: units.RankineFromFahrenheit(c.SiteTempF) / units.RankineFromFahrenheit(c.StandardTempF),
		inlet:       c.SitePSIA / c.InletPSIA,
	}, nil
}

// SCFMFromACFM converts flow measured at site conditions to standard flow.
// Pressures are absolute and relative humidity is a fraction.
func SCFMFromACFM(acfm,
	standardAmbientPressurePSI, standardAmbientTempF, standardAmbientRH,
	siteAmbientPressurePSI, siteAmbientTempF, siteAmbientRH,
	inletPressurePSI float64) (float64, error) {
	c := Conditions{
		StandardPSIA:  standardAmbientPressurePSI,
		StandardTempF: standardAmbientTempF,
		StandardRH:    standardAmbientRH,
		SitePSIA:      siteAmbientPressurePSI,
		SiteTempF:     siteAmbientTempF,
		SiteRH:        siteAmbientRH,
		InletPSIA:     inletPressurePSI,
	}
	m, err := c.multipliers("SCFMFromACFM")
	if err != nil {
		return 0, err
	}
	return acfm / m.humidity / m.temperature / m.inlet, nil
}

// ACFMFromSCFM is the inverse of SCFMFromACFM for the same conditions.
func ACFMFromSCFM(scfm,
	standardAmbientPressurePSI, standardAmbientTempF, standardAmbientRH,
	siteAmbientPressurePSI, siteAmbientTempF, siteAmbientRH,
	inletPressurePSI float64) (float64, error) {
	c := Conditions{
		StandardPSIA:  standardAmbientPressurePSI,
		StandardTempF: standardAmbientTempF,
		StandardRH:    standardAmbientRH,
		SitePSIA:      siteAmbientPressurePSI,
		SiteTempF:     siteAmbientTempF,
		SiteRH:        siteAmbientRH,
		InletPSIA:     inletPressurePSI,
	}
	m, err := c.multipliers("ACFMFromSCFM")
	if err != nil {
		return 0, err
	}
	return scfm * m.humidity * m.temperature * m.inlet, nil
}

// SCFMFromACFM calls the package function with c's fields in order.
func (c Conditions) SCFMFromACFM(acfm float64) (float64, error) {
	return SCFMFromACFM(acfm,
		c.StandardPSIA, c.StandardTempF, c.StandardRH,
		c.SitePSIA, c.SiteTempF, c.SiteRH,
		c.InletPSIA)
}

// ACFMFromSCFM calls the package function with c's fields in order.
func (c Conditions) ACFMFromSCFM(scfm float64) (float64, error) {
	return ACFMFromSCFM(scfm,
		c.StandardPSIA, c.StandardTempF, c.StandardRH,
		c.SitePSIA, c.SiteTempF, c.SiteRH,
		c.InletPSIA)
}
