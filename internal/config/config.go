package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/madpenguin8/Compulations/formula"
)

const (
	DefaultLinePSIG      = 100.0
	DefaultTempF         = 68.0
	DefaultStandardPSIA  = 14.696
	DefaultStandardTempF = 68.0
)

// Site describes the air a compressor installation breathes. AmbientPSIA is
// derived from AltitudeFt unless Barometric is set.
type Site struct {
	Name         string   `yaml:"name"`
	AltitudeFt   float64  `yaml:"altitude_ft"`
	Barometric   float64  `yaml:"ambient_psia,omitempty"`
	TempF        float64  `yaml:"ambient_temp_f"`
	RH           float64  `yaml:"ambient_rh"`
	LinePSIG     float64  `yaml:"line_pressure_psig"`
	InletLossPSI float64  `yaml:"inlet_loss_psi"`
	Standard     Standard `yaml:"standard"`
}

// Standard is the reference air flow is normalized to.
type Standard struct {
	PSIA  float64 `yaml:"psia"`
	TempF float64 `yaml:"temp_f"`
	RH    float64 `yaml:"rh"`
}

// DefaultStandard returns the 14.696 psia, 68 °F, dry reference air.
func DefaultStandard() Standard {
	return Standard{PSIA: DefaultStandardPSIA, TempF: DefaultStandardTempF}
}

// DefaultSite returns a sea level site at 68 °F with dry air and 100 psig line pressure.
func DefaultSite() *Site {
	return &Site{
		Name:     "default",
		TempF:    DefaultTempF,
		LinePSIG: DefaultLinePSIG,
		Standard: DefaultStandard(),
	}
}

// Load reads a YAML site file. Fields missing from the file keep their
// DefaultSite values.
func Load(path string) (*Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	site := DefaultSite()
	if err := yaml.Unmarshal(data, site); err != nil {
		return nil, err
	}
	if err := site.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return site, nil
}

// Save writes site to path as YAML.
func Save(path string, site *Site) error {
	data, err := yaml.Marshal(site)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks humidity fractions and that pressures are not negative.
func (s *Site) Validate() error {
	if s.RH < 0 || s.RH > 1 {
		return fmt.Errorf("ambient_rh must be a fraction in [0, 1], got %g", s.RH)
	}
	if s.Standard.RH < 0 || s.Standard.RH > 1 {
		return fmt.Errorf("standard rh must be a fraction in [0, 1], got %g", s.Standard.RH)
	}
	if s.Barometric < 0 {
		return fmt.Errorf("ambient_psia must not be negative, got %g", s.Barometric)
	}
	if s.InletLossPSI < 0 {
		return fmt.Errorf("inlet_loss_psi must not be negative, got %g", s.InletLossPSI)
	}
	return nil
}

// AmbientPSIA returns the explicit barometric pressure, or the standard
// atmosphere at AltitudeFt when none is set.
func (s *Site) AmbientPSIA() (float64, error) {
	if s.Barometric > 0 {
		return s.Barometric, nil
	}
	return formula.AmbientPSIAForAltitudeInFeet(s.AltitudeFt)
}

// Conditions returns the site and reference air for flow conversion.
func (s *Site) Conditions() (formula.Conditions, error) {
	psia, err := s.AmbientPSIA()
	if err != nil {
		return formula.Conditions{}, err
	}
	return formula.Conditions{
		StandardPSIA:  s.Standard.PSIA,
		StandardTempF: s.Standard.TempF,
		StandardRH:    s.Standard.RH,
		SitePSIA:      psia,
		SiteTempF:     s.TempF,
		SiteRH:        s.RH,
		InletPSIA:     psia - s.InletLossPSI,
	}, nil
}

// Values returns the site as formula parameters keyed by catalog name.
func (s *Site) Values() (map[string]float64, error) {
	c, err := s.Conditions()
	if err != nil {
		return nil, err
	}
	return map[string]float64{
		"altitude_ft":        s.AltitudeFt,
		"ambient_psia":       c.SitePSIA,
		"inlet_temp_f":       s.TempF,
		"line_pressure_psig": s.LinePSIG,
		"standard_psia":      c.StandardPSIA,
		"standard_temp_f":    c.StandardTempF,
		"standard_rh":        c.StandardRH,
		"site_psia":          c.SitePSIA,
		"site_temp_f":        c.SiteTempF,
		"site_rh":            c.SiteRH,
		"inlet_psia":         c.InletPSIA,
	}, nil
}

// Apply returns params with site values added for every name accepted by
// has that params does not already set.
func (s *Site) Apply(params map[string]float64, has func(string) bool) (map[string]float64, error) {
	values, err := s.Values()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(params))
	for k, v := range params {
		out[k] = v
	}
	for k, v := range values {
		if _, set := out[k]; set || !has(k) {
			continue
		}
		out[k] = v
	}
	return out, nil
}
