package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Worksheet is a batch of calculations against one site. The site comes
// from either a preset name or an inline site block.
type Worksheet struct {
	Preset       string        `yaml:"preset,omitempty"`
	Site         *Site         `yaml:"site,omitempty"`
	Calculations []Calculation `yaml:"calculations"`
}

// Calculation is one formula evaluation in a worksheet.
type Calculation struct {
	Name    string             `yaml:"name,omitempty"`
	Formula string             `yaml:"formula"`
	Params  map[string]float64 `yaml:"params,omitempty"`
}

// Label is the name shown for the calculation in reports.
func (c Calculation) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Formula
}

// LoadWorksheet reads a YAML worksheet. An inline site starts from
// DefaultSite.
func LoadWorksheet(path string) (*Worksheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw struct {
		Preset       string        `yaml:"preset"`
		Site         yaml.Node     `yaml:"site"`
		Calculations []Calculation `yaml:"calculations"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	w := Worksheet{Preset: raw.Preset, Calculations: raw.Calculations}
	// a zero Kind means the document has no site block
	if raw.Site.Kind != 0 {
		// inline sites start from the defaults like site files do
		w.Site = DefaultSite()
		if err := raw.Site.Decode(w.Site); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	if len(w.Calculations) == 0 {
		return nil, fmt.Errorf("%s: worksheet has no calculations", path)
	}
	for i, c := range w.Calculations {
		if c.Formula == "" {
			return nil, fmt.Errorf("%s: calculation %d has no formula", path, i+1)
		}
	}
	return &w, nil
}

// SaveWorksheet writes w to path as YAML.
func SaveWorksheet(path string, w *Worksheet) error {
	data, err := yaml.Marshal(w)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ResolveSite picks the worksheet's site: the preset, the inline block, or
// the default when neither is given.
func (w *Worksheet) ResolveSite() (*Site, error) {
	switch {
	case w.Preset != "" && w.Site != nil:
		return nil, errors.New("worksheet sets both preset and site")
	case w.Preset != "":
		site := GetPreset(w.Preset)
		if site == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", w.Preset, ListPresets())
		}
		return site, nil
	case w.Site != nil:
		if err := w.Site.Validate(); err != nil {
			return nil, err
		}
		return w.Site, nil
	default:
		return DefaultSite(), nil
	}
}
