package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/madpenguin8/Compulations/formula"
	"github.com/madpenguin8/Compulations/internal/catalog"
	"github.com/madpenguin8/Compulations/internal/config"
	"github.com/madpenguin8/Compulations/internal/report"
)

// parseSets reads repeated name=value flags.
func parseSets(sets []string) (map[string]float64, error) {
	params := make(map[string]float64, len(sets))
	for _, s := range sets {
		name, raw, ok := strings.Cut(s, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --set %q: want name=value", s)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --set %q: %w", s, err)
		}
		params[name] = v
	}
	return params, nil
}

// loadSite accepts a preset name or a path to a site file. An empty name
// means no site.
func loadSite(name string) (*config.Site, error) {
	if name == "" {
		return nil, nil
	}
	if site := config.GetPreset(name); site != nil {
		return site, nil
	}
	if _, err := os.Stat(name); err != nil {
		return nil, fmt.Errorf("unknown site: %s (presets: %v)", name, config.ListPresets())
	}
	return config.Load(name)
}

// resolveParams merges --set values over the site for formula f.
func resolveParams(f *catalog.Formula, sets []string, siteName string) (map[string]float64, error) {
	params, err := parseSets(sets)
	if err != nil {
		return nil, err
	}
	site, err := loadSite(siteName)
	if err != nil || site == nil {
		return params, err
	}
	return site.Apply(params, f.HasParam)
}

// evaluateWorksheet runs each calculation against site. Domain errors are
// reported per row; anything else, such as an unknown formula, fails the run.
func evaluateWorksheet(reg *catalog.Registry, ws *config.Worksheet, site *config.Site) ([]report.Row, error) {
	rows := make([]report.Row, 0, len(ws.Calculations))
	for _, c := range ws.Calculations {
		f, err := reg.Get(c.Formula)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Label(), err)
		}
		params, err := site.Apply(c.Params, f.HasParam)
		if err != nil {
			return nil, err
		}

		v, err := f.Evaluate(params)
		if err != nil && !errors.Is(err, formula.ErrOutOfDomain) {
			return nil, fmt.Errorf("%s: %w", c.Label(), err)
		}
		rows = append(rows, report.Row{Label: c.Label(), Value: v, Unit: f.Unit, Err: err})
	}
	return rows, nil
}
