package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSite(t *testing.T) {
	site := DefaultSite()

	psia, err := site.AmbientPSIA()
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(psia-14.696) > 1e-3 {
		t.Errorf("expected sea level pressure, got %f", psia)
	}
	if site.LinePSIG <= 0 {
		t.Error("line pressure should be positive")
	}
	if err := site.Validate(); err != nil {
		t.Errorf("default site should validate: %v", err)
	}
}

func TestBarometricOverridesAltitude(t *testing.T) {
	site := DefaultSite()
	site.AltitudeFt = 5280
	site.Barometric = 13.0

	psia, err := site.AmbientPSIA()
	if err != nil {
		t.Fatal(err)
	}
	if psia != 13.0 {
		t.Errorf("expected explicit 13.0 psia, got %f", psia)
	}
}

func TestGetPreset(t *testing.T) {
	site := GetPreset("denver")
	if site == nil {
		t.Fatal("expected preset, got nil")
	}
	psia, _ := site.AmbientPSIA()
	if math.Abs(psia-12.10) > 0.01 {
		t.Errorf("expected about 12.10 psia in denver, got %f", psia)
	}

	site.TempF = -40
	if Presets["denver"].TempF == -40 {
		t.Error("GetPreset should return a copy")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if site := GetPreset("atlantis"); site != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Fatalf("expected %d presets, got %d", len(Presets), len(presets))
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] > presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}
	for _, name := range presets {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s: %v", name, err)
		}
	}
}

func TestConditions(t *testing.T) {
	site := GetPreset("humid_gulf")
	site.InletLossPSI = 0.3

	c, err := site.Conditions()
	if err != nil {
		t.Fatal(err)
	}
	if c.SiteRH != 0.8 || c.SiteTempF != 95 {
		t.Errorf("unexpected site air: %+v", c)
	}
	if math.Abs(c.InletPSIA-(c.SitePSIA-0.3)) > 1e-12 {
		t.Errorf("inlet should be site less loss, got %f", c.InletPSIA)
	}
	if c.StandardPSIA != DefaultStandardPSIA {
		t.Errorf("expected standard %f psia, got %f", DefaultStandardPSIA, c.StandardPSIA)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Site)
	}{
		{"percent humidity", func(s *Site) { s.RH = 60 }},
		{"negative standard humidity", func(s *Site) { s.Standard.RH = -1 }},
		{"negative barometer", func(s *Site) { s.Barometric = -14 }},
		{"negative inlet loss", func(s *Site) { s.InletLossPSI = -1 }},
	}

	for _, tt := range tests {
		site := DefaultSite()
		tt.mutate(site)
		if err := site.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestApply(t *testing.T) {
	site := GetPreset("denver")
	accepts := map[string]bool{"ambient_psia": true, "line_pressure_psig": true, "flow_rate_cfm": true}

	out, err := site.Apply(map[string]float64{"line_pressure_psig": 125}, func(name string) bool {
		return accepts[name]
	})
	if err != nil {
		t.Fatal(err)
	}

	if out["line_pressure_psig"] != 125 {
		t.Errorf("explicit params must win, got %f", out["line_pressure_psig"])
	}
	if math.Abs(out["ambient_psia"]-12.10) > 0.01 {
		t.Errorf("expected site ambient, got %f", out["ambient_psia"])
	}
	if _, ok := out["site_rh"]; ok {
		t.Error("params the formula does not take must not be added")
	}
	if _, ok := out["flow_rate_cfm"]; ok {
		t.Error("non-site params must not be invented")
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	site := GetPreset("mexico_city")
	site.InletLossPSI = 0.2

	if err := Save(path, site); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if *loaded != *site {
		t.Errorf("expected %+v, got %+v", *site, *loaded)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte("name: shop\naltitude_ft: 1000\n"), 0644); err != nil {
		t.Fatal(err)
	}

	site, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if site.Name != "shop" || site.AltitudeFt != 1000 {
		t.Errorf("unexpected site: %+v", site)
	}
	if site.Standard != DefaultStandard() || site.LinePSIG != DefaultLinePSIG {
		t.Errorf("omitted fields should keep defaults: %+v", site)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	os.WriteFile(path, []byte("ambient_rh: 45\n"), 0644)

	if _, err := Load(path); err == nil {
		t.Error("expected error for percent humidity")
	}
}
