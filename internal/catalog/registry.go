package catalog

import (
	"fmt"
	"sort"

	"github.com/madpenguin8/Compulations/formula"
)

// Registry holds the formulas and unit conversions by name.
type Registry struct {
	formulas map[string]*Formula
	units    map[string]unit
}

const ambientPSIA = 14.696

// New returns a registry with every formula and unit registered.
func New() *Registry {
	r := &Registry{
		formulas: make(map[string]*Formula),
		units:    make(map[string]unit),
	}
	r.registerFormulas()
	r.registerUnits()
	return r
}

func (r *Registry) add(f *Formula) {
	r.formulas[f.Name] = f
}

// Get returns the named formula.
func (r *Registry) Get(name string) (*Formula, error) {
	f, ok := r.formulas[name]
	if !ok {
		return nil, fmt.Errorf("unknown formula: %s", name)
	}
	return f, nil
}

// List returns formula names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.formulas))
	for name := range r.formulas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Formulas returns all formulas in List order.
func (r *Registry) Formulas() []*Formula {
	names := r.List()
	out := make([]*Formula, len(names))
	for i, name := range names {
		out[i] = r.formulas[name]
	}
	return out
}

func conditionParams() []Param {
	return []Param{
		{"standard_psia", "psia", ambientPSIA},
		{"standard_temp_f", "°F", 68},
		{"standard_rh", "fraction", 0},
		{"site_psia", "psia", ambientPSIA},
		{"site_temp_f", "°F", 68},
		{"site_rh", "fraction", 0},
		{"inlet_psia", "psia", ambientPSIA},
	}
}

func (r *Registry) registerFormulas() {
	r.add(&Formula{
		Name: "motor_power_kw", Unit: "kW",
		Doc: "three-phase motor input power",
		Params: []Param{
			{"volts", "V", 460},
			{"amps", "A", 100},
			{"power_factor", "", 0.85},
		},
		eval: func(a []float64) (float64, error) { return formula.MotorPowerKW(a[0], a[1], a[2]) },
	})

	r.add(&Formula{
		Name: "oil_flooded_screw_operating_temp_f", Unit: "°F",
		Doc: "minimum operating temperature to stay above pressure dewpoint",
		Params: []Param{
			{"inlet_temp_f", "°F", 95},
			{"discharge_pressure_psig", "psig", 125},
			{"ambient_psia", "psia", ambientPSIA},
		},
		eval: func(a []float64) (float64, error) { return formula.OilFloodedScrewOperatingTempF(a[0], a[1], a[2]) },
	})

	r.add(&Formula{
		Name: "ambient_psia_for_altitude", Unit: "psia",
		Doc:    "standard atmospheric pressure at altitude",
		Params: []Param{{"altitude_ft", "ft", 0}},
		eval:   func(a []float64) (float64, error) { return formula.AmbientPSIAForAltitudeInFeet(a[0]) },
	})

	r.add(&Formula{
		Name: "altitude_feet_from_psia", Unit: "ft",
		Doc:    "pressure altitude for an absolute pressure",
		Params: []Param{{"psia", "psia", ambientPSIA}},
		eval:   func(a []float64) (float64, error) { return formula.AltitudeFeetFromPSIA(a[0]) },
	})

	r.add(&Formula{
		Name: "pumpup_time_seconds", Unit: "s",
		Doc: "time to pump a receiver between two pressures",
		Params: []Param{
			{"tank_size_gallons", "gal", 660},
			{"flow_rate_cfm", "cfm", 100},
			{"start_pressure_psig", "psig", 0},
			{"end_pressure_psig", "psig", 125},
			{"ambient_psia", "psia", ambientPSIA},
		},
		eval: func(a []float64) (float64, error) {
			return formula.PumpupTimeInSeconds(a[0], a[1], a[2], a[3], a[4])
		},
	})

	r.add(&Formula{
		Name: "leak_rate_cfm", Unit: "cfm",
		Doc: "leakage from a pressure decay test",
		Params: []Param{
			{"tank_size_gallons", "gal", 660},
			{"start_psig", "psig", 100},
			{"end_psig", "psig", 80},
			{"ambient_psia", "psia", ambientPSIA},
			{"decay_time_mins", "min", 2},
		},
		eval: func(a []float64) (float64, error) {
			return formula.LeakRateCFM(a[0], a[1], a[2], a[3], a[4])
		},
	})

	r.add(&Formula{
		Name: "refill_rate_cfm", Unit: "cfm",
		Doc: "net flow that refilled storage",
		Params: []Param{
			{"storage_cf", "ft³", 88},
			{"start_pressure_psig", "psig", 90},
			{"end_pressure_psig", "psig", 100},
			{"refill_time_mins", "min", 1},
			{"ambient_psia", "psia", ambientPSIA},
		},
		eval: func(a []float64) (float64, error) {
			return formula.RefillRateCFM(a[0], a[1], a[2], a[3], a[4])
		},
	})

	r.add(&Formula{
		Name: "system_capacity_cf", Unit: "ft³",
		Doc: "effective storage from compressor load/unload cycle",
		Params: []Param{
			{"unloaded_time_sec", "s", 30},
			{"loaded_time_sec", "s", 30},
			{"unload_pressure_psig", "psig", 110},
			{"load_pressure_psig", "psig", 100},
			{"rated_flow_cfm", "cfm", 100},
			{"ambient_psia", "psia", ambientPSIA},
		},
		eval: func(a []float64) (float64, error) {
			return formula.SystemCapacityCF(a[0], a[1], a[2], a[3], a[4], a[5])
		},
	})

	r.add(&Formula{
		Name: "event_storage_cf", Unit: "ft³",
		Doc: "secondary storage to ride through a demand event",
		Params: []Param{
			{"event_duration_mins", "min", 2},
			{"cfm_required_for_event", "cfm", 200},
			{"metered_cfm_supplied", "cfm", 100},
			{"ambient_psia", "psia", ambientPSIA},
			{"initial_pressure_psig", "psig", 110},
			{"min_pressure_for_event_psig", "psig", 90},
		},
		eval: func(a []float64) (float64, error) {
			return formula.EventStorageCF(a[0], a[1], a[2], a[3], a[4], a[5])
		},
	})

	r.add(&Formula{
		Name: "vapor_pressure_of_water_psi", Unit: "psi",
		Doc:    "saturation pressure of water (Antoine)",
		Params: []Param{{"degrees_f", "°F", 68}},
		eval:   func(a []float64) (float64, error) { return formula.VaporPressureOfWaterInPsiForTemp(a[0]) },
	})

	r.add(&Formula{
		Name: "scfm_from_acfm", Unit: "scfm",
		Doc:    "standard flow from actual site flow",
		Params: append([]Param{{"acfm", "acfm", 100}}, conditionParams()...),
		eval: func(a []float64) (float64, error) {
			return formula.SCFMFromACFM(a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7])
		},
	})

	r.add(&Formula{
		Name: "acfm_from_scfm", Unit: "acfm",
		Doc:    "actual site flow from standard flow",
		Params: append([]Param{{"scfm", "scfm", 100}}, conditionParams()...),
		eval: func(a []float64) (float64, error) {
			return formula.ACFMFromSCFM(a[0], a[1], a[2], a[3], a[4], a[5], a[6], a[7])
		},
	})

	r.add(&Formula{
		Name: "pipe_diam_in_for_velocity", Unit: "in",
		Doc: "inside pipe diameter for a target velocity",
		Params: []Param{
			{"flow_rate_cfm", "cfm", 100},
			{"velocity_fps", "ft/s", 20},
			{"line_pressure_psig", "psig", 100},
			{"ambient_psia", "psia", ambientPSIA},
		},
		eval: func(a []float64) (float64, error) {
			return formula.PipeDiamInForVelocity(a[0], a[1], a[2], a[3])
		},
	})

	r.add(&Formula{
		Name: "velocity_in_pipe_fps", Unit: "ft/s",
		Doc: "air velocity through a pipe",
		Params: []Param{
			{"flow_rate_cfm", "cfm", 100},
			{"line_pressure_psig", "psig", 100},
			{"ambient_psia", "psia", ambientPSIA},
			{"pipe_diameter_in", "in", 1.049},
		},
		eval: func(a []float64) (float64, error) {
			return formula.VelocityInPipeFPS(a[0], a[1], a[2], a[3])
		},
	})

	r.add(&Formula{
		Name: "air_density_lb_per_cf", Unit: "lb/ft³",
		Doc: "ideal gas air density",
		Params: []Param{
			{"line_pressure_psig", "psig", 0},
			{"ambient_psia", "psia", ambientPSIA},
			{"air_temperature_f", "°F", 68},
		},
		eval: func(a []float64) (float64, error) {
			return formula.AirDensityPoundsPerCubicFoot(a[0], a[1], a[2])
		},
	})

	r.add(&Formula{
		Name: "mapped_value", Unit: "",
		Doc: "linear rescale, e.g. 4-20 mA to engineering units",
		Params: []Param{
			{"input", "", 12},
			{"input_min", "", 4},
			{"input_max", "", 20},
			{"output_min", "", 0},
			{"output_max", "", 150},
		},
		eval: func(a []float64) (float64, error) {
			return formula.MappedValue(a[0], a[1], a[2], a[3], a[4])
		},
	})

	r.add(&Formula{
		Name: "gear_speed_fpm", Unit: "ft/min",
		Doc: "pitch line velocity of a gear",
		Params: []Param{
			{"gear_diameter_in", "in", 12},
			{"rpm", "rpm", 1800},
		},
		eval: func(a []float64) (float64, error) { return formula.GearSpeedFeetPerMinute(a[0], a[1]), nil },
	})

	r.add(&Formula{
		Name: "oil_carryover_gallons", Unit: "gal",
		Doc: "oil lost downstream at a carryover concentration",
		Params: []Param{
			{"flow_rate_cfm", "cfm", 100},
			{"concentration_ppm", "ppm", 3},
			{"operating_hours", "h", 8000},
			{"oil_specific_gravity", "", 0.87},
		},
		eval: func(a []float64) (float64, error) {
			return formula.OilCarryoverGallons(a[0], a[1], a[2], a[3])
		},
	})

	r.add(&Formula{
		Name: "oil_carryover_ppm", Unit: "ppm",
		Doc: "carryover concentration from measured oil loss",
		Params: []Param{
			{"flow_rate_cfm", "cfm", 100},
			{"oil_loss_gallons", "gal", 0.5},
			{"operating_hours", "h", 8000},
			{"oil_specific_gravity", "", 0.87},
		},
		eval: func(a []float64) (float64, error) {
			return formula.OilCarryoverConcentrationPPM(a[0], a[1], a[2], a[3])
		},
	})
}
