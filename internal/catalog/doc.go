// Package catalog names every formula and unit conversion so they can be
// driven by string keys from the command line, worksheets and the TUI.
//
// Formulas take their arguments as a map keyed by snake_case parameter
// name. Missing parameters fall back to a typical default:
//
//	reg := catalog.New()
//	f, _ := reg.Get("motor_power_kw")
//	kw, err := f.Evaluate(map[string]float64{"volts": 480, "amps": 50})
package catalog
