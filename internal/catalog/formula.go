package catalog

import (
	"fmt"
	"sort"
)

// Param is a named formula input with its unit and default value.
type Param struct {
	Name    string
	Unit    string
	Default float64
}

// Formula binds a formula function to named, unit-tagged parameters.
type Formula struct {
	Name   string
	Unit   string
	Doc    string
	Params []Param

	eval func(args []float64) (float64, error)
}

func (f *Formula) index(name string) int {
	for i, p := range f.Params {
		if p.Name == name {
			return i
		}
	}
	return -1
}

// HasParam reports whether name is one of the formula's parameters.
func (f *Formula) HasParam(name string) bool {
	return f.index(name) >= 0
}

// ParamNames returns parameter names in argument order.
func (f *Formula) ParamNames() []string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Name
	}
	return names
}

// Defaults returns every parameter mapped to its default value.
func (f *Formula) Defaults() map[string]float64 {
	values := make(map[string]float64, len(f.Params))
	for _, p := range f.Params {
		values[p.Name] = p.Default
	}
	return values
}

// Evaluate runs the formula. Parameters missing from values take their
// default; unknown names are rejected.
func (f *Formula) Evaluate(values map[string]float64) (float64, error) {
	args := make([]float64, len(f.Params))
	for i, p := range f.Params {
		args[i] = p.Default
	}

	// sorted so the reported unknown name is stable
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		i := f.index(name)
		if i < 0 {
			return 0, fmt.Errorf("unknown param: %s", name)
		}
		args[i] = values[name]
	}
	return f.eval(args)
}
