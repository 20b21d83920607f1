// Package sweep evaluates a catalog formula across a range of one parameter.
package sweep

import (
	"errors"
	"fmt"
	"math"

	"github.com/madpenguin8/Compulations/formula"
	"github.com/madpenguin8/Compulations/internal/catalog"
)

// Point is one evaluation in a sweep. Valid is false when the input fell
// outside the formula's domain.
type Point struct {
	X     float64
	Y     float64
	Valid bool
	Err   error
}

// Result holds the points of one sweep in order.
type Result struct {
	Formula string
	Param   string
	Unit    string
	Points  []Point
}

// Run evaluates f at steps evenly spaced values of param between min and
// max, with the remaining parameters taken from base. Domain errors mark the
// point invalid; any other error stops the sweep.
func Run(f *catalog.Formula, base map[string]float64, param string, min, max float64, steps int) (Result, error) {
	if !f.HasParam(param) {
		return Result{}, fmt.Errorf("unknown param: %s", param)
	}
	if steps <= 1 {
		steps = 2 // Prevent division by zero
	}

	values := make(map[string]float64, len(base)+1)
	for k, v := range base {
		values[k] = v
	}

	res := Result{
		Formula: f.Name,
		Param:   param,
		Unit:    f.Unit,
		Points:  make([]Point, 0, steps),
	}
	step := (max - min) / float64(steps-1)

	for i := 0; i < steps; i++ {
		x := min + float64(i)*step
		values[param] = x

		y, err := f.Evaluate(values)
		switch {
		case err == nil:
			res.Points = append(res.Points, Point{X: x, Y: y, Valid: true})
		case errors.Is(err, formula.ErrOutOfDomain):
			res.Points = append(res.Points, Point{X: x, Err: err})
		default:
			return Result{}, err
		}
	}
	return res, nil
}

// Values returns the Y of every valid point, in sweep order.
func (r Result) Values() []float64 {
	ys := make([]float64, 0, len(r.Points))
	for _, p := range r.Points {
		if p.Valid {
			ys = append(ys, p.Y)
		}
	}
	return ys
}

// Range returns the smallest and largest valid Y. ok is false when no point
// was valid.
func (r Result) Range() (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range r.Points {
		if !p.Valid {
			continue
		}
		ok = true
		lo = math.Min(lo, p.Y)
		hi = math.Max(hi, p.Y)
	}
	if !ok {
		return 0, 0, false
	}
	return lo, hi, true
}

// Invalid counts points outside the domain.
func (r Result) Invalid() int {
	n := 0
	for _, p := range r.Points {
		if !p.Valid {
			n++
		}
	}
	return n
}
