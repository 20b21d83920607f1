// Package export writes sweep results as JSON or CSV for use outside the
// terminal.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/madpenguin8/Compulations/internal/sweep"
)

// SweepData is the JSON form of a sweep.
type SweepData struct {
	Formula string      `json:"formula"`
	Param   string      `json:"param"`
	Unit    string      `json:"unit"`
	Steps   int         `json:"steps"`
	Points  []PointData `json:"points"`
}

// PointData leaves Y null for points outside the formula's domain.
type PointData struct {
	X     float64  `json:"x"`
	Y     *float64 `json:"y"`
	Error string   `json:"error,omitempty"`
}

// NewSweepData converts res for encoding.
func NewSweepData(res sweep.Result) SweepData {
	data := SweepData{
		Formula: res.Formula,
		Param:   res.Param,
		Unit:    res.Unit,
		Steps:   len(res.Points),
		Points:  make([]PointData, len(res.Points)),
	}
	for i, p := range res.Points {
		data.Points[i].X = p.X
		if p.Valid {
			y := p.Y
			data.Points[i].Y = &y
		} else if p.Err != nil {
			data.Points[i].Error = p.Err.Error()
		}
	}
	return data
}

// JSON writes res as indented JSON.
func JSON(w io.Writer, res sweep.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewSweepData(res))
}

// CSV writes one row per point: the swept value, then the result, empty
// when out of domain.
func CSV(w io.Writer, res sweep.Result) error {
	cw := csv.NewWriter(w)
	header := []string{res.Param, res.Formula}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, p := range res.Points {
		y := ""
		if p.Valid {
			y = strconv.FormatFloat(p.Y, 'g', -1, 64)
		}
		if err := cw.Write([]string{strconv.FormatFloat(p.X, 'g', -1, 64), y}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Write dispatches on format, which is json or csv.
func Write(w io.Writer, format string, res sweep.Result) error {
	switch format {
	case "json":
		return JSON(w, res)
	case "csv":
		return CSV(w, res)
	}
	return fmt.Errorf("unknown format: %s", format)
}
