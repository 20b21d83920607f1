package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/madpenguin8/Compulations/formula"
	"github.com/madpenguin8/Compulations/internal/sweep"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0000"},
		{14.696, "14.6960"},
		{-459.67, "-459.6700"},
		{1.5e12, "1.5000e+12"},
		{0.0000012, "1.2000e-06"},
	}

	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%g) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestResultPlain(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, true)

	err := r.Result("velocity_in_pipe_fps", []Row{
		{Label: "flow_rate_cfm", Value: 100, Unit: "cfm"},
		{Label: "pipe_diameter_in", Value: 1.049, Unit: "in"},
		{Label: "result", Value: 35.59, Unit: "ft/s"},
	})
	if err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected title and 3 rows, got %q", out)
	}
	if lines[0] != "velocity_in_pipe_fps" {
		t.Errorf("unexpected title %q", lines[0])
	}
	if !strings.Contains(lines[3], "35.5900") || !strings.Contains(lines[3], "ft/s") {
		t.Errorf("unexpected result row %q", lines[3])
	}
	// values share a column
	if strings.Index(lines[1], "100.0000") != strings.Index(lines[2], "1.0490") {
		t.Errorf("values not aligned:\n%s", out)
	}
}

func TestResultStyled(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)

	if err := r.Result("gear", []Row{{Label: "result", Value: 5654.8668, Unit: "ft/min"}}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "5654.8668") {
		t.Errorf("expected value in styled output, got %q", buf.String())
	}
}

func TestResultErrorRow(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, true)

	_, derr := formula.MotorPowerKW(-460, 100, 0.85)
	r.Result("sheet", []Row{{Label: "motor", Err: derr}})

	if !strings.Contains(buf.String(), "error: formula: MotorPowerKW: volts=-460 out of domain") {
		t.Errorf("expected domain error in row, got %q", buf.String())
	}
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, true).Error(errors.New("unknown formula: flux"))

	if got := strings.TrimSpace(buf.String()); got != "error: unknown formula: flux" {
		t.Errorf("unexpected error output %q", got)
	}
}

func TestPlot(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, true)

	res := sweep.Result{
		Formula: "gear_speed_fpm",
		Param:   "rpm",
		Unit:    "ft/min",
		Points: []sweep.Point{
			{X: 0, Y: 0, Valid: true},
			{X: 1, Valid: false},
			{X: 2, Y: 10, Valid: true},
			{X: 3, Y: 20, Valid: true},
		},
	}
	if err := r.Plot(res, ""); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "gear_speed_fpm vs rpm") {
		t.Errorf("expected default caption, got %q", out)
	}
	if !strings.Contains(out, "min 0.0000  max 20.0000 ft/min") {
		t.Errorf("expected summary, got %q", out)
	}
	if !strings.Contains(out, "(1 of 4 points out of domain)") {
		t.Errorf("expected invalid count, got %q", out)
	}
}

func TestPlotNothingValid(t *testing.T) {
	var buf bytes.Buffer
	res := sweep.Result{Formula: "motor_power_kw", Param: "volts", Points: []sweep.Point{{X: -1}}}

	if err := New(&buf, true).Plot(res, ""); err == nil {
		t.Error("expected error when no point is valid")
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestResultMultilineLabel(t *testing.T) {
	rows := []Row{
		{Label: "main\nheader\n", Value: 35.59, Unit: "ft/s"},
		{Label: "tab\tlabel", Value: 1, Unit: "in"},
	}

	for _, plain := range []bool{true, false} {
		var buf bytes.Buffer
		if err := New(&buf, plain).Result("sheet", rows); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		if !strings.Contains(out, "main header") || !strings.Contains(out, "tab label") {
			t.Errorf("plain=%v: labels should be folded onto one line, got %q", plain, out)
		}
	}

	var buf bytes.Buffer
	New(&buf, true).Result("sheet", rows)
	if lines := strings.Split(strings.TrimSpace(buf.String()), "\n"); len(lines) != 3 {
		t.Errorf("expected title and 2 rows, got %q", buf.String())
	}
}
