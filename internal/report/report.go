// Package report renders calculation results, sweeps and errors for the
// terminal, styled with lipgloss or as plain text.
package report

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"

	"github.com/madpenguin8/Compulations/formula"
	"github.com/madpenguin8/Compulations/internal/sweep"
)

const (
	plotHeight = 10
	plotWidth  = 70
)

// Row is one labeled value in a result table. Err replaces the value.
type Row struct {
	Label string
	Value float64
	Unit  string
	Err   error
}

// Renderer writes reports to Out. Plain disables all styling, for pipes and
// tests.
type Renderer struct {
	Plain bool
	Out   io.Writer
}

// New returns a Renderer writing to out.
func New(out io.Writer, plain bool) *Renderer {
	return &Renderer{Plain: plain, Out: out}
}

// FormatValue prints v with four decimals, switching to scientific notation
// for very large or very small magnitudes.
func FormatValue(v float64) string {
	a := math.Abs(v)
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return strconv.FormatFloat(v, 'f', -1, 64)
	case a != 0 && (a >= 1e9 || a < 1e-4):
		return strconv.FormatFloat(v, 'e', 4, 64)
	default:
		return strconv.FormatFloat(v, 'f', 4, 64)
	}
}

// Result renders rows as an aligned table under title.
func (r *Renderer) Result(title string, rows []Row) error {
	if len(rows) == 0 {
		return fmt.Errorf("%s: nothing to report", title)
	}
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		if row.Err != nil {
			fmt.Fprintf(w, "%s\t%s\t\n", oneLine(row.Label), r.errText(row.Err))
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", oneLine(row.Label), FormatValue(row.Value), oneLine(row.Unit))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	body := strings.TrimRight(b.String(), "\n")

	if r.Plain {
		_, err := fmt.Fprintf(r.Out, "%s\n%s\n", title, body)
		return err
	}

	// tabwriter pads on raw text, so style per line after alignment
	lines := strings.Split(body, "\n")
	for i := 0; i < len(lines) && i < len(rows); i++ {
		lines[i] = r.styleRow(lines[i], rows[i])
	}
	out := Title.Render(title) + "\n" + strings.Join(lines, "\n")
	_, err := fmt.Fprintln(r.Out, Panel.Render(out))
	return err
}

func (r *Renderer) styleRow(line string, row Row) string {
	if row.Err != nil {
		return line
	}
	v := FormatValue(row.Value)
	i := strings.Index(line, v)
	if i < 0 {
		return line
	}
	rest := line[i+len(v):]
	return Label.Render(line[:i]) + Value.Render(v) + Unit.Render(rest)
}

// oneLine keeps a table cell on one line and in one column.
func oneLine(s string) string {
	return strings.Join(strings.FieldsFunc(s, func(c rune) bool {
		return c == '\n' || c == '\r' || c == '\t'
	}), " ")
}

func (r *Renderer) errText(err error) string {
	msg := "error: " + oneLine(err.Error())
	if r.Plain {
		return msg
	}
	if errors.Is(err, formula.ErrOutOfDomain) {
		return DomainErr.Render(msg)
	}
	return Failure.Render(msg)
}

// Plot draws the valid points of a sweep with a min/max summary line.
func (r *Renderer) Plot(res sweep.Result, caption string) error {
	data := res.Values()
	lo, hi, ok := res.Range()
	if !ok {
		return fmt.Errorf("%s: no point of the sweep over %s is in domain", res.Formula, res.Param)
	}
	if caption == "" {
		caption = fmt.Sprintf("%s vs %s", res.Formula, res.Param)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	)

	summary := fmt.Sprintf("min %s  max %s %s", FormatValue(lo), FormatValue(hi), res.Unit)
	if n := res.Invalid(); n > 0 {
		summary += fmt.Sprintf("  (%d of %d points out of domain)", n, len(res.Points))
	}
	if !r.Plain {
		summary = Caption.Render(summary)
	}

	_, err := fmt.Fprintf(r.Out, "%s\n\n%s\n", graph, summary)
	return err
}

// Error writes err on one line, styled by kind.
func (r *Renderer) Error(err error) {
	fmt.Fprintln(r.Out, r.errText(err))
}
