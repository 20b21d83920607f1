package tui

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/madpenguin8/Compulations/formula"
	"github.com/madpenguin8/Compulations/internal/catalog"
	"github.com/madpenguin8/Compulations/internal/config"
	"github.com/madpenguin8/Compulations/internal/report"
	"github.com/madpenguin8/Compulations/internal/sweep"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

const (
	nudge       = 0.01
	zeroNudge   = 0.1
	sparkPoints = 24
)

type state int

const (
	stateMenu state = iota
	stateConfig
)

type model struct {
	state    state
	cursor   int
	reg      *catalog.Registry
	formulas []*catalog.Formula
	selected *catalog.Formula

	params      map[string]float64
	paramCursor int
	editing     bool
	editBuf     string

	// index into presets, -1 for formula defaults
	site    int
	presets []string

	result float64
	err    error
	spark  []float64

	width  int
	height int
}

func NewInteractiveApp() *model {
	reg := catalog.New()
	return &model{
		state:    stateMenu,
		reg:      reg,
		formulas: reg.Formulas(),
		site:     -1,
		presets:  config.ListPresets(),
		width:    80,
		height:   24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateConfig:
		return m.configKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.formulas)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.selected = m.formulas[m.cursor]
		m.state = stateConfig
		m.paramCursor = 0
		m.editing = false
		m.loadParams()
	}
	return m, nil
}

func (m model) configKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			if val, err := strconv.ParseFloat(m.editBuf, 64); err == nil {
				m.params[m.paramName()] = val
				m.recompute()
			}
			m.editing = false
			m.editBuf = ""
		case "esc":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		case "ctrl+c":
			return m, tea.Quit
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == 'e' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "q", "esc":
		m.state = stateMenu
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
			m.recompute()
		}
	case "down", "j":
		if m.paramCursor < len(m.selected.Params)-1 {
			m.paramCursor++
			m.recompute()
		}
	case "enter", " ":
		m.editing = true
		m.editBuf = strconv.FormatFloat(m.params[m.paramName()], 'f', -1, 64)
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case "s":
		m.site++
		if m.site >= len(m.presets) {
			m.site = -1
		}
		m.loadParams()
	case "r":
		m.loadParams()
	}
	return m, nil
}

func (m model) paramName() string {
	return m.selected.Params[m.paramCursor].Name
}

// adjust nudges the selected parameter by a percent of its magnitude.
func (m *model) adjust(dir float64) {
	name := m.paramName()
	v := m.params[name]
	step := math.Abs(v) * nudge
	if v == 0 {
		step = zeroNudge
	}
	m.params[name] = v + dir*step
	m.recompute()
}

func (m model) siteName() string {
	if m.site < 0 {
		return "defaults"
	}
	return m.presets[m.site]
}

// loadParams resets the editor to the formula defaults, overlaid with the
// chosen site preset.
func (m *model) loadParams() {
	m.params = m.selected.Defaults()
	if m.site >= 0 {
		site := config.GetPreset(m.presets[m.site])
		if values, err := site.Values(); err == nil {
			for k, v := range values {
				if m.selected.HasParam(k) {
					m.params[k] = v
				}
			}
		}
	}
	m.recompute()
}

func (m *model) recompute() {
	m.result, m.err = m.selected.Evaluate(m.params)
	m.spark = nil

	// trend of the result across half to one and a half of the selected value
	v := m.params[m.paramName()]
	lo, hi := v*0.5, v*1.5
	if v == 0 {
		lo, hi = -1, 1
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if res, err := sweep.Run(m.selected, m.params, m.paramName(), lo, hi, sparkPoints); err == nil {
		m.spark = res.Values()
	}
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateConfig:
		return m.viewConfig()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("          " + cyan.Render("c o m p u l a t i o n s") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	// keep the cursor on screen
	rows := m.height - 10
	if rows < 5 {
		rows = 5
	}
	first := 0
	if m.cursor >= rows {
		first = m.cursor - rows + 1
	}

	for i := first; i < len(m.formulas) && i < first+rows; i++ {
		f := m.formulas[i]
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-36s", f.Name)) + dim.Render(f.Doc) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-36s", f.Name)) + dimmer.Render(f.Doc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter open   q quit") + "\n")

	return b.String()
}

func (m model) viewConfig() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render(m.selected.Name) + "  " + dim.Render(m.selected.Doc) + "\n")
	b.WriteString("      " + dimmer.Render("site ") + yellow.Render(m.siteName()) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 44)) + "\n\n")

	for i, p := range m.selected.Params {
		val := fmt.Sprintf("%12s", report.FormatValue(m.params[p.Name]))
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%12s", m.editBuf+"▋")
		}
		unit := " " + p.Unit
		if i == m.paramCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-28s", p.Name)) + magenta.Render(val) + dim.Render(unit) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-28s", p.Name)) + dim.Render(val) + dimmer.Render(unit) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString("      " + m.viewResult() + "\n")
	if len(m.spark) > 1 {
		b.WriteString("      " + dim.Render(fmt.Sprintf("%-28s", "vs "+m.paramName())) + "  " + cyan.Render(sparkline(m.spark)) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  ←→ adjust  enter edit  s site  r reset  esc back") + "\n")

	return b.String()
}

func (m model) viewResult() string {
	if m.err != nil {
		if errors.Is(m.err, formula.ErrOutOfDomain) {
			return yellow.Render("out of domain: " + m.err.Error())
		}
		return red.Render(m.err.Error())
	}
	return dim.Render(fmt.Sprintf("%-30s", "result")) + green.Render(fmt.Sprintf("%12s", report.FormatValue(m.result))) + dim.Render(" "+m.selected.Unit)
}

func sparkline(data []float64) string {
	if len(data) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rang := maxVal - minVal
	if rang == 0 {
		rang = 1
	}
	var sb strings.Builder
	for _, v := range data {
		idx := int((v - minVal) / rang * 7)
		if idx > 7 {
			idx = 7
		}
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}

// RunInteractive runs the calculator full screen until the user quits.
func RunInteractive() error {
	p := tea.NewProgram(NewInteractiveApp(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
