// Package tui renders a live terminal view of a running simulation:
// craft flight data, an altitude graph, and the engineering alarm
// panel.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/orbitsim/internal/ode"
	"github.com/san-kum/orbitsim/internal/physics"
)

const historyCapacity = 600

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	alarmOn     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	alarmOff    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model steps the simulation on every tick and renders the freshly
// rewrapped container.
type Model struct {
	sys   ode.System
	integ ode.Integrator
	state *physics.State
	t     float64
	dt    float64

	running  bool
	altitude []float64
}

func NewModel(sys ode.System, integ ode.Integrator, state *physics.State, dt float64) Model {
	return Model{
		sys:      sys,
		integ:    integ,
		state:    state,
		t:        state.Timestamp(),
		dt:       dt,
		running:  true,
		altitude: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "+":
			m.state.SetTimeAcc(m.state.TimeAcc() * 10)
		case "-":
			if acc := m.state.TimeAcc() / 10; acc >= 1 {
				m.state.SetTimeAcc(acc)
			}
		}
		return m, nil
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) step() {
	dt := m.dt * m.state.TimeAcc()
	y := m.integ.Step(m.sys, m.state.Vector(), m.t, dt)
	m.state = m.state.Rewrap(y)
	m.t += dt
	m.state.SetTimestamp(m.t)

	if alt, ok := m.craftAltitude(); ok {
		m.altitude = append(m.altitude, alt)
		if len(m.altitude) > historyCapacity {
			m.altitude = m.altitude[1:]
		}
	}
}

// craftAltitude is the craft's distance to the reference body's
// surface, when both exist.
func (m *Model) craftAltitude() (float64, bool) {
	craft, err := m.state.CraftEntity()
	if err != nil {
		return 0, false
	}
	ref, err := m.state.ReferenceEntity()
	if err != nil {
		return 0, false
	}
	cx, cy := craft.Pos()
	rx, ry := ref.Pos()
	return math.Hypot(cx-rx, cy-ry) - ref.Radius(), true
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("orbitsim live"))
	b.WriteString("\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.flightPanel(), statsStyle.Render(m.alarmPanel())))

	if len(m.altitude) >= 2 {
		graph := asciigraph.Plot(m.altitude,
			asciigraph.Height(8), asciigraph.Width(60),
			asciigraph.Caption("altitude (m)"))
		b.WriteString(graphStyle.Render(graph))
	}

	b.WriteString(helpStyle.Render("space pause · +/- time acc · q quit"))
	return b.String()
}

func (m Model) flightPanel() string {
	var b strings.Builder
	craft, err := m.state.CraftEntity()
	if err != nil {
		b.WriteString(valueStyle.Render("no craft in entity set"))
		return statsStyle.Render(b.String())
	}

	vx, vy := craft.Vel()
	rows := []struct {
		label string
		value string
	}{
		{"craft", craft.Name()},
		{"t", fmt.Sprintf("%.0f s", m.t)},
		{"time acc", fmt.Sprintf("%.0fx", m.state.TimeAcc())},
		{"speed", fmt.Sprintf("%.1f m/s", math.Hypot(vx, vy))},
		{"heading", fmt.Sprintf("%.3f rad", craft.Heading())},
		{"spin", fmt.Sprintf("%.4f rad/s", craft.Spin())},
		{"fuel", fmt.Sprintf("%.0f kg", craft.Fuel())},
		{"throttle", fmt.Sprintf("%.0f%%", craft.Throttle()*100)},
		{"landed on", craft.LandedOn()},
	}
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString(valueStyle.Render(row.value))
		b.WriteString("\n")
	}
	return statsStyle.Render(b.String())
}

func (m Model) alarmPanel() string {
	eng := m.state.Engineering()
	var b strings.Builder
	b.WriteString(headerStyle.Render("engineering"))
	b.WriteString("\n")

	alarms := []struct {
		label string
		on    bool
	}{
		{"MASTER", eng.MasterAlarm()},
		{"RADIATION", eng.RadiationAlarm()},
		{"ASTEROID", eng.AsteroidAlarm()},
		{"HAB REACTOR", eng.HabReactorAlarm()},
		{"AYSE REACTOR", eng.AyseReactorAlarm()},
	}
	for _, a := range alarms {
		style := alarmOff
		if a.on {
			style = alarmOn
		}
		b.WriteString(style.Render(a.label))
		b.WriteString("\n")
	}
	return b.String()
}

// Run blocks until the user quits the live view.
func Run(sys ode.System, integ ode.Integrator, state *physics.State, dt float64) error {
	program := tea.NewProgram(NewModel(sys, integ, state, dt))
	_, err := program.Run()
	return err
}
