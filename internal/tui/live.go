// Package tui provides a live terminal view of a running control loop.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/rickhull/pid-controller-ng/internal/viz"
	"github.com/rickhull/pid-controller-ng/pid"
)

const historyCapacity = 600

// stepsPerFrame keeps slow simulated timesteps from making the view
// crawl: each frame advances several loop ticks.
const stepsPerFrame = 4

type TickMsg time.Time

var gainKeys = []string{"kp", "ki", "kd"}

// Model steps a PID controller against a plant on a frame tick and
// renders the measurement history with the live term breakdown.
type Model struct {
	controller *pid.PIDController
	plant      pid.Updatable
	plantName  string

	t       float64
	measure float64
	history []float64
	running bool

	selected int
	fps      int
}

func NewModel(controller *pid.PIDController, plant pid.Updatable, plantName string, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{
		controller: controller,
		plant:      plant,
		plantName:  plantName,
		measure:    plant.Output(),
		history:    make([]float64, 0, historyCapacity),
		running:    true,
		fps:        fps,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "tab":
			m.selected = (m.selected + 1) % len(gainKeys)
		case "up", "k":
			m.adjustGain(1.05)
		case "down", "j":
			m.adjustGain(0.95)
		}
	case TickMsg:
		if m.running {
			for i := 0; i < stepsPerFrame; i++ {
				m.step()
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	out := m.controller.Update(m.measure)
	m.measure = m.plant.Update(out)
	m.t += m.controller.Dt()

	m.history = append(m.history, m.measure)
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

func (m *Model) adjustGain(factor float64) {
	switch gainKeys[m.selected] {
	case "kp":
		m.controller.Kp *= factor
	case "ki":
		m.controller.Ki *= factor
	case "kd":
		m.controller.Kd *= factor
	}
}

func (m Model) View() string {
	var b strings.Builder

	status := "running"
	if !m.running {
		status = "paused"
	}
	b.WriteString(viz.HeaderStyle.Render(
		fmt.Sprintf("pidlab live: %s (%s)", m.plantName, status)))
	b.WriteString("\n")

	graph := "waiting for samples..."
	if len(m.history) > 1 {
		graph = asciigraph.Plot(m.history,
			asciigraph.Height(12),
			asciigraph.Width(70),
			asciigraph.Caption("measure"),
		)
	}
	b.WriteString(viz.GraphStyle.Render(graph))
	b.WriteString("\n")

	stats := []string{
		row("t", fmt.Sprintf("%.2fs", m.t), false),
		row("setpoint", fmt.Sprintf("%.3f", m.controller.Setpoint), false),
		row("measure", fmt.Sprintf("%.3f", m.measure), false),
		row("error", fmt.Sprintf("%.3f", m.controller.Err()), false),
		row("kp", fmt.Sprintf("%.4f", m.controller.Kp), m.selected == 0),
		row("ki", fmt.Sprintf("%.4f", m.controller.Ki), m.selected == 1),
		row("kd", fmt.Sprintf("%.4f", m.controller.Kd), m.selected == 2),
		row("P", fmt.Sprintf("%.4f", m.controller.Proportion()), false),
		row("I", fmt.Sprintf("%.4f", m.controller.Integral()), false),
		row("D", fmt.Sprintf("%.4f", m.controller.Derivative()), false),
		row("output", fmt.Sprintf("%.4f", m.controller.Output()), false),
	}
	b.WriteString(viz.StatsStyle.Render(lipgloss.JoinVertical(lipgloss.Left, stats...)))
	b.WriteString("\n")

	b.WriteString(viz.HelpStyle.Render(
		"space pause · tab select gain · up/down adjust · q quit"))
	return b.String()
}

func row(label, value string, active bool) string {
	style := viz.ValueStyle
	if active {
		style = viz.ActiveStyle
	}
	return viz.LabelStyle.Render(label) + style.Render(value)
}

// Run blocks until the user quits the live view.
func Run(controller *pid.PIDController, plant pid.Updatable, plantName string, fps int) error {
	p := tea.NewProgram(NewModel(controller, plant, plantName, fps))
	_, err := p.Run()
	return err
}
