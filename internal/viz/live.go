package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/sim"
)

const (
	frameInterval   = 16 * time.Millisecond
	panelWidth      = 44
	historyCapacity = 120
	minCols         = 20
	minRows         = 8
)

var (
	statsStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2).Width(panelWidth - 2)
	headerStyle      = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle       = lipgloss.NewStyle().Width(12)
	activeParamStyle = lipgloss.NewStyle().Bold(true)
	graphStyle       = lipgloss.NewStyle().Padding(1, 0)
	helpStyle        = lipgloss.NewStyle().MarginTop(1)
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// knob is one adjustable slider of the control panel.
type knob struct {
	name  string
	label string
	step  float64
	clamp func(float64) float64
}

var knobs = []knob{
	{sim.ParamGravity, "Gravity", 5, config.ClampGravity},
	{sim.ParamMaxVelocity, "Max Vel", 10, config.ClampMaxVelocity},
	{sim.ParamTimeScale, "Time", config.TimeScaleStep, config.ClampTimeScale},
	{sim.ParamRepulsion, "Repulsion", 1, config.ClampRepulsion},
}

// Model drives a world from the terminal. Left click spawns a particle,
// right click a gravity source.
type Model struct {
	world        *sim.World
	bounds       dynamo.Bounds
	canvas       *Canvas
	proj         Projection
	theme        int
	running      bool
	showHelp     bool
	selected     int
	particleSize int
	lastSource   int
	last         dynamo.StepStats
	history      []float64
}

func NewModel(w *sim.World, bounds dynamo.Bounds, particleSize int, theme string) Model {
	m := Model{
		world:        w,
		bounds:       bounds,
		running:      true,
		particleSize: config.ClampParticleSize(particleSize),
		lastSource:   w.SourceCount() - 1,
		history:      make([]float64, 0, historyCapacity),
	}
	for i, t := range Themes {
		if t.Name == theme {
			m.theme = i
		}
	}
	m.resize(80, 24)
	return m
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "s":
			if !m.running {
				m.step()
			}
		case "c":
			m.world.Clear()
			m.lastSource = -1
			m.history = m.history[:0]
		case "f":
			m.world.SetShowGravityField(!m.world.Params().ShowGravityField)
		case "r":
			m.world.SetEnableRepulsion(!m.world.Params().EnableRepulsion)
		case "p":
			m.world.ToggleSourcePolarity(m.lastSource)
		case "tab":
			m.selected = (m.selected + 1) % len(knobs)
		case "shift+tab":
			m.selected = (m.selected + len(knobs) - 1) % len(knobs)
		case "up", "k":
			m.adjustParam(1)
		case "down", "j":
			m.adjustParam(-1)
		case "+", "=":
			m.particleSize = config.ClampParticleSize(m.particleSize + 5)
		case "-", "_":
			m.particleSize = config.ClampParticleSize(m.particleSize - 5)
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.MouseMsg:
		m.click(msg)
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, tick()
	}
	return m, nil
}

// resize fits the canvas to the terminal, leaving room for the panel.
func (m *Model) resize(w, h int) {
	cols := max(w-panelWidth, minCols)
	rows := max(h-1, minRows)
	if m.canvas != nil && m.canvas.Width == cols && m.canvas.Height == rows {
		return
	}
	m.canvas = NewCanvas(cols, rows)
	m.proj = Projection{World: m.bounds, Cols: cols, Rows: rows}
}

func (m *Model) click(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress {
		return
	}
	if msg.X < 0 || msg.Y < 0 || msg.X >= m.proj.Cols || msg.Y >= m.proj.Rows {
		return
	}
	at := m.proj.FromCell(msg.X, msg.Y)
	switch msg.Button {
	case tea.MouseButtonLeft:
		m.world.SpawnParticle(at.X, at.Y, m.particleSize, 0, 0)
	case tea.MouseButtonRight:
		m.world.SpawnSource(at.X, at.Y, m.particleSize)
		m.lastSource = m.world.SourceCount() - 1
	}
}

func (m *Model) adjustParam(dir float64) {
	k := knobs[m.selected]
	val := m.world.GetParams()[k.name]
	_ = m.world.SetParam(k.name, k.clamp(val+dir*k.step))
}

func (m *Model) step() {
	m.last = m.world.Step(m.bounds.Width, m.bounds.Height)
	if len(m.history) == historyCapacity {
		copy(m.history, m.history[1:])
		m.history = m.history[:historyCapacity-1]
	}
	m.history = append(m.history, float64(m.last.Particles))
}

// draw renders the world into the canvas: field first, bodies on top.
func (m *Model) draw() {
	m.canvas.Clear()
	for _, a := range m.world.Field(m.bounds) {
		x0, y0 := m.proj.ToPixel(a.Origin)
		x1, y1 := m.proj.ToPixel(a.Tip)
		m.canvas.DrawLine(x0, y0, x1, y1, LayerField)
		lx, ly := m.proj.ToPixel(a.HeadLeft)
		rx, ry := m.proj.ToPixel(a.HeadRight)
		m.canvas.DrawLine(x1, y1, lx, ly, LayerField)
		m.canvas.DrawLine(x1, y1, rx, ry, LayerField)
	}

	snap := m.world.Snapshot()
	for _, p := range snap.Particles {
		half := float64(p.Size) / 2
		for _, pt := range p.Trail {
			x, y := m.proj.ToPixel(pt.Add(dynamo.Vec2{X: half, Y: half}))
			m.canvas.Set(x, y, LayerTrail)
		}
		x, y := m.proj.ToPixel(p.Center())
		m.canvas.DrawDisc(x, y, m.proj.Length(half), LayerParticle)
	}
	for _, s := range snap.Sources {
		x, y := m.proj.ToPixel(s.Pos())
		size := m.proj.Length(float64(s.Size))
		layer := LayerSource
		if s.Polarity == physics.Repulsive {
			layer = LayerRepulsive
		}
		m.canvas.FillRect(x, y, size, size, layer)
	}
}

func (m Model) View() string {
	theme := Themes[m.theme]
	m.draw()
	canvasView := m.canvas.Render(theme.layerStyles())

	text := lipgloss.NewStyle().Foreground(theme.Text)
	muted := lipgloss.NewStyle().Foreground(theme.Muted)
	label := labelStyle.Foreground(theme.Muted)

	params := m.world.Params()
	var s strings.Builder
	s.WriteString(headerStyle.Foreground(theme.Accent).Render("GRAVSIM") + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	if m.last.Skipped {
		status += " (no sources)"
	}
	s.WriteString(text.Render(status) + "\n\n")

	s.WriteString(label.Render("Particles") + text.Render(fmt.Sprintf("%d", m.world.ParticleCount())) + "\n")
	s.WriteString(label.Render("Sources") + text.Render(fmt.Sprintf("%d", m.world.SourceCount())) + "\n")
	s.WriteString(label.Render("Step") + text.Render(fmt.Sprintf("%d", m.world.Steps())) + "\n")
	s.WriteString(label.Render("Size") + text.Render(fmt.Sprintf("%d", m.particleSize)) + "\n")

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Particles"))
		s.WriteString(graphStyle.Foreground(theme.Field).Render(chart) + "\n")
	}

	s.WriteString("\nPARAMETERS\n")
	values := m.world.GetParams()
	for i, k := range knobs {
		line := fmt.Sprintf("%-10s %6.1f", k.label, values[k.name])
		if i == m.selected {
			s.WriteString(activeParamStyle.Foreground(theme.Accent).Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + muted.Render(line) + "\n")
		}
	}
	s.WriteString(fmt.Sprintf("  %-10s %6s\n", "Repulsion", onOff(params.EnableRepulsion)))
	s.WriteString(fmt.Sprintf("  %-10s %6s\n", "Field", onOff(params.ShowGravityField)))

	s.WriteString(helpStyle.Foreground(theme.Muted).Render("─────────────────────\nL-click:Particle R-click:Source\nSP:Pause C:Clear Q:Quit ?:Help"))
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume simulation  ║
║  S        - Single step when paused  ║
║  C        - Clear particles, sources ║
║  F        - Toggle gravity field     ║
║  R        - Toggle repulsion         ║
║  P        - Flip last source colour  ║
║  Tab      - Cycle parameters         ║
║  Up/K     - Increase parameter       ║
║  Down/J   - Decrease parameter       ║
║  +/-      - Particle size            ║
║  T        - Cycle themes             ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Run starts the live view on the alternate screen with mouse support.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
