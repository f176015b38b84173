package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/suvat/internal/motion"
	"github.com/san-kum/suvat/internal/quantity"
	"github.com/san-kum/suvat/internal/vector"
)

const (
	width    = 60
	height   = 12
	maxRate  = 64
	tickRate = time.Second / 60
	// speed chart shows at most this many trailing samples
	chartWindow = 300
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model replays the samples of one run, advancing rate samples per tick.
type Model struct {
	title      string
	samples    []motion.Sample
	accel      quantity.Acceleration
	frame      int
	rate       int
	running    bool
	theme      Theme
	canvas     *Canvas
	minS, maxS float64
}

func NewModel(res *motion.Result) Model {
	m := Model{
		title:   res.Profile.Name,
		samples: res.Samples,
		accel:   res.Profile.Accel,
		rate:    1,
		running: len(res.Samples) > 1,
		theme:   Themes[0],
		canvas:  NewCanvas(width, height),
	}
	if m.title == "" {
		m.title = "replay"
	}

	for _, s := range res.Samples {
		m.minS = math.Min(m.minS, s.S.Value())
		m.maxS = math.Max(m.maxS, s.S.Value())
	}
	if m.maxS == m.minS {
		m.maxS = m.minS + 1
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "space":
			if m.finished() {
				m.frame = 0
			}
			m.running = !m.running
		case "r":
			m.frame = 0
			m.running = len(m.samples) > 1
		case "+", "=":
			m.rate = min(m.rate*2, maxRate)
		case "-", "_":
			m.rate = max(m.rate/2, 1)
		case "t":
			m.theme = m.theme.next()
		}
	case TickMsg:
		if m.running {
			m.frame += m.rate
			if m.frame >= len(m.samples)-1 {
				m.frame = max(len(m.samples)-1, 0)
				m.running = false
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) finished() bool {
	return len(m.samples) > 0 && m.frame >= len(m.samples)-1
}

// Current returns the sample on screen.
func (m Model) Current() motion.Sample {
	if len(m.samples) == 0 {
		return motion.Sample{}
	}
	return m.samples[m.frame]
}

// Position places the current sample on the track plane: x along the line
// of motion, y across it.
func (m Model) Position() vector.Distance2 {
	return vector.New2(m.Current().S, quantity.Zero[quantity.DistanceDim]())
}

func (m Model) Rate() int     { return m.rate }
func (m Model) Running() bool { return m.running }

func (m Model) status() string {
	switch {
	case m.running:
		return "RUNNING"
	case m.finished():
		return "FINISHED"
	default:
		return "PAUSED"
	}
}

// track maps a displacement to a dot column.
func (m Model) track(s float64) int {
	w, _ := m.canvas.Dots()
	margin := 4
	return margin + int((s-m.minS)/(m.maxS-m.minS)*float64(w-1-2*margin))
}

func (m Model) draw() {
	m.canvas.Clear()
	w, h := m.canvas.Dots()
	y := h / 2
	m.canvas.HLine(0, w-1, y+3)

	// origin tick
	x0 := m.track(0)
	for dy := 1; dy <= 5; dy++ {
		m.canvas.Set(x0, y+dy)
	}

	if len(m.samples) == 0 {
		return
	}
	for i := 0; i < m.frame; i += max(1, len(m.samples)/40) {
		m.canvas.Set(m.track(m.samples[i].S.Value()), y+1)
	}
	pos := m.Position()
	m.canvas.Block(m.track(pos.X().Value()), y-int(pos.Y().Value()), 1)
}

func (m Model) View() string {
	st := m.theme.styles()
	m.draw()
	canvasView := st.canvas.Render(m.canvas.String())

	cur := m.Current()
	var s strings.Builder
	s.WriteString(st.header.Render(strings.ToUpper(m.title)) + "\n")
	s.WriteString(st.status.Render(m.status()) + fmt.Sprintf("  ×%d\n\n", m.rate))

	if m.frame > 0 {
		lo := max(0, m.frame+1-chartWindow)
		speeds := make([]float64, 0, m.frame+1-lo)
		for _, sm := range m.samples[lo : m.frame+1] {
			speeds = append(speeds, sm.V.Value())
		}
		chart := asciigraph.Plot(speeds, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Speed (m/s)"))
		s.WriteString(st.graph.Render(chart) + "\n\n")
	}

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Time", fmt.Sprintf("%.2f %s", cur.T.Value(), cur.T.Unit()))
	row("Distance", fmt.Sprintf("%.2f %s", cur.S.Value(), cur.S.Unit()))
	row("Position", m.Position().String())
	row("Speed", fmt.Sprintf("%.2f %s", cur.V.Value(), cur.V.Unit()))
	row("Accel", fmt.Sprintf("%.2f %s", m.accel.Value(), m.accel.Unit()))
	row("Frame", fmt.Sprintf("%d/%d", m.frame+1, len(m.samples)))

	s.WriteString(st.help.Render("\n─────────────────────\nSP:Pause R:Restart Q:Quit\n+/-:Rate  T:Theme"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, st.stats.Render(s.String()))
}

// Run starts the replay and blocks until the user quits.
func Run(res *motion.Result) error {
	_, err := tea.NewProgram(NewModel(res), tea.WithAltScreen()).Run()
	return err
}
