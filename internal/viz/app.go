package viz

import (
	"fmt"
	"log"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/vstick/internal/config"
	"github.com/san-kum/vstick/internal/joystick"
	"github.com/san-kum/vstick/internal/trace"
)

const (
	canvasTop  = 2 // title + blank line
	canvasLeft = 2
	historyLen = 120
	meterWidth = 21
)

// Model is the terminal joystick. The canvas is drawn at a fixed screen
// position so mouse cells map straight to host units.
type Model struct {
	cfg    *config.Config
	eng    *joystick.Engine
	rec    *trace.Recorder
	styles *Styles
	theme  int
	scale  float64
	box    joystick.Rect
	canvas *Canvas

	xs, ys  []float64
	changes int
	width   int
}

// NewModel builds the model. rec may be nil when the session is not recorded.
func NewModel(cfg *config.Config, rec *trace.Recorder, logger *log.Logger) *Model {
	scale := cfg.Display.Scale
	if scale <= 0 {
		scale = config.DefaultScale
	}
	size := cfg.BackgroundSize()

	m := &Model{
		cfg:    cfg,
		rec:    rec,
		theme:  themeIndex(cfg.Display.Theme),
		scale:  scale,
		box:    joystick.Rect{Width: size, Height: size},
		canvas: NewCanvas(int(math.Ceil(size/scale/2)), int(math.Ceil(size/scale/4))),
		width:  80,
	}
	m.styles = StylesFor(Themes[m.theme].Name)
	m.eng = joystick.New(cfg.Resolve(m.onChange))
	m.eng.SetLogger(logger)
	return m
}

func (m *Model) Engine() *joystick.Engine { return m.eng }

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.feed(joystick.Event{Kind: joystick.Up})
		case "c":
			m.xs, m.ys = nil, nil
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
			m.styles = StylesFor(Themes[m.theme].Name)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.MouseMsg:
		m.handleMouse(tea.MouseEvent(msg))
	}
	return m, nil
}

func (m *Model) handleMouse(ev tea.MouseEvent) {
	p := m.toUnits(ev.X, ev.Y)

	switch ev.Action {
	case tea.MouseActionPress:
		if ev.Button != tea.MouseButtonLeft || !m.eng.HitHandle(p, m.box, m.slop()) {
			return
		}
		m.feed(joystick.Event{Kind: joystick.Down, Pos: p})
	case tea.MouseActionMotion:
		m.feed(joystick.Event{Kind: joystick.Move, Pos: p})
	case tea.MouseActionRelease:
		m.feed(joystick.Event{Kind: joystick.Up, Pos: p})
	}
}

func (m *Model) feed(ev joystick.Event) {
	if m.eng.Handle(ev, m.box) && m.rec != nil {
		m.rec.Observe(ev)
	}
}

func (m *Model) onChange(c joystick.Coordinate) {
	m.changes++
	m.xs = appendCapped(m.xs, c.X)
	m.ys = appendCapped(m.ys, c.Y)
	if m.rec != nil {
		m.rec.OnChange(c)
	}
}

func appendCapped(s []float64, v float64) []float64 {
	s = append(s, v)
	if len(s) > historyLen {
		s = s[len(s)-historyLen:]
	}
	return s
}

// toUnits maps a terminal cell to the centre of its braille block in host
// units.
func (m *Model) toUnits(col, row int) joystick.Point {
	dotX := (col-canvasLeft)*2 + 1
	dotY := (row-canvasTop)*4 + 2
	return joystick.Point{X: float64(dotX) * m.scale, Y: float64(dotY) * m.scale}
}

// slop widens the handle by one cell so coarse terminal input can grab it.
func (m *Model) slop() float64 {
	return 2 * m.scale
}

func (m *Model) draw() {
	m.canvas.Clear()

	b := m.eng.BoundRect(m.box)
	bc := b.Center()
	m.canvas.Circle(bc.X/m.scale, bc.Y/m.scale, b.Width/2/m.scale, LayerBound)

	h := m.eng.HandleRect(m.box)
	hc := h.Center()
	m.canvas.Disc(hc.X/m.scale, hc.Y/m.scale, h.Width/2/m.scale, LayerHandle)
}

func (m *Model) View() string {
	m.draw()
	s := m.styles
	jc := m.eng.Config()
	coord := m.eng.Coordinate()

	var b strings.Builder

	state := m.eng.State().String()
	if m.rec != nil {
		state += " · rec"
	}
	b.WriteString(s.Title.Render("◎ vstick") + "  " + s.Status.Render(state) + "\n\n")

	handleStyle := s.Handle
	if m.eng.State() == joystick.Dragging {
		handleStyle = s.HandleActive
	}
	pad := strings.Repeat(" ", canvasLeft)
	art := m.canvas.Render(func(l Layer, txt string) string {
		switch l {
		case LayerBound:
			return s.Bound.Render(txt)
		case LayerHandle:
			return handleStyle.Render(txt)
		}
		return txt
	})
	for _, line := range strings.Split(strings.TrimSuffix(art, "\n"), "\n") {
		b.WriteString(pad + line + "\n")
	}

	off := m.eng.Offset()
	stats := []string{
		s.Label.Render("x") + s.Value.Render(fmt.Sprintf("%8.2f ", coord.X)) + Meter(coord.X, jc.MinAxis, jc.MaxAxis, meterWidth),
		s.Label.Render("y") + s.Value.Render(fmt.Sprintf("%8.2f ", coord.Y)) + Meter(coord.Y, jc.MinAxis, jc.MaxAxis, meterWidth),
		s.Label.Render("offset") + s.Value.Render(fmt.Sprintf("%6.1f, %6.1f", off.DX, off.DY)),
		s.Label.Render("updates") + s.Value.Render(fmt.Sprintf("%d", m.changes)),
		s.Label.Render("theme") + s.Value.Render(s.Theme.Name),
	}
	panel := s.Panel.Render(strings.Join(stats, "\n"))

	if len(m.xs) > 1 && m.width >= 90 {
		lo, hi := jc.MinAxis, jc.MaxAxis
		if lo > hi {
			lo, hi = hi, lo
		}
		graph := asciigraph.PlotMany([][]float64{m.xs, m.ys},
			asciigraph.Height(6),
			asciigraph.Width(40),
			asciigraph.LowerBound(lo),
			asciigraph.UpperBound(hi),
			asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
			asciigraph.Caption("x red · y blue"),
		)
		panel = lipgloss.JoinHorizontal(lipgloss.Top, panel, "  ", graph)
	}
	b.WriteString("\n" + panel + "\n")

	b.WriteString(s.KeyHint.Render("drag the handle · r release · c clear · t theme · q quit"))
	return b.String()
}

// Run starts the terminal joystick and returns the final model once the
// user quits.
func Run(cfg *config.Config, rec *trace.Recorder, logger *log.Logger) (*Model, error) {
	p := tea.NewProgram(NewModel(cfg, rec, logger), tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	return final.(*Model), nil
}
