package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/vstick/internal/config"
	"github.com/san-kum/vstick/internal/joystick"
	"github.com/san-kum/vstick/internal/trace"
)

// handleCell is the terminal cell over the centred handle with the default
// 120 unit container and scale 2: centre (60, 60) units = dot (30, 30).
const (
	handleCol = canvasLeft + 15
	handleRow = canvasTop + 7
)

func mouse(x, y int, action tea.MouseAction) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestModelDrag(t *testing.T) {
	rec := trace.NewRecorder()
	m := NewModel(config.DefaultConfig(), rec, nil)

	m.Update(mouse(handleCol, handleRow, tea.MouseActionPress))
	if m.Engine().State() != joystick.Dragging {
		t.Fatalf("press on handle should start a drag, got %s", m.Engine().State())
	}

	m.Update(mouse(handleCol+25, handleRow, tea.MouseActionMotion))
	if got := m.Engine().Coordinate(); got.X != 100 || got.Y != 0 {
		t.Errorf("expected (100, 0), got %v", got)
	}

	m.Update(mouse(handleCol+25, handleRow, tea.MouseActionRelease))
	if m.Engine().State() != joystick.Idle {
		t.Error("release should end the drag")
	}
	if m.Engine().Coordinate() != (joystick.Coordinate{}) {
		t.Errorf("expected recentred, got %v", m.Engine().Coordinate())
	}

	if len(rec.Events()) != 3 {
		t.Errorf("expected 3 recorded events, got %d", len(rec.Events()))
	}
	if len(rec.Samples()) != 2 {
		t.Errorf("expected 2 recorded samples, got %d", len(rec.Samples()))
	}
}

func TestModelPressOutsideHandle(t *testing.T) {
	m := NewModel(config.DefaultConfig(), nil, nil)

	m.Update(mouse(handleCol+10, handleRow, tea.MouseActionPress))
	if m.Engine().State() != joystick.Idle {
		t.Error("press away from the handle should not start a drag")
	}

	m.Update(mouse(handleCol+10, handleRow, tea.MouseActionMotion))
	if m.changes != 0 {
		t.Errorf("moves while idle should not notify, got %d", m.changes)
	}
}

func TestModelRightButtonIgnored(t *testing.T) {
	m := NewModel(config.DefaultConfig(), nil, nil)

	m.Update(tea.MouseMsg{X: handleCol, Y: handleRow, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if m.Engine().State() != joystick.Idle {
		t.Error("right button should not start a drag")
	}
}

func TestModelKeys(t *testing.T) {
	m := NewModel(config.DefaultConfig(), nil, nil)

	m.Update(mouse(handleCol, handleRow, tea.MouseActionPress))
	m.Update(mouse(handleCol+3, handleRow+1, tea.MouseActionMotion))
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if m.Engine().State() != joystick.Idle {
		t.Error("r should release the handle")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	if len(m.xs) != 0 || len(m.ys) != 0 {
		t.Error("c should clear history")
	}

	before := m.styles.Theme.Name
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	if m.styles.Theme.Name == before {
		t.Error("t should cycle the theme")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(config.DefaultConfig(), nil, nil)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	m.Update(mouse(handleCol, handleRow, tea.MouseActionPress))
	m.Update(mouse(handleCol+5, handleRow, tea.MouseActionMotion))
	m.Update(mouse(handleCol+8, handleRow, tea.MouseActionMotion))

	out := m.View()
	if !strings.Contains(out, "vstick") {
		t.Error("view should carry the title")
	}
	if !strings.Contains(out, "dragging") {
		t.Error("view should show the drag state")
	}
	if !strings.Contains(out, "x red") {
		t.Error("view should plot history on wide terminals")
	}
}

func TestStylesForInstallsOnce(t *testing.T) {
	a := StylesFor("neon")
	b := StylesFor("neon")
	if a != b {
		t.Error("styles should be installed once per theme")
	}
	if StylesFor("unknown").Theme.Name != "mono" {
		t.Error("unknown theme should fall back to mono")
	}
}

func TestCanvas(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(0, 0, LayerBound)
	c.Set(7, 7, LayerHandle)
	c.Set(100, 100, LayerHandle)
	c.Set(-1, 0, LayerHandle)

	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected dot 1 set, got %U", c.Grid[0][0])
	}
	if c.Grid[1][3] != 0x2880 {
		t.Errorf("expected dot 8 set, got %U", c.Grid[1][3])
	}
	if c.Layers[0][0] != LayerBound || c.Layers[1][3] != LayerHandle {
		t.Error("layers not tagged")
	}

	c.Clear()
	if c.Grid[0][0] != blank || c.Layers[0][0] != LayerNone {
		t.Error("clear should reset cells")
	}
}

func TestCanvasRenderGroupsLayers(t *testing.T) {
	c := NewCanvas(3, 1)
	c.Disc(4, 1, 1, LayerHandle)

	var runs []Layer
	c.Render(func(l Layer, s string) string {
		runs = append(runs, l)
		return s
	})
	if len(runs) != 2 || runs[0] != LayerNone || runs[1] != LayerHandle {
		t.Errorf("unexpected runs %v", runs)
	}
	if lines := strings.Split(c.String(), "\n"); len([]rune(lines[0])) != 3 {
		t.Errorf("expected 3 cells, got %q", lines[0])
	}
}

func TestMeter(t *testing.T) {
	if got := Meter(0, -100, 100, 5); got != "░░│░░" {
		t.Errorf("unexpected centred meter %q", got)
	}
	if got := Meter(100, -100, 100, 5); got != "░░███" {
		t.Errorf("unexpected full meter %q", got)
	}
	if got := Meter(-100, -100, 100, 5); got != "███░░" {
		t.Errorf("unexpected negative meter %q", got)
	}
}
