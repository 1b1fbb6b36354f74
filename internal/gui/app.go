package gui

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/vstick/internal/config"
	"github.com/san-kum/vstick/internal/joystick"
	"github.com/san-kum/vstick/internal/trace"
)

// Theme Colors (Monochrome Hyper-Minimalist)
var (
	ColBg        = rl.NewColor(10, 10, 10, 255)
	ColBound     = rl.NewColor(224, 224, 224, 255) // classic light grey disc
	ColHandle    = rl.NewColor(68, 68, 68, 255)
	ColHandleHot = rl.NewColor(30, 136, 229, 255)
	ColText      = rl.NewColor(140, 140, 140, 255)
	ColTextDim   = rl.NewColor(60, 60, 60, 255)
	ColGrid      = rl.NewColor(30, 30, 30, 255)
)

const (
	windowW   = 520
	windowH   = 640
	margin    = 40
	telemetry = 240
)

// input is one frame of pointer state in window pixels.
type input struct {
	pos      rl.Vector2
	pressed  bool
	released bool
}

type App struct {
	cfg     *config.Config
	eng     *joystick.Engine
	rec     *trace.Recorder
	box     joystick.Rect
	zoom    float32 // pixels per unit
	lastPos rl.Vector2
	history []joystick.Coordinate
}

// NewApp does not touch the window, so it can be built in tests.
func NewApp(cfg *config.Config, rec *trace.Recorder, logger *log.Logger) *App {
	size := cfg.BackgroundSize()
	a := &App{
		cfg:  cfg,
		rec:  rec,
		box:  joystick.Rect{Width: size, Height: size},
		zoom: float32(windowW-2*margin) / float32(size),
	}
	a.eng = joystick.New(cfg.Resolve(a.onChange))
	a.eng.SetLogger(logger)
	return a
}

func (a *App) Engine() *joystick.Engine { return a.eng }

func (a *App) onChange(c joystick.Coordinate) {
	a.history = append(a.history, c)
	if len(a.history) > telemetry {
		a.history = a.history[len(a.history)-telemetry:]
	}
	if a.rec != nil {
		a.rec.OnChange(c)
	}
}

// toUnits maps window pixels to host units; the container sits at the
// top-left margin.
func (a *App) toUnits(v rl.Vector2) joystick.Point {
	return joystick.Point{
		X: float64((v.X - margin) / a.zoom),
		Y: float64((v.Y - margin) / a.zoom),
	}
}

func (a *App) toPixels(p joystick.Point) rl.Vector2 {
	return rl.NewVector2(margin+float32(p.X)*a.zoom, margin+float32(p.Y)*a.zoom)
}

func (a *App) feed(ev joystick.Event) {
	if a.eng.Handle(ev, a.box) && a.rec != nil {
		a.rec.Observe(ev)
	}
}

// step applies one frame of input: press on the handle starts a drag, later
// motion while dragging moves it, release ends it.
func (a *App) step(in input) {
	p := a.toUnits(in.pos)

	if in.pressed && a.box.Contains(p) && a.eng.HitHandle(p, a.box, 0) {
		a.feed(joystick.Event{Kind: joystick.Down, Pos: p})
	} else if a.eng.State() == joystick.Dragging && in.pos != a.lastPos {
		a.feed(joystick.Event{Kind: joystick.Move, Pos: p})
	}
	if in.released {
		a.feed(joystick.Event{Kind: joystick.Up, Pos: p})
	}
	a.lastPos = in.pos
}

// release ends a drag from the keyboard. It goes through feed as an Up so
// a recorded session replays the same way.
func (a *App) release() {
	a.feed(joystick.Event{Kind: joystick.Up})
}

// poll reads the first touch point when present, the mouse otherwise.
// raylib reports a touch start/end as a left button press/release.
func poll() input {
	pos := rl.GetMousePosition()
	if rl.GetTouchPointCount() > 0 {
		pos = rl.GetTouchPosition(0)
	}
	return input{
		pos:      pos,
		pressed:  rl.IsMouseButtonPressed(rl.MouseLeftButton),
		released: rl.IsMouseButtonReleased(rl.MouseLeftButton),
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyR) {
		a.release()
	}
	a.step(poll())
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, rec *trace.Recorder, logger *log.Logger) *App {
	rl.InitWindow(windowW, windowH, "vstick")
	rl.SetTargetFPS(60)
	defer rl.CloseWindow()

	app := NewApp(cfg, rec, logger)
	for !rl.WindowShouldClose() {
		app.Update()
		app.Draw()
	}
	return app
}
