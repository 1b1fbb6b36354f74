package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/vstick/internal/joystick"
)

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawJoystick()
	a.drawHUD()
	a.drawTelemetry()

	rl.EndDrawing()
}

func (a *App) drawJoystick() {
	container := a.toPixels(joystick.Point{})
	size := float32(a.box.Width) * a.zoom
	rl.DrawRectangleLines(int32(container.X), int32(container.Y), int32(size), int32(size), ColGrid)

	bound := a.eng.BoundRect(a.box)
	bc := a.toPixels(bound.Center())
	rl.DrawCircleV(bc, float32(bound.Width/2)*a.zoom, ColBound)

	handle := a.eng.HandleRect(a.box)
	col := ColHandle
	if a.eng.State() == joystick.Dragging {
		col = ColHandleHot
	}
	rl.DrawCircleV(a.toPixels(handle.Center()), float32(handle.Width/2)*a.zoom, col)
}

func (a *App) drawHUD() {
	c := a.eng.Coordinate()
	top := int32(windowW - margin + 10)
	rl.DrawText("vstick", margin, 10, 20, ColText)
	rl.DrawText(a.eng.State().String(), windowW-margin-80, 14, 14, ColTextDim)
	rl.DrawText(fmt.Sprintf("x %8.2f   y %8.2f", c.X, c.Y), margin, top, 20, ColText)
	rl.DrawText("[R] RELEASE  [ESC] QUIT", margin, windowH-24, 12, ColTextDim)
}

// drawTelemetry plots the recent x (accent) and y (grey) history.
func (a *App) drawTelemetry() {
	if len(a.history) < 2 {
		return
	}

	jc := a.eng.Config()
	lo, hi := jc.MinAxis, jc.MaxAxis
	if hi == lo {
		hi = lo + 1
	}

	const height = 60
	rectX := float32(margin)
	rectY := float32(windowW - margin + 40)
	width := float32(windowW - 2*margin)
	rl.DrawRectangleLines(int32(rectX), int32(rectY), int32(width), height, ColGrid)

	xs := make([]rl.Vector2, len(a.history))
	ys := make([]rl.Vector2, len(a.history))
	for i, c := range a.history {
		px := rectX + float32(i)/float32(len(a.history)-1)*width
		xs[i] = rl.NewVector2(px, rectY+height-float32((c.X-lo)/(hi-lo))*height)
		ys[i] = rl.NewVector2(px, rectY+height-float32((c.Y-lo)/(hi-lo))*height)
	}
	rl.DrawLineStrip(xs, ColHandleHot)
	rl.DrawLineStrip(ys, ColText)
}
