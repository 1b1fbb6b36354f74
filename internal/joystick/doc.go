// Package joystick implements the input-to-coordinate engine of an on-screen
// virtual joystick.
//
// A pointer (mouse or touch) drags a handle inside a circular bound. The
// engine turns raw pointer positions into two outputs:
//
//   - [Offset]: the handle displacement from the bound's centre, clamped to
//     the travel circle, used by renderers to place the handle
//   - [Coordinate]: the offset rescaled to the configured axis range and
//     quantised to a step, delivered through [Config.OnChange]
//
// # State machine
//
//	Idle --PointerDown--> Dragging
//	Dragging --PointerMove--> Dragging   (recompute, notify)
//	Dragging --PointerUp--> Idle         (recentre + notify if ReturnToCenter)
//
// Moves received while Idle are ignored.
//
// # Example
//
//	eng := joystick.New(joystick.Resolve(joystick.Overrides{
//		Step:     joystick.Float(10),
//		OnChange: func(c joystick.Coordinate) { fmt.Println(c) },
//	}))
//	box := joystick.Rect{Width: 120, Height: 120}
//	eng.PointerDown()
//	eng.PointerMove(joystick.Point{X: 110, Y: 60}, box)
//	eng.PointerUp()
//
// # Thread Safety
//
// Engine instances are NOT thread-safe. All events for one instance must be
// delivered from a single goroutine, in the order the host produced them.
// Separate instances share no state.
package joystick
