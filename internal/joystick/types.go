package joystick

import "fmt"

// State is the drag state of an Engine.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Point is a position in the host's coordinate frame.
type Point struct {
	X, Y float64
}

// Rect is the on-screen bounding box of the control.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Offset is the handle displacement from the bound centre, in the same
// units as BoundSize and HandleSize.
type Offset struct {
	DX, DY float64
}

// Coordinate is the logical joystick output.
type Coordinate struct {
	X, Y float64
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%g, %g)", c.X, c.Y)
}

// EventKind enumerates pointer lifecycle events.
type EventKind int

const (
	Down EventKind = iota
	Move
	Up
)

func (k EventKind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseEventKind is the inverse of EventKind.String.
func ParseEventKind(s string) (EventKind, error) {
	switch s {
	case "down":
		return Down, nil
	case "move":
		return Move, nil
	case "up":
		return Up, nil
	}
	return 0, fmt.Errorf("joystick: unknown event kind %q", s)
}

func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *EventKind) UnmarshalText(b []byte) error {
	v, err := ParseEventKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Event is one pointer lifecycle event. Pos is ignored for Down and Up.
type Event struct {
	Kind EventKind
	Pos  Point
}
