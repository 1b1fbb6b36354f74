package joystick

import "log"

// Engine owns the drag state of one joystick instance.
type Engine struct {
	cfg    Config
	state  State
	offset Offset
	coord  Coordinate
	logger *log.Logger
}

func New(cfg Config) *Engine {
	return &Engine{
		cfg:   cfg,
		state: Idle,
	}
}

// SetLogger enables transition logging. A nil logger disables it.
func (e *Engine) SetLogger(l *log.Logger) {
	e.logger = l
}

func (e *Engine) Config() Config         { return e.cfg }
func (e *Engine) State() State           { return e.state }
func (e *Engine) Offset() Offset         { return e.offset }
func (e *Engine) Coordinate() Coordinate { return e.coord }

// PointerDown starts a drag. It always returns true: the host must suppress
// its default handling (scroll, selection) of the event.
func (e *Engine) PointerDown() bool {
	if e.state == Dragging {
		return true
	}
	e.transition(Dragging, "down")
	return true
}

// PointerMove recomputes the handle position while dragging and notifies
// the observer once. Moves while idle are ignored and return false.
func (e *Engine) PointerMove(p Point, box Rect) bool {
	if e.state != Dragging {
		return false
	}
	e.offset, e.coord = Compute(e.cfg, p, box)
	e.notify()
	return true
}

// PointerUp ends the drag. With ReturnToCenter the handle snaps back and the
// zero coordinate is emitted, even if it was already centred.
func (e *Engine) PointerUp() {
	e.release("up")
}

// Cancel forces the drag to end as if the pointer had been released.
func (e *Engine) Cancel() {
	e.release("cancel")
}

// Handle dispatches ev and reports whether the control consumed it.
func (e *Engine) Handle(ev Event, box Rect) bool {
	switch ev.Kind {
	case Down:
		return e.PointerDown()
	case Move:
		return e.PointerMove(ev.Pos, box)
	case Up:
		consumed := e.state == Dragging
		e.PointerUp()
		return consumed
	}
	return false
}

// HitHandle reports whether p falls on the handle disc, enlarged by slop.
func (e *Engine) HitHandle(p Point, box Rect, slop float64) bool {
	c := box.Center()
	dx := p.X - (c.X + e.offset.DX)
	dy := p.Y - (c.Y + e.offset.DY)
	r := e.cfg.HandleSize/2 + slop
	return dx*dx+dy*dy <= r*r
}

// HandleRect is the handle's bounding box in the host frame.
func (e *Engine) HandleRect(box Rect) Rect {
	c := box.Center()
	h := e.cfg.HandleSize
	return Rect{
		X:      c.X + e.offset.DX - h/2,
		Y:      c.Y + e.offset.DY - h/2,
		Width:  h,
		Height: h,
	}
}

// BoundRect is the travel circle's bounding box, centred in box.
func (e *Engine) BoundRect(box Rect) Rect {
	c := box.Center()
	b := e.cfg.BoundSize
	return Rect{X: c.X - b/2, Y: c.Y - b/2, Width: b, Height: b}
}

func (e *Engine) release(reason string) {
	if e.state != Dragging {
		return
	}
	e.transition(Idle, reason)
	if e.cfg.ReturnToCenter {
		e.offset, e.coord = Offset{}, Coordinate{}
		e.notify()
	}
}

func (e *Engine) transition(to State, reason string) {
	if e.logger != nil {
		e.logger.Printf("joystick: %s -> %s (%s)", e.state, to, reason)
	}
	e.state = to
}

func (e *Engine) notify() {
	if e.cfg.OnChange != nil {
		e.cfg.OnChange(e.coord)
	}
}
