package trace

import (
	"time"

	"github.com/san-kum/vstick/internal/joystick"
)

// Replay feeds events through a fresh engine in order and returns every
// coordinate it emitted, stamped with the time of the triggering event.
// An OnChange already set on cfg still receives each coordinate.
func Replay(cfg joystick.Config, box joystick.Rect, events []Event) []Sample {
	var (
		samples []Sample
		now     float64
	)

	next := cfg.OnChange
	cfg.OnChange = func(c joystick.Coordinate) {
		samples = append(samples, Sample{T: now, X: c.X, Y: c.Y})
		if next != nil {
			next(c)
		}
	}

	eng := joystick.New(cfg)
	for _, ev := range events {
		now = ev.T
		eng.Handle(ev.Event(), box)
	}

	return samples
}

// Recorder captures a live session: the raw pointer events fed to the
// engine and the coordinates it emitted. Its OnChange method is meant to be
// the engine's only observer.
type Recorder struct {
	start   time.Time
	clock   func() time.Time
	events  []Event
	samples []Sample
}

func NewRecorder() *Recorder {
	return newRecorder(time.Now)
}

func newRecorder(clock func() time.Time) *Recorder {
	return &Recorder{start: clock(), clock: clock}
}

func (r *Recorder) elapsed() float64 {
	return r.clock().Sub(r.start).Seconds()
}

// Observe records a pointer event the engine consumed.
func (r *Recorder) Observe(ev joystick.Event) {
	r.events = append(r.events, Event{T: r.elapsed(), Kind: ev.Kind, X: ev.Pos.X, Y: ev.Pos.Y})
}

func (r *Recorder) OnChange(c joystick.Coordinate) {
	r.samples = append(r.samples, Sample{T: r.elapsed(), X: c.X, Y: c.Y})
}

func (r *Recorder) Start() time.Time  { return r.start }
func (r *Recorder) Events() []Event   { return r.events }
func (r *Recorder) Samples() []Sample { return r.samples }

// Last returns the most recent sample, if any.
func (r *Recorder) Last() (Sample, bool) {
	if len(r.samples) == 0 {
		return Sample{}, false
	}
	return r.samples[len(r.samples)-1], true
}
