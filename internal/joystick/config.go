package joystick

import (
	"fmt"
	"math"
)

const (
	DefaultBoundSize  = 100.0
	DefaultHandleSize = 16.0
	DefaultMinAxis    = -100.0
	DefaultMaxAxis    = 100.0
	DefaultStep       = 1.0
)

// ChangeFunc receives every coordinate update.
type ChangeFunc func(Coordinate)

// Config is the resolved, immutable joystick configuration.
type Config struct {
	BoundSize      float64
	HandleSize     float64
	MinAxis        float64
	MaxAxis        float64
	Step           float64
	StickOnXAxis   bool
	StickOnYAxis   bool
	ReturnToCenter bool
	OnChange       ChangeFunc
}

// Overrides is a partial configuration. Nil fields take their default.
// A zero BoundSize, HandleSize or Step is treated as unset.
type Overrides struct {
	BoundSize      *float64
	HandleSize     *float64
	MinAxis        *float64
	MaxAxis        *float64
	Step           *float64
	StickOnXAxis   *bool
	StickOnYAxis   *bool
	ReturnToCenter *bool
	OnChange       ChangeFunc
}

func Float(v float64) *float64 { return &v }

func Bool(v bool) *bool { return &v }

func DefaultConfig() Config {
	return Config{
		BoundSize:      DefaultBoundSize,
		HandleSize:     DefaultHandleSize,
		MinAxis:        DefaultMinAxis,
		MaxAxis:        DefaultMaxAxis,
		Step:           DefaultStep,
		ReturnToCenter: true,
	}
}

// Resolve fills every unset field of o with its default.
func Resolve(o Overrides) Config {
	cfg := DefaultConfig()

	if o.BoundSize != nil && *o.BoundSize != 0 {
		cfg.BoundSize = *o.BoundSize
	}
	if o.HandleSize != nil && *o.HandleSize != 0 {
		cfg.HandleSize = *o.HandleSize
	}
	if o.MinAxis != nil {
		cfg.MinAxis = *o.MinAxis
	}
	if o.MaxAxis != nil {
		cfg.MaxAxis = *o.MaxAxis
	}
	if o.Step != nil && *o.Step != 0 {
		cfg.Step = *o.Step
	}
	if o.StickOnXAxis != nil {
		cfg.StickOnXAxis = *o.StickOnXAxis
	}
	if o.StickOnYAxis != nil {
		cfg.StickOnYAxis = *o.StickOnYAxis
	}
	if o.ReturnToCenter != nil {
		cfg.ReturnToCenter = *o.ReturnToCenter
	}
	cfg.OnChange = o.OnChange

	return cfg
}

// MaxDistance is the radius the handle centre may travel from the bound centre.
func (c Config) MaxDistance() float64 {
	return (c.BoundSize - c.HandleSize) / 2
}

// Anomalies lists configuration problems the engine will degrade around.
func (c Config) Anomalies() []error {
	var errs []error

	fields := []struct {
		name string
		v    float64
	}{
		{"bound size", c.BoundSize}, {"handle size", c.HandleSize},
		{"min axis", c.MinAxis}, {"max axis", c.MaxAxis}, {"step", c.Step},
	}
	for _, f := range fields {
		if !finite(f.v) {
			errs = append(errs, fmt.Errorf("%s=%v: %w", f.name, f.v, ErrNonFinite))
		}
	}
	if c.MaxDistance() <= 0 {
		errs = append(errs, fmt.Errorf("handle %v >= bound %v: %w", c.HandleSize, c.BoundSize, ErrHandleTooLarge))
	}
	if c.MinAxis >= c.MaxAxis {
		errs = append(errs, fmt.Errorf("range [%v, %v]: %w", c.MinAxis, c.MaxAxis, ErrAxisRange))
	}
	if c.Step <= 0 {
		errs = append(errs, fmt.Errorf("step %v: %w", c.Step, ErrStep))
	}

	return errs
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
