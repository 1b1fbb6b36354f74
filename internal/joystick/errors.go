package joystick

import "errors"

// Configuration anomalies. The engine absorbs all of them; they are only
// reported by [Config.Anomalies] for diagnostics.
var (
	// ErrHandleTooLarge indicates the handle leaves no room to travel.
	ErrHandleTooLarge = errors.New("joystick: handle size leaves no travel inside bound")

	// ErrAxisRange indicates MinAxis is not below MaxAxis.
	ErrAxisRange = errors.New("joystick: min axis must be below max axis")

	// ErrStep indicates a step that cannot quantise output.
	ErrStep = errors.New("joystick: step must be positive")

	// ErrNonFinite indicates a NaN or Inf configuration value.
	ErrNonFinite = errors.New("joystick: non-finite configuration value")
)
