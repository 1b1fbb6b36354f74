package joystick

import "math"

// Compute maps a pointer position to the clamped handle offset and the
// logical coordinate. It never returns NaN or Inf: degenerate geometry or
// input collapses to zero displacement.
func Compute(cfg Config, p Point, box Rect) (Offset, Coordinate) {
	c := box.Center()
	x, y := p.X-c.X, p.Y-c.Y

	if cfg.StickOnXAxis {
		x = 0
	}
	if cfg.StickOnYAxis {
		y = 0
	}

	maxDist := cfg.MaxDistance()
	if !finite(x) || !finite(y) || !finite(maxDist) || maxDist <= 0 {
		return Offset{}, Coordinate{}
	}

	x, y = clampToCircle(x, y, maxDist)

	scale := (cfg.MaxAxis - cfg.MinAxis) / 2 / maxDist
	lo, hi := axisBounds(cfg)

	return Offset{DX: x, DY: y}, Coordinate{
		X: quantize(x*scale, cfg.Step, lo, hi),
		Y: quantize(y*scale, cfg.Step, lo, hi),
	}
}

// clampToCircle rescales (x, y) along its own angle so that its length is at
// most r.
func clampToCircle(x, y, r float64) (float64, float64) {
	dist := math.Hypot(x, y)
	if dist <= r {
		return x, y
	}
	sin, cos := math.Sincos(math.Atan2(y, x))
	return r * cos, r * sin
}

func axisBounds(cfg Config) (float64, float64) {
	lo, hi := cfg.MinAxis, cfg.MaxAxis
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

// quantize rounds v to the nearest multiple of step (half away from zero)
// and keeps it inside [lo, hi]. A non-positive or non-finite step disables
// rounding.
func quantize(v, step, lo, hi float64) float64 {
	if !finite(v) {
		return 0
	}

	if finite(step) && step > 0 {
		v = math.Round(v/step) * step
		if v > hi {
			v = math.Floor(hi/step) * step
		}
		if v < lo {
			v = math.Ceil(lo/step) * step
		}
	}

	// range narrower than one step, or no rounding
	if finite(hi) && v > hi {
		v = hi
	}
	if finite(lo) && v < lo {
		v = lo
	}
	if v == 0 {
		v = 0
	}
	return v
}
