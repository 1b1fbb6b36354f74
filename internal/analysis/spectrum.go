package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/vstick/internal/trace"
)

type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

func (a Axis) value(s trace.Sample) float64 {
	if a == AxisY {
		return s.Y
	}
	return s.X
}

// Resample converts irregular samples to a uniform grid at rate Hz. The
// joystick output holds its value between notifications, so each grid point
// takes the latest sample at or before it. Samples whose times run
// backwards or are not finite give nil.
func Resample(samples []trace.Sample, axis Axis, rate float64) []float64 {
	if len(samples) == 0 || rate <= 0 {
		return nil
	}

	t0 := samples[0].T
	duration := samples[len(samples)-1].T - t0
	span := duration * rate
	if !(span >= 0) || math.IsInf(span, 0) {
		return nil
	}
	n := int(span) + 1

	out := make([]float64, n)
	j := 0
	for i := range out {
		t := t0 + float64(i)/rate
		for j+1 < len(samples) && samples[j+1].T <= t {
			j++
		}
		out[i] = axis.value(samples[j])
	}
	return out
}

// Spectrum returns the magnitude of the first half of the DFT of values,
// with the mean removed.
func Spectrum(values []float64) []float64 {
	if len(values) < 2 {
		return nil
	}

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	centred := make([]float64, len(values))
	for i, v := range values {
		centred[i] = v - mean
	}

	bins := fft.FFTReal(centred)
	ps := make([]float64, len(bins)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(bins[i])
	}
	return ps
}

// DominantFrequency returns the strongest non-zero frequency of one axis and
// its magnitude. Both are zero when the session is too short or flat.
func DominantFrequency(samples []trace.Sample, axis Axis, rate float64) (float64, float64) {
	values := Resample(samples, axis, rate)
	ps := Spectrum(values)
	if len(ps) < 2 {
		return 0, 0
	}

	best := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[best] {
			best = i
		}
	}
	if ps[best] < 1e-9 {
		return 0, 0
	}
	return float64(best) * rate / float64(len(values)), ps[best]
}
