package analysis

import (
	"math"

	"github.com/san-kum/vstick/internal/trace"
)

type Stats struct {
	Count     int
	Duration  float64
	Peak      float64 // largest |(x, y)|
	Mean      float64 // mean |(x, y)|
	AtRest    float64 // fraction of samples at (0, 0)
	Reversals int     // sign changes on either axis
}

func (s Stats) Map() map[string]float64 {
	return map[string]float64{
		"count":     float64(s.Count),
		"duration":  s.Duration,
		"peak":      s.Peak,
		"mean":      s.Mean,
		"at_rest":   s.AtRest,
		"reversals": float64(s.Reversals),
	}
}

func Summarize(samples []trace.Sample) Stats {
	var st Stats
	st.Count = len(samples)
	if st.Count == 0 {
		return st
	}

	st.Duration = samples[len(samples)-1].T - samples[0].T

	rest := 0
	sum := 0.0
	for i, s := range samples {
		m := math.Hypot(s.X, s.Y)
		sum += m
		if m > st.Peak {
			st.Peak = m
		}
		if m == 0 {
			rest++
		}
		if i > 0 {
			prev := samples[i-1]
			if prev.X*s.X < 0 {
				st.Reversals++
			}
			if prev.Y*s.Y < 0 {
				st.Reversals++
			}
		}
	}

	st.Mean = sum / float64(st.Count)
	st.AtRest = float64(rest) / float64(st.Count)
	return st
}
