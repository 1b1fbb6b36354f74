package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/vstick/internal/trace"
)

// PathToSVG draws the handle path of a session in a square of size pixels.
// Both axes span [lo, hi]; y grows downwards, as it does on screen. The
// bound circle and the axes are drawn behind the path.
func PathToSVG(samples []trace.Sample, lo, hi float64, size int, strokeColor string) string {
	if size <= 0 {
		return ""
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	fs := float64(size)
	px := func(v float64) float64 { return (v - lo) / span * fs }
	half := fs / 2

	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="#444444"/>
<path stroke="#222222" d="M%.1f,0 V%d M0,%.1f H%d"/>
`, size, size, size, size, half, half, half, half, size, half, size)

	if len(samples) > 1 {
		fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor)
		for i, s := range samples {
			if i > 0 {
				sb.WriteString(" L")
			}
			fmt.Fprintf(&sb, "%.1f,%.1f", px(s.X), px(s.Y))
		}
		sb.WriteString("\"/>\n")
	}

	if n := len(samples); n > 0 {
		last := samples[n-1]
		fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="4" fill="%s"/>
`, px(last.X), px(last.Y), strokeColor)
	}

	sb.WriteString("</svg>")
	return sb.String()
}
