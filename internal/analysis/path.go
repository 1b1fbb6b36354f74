package analysis

import (
	"strings"

	"github.com/san-kum/vstick/internal/trace"
)

// PathToASCII draws the coordinate path over the square [lo, hi] x [lo, hi].
// Rows grow downward like screen y, matching the pointer frame.
func PathToASCII(samples []trace.Sample, lo, hi float64, width, height int) string {
	if len(samples) == 0 || width < 2 || height < 2 {
		return ""
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	toCell := func(x, y float64) (int, int) {
		col := int((x - lo) / span * float64(width-1))
		row := int((y - lo) / span * float64(height-1))
		return row, col
	}

	// axes through the origin when it is in range
	if lo <= 0 && hi >= 0 {
		row0, col0 := toCell(0, 0)
		for r := 0; r < height; r++ {
			canvas[r][col0] = '│'
		}
		for c := 0; c < width; c++ {
			canvas[row0][c] = '─'
		}
		canvas[row0][col0] = '┼'
	}

	for _, s := range samples {
		row, col := toCell(s.X, s.Y)
		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}

	last := samples[len(samples)-1]
	if row, col := toCell(last.X, last.Y); row >= 0 && row < height && col >= 0 && col < width {
		canvas[row][col] = '◉'
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
