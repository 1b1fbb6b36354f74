package viz

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Styles is the rendered form of a Theme.
type Styles struct {
	Theme        Theme
	Title        lipgloss.Style
	Bound        lipgloss.Style
	Handle       lipgloss.Style
	HandleActive lipgloss.Style
	Label        lipgloss.Style
	Value        lipgloss.Style
	KeyHint      lipgloss.Style
	Status       lipgloss.Style
	Panel        lipgloss.Style
}

// installed holds one *Styles per theme name. Styles are created once, on
// first use, and shared by every joystick on the same theme.
var installed sync.Map

// StylesFor returns the installed styles for name, installing them if absent.
func StylesFor(name string) *Styles {
	if s, ok := installed.Load(name); ok {
		return s.(*Styles)
	}
	s, _ := installed.LoadOrStore(name, newStyles(GetTheme(name)))
	return s.(*Styles)
}

func newStyles(t Theme) *Styles {
	return &Styles{
		Theme: t,
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent),
		Bound:        lipgloss.NewStyle().Foreground(t.Bound),
		Handle:       lipgloss.NewStyle().Foreground(t.Handle),
		HandleActive: lipgloss.NewStyle().Bold(true).Foreground(t.HandleActive),
		Label:        lipgloss.NewStyle().Foreground(t.Muted).Width(10),
		Value: lipgloss.NewStyle().
			Foreground(t.Text).
			Bold(true),
		KeyHint: lipgloss.NewStyle().
			Foreground(t.Muted).
			Italic(true),
		Status: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
	}
}

// Meter renders a centred bar for v in [lo, hi], zero marked in the middle.
func Meter(v, lo, hi float64, width int) string {
	if width < 3 {
		width = 3
	}
	if hi <= lo {
		return strings.Repeat("─", width)
	}

	mid := width / 2
	pos := int((v - lo) / (hi - lo) * float64(width-1))
	if pos < 0 {
		pos = 0
	}
	if pos >= width {
		pos = width - 1
	}

	bar := []rune(strings.Repeat("░", width))
	from, to := mid, pos
	if from > to {
		from, to = to, from
	}
	for i := from; i <= to; i++ {
		bar[i] = '█'
	}
	if pos == mid {
		bar[mid] = '│'
	}
	return string(bar)
}
