package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the joystick color scheme.
type Theme struct {
	Name         string
	Bound        lipgloss.Color
	Handle       lipgloss.Color
	HandleActive lipgloss.Color
	Accent       lipgloss.Color
	Text         lipgloss.Color
	Muted        lipgloss.Color
	Border       lipgloss.Color
}

var (
	// ThemeMono mirrors the classic grey disc with a dark handle.
	ThemeMono = Theme{
		Name:         "mono",
		Bound:        lipgloss.Color("#e0e0e0"),
		Handle:       lipgloss.Color("#888888"),
		HandleActive: lipgloss.Color("#ffffff"),
		Accent:       lipgloss.Color("#0088ff"),
		Text:         lipgloss.Color("#ffffff"),
		Muted:        lipgloss.Color("#666666"),
		Border:       lipgloss.Color("#444444"),
	}

	ThemeNeon = Theme{
		Name:         "neon",
		Bound:        lipgloss.Color("#00ffff"),
		Handle:       lipgloss.Color("#ff00ff"),
		HandleActive: lipgloss.Color("#ffff00"),
		Accent:       lipgloss.Color("#ff00ff"),
		Text:         lipgloss.Color("#ffffff"),
		Muted:        lipgloss.Color("#666688"),
		Border:       lipgloss.Color("#444466"),
	}

	ThemeRetroGreen = Theme{
		Name:         "retro",
		Bound:        lipgloss.Color("#00cc00"),
		Handle:       lipgloss.Color("#00ff00"),
		HandleActive: lipgloss.Color("#88ff88"),
		Accent:       lipgloss.Color("#88ff88"),
		Text:         lipgloss.Color("#00ff00"),
		Muted:        lipgloss.Color("#005500"),
		Border:       lipgloss.Color("#005500"),
	}

	ThemeOcean = Theme{
		Name:         "ocean",
		Bound:        lipgloss.Color("#0077be"),
		Handle:       lipgloss.Color("#00a8cc"),
		HandleActive: lipgloss.Color("#ffd700"),
		Accent:       lipgloss.Color("#ffd700"),
		Text:         lipgloss.Color("#e0f0ff"),
		Muted:        lipgloss.Color("#4488aa"),
		Border:       lipgloss.Color("#4488aa"),
	}

	ThemeSunset = Theme{
		Name:         "sunset",
		Bound:        lipgloss.Color("#feca57"),
		Handle:       lipgloss.Color("#ff6b6b"),
		HandleActive: lipgloss.Color("#ff9ff3"),
		Accent:       lipgloss.Color("#ff9ff3"),
		Text:         lipgloss.Color("#fff5f5"),
		Muted:        lipgloss.Color("#8b6b8c"),
		Border:       lipgloss.Color("#8b6b8c"),
	}

	Themes = []Theme{
		ThemeMono,
		ThemeNeon,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to mono.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMono
}

func themeIndex(name string) int {
	for i, t := range Themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
