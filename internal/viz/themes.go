package viz

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour scheme shared by every frontend. The terminal uses the
// colours through lipgloss, the raster frontends through RGBA.
type Theme struct {
	Name       string
	Line       lipgloss.Color
	Dot        lipgloss.Color
	Highlight  lipgloss.Color
	Brush      lipgloss.Color
	Axis       lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:       "classic",
		Line:       lipgloss.Color("#4682b4"), // steelblue
		Dot:        lipgloss.Color("#000000"),
		Highlight:  lipgloss.Color("#ffa500"), // orange
		Brush:      lipgloss.Color("#d0d0d0"),
		Axis:       lipgloss.Color("#555555"),
		Background: lipgloss.Color("#ffffff"),
		Text:       lipgloss.Color("#222222"),
		Muted:      lipgloss.Color("#888888"),
	}

	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Line:       lipgloss.Color("#00ffff"),
		Dot:        lipgloss.Color("#ff00ff"),
		Highlight:  lipgloss.Color("#ffff00"),
		Brush:      lipgloss.Color("#2a0a2a"),
		Axis:       lipgloss.Color("#666666"),
		Background: lipgloss.Color("#0a0a0a"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666666"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Line:       lipgloss.Color("#00cc00"), // green phosphor
		Dot:        lipgloss.Color("#00ff00"),
		Highlight:  lipgloss.Color("#88ff88"),
		Brush:      lipgloss.Color("#003300"),
		Axis:       lipgloss.Color("#005500"),
		Background: lipgloss.Color("#001100"),
		Text:       lipgloss.Color("#00ff00"),
		Muted:      lipgloss.Color("#005500"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Line:       lipgloss.Color("#cccccc"),
		Dot:        lipgloss.Color("#ffffff"),
		Highlight:  lipgloss.Color("#0088ff"),
		Brush:      lipgloss.Color("#222222"),
		Axis:       lipgloss.Color("#888888"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Line:       lipgloss.Color("#00a8cc"),
		Dot:        lipgloss.Color("#0077be"),
		Highlight:  lipgloss.Color("#ffd700"),
		Brush:      lipgloss.Color("#003355"),
		Axis:       lipgloss.Color("#4488aa"),
		Background: lipgloss.Color("#001a33"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Line:       lipgloss.Color("#feca57"),
		Dot:        lipgloss.Color("#ff6b6b"), // coral
		Highlight:  lipgloss.Color("#ff9ff3"),
		Brush:      lipgloss.Color("#4a2d4b"),
		Axis:       lipgloss.Color("#8b6b8c"),
		Background: lipgloss.Color("#2d1b2e"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

// NextTheme cycles through Themes.
func NextTheme(current string) Theme {
	for i, t := range Themes {
		if t.Name == current {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// RGBA converts a "#rrggbb" colour. Anything else becomes opaque white.
func RGBA(c lipgloss.Color) color.RGBA {
	r, g, b := parseHex(string(c))
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}
}

// Named resolves the handful of CSS colour names the chart options use, so a
// config can say "orange" and still drive the raster frontends.
func Named(name string) (lipgloss.Color, bool) {
	switch name {
	case "orange":
		return lipgloss.Color("#ffa500"), true
	case "black":
		return lipgloss.Color("#000000"), true
	case "white":
		return lipgloss.Color("#ffffff"), true
	case "red":
		return lipgloss.Color("#ff0000"), true
	case "green":
		return lipgloss.Color("#008000"), true
	case "blue":
		return lipgloss.Color("#0000ff"), true
	case "steelblue":
		return lipgloss.Color("#4682b4"), true
	case "gray", "grey":
		return lipgloss.Color("#808080"), true
	}
	if len(name) == 7 && name[0] == '#' {
		return lipgloss.Color(name), true
	}
	return "", false
}
