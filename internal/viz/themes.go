package viz

import "github.com/charmbracelet/lipgloss"

// Theme colours each canvas layer and the side panel.
type Theme struct {
	Name      string
	Field     lipgloss.Color
	Trail     lipgloss.Color
	Particle  lipgloss.Color
	Source    lipgloss.Color
	Repulsive lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Accent    lipgloss.Color
	Warning   lipgloss.Color
}

var (
	ThemeNight = Theme{
		Name:      "night",
		Field:     lipgloss.Color("#00b450"),
		Trail:     lipgloss.Color("#555577"),
		Particle:  lipgloss.Color("#ffffff"),
		Source:    lipgloss.Color("#3399ff"),
		Repulsive: lipgloss.Color("#ff4444"),
		Text:      lipgloss.Color("#e0e0e0"),
		Muted:     lipgloss.Color("#666666"),
		Accent:    lipgloss.Color("#00ffff"),
		Warning:   lipgloss.Color("#ffaa00"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Field:     lipgloss.Color("#005500"),
		Trail:     lipgloss.Color("#00aa00"),
		Particle:  lipgloss.Color("#88ff88"),
		Source:    lipgloss.Color("#00ff00"),
		Repulsive: lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Accent:    lipgloss.Color("#88ff88"),
		Warning:   lipgloss.Color("#ffff00"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Field:     lipgloss.Color("#444444"),
		Trail:     lipgloss.Color("#888888"),
		Particle:  lipgloss.Color("#ffffff"),
		Source:    lipgloss.Color("#cccccc"),
		Repulsive: lipgloss.Color("#ff8800"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Accent:    lipgloss.Color("#0088ff"),
		Warning:   lipgloss.Color("#ffaa00"),
	}

	Themes = []Theme{
		ThemeNight,
		ThemeRetroGreen,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeNight
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func (t Theme) layerStyles() map[Layer]lipgloss.Style {
	return map[Layer]lipgloss.Style{
		LayerField:     lipgloss.NewStyle().Foreground(t.Field),
		LayerTrail:     lipgloss.NewStyle().Foreground(t.Trail),
		LayerParticle:  lipgloss.NewStyle().Foreground(t.Particle),
		LayerSource:    lipgloss.NewStyle().Foreground(t.Source),
		LayerRepulsive: lipgloss.NewStyle().Foreground(t.Repulsive),
	}
}
