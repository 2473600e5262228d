package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/spinorview/internal/zone"
)

// ThemeKind is a closed set of named color themes. Config and UI input
// are decoded into a ThemeKind once, at this boundary; nothing below it
// ever compares theme names as strings.
type ThemeKind int

const (
	ThemeDefault ThemeKind = iota
	ThemeRedGreen
	ThemeGreenYellow
)

func (k ThemeKind) String() string {
	switch k {
	case ThemeRedGreen:
		return "red-green"
	case ThemeGreenYellow:
		return "green-yellow"
	default:
		return "default"
	}
}

// Label returns the human-readable name shown in the theme picker.
func (k ThemeKind) Label() string {
	switch k {
	case ThemeRedGreen:
		return "For red-green color blindness"
	case ThemeGreenYellow:
		return "For green-yellow color blindness"
	default:
		return "default"
	}
}

// ThemeKinds returns the selectable themes in display order.
func ThemeKinds() []ThemeKind {
	return []ThemeKind{ThemeDefault, ThemeRedGreen, ThemeGreenYellow}
}

// ParseThemeKind decodes a configured theme name, falling back to the
// default theme for anything unrecognized.
func ParseThemeKind(s string) ThemeKind {
	switch s {
	case "red-green":
		return ThemeRedGreen
	case "green-yellow":
		return ThemeGreenYellow
	default:
		return ThemeDefault
	}
}

// Theme maps each zone to its row background color.
type Theme struct {
	Kind  ThemeKind
	zones [4]lipgloss.Color
}

// Catppuccin Mocha pastels; row text is always rendered dark on top of
// these.
const (
	colorBlue   lipgloss.Color = "#89b4fa"
	colorGreen  lipgloss.Color = "#a6e3a1"
	colorYellow lipgloss.Color = "#f9e2af"
	colorRed    lipgloss.Color = "#f38ba8"
	colorPeach  lipgloss.Color = "#fab387"
	colorMauve  lipgloss.Color = "#cba6f7"
	colorPink   lipgloss.Color = "#f5c2e7"
	colorSky    lipgloss.Color = "#89dceb"

	colorText    lipgloss.Color = "#cdd6f4"
	colorSubtext lipgloss.Color = "#a6adc8"
	colorSurface lipgloss.Color = "#313244"
	colorCrust   lipgloss.Color = "#11111b"
)

// NewTheme builds the palette for a theme kind. The colorblind variants
// keep the same four-slot layout but swap out the hue pairs their users
// cannot tell apart.
func NewTheme(kind ThemeKind) Theme {
	switch kind {
	case ThemeRedGreen:
		return Theme{Kind: kind, zones: [4]lipgloss.Color{colorBlue, colorPeach, colorYellow, colorMauve}}
	case ThemeGreenYellow:
		return Theme{Kind: kind, zones: [4]lipgloss.Color{colorBlue, colorPink, colorRed, colorMauve}}
	default:
		return Theme{Kind: kind, zones: [4]lipgloss.Color{colorBlue, colorGreen, colorYellow, colorRed}}
	}
}

// ZoneColor returns the row background color for z.
func (t Theme) ZoneColor(z zone.Zone) lipgloss.Color {
	return t.zones[z]
}

// ZoneStyle returns the style a row of zone z is rendered with.
func (t Theme) ZoneStyle(z zone.Zone) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorCrust).Background(t.zones[z])
}
