// Package theme provides Catppuccin color palettes for the terminal UI.
package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Flavor names accepted in configuration.
const (
	FlavorMocha     = "mocha"
	FlavorMacchiato = "macchiato"
	FlavorFrappe    = "frappe"
	FlavorLatte     = "latte"
)

// Theme is a named palette.
type Theme struct {
	Name   string
	IsDark bool

	// Accents
	Mauve    lipgloss.Color
	Blue     lipgloss.Color
	Green    lipgloss.Color
	Yellow   lipgloss.Color
	Red      lipgloss.Color
	Peach    lipgloss.Color
	Teal     lipgloss.Color
	Pink     lipgloss.Color
	Flamingo lipgloss.Color

	// Text
	Text    lipgloss.Color
	Subtext lipgloss.Color

	// Overlays
	Overlay0 lipgloss.Color
	Overlay1 lipgloss.Color
	Overlay2 lipgloss.Color

	// Surfaces
	Surface  lipgloss.Color
	Surface0 lipgloss.Color
	Base     lipgloss.Color
	Mantle   lipgloss.Color
	Crust    lipgloss.Color
}

// Current is the active theme.
var Current = Mocha()

// Flavors lists the accepted flavor names.
func Flavors() []string {
	return []string{FlavorMocha, FlavorMacchiato, FlavorFrappe, FlavorLatte}
}

// IsFlavor reports whether name is a known flavor.
func IsFlavor(name string) bool {
	switch strings.ToLower(name) {
	case FlavorMocha, FlavorMacchiato, FlavorFrappe, FlavorLatte:
		return true
	}
	return false
}

// ForFlavor returns the theme for a flavor name, defaulting to Mocha.
func ForFlavor(flavor string) *Theme {
	switch strings.ToLower(flavor) {
	case FlavorMacchiato:
		return Macchiato()
	case FlavorFrappe:
		return Frappe()
	case FlavorLatte:
		return Latte()
	default:
		return Mocha()
	}
}

// SetTheme switches Current to the given flavor.
func SetTheme(flavor string) {
	Current = ForFlavor(flavor)
}

// Mocha is the darkest flavor.
func Mocha() *Theme {
	return &Theme{
		Name:     "Catppuccin Mocha",
		IsDark:   true,
		Mauve:    "#cba6f7",
		Blue:     "#89b4fa",
		Green:    "#a6e3a1",
		Yellow:   "#f9e2af",
		Red:      "#f38ba8",
		Peach:    "#fab387",
		Teal:     "#94e2d5",
		Pink:     "#f5c2e7",
		Flamingo: "#f2cdcd",
		Text:     "#cdd6f4",
		Subtext:  "#a6adc8",
		Overlay0: "#6c7086",
		Overlay1: "#7f849c",
		Overlay2: "#9399b2",
		Surface:  "#313244",
		Surface0: "#313244",
		Base:     "#1e1e2e",
		Mantle:   "#181825",
		Crust:    "#11111b",
	}
}

// Macchiato is a medium dark flavor.
func Macchiato() *Theme {
	return &Theme{
		Name:     "Catppuccin Macchiato",
		IsDark:   true,
		Mauve:    "#c6a0f6",
		Blue:     "#8aadf4",
		Green:    "#a6da95",
		Yellow:   "#eed49f",
		Red:      "#ed8796",
		Peach:    "#f5a97f",
		Teal:     "#8bd5ca",
		Pink:     "#f5bde6",
		Flamingo: "#f0c6c6",
		Text:     "#cad3f5",
		Subtext:  "#a5adcb",
		Overlay0: "#6e738d",
		Overlay1: "#8087a2",
		Overlay2: "#939ab7",
		Surface:  "#363a4f",
		Surface0: "#363a4f",
		Base:     "#24273a",
		Mantle:   "#1e2030",
		Crust:    "#181926",
	}
}

// Frappe is the lightest dark flavor.
func Frappe() *Theme {
	return &Theme{
		Name:     "Catppuccin Frappe",
		IsDark:   true,
		Mauve:    "#ca9ee6",
		Blue:     "#8caaee",
		Green:    "#a6d189",
		Yellow:   "#e5c890",
		Red:      "#e78284",
		Peach:    "#ef9f76",
		Teal:     "#81c8be",
		Pink:     "#f4b8e4",
		Flamingo: "#eebebe",
		Text:     "#c6d0f5",
		Subtext:  "#a5adce",
		Overlay0: "#737994",
		Overlay1: "#838ba7",
		Overlay2: "#949cbb",
		Surface:  "#414559",
		Surface0: "#414559",
		Base:     "#303446",
		Mantle:   "#292c3c",
		Crust:    "#232634",
	}
}

// Latte is the light flavor.
func Latte() *Theme {
	return &Theme{
		Name:     "Catppuccin Latte",
		IsDark:   false,
		Mauve:    "#8839ef",
		Blue:     "#1e66f5",
		Green:    "#40a02b",
		Yellow:   "#df8e1d",
		Red:      "#d20f39",
		Peach:    "#fe640b",
		Teal:     "#179299",
		Pink:     "#ea76cb",
		Flamingo: "#dd7878",
		Text:     "#4c4f69",
		Subtext:  "#6c6f85",
		Overlay0: "#9ca0b0",
		Overlay1: "#8c8fa1",
		Overlay2: "#7c7f93",
		Surface:  "#ccd0da",
		Surface0: "#ccd0da",
		Base:     "#eff1f5",
		Mantle:   "#e6e9ef",
		Crust:    "#dce0e8",
	}
}

// MaskColor is used for the overlay painted over hidden values.
func (t *Theme) MaskColor() lipgloss.Color {
	return t.Peach
}

// KeyColor is used for variable names.
func (t *Theme) KeyColor() lipgloss.Color {
	return t.Blue
}

// CommentColor is used for comment lines.
func (t *Theme) CommentColor() lipgloss.Color {
	return t.Overlay1
}

// StateColor returns the badge color for the hidden/visible state.
func (t *Theme) StateColor(hidden bool) lipgloss.Color {
	if hidden {
		return t.Green
	}
	return t.Red
}
