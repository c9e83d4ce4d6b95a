// Package icons provides icon constants with Nerd Font and ASCII fallbacks.
package icons

import (
	"os"
	"strings"
)

// IconsEnv selects the icon set: "nerd", "1" or "true" for Nerd Font glyphs.
const IconsEnv = "ENVGUARD_ICONS"

// IconSet defines a set of icons for the TUI.
type IconSet struct {
	// Visibility state
	Hidden    string
	Visible   string
	Unmatched string

	// UI icons
	File    string
	Key     string
	Edit    string
	Refresh string
	Warning string
	Error   string
	Success string
	Loading string
	Dot     string
}

// useNerdFonts checks if Nerd Fonts are likely available.
var useNerdFonts = detectNerdFonts()

// detectNerdFonts checks environment hints for Nerd Font support.
func detectNerdFonts() bool {
	term := os.Getenv("TERM")
	termProgram := os.Getenv("TERM_PROGRAM")
	setting := os.Getenv(IconsEnv)

	// Explicit setting takes precedence
	if setting != "" {
		setting = strings.ToLower(setting)
		return setting == "nerd" || setting == "1" || setting == "true"
	}

	// Some terminals that often have Nerd Fonts
	nerdTerminals := []string{"kitty", "wezterm", "alacritty", "iTerm.app"}
	for _, t := range nerdTerminals {
		if strings.Contains(termProgram, t) || strings.Contains(term, t) {
			return true
		}
	}

	// Default to ASCII for safety
	return false
}

// SetNerdFonts explicitly enables or disables Nerd Font icons.
func SetNerdFonts(enabled bool) {
	useNerdFonts = enabled
}

// nerd returns the Nerd Font icon set.
func nerd() *IconSet {
	return &IconSet{
		Hidden:    "", // nf-fa-lock
		Visible:   "", // nf-fa-unlock
		Unmatched: "", // nf-fa-file

		File:    "", // nf-fa-file
		Key:     "", // nf-fa-key
		Edit:    "", // nf-fa-edit
		Refresh: "", // nf-fa-refresh
		Warning: "", // nf-fa-exclamation_triangle
		Error:   "", // nf-fa-times_circle
		Success: "", // nf-fa-check_circle
		Loading: "", // nf-fa-spinner
		Dot:     "", // nf-fa-circle (small)
	}
}

// ascii returns the ASCII fallback icon set.
func ascii() *IconSet {
	return &IconSet{
		Hidden:    "[L]",
		Visible:   "[U]",
		Unmatched: "[=]",

		File:    "[=]",
		Key:     "[K]",
		Edit:    "[E]",
		Refresh: "[R]",
		Warning: "[!]",
		Error:   "[X]",
		Success: "[v]",
		Loading: "[*]",
		Dot:     "*",
	}
}

// Current returns the current icon set based on configuration.
func Current() *IconSet {
	if useNerdFonts {
		return nerd()
	}
	return ascii()
}

// StateIcon returns the icon for a visibility state name.
func StateIcon(state string) string {
	icons := Current()
	switch strings.ToLower(state) {
	case "hidden":
		return icons.Hidden
	case "visible":
		return icons.Visible
	case "unmatched":
		return icons.Unmatched
	case "error":
		return icons.Error
	case "loading":
		return icons.Loading
	default:
		return icons.Dot
	}
}
