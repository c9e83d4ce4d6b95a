// Package config implements hierarchical configuration for envguard.
// Precedence: defaults < user (~/.envguard/config.toml) < project (.envguard/config.toml) < env (ENVGUARD_*) < flags.
package config

import "github.com/Dicklesworthstone/envguard/internal/mask"

// Config is the top-level configuration structure.
type Config struct {
	General GeneralConfig `toml:"general" mapstructure:"general"`
	Mask    MaskConfig    `toml:"mask" mapstructure:"mask"`
	Watch   WatchConfig   `toml:"watch" mapstructure:"watch"`
	UI      UIConfig      `toml:"ui" mapstructure:"ui"`
}

// GeneralConfig holds process-wide knobs.
type GeneralConfig struct {
	LogLevel string `toml:"log_level" mapstructure:"log_level"`
}

// MaskConfig controls which files are masked and whether masking is on.
type MaskConfig struct {
	FilePatterns []string `toml:"file_patterns" mapstructure:"file_patterns"`
	HideValues   bool     `toml:"hide_values" mapstructure:"hide_values"`
	MaskChar     string   `toml:"mask_char" mapstructure:"mask_char"` // display only
}

// WatchConfig controls the file watcher used by the viewer.
type WatchConfig struct {
	Enabled    bool `toml:"enabled" mapstructure:"enabled"`
	DebounceMs int  `toml:"debounce_ms" mapstructure:"debounce_ms"`
}

// UIConfig holds viewer settings.
type UIConfig struct {
	Theme       string `toml:"theme" mapstructure:"theme"` // mocha | macchiato | frappe | latte
	LineNumbers bool   `toml:"line_numbers" mapstructure:"line_numbers"`
	Editor      string `toml:"editor" mapstructure:"editor"`
	Icons       string `toml:"icons" mapstructure:"icons"` // auto | nerd | ascii
}

// Icon set choices for ui.icons.
const (
	IconsAuto  = "auto"
	IconsNerd  = "nerd"
	IconsASCII = "ascii"
)

// MaskOptions returns the engine snapshot for this configuration.
func (c Config) MaskOptions() mask.Options {
	patterns := make([]string, len(c.Mask.FilePatterns))
	copy(patterns, c.Mask.FilePatterns)
	return mask.Options{
		FilePatterns: patterns,
		HideValues:   c.Mask.HideValues,
	}
}
