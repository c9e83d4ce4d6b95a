package config

import (
	"github.com/Dicklesworthstone/envguard/internal/mask"
	"github.com/Dicklesworthstone/envguard/internal/tui/theme"
)

// DefaultConfig returns the built-in default configuration.
func DefaultConfig() Config {
	opts := mask.DefaultOptions()
	return Config{
		General: GeneralConfig{
			LogLevel: "info",
		},
		Mask: MaskConfig{
			FilePatterns: opts.FilePatterns,
			HideValues:   opts.HideValues,
			MaskChar:     "*",
		},
		Watch: WatchConfig{
			Enabled:    true,
			DebounceMs: 100,
		},
		UI: UIConfig{
			Theme:       theme.FlavorMocha,
			LineNumbers: true,
			Editor:      "",
			Icons:       IconsAuto,
		},
	}
}
