package config

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/Dicklesworthstone/envguard/internal/tui/theme"
)

// Validate checks the configuration for semantic errors.
func Validate(cfg Config) error {
	var errs []string

	if !oneOf(strings.ToLower(cfg.General.LogLevel), "debug", "info", "warn", "warning", "error") {
		errs = append(errs, "general.log_level must be one of debug|info|warn|error")
	}

	for _, p := range cfg.Mask.FilePatterns {
		if strings.TrimSpace(p) == "" {
			errs = append(errs, "mask.file_patterns cannot contain empty patterns")
			continue
		}
		if !doublestar.ValidatePattern(p) {
			errs = append(errs, fmt.Sprintf("mask.file_patterns: invalid glob %q", p))
		}
	}
	if utf8.RuneCountInString(cfg.Mask.MaskChar) != 1 {
		errs = append(errs, "mask.mask_char must be exactly one character")
	} else if r, _ := utf8.DecodeRuneInString(cfg.Mask.MaskChar); !unicode.IsGraphic(r) || unicode.IsSpace(r) {
		errs = append(errs, "mask.mask_char must be a visible character")
	}

	if cfg.Watch.DebounceMs < 0 {
		errs = append(errs, "watch.debounce_ms cannot be negative")
	}

	if !oneOf(cfg.UI.Icons, IconsAuto, IconsNerd, IconsASCII) {
		errs = append(errs, "ui.icons must be one of auto|nerd|ascii")
	}

	if !theme.IsFlavor(cfg.UI.Theme) {
		errs = append(errs, "ui.theme must be one of "+strings.Join(theme.Flavors(), "|"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func oneOf(val string, options ...string) bool {
	for _, opt := range options {
		if val == opt {
			return true
		}
	}
	return false
}
