package config

import "fmt"

// ToggleResult describes the outcome of flipping hide_values.
type ToggleResult struct {
	// HideValues is the value written to the user config.
	HideValues bool `json:"hide_values" yaml:"hide_values"`
	// Effective is hide_values after reloading with the full precedence chain.
	// It differs from HideValues when a project file, env var or flag pins it.
	Effective bool `json:"effective" yaml:"effective"`
	// Path is the config file that was written.
	Path string `json:"path" yaml:"path"`
}

// Toggle negates the effective hide_values and persists the result to the
// user (global) config file.
func Toggle(opts LoadOptions) (ToggleResult, error) {
	cfg, err := Load(opts)
	if err != nil {
		return ToggleResult{}, err
	}

	next := !cfg.Mask.HideValues
	path := opts.userPath()
	if err := SetHideValues(path, next); err != nil {
		return ToggleResult{}, err
	}

	reloaded, err := Load(opts)
	if err != nil {
		return ToggleResult{}, fmt.Errorf("reload after toggle: %w", err)
	}
	return ToggleResult{
		HideValues: next,
		Effective:  reloaded.Mask.HideValues,
		Path:       path,
	}, nil
}

// SetHideValues persists mask.hide_values into the config file at path.
func SetHideValues(path string, hide bool) error {
	if err := WriteValue(path, "mask.hide_values", hide); err != nil {
		return fmt.Errorf("persist hide_values: %w", err)
	}
	return nil
}
