package session

import "github.com/Dicklesworthstone/envguard/internal/config"

// FileConfig reads settings through the layered config loader.
type FileConfig struct {
	Options config.LoadOptions
}

// Load implements ConfigSource.
func (f FileConfig) Load() (config.Config, error) {
	return config.Load(f.Options)
}

// Toggle implements ConfigSource.
func (f FileConfig) Toggle() (bool, error) {
	res, err := config.Toggle(f.Options)
	if err != nil {
		return false, err
	}
	return res.Effective, nil
}
