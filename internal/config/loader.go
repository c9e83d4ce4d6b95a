package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
)

const (
	configDirName  = ".envguard"
	configFileName = "config.toml"
)

// LoadOptions controls configuration loading.
type LoadOptions struct {
	// ProjectDir is used to locate .envguard/config.toml. Defaults to CWD when empty.
	ProjectDir string
	// ConfigPath overrides the project config path if provided.
	ConfigPath string
	// UserConfigPath overrides ~/.envguard/config.toml if provided.
	UserConfigPath string
	// FlagOverrides are highest-priority overrides from CLI flags (dot-notated keys).
	FlagOverrides map[string]any
}

// Load returns the effective configuration after applying precedence:
// defaults < user (~/.envguard/config.toml) < project (.envguard/config.toml) < env (ENVGUARD_*) < flags.
func Load(opts LoadOptions) (Config, error) {
	v := viper.New()
	setDefaults(v)

	projectDir := opts.ProjectDir
	if projectDir == "" {
		if cwd, err := os.Getwd(); err == nil {
			projectDir = cwd
		}
	}

	// 1) User config
	if err := mergeConfigFile(v, opts.userPath()); err != nil {
		return Config{}, err
	}
	// 2) Project config
	if err := mergeConfigFile(v, projectConfigPath(projectDir, opts.ConfigPath)); err != nil {
		return Config{}, err
	}
	// 3) Environment variables
	if err := applyEnvOverrides(v); err != nil {
		return Config{}, err
	}
	// 4) CLI flags (highest)
	applyFlagOverrides(v, opts.FlagOverrides)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// setDefaults seeds viper with built-in defaults.
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()

	v.SetDefault("general.log_level", def.General.LogLevel)

	v.SetDefault("mask.file_patterns", def.Mask.FilePatterns)
	v.SetDefault("mask.hide_values", def.Mask.HideValues)
	v.SetDefault("mask.mask_char", def.Mask.MaskChar)

	v.SetDefault("watch.enabled", def.Watch.Enabled)
	v.SetDefault("watch.debounce_ms", def.Watch.DebounceMs)

	v.SetDefault("ui.theme", def.UI.Theme)
	v.SetDefault("ui.line_numbers", def.UI.LineNumbers)
	v.SetDefault("ui.editor", def.UI.Editor)
	v.SetDefault("ui.icons", def.UI.Icons)
}

// mergeConfigFile merges the TOML config file if it exists.
func mergeConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat config %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", path)
	}
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.MergeInConfig(); err != nil {
		return fmt.Errorf("merge config %s: %w", path, err)
	}
	return nil
}

// applyEnvOverrides reads ENVGUARD_* env vars and applies them.
func applyEnvOverrides(v *viper.Viper) error {
	for _, binding := range envBindings {
		val := os.Getenv(binding.Env)
		if val == "" {
			continue
		}
		parsed, err := parseValueByKind(val, binding.Kind)
		if err != nil {
			return fmt.Errorf("env %s: %w", binding.Env, err)
		}
		v.Set(binding.Key, parsed)
	}
	return nil
}

// applyFlagOverrides applies CLI overrides as highest-precedence values.
func applyFlagOverrides(v *viper.Viper, overrides map[string]any) {
	for k, val := range overrides {
		v.Set(k, val)
	}
}

// Paths returns the user and project config file paths.
func (o LoadOptions) Paths() (string, string) {
	projectDir := o.ProjectDir
	if projectDir == "" {
		if cwd, err := os.Getwd(); err == nil {
			projectDir = cwd
		}
	}
	return o.userPath(), projectConfigPath(projectDir, o.ConfigPath)
}

func (o LoadOptions) userPath() string {
	if o.UserConfigPath != "" {
		return o.UserConfigPath
	}
	return userConfigPath()
}

func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDirName, configFileName)
}

func projectConfigPath(projectDir, override string) string {
	if override != "" {
		return override
	}
	if projectDir == "" {
		return filepath.Join(configDirName, configFileName)
	}
	return filepath.Join(projectDir, configDirName, configFileName)
}

// Keys lists every settable dot-notated key.
func Keys() []string {
	return append([]string(nil), keyOrder...)
}

// ParseValue parses a raw string into the expected type for a given config key.
func ParseValue(key, raw string) (any, error) {
	kind, ok := keyKinds[key]
	if !ok {
		return nil, fmt.Errorf("unsupported key %q", key)
	}
	return parseValueByKind(raw, kind)
}

// GetValue retrieves a dot-notated value from the Config.
func GetValue(cfg Config, key string) (any, bool) {
	switch key {
	case "general":
		return cfg.General, true
	case "general.log_level":
		return cfg.General.LogLevel, true
	case "mask":
		return cfg.Mask, true
	case "mask.file_patterns":
		return cfg.Mask.FilePatterns, true
	case "mask.hide_values":
		return cfg.Mask.HideValues, true
	case "mask.mask_char":
		return cfg.Mask.MaskChar, true
	case "watch":
		return cfg.Watch, true
	case "watch.enabled":
		return cfg.Watch.Enabled, true
	case "watch.debounce_ms":
		return cfg.Watch.DebounceMs, true
	case "ui":
		return cfg.UI, true
	case "ui.theme":
		return cfg.UI.Theme, true
	case "ui.line_numbers":
		return cfg.UI.LineNumbers, true
	case "ui.editor":
		return cfg.UI.Editor, true
	case "ui.icons":
		return cfg.UI.Icons, true
	default:
		return nil, false
	}
}

// WriteValue sets a single key/value into the specified TOML config file (creating it if needed).
func WriteValue(path, key string, value any) error {
	if path == "" {
		return fmt.Errorf("config path is empty")
	}
	var existing map[string]any
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &existing); err != nil {
			return fmt.Errorf("decode config: %w", err)
		}
		if existing == nil {
			existing = map[string]any{}
		}
	} else {
		existing = map[string]any{}
	}

	if err := setNested(existing, key, value); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(path), err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("create config %s: %w", path, err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	enc.Indent = "  "
	if err := enc.Encode(existing); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

func setNested(m map[string]any, key string, value any) error {
	parts := strings.Split(key, ".")
	if len(parts) == 0 {
		return fmt.Errorf("invalid key %q", key)
	}
	cur := m
	for i, p := range parts {
		if i == len(parts)-1 {
			cur[p] = value
			return nil
		}
		next, ok := cur[p]
		if !ok {
			child := map[string]any{}
			cur[p] = child
			cur = child
			continue
		}
		childMap, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot set %s: %s is not a table", key, strings.Join(parts[:i+1], "."))
		}
		cur = childMap
	}
	return nil
}

// Helpers for env + parsing ---------------------------------------------------

type valueKind int

const (
	kindString valueKind = iota
	kindBool
	kindInt
	kindStringSlice
)

var keyOrder = []string{
	"general.log_level",
	"mask.file_patterns",
	"mask.hide_values",
	"mask.mask_char",
	"watch.enabled",
	"watch.debounce_ms",
	"ui.theme",
	"ui.line_numbers",
	"ui.editor",
	"ui.icons",
}

var keyKinds = map[string]valueKind{
	"general.log_level": kindString,

	"mask.file_patterns": kindStringSlice,
	"mask.hide_values":   kindBool,
	"mask.mask_char":     kindString,

	"watch.enabled":     kindBool,
	"watch.debounce_ms": kindInt,

	"ui.theme":        kindString,
	"ui.line_numbers": kindBool,
	"ui.editor":       kindString,
	"ui.icons":        kindString,
}

var envBindings = []struct {
	Env  string
	Key  string
	Kind valueKind
}{
	{"ENVGUARD_LOG_LEVEL", "general.log_level", kindString},

	{"ENVGUARD_FILE_PATTERNS", "mask.file_patterns", kindStringSlice},
	{"ENVGUARD_HIDE_VALUES", "mask.hide_values", kindBool},
	{"ENVGUARD_MASK_CHAR", "mask.mask_char", kindString},

	{"ENVGUARD_WATCH", "watch.enabled", kindBool},
	{"ENVGUARD_WATCH_DEBOUNCE_MS", "watch.debounce_ms", kindInt},

	{"ENVGUARD_THEME", "ui.theme", kindString},
	{"ENVGUARD_LINE_NUMBERS", "ui.line_numbers", kindBool},
	{"ENVGUARD_EDITOR", "ui.editor", kindString},
}

func parseValueByKind(raw string, kind valueKind) (any, error) {
	switch kind {
	case kindString:
		return raw, nil
	case kindBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("expected boolean: %w", err)
		}
		return v, nil
	case kindInt:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("expected integer: %w", err)
		}
		return v, nil
	case kindStringSlice:
		parts := strings.Split(raw, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				result = append(result, p)
			}
		}
		return result, nil
	default:
		return nil, fmt.Errorf("unsupported value kind")
	}
}
