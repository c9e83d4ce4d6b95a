package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/envguard/internal/config"
)

var flagConfigSetProject bool

func init() {
	configSetCmd.Flags().BoolVar(&flagConfigSetProject, "project", false, "write to the project config instead of the user config")

	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and write envguard settings",
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the effective value of a setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(nil)
		if err != nil {
			return err
		}
		val, ok := config.GetValue(cfg, args[0])
		if !ok {
			return unknownKeyError(args[0])
		}
		return outputWriter(cmd).Write(map[string]any{args[0]: val}, func(w io.Writer) error {
			_, err := fmt.Fprintln(w, val)
			return err
		})
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Persist a setting",
	Long: `Persist a setting in the user config, or the project config with --project.

Examples:
  envguard config set mask.file_patterns ".env,.env.*,*.secrets"
  envguard config set ui.theme latte
  envguard config set --project mask.hide_values true`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, raw := args[0], args[1]
		if _, ok := config.GetValue(config.DefaultConfig(), key); !ok {
			return unknownKeyError(key)
		}
		val, err := config.ParseValue(key, raw)
		if err != nil {
			return err
		}

		opts := loadOptions(nil)
		userPath, projectPath := opts.Paths()
		path := userPath
		if flagConfigSetProject {
			path = projectPath
		}

		// Validate against a copy before touching the file.
		candidate := opts
		candidate.FlagOverrides = map[string]any{key: val}
		if _, err := config.Load(candidate); err != nil {
			return err
		}
		if err := config.WriteValue(path, key, val); err != nil {
			return err
		}

		return outputWriter(cmd).Write(map[string]any{"key": key, "value": val, "path": path}, func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "%s = %v (%s)\n", key, val, path)
			return err
		})
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file locations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		userPath, projectPath := loadOptions(nil).Paths()
		return outputWriter(cmd).Write(map[string]string{"user": userPath, "project": projectPath}, func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "user:    %s\nproject: %s\n", userPath, projectPath)
			return err
		})
	},
}

func unknownKeyError(key string) error {
	return fmt.Errorf("unknown key %q (known keys: %s)", key, strings.Join(config.Keys(), ", "))
}
