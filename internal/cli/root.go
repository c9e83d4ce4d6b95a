// Package cli implements the envguard command line.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Dicklesworthstone/envguard/internal/config"
	"github.com/Dicklesworthstone/envguard/internal/output"
	"github.com/Dicklesworthstone/envguard/internal/utils"
)

var (
	flagConfig     string
	flagProjectDir string
	flagPatterns   []string
	flagLogLevel   string
	flagOutput     string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "project config file (default .envguard/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&flagProjectDir, "project-dir", "C", "", "project directory (default current directory)")
	rootCmd.PersistentFlags().StringSliceVarP(&flagPatterns, "patterns", "p", nil, "file patterns to mask, comma separated (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug|info|warn|error")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "text", "output format: text|json|yaml")
}

var rootCmd = &cobra.Command{
	Use:   "envguard",
	Short: "Hide the values in environment files while they are on screen",
	Long: `envguard masks the value part of KEY=VALUE lines in environment files
(.env, .env.* by default) so secrets are not exposed while screen-sharing.

The file on disk is never modified; only what is shown is masked.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagLogLevel != "" {
			utils.SetLevel(flagLogLevel)
		}
		if _, err := output.ParseFormat(flagOutput); err != nil {
			return err
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}
	format, _ := output.ParseFormat(flagOutput)
	if format.IsStructured() {
		_ = output.New(format, rootCmd.OutOrStdout()).WriteError(err, 1)
	} else {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

// loadOptions builds config load options from global flags plus extra
// per-command overrides.
func loadOptions(extra map[string]any) config.LoadOptions {
	overrides := map[string]any{}
	if len(flagPatterns) > 0 {
		overrides["mask.file_patterns"] = flagPatterns
	}
	if flagLogLevel != "" {
		overrides["general.log_level"] = flagLogLevel
	}
	for k, v := range extra {
		overrides[k] = v
	}
	return config.LoadOptions{
		ProjectDir:    flagProjectDir,
		ConfigPath:    flagConfig,
		FlagOverrides: overrides,
	}
}

// loadConfig loads the effective configuration and applies its log level
// unless the flag or environment already chose one.
func loadConfig(extra map[string]any) (config.Config, error) {
	cfg, err := config.Load(loadOptions(extra))
	if err != nil {
		return config.Config{}, err
	}
	if flagLogLevel == "" && os.Getenv(utils.LogLevelEnv) == "" {
		utils.SetLevel(cfg.General.LogLevel)
	}
	return cfg, nil
}

func outputWriter(cmd *cobra.Command) *output.Writer {
	format, err := output.ParseFormat(flagOutput)
	if err != nil {
		format = output.FormatText
	}
	return output.New(format, cmd.OutOrStdout())
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func boolWord(b bool, yes, no string) string {
	if b {
		return yes
	}
	return no
}

func joinPatterns(p []string) string {
	if len(p) == 0 {
		return "(none)"
	}
	return strings.Join(p, ", ")
}
