package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/envguard/internal/mask"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

// statusResult is the structured form of `envguard status`.
type statusResult struct {
	HideValues    bool     `json:"hide_values" yaml:"hide_values"`
	FilePatterns  []string `json:"file_patterns" yaml:"file_patterns"`
	UserConfig    string   `json:"user_config" yaml:"user_config"`
	ProjectConfig string   `json:"project_config" yaml:"project_config"`
	File          string   `json:"file,omitempty" yaml:"file,omitempty"`
	FileMatches   *bool    `json:"file_matches,omitempty" yaml:"file_matches,omitempty"`
}

var statusCmd = &cobra.Command{
	Use:   "status [file]",
	Short: "Show whether values are hidden and which files are masked",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := loadOptions(nil)
		cfg, err := loadConfig(nil)
		if err != nil {
			return err
		}
		userPath, projectPath := opts.Paths()

		res := statusResult{
			HideValues:    cfg.Mask.HideValues,
			FilePatterns:  cfg.Mask.FilePatterns,
			UserConfig:    userPath,
			ProjectConfig: projectPath,
		}
		if len(args) == 1 {
			matches := mask.MatchesFile(args[0], cfg.Mask.FilePatterns)
			res.File = filepath.Base(args[0])
			res.FileMatches = &matches
		}

		return outputWriter(cmd).Write(res, func(w io.Writer) error {
			fmt.Fprintf(w, "Values:   %s\n", boolWord(res.HideValues, "hidden", "visible"))
			fmt.Fprintf(w, "Patterns: %s\n", joinPatterns(res.FilePatterns))
			fmt.Fprintf(w, "User:     %s\n", res.UserConfig)
			fmt.Fprintf(w, "Project:  %s\n", res.ProjectConfig)
			if res.FileMatches != nil {
				_, err := fmt.Fprintf(w, "File:     %s (%s)\n", res.File, boolWord(*res.FileMatches, "masked", "not masked"))
				return err
			}
			return nil
		})
	},
}
