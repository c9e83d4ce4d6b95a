package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/envguard/internal/mask"
	"github.com/Dicklesworthstone/envguard/internal/render"
	"github.com/Dicklesworthstone/envguard/internal/tui/theme"
	"github.com/Dicklesworthstone/envguard/internal/utils"
)

var (
	flagShowReveal      bool
	flagShowNoColor     bool
	flagShowLineNumbers bool
)

func init() {
	showCmd.Flags().StringVar(&flagStdinName, "name", "", "file name used for pattern matching when reading stdin")
	showCmd.Flags().BoolVar(&flagShowReveal, "reveal", false, "show values for this invocation only")
	showCmd.Flags().BoolVar(&flagShowNoColor, "no-color", false, "disable colors even on a terminal")
	showCmd.Flags().BoolVarP(&flagShowLineNumbers, "line-numbers", "n", false, "prefix lines with their number")

	rootCmd.AddCommand(showCmd)
}

// showResult is the structured form of `envguard show`.
type showResult struct {
	File    string   `json:"file" yaml:"file"`
	Masked  bool     `json:"masked" yaml:"masked"`
	Regions int      `json:"regions" yaml:"regions"`
	Lines   []string `json:"lines" yaml:"lines"`
}

var showCmd = &cobra.Command{
	Use:   "show <file|->",
	Short: "Print a file with its values masked",
	Long: `Print a file with the value of every KEY=VALUE line replaced by asterisks.

Files that match none of the configured patterns are printed unchanged.

Examples:
  envguard show .env
  envguard show --reveal .env.production
  cat .env.local | envguard show - --name .env.local`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var extra map[string]any
		if flagShowReveal {
			extra = map[string]any{"mask.hide_values": false}
		}
		cfg, err := loadConfig(extra)
		if err != nil {
			return err
		}

		doc, err := readDocument(cmd, args[0])
		if err != nil {
			return err
		}

		opts := cfg.MaskOptions()
		regions := mask.ComputeRegions(doc.Lines, doc.Name, opts)
		if !mask.MatchesFile(doc.Name, opts.FilePatterns) {
			utils.Debug("file matches no pattern, printing unmasked", "file", doc.Name, "patterns", opts.FilePatterns)
		}

		painted := render.NewRenderer(cfg.Mask.MaskChar)
		painted.Set(doc, regions)

		out := outputWriter(cmd)
		result := showResult{
			File:    doc.Name,
			Masked:  mask.Applies(doc.Name, opts),
			Regions: len(regions),
			Lines:   painted.Lines(),
		}
		return out.Write(result, func(w io.Writer) error {
			styled := &render.Styled{
				Theme:       theme.ForFlavor(cfg.UI.Theme),
				MaskChar:    cfg.Mask.MaskChar,
				LineNumbers: flagShowLineNumbers,
				Plain:       flagShowNoColor || !isTerminal(w),
			}
			text := styled.Render(doc.Lines, regions)
			if text == "" {
				return nil
			}
			_, err := fmt.Fprintln(w, strings.TrimRight(text, "\n"))
			return err
		})
	},
}
