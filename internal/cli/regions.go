package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/envguard/internal/mask"
	"github.com/Dicklesworthstone/envguard/internal/output"
)

func init() {
	regionsCmd.Flags().StringVar(&flagStdinName, "name", "", "file name used for pattern matching when reading stdin")

	rootCmd.AddCommand(regionsCmd)
}

// regionsResult is the structured form of `envguard regions`.
type regionsResult struct {
	File       string        `json:"file" yaml:"file"`
	Applies    bool          `json:"applies" yaml:"applies"`
	HideValues bool          `json:"hide_values" yaml:"hide_values"`
	Lines      int           `json:"lines" yaml:"lines"`
	Regions    []mask.Region `json:"regions" yaml:"regions"`
}

var regionsCmd = &cobra.Command{
	Use:   "regions <file|->",
	Short: "List the mask regions computed for a file",
	Long: `List every region that would be masked: the 0-indexed line, the byte
columns of the hidden span and the replacement text.

Examples:
  envguard regions .env
  envguard regions .env.test -o json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(nil)
		if err != nil {
			return err
		}
		doc, err := readDocument(cmd, args[0])
		if err != nil {
			return err
		}

		opts := cfg.MaskOptions()
		regions := mask.ComputeRegions(doc.Lines, doc.Name, opts)
		if regions == nil {
			regions = []mask.Region{}
		}
		result := regionsResult{
			File:       doc.Name,
			Applies:    mask.Applies(doc.Name, opts),
			HideValues: opts.HideValues,
			Lines:      doc.LineCount(),
			Regions:    regions,
		}

		return outputWriter(cmd).Write(result, func(w io.Writer) error {
			if !result.Applies {
				reason := "matches none of: " + joinPatterns(opts.FilePatterns)
				if !opts.HideValues {
					reason = "values are visible (hide_values = false)"
				}
				_, err := fmt.Fprintf(w, "%s: no masking (%s)\n", doc.Name, reason)
				return err
			}
			rows := make([][]string, 0, len(regions))
			for _, r := range regions {
				rows = append(rows, []string{
					strconv.Itoa(r.Line),
					strconv.Itoa(r.StartCol),
					strconv.Itoa(r.EndCol),
					strconv.Itoa(r.Len()),
					r.Replacement,
				})
			}
			if err := output.Table(w, []string{"LINE", "START", "END", "LEN", "MASK"}, rows); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "%d of %d lines masked\n", len(regions), doc.LineCount())
			return err
		})
	},
}
