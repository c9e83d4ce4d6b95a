package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the envguard version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return outputWriter(cmd).Write(map[string]string{"version": Version}, func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "envguard %s\n", Version)
			return err
		})
	},
}
