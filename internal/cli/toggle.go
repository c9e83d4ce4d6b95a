package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/envguard/internal/config"
	"github.com/Dicklesworthstone/envguard/internal/utils"
)

func init() {
	rootCmd.AddCommand(toggleCmd)
}

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Toggle between hidden and visible values",
	Long: `Flip mask.hide_values and save it in the user config
(~/.envguard/config.toml). Running viewers pick the change up immediately.

A project config, ENVGUARD_HIDE_VALUES or a flag can still pin the value;
the command reports when that happens.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := config.Toggle(loadOptions(nil))
		if err != nil {
			return err
		}
		utils.Info("toggled visibility", "hide_values", res.HideValues, "path", res.Path)

		return outputWriter(cmd).Write(res, func(w io.Writer) error {
			if _, err := fmt.Fprintf(w, "Values are now %s\n", boolWord(res.Effective, "hidden", "visible")); err != nil {
				return err
			}
			if res.Effective != res.HideValues {
				_, err := fmt.Fprintf(w, "note: saved hide_values = %t to %s, but a project config, environment variable or flag overrides it\n",
					res.HideValues, res.Path)
				return err
			}
			return nil
		})
	},
}
