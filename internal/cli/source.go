package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/envguard/internal/document"
)

var flagStdinName string

// readDocument loads the file named by arg, or stdin when arg is "-".
func readDocument(cmd *cobra.Command, arg string) (*document.Document, error) {
	if arg != "-" {
		return document.Load(arg)
	}
	if flagStdinName == "" {
		return nil, fmt.Errorf("--name is required when reading from stdin")
	}
	in := cmd.InOrStdin()
	if in == nil {
		in = os.Stdin
	}
	return document.Read(in, flagStdinName)
}
