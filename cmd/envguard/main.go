// Command envguard masks the values in environment files for display.
package main

import (
	"os"

	"github.com/Dicklesworthstone/envguard/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
