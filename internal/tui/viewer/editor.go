package viewer

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/mattn/go-shellwords"
)

const fallbackEditor = "vi"

// EditorCommand builds the command that opens path in the user's editor.
// The editor setting may carry arguments, e.g. "code --wait".
// Resolution order: configured, $VISUAL, $EDITOR, vi.
func EditorCommand(configured, path string) (*exec.Cmd, error) {
	line := configured
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if line != "" {
			break
		}
		line = os.Getenv(env)
	}
	if line == "" {
		line = fallbackEditor
	}

	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("parse editor command %q: %w", line, err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("editor command is empty")
	}
	args = append(args, path)
	return exec.Command(args[0], args[1:]...), nil
}
