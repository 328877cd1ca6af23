package commands

// shell command: remove a file or directory tree.

import (
	"context"
	"fmt"
	"strings"

	"studio/internal/shell"
	"studio/internal/vfs"
)

func init() {
	shell.Register("rm", func() shell.Command { return &RmCommand{} })
}

type RmCommand struct{}

var _ shell.Command = (*RmCommand)(nil)

func (c *RmCommand) Execute(ctx context.Context, s *shell.Session, args []string) (string, error) {
	// Tolerate habitual -r/-rf; removal is always recursive here.
	operands := args[1:]
	for len(operands) > 0 && strings.HasPrefix(operands[0], "-") {
		operands = operands[1:]
	}
	if len(operands) == 0 {
		return "", fmt.Errorf("rm: missing operand")
	}
	var missing []string
	for _, op := range operands {
		if !s.FS.Delete(vfs.Resolve(s.CWD, op)) {
			missing = append(missing, fmt.Sprintf("rm: %s: No such file or directory", op))
		}
	}
	return strings.Join(missing, "\n"), nil
}

func (c *RmCommand) Help() string {
	return "usage: rm [-r] <path>...\n\nRemove files, or directories and everything under them."
}
