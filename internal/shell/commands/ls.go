package commands

// shell command: list directory contents.

import (
	"context"
	"fmt"
	"strings"

	"studio/internal/shell"
	"studio/internal/vfs"
)

func init() {
	shell.Register("ls", func() shell.Command { return &LsCommand{} })
}

type LsCommand struct{}

var _ shell.Command = (*LsCommand)(nil)

func (c *LsCommand) Execute(ctx context.Context, s *shell.Session, args []string) (string, error) {
	operands := args[1:]
	if len(operands) == 0 {
		operands = []string{""}
	}
	var blocks []string
	for _, target := range operands {
		entries, ok := s.FS.List(vfs.Resolve(s.CWD, target))
		if !ok {
			arg := target
			if arg == "" {
				arg = s.CWD
			}
			blocks = append(blocks, fmt.Sprintf("ls: %s: No such file or directory", arg))
			continue
		}
		listing := strings.Join(entries, "\n")
		if len(operands) > 1 {
			listing = target + ":\n" + listing
		}
		blocks = append(blocks, listing)
	}
	return strings.Join(blocks, "\n\n"), nil
}

func (c *LsCommand) Help() string {
	return "usage: ls [path...]\n\nList directory contents. Directories carry a trailing slash."
}
