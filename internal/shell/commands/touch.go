package commands

// shell command: create an empty file.

import (
	"context"
	"fmt"

	"studio/internal/shell"
	"studio/internal/vfs"
)

func init() {
	shell.Register("touch", func() shell.Command { return &TouchCommand{} })
}

type TouchCommand struct{}

var _ shell.Command = (*TouchCommand)(nil)

func (c *TouchCommand) Execute(ctx context.Context, s *shell.Session, args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("touch: missing operand")
	}
	path := vfs.Resolve(s.CWD, args[1])
	if s.FS.IsDir(path) {
		return "", fmt.Errorf("touch: %s: Is a directory", args[1])
	}
	if _, ok := s.FS.Read(path); !ok {
		s.FS.Write(path, "", vfs.DetectLanguage(path))
	}
	return "", nil
}

func (c *TouchCommand) Help() string {
	return "usage: touch <file>\n\nCreate an empty file if it does not exist."
}
