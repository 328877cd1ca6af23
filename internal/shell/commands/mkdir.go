package commands

// shell command: create a directory.

import (
	"context"
	"errors"
	"fmt"

	"studio/internal/shell"
	"studio/internal/vfs"
)

func init() {
	shell.Register("mkdir", func() shell.Command { return &MkdirCommand{} })
}

type MkdirCommand struct{}

var _ shell.Command = (*MkdirCommand)(nil)

func (c *MkdirCommand) Execute(ctx context.Context, s *shell.Session, args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("mkdir: missing operand")
	}
	path := vfs.Resolve(s.CWD, args[1])
	if err := s.FS.Mkdir(path); err != nil {
		if errors.Is(err, vfs.ErrExist) {
			return "", fmt.Errorf("mkdir: cannot create directory '%s': File exists", args[1])
		}
		return "", err
	}
	return "", nil
}

func (c *MkdirCommand) Help() string {
	return "usage: mkdir <directory>\n\nCreate an empty directory."
}
