package commands

// shell command: change working directory.

import (
	"context"
	"fmt"

	"studio/internal/shell"
	"studio/internal/vfs"
)

func init() {
	shell.Register("cd", func() shell.Command { return &CdCommand{} })
}

type CdCommand struct{}

var _ shell.Command = (*CdCommand)(nil)

func (c *CdCommand) Execute(ctx context.Context, s *shell.Session, args []string) (string, error) {
	if len(args) < 2 {
		s.CWD = "/"
		return "", nil
	}
	path := vfs.Resolve(s.CWD, args[1])
	if !s.FS.IsDir(path) {
		return "", fmt.Errorf("cd: %s: No such file or directory", args[1])
	}
	s.CWD = path
	return "", nil
}

func (c *CdCommand) Help() string {
	return "usage: cd [path]\n\nChange the working directory. With no argument, returns to /."
}
