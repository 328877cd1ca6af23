package commands

// shell command: print working directory.

import (
	"context"

	"studio/internal/shell"
)

func init() {
	shell.Register("pwd", func() shell.Command { return &PwdCommand{} })
}

type PwdCommand struct{}

var _ shell.Command = (*PwdCommand)(nil)

func (c *PwdCommand) Execute(ctx context.Context, s *shell.Session, args []string) (string, error) {
	return s.CWD, nil
}

func (c *PwdCommand) Help() string {
	return "usage: pwd\n\nPrint the current working directory."
}
