package commands

// shell command: wipe the transcript. The only command that replaces
// the transcript instead of appending to it.

import (
	"context"

	"studio/internal/shell"
)

func init() {
	shell.Register("clear", func() shell.Command { return &ClearCommand{} })
}

type ClearCommand struct{}

var _ shell.Command = (*ClearCommand)(nil)

func (c *ClearCommand) Execute(ctx context.Context, s *shell.Session, args []string) (string, error) {
	s.Transcript = nil
	return "", nil
}

func (c *ClearCommand) Help() string {
	return "usage: clear\n\nClear the terminal transcript."
}
