package commands

// shell command: print file contents.

import (
	"context"
	"fmt"

	"studio/internal/shell"
	"studio/internal/vfs"
)

func init() {
	shell.Register("cat", func() shell.Command { return &CatCommand{} })
}

type CatCommand struct{}

var _ shell.Command = (*CatCommand)(nil)

func (c *CatCommand) Execute(ctx context.Context, s *shell.Session, args []string) (string, error) {
	if len(args) < 2 {
		return "usage: cat <file>", nil
	}
	path := vfs.Resolve(s.CWD, args[1])
	entry, ok := s.FS.Read(path)
	if !ok {
		return "", fmt.Errorf("cat: %s: No such file or directory", args[1])
	}
	return entry.Content, nil
}

func (c *CatCommand) Help() string {
	return "usage: cat <file>\n\nPrint the contents of a file."
}
