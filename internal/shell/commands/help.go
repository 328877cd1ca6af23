package commands

// shell command: list available commands or show one command's help.

import (
	"context"
	"strings"

	"studio/internal/shell"
)

func init() {
	shell.Register("help", func() shell.Command { return &HelpCommand{} })
}

type HelpCommand struct{}

var _ shell.Command = (*HelpCommand)(nil)

func (c *HelpCommand) Execute(ctx context.Context, s *shell.Session, args []string) (string, error) {
	if len(args) > 1 {
		if factory, ok := shell.Lookup(args[1]); ok {
			return factory().Help(), nil
		}
		return "help: no help topics match '" + args[1] + "'", nil
	}
	var sb strings.Builder
	sb.WriteString("Available commands:\n")
	for _, name := range shell.Commands() {
		sb.WriteString("  " + name + "\n")
	}
	sb.WriteString("Type 'help <command>' for details.")
	return sb.String(), nil
}

func (c *HelpCommand) Help() string {
	return "usage: help [command]\n\nList commands, or show help for one of them."
}
