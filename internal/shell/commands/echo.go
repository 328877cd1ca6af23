package commands

// shell command: print arguments, with > and >> redirection into the
// simulated filesystem. This is the shell's file-write path.

import (
	"context"
	"fmt"
	"strings"

	"studio/internal/shell"
	"studio/internal/vfs"
)

func init() {
	shell.Register("echo", func() shell.Command { return &EchoCommand{} })
}

type EchoCommand struct{}

var _ shell.Command = (*EchoCommand)(nil)

func (c *EchoCommand) Execute(ctx context.Context, s *shell.Session, args []string) (string, error) {
	words := args[1:]

	redirect, target := "", ""
	for i, w := range words {
		if w == ">" || w == ">>" {
			if i+1 >= len(words) {
				return "", fmt.Errorf("sh: syntax error near unexpected token 'newline'")
			}
			redirect, target = w, words[i+1]
			words = words[:i]
			break
		}
	}

	text := strings.Trim(strings.Join(words, " "), `"'`)
	if redirect == "" {
		return text, nil
	}

	path := vfs.Resolve(s.CWD, target)
	if s.FS.IsDir(path) {
		return "", fmt.Errorf("sh: %s: Is a directory", target)
	}
	if redirect == ">>" {
		if prev, ok := s.FS.Read(path); ok {
			text = prev.Content + "\n" + text
		}
	}
	s.FS.Write(path, text, vfs.DetectLanguage(path))
	return "", nil
}

func (c *EchoCommand) Help() string {
	return "usage: echo <text> [> file | >> file]\n\nPrint text, or redirect it into a file."
}
