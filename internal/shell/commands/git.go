package commands

// git command: dispatches subcommands into the version-control model.

import (
	"context"
	"fmt"
	"strings"

	"studio/internal/shell"
	"studio/internal/vfs"
)

func init() {
	shell.Register("git", func() shell.Command { return &GitCommand{} })
}

type GitCommand struct{}

var _ shell.Command = (*GitCommand)(nil)

func (c *GitCommand) Execute(ctx context.Context, s *shell.Session, args []string) (string, error) {
	if len(args) < 2 {
		return c.Help(), nil
	}
	sub := args[1]
	rest := args[2:]

	if sub != "init" && !s.Repo.Initialized {
		return "", fmt.Errorf("fatal: not a git repository (or any of the parent directories): .git")
	}

	switch sub {
	case "init":
		return s.Repo.Init(), nil

	case "add":
		if len(rest) == 0 {
			return "", fmt.Errorf("Nothing specified, nothing added.")
		}
		for _, spec := range rest {
			target := spec
			if spec != "." {
				target = vfs.Resolve(s.CWD, spec)
			}
			if err := s.Repo.Add(s.FS, target); err != nil {
				return "", fmt.Errorf("fatal: pathspec '%s' did not match any files", spec)
			}
		}
		return "", nil

	case "commit":
		message, err := commitMessage(rest)
		if err != nil {
			return "", err
		}
		return s.Repo.Commit(s.FS, message)

	case "log":
		return s.Repo.Log(), nil

	case "branch":
		if len(rest) == 0 {
			return s.Repo.ListBranches(), nil
		}
		if err := s.Repo.CreateBranch(rest[0]); err != nil {
			return "", err
		}
		return "", nil

	case "checkout":
		if len(rest) == 0 {
			return "", fmt.Errorf("usage: git checkout <branch>")
		}
		return s.Repo.Checkout(s.FS, rest[0])

	case "rebase":
		if len(rest) == 0 {
			return "", fmt.Errorf("usage: git rebase <branch>")
		}
		return s.Repo.Rebase(s.FS, rest[0])

	case "stash":
		return c.stash(s, rest)

	case "status":
		return s.Repo.Status(s.FS), nil
	}

	return "", fmt.Errorf("git: '%s' is not a git command. See 'help git'", sub)
}

func (c *GitCommand) stash(s *shell.Session, rest []string) (string, error) {
	op := "push"
	if len(rest) > 0 {
		op = rest[0]
	}
	switch op {
	case "push":
		return s.Repo.StashPush(s.FS)
	case "list":
		return s.Repo.StashList(), nil
	case "pop":
		return s.Repo.StashPop(s.FS)
	case "apply":
		return s.Repo.StashApply(s.FS)
	}
	return "", fmt.Errorf("git stash: '%s' is not a stash subcommand", op)
}

// commitMessage extracts the -m message. The line tokenizer split on
// whitespace, so the quoted message is re-joined here and its quotes
// stripped.
func commitMessage(rest []string) (string, error) {
	for i, tok := range rest {
		if tok == "-m" {
			msg := strings.TrimSpace(strings.Join(rest[i+1:], " "))
			msg = strings.Trim(msg, `"'`)
			if msg == "" {
				return "", fmt.Errorf("error: switch 'm' requires a value")
			}
			return msg, nil
		}
	}
	return "", fmt.Errorf("usage: git commit -m \"<message>\"")
}

func (c *GitCommand) Help() string {
	return `usage: git <subcommand> [args]

Subcommands:
  init                    Initialize the repository
  add <path|.>            Stage files for the next commit
  commit -m "<message>"   Record the staged changes
  log                     Show commit history
  branch [name]           List branches, or create one
  checkout <branch>       Switch branches (replaces the working tree)
  rebase <branch>         Replay this branch's commits onto another
  stash [list|pop|apply]  Shelve or restore working-tree changes
  status                  Show the working tree status`
}
