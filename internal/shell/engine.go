package shell

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Command is one shell builtin. Execute returns the output line(s) for
// the transcript; user-facing failures come back as errors whose text
// follows conventional shell phrasing.
type Command interface {
	Execute(ctx context.Context, s *Session, args []string) (string, error)
	Help() string
}

// Factory creates a fresh command instance per dispatch.
type Factory func() Command

var registry = make(map[string]Factory)

// Register adds a command factory; called from init() in the commands
// package.
func Register(name string, factory Factory) {
	registry[name] = factory
}

// Commands returns the registered command names, sorted.
func Commands() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the factory for a command name.
func Lookup(name string) (Factory, bool) {
	f, ok := registry[name]
	return f, ok
}

// ParseLine splits one input line into a command name and argument
// vector. args[0] is the command name itself; there is no flag parsing
// beyond what individual commands recognize literally.
func ParseLine(input string) (string, []string) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return "", nil
	}
	return parts[0], parts
}

// Dispatch runs a parsed command against the session. Unknown names are
// a user error, not a failure of the engine.
func Dispatch(ctx context.Context, s *Session, name string, args []string) (string, error) {
	factory, ok := registry[name]
	if !ok {
		return "", fmt.Errorf("command not found: %s", name)
	}
	return factory().Execute(ctx, s, args)
}

// Run executes one raw input line to completion: the echoed invocation
// is appended to the transcript, then the output (or the error text)
// when non-empty. clear is the one command that replaces the transcript
// instead of appending. The returned string is what the caller shows
// for this invocation.
func (s *Session) Run(ctx context.Context, line string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}
	s.recordHistory(line)
	s.Completer.Reset()
	s.Transcript = append(s.Transcript, "$ "+line)

	name, args := ParseLine(line)
	out, err := Dispatch(ctx, s, name, args)
	if err != nil {
		out = err.Error()
	}
	if out != "" {
		s.Transcript = append(s.Transcript, out)
	}
	return out
}
