// Package complete implements tab completion over the simulated
// namespace. The engine works on a raw input line: the text after the
// last whitespace is the seed, candidates come from the command table,
// the git subcommand table or the directory implied by the seed, and
// any of them may replace the seed in place.
package complete

import (
	"sort"
	"strings"
	"time"

	"studio/internal/vfs"
)

// Window is how soon a second completion press counts as a repeat press
// and lists candidates instead of editing the line.
const Window = 500 * time.Millisecond

// Context carries everything one completion press needs.
type Context struct {
	Line           string
	CWD            string
	FS             *vfs.FS
	Commands       []string
	GitSubcommands []string
}

// Result of one completion press. Line is the (possibly rewritten)
// input; Candidates is non-nil only when a repeat press asked for the
// full listing.
type Result struct {
	Line       string   `json:"line"`
	Candidates []string `json:"candidates,omitempty"`
}

// Engine holds the repeat-press timer for one input field.
type Engine struct {
	lastPress time.Time
	now       func() time.Time
}

func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// Reset clears the repeat window; call it for every non-completion key.
func (e *Engine) Reset() {
	e.lastPress = time.Time{}
}

// Complete handles one completion key press.
func (e *Engine) Complete(ctx Context) Result {
	repeat := !e.lastPress.IsZero() && e.now().Sub(e.lastPress) <= Window

	head, seed := splitLast(ctx.Line)
	prefix, partial := "", seed
	var pool []string

	switch {
	case strings.TrimSpace(head) == "":
		pool = ctx.Commands
	case isGitContext(head):
		pool = ctx.GitSubcommands
	default:
		if i := strings.LastIndex(seed, "/"); i >= 0 {
			prefix, partial = seed[:i+1], seed[i+1:]
		}
		dir := vfs.Resolve(ctx.CWD, prefix)
		pool, _ = ctx.FS.List(dir)
	}

	var matches []string
	for _, c := range pool {
		if strings.HasPrefix(c, partial) {
			matches = append(matches, c)
		}
	}
	sort.Strings(matches)

	switch len(matches) {
	case 0:
		e.Reset()
		return Result{Line: ctx.Line}
	case 1:
		e.Reset()
		m := matches[0]
		line := head + prefix + m
		if !strings.HasSuffix(m, "/") {
			line += " "
		}
		return Result{Line: line}
	}

	if repeat {
		e.lastPress = e.now()
		return Result{Line: ctx.Line, Candidates: matches}
	}

	e.lastPress = e.now()
	if lcp := commonPrefix(matches); len(lcp) > len(partial) {
		return Result{Line: head + prefix + lcp}
	}
	return Result{Line: ctx.Line}
}

// splitLast cuts the line at the final whitespace run, returning the
// untouched head (whitespace included) and the completion seed.
func splitLast(line string) (head, seed string) {
	i := strings.LastIndexAny(line, " \t")
	if i < 0 {
		return "", line
	}
	return line[:i+1], line[i+1:]
}

// isGitContext reports whether the seed is the second token of a git
// invocation.
func isGitContext(head string) bool {
	fields := strings.Fields(head)
	return len(fields) == 1 && fields[0] == "git"
}

func commonPrefix(ss []string) string {
	p := ss[0]
	for _, s := range ss[1:] {
		for !strings.HasPrefix(s, p) {
			p = p[:len(p)-1]
		}
	}
	return p
}
