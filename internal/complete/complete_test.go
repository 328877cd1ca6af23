package complete

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"studio/internal/vfs"
)

var testCommands = []string{"cat", "cd", "clear", "git", "help", "ls", "mkdir", "rm"}
var testSubcommands = []string{"add", "branch", "checkout", "commit", "init", "log", "rebase", "stash", "status"}

func testFS() *vfs.FS {
	fs := vfs.New()
	fs.Write("src/index.js", "", "javascript")
	fs.Write("src/app.js", "", "javascript")
	fs.Write("README.md", "", "markdown")
	return fs
}

func testCtx(line string) Context {
	return Context{
		Line:           line,
		CWD:            "/",
		FS:             testFS(),
		Commands:       testCommands,
		GitSubcommands: testSubcommands,
	}
}

// clock is a controllable time source for the repeat window.
type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestEngine() (*Engine, *clock) {
	c := &clock{t: time.Unix(1000, 0)}
	e := NewEngine()
	e.now = c.now
	return e, c
}

func TestCompleteCommandName(t *testing.T) {
	e, _ := newTestEngine()
	got := e.Complete(testCtx("mk"))
	if got.Line != "mkdir " {
		t.Errorf("got %q, want %q", got.Line, "mkdir ")
	}
}

func TestCompleteGitSubcommand(t *testing.T) {
	e, _ := newTestEngine()
	got := e.Complete(testCtx("git reb"))
	if got.Line != "git rebase " {
		t.Errorf("got %q, want %q", got.Line, "git rebase ")
	}
}

func TestCompleteUniquePathAddsSpace(t *testing.T) {
	e, _ := newTestEngine()
	got := e.Complete(testCtx("cat src/i"))
	if got.Line != "cat src/index.js " {
		t.Errorf("got %q, want %q", got.Line, "cat src/index.js ")
	}
	if got.Candidates != nil {
		t.Errorf("unique match should not list candidates")
	}
}

func TestCompleteDirectoryNoTrailingSpace(t *testing.T) {
	e, _ := newTestEngine()
	got := e.Complete(testCtx("ls sr"))
	if got.Line != "ls src/" {
		t.Errorf("got %q, want %q; chained completion needs no space", got.Line, "ls src/")
	}
}

func TestCompleteCommonPrefixExtension(t *testing.T) {
	e, _ := newTestEngine()
	// cd and clear share "c" with cat; seed "c" extends to... nothing
	// beyond "c" (cat/cd/clear diverge immediately), so the line stays.
	got := e.Complete(testCtx("c"))
	if got.Line != "c" {
		t.Errorf("got %q, want unchanged line", got.Line)
	}

	// "git s" extends to the common prefix "sta" of stash/status.
	e2, _ := newTestEngine()
	got = e2.Complete(testCtx("git st"))
	if got.Line != "git sta" {
		t.Errorf("got %q, want %q", got.Line, "git sta")
	}
}

func TestDoublePressListsCandidates(t *testing.T) {
	e, c := newTestEngine()

	first := e.Complete(testCtx("cat src/"))
	if first.Line != "cat src/" || first.Candidates != nil {
		t.Fatalf("first press should arm the window without listing, got %+v", first)
	}

	c.advance(100 * time.Millisecond)
	second := e.Complete(testCtx("cat src/"))
	want := []string{"app.js", "index.js"}
	if diff := cmp.Diff(want, second.Candidates); diff != "" {
		t.Errorf("candidates mismatch (-want +got):\n%s", diff)
	}
	if second.Line != "cat src/" {
		t.Errorf("listing must not modify the line, got %q", second.Line)
	}
}

func TestSlowSecondPressDoesNotList(t *testing.T) {
	e, c := newTestEngine()
	e.Complete(testCtx("cat src/"))
	c.advance(2 * time.Second)

	got := e.Complete(testCtx("cat src/"))
	if got.Candidates != nil {
		t.Errorf("window expired; should re-arm instead of listing")
	}
}

func TestResetDisarmsWindow(t *testing.T) {
	e, c := newTestEngine()
	e.Complete(testCtx("cat src/"))
	e.Reset() // any non-completion key
	c.advance(100 * time.Millisecond)

	got := e.Complete(testCtx("cat src/"))
	if got.Candidates != nil {
		t.Errorf("reset window must not list on the next press")
	}
}

func TestZeroMatchesNoop(t *testing.T) {
	e, _ := newTestEngine()
	got := e.Complete(testCtx("cat zzz"))
	if got.Line != "cat zzz" || got.Candidates != nil {
		t.Errorf("zero matches must leave the line untouched, got %+v", got)
	}
}

func TestCompleteEmptySeedListsDirectory(t *testing.T) {
	e, c := newTestEngine()
	e.Complete(testCtx("cat "))
	c.advance(50 * time.Millisecond)
	got := e.Complete(testCtx("cat "))
	want := []string{"README.md", "src/"}
	if diff := cmp.Diff(want, got.Candidates); diff != "" {
		t.Errorf("candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestCompleteRelativeToCwd(t *testing.T) {
	e, _ := newTestEngine()
	ctx := testCtx("cat i")
	ctx.CWD = "/src"
	got := e.Complete(ctx)
	if got.Line != "cat index.js " {
		t.Errorf("got %q, want %q", got.Line, "cat index.js ")
	}
}
