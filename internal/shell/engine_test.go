package shell

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// upperCommand is a trivial builtin for engine tests.
type upperCommand struct{}

func (c *upperCommand) Execute(ctx context.Context, s *Session, args []string) (string, error) {
	return "UPPER", nil
}

func (c *upperCommand) Help() string { return "usage: upper" }

func init() {
	Register("upper", func() Command { return &upperCommand{} })
}

func TestParseLine(t *testing.T) {
	name, args := ParseLine("  git   commit -m   hello ")
	assert.Equal(t, "git", name)
	assert.Equal(t, []string{"git", "commit", "-m", "hello"}, args)

	name, args = ParseLine("   ")
	assert.Equal(t, "", name)
	assert.Nil(t, args)
}

func TestRunUnknownCommand(t *testing.T) {
	sm := NewSessionManager()
	s := sm.CreateSession("t1")

	out := s.Run(context.Background(), "frobnicate")
	assert.Equal(t, "command not found: frobnicate", out)
}

func TestRunAppendsTranscript(t *testing.T) {
	sm := NewSessionManager()
	s := sm.CreateSession("t2")

	out := s.Run(context.Background(), "upper")
	assert.Equal(t, "UPPER", out)
	assert.Equal(t, []string{"$ upper", "UPPER"}, s.Transcript)

	// Empty input is a no-op.
	out = s.Run(context.Background(), "   ")
	assert.Equal(t, "", out)
	assert.Len(t, s.Transcript, 2)
}

func TestHistoryRecall(t *testing.T) {
	sm := NewSessionManager()
	s := sm.CreateSession("t3")
	s.Run(context.Background(), "upper")
	s.Run(context.Background(), "frobnicate")

	line, ok := s.HistoryPrev()
	require.True(t, ok)
	assert.Equal(t, "frobnicate", line)

	line, ok = s.HistoryPrev()
	require.True(t, ok)
	assert.Equal(t, "upper", line)

	_, ok = s.HistoryPrev()
	assert.False(t, ok, "nothing older")

	line, ok = s.HistoryNext()
	require.True(t, ok)
	assert.Equal(t, "frobnicate", line)

	line, ok = s.HistoryNext()
	require.True(t, ok)
	assert.Equal(t, "", line, "forward past the newest restores the prompt")
}

func TestHistoryCollapsesDuplicates(t *testing.T) {
	sm := NewSessionManager()
	s := sm.CreateSession("t4")
	s.Run(context.Background(), "upper")
	s.Run(context.Background(), "upper")
	assert.Equal(t, []string{"upper"}, s.History)
}

func TestCreateSessionIsIdempotent(t *testing.T) {
	sm := NewSessionManager()
	a := sm.CreateSession("same")
	b := sm.CreateSession("same")
	assert.Same(t, a, b)

	c := sm.CreateSession("")
	assert.NotEmpty(t, c.ID)
	got, ok := sm.GetSession(c.ID)
	require.True(t, ok)
	assert.Same(t, c, got)
}
