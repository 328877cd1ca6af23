// Package repl is a terminal front end for a Studio session: a prompt
// with tab completion (double-Tab lists candidates), Up/Down history
// recall and the running transcript.
package repl

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"studio/internal/shell"
)

var (
	promptStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	candidateStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	transcriptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	headerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
)

// Model is the bubbletea model for the REPL.
type Model struct {
	session    *shell.Session
	input      textinput.Model
	candidates []string
	height     int
}

func New(session *shell.Session) Model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render("$ ")
	ti.Focus()
	ti.CharLimit = 512
	return Model{session: session, input: ti}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			return m, tea.Quit

		case tea.KeyTab:
			m.session.Lock()
			result := m.session.Complete(m.input.Value())
			m.session.Unlock()
			m.candidates = result.Candidates
			m.input.SetValue(result.Line)
			m.input.CursorEnd()
			return m, nil

		case tea.KeyUp:
			m.session.Lock()
			line, ok := m.session.HistoryPrev()
			m.session.Unlock()
			if ok {
				m.input.SetValue(line)
				m.input.CursorEnd()
			}
			return m, nil

		case tea.KeyDown:
			m.session.Lock()
			line, ok := m.session.HistoryNext()
			m.session.Unlock()
			if ok {
				m.input.SetValue(line)
				m.input.CursorEnd()
			}
			return m, nil

		case tea.KeyEnter:
			line := m.input.Value()
			m.candidates = nil
			m.input.SetValue("")
			if strings.TrimSpace(line) == "exit" {
				return m, tea.Quit
			}
			m.session.Run(context.Background(), line)
			return m, nil
		}

		// Any other key ends the repeat-press window.
		m.candidates = nil
		m.session.Completer.Reset()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("studio — simulated shell ('exit' or ctrl+c to quit)"))
	sb.WriteString("\n\n")

	m.session.RLock()
	transcript := m.session.Transcript
	m.session.RUnlock()

	lines := transcript
	if max := m.height - 6; max > 0 && len(lines) > max {
		lines = lines[len(lines)-max:]
	}
	for _, line := range lines {
		sb.WriteString(transcriptStyle.Render(line))
		sb.WriteString("\n")
	}

	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	if len(m.candidates) > 0 {
		sb.WriteString(candidateStyle.Render(strings.Join(m.candidates, "  ")))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Run starts the REPL against the given session and blocks until the
// user quits.
func Run(session *shell.Session) error {
	p := tea.NewProgram(New(session))
	_, err := p.Run()
	return err
}
