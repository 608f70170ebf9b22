package repl

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fattreed/lox/config"
	"github.com/fattreed/lox/format"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	echoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type keyMap struct {
	Quit key.Binding
	Run  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+d", "quit"),
		),
		Run: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "scan line"),
		),
	}
}

// ShortHelp returns keybindings to show in the minimized help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Run},
		{k.Quit},
	}
}

type model struct {
	session *Session
	input   textinput.Model
	help    help.Model
	keys    keyMap
}

func newModel(s *Session) model {
	ti := textinput.New()
	ti.Prompt = s.cfg.REPL.Prompt
	ti.PromptStyle = promptStyle
	ti.Placeholder = "1 + 2 * 3"
	ti.Focus()

	return model{
		session: s,
		input:   ti,
		help:    help.New(),
		keys:    newKeyMap(),
	}
}

// Init satisfies the tea.Model interface.
func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tea.Println(m.banner()))
}

func (m model) banner() string {
	var buf bytes.Buffer
	p := format.NewPrinter(&buf, config.FormatText, m.session.cfg.Output.Color)
	_ = p.Note("Type an expression and press enter to scan it, ctrl+d to quit.")
	return strings.TrimRight(buf.String(), "\n")
}

// eval scans one line and returns what it printed
func (m model) eval(line string) string {
	var buf bytes.Buffer
	if err := m.session.Eval(&buf, &buf, []byte(line)); err != nil && !errors.Is(err, ErrInvalidSource) {
		m.session.log.Error("evaluating line", "error", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

// Update satisfies the tea.Model interface.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Run):
			line := m.input.Value()
			m.input.Reset()

			output := m.eval(line)
			return m, tea.Println(echoStyle.Render(m.session.cfg.REPL.Prompt+line) + "\n" + output)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View satisfies the tea.Model interface.
func (m model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.input.View(),
		m.help.View(m.keys),
	)
}

func (s *Session) runInteractive(in *os.File, out io.Writer) error {
	p := tea.NewProgram(newModel(s), tea.WithInput(in), tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		s.log.Error("running prompt", "error", err)
		return err
	}
	return nil
}
