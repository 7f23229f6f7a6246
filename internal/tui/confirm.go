package tui

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gerunddev/docbridge/internal/styles"
)

// ErrCancelled is returned when the prompt is dismissed without an answer
var ErrCancelled = errors.New("prompt cancelled")

// confirmKeys are the bindings of the overwrite prompt
type confirmKeys struct {
	Yes    key.Binding
	No     key.Binding
	Cancel key.Binding
}

func (k confirmKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No, k.Cancel}
}

func (k confirmKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var defaultConfirmKeys = confirmKeys{
	Yes: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "overwrite"),
	),
	No: key.NewBinding(
		key.WithKeys("n", "N", "enter"),
		key.WithHelp("n/enter", "keep both"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("ctrl+c", "esc", "q"),
		key.WithHelp("esc", "cancel"),
	),
}

// confirmModel is the Bubble Tea model for the overwrite prompt
type confirmModel struct {
	path      string
	keys      confirmKeys
	help      help.Model
	answered  bool
	overwrite bool
	cancelled bool
}

// InitConfirmModel creates a prompt asking whether path may be replaced
func InitConfirmModel(path string) confirmModel {
	h := help.New()
	h.Styles.ShortKey = styles.HelpStyle.Bold(true)
	h.Styles.ShortDesc = styles.HelpStyle
	h.Styles.ShortSeparator = styles.HelpStyle

	return confirmModel{
		path: path,
		keys: defaultConfirmKeys,
		help: h,
	}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Yes):
			m.answered, m.overwrite = true, true
			return m, tea.Quit
		case key.Matches(msg, m.keys.No):
			m.answered = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	return m, nil
}

func (m confirmModel) View() string {
	if m.answered || m.cancelled {
		return ""
	}
	question := styles.PromptStyle.Render("? ") +
		fmt.Sprintf("%s already exists. Overwrite? ", styles.PathStyle.Render(m.path)) +
		styles.DimStyle.Render("[y/N]")
	return question + "\n" + m.help.View(m.keys) + "\n"
}

// Overwrite reports the answer; false until the user has answered
func (m confirmModel) Overwrite() bool {
	return m.answered && m.overwrite
}

// ConfirmPrompter asks on a terminal whether a destination may be replaced
type ConfirmPrompter struct {
	Input  io.Reader
	Output io.Writer
}

// ConfirmOverwrite runs the prompt until the user answers. Cancelling
// returns ErrCancelled.
func (p *ConfirmPrompter) ConfirmOverwrite(path string) (bool, error) {
	var opts []tea.ProgramOption
	if p.Input != nil {
		opts = append(opts, tea.WithInput(p.Input))
	}
	if p.Output != nil {
		opts = append(opts, tea.WithOutput(p.Output))
	}

	final, err := tea.NewProgram(InitConfirmModel(path), opts...).Run()
	if err != nil {
		return false, fmt.Errorf("failed to run prompt: %w", err)
	}

	m, ok := final.(confirmModel)
	if !ok || m.cancelled || !m.answered {
		return false, ErrCancelled
	}
	return m.overwrite, nil
}
