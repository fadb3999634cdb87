// Package onboarding renders the onboarding checklist as an interactive terminal view.
package onboarding

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"github.com/mattewlondono22/smartagents-desktop/pkg/models"
)

const defaultWidth = 80

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Toggle, k.Help, k.Quit}}
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "previous step"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next step"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "mark done"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Model walks through the onboarding steps. Completion marks are local to
// the session and never sent back to the registry.
type Model struct {
	steps  []models.OnboardingStep
	done   []bool
	cursor int
	width  int
	help   help.Model
	quit   bool
}

// NewModel creates a model over steps, honoring any step already marked completed.
func NewModel(steps []models.OnboardingStep) Model {
	done := make([]bool, len(steps))
	for i, s := range steps {
		done[i] = s.Completed
	}
	return Model{
		steps: steps,
		done:  done,
		width: defaultWidth,
		help:  help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quit = true
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.steps)-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Toggle):
			if len(m.steps) > 0 {
				m.done[m.cursor] = !m.done[m.cursor]
			}
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.quit {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Getting started"))
	b.WriteString("\n")

	if len(m.steps) == 0 {
		b.WriteString(mutedStyle.Render("No onboarding steps available."))
		b.WriteString("\n")
	}

	for i, step := range m.steps {
		check := "[ ]"
		if m.done[i] {
			check = doneStyle.Render("[x]")
		}
		line := fmt.Sprintf("%d. %s", step.ID, step.Title)
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
			line = selectedStyle.Render(line)
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, check, line)

		if i == m.cursor {
			b.WriteString(mutedStyle.Render(Wrap(step.Description, m.width, 6)))
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "\n%d of %d completed\n\n", m.Completed(), len(m.steps))
	b.WriteString(m.help.View(keys))
	return b.String()
}

// Completed returns how many steps are marked done.
func (m Model) Completed() int {
	n := 0
	for _, d := range m.done {
		if d {
			n++
		}
	}
	return n
}

// Cursor returns the index of the highlighted step.
func (m Model) Cursor() int {
	return m.cursor
}

// Wrap word-wraps text to width and indents every line by margin spaces.
func Wrap(text string, width, margin int) string {
	limit := width - margin
	if limit < 20 {
		limit = 20
	}
	return indent.String(wordwrap.String(text, limit), uint(margin))
}
