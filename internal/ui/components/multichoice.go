package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/liuyang/duwen/internal/ui/theme"
)

// MultiChoice is a multiple-choice option selector. Choosing an option
// highlights it; correct/incorrect colouring only appears once Reveal
// is called, because the quiz is graded as a whole, not per question.
type MultiChoice struct {
	Question     string
	Options      []string
	CorrectIndex int
	Cursor       int
	Chosen       int
	Revealed     bool
	Focused      bool
}

// NewMultiChoice creates a new multiple-choice component. correctIndex
// may be -1 when the answer is not known to the frontend yet.
func NewMultiChoice(question string, options []string, correctIndex int) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: correctIndex,
		Cursor:       0,
		Chosen:       -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Revealed || !m.Focused {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "enter", " ":
		m.Chosen = m.Cursor
	}

	return m, nil
}

// Reveal switches the component to graded display.
func (m *MultiChoice) Reveal() {
	m.Revealed = true
}

// View renders the multiple-choice component.
func (m MultiChoice) View() string {
	questionStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := questionStyle.Render(m.Question) + "\n\n"

	labels := []string{"A", "B", "C", "D", "E", "F"}

	for i, opt := range m.Options {
		label := "?"
		if i < len(labels) {
			label = labels[i]
		}
		prefix := "  "
		if i == m.Cursor && m.Focused && !m.Revealed {
			prefix = "▸ "
		}
		marker := " "
		if i == m.Chosen {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		if m.Revealed {
			if i == m.CorrectIndex {
				s += theme.Correct.Render(line) + "\n"
			} else if i == m.Chosen {
				s += theme.Incorrect.Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == m.Chosen {
				s += lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(line) + "\n"
			} else if i == m.Cursor && m.Focused {
				s += theme.Selected.Render(line) + "\n"
			} else {
				s += theme.Unselected.Render(line) + "\n"
			}
		}
	}

	return s
}

// HasChoice reports whether an option has been picked.
func (m MultiChoice) HasChoice() bool {
	return m.Chosen >= 0
}

// IsCorrect returns true if the chosen option is the correct one.
func (m MultiChoice) IsCorrect() bool {
	return m.Revealed && m.Chosen == m.CorrectIndex
}
