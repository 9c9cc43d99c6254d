// Package setup is the generation-parameter form: difficulty, topic,
// question count, and question type.
package setup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/liuyang/duwen/internal/quizgen"
	"github.com/liuyang/duwen/internal/screen"
	"github.com/liuyang/duwen/internal/ui/components"
	"github.com/liuyang/duwen/internal/ui/layout"
	"github.com/liuyang/duwen/internal/ui/theme"
)

// Form rows, top to bottom.
const (
	rowDifficulty = iota
	rowType
	rowTopic
	rowCount
	rowConfirm
	rowMax = rowConfirm
)

var questionTypes = []string{
	quizgen.TypeMultipleChoice,
	quizgen.TypeShortAnswer,
	quizgen.TypeMixed,
}

// SetupScreen collects quizgen.Params and hands them to onConfirm.
type SetupScreen struct {
	difficulty int
	qtype      int
	topic      components.TextInput
	count      components.TextInput
	focus      int
	errMsg     string
	onConfirm  func(quizgen.Params) tea.Cmd
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen pre-filled from the given params.
func New(current quizgen.Params, onConfirm func(quizgen.Params) tea.Cmd) *SetupScreen {
	s := &SetupScreen{
		topic:     components.NewTextInput(quizgen.TopicRandom, false, 100),
		count:     components.NewTextInput("5", true, 2),
		onConfirm: onConfirm,
	}

	for i, d := range quizgen.Difficulties {
		if d == current.Difficulty {
			s.difficulty = i
		}
	}
	for i, qt := range questionTypes {
		if qt == current.QuestionType {
			s.qtype = i
		}
	}
	if current.Topic != "" && current.Topic != quizgen.TopicRandom {
		s.topic.Model.SetValue(current.Topic)
	}
	if current.NumQuestions > 0 {
		s.count.Model.SetValue(fmt.Sprintf("%d", current.NumQuestions))
	}

	return s
}

func (s *SetupScreen) Title() string {
	return "生成设置"
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "←/→", Description: "Change value"},
		{Key: "Enter", Description: "Generate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s.forwardToInput(msg)
	}

	s.errMsg = ""

	switch kmsg.String() {
	case "tab", "down":
		if s.focus < rowMax {
			s.setFocus(s.focus + 1)
		}
		return s, nil
	case "shift+tab", "up":
		if s.focus > 0 {
			s.setFocus(s.focus - 1)
		}
		return s, nil
	case "left", "h":
		switch s.focus {
		case rowDifficulty:
			if s.difficulty > 0 {
				s.difficulty--
			}
			return s, nil
		case rowType:
			if s.qtype > 0 {
				s.qtype--
			}
			return s, nil
		}
	case "right", "l":
		switch s.focus {
		case rowDifficulty:
			if s.difficulty < len(quizgen.Difficulties)-1 {
				s.difficulty++
			}
			return s, nil
		case rowType:
			if s.qtype < len(questionTypes)-1 {
				s.qtype++
			}
			return s, nil
		}
	case "enter":
		if s.focus == rowConfirm {
			return s.confirm()
		}
		s.setFocus(s.focus + 1)
		return s, nil
	}

	return s.forwardToInput(msg)
}

func (s *SetupScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch s.focus {
	case rowTopic:
		s.topic, cmd = s.topic.Update(msg)
	case rowCount:
		s.count, cmd = s.count.Update(msg)
	}
	return s, cmd
}

func (s *SetupScreen) confirm() (screen.Screen, tea.Cmd) {
	p := s.params()
	if err := p.Validate(); err != nil {
		s.errMsg = fmt.Sprintf("参数无效: 题目数量必须在 1 到 %d 之间。", quizgen.MaxQuestions)
		return s, nil
	}
	if s.onConfirm == nil {
		return s, nil
	}
	return s, s.onConfirm(p)
}

func (s *SetupScreen) params() quizgen.Params {
	topic := strings.TrimSpace(s.topic.Value())
	if topic == "" {
		topic = quizgen.TopicRandom
	}

	count, err := s.count.NumericValue()
	if err != nil {
		count = 5
	}

	return quizgen.Params{
		Difficulty:   quizgen.Difficulties[s.difficulty],
		Topic:        topic,
		NumQuestions: count,
		QuestionType: questionTypes[s.qtype],
	}
}

func (s *SetupScreen) setFocus(i int) {
	s.focus = i
	if i == rowTopic {
		s.topic.Model.Focus()
	} else {
		s.topic.Model.Blur()
	}
	if i == rowCount {
		s.count.Model.Focus()
	} else {
		s.count.Model.Blur()
	}
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("生成新试题") + "\n\n")

	b.WriteString(s.renderChoiceRow(rowDifficulty, "难度", quizgen.Difficulties[s.difficulty]))
	b.WriteString(s.renderChoiceRow(rowType, "题型", questionTypes[s.qtype]))
	b.WriteString(s.renderInputRow(rowTopic, "主题", s.topic.View()))
	b.WriteString(s.renderInputRow(rowCount, "题目数量", s.count.View()))

	b.WriteString("\n")
	btn := components.NewButton("开始生成", s.focus == rowConfirm, nil)
	b.WriteString("  " + btn.View() + "\n")

	if s.errMsg != "" {
		b.WriteString("\n  " + theme.Incorrect.Render(s.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *SetupScreen) renderChoiceRow(row int, label, value string) string {
	return s.renderRow(row, label, "◂ "+value+" ▸")
}

func (s *SetupScreen) renderInputRow(row int, label, view string) string {
	return s.renderRow(row, label, view)
}

func (s *SetupScreen) renderRow(row int, label, value string) string {
	prefix := "    "
	labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if s.focus == row {
		prefix = "  ▸ "
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		valueStyle = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	}
	return fmt.Sprintf("%s%s  %s\n\n",
		prefix,
		labelStyle.Render(fmt.Sprintf("%-10s", label)),
		valueStyle.Render(value),
	)
}
