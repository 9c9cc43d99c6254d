package quizscreen

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/liuyang/duwen/internal/quiz"
	sess "github.com/liuyang/duwen/internal/session"
	"github.com/liuyang/duwen/internal/ui/components"
	"github.com/liuyang/duwen/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	switch s.session.State() {
	case sess.StateIdle:
		return s.renderIdle(width, height)
	case sess.StateLoading:
		return s.renderLoading(width, height)
	case sess.StateError:
		return s.renderError(width, height)
	case sess.StateSubmitted:
		return s.renderScore(width, height)
	case sess.StateDetailed:
		return s.renderDetailed(width)
	default:
		return s.renderQuiz(width)
	}
}

func (s *QuizScreen) renderIdle(width, height int) string {
	content := theme.Title.Render("读文 · 中文阅读理解练习") + "\n\n" +
		theme.Body.Render("生成一篇短文和配套的理解题，练习你的中文阅读。") + "\n\n" +
		theme.Hint.Render("按 G 开始生成试题")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *QuizScreen) renderLoading(width, height int) string {
	frame := spinnerFrames[s.spinnerFrame%len(spinnerFrames)]
	content := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(frame) +
		"  " + theme.Body.Render("正在生成试题…") + "\n\n" +
		theme.Hint.Render(fmt.Sprintf("主题: %s · %s · %d 题", s.params.Topic, s.params.Difficulty, s.params.NumQuestions))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (s *QuizScreen) renderError(width, height int) string {
	msg := "生成试题时发生未知错误。"
	if err := s.session.Err(); err != nil {
		msg = err.Error()
	}
	content := theme.Incorrect.Render("出错了") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Width(min(width-8, 70)).Render(msg) + "\n\n" +
		theme.Hint.Render("按 Enter 重试，按 G 调整参数")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderQuiz renders the passage and the answerable question list.
func (s *QuizScreen) renderQuiz(width int) string {
	q := s.session.Quiz()
	if q == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(s.renderPassage(q, width))
	b.WriteString("\n")

	answers := s.session.Answers()
	total := len(q.Questions)
	answered := 0
	for i := range q.Questions {
		if a, ok := answers[i]; ok && !a.IsBlank() {
			answered++
		}
	}

	bar := components.NewProgressBar(
		fmt.Sprintf("已回答 %d/%d", answered, total),
		float64(answered)/float64(total),
		false,
		min(width-8, 60),
	)
	b.WriteString("  " + bar.View() + "\n\n")

	for i, question := range q.Questions {
		b.WriteString(s.renderQuestion(i, question, width))
		b.WriteString("\n")
	}

	b.WriteString(s.renderSubmitButton(total))

	if s.notice != "" {
		b.WriteString("\n\n  " + theme.Incorrect.Render(s.notice))
	}

	return b.String()
}

func (s *QuizScreen) renderPassage(q *quiz.Quiz, width int) string {
	passage := theme.Passage.Width(min(width-4, 76)).Render(q.Passage)
	return passage + "\n"
}

func (s *QuizScreen) renderQuestion(i int, question quiz.Question, width int) string {
	header := fmt.Sprintf("第 %d 题", i+1)
	if i == s.focus {
		header = "▸ " + header
	} else {
		header = "  " + header
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(header))
	b.WriteString("\n")

	if mc, ok := s.mc[i]; ok {
		b.WriteString(indent(mc.View(), 2))
	} else if ti, ok := s.inputs[i]; ok {
		b.WriteString(indent(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(question.QuestionText), 2))
		b.WriteString("\n\n")
		b.WriteString(indent(ti.View(), 2))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *QuizScreen) renderSubmitButton(submitPos int) string {
	btn := components.NewButton("提交答案", s.focus == submitPos, nil)
	return "  " + btn.View()
}

// renderScore renders the compact result view shown after submission.
func (s *QuizScreen) renderScore(width, height int) string {
	result := s.session.Result()
	if result == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("本次得分") + "\n\n")

	if result.TotalMC > 0 {
		b.WriteString(theme.Body.Bold(true).Render(
			fmt.Sprintf("选择题: %d / %d", result.Score, result.TotalMC)) + "\n\n")
		bar := components.NewProgressBar("", float64(result.Score)/float64(result.TotalMC), true, min(width-20, 50))
		b.WriteString(bar.View() + "\n\n")
	} else {
		b.WriteString(theme.Body.Render("本次试题没有选择题，请查看参考答案自行评估。") + "\n\n")
	}

	b.WriteString(theme.Hint.Render("按 D 查看解析，按 G 生成新试题，按 R 重新开始"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// renderDetailed renders the graded review: every question with its
// correct answer and explanation.
func (s *QuizScreen) renderDetailed(width int) string {
	q := s.session.Quiz()
	result := s.session.Result()
	if q == nil || result == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(s.renderPassage(q, width))
	b.WriteString("\n")

	if result.TotalMC > 0 {
		b.WriteString("  " + theme.Body.Bold(true).Render(
			fmt.Sprintf("选择题得分: %d / %d", result.Score, result.TotalMC)) + "\n\n")
	}

	for i, question := range q.Questions {
		record := result.Answers[i]

		header := fmt.Sprintf("  第 %d 题", i+1)
		if record.Correct != nil {
			if *record.Correct {
				header += "  " + theme.Correct.Render("✓")
			} else {
				header += "  " + theme.Incorrect.Render("✗")
			}
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(header))
		b.WriteString("\n")

		if mc, ok := s.mc[i]; ok {
			b.WriteString(indent(mc.View(), 2))
		} else {
			b.WriteString(indent(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(question.QuestionText), 2))
			b.WriteString("\n\n")
			if record.UserAnswer != nil {
				b.WriteString(indent(theme.Body.Render("你的回答: "+record.UserAnswer.Text), 2))
				b.WriteString("\n")
			}
			b.WriteString(indent(theme.Correct.Render("参考答案: "+record.CorrectText), 2))
			b.WriteString("\n")
		}

		explanation := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(min(width-8, 70)).
			Render("解析: " + question.Explanation)
		b.WriteString(indent(explanation, 2))
		b.WriteString("\n\n")
	}

	b.WriteString("  " + theme.Hint.Render("按 G 生成新试题，按 R 重新开始"))

	return b.String()
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
