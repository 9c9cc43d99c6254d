// Package quizscreen is the main screen: it shows the passage and
// questions, records answers into the session, and walks the attempt
// through submit, score, and detailed review.
package quizscreen

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/liuyang/duwen/internal/client"
	"github.com/liuyang/duwen/internal/quiz"
	"github.com/liuyang/duwen/internal/quizgen"
	"github.com/liuyang/duwen/internal/router"
	"github.com/liuyang/duwen/internal/screen"
	"github.com/liuyang/duwen/internal/screens/setup"
	sess "github.com/liuyang/duwen/internal/session"
	"github.com/liuyang/duwen/internal/ui/components"
	"github.com/liuyang/duwen/internal/ui/layout"
)

const spinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// QuizScreen implements screen.Screen for the quiz attempt.
type QuizScreen struct {
	session   *sess.Session
	generator quizgen.Generator
	params    quizgen.Params

	// One interactive component per question, keyed by question index.
	mc     map[int]components.MultiChoice
	inputs map[int]components.TextInput

	// focus walks 0..len(questions); the last position is the submit
	// button.
	focus        int
	generateNow  bool
	spinnerFrame int
	notice       string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over the shared session. When generateNow is
// set, Init kicks off a generation with the given params; otherwise the
// screen renders whatever quiz the session already holds.
func New(session *sess.Session, generator quizgen.Generator, params quizgen.Params, generateNow bool) *QuizScreen {
	s := &QuizScreen{
		session:     session,
		generator:   generator,
		params:      params,
		generateNow: generateNow,
	}
	s.buildComponents()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.generateNow {
		s.generateNow = false
		return s.startGeneration()
	}
	return nil
}

func (s *QuizScreen) Title() string {
	return "阅读理解"
}

// Status feeds the header's right side.
func (s *QuizScreen) Status() string {
	if s.session.State() == sess.StateLoading {
		return "生成中…"
	}
	return s.params.Difficulty
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.session.State() {
	case sess.StateLoading:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Quit"},
		}
	case sess.StateError:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Retry"},
			{Key: "G", Description: "New quiz"},
			{Key: "Esc", Description: "Quit"},
		}
	case sess.StateReady:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next question"},
			{Key: "Enter", Description: "Choose / Submit"},
			{Key: "G", Description: "New quiz"},
			{Key: "Esc", Description: "Quit"},
		}
	case sess.StateSubmitted:
		return []layout.KeyHint{
			{Key: "D", Description: "Details"},
			{Key: "G", Description: "New quiz"},
			{Key: "R", Description: "Restart"},
		}
	case sess.StateDetailed:
		return []layout.KeyHint{
			{Key: "G", Description: "New quiz"},
			{Key: "R", Description: "Restart"},
		}
	default:
		return []layout.KeyHint{
			{Key: "G", Description: "New quiz"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		return s.handleQuizReady(msg)

	case spinnerTickMsg:
		if s.session.State() != sess.StateLoading {
			return s, nil
		}
		s.spinnerFrame++
		return s, spinnerTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward everything else to the focused text input.
	if ti, ok := s.inputs[s.focus]; ok && s.session.State() == sess.StateReady {
		updated, cmd := ti.Update(msg)
		s.inputs[s.focus] = updated
		s.syncTextAnswer(s.focus)
		return s, cmd
	}

	return s, nil
}

func (s *QuizScreen) handleQuizReady(msg quizReadyMsg) (screen.Screen, tea.Cmd) {
	err := s.session.FinishGeneration(msg.Token, msg.Quiz, msg.Err)
	if errors.Is(err, sess.ErrStaleGeneration) {
		return s, nil
	}
	s.buildComponents()
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()
	s.notice = ""

	switch s.session.State() {
	case sess.StateLoading:
		return s, nil

	case sess.StateError:
		switch key {
		case "enter":
			return s, s.startGeneration()
		case "g", "G":
			return s, s.pushSetup()
		}
		return s, nil

	case sess.StateIdle:
		switch key {
		case "g", "G", "enter":
			return s, s.pushSetup()
		}
		return s, nil

	case sess.StateReady:
		return s.handleReadyKey(msg, key)

	case sess.StateSubmitted:
		switch key {
		case "d", "D", "enter":
			if err := s.session.RevealDetails(); err == nil {
				s.revealAll()
			}
			return s, nil
		case "g", "G":
			return s, s.pushSetup()
		case "r", "R":
			s.session.Restart()
			s.buildComponents()
			return s, nil
		}
		return s, nil

	case sess.StateDetailed:
		switch key {
		case "g", "G":
			return s, s.pushSetup()
		case "r", "R":
			s.session.Restart()
			s.buildComponents()
			return s, nil
		}
		return s, nil
	}

	return s, nil
}

func (s *QuizScreen) handleReadyKey(msg tea.KeyMsg, key string) (screen.Screen, tea.Cmd) {
	q := s.session.Quiz()
	if q == nil {
		return s, nil
	}
	submitPos := len(q.Questions)

	// Text inputs consume most keys; navigation and the new-quiz
	// shortcut must work around them.
	_, typing := s.inputs[s.focus]

	switch key {
	case "tab", "down":
		if key == "down" && typing {
			break
		}
		if s.focus < submitPos {
			s.setFocus(s.focus + 1)
		}
		return s, nil
	case "shift+tab", "up":
		if key == "up" && typing {
			break
		}
		if s.focus > 0 {
			s.setFocus(s.focus - 1)
		}
		return s, nil
	case "g", "G":
		if !typing {
			return s, s.pushSetup()
		}
	case "enter":
		if s.focus == submitPos {
			return s.submit()
		}
	}

	// Question components.
	if mc, ok := s.mc[s.focus]; ok {
		updated, cmd := mc.Update(msg)
		s.mc[s.focus] = updated
		if updated.HasChoice() {
			s.session.SetAnswer(s.focus, quiz.OptionAnswer(updated.Chosen))
		}
		return s, cmd
	}
	if ti, ok := s.inputs[s.focus]; ok {
		updated, cmd := ti.Update(msg)
		s.inputs[s.focus] = updated
		s.syncTextAnswer(s.focus)
		return s, cmd
	}

	return s, nil
}

func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	err := s.session.Submit()
	switch {
	case err == nil:
		return s, nil
	case errors.Is(err, sess.ErrUnanswered):
		s.notice = "请先回答所有问题。"
		return s, nil
	default:
		s.notice = err.Error()
		return s, nil
	}
}

// startGeneration begins a generation using the current params. The
// session token makes in-flight results that outlive a restart or a
// newer request land harmlessly.
func (s *QuizScreen) startGeneration() tea.Cmd {
	token, err := s.session.StartGeneration()
	if err != nil {
		s.notice = err.Error()
		return nil
	}

	s.buildComponents()
	generator := s.generator
	params := s.params

	return tea.Batch(spinnerTick(), func() tea.Msg {
		q, genErr := generator.Generate(context.Background(), params)
		if genErr != nil {
			return quizReadyMsg{Token: token, Err: userError(genErr)}
		}
		return quizReadyMsg{Token: token, Quiz: q}
	})
}

func (s *QuizScreen) pushSetup() tea.Cmd {
	setupScreen := setup.New(s.params, func(p quizgen.Params) tea.Cmd {
		next := New(s.session, s.generator, p, true)
		return func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	})
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: setupScreen}
	}
}

// buildComponents rebuilds the per-question components from the
// session's current quiz.
func (s *QuizScreen) buildComponents() {
	s.mc = make(map[int]components.MultiChoice)
	s.inputs = make(map[int]components.TextInput)
	s.focus = 0

	q := s.session.Quiz()
	if q == nil {
		return
	}

	answers := s.session.Answers()
	for i, question := range q.Questions {
		switch question.Type {
		case quiz.TypeMultipleChoice:
			correct := -1
			if question.CorrectAnswerIndex != nil {
				correct = *question.CorrectAnswerIndex
			}
			m := components.NewMultiChoice(question.QuestionText, question.Options, correct)
			if a, ok := answers[i]; ok && a.Kind == quiz.KindOption {
				m.Chosen = a.Option
			}
			s.mc[i] = m
		case quiz.TypeShortAnswer:
			ti := components.NewTextInput("输入你的回答…", false, 200)
			if a, ok := answers[i]; ok && a.Kind == quiz.KindText {
				ti.Model.SetValue(a.Text)
			}
			s.inputs[i] = ti
		}
	}
	s.setFocus(0)
}

func (s *QuizScreen) setFocus(i int) {
	if mc, ok := s.mc[s.focus]; ok {
		mc.Focused = false
		s.mc[s.focus] = mc
	}
	if ti, ok := s.inputs[s.focus]; ok {
		ti.Model.Blur()
		s.inputs[s.focus] = ti
	}

	s.focus = i

	if mc, ok := s.mc[i]; ok {
		mc.Focused = true
		s.mc[i] = mc
	}
	if ti, ok := s.inputs[i]; ok {
		ti.Model.Focus()
		s.inputs[i] = ti
	}
}

// syncTextAnswer mirrors the input's text into the session so the
// submit guard sees it. Blank text is written too; a cleared input
// must re-arm the guard rather than leave the old answer behind.
func (s *QuizScreen) syncTextAnswer(i int) {
	ti, ok := s.inputs[i]
	if !ok {
		return
	}
	s.session.SetAnswer(i, quiz.TextAnswer(ti.Value()))
}

// revealAll flips every multiple-choice component to graded display.
func (s *QuizScreen) revealAll() {
	for i, mc := range s.mc {
		mc.Reveal()
		s.mc[i] = mc
	}
}

// userError keeps the learner-facing message when the generator
// reports one, and wraps everything else in the generic failure text.
func userError(err error) error {
	var genErr *client.GenerationError
	if errors.As(err, &genErr) {
		return errors.New(genErr.UserMessage)
	}
	return errors.New("生成试题失败: " + err.Error())
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
