package setup

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/liuyang/duwen/internal/quizgen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestSetup_DefaultsMatchCurrentParams(t *testing.T) {
	s := New(quizgen.DefaultParams(), nil)

	p := s.params()
	if p.Difficulty != quizgen.DefaultDifficulty {
		t.Errorf("difficulty = %q, want %q", p.Difficulty, quizgen.DefaultDifficulty)
	}
	if p.Topic != quizgen.TopicRandom {
		t.Errorf("topic = %q, want %q", p.Topic, quizgen.TopicRandom)
	}
	if p.NumQuestions != 5 {
		t.Errorf("numQuestions = %d, want 5", p.NumQuestions)
	}
	if p.QuestionType != quizgen.TypeMultipleChoice {
		t.Errorf("questionType = %q, want %q", p.QuestionType, quizgen.TypeMultipleChoice)
	}
}

func TestSetup_ArrowsChangeDifficulty(t *testing.T) {
	s := New(quizgen.DefaultParams(), nil)

	// Default is the third level; two lefts reach the easiest.
	s.Update(specialKey(tea.KeyLeft))
	s.Update(specialKey(tea.KeyLeft))
	if got := s.params().Difficulty; got != quizgen.Difficulties[0] {
		t.Errorf("difficulty = %q, want %q", got, quizgen.Difficulties[0])
	}

	// Left at the edge stays put.
	s.Update(specialKey(tea.KeyLeft))
	if got := s.params().Difficulty; got != quizgen.Difficulties[0] {
		t.Errorf("difficulty = %q, want %q", got, quizgen.Difficulties[0])
	}
}

func TestSetup_ArrowsChangeQuestionType(t *testing.T) {
	s := New(quizgen.DefaultParams(), nil)
	s.setFocus(rowType)

	s.Update(specialKey(tea.KeyRight))
	if got := s.params().QuestionType; got != quizgen.TypeShortAnswer {
		t.Errorf("questionType = %q, want %q", got, quizgen.TypeShortAnswer)
	}
	s.Update(specialKey(tea.KeyRight))
	if got := s.params().QuestionType; got != quizgen.TypeMixed {
		t.Errorf("questionType = %q, want %q", got, quizgen.TypeMixed)
	}
}

func TestSetup_EmptyTopicFallsBackToRandom(t *testing.T) {
	s := New(quizgen.DefaultParams(), nil)
	s.topic.Model.SetValue("   ")
	if got := s.params().Topic; got != quizgen.TopicRandom {
		t.Errorf("topic = %q, want %q", got, quizgen.TopicRandom)
	}
}

func TestSetup_ConfirmDeliversParams(t *testing.T) {
	var got quizgen.Params
	s := New(quizgen.DefaultParams(), func(p quizgen.Params) tea.Cmd {
		got = p
		return func() tea.Msg { return nil }
	})

	s.topic.Model.SetValue("中国茶文化")
	s.count.Model.SetValue("3")
	s.setFocus(rowConfirm)

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected confirm command")
	}
	if got.Topic != "中国茶文化" || got.NumQuestions != 3 {
		t.Fatalf("unexpected params: %+v", got)
	}
}

func TestSetup_InvalidCountRejected(t *testing.T) {
	confirmed := false
	s := New(quizgen.DefaultParams(), func(quizgen.Params) tea.Cmd {
		confirmed = true
		return nil
	})

	s.count.Model.SetValue("99")
	s.setFocus(rowConfirm)

	s.Update(specialKey(tea.KeyEnter))
	if confirmed {
		t.Fatal("expected confirm to be blocked")
	}
	if s.errMsg == "" {
		t.Error("expected a validation message")
	}
}

func TestSetup_EnterAdvancesFocus(t *testing.T) {
	s := New(quizgen.DefaultParams(), nil)

	s.Update(specialKey(tea.KeyEnter))
	if s.focus != rowType {
		t.Errorf("focus = %d, want %d", s.focus, rowType)
	}

	s.Update(keyPress('g')) // typing must not move focus
	if s.focus != rowType {
		t.Errorf("focus = %d, want %d", s.focus, rowType)
	}
}
