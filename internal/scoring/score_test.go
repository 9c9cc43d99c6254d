package scoring

import (
	"reflect"
	"testing"

	"github.com/liuyang/duwen/internal/quiz"
)

func intp(i int) *int { return &i }

// twoMCOneSA builds a quiz with correct answers at index 1 and 2 plus a
// short-answer question.
func twoMCOneSA() *quiz.Quiz {
	return &quiz.Quiz{
		Passage: "测试短文。",
		Questions: []quiz.Question{
			{
				Type:               quiz.TypeMultipleChoice,
				QuestionText:       "第一题？",
				Options:            []string{"甲", "乙", "丙", "丁"},
				CorrectAnswerIndex: intp(1),
				Explanation:        "乙是对的。",
			},
			{
				Type:               quiz.TypeMultipleChoice,
				QuestionText:       "第二题？",
				Options:            []string{"甲", "乙", "丙", "丁"},
				CorrectAnswerIndex: intp(2),
				Explanation:        "丙是对的。",
			},
			{
				Type:              quiz.TypeShortAnswer,
				QuestionText:      "纪念哪位诗人？",
				CorrectAnswerText: "屈原",
				Explanation:       "文中提到屈原。",
			},
		},
	}
}

func TestScore_MultipleChoice(t *testing.T) {
	q := twoMCOneSA()
	answers := quiz.Answers{
		0: quiz.OptionAnswer(1), // correct
		1: quiz.OptionAnswer(0), // wrong
	}

	res := Score(q, answers)

	if res.Score != 1 {
		t.Errorf("expected score 1, got %d", res.Score)
	}
	if res.TotalMC != 2 {
		t.Errorf("expected 2 mc questions, got %d", res.TotalMC)
	}
	if res.Answers[0].Correct == nil || !*res.Answers[0].Correct {
		t.Error("expected question 0 to be marked correct")
	}
	if res.Answers[1].Correct == nil || *res.Answers[1].Correct {
		t.Error("expected question 1 to be marked incorrect")
	}
	if res.Answers[0].CorrectOption != 1 || res.Answers[1].CorrectOption != 2 {
		t.Error("correct option indices not recorded")
	}
}

func TestScore_ShortAnswerPassThrough(t *testing.T) {
	q := twoMCOneSA()
	answers := quiz.Answers{
		2: quiz.TextAnswer("屈原"),
	}

	res := Score(q, answers)

	rec := res.Answers[2]
	if rec.Correct != nil {
		t.Error("short-answer record must not carry a correctness judgment")
	}
	if rec.CorrectText != "屈原" {
		t.Errorf("expected reference answer 屈原, got %q", rec.CorrectText)
	}
	if rec.UserAnswer == nil || rec.UserAnswer.Text != "屈原" {
		t.Error("user answer not passed through as typed")
	}
}

func TestScore_UnansweredIsIncorrectNotPanic(t *testing.T) {
	q := twoMCOneSA()

	res := Score(q, quiz.Answers{})

	if res.Score != 0 {
		t.Errorf("expected score 0, got %d", res.Score)
	}
	for i := 0; i < 2; i++ {
		rec := res.Answers[i]
		if rec.UserAnswer != nil {
			t.Errorf("question %d: expected nil user answer", i)
		}
		if rec.Correct == nil || *rec.Correct {
			t.Errorf("question %d: unanswered must be incorrect", i)
		}
	}
	if res.Answers[2].UserAnswer != nil {
		t.Error("unanswered short-answer must have nil user answer")
	}
}

func TestScore_OptionZeroIsAValidAnswer(t *testing.T) {
	q := twoMCOneSA()
	q.Questions[0].CorrectAnswerIndex = intp(0)

	res := Score(q, quiz.Answers{0: quiz.OptionAnswer(0)})

	if res.Score != 1 {
		t.Errorf("option 0 must score when correct, got score %d", res.Score)
	}
}

func TestScore_Idempotent(t *testing.T) {
	q := twoMCOneSA()
	answers := quiz.Answers{
		0: quiz.OptionAnswer(1),
		1: quiz.OptionAnswer(3),
		2: quiz.TextAnswer("爱国诗人屈原"),
	}

	first := Score(q, answers)
	second := Score(q, answers)

	if !reflect.DeepEqual(first, second) {
		t.Error("scoring the same inputs twice must yield identical results")
	}
}

func TestScore_TextAnswerOnMCIsIncorrect(t *testing.T) {
	q := twoMCOneSA()
	// A text answer can reach an mc slot if the caller mixes up indices;
	// it must never count as a match.
	res := Score(q, quiz.Answers{0: quiz.TextAnswer("乙")})
	if res.Score != 0 {
		t.Errorf("expected score 0, got %d", res.Score)
	}
}
