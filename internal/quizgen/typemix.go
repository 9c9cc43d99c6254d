package quizgen

import (
	"fmt"

	"github.com/liuyang/duwen/internal/quiz"
)

// TypeMixValidator checks that the generated question types honor the
// request: an mc-only or sa-only quiz must not contain the other type.
// TypeMixed accepts any combination.
type TypeMixValidator struct{}

func (v *TypeMixValidator) Name() string { return "type-mix" }

func (v *TypeMixValidator) Validate(q *quiz.Quiz, p Params) *ValidationError {
	var want quiz.QuestionType
	switch p.QuestionType {
	case TypeMultipleChoice:
		want = quiz.TypeMultipleChoice
	case TypeShortAnswer:
		want = quiz.TypeShortAnswer
	default:
		return nil
	}

	for i, question := range q.Questions {
		if question.Type != want {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("question %d has type %q, requested %q only", i, question.Type, p.QuestionType),
				Retryable: true,
			}
		}
	}
	return nil
}
