package quizgen

import "github.com/liuyang/duwen/internal/quiz"

// StructuralValidator checks that the quiz is structurally complete:
// non-empty passage, at least one question, and every question fully
// formed for its type. A question count differing from the request is
// tolerated; the count is a soft constraint on the model.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *quiz.Quiz, _ Params) *ValidationError {
	if err := q.Validate(); err != nil {
		return &ValidationError{
			Validator: v.Name(),
			Message:   err.Error(),
			Retryable: true,
		}
	}
	return nil
}
