package quizgen

import (
	"fmt"

	"github.com/liuyang/duwen/internal/quiz"
)

// Validator checks a generated quiz for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error
	// messages and logging), e.g. "structural", "type-mix".
	Name() string

	// Validate checks the quiz and returns nil if it passes. The
	// validator receives the generation Params for context (e.g. to
	// know which question type was requested).
	Validate(q *quiz.Quiz, p Params) *ValidationError
}

// ValidationError describes why a quiz failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
