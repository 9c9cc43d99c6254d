package quizgen

import (
	"context"

	"github.com/liuyang/duwen/internal/quiz"
)

// Generator produces reading-comprehension quizzes. Implemented by
// LLMGenerator (in-process model call) and by the HTTP client, so the
// terminal frontend can run against either.
type Generator interface {
	// Generate produces a quiz for the given parameters. The returned
	// quiz has passed structural validation.
	Generate(ctx context.Context, p Params) (*quiz.Quiz, error)
}
