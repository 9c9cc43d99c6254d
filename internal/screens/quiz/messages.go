package quizscreen

import (
	"time"

	"github.com/liuyang/duwen/internal/quiz"
)

// quizReadyMsg is sent when a generation request finishes. Token ties
// the result to the session generation that started it; stale results
// are discarded.
type quizReadyMsg struct {
	Token uint64
	Quiz  *quiz.Quiz
	Err   error
}

// spinnerTickMsg is sent at short intervals to animate the loading spinner.
type spinnerTickMsg time.Time
