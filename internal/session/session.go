// Package session holds the single active quiz attempt: the current
// quiz, the learner's answers, and the submission result, guarded by a
// state machine. There is exactly one quiz alive at a time; a new
// generation replaces everything.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/liuyang/duwen/internal/quiz"
	"github.com/liuyang/duwen/internal/scoring"
)

// State is the session lifecycle phase.
type State int

const (
	// StateIdle is the welcome screen: no quiz, nothing in flight.
	StateIdle State = iota

	// StateLoading means a generation request is in flight.
	StateLoading

	// StateError means the last generation failed; the message is in Err.
	StateError

	// StateReady means a quiz is displayed and answers are being taken.
	StateReady

	// StateSubmitted means the attempt has been scored.
	StateSubmitted

	// StateDetailed means the per-question explanations are revealed.
	StateDetailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateReady:
		return "ready"
	case StateSubmitted:
		return "submitted"
	case StateDetailed:
		return "detailed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Guard errors. Transition violations are rejected, never silently
// ignored, so the frontend can distinguish "nothing happened" from a
// bug.
var (
	// ErrBusy means a generation is already in flight.
	ErrBusy = errors.New("a generation request is already in flight")

	// ErrStaleGeneration means a finished request was superseded by a
	// newer one and its result was discarded.
	ErrStaleGeneration = errors.New("generation result is stale")

	// ErrNoQuiz means the operation needs a displayed quiz.
	ErrNoQuiz = errors.New("no quiz is loaded")

	// ErrUnanswered blocks submission while any question lacks a
	// non-blank answer.
	ErrUnanswered = errors.New("not all questions are answered")

	// ErrBadTransition is wrapped with the operation and current state.
	ErrBadTransition = errors.New("invalid state transition")

	// ErrBadIndex means the answer index is outside the quiz.
	ErrBadIndex = errors.New("question index out of range")
)

// Session is the quiz attempt state machine. Safe for concurrent use;
// the TUI mutates it from the update loop while generation commands
// finish on other goroutines.
type Session struct {
	mu         sync.Mutex
	state      State
	quiz       *quiz.Quiz
	answers    quiz.Answers
	result     *quiz.Result
	err        error
	generation uint64
}

// New creates a session showing the built-in sample quiz, so the
// learner sees a working quiz before their first generation.
func New() *Session {
	return &Session{
		state:   StateReady,
		quiz:    quiz.SampleQuiz(),
		answers: make(quiz.Answers),
	}
}

// StartGeneration begins a new generation from any settled state. It
// clears the previous quiz, answers, result, and error, and returns a
// token identifying this generation. The token must be passed back to
// FinishGeneration; any older in-flight request becomes stale.
func (s *Session) StartGeneration() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateLoading {
		return 0, ErrBusy
	}

	s.generation++
	s.quiz = nil
	s.answers = make(quiz.Answers)
	s.result = nil
	s.err = nil
	s.state = StateLoading

	return s.generation, nil
}

// FinishGeneration applies a completed generation. A token that does
// not match the current generation (superseded or after a restart) is
// rejected with ErrStaleGeneration and mutates nothing.
func (s *Session) FinishGeneration(token uint64, q *quiz.Quiz, genErr error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.generation || s.state != StateLoading {
		return ErrStaleGeneration
	}

	if genErr != nil {
		s.err = genErr
		s.state = StateError
		return nil
	}

	s.quiz = q
	s.answers = make(quiz.Answers)
	s.state = StateReady
	return nil
}

// SetAnswer records or overwrites the answer for one question.
func (s *Session) SetAnswer(index int, a quiz.Answer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return fmt.Errorf("set answer in %s: %w", s.state, ErrBadTransition)
	}
	if s.quiz == nil {
		return ErrNoQuiz
	}
	if index < 0 || index >= len(s.quiz.Questions) {
		return fmt.Errorf("index %d of %d questions: %w", index, len(s.quiz.Questions), ErrBadIndex)
	}

	s.answers[index] = a
	return nil
}

// Submit scores the attempt. It is guarded by AllAnswered: every
// question must have a non-blank answer (selecting option 0 counts).
// Scoring runs exactly once per attempt.
func (s *Session) Submit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateReady {
		return fmt.Errorf("submit in %s: %w", s.state, ErrBadTransition)
	}
	if s.quiz == nil {
		return ErrNoQuiz
	}
	if !s.allAnswered() {
		return ErrUnanswered
	}

	s.result = scoring.Score(s.quiz, s.answers)
	s.state = StateSubmitted
	return nil
}

// RevealDetails shows the explanations and reference answers. The
// existing result is reused; nothing is recomputed.
func (s *Session) RevealDetails() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateSubmitted {
		return fmt.Errorf("reveal details in %s: %w", s.state, ErrBadTransition)
	}

	s.state = StateDetailed
	return nil
}

// Restart clears everything and returns to the welcome screen. Valid
// from any state; an in-flight generation becomes stale.
func (s *Session) Restart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.quiz = nil
	s.answers = make(quiz.Answers)
	s.result = nil
	s.err = nil
	s.state = StateIdle
}

// State returns the current lifecycle phase.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Quiz returns the displayed quiz, nil when there is none.
func (s *Session) Quiz() *quiz.Quiz {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quiz
}

// Answers returns a copy of the learner's current answers.
func (s *Session) Answers() quiz.Answers {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(quiz.Answers, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

// Result returns the scored result, nil before submission.
func (s *Session) Result() *quiz.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Err returns the last generation error, nil outside StateError.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// AllAnswered reports whether every question has a non-blank answer.
func (s *Session) AllAnswered() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quiz != nil && s.allAnswered()
}

func (s *Session) allAnswered() bool {
	for i := range s.quiz.Questions {
		a, ok := s.answers[i]
		if !ok || a.IsBlank() {
			return false
		}
	}
	return true
}
