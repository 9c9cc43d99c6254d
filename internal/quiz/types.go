package quiz

import "strings"

// QuestionType distinguishes the two kinds of quiz items.
type QuestionType string

const (
	// TypeMultipleChoice is a question with 4 candidate options and one
	// correct index.
	TypeMultipleChoice QuestionType = "mc"

	// TypeShortAnswer is an open-text question with a reference answer
	// the learner self-grades against.
	TypeShortAnswer QuestionType = "sa"
)

// Question is one quiz item. The JSON field names are the wire contract
// between the generation service and its callers.
type Question struct {
	Type         QuestionType `json:"type"`
	QuestionText string       `json:"questionText"`

	// Options holds exactly 4 candidate strings. Present iff Type is mc.
	Options []string `json:"options,omitempty"`

	// CorrectAnswerIndex indexes into Options. Present iff Type is mc.
	// A pointer so that index 0 survives the omitempty round trip and
	// absence is detectable at the validation boundary.
	CorrectAnswerIndex *int `json:"correctAnswerIndex,omitempty"`

	// CorrectAnswerText is the reference answer. Present iff Type is sa.
	CorrectAnswerText string `json:"correctAnswerText,omitempty"`

	// Explanation justifies the correct answer, ideally citing the
	// passage. Always present.
	Explanation string `json:"explanation"`
}

// Quiz is one generation unit: a reading passage plus its questions.
// Created atomically on a successful generation, replaced wholesale by
// the next one, never persisted.
type Quiz struct {
	// Passage is the reading-comprehension source text, segmented into
	// paragraphs by newline characters.
	Passage string `json:"passage"`

	Questions []Question `json:"questions"`
}

// AnswerKind selects which field of an Answer is meaningful.
type AnswerKind int

const (
	// KindOption means Answer.Option holds a selected option index.
	KindOption AnswerKind = iota

	// KindText means Answer.Text holds free-form text.
	KindText
)

// Answer is a learner's answer to a single question: a selected option
// index for multiple-choice or free text for short-answer.
type Answer struct {
	Kind   AnswerKind
	Option int
	Text   string
}

// OptionAnswer builds a multiple-choice answer. Index 0 is a valid,
// non-blank answer.
func OptionAnswer(i int) Answer {
	return Answer{Kind: KindOption, Option: i}
}

// TextAnswer builds a short-answer response.
func TextAnswer(s string) Answer {
	return Answer{Kind: KindText, Text: s}
}

// IsBlank reports whether the answer counts as unanswered for the
// submit guard. Option answers are never blank; text answers are blank
// when empty or whitespace only.
func (a Answer) IsBlank() bool {
	if a.Kind == KindOption {
		return false
	}
	return strings.TrimSpace(a.Text) == ""
}

// Answers maps a 0-based question index to the learner's current
// answer. Entries are added or overwritten as the learner interacts,
// never removed except on restart.
type Answers map[int]Answer

// AnswerRecord is the graded view of one question inside a Result.
type AnswerRecord struct {
	// UserAnswer is the learner's raw answer, nil when the question was
	// left unanswered.
	UserAnswer *Answer

	// CorrectOption is the correct option index. Meaningful iff the
	// question is multiple-choice.
	CorrectOption int

	// CorrectText is the reference answer. Meaningful iff the question
	// is short-answer.
	CorrectText string

	// Correct reports multiple-choice correctness. Nil for short-answer
	// questions, which the learner self-grades.
	Correct *bool
}

// Result is the immutable outcome of one submission.
type Result struct {
	// Score counts correctly answered multiple-choice questions.
	Score int

	// TotalMC counts the quiz's multiple-choice questions.
	TotalMC int

	// Answers maps question index to its graded record.
	Answers map[int]AnswerRecord
}
