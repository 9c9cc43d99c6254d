package quizgen

import "fmt"

// Question type labels as they appear in the generation request. The
// values are user-facing Chinese strings, matching the setup form.
const (
	TypeMultipleChoice = "选择题"
	TypeShortAnswer    = "简答题"
	TypeMixed          = "混合"
)

// TopicRandom asks the model to pick its own topic suitable for the
// requested difficulty.
const TopicRandom = "随机一个有趣的主题"

// Difficulties lists the supported difficulty levels, easiest first.
// The labels carry their HSK band so learners can self-place.
var Difficulties = []string{
	"入门 (Pre-HSK 1)",
	"初级 (HSK 1-2)",
	"中级 (HSK 3-4)",
	"中高级 (HSK 5)",
	"高级 (HSK 6)",
	"专业级 (Proficient)",
}

// DefaultDifficulty is the setup form's initial selection.
const DefaultDifficulty = "中级 (HSK 3-4)"

// MaxQuestions bounds how many questions a single quiz may request.
const MaxQuestions = 20

// Params holds one quiz-generation request.
type Params struct {
	// Difficulty is the target language level, e.g. "中级 (HSK 3-4)".
	Difficulty string `json:"difficulty"`

	// Topic is the passage subject, or TopicRandom to let the model
	// choose one.
	Topic string `json:"topic"`

	// NumQuestions is how many questions to generate (1-20).
	NumQuestions int `json:"numQuestions"`

	// QuestionType is one of TypeMultipleChoice, TypeShortAnswer,
	// TypeMixed.
	QuestionType string `json:"questionType"`
}

// Validate checks that all fields are present and within bounds.
func (p Params) Validate() error {
	if p.Difficulty == "" {
		return fmt.Errorf("difficulty is required")
	}
	if p.Topic == "" {
		return fmt.Errorf("topic is required")
	}
	if p.NumQuestions < 1 || p.NumQuestions > MaxQuestions {
		return fmt.Errorf("numQuestions must be between 1 and %d, got %d", MaxQuestions, p.NumQuestions)
	}
	switch p.QuestionType {
	case TypeMultipleChoice, TypeShortAnswer, TypeMixed:
	default:
		return fmt.Errorf("unknown question type: %q", p.QuestionType)
	}
	return nil
}

// DefaultParams returns the setup form's initial request: five
// multiple-choice questions on a random topic at the middle level.
func DefaultParams() Params {
	return Params{
		Difficulty:   DefaultDifficulty,
		Topic:        TopicRandom,
		NumQuestions: 5,
		QuestionType: TypeMultipleChoice,
	}
}
