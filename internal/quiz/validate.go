package quiz

import "fmt"

// Validate checks the quiz against the full structural contract before
// any downstream code trusts it: top-level shape plus per-question
// completeness. The generation service and the generation client both
// run it, so a quiz that reaches scoring or display is always complete.
func (q *Quiz) Validate() error {
	if q.Passage == "" {
		return fmt.Errorf("passage is empty")
	}
	if len(q.Questions) == 0 {
		return fmt.Errorf("quiz has no questions")
	}
	for i := range q.Questions {
		if err := q.Questions[i].validate(); err != nil {
			return fmt.Errorf("question %d: %w", i, err)
		}
	}
	return nil
}

func (qn *Question) validate() error {
	if qn.QuestionText == "" {
		return fmt.Errorf("questionText is empty")
	}
	if qn.Explanation == "" {
		return fmt.Errorf("explanation is empty")
	}

	switch qn.Type {
	case TypeMultipleChoice:
		if len(qn.Options) != 4 {
			return fmt.Errorf("expected 4 options, got %d", len(qn.Options))
		}
		for j, opt := range qn.Options {
			if opt == "" {
				return fmt.Errorf("option %d is empty", j)
			}
		}
		if qn.CorrectAnswerIndex == nil {
			return fmt.Errorf("correctAnswerIndex is missing")
		}
		if *qn.CorrectAnswerIndex < 0 || *qn.CorrectAnswerIndex >= len(qn.Options) {
			return fmt.Errorf("correctAnswerIndex %d out of range", *qn.CorrectAnswerIndex)
		}
		if qn.CorrectAnswerText != "" {
			return fmt.Errorf("correctAnswerText set on a multiple-choice question")
		}
	case TypeShortAnswer:
		if qn.CorrectAnswerText == "" {
			return fmt.Errorf("correctAnswerText is missing")
		}
		if len(qn.Options) > 0 || qn.CorrectAnswerIndex != nil {
			return fmt.Errorf("multiple-choice fields set on a short-answer question")
		}
	default:
		return fmt.Errorf("unknown question type %q", qn.Type)
	}
	return nil
}
