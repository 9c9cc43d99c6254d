// Package scoring turns a quiz plus the learner's raw answers into a
// graded result. Scoring is a pure function: no side effects, the same
// inputs always produce the same result.
package scoring

import "github.com/liuyang/duwen/internal/quiz"

// Score grades the quiz against the given answers.
//
// Multiple-choice questions are compared against CorrectAnswerIndex;
// an absent answer counts as incorrect. Short-answer questions carry
// the learner's text through untouched with the reference answer
// alongside, and no correctness judgment — the learner self-grades.
func Score(q *quiz.Quiz, answers quiz.Answers) *quiz.Result {
	res := &quiz.Result{
		Answers: make(map[int]quiz.AnswerRecord, len(q.Questions)),
	}

	for i, qn := range q.Questions {
		rec := quiz.AnswerRecord{}
		ans, answered := answers[i]
		if answered {
			a := ans
			rec.UserAnswer = &a
		}

		switch qn.Type {
		case quiz.TypeMultipleChoice:
			res.TotalMC++
			correctIdx := -1
			if qn.CorrectAnswerIndex != nil {
				correctIdx = *qn.CorrectAnswerIndex
			}
			rec.CorrectOption = correctIdx

			correct := answered && ans.Kind == quiz.KindOption && ans.Option == correctIdx
			rec.Correct = &correct
			if correct {
				res.Score++
			}
		case quiz.TypeShortAnswer:
			rec.CorrectText = qn.CorrectAnswerText
		}

		res.Answers[i] = rec
	}

	return res
}
