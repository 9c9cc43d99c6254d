package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/liuyang/duwen/internal/llm"
	"github.com/liuyang/duwen/internal/quiz"
)

const validQuizJSON = `{
	"passage": "小明每天早上七点起床。他先喝一杯水，然后去公园跑步。",
	"questions": [
		{
			"type": "mc",
			"questionText": "小明每天几点起床？",
			"options": ["六点", "七点", "八点", "九点"],
			"correctAnswerIndex": 1,
			"explanation": "短文第一句说小明每天早上七点起床。"
		},
		{
			"type": "sa",
			"questionText": "小明起床后先做什么？",
			"correctAnswerText": "先喝一杯水。",
			"explanation": "短文说他先喝一杯水，然后去公园跑步。"
		}
	]
}`

func testParams() Params {
	return Params{
		Difficulty:   "初级 (HSK 1-2)",
		Topic:        "日常生活",
		NumQuestions: 2,
		QuestionType: TypeMixed,
	}
}

func TestLLMGenerator_Success(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validQuizJSON)},
	)
	gen := New(mock, DefaultConfig())

	q, err := gen.Generate(context.Background(), testParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(q.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(q.Questions))
	}
	if q.Questions[0].Type != quiz.TypeMultipleChoice {
		t.Fatalf("expected mc first, got %q", q.Questions[0].Type)
	}
	if *q.Questions[0].CorrectAnswerIndex != 1 {
		t.Fatalf("expected index 1, got %d", *q.Questions[0].CorrectAnswerIndex)
	}
}

func TestLLMGenerator_SendsSchemaAndPrompt(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validQuizJSON)},
	)
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != QuizSchema {
		t.Fatal("expected quiz schema on the request")
	}
	if req.System == "" {
		t.Fatal("expected system prompt")
	}
	if len(req.Messages) != 1 || req.Messages[0].Role != llm.RoleUser {
		t.Fatalf("expected single user message, got %v", req.Messages)
	}
}

func TestLLMGenerator_InvalidParamsRejectedBeforeCall(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := New(mock, DefaultConfig())

	p := testParams()
	p.NumQuestions = 0
	_, err := gen.Generate(context.Background(), p)
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 0 {
		t.Fatalf("expected no provider call, got %d", mock.CallCount())
	}
}

func TestLLMGenerator_ProviderErrorPropagates(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
	)
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testParams())
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestLLMGenerator_MalformedJSONFails(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{not json`)},
	)
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testParams())
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestLLMGenerator_StructurallyInvalidQuizFails(t *testing.T) {
	// mc question with only two options.
	bad := `{
		"passage": "短文。",
		"questions": [
			{
				"type": "mc",
				"questionText": "问题？",
				"options": ["对", "错"],
				"correctAnswerIndex": 0,
				"explanation": "解释。"
			}
		]
	}`
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(bad)},
	)
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testParams())
	if err == nil {
		t.Fatal("expected validation error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got: %T", err)
	}
	if verr.Validator != "structural" {
		t.Fatalf("expected structural validator, got %q", verr.Validator)
	}
}

func TestLLMGenerator_EmptyQuestionListFails(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"passage":"短文。","questions":[]}`)},
	)
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), testParams())
	if err == nil {
		t.Fatal("expected error for empty question list")
	}
}

func TestLLMGenerator_CountMismatchTolerated(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validQuizJSON)},
	)
	gen := New(mock, DefaultConfig())

	p := testParams()
	p.NumQuestions = 5 // Model returned 2.
	q, err := gen.Generate(context.Background(), p)
	if err != nil {
		t.Fatalf("count mismatch should be tolerated: %v", err)
	}
	if len(q.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(q.Questions))
	}
}
