package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/liuyang/duwen/internal/llm"
	"github.com/liuyang/duwen/internal/quiz"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// Generate produces a quiz for the given parameters.
func (g *LLMGenerator) Generate(ctx context.Context, p Params) (*quiz.Quiz, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	ctx = llm.WithPurpose(ctx, "quiz-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(p)},
		},
		Schema:      QuizSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var q quiz.Quiz
	if err := json.Unmarshal(resp.Content, &q); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(&q, p); verr != nil {
			return nil, verr
		}
	}

	return &q, nil
}
