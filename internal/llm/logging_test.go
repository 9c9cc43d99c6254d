package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

type captureLog struct {
	entries []LogEntry
	err     error
}

func (c *captureLog) Append(_ context.Context, e LogEntry) error {
	c.entries = append(c.entries, e)
	return c.err
}

func TestLogging_RecordsSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"ok":true}`),
			Usage:   Usage{InputTokens: 100, OutputTokens: 50, TotalTokens: 150},
		},
	)
	log := &captureLog{}
	p := WithLogging(mock, log)

	ctx := WithPurpose(context.Background(), "quiz-gen")
	_, err := p.Generate(ctx, Request{
		System:   "出题老师",
		Messages: []Message{{Role: RoleUser, Content: "请生成试题"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(log.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(log.entries))
	}
	e := log.entries[0]
	if !e.Success {
		t.Fatal("expected success entry")
	}
	if e.Purpose != "quiz-gen" {
		t.Fatalf("expected purpose 'quiz-gen', got %q", e.Purpose)
	}
	if e.InputTokens != 100 || e.OutputTokens != 50 {
		t.Fatalf("unexpected token counts: %d/%d", e.InputTokens, e.OutputTokens)
	}
	if e.ResponseBody != `{"ok":true}` {
		t.Fatalf("unexpected response body: %q", e.ResponseBody)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	log := &captureLog{}
	p := WithLogging(mock, log)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(log.entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(log.entries))
	}
	e := log.entries[0]
	if e.Success {
		t.Fatal("expected failure entry")
	}
	if e.ErrorMessage == "" {
		t.Fatal("expected error message")
	}
}

func TestLogging_AppendFailureDoesNotFailGeneration(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	log := &captureLog{err: errors.New("disk full")}
	p := WithLogging(mock, log)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}
