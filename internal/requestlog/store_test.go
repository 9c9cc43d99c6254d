package requestlog

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_AppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	entries := []Entry{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "quiz-gen", LatencyMs: 1200, InputTokens: 800, OutputTokens: 1500, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "quiz-gen", LatencyMs: 900, Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range entries {
		if err := s.Append(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	for _, e := range got {
		if e.ID == "" {
			t.Fatal("expected assigned ID")
		}
		if e.CreatedAt.IsZero() {
			t.Fatal("expected assigned timestamp")
		}
	}
}

func TestStore_RecentLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for range 5 {
		if err := s.Append(ctx, Entry{Provider: "mock", Model: "mock", Purpose: "quiz-gen", Success: true}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := s.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
}

func TestStore_Summarize(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	seed := []Entry{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "quiz-gen", LatencyMs: 1000, InputTokens: 500, OutputTokens: 900, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "quiz-gen", LatencyMs: 2000, InputTokens: 700, OutputTokens: 1100, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "quiz-gen", LatencyMs: 3000, InputTokens: 600, OutputTokens: 0, Success: false, ErrorMessage: "down"},
	}
	for _, e := range seed {
		if err := s.Append(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	st, err := s.Summarize(ctx)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if st.TotalRequests != 3 {
		t.Fatalf("expected 3 requests, got %d", st.TotalRequests)
	}
	if st.Successes != 2 || st.Failures != 1 {
		t.Fatalf("expected 2/1 success/failure, got %d/%d", st.Successes, st.Failures)
	}
	if st.InputTokens != 1800 || st.OutputTokens != 2000 {
		t.Fatalf("unexpected token totals: %d/%d", st.InputTokens, st.OutputTokens)
	}
	if st.AvgLatencyMs != 2000 {
		t.Fatalf("expected avg latency 2000, got %f", st.AvgLatencyMs)
	}
	if len(st.ByModel) != 2 {
		t.Fatalf("expected 2 models, got %d", len(st.ByModel))
	}
	if st.ByModel["gemini-2.5-flash"].Requests != 2 {
		t.Fatalf("unexpected per-model count: %+v", st.ByModel)
	}
}

func TestStore_SummarizeEmpty(t *testing.T) {
	s := openTestStore(t)

	st, err := s.Summarize(context.Background())
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if st.TotalRequests != 0 || st.Failures != 0 {
		t.Fatalf("expected zeroes, got %+v", st)
	}
}

func TestStore_TruncatesBodies(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	long := make([]byte, maxBodyLen*2)
	for i := range long {
		long[i] = 'x'
	}
	err := s.Append(ctx, Entry{
		Provider: "mock", Model: "mock", Purpose: "quiz-gen", Success: true,
		RequestBody:  string(long),
		ResponseBody: string(long),
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := s.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(got[0].RequestBody) != maxBodyLen {
		t.Fatalf("expected truncated request body, got %d bytes", len(got[0].RequestBody))
	}
	if len(got[0].ResponseBody) != maxBodyLen {
		t.Fatalf("expected truncated response body, got %d bytes", len(got[0].ResponseBody))
	}
}
