package requestlog

import (
	"context"

	"github.com/liuyang/duwen/internal/llm"
)

// Recorder adapts a Store to the llm.RequestLog interface.
type Recorder struct {
	store *Store
}

// NewRecorder wraps the store for use as an llm request log.
func NewRecorder(s *Store) *Recorder {
	return &Recorder{store: s}
}

func (r *Recorder) Append(ctx context.Context, e llm.LogEntry) error {
	return r.store.Append(ctx, Entry{
		Provider:     e.Provider,
		Model:        e.Model,
		Purpose:      e.Purpose,
		LatencyMs:    e.LatencyMs,
		InputTokens:  e.InputTokens,
		OutputTokens: e.OutputTokens,
		Success:      e.Success,
		ErrorMessage: e.ErrorMessage,
		RequestBody:  e.RequestBody,
		ResponseBody: e.ResponseBody,
	})
}
