package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
)

// RequestLog receives one entry per model call. Implemented by the
// requestlog package; defined here so llm does not import it.
type RequestLog interface {
	Append(ctx context.Context, e LogEntry) error
}

// LogEntry describes a single model call for diagnostics. Raw upstream
// detail lives only here; callers see generic failures.
type LogEntry struct {
	Provider     string
	Model        string
	Purpose      string
	LatencyMs    int64
	InputTokens  int
	OutputTokens int
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// loggingProvider decorates a Provider with request logging.
type loggingProvider struct {
	inner Provider
	log   RequestLog
}

// WithLogging wraps p so every call is recorded to log.
func WithLogging(p Provider, log RequestLog) Provider {
	return &loggingProvider{inner: p, log: log}
}

func (l *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	entry := LogEntry{
		Provider:    l.inner.ModelID(),
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: renderRequest(req),
	}

	if resp != nil {
		entry.Model = resp.Model
		entry.InputTokens = resp.Usage.InputTokens
		entry.OutputTokens = resp.Usage.OutputTokens
		entry.ResponseBody = string(resp.Content)
	}
	if err != nil {
		entry.ErrorMessage = err.Error()
	}

	// A failed log write must not fail the generation.
	if logErr := l.log.Append(ctx, entry); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record model request: %v\n", logErr)
	}

	return resp, err
}

func (l *loggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// renderRequest flattens the request into a readable transcript.
func renderRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		fmt.Fprintf(&b, "[schema: %s]\n", req.Schema.Name)
	}

	return b.String()
}
