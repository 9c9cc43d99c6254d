// Package requestlog persists one row per model call to a local SQLite
// database. It backs the stats command and the llm logging decorator.
// Quizzes themselves are never stored; this is diagnostics only.
package requestlog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS requests (
	id            TEXT PRIMARY KEY,
	created_at    TIMESTAMP NOT NULL,
	provider      TEXT NOT NULL,
	model         TEXT NOT NULL,
	purpose       TEXT NOT NULL,
	latency_ms    INTEGER NOT NULL,
	input_tokens  INTEGER NOT NULL,
	output_tokens INTEGER NOT NULL,
	success       INTEGER NOT NULL,
	error_message TEXT NOT NULL DEFAULT '',
	request_body  TEXT NOT NULL DEFAULT '',
	response_body TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_requests_created_at ON requests (created_at);
`

// maxBodyLen caps stored request/response bodies so a verbose passage
// cannot bloat the log file.
const maxBodyLen = 4096

// Store is an append-only log of model requests.
type Store struct {
	db *sql.DB
}

// Open connects to the SQLite database at dsn, applies pragmas, and
// creates the schema if missing.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Entry is one recorded model call.
type Entry struct {
	ID           string
	CreatedAt    time.Time
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

// Append records one entry. ID and CreatedAt are assigned here.
func (s *Store) Append(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO requests
			(id, created_at, provider, model, purpose, latency_ms,
			 input_tokens, output_tokens, success, error_message,
			 request_body, response_body)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(),
		time.Now().UTC(),
		e.Provider,
		e.Model,
		e.Purpose,
		e.LatencyMs,
		e.InputTokens,
		e.OutputTokens,
		e.Success,
		e.ErrorMessage,
		truncate(e.RequestBody, maxBodyLen),
		truncate(e.ResponseBody, maxBodyLen),
	)
	if err != nil {
		return fmt.Errorf("insert request: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, provider, model, purpose, latency_ms,
		       input_tokens, output_tokens, success, error_message,
		       request_body, response_body
		FROM requests
		ORDER BY created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query requests: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.ID, &e.CreatedAt, &e.Provider, &e.Model, &e.Purpose,
			&e.LatencyMs, &e.InputTokens, &e.OutputTokens, &e.Success,
			&e.ErrorMessage, &e.RequestBody, &e.ResponseBody,
		); err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Stats summarizes the log for the stats command.
type Stats struct {
	TotalRequests int
	Successes     int
	Failures      int
	InputTokens   int
	OutputTokens  int
	AvgLatencyMs  float64
	ByModel       map[string]ModelStats
}

// ModelStats is the per-model slice of Stats.
type ModelStats struct {
	Requests     int
	InputTokens  int
	OutputTokens int
}

// Summarize aggregates all recorded requests.
func (s *Store) Summarize(ctx context.Context) (*Stats, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(success), 0),
		       COALESCE(SUM(input_tokens), 0),
		       COALESCE(SUM(output_tokens), 0),
		       COALESCE(AVG(latency_ms), 0)
		FROM requests`)

	st := &Stats{ByModel: make(map[string]ModelStats)}
	if err := row.Scan(&st.TotalRequests, &st.Successes, &st.InputTokens, &st.OutputTokens, &st.AvgLatencyMs); err != nil {
		return nil, fmt.Errorf("aggregate requests: %w", err)
	}
	st.Failures = st.TotalRequests - st.Successes

	rows, err := s.db.QueryContext(ctx, `
		SELECT model, COUNT(*), SUM(input_tokens), SUM(output_tokens)
		FROM requests
		GROUP BY model`)
	if err != nil {
		return nil, fmt.Errorf("aggregate by model: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var model string
		var ms ModelStats
		if err := rows.Scan(&model, &ms.Requests, &ms.InputTokens, &ms.OutputTokens); err != nil {
			return nil, fmt.Errorf("scan model stats: %w", err)
		}
		st.ByModel[model] = ms
	}
	return st, rows.Err()
}

// applyPragmas configures SQLite for single-user append workloads.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. DUWEN_DB environment variable
// 2. $XDG_DATA_HOME/duwen/duwen.db
// 3. ~/.local/share/duwen/duwen.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("DUWEN_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "duwen", "duwen.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
