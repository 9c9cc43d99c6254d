// Package client calls the quiz generation service over HTTP. One
// request per generation, no automatic retry: a failure surfaces to the
// learner, who decides whether to try again.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/liuyang/duwen/internal/quiz"
	"github.com/liuyang/duwen/internal/quizgen"
)

// GenerationError wraps any client-side failure with a message fit for
// display to the learner. The cause keeps the technical detail for
// logs.
type GenerationError struct {
	// UserMessage is the Chinese-language message shown in the UI.
	UserMessage string
	Err         error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Client talks to a running quiz generation service.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the service at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 90 * time.Second},
	}
}

// Generate requests one quiz. Implements quizgen.Generator.
func (c *Client) Generate(ctx context.Context, p quizgen.Params) (*quiz.Quiz, error) {
	if err := p.Validate(); err != nil {
		return nil, &GenerationError{UserMessage: "生成试题失败: 参数无效。", Err: err}
	}

	body, err := json.Marshal(p)
	if err != nil {
		return nil, &GenerationError{UserMessage: "生成试题时发生未知错误。", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/quiz", bytes.NewReader(body))
	if err != nil {
		return nil, &GenerationError{UserMessage: "生成试题时发生未知错误。", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &GenerationError{UserMessage: "生成试题失败: 无法连接服务。", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &GenerationError{
			UserMessage: fmt.Sprintf("生成试题失败: %s", serviceError(resp)),
			Err:         fmt.Errorf("service returned %d", resp.StatusCode),
		}
	}

	var q quiz.Quiz
	if err := json.NewDecoder(resp.Body).Decode(&q); err != nil {
		return nil, &GenerationError{UserMessage: "生成试题失败: 无法解析服务返回的数据。", Err: err}
	}

	// Validate at the boundary; a malformed quiz must never reach the
	// session.
	if err := q.Validate(); err != nil {
		return nil, &GenerationError{UserMessage: "生成试题失败: 服务返回的试题不完整。", Err: err}
	}

	return &q, nil
}

// serviceError extracts the {"error": ...} body, falling back to the
// status code when the body is not in the expected shape.
func serviceError(resp *http.Response) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return fmt.Sprintf("请求失败，状态码: %d", resp.StatusCode)
}
