// Package assist wraps the optional generative-model collaborator. Every
// call is bounded in prompt size, completion size, and wall time; any failure
// degrades that single call, and repeated failures trip a circuit breaker
// that skips the remaining calls in the run.
package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// ErrUnavailable is returned without any network activity once the circuit
// breaker has tripped, or when no assistant is configured.
var ErrUnavailable = errors.New("assistant unavailable")

// Completer is the minimal capability the pipeline needs from the assistant.
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// Client talks to an Ollama-compatible completion endpoint.
type Client struct {
	baseURL      string
	model        string
	httpClient   *http.Client
	failureLimit int

	mu       sync.Mutex
	failures int
	tripped  bool

	Stats *CallStats
}

func NewClient(baseURL, model string, timeout time.Duration, failureLimit int) *Client {
	if failureLimit <= 0 {
		failureLimit = 3
	}
	return &Client{
		baseURL:      baseURL,
		model:        model,
		failureLimit: failureLimit,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		Stats: NewCallStats(time.Hour),
	}
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

type generateResponse struct {
	Response string `json:"response"`
	Error    string `json:"error"`
}

// Complete issues one bounded completion request. Generation is deterministic
// (temperature 0) so identical runs produce identical output.
func (c *Client) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if !c.Available() {
		return "", ErrUnavailable
	}

	reqBody := generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: 0,
			NumPredict:  maxTokens,
		},
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	start := time.Now()
	text, err := c.do(ctx, body)
	if err != nil {
		c.recordFailure()
		return "", err
	}

	c.recordSuccess()
	c.Stats.Record(time.Since(start).Milliseconds())
	return text, nil
}

func (c *Client) do(ctx context.Context, body []byte) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("assistant api: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return "", &RetryableError{
			StatusCode: resp.StatusCode,
			Message:    string(respBody),
		}
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant api status %d: %s", resp.StatusCode, truncate(string(respBody), 200))
	}

	var apiResp generateResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if apiResp.Error != "" {
		return "", fmt.Errorf("assistant error: %s", apiResp.Error)
	}
	return apiResp.Response, nil
}

// Available reports whether the client will still attempt calls.
func (c *Client) Available() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.tripped
}

func (c *Client) recordFailure() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures++
	if c.failures >= c.failureLimit {
		c.tripped = true
	}
}

func (c *Client) recordSuccess() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures = 0
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Close releases resources.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// RetryableError indicates a transient upstream failure. The pipeline never
// retries within a run, but the classification feeds the circuit breaker and
// the logs.
type RetryableError struct {
	StatusCode int
	Message    string
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable error (status %d): %s", e.StatusCode, truncate(e.Message, 200))
}
