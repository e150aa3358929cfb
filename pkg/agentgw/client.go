package agentgw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the remote agent backend over JSON HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a backend client. A zero timeout falls back to the
// default; agent replies can take a while (LLM round trips upstream).
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Ask sends a question to the scheduler agent and returns its text reply.
func (c *Client) Ask(ctx context.Context, req AskRequest) (string, error) {
	env, err := c.post(ctx, pathScheduler, req)
	if err != nil {
		return "", err
	}
	return decodeText(env)
}

// Converse sends a question to the doubt-solving agent.
func (c *Client) Converse(ctx context.Context, req AskRequest) (string, error) {
	env, err := c.post(ctx, pathTutor, req)
	if err != nil {
		return "", err
	}
	return decodeText(env)
}

// QuizAction invokes the quiz agent and returns the raw response payload for
// the caller to decode into its own types.
func (c *Client) QuizAction(ctx context.Context, req QuizRequest) (json.RawMessage, error) {
	env, err := c.post(ctx, pathQuiz, req)
	if err != nil {
		return nil, err
	}
	if len(env.Response) == 0 {
		return nil, fmt.Errorf("empty response from quiz agent")
	}
	return env.Response, nil
}

// Health checks backend liveness.
func (c *Client) Health(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+pathHealth, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to reach agent backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("agent backend unhealthy: status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, payload any) (*envelope, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call agent backend: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read agent response: %w", err)
	}

	var env envelope
	if jsonErr := json.Unmarshal(raw, &env); jsonErr != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("agent backend error %d: %s", resp.StatusCode, string(raw))
		}
		return nil, fmt.Errorf("failed to decode agent response: %w", jsonErr)
	}

	if resp.StatusCode != http.StatusOK {
		if env.Error != "" {
			return nil, fmt.Errorf("agent backend error %d: %s", resp.StatusCode, env.Error)
		}
		return nil, fmt.Errorf("agent backend error %d", resp.StatusCode)
	}

	return &env, nil
}

// decodeText unwraps the response value as plain text. The backend encodes
// text replies as JSON strings; anything else is returned verbatim.
func decodeText(env *envelope) (string, error) {
	if len(env.Response) == 0 {
		if env.Message != "" {
			return env.Message, nil
		}
		return "", fmt.Errorf("empty response from agent")
	}

	var text string
	if err := json.Unmarshal(env.Response, &text); err == nil {
		return text, nil
	}
	// Non-string payload on a text endpoint: pass the raw JSON through.
	return string(env.Response), nil
}
