// Package claude forwards prompts to the Anthropic Messages API and hands the
// provider's response body back unchanged.
package claude

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"brand-sell/pkg/config"
)

const anthropicVersion = "2023-06-01"

// ErrGeneration wraps every failure of a generation call: transport errors,
// non-2xx statuses and bodies that are not a Messages response.
var ErrGeneration = errors.New("generation failed")

type Client struct {
	apiURL     string
	apiKey     string
	model      string
	maxTokens  int
	httpClient *http.Client
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type MessagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []Message `json:"messages"`
}

type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type MessagesResponse struct {
	ID         string         `json:"id"`
	Model      string         `json:"model"`
	Role       string         `json:"role"`
	Content    []ContentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
}

func NewClient(cfg *config.Config) *Client {
	return NewClientWithHTTP(cfg.ClaudeAPIURL, cfg.AnthropicAPIKey, cfg.ClaudeModel, cfg.ClaudeMaxTokens,
		&http.Client{Timeout: cfg.ClaudeTimeout})
}

func NewClientWithHTTP(apiURL, apiKey, model string, maxTokens int, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}
	return &Client{
		apiURL:     apiURL,
		apiKey:     apiKey,
		model:      model,
		maxTokens:  maxTokens,
		httpClient: httpClient,
	}
}

// Generate sends prompt as a single user message and returns the response body
// verbatim. There is no retry.
func (c *Client) Generate(ctx context.Context, prompt string) (json.RawMessage, error) {
	payload, err := json.Marshal(MessagesRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages:  []Message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrGeneration, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", ErrGeneration, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d, body: %s", ErrGeneration, resp.StatusCode, string(body))
	}

	var decoded MessagesResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v, body: %s", ErrGeneration, err, string(body))
	}
	if decoded.Content == nil {
		return nil, fmt.Errorf("%w: response has no content, body: %s", ErrGeneration, string(body))
	}

	return json.RawMessage(body), nil
}

// FirstText returns the text of the first content block, which is what the
// web client renders.
func FirstText(raw json.RawMessage) (string, error) {
	var decoded MessagesResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	if len(decoded.Content) == 0 {
		return "", nil
	}
	return decoded.Content[0].Text, nil
}
