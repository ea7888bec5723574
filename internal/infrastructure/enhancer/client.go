// Package enhancer rewrites captions through an OpenAI-compatible chat
// completions endpoint.
package enhancer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"togetherly/internal/domain/content"
	"togetherly/internal/shared/config"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"
	maxTokens      = 400
	// responses larger than this are treated as garbage
	maxResponseBytes = 1 << 20
)

var ErrEmptyCompletion = errors.New("enhancer: completion had no text")

// Client implements content.TextEnhancer.
type Client struct {
	apiKey      string
	model       string
	baseURL     string
	temperature float64
	httpClient  *http.Client
}

// NewClient returns nil when enhancement is disabled or has no API key, which
// the caption composer treats as "no enhancer".
func NewClient(cfg config.EnhancerConfig) *Client {
	if !cfg.Enabled || cfg.APIKey == "" {
		return nil
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		apiKey:      cfg.APIKey,
		model:       model,
		baseURL:     baseURL,
		temperature: cfg.Temperature,
		httpClient:  &http.Client{Timeout: cfg.Timeout()},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Enhance asks the model to polish text without touching its hashtags.
func (c *Client) Enhance(ctx context.Context, text string, ec content.EnhanceContext) (string, error) {
	req := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt(ec)},
			{Role: "user", Content: text},
		},
		MaxTokens:   maxTokens,
		Temperature: c.temperature,
	}
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("enhancer request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("enhancer error (status %d): %s", resp.StatusCode, truncate(string(respBody), 200))
	}

	var out chatResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	result := strings.TrimSpace(out.Choices[0].Message.Content)
	if result == "" {
		return "", ErrEmptyCompletion
	}
	return result, nil
}

func systemPrompt(ec content.EnhanceContext) string {
	var b strings.Builder
	b.WriteString("You polish short social media copy for a small business. ")
	b.WriteString("Keep the meaning, keep it roughly the same length, and return only the rewritten text.")
	if ec.Platform != "" {
		fmt.Fprintf(&b, " Platform: %s.", ec.Platform)
	}
	if ec.PlatformHint != "" {
		fmt.Fprintf(&b, " Platform guidance: %s.", ec.PlatformHint)
	}
	if ec.ToneBlurb != "" {
		fmt.Fprintf(&b, " Voice: %s.", ec.ToneBlurb)
	} else if ec.Tone != "" {
		fmt.Fprintf(&b, " Tone: %s.", ec.Tone)
	}
	if ec.Industry != "" {
		fmt.Fprintf(&b, " Industry: %s.", ec.Industry)
	}
	if len(ec.Hashtags) > 0 {
		fmt.Fprintf(&b, " Keep these hashtags exactly as written: %s.", strings.Join(ec.Hashtags, " "))
	}
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
