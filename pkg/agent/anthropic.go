package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const anthropicEndpoint = "https://api.anthropic.com/v1/messages"

// Client is the text-generation transport used by the agents. It is satisfied
// by the Anthropic messages API client and by test fakes.
type Client interface {
	Messages(ctx context.Context, req MessagesRequest) (*MessagesResponse, error)
}

// Config configures the Anthropic client.
type Config struct {
	APIKey    string
	Model     string
	MaxTokens int
}

// Message is one turn of an exchange. Content is either a string or a slice
// of ContentBlock values (for tool results).
type Message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

// Tool describes a tool offered to the model.
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

// ContentBlock is one block of a response or tool-result message.
type ContentBlock struct {
	Type      string          `json:"type"`
	Text      string          `json:"text,omitempty"`
	ID        string          `json:"id,omitempty"`
	Name      string          `json:"name,omitempty"`
	Input     json.RawMessage `json:"input,omitempty"`
	ToolUseID string          `json:"tool_use_id,omitempty"`
	Content   string          `json:"content,omitempty"`
}

// MessagesRequest is one call to the messages API.
type MessagesRequest struct {
	System   string
	Messages []Message
	Tools    []Tool
}

// MessagesResponse is the subset of the API response the agents read.
type MessagesResponse struct {
	StopReason string         `json:"stop_reason"`
	Content    []ContentBlock `json:"content"`
}

// Text concatenates all text blocks of the response.
func (r *MessagesResponse) Text() string {
	var b strings.Builder
	for _, block := range r.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String()
}

// ToolUses returns the tool invocation blocks of the response.
func (r *MessagesResponse) ToolUses() []ContentBlock {
	var uses []ContentBlock
	for _, block := range r.Content {
		if block.Type == "tool_use" {
			uses = append(uses, block)
		}
	}
	return uses
}

type anthropicClient struct {
	httpClient *http.Client
	apiKey     string
	model      string
	maxTokens  int
}

// NewAnthropicClient creates a messages API client.
func NewAnthropicClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("anthropic API key is required")
	}
	model := cfg.Model
	if model == "" {
		model = "claude-3-5-haiku-20241022"
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 2000
	}
	return &anthropicClient{
		apiKey:    cfg.APIKey,
		model:     model,
		maxTokens: maxTokens,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}, nil
}

func (c *anthropicClient) Messages(ctx context.Context, req MessagesRequest) (*MessagesResponse, error) {
	requestBody := map[string]any{
		"model":      c.model,
		"max_tokens": c.maxTokens,
		"messages":   req.Messages,
	}
	if req.System != "" {
		requestBody["system"] = req.System
	}
	if len(req.Tools) > 0 {
		requestBody["tools"] = req.Tools
	}

	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicEndpoint, strings.NewReader(string(jsonBody)))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("anthropic API error (status %d): %s", resp.StatusCode, string(body))
	}

	var response MessagesResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if len(response.Content) == 0 {
		return nil, fmt.Errorf("no content in response")
	}
	return &response, nil
}

// cleanMarkdownWrapper strips ```json fences the model sometimes adds.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}
