package provider

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

// ChatClient talks to the chat completions endpoint. It is the fallback
// variant for providers without the Responses API: schema-constrained calls
// enable JSON mode and serialize the schema into the user message.
type ChatClient struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
}

// Chat completions request/response structures
type chatRequest struct {
	Model          string              `json:"model"`
	Messages       []chatMessage       `json:"messages"`
	ResponseFormat *chatResponseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   chatUsage    `json:"usage"`
	Error   *chatError   `json:"error,omitempty"`
}

type chatChoice struct {
	Index        int         `json:"index"`
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason,omitempty"`
}

type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type chatError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}

// NewChatClient creates a chat completions client from a provider config.
func NewChatClient(cfg *Config) (*ChatClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = defaultTimeoutSeconds
	}

	return &ChatClient{
		name:    cfg.Name,
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}, nil
}

// Generate implements Client.Generate against POST /chat/completions.
func (c *ChatClient) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	startTime := time.Now()

	apiReq, err := c.buildRequest(req)
	if err != nil {
		return nil, err
	}

	reqBody, err := json.Marshal(apiReq)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	httpResp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		var errResp chatResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != nil {
			return nil, fmt.Errorf("openai error: %s", errResp.Error.Message)
		}
		return nil, fmt.Errorf("http error %d: %s", httpResp.StatusCode, truncateBody(respBody))
	}

	var apiResp chatResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	content := ""
	if len(apiResp.Choices) > 0 {
		content = apiResp.Choices[0].Message.Content
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyOutput
	}

	return &GenerateResponse{
		Content:      content,
		Model:        apiResp.Model,
		TokensUsed:   apiResp.Usage.TotalTokens,
		InputTokens:  apiResp.Usage.PromptTokens,
		OutputTokens: apiResp.Usage.CompletionTokens,
		Latency:      time.Since(startTime),
		Provider:     c.name,
	}, nil
}

// buildRequest constructs a chat completions request. A schema-bearing
// request gets JSON mode plus the schema serialized ahead of the user
// input, since chat completions has no first-class schema slot.
func (c *ChatClient) buildRequest(req *GenerateRequest) (*chatRequest, error) {
	input := req.Input
	apiReq := &chatRequest{Model: req.Model}

	if req.Schema != nil {
		schemaJSON, err := json.Marshal(req.Schema.Schema)
		if err != nil {
			return nil, fmt.Errorf("marshal schema: %w", err)
		}
		input = "Return JSON that strictly matches this schema:\n" + string(schemaJSON) + "\n\n" + input
		apiReq.ResponseFormat = &chatResponseFormat{Type: "json_object"}
	}

	messages := []chatMessage{}
	if req.Instructions != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.Instructions})
	}
	messages = append(messages, chatMessage{Role: "user", Content: input})
	apiReq.Messages = messages

	return apiReq, nil
}

// Name implements Client.Name.
func (c *ChatClient) Name() string {
	return c.name
}

// Close implements Client.Close.
func (c *ChatClient) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}
