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

// maxErrorBody bounds how much of an error response body ends up in error
// messages.
const maxErrorBody = 2048

// ResponsesClient talks to the OpenAI Responses API. It is the variant used
// for structured generation: a supplied schema is sent as a first-class
// output format instead of being pasted into the prompt.
type ResponsesClient struct {
	name    string
	apiKey  string
	baseURL string
	client  *http.Client
}

// Responses API request/response structures
type responsesRequest struct {
	Model        string         `json:"model"`
	Instructions string         `json:"instructions,omitempty"`
	Input        string         `json:"input"`
	Text         *responsesText `json:"text,omitempty"`
}

type responsesText struct {
	Format *responsesFormat `json:"format"`
}

type responsesFormat struct {
	Type   string                 `json:"type"`
	Name   string                 `json:"name,omitempty"`
	Schema map[string]interface{} `json:"schema,omitempty"`
	Strict bool                   `json:"strict,omitempty"`
}

type responsesResponse struct {
	ID     string            `json:"id"`
	Object string            `json:"object"`
	Model  string            `json:"model"`
	Status string            `json:"status"`
	Output []responsesOutput `json:"output"`
	Usage  responsesUsage    `json:"usage"`
	Error  *responsesError   `json:"error,omitempty"`
}

type responsesOutput struct {
	Type    string             `json:"type"`
	Role    string             `json:"role,omitempty"`
	Content []responsesContent `json:"content,omitempty"`
}

type responsesContent struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type responsesUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

type responsesError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}

// NewResponsesClient creates a Responses API client from a provider config.
func NewResponsesClient(cfg *Config) (*ResponsesClient, error) {
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

	return &ResponsesClient{
		name:    cfg.Name,
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}, nil
}

// Generate implements Client.Generate against POST /responses.
func (c *ResponsesClient) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	startTime := time.Now()

	apiReq := &responsesRequest{
		Model:        req.Model,
		Instructions: req.Instructions,
		Input:        req.Input,
	}
	if req.Schema != nil {
		apiReq.Text = &responsesText{
			Format: &responsesFormat{
				Type:   "json_schema",
				Name:   req.Schema.Name,
				Schema: req.Schema.Schema,
				Strict: req.Schema.Strict,
			},
		}
	}

	reqBody, err := json.Marshal(apiReq)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/responses", bytes.NewReader(reqBody))
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
		var errResp responsesResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != nil {
			return nil, fmt.Errorf("openai error: %s", errResp.Error.Message)
		}
		return nil, fmt.Errorf("http error %d: %s", httpResp.StatusCode, truncateBody(respBody))
	}

	var apiResp responsesResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if apiResp.Error != nil && apiResp.Error.Message != "" {
		return nil, fmt.Errorf("openai error: %s", apiResp.Error.Message)
	}

	content := aggregateOutputText(apiResp.Output)
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyOutput
	}

	return &GenerateResponse{
		Content:      content,
		Model:        apiResp.Model,
		TokensUsed:   apiResp.Usage.TotalTokens,
		InputTokens:  apiResp.Usage.InputTokens,
		OutputTokens: apiResp.Usage.OutputTokens,
		Latency:      time.Since(startTime),
		Provider:     c.name,
	}, nil
}

// aggregateOutputText concatenates every output_text part across the
// response's message items. The Responses API interleaves reasoning items
// with message items; only the latter carry user-visible text.
func aggregateOutputText(output []responsesOutput) string {
	var sb strings.Builder
	for _, item := range output {
		if item.Type != "message" {
			continue
		}
		for _, part := range item.Content {
			if part.Type == "output_text" {
				sb.WriteString(part.Text)
			}
		}
	}
	return sb.String()
}

// truncateBody bounds a response body for inclusion in an error message.
func truncateBody(body []byte) string {
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return string(body)
}

// Name implements Client.Name.
func (c *ResponsesClient) Name() string {
	return c.name
}

// Close implements Client.Close.
func (c *ResponsesClient) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}
