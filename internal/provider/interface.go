package provider

import (
	"context"
	"errors"
)

// ErrEmptyOutput is returned when the model produced no output text.
// The planner treats it as fatal; there is no retry path.
var ErrEmptyOutput = errors.New("model returned empty output")

// Client is the interface both API variants implement.
// The variant (Responses API or chat completions) is fixed at construction
// time by the provider configuration; callers never inspect it at runtime.
type Client interface {
	// Generate sends one prompt and returns the complete response.
	// When req.Schema is set the variant constrains the model to emit JSON
	// matching it, each in its own wire format.
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)

	// Name returns the configured provider name (e.g. "openai").
	Name() string

	// Close releases any resources held by the client.
	Close() error
}
