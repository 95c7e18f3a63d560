package provider

import "time"

// GenerateRequest contains all parameters for a single model call.
type GenerateRequest struct {
	// Model is the model identifier for this call (e.g. "gpt-5.2").
	Model string `json:"model"`

	// Instructions sets the system-level instructions for the call.
	Instructions string `json:"instructions,omitempty"`

	// Input is the user-level input text.
	Input string `json:"input"`

	// Schema, when set, constrains the output to JSON matching it.
	// The Responses variant sends it as a structured output format; the
	// chat variant enables JSON mode and inlines the schema into the
	// user message.
	Schema *SchemaFormat `json:"schema,omitempty"`
}

// SchemaFormat describes a named JSON Schema for structured generation.
type SchemaFormat struct {
	// Name identifies the schema (e.g. "overview_plan").
	Name string `json:"name"`

	// Schema is the JSON Schema document itself.
	Schema map[string]interface{} `json:"schema"`

	// Strict requires the model to match the schema exactly.
	Strict bool `json:"strict"`
}

// GenerateResponse contains the model's response.
type GenerateResponse struct {
	// Content is the generated text, never empty on success.
	Content string `json:"content"`

	// Model is the model that actually produced the response.
	Model string `json:"model"`

	// TokensUsed is the total tokens consumed (input + output).
	TokensUsed int `json:"tokens_used"`

	// InputTokens is tokens in the prompt.
	InputTokens int `json:"input_tokens,omitempty"`

	// OutputTokens is tokens in the response.
	OutputTokens int `json:"output_tokens,omitempty"`

	// Latency is how long the call took end to end.
	Latency time.Duration `json:"latency"`

	// Provider is the name of the provider that handled the request.
	Provider string `json:"provider"`
}
