package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Input errors (INPUT-001 to INPUT-099)
	ErrCodeInputNotFound ErrorCode = "INPUT-001"
	ErrCodeInputRead     ErrorCode = "INPUT-002"

	// Configuration errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigInvalid ErrorCode = "CONFIG-001"
	ErrCodeAPIKeyMissing ErrorCode = "CONFIG-002"

	// Provider errors (PROVIDER-001 to PROVIDER-099)
	ErrCodeProviderRequest ErrorCode = "PROVIDER-001"
	ErrCodeProviderAPI     ErrorCode = "PROVIDER-002"
	ErrCodeEmptyOutput     ErrorCode = "PROVIDER-003"

	// Plan errors (PLAN-001 to PLAN-099)
	ErrCodePlanParse ErrorCode = "PLAN-001"
	ErrCodePlanShape ErrorCode = "PLAN-002"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeDirectoryFailed ErrorCode = "IO-001"
	ErrCodeFileWriteFailed ErrorCode = "IO-002"
	ErrCodeFileReadFailed  ErrorCode = "IO-003"
)

// PlannerError represents an enhanced error with code, suggestions, and documentation
type PlannerError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	DocsURL     string
	Cause       error
}

// Error implements the error interface
func (e *PlannerError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	if e.DocsURL != "" {
		b.WriteString(fmt.Sprintf("\n\nDocumentation: %s", e.DocsURL))
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *PlannerError) Unwrap() error {
	return e.Cause
}

// New creates a new PlannerError
func New(code ErrorCode, message string) *PlannerError {
	return &PlannerError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new PlannerError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *PlannerError {
	return &PlannerError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *PlannerError) WithSuggestion(suggestion string) *PlannerError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *PlannerError) WithSuggestions(suggestions ...string) *PlannerError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDocs adds a documentation URL to the error
func (e *PlannerError) WithDocs(url string) *PlannerError {
	e.DocsURL = url
	return e
}

// Common error constructors for frequently used errors

// NewInputNotFoundError creates an input file not found error
func NewInputNotFoundError(path string) *PlannerError {
	return New(ErrCodeInputNotFound, fmt.Sprintf("Input file not found: %s", path)).
		WithSuggestion("Check if the file path is correct").
		WithSuggestion("Pass the project design document as the first argument")
}

// NewInputReadError creates an input file read error
func NewInputReadError(path string, cause error) *PlannerError {
	return Wrap(ErrCodeInputRead, fmt.Sprintf("failed to read input file: %s", path), cause).
		WithSuggestion("Verify the file exists and you have read permissions")
}

// NewConfigInvalidError creates a provider configuration error
func NewConfigInvalidError(path string, cause error) *PlannerError {
	return Wrap(ErrCodeConfigInvalid, fmt.Sprintf("invalid provider configuration: %s", path), cause).
		WithSuggestion("Run 'openai-planner providers init' to generate a fresh providers.yaml").
		WithSuggestion("Check the YAML syntax and field names").
		WithDocs("https://github.com/marcus-aca/openai-planner#provider-configuration")
}

// NewAPIKeyMissingError creates a missing API key error
func NewAPIKeyMissingError() *PlannerError {
	return New(ErrCodeAPIKeyMissing, "no API key configured").
		WithSuggestion("Set the OPENAI_API_KEY environment variable (a .env file works too)").
		WithSuggestion("Or set api_key in .planner/providers.yaml").
		WithDocs("https://github.com/marcus-aca/openai-planner#provider-configuration")
}

// NewEmptyOutputError creates an empty model output error
func NewEmptyOutputError(model string) *PlannerError {
	return New(ErrCodeEmptyOutput, fmt.Sprintf("model %s returned empty output", model)).
		WithSuggestion("Try again; the run is not resumable and aborted cleanly").
		WithSuggestion("Try a different model via --overview-model or --detail-model")
}

// NewProviderRequestError creates a transport-level request failure error
func NewProviderRequestError(model string, cause error) *PlannerError {
	return Wrap(ErrCodeProviderRequest, fmt.Sprintf("request to model %s could not be sent", model), cause).
		WithSuggestion("Check your network connection").
		WithSuggestion("Verify the base_url in your provider configuration")
}

// NewProviderAPIError creates a provider call failure error
func NewProviderAPIError(model string, cause error) *PlannerError {
	return Wrap(ErrCodeProviderAPI, fmt.Sprintf("provider call failed for model %s", model), cause).
		WithSuggestion("Check your API key and model name").
		WithSuggestion("Verify the base_url in your provider configuration")
}

// NewPlanParseError creates a plan JSON parse error
func NewPlanParseError(cause error) *PlannerError {
	return Wrap(ErrCodePlanParse, "Failed to parse model output as JSON", cause).
		WithSuggestion("Use api_mode: responses so the schema is enforced server-side").
		WithSuggestion("Try a more capable --overview-model")
}

// NewPlanShapeError creates a plan missing-fields error
func NewPlanShapeError(cause error) *PlannerError {
	return Wrap(ErrCodePlanShape, "model output is missing required plan fields", cause).
		WithSuggestion("Use api_mode: responses so the schema is enforced server-side")
}

// NewDirectoryError creates a directory creation error
func NewDirectoryError(path string, cause error) *PlannerError {
	return Wrap(ErrCodeDirectoryFailed, fmt.Sprintf("failed to create directory: %s", path), cause).
		WithSuggestion("Check write permissions for the output directory")
}

// NewFileWriteError creates a file write error
func NewFileWriteError(path string, cause error) *PlannerError {
	return Wrap(ErrCodeFileWriteFailed, fmt.Sprintf("failed to write file: %s", path), cause).
		WithSuggestion("Check write permissions and free disk space")
}

// NewFileReadError creates a file read error
func NewFileReadError(path string, cause error) *PlannerError {
	return Wrap(ErrCodeFileReadFailed, fmt.Sprintf("failed to read file: %s", path), cause).
		WithSuggestion("Check if another process modified the output directory mid-run")
}
