package ux

import (
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/marcus-aca/openai-planner/internal/errors"
)

// ErrorWithSuggestion wraps an error with helpful recovery suggestions
type ErrorWithSuggestion struct {
	Err        error
	Suggestion string
}

// Error implements the error interface
func (e *ErrorWithSuggestion) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%v\n\n💡 Suggestion: %s", e.Err, e.Suggestion)
	}
	return e.Err.Error()
}

// Unwrap provides access to the underlying error
func (e *ErrorWithSuggestion) Unwrap() error {
	return e.Err
}

// NewErrorWithSuggestion creates a new error with a suggestion
func NewErrorWithSuggestion(err error, suggestion string) error {
	if err == nil {
		return nil
	}
	return &ErrorWithSuggestion{
		Err:        err,
		Suggestion: suggestion,
	}
}

// EnhanceError analyzes an error and adds contextual suggestions.
// Coded errors pass through untouched since they carry their own.
func EnhanceError(err error) error {
	if err == nil {
		return nil
	}

	var perr *apperrors.PlannerError
	if errors.As(err, &perr) {
		return err
	}

	errMsg := err.Error()

	// Missing config file
	if strings.Contains(errMsg, "no such file or directory") && strings.Contains(errMsg, "providers.yaml") {
		return NewErrorWithSuggestion(err,
			"Run 'openai-planner providers init' to create a starter config, or set OPENAI_API_KEY to use environment defaults")
	}

	// Missing design document
	if strings.Contains(errMsg, "Input file not found") {
		return NewErrorWithSuggestion(err,
			"Pass the path to your project design document, e.g. 'openai-planner plan DESIGN.md'")
	}

	// Authentication errors
	if strings.Contains(errMsg, "API key") || strings.Contains(errMsg, "api key") ||
		strings.Contains(errMsg, "unauthorized") || strings.Contains(errMsg, "invalid_api_key") {
		return NewErrorWithSuggestion(err,
			"Set the OPENAI_API_KEY environment variable, or put api_key in .planner/providers.yaml")
	}

	// Rate limits
	if strings.Contains(errMsg, "rate limit") || strings.Contains(errMsg, "rate_limit") {
		return NewErrorWithSuggestion(err,
			"Wait a moment and retry, or switch to a smaller model with --overview-model/--detail-model")
	}

	// Network errors
	if strings.Contains(errMsg, "connection refused") || strings.Contains(errMsg, "no route to host") ||
		strings.Contains(errMsg, "context deadline exceeded") {
		return NewErrorWithSuggestion(err,
			"Check your network connection and the base_url in your provider configuration")
	}

	// Malformed model output
	if strings.Contains(errMsg, "parse model output as JSON") || strings.Contains(errMsg, "missing required plan fields") {
		return NewErrorWithSuggestion(err,
			"Use api_mode: responses so the schema is enforced server-side, or try a more capable model")
	}

	if strings.Contains(errMsg, "empty output") {
		return NewErrorWithSuggestion(err,
			"Retry the run; generation restarts cleanly from the design document")
	}

	// Permission errors
	if strings.Contains(errMsg, "permission denied") {
		return NewErrorWithSuggestion(err,
			"Check permissions on the output directory, or point --output-dir somewhere writable")
	}

	// Generic suggestion based on error type
	if strings.Contains(errMsg, "failed to") {
		return NewErrorWithSuggestion(err,
			fmt.Sprintf("Next steps: %s", SuggestNextSteps()))
	}

	return err
}

// FormatError provides consistent error formatting with context
func FormatError(err error, context string) error {
	if err == nil {
		return nil
	}

	enhanced := EnhanceError(err)
	if context != "" {
		return fmt.Errorf("%s: %w", context, enhanced)
	}
	return enhanced
}
