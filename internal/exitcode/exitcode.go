package exitcode

import (
	stderrors "errors"
	"os"
	"strings"

	"github.com/marcus-aca/openai-planner/internal/errors"
)

// Exit codes for consistent error handling across the CLI
const (
	// Success indicates successful execution
	Success = 0

	// GeneralError indicates a general error condition
	GeneralError = 1

	// UsageError indicates invalid command usage (bad flags, missing args, etc.)
	UsageError = 2

	// InputError indicates the input design file is missing or unreadable
	InputError = 3

	// ProviderError indicates a model provider failure (transport, API, empty output)
	ProviderError = 4

	// ParseError indicates the model output could not be parsed into a plan
	ParseError = 5

	// ConfigError indicates invalid provider configuration or a missing API key
	ConfigError = 6

	// IOError indicates an output file or directory operation failed
	IOError = 7

	// Interrupted indicates the run was cancelled by a signal
	Interrupted = 130
)

// Exit terminates the program with the given exit code
func Exit(code int) {
	os.Exit(code)
}

// ExitWithError exits with an appropriate code based on error type
func ExitWithError(err error) {
	if err == nil {
		Exit(Success)
		return
	}

	Exit(DetermineExitCode(err))
}

// DetermineExitCode analyzes an error and returns the appropriate exit code.
// Coded errors map directly from their category; everything else falls back
// to message matching.
func DetermineExitCode(err error) int {
	if err == nil {
		return Success
	}

	var plannerErr *errors.PlannerError
	if stderrors.As(err, &plannerErr) {
		category, _, _ := strings.Cut(string(plannerErr.Code), "-")
		switch category {
		case "INPUT":
			return InputError
		case "CONFIG":
			return ConfigError
		case "PROVIDER":
			return ProviderError
		case "PLAN":
			return ParseError
		case "IO":
			return IOError
		}
	}

	errMsg := strings.ToLower(err.Error())

	// Input errors
	if strings.Contains(errMsg, "input file not found") {
		return InputError
	}

	// Configuration errors
	if strings.Contains(errMsg, "api key") || strings.Contains(errMsg, "unauthorized") {
		return ConfigError
	}

	// Provider errors
	if strings.Contains(errMsg, "empty output") {
		return ProviderError
	}
	if strings.Contains(errMsg, "connection") || strings.Contains(errMsg, "timeout") {
		return ProviderError
	}

	// Parse errors
	if strings.Contains(errMsg, "parse model output") || strings.Contains(errMsg, "missing required") {
		return ParseError
	}

	// Usage errors
	if strings.Contains(errMsg, "invalid flag") || strings.Contains(errMsg, "unknown command") {
		return UsageError
	}
	if strings.Contains(errMsg, "required flag") || strings.Contains(errMsg, "accepts 1 arg") {
		return UsageError
	}

	// Default to general error
	return GeneralError
}
