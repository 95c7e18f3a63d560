package exitcode

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/marcus-aca/openai-planner/internal/errors"
)

func TestExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected int
	}{
		{"Success", Success, 0},
		{"GeneralError", GeneralError, 1},
		{"UsageError", UsageError, 2},
		{"InputError", InputError, 3},
		{"ProviderError", ProviderError, 4},
		{"ParseError", ParseError, 5},
		{"ConfigError", ConfigError, 6},
		{"IOError", IOError, 7},
		{"Interrupted", Interrupted, 130},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code != tt.expected {
				t.Errorf("Exit code %s = %d, want %d", tt.name, tt.code, tt.expected)
			}
		})
	}
}

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "nil error returns success",
			err:      nil,
			expected: Success,
		},
		{
			name:     "coded input error",
			err:      errors.NewInputNotFoundError("design.md"),
			expected: InputError,
		},
		{
			name:     "coded config error",
			err:      errors.NewAPIKeyMissingError(),
			expected: ConfigError,
		},
		{
			name:     "coded provider error",
			err:      errors.NewEmptyOutputError("gpt-5.2"),
			expected: ProviderError,
		},
		{
			name:     "coded parse error",
			err:      errors.NewPlanParseError(stderrors.New("unexpected end of JSON input")),
			expected: ParseError,
		},
		{
			name:     "coded io error",
			err:      errors.NewFileWriteError("docs/overview_plan.md", stderrors.New("disk full")),
			expected: IOError,
		},
		{
			name:     "wrapped coded error still maps by code",
			err:      fmt.Errorf("run failed: %w", errors.NewEmptyOutputError("gpt-5-mini")),
			expected: ProviderError,
		},
		{
			name:     "plain input message",
			err:      stderrors.New("Input file not found: design.md"),
			expected: InputError,
		},
		{
			name:     "plain connection message",
			err:      stderrors.New("send request: dial tcp: connection refused"),
			expected: ProviderError,
		},
		{
			name:     "cobra unknown command",
			err:      stderrors.New(`unknown command "plam" for "openai-planner"`),
			expected: UsageError,
		},
		{
			name:     "cobra missing argument",
			err:      stderrors.New("accepts 1 arg(s), received 0"),
			expected: UsageError,
		},
		{
			name:     "unclassified error",
			err:      stderrors.New("something odd happened"),
			expected: GeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineExitCode(tt.err); got != tt.expected {
				t.Errorf("DetermineExitCode() = %d, want %d", got, tt.expected)
			}
		})
	}
}
