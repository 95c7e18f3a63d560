package ux

import (
	"fmt"
	"os"
	"path/filepath"

	apperrors "github.com/marcus-aca/openai-planner/internal/errors"
)

// PathDefaults provides smart defaults for common file paths
type PathDefaults struct {
	PlannerDir string
}

// NewPathDefaults creates a new PathDefaults with sensible defaults
func NewPathDefaults() *PathDefaults {
	return &PathDefaults{
		PlannerDir: ".planner",
	}
}

// ProvidersFile returns the default path to providers.yaml
func (pd *PathDefaults) ProvidersFile() string {
	return filepath.Join(pd.PlannerDir, "providers.yaml")
}

// HasProvidersFile reports whether the default provider config exists
func (pd *PathDefaults) HasProvidersFile() bool {
	_, err := os.Stat(pd.ProvidersFile())
	return err == nil
}

// ValidateInputFile checks that the design document exists before any
// provider is contacted, so a bad path never costs an API call.
func ValidateInputFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return apperrors.NewInputNotFoundError(path)
	}
	if err != nil {
		return apperrors.NewInputReadError(path, err)
	}
	if info.IsDir() {
		return apperrors.NewInputReadError(path, fmt.Errorf("%s is a directory", path))
	}
	return nil
}

// SuggestNextSteps provides contextual next steps based on what exists
func SuggestNextSteps() string {
	defaults := NewPathDefaults()

	if !defaults.HasProvidersFile() && os.Getenv("OPENAI_API_KEY") == "" {
		return "Set OPENAI_API_KEY or run 'openai-planner providers init' to configure a provider"
	}

	return "Run 'openai-planner plan <design.md>' to generate an implementation plan"
}
