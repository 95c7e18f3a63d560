package planner

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const manifestFilename = "run_manifest.json"

// RunManifest records what a run produced, for audit purposes. It lives
// next to the overview so a later reader can tell which models and input
// produced the plan files.
type RunManifest struct {
	RunID         string    `json:"run_id"`
	Timestamp     time.Time `json:"timestamp"`
	InputPath     string    `json:"input_path"`
	OutputDir     string    `json:"output_dir"`
	Provider      string    `json:"provider"`
	OverviewModel string    `json:"overview_model"`
	DetailModel   string    `json:"detail_model"`
	ProjectTitle  string    `json:"project_title"`
	SectionCount  int       `json:"section_count"`
	Files         []string  `json:"files"`
	TokensUsed    int       `json:"tokens_used"`
	Duration      string    `json:"duration"`
}

// writeManifest assembles and saves the manifest for a finished run,
// returning the path it was written to.
func (p *Planner) writeManifest(opts Options, summary *RunSummary, started time.Time) (string, error) {
	files := make([]string, 0, len(summary.SectionPaths)+1)
	files = append(files, summary.OverviewPath)
	files = append(files, summary.SectionPaths...)

	manifest := &RunManifest{
		RunID:         uuid.New().String(),
		Timestamp:     started,
		InputPath:     opts.InputPath,
		OutputDir:     opts.OutputDir,
		Provider:      p.client.Name(),
		OverviewModel: opts.OverviewModel,
		DetailModel:   opts.DetailModel,
		ProjectTitle:  summary.Plan.ProjectTitle,
		SectionCount:  len(summary.Plan.Sections),
		Files:         files,
		TokensUsed:    summary.TokensUsed,
		Duration:      summary.Duration.String(),
	}

	path := filepath.Join(opts.OutputDir, manifestFilename)

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}

	return path, nil
}
