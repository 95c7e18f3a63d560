// Package planner turns a free-text project design document into a set of
// plan files on disk: one overview and one detail document per section.
package planner

import (
	"context"
	"errors"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	apperrors "github.com/marcus-aca/openai-planner/internal/errors"
	"github.com/marcus-aca/openai-planner/internal/log"
	"github.com/marcus-aca/openai-planner/internal/plan"
	"github.com/marcus-aca/openai-planner/internal/progress"
	"github.com/marcus-aca/openai-planner/internal/provider"
)

const (
	overviewFilename = "overview_plan.md"
	sectionsDirname  = "sections"
)

// Planner drives a full generation run: one schema-constrained overview
// call, then one freeform refinement call per section. All collaborators
// are passed in explicitly.
type Planner struct {
	client provider.Client
	logger *log.Logger
	out    io.Writer
}

// Options configures a single run.
type Options struct {
	// InputPath is the project design document to plan from.
	InputPath string

	// OutputDir receives overview_plan.md and the sections subdirectory.
	OutputDir string

	// OverviewModel produces the structured overview plan.
	OverviewModel string

	// DetailModel refines each section's detail document.
	DetailModel string
}

// Validate checks that every option is set. The CLI always supplies
// defaults, so a failure here means a programming error in the caller.
func (o Options) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.InputPath, validation.Required),
		validation.Field(&o.OutputDir, validation.Required),
		validation.Field(&o.OverviewModel, validation.Required),
		validation.Field(&o.DetailModel, validation.Required),
	)
}

// RunSummary reports what a successful run produced.
type RunSummary struct {
	Plan         *plan.Result
	OverviewPath string
	SectionsDir  string
	SectionPaths []string
	ManifestPath string
	TokensUsed   int
	Duration     time.Duration
}

// New creates a Planner. out receives the user-facing progress lines;
// pass os.Stdout in production. A nil logger falls back to the default.
func New(client provider.Client, logger *log.Logger, out io.Writer) *Planner {
	if logger == nil {
		logger = log.Default()
	}
	if out == nil {
		out = os.Stdout
	}
	return &Planner{
		client: client,
		logger: logger,
		out:    out,
	}
}

// Run executes the full pipeline. It fails fast: any model call, parse, or
// file operation error aborts the run with files written so far left in
// place. Nothing is retried and nothing is resumable.
func (p *Planner) Run(ctx context.Context, opts Options) (*RunSummary, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	started := time.Now()

	design, err := os.ReadFile(opts.InputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewInputNotFoundError(opts.InputPath)
		}
		return nil, apperrors.NewInputReadError(opts.InputPath, err)
	}

	sectionsDir := filepath.Join(opts.OutputDir, sectionsDirname)

	// Directories exist before the first model call so a permission
	// problem surfaces without costing a single token.
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, apperrors.NewDirectoryError(opts.OutputDir, err)
	}
	if err := os.MkdirAll(sectionsDir, 0o755); err != nil {
		return nil, apperrors.NewDirectoryError(sectionsDir, err)
	}

	result, tokens, err := p.generateOverview(ctx, opts.OverviewModel, string(design))
	if err != nil {
		return nil, err
	}

	printer := progress.NewPrinter(p.out, len(result.Sections))

	overviewPath := filepath.Join(opts.OutputDir, overviewFilename)
	if err := plan.WriteOverview(result, overviewPath); err != nil {
		return nil, apperrors.NewFileWriteError(overviewPath, err)
	}
	printer.Overview(overviewPath)

	sectionPaths := make([]string, 0, len(result.Sections))
	seen := make(map[string]struct{}, len(result.Sections))
	for i, section := range result.Sections {
		printer.Section(i+1, section.ID, section.Title)

		filename := plan.SectionFilename(section)
		if _, dup := seen[filename]; dup {
			p.logger.Warn("duplicate section filename, overwriting",
				"id", section.ID, "filename", filename)
		}
		seen[filename] = struct{}{}

		path, used, err := p.refineSection(ctx, opts.DetailModel, section, sectionsDir)
		if err != nil {
			return nil, err
		}
		tokens += used
		sectionPaths = append(sectionPaths, path)
	}
	printer.Finish(sectionsDir)

	summary := &RunSummary{
		Plan:         result,
		OverviewPath: overviewPath,
		SectionsDir:  sectionsDir,
		SectionPaths: sectionPaths,
		TokensUsed:   tokens,
		Duration:     time.Since(started),
	}

	manifestPath, err := p.writeManifest(opts, summary, started)
	if err != nil {
		// The plan files are already on disk; a manifest failure is
		// not worth failing the run over.
		p.logger.WithError(err).Warn("could not write run manifest")
	} else {
		summary.ManifestPath = manifestPath
	}

	return summary, nil
}

// generateOverview makes the schema-constrained overview call and parses
// the result into a plan.
func (p *Planner) generateOverview(ctx context.Context, model, design string) (*plan.Result, int, error) {
	p.logger.DebugContext(ctx, "generating overview plan",
		"model", model, "design_bytes", len(design))

	resp, err := p.generate(ctx, &provider.GenerateRequest{
		Model:        model,
		Instructions: overviewSystemPrompt,
		Input:        overviewUserPrompt(design),
		Schema:       plan.SchemaFormat(),
	})
	if err != nil {
		return nil, 0, err
	}

	result, err := plan.Parse([]byte(resp.Content))
	if err != nil {
		var fieldErrs validation.Errors
		if errors.As(err, &fieldErrs) {
			return nil, 0, apperrors.NewPlanShapeError(err)
		}
		return nil, 0, apperrors.NewPlanParseError(err)
	}

	p.logger.DebugContext(ctx, "overview plan parsed",
		"project_title", result.ProjectTitle,
		"sections", len(result.Sections),
		"tokens", resp.TokensUsed,
		"latency", resp.Latency)

	return result, resp.TokensUsed, nil
}

// refineSection writes the section's normalized skeleton, sends the file
// content back through the detail model, and overwrites the file with the
// refined document. The round-trip through disk is deliberate: the model
// sees exactly what a reader of the unrefined file would see.
func (p *Planner) refineSection(ctx context.Context, model string, section plan.Section, sectionsDir string) (string, int, error) {
	path, err := plan.WriteSectionDetail(section, sectionsDir)
	if err != nil {
		return "", 0, apperrors.NewFileWriteError(filepath.Join(sectionsDir, plan.SectionFilename(section)), err)
	}

	current, err := os.ReadFile(path)
	if err != nil {
		return "", 0, apperrors.NewFileReadError(path, err)
	}

	p.logger.DebugContext(ctx, "refining section",
		"model", model, "id", section.ID, "path", path)

	resp, err := p.generate(ctx, &provider.GenerateRequest{
		Model:        model,
		Instructions: detailSystemPrompt(section.Title),
		Input:        string(current),
	})
	if err != nil {
		return "", 0, err
	}

	refined := plan.NormalizeRefined(resp.Content)
	if err := os.WriteFile(path, []byte(refined), 0o644); err != nil {
		return "", 0, apperrors.NewFileWriteError(path, err)
	}

	p.logger.DebugContext(ctx, "section refined",
		"id", section.ID,
		"tokens", resp.TokensUsed,
		"latency", resp.Latency)

	return path, resp.TokensUsed, nil
}

// generate wraps a provider call with the planner's error taxonomy.
// Transport failures (the request never produced an HTTP response) are
// distinguished from API-level failures so the exit code can reflect it.
func (p *Planner) generate(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error) {
	resp, err := p.client.Generate(ctx, req)
	if err != nil {
		if errors.Is(err, provider.ErrEmptyOutput) {
			return nil, apperrors.NewEmptyOutputError(req.Model)
		}
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return nil, apperrors.NewProviderRequestError(req.Model, err)
		}
		return nil, apperrors.NewProviderAPIError(req.Model, err)
	}
	return resp, nil
}
