package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	apperrors "github.com/marcus-aca/openai-planner/internal/errors"
	"github.com/marcus-aca/openai-planner/internal/log"
	"github.com/marcus-aca/openai-planner/internal/planner"
	"github.com/marcus-aca/openai-planner/internal/progress"
	"github.com/marcus-aca/openai-planner/internal/provider"
	"github.com/marcus-aca/openai-planner/internal/ux"
)

var planCmd = &cobra.Command{
	Use:   "plan <design-file>",
	Short: "Generate an implementation plan from a design document",
	Long: `Generate a structured implementation plan from a free-text project design.

The design document is sent through two model phases:

  1. An overview call, constrained by a JSON schema, produces the project
     title, scope classification, overview text, and the list of sections.
  2. Each section is refined by a second model call that fills in details
     under a fixed set of headings.

The overview is written to <output-dir>/overview_plan.md and each section
to <output-dir>/sections/<id>-<slug>.md. Runs are not resumable; a failed
run leaves the files written so far in place.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlan,
}

var (
	planOutputDir      string
	planOverviewModel  string
	planDetailModel    string
	planProviderConfig string
)

// Styles
var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

func runPlan(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	inputPath := args[0]

	// A bad input path must fail before any provider is contacted.
	if err := ux.ValidateInputFile(inputPath); err != nil {
		return err
	}

	cfg, err := resolveProviderConfig(logger)
	if err != nil {
		return err
	}

	client, err := provider.New(cfg)
	if err != nil {
		return ux.EnhanceError(err)
	}
	defer client.Close()

	p := planner.New(client, logger, cmd.OutOrStdout())
	summary, err := p.Run(cmd.Context(), planner.Options{
		InputPath:     inputPath,
		OutputDir:     planOutputDir,
		OverviewModel: planOverviewModel,
		DetailModel:   planDetailModel,
	})
	if err != nil {
		return ux.EnhanceError(err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n%s Generated %d sections in %s\n",
		successStyle.Render("✓"), len(summary.Plan.Sections), progress.FormatDuration(summary.Duration))
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintf(out, "  1. Review the overview: %s\n", pathStyle.Render(summary.OverviewPath))
	fmt.Fprintf(out, "  2. Review the section details in %s\n", pathStyle.Render(summary.SectionsDir))

	return nil
}

// resolveProviderConfig picks the provider entry for this run: an explicit
// --provider-config file, the default .planner/providers.yaml when it
// exists, or a config synthesized from the environment.
func resolveProviderConfig(logger *log.Logger) (*provider.Config, error) {
	defaults := ux.NewPathDefaults()

	path := planProviderConfig
	if path == "" && defaults.HasProvidersFile() {
		path = defaults.ProvidersFile()
	}

	if path != "" {
		cfg, err := provider.LoadConfig(path)
		if err != nil {
			return nil, apperrors.NewConfigInvalidError(path, err)
		}
		logger.Debug("loaded provider config", "path", path, "provider", cfg.Primary().Name)
		return cfg.Primary(), nil
	}

	cfg := provider.DefaultFromEnv()
	if cfg.APIKey == "" {
		return nil, apperrors.NewAPIKeyMissingError()
	}
	logger.Debug("using provider config from environment", "api_mode", cfg.APIMode)
	return cfg, nil
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().StringVarP(&planOutputDir, "output-dir", "o", "docs", "Directory for the overview and section files")
	planCmd.Flags().StringVar(&planOverviewModel, "overview-model", "gpt-5.2", "Model for the schema-constrained overview call")
	planCmd.Flags().StringVar(&planDetailModel, "detail-model", "gpt-5-mini", "Model for the per-section refinement calls")
	planCmd.Flags().StringVar(&planProviderConfig, "provider-config", "", "Path to providers.yaml (default: .planner/providers.yaml if present)")
}
