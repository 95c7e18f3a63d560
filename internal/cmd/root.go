package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/marcus-aca/openai-planner/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "openai-planner",
	Short: "Turn a project design document into a structured implementation plan",
	Long: `openai-planner reads a free-text project design document and uses OpenAI
models to produce a structured implementation plan: a single overview
document plus one detailed markdown file per plan section.

The overview call is constrained by a JSON schema so the plan always has
the same shape; each section is then refined by a second model pass.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	verbose   bool
	logFormat string
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// newLogger builds the logger selected by the global flags.
func newLogger() *log.Logger {
	cfg := log.DefaultConfig()
	if verbose {
		cfg = log.DevelopmentConfig()
	}
	cfg.Format = log.ParseFormat(logFormat)
	return log.New(cfg)
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text or json)")
}
