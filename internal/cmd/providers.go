package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcus-aca/openai-planner/internal/provider"
	"github.com/marcus-aca/openai-planner/internal/ux"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "Manage provider configuration",
	Long: `Inspect and manage the provider configuration used for model calls.

Without a providers.yaml the planner falls back to the OPENAI_API_KEY,
OPENAI_BASE_URL and OPENAI_API_MODE environment variables.`,
}

var providersInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter providers.yaml",
	Long: `Write a starter providers.yaml with a single OpenAI entry.

The template reads the API key from ${OPENAI_API_KEY} so no secret ends up
in the file. An existing config is never overwritten.`,
	RunE: runProvidersInit,
}

var providersInitPath string

func runProvidersInit(cmd *cobra.Command, args []string) error {
	path := providersInitPath
	if path == "" {
		path = ux.NewPathDefaults().ProvidersFile()
	}

	if err := provider.SaveDefaultConfig(path); err != nil {
		return ux.EnhanceError(err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s Wrote provider config: %s\n", successStyle.Render("✓"), pathStyle.Render(path))
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintln(out, "  1. Set the OPENAI_API_KEY environment variable (a .env file works too)")
	fmt.Fprintln(out, "  2. Generate a plan: openai-planner plan <design.md>")

	return nil
}

func init() {
	rootCmd.AddCommand(providersCmd)
	providersCmd.AddCommand(providersInitCmd)

	providersInitCmd.Flags().StringVar(&providersInitPath, "path", "", "Where to write the config (default: .planner/providers.yaml)")
}
