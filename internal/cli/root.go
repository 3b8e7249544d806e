package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"design2code/config"
)

// Execute runs the CLI. Any caught error prints a human-readable message on
// stderr and exits with status 1; success exits 0.
func Execute(cfg config.Config) {
	root := &cobra.Command{
		Use:   "design2code",
		Short: "Generate UI design specs and web project code with AI",
		Long: `design2code chains two generative AI services: a design model turns a
prompt or UI image into a structured design spec, and a code model turns
that spec into source files for your chosen web framework.`,

		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.AddCommand(
		newDesignCmd(cfg),
		newCodeCmd(cfg),
		newGenerateCmd(cfg),
		newWorkflowCmd(cfg),
		newConfigCmd(cfg),
		newServeCmd(cfg),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
