package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"design2code/config"
)

const configTemplate = `# design2code configuration.
# Every key can also be set as an environment variable of the same name;
# environment variables take precedence over this file.

# Design model (Gemini). Leave empty to use gcloud OAuth login instead.
GEMINI_API_KEY: ""
DESIGN_MODEL_ID: "gemini-1.5-pro"

# Code model (OpenAI). Leave empty to delegate to the external agent CLI.
OPENAI_API_KEY: ""
CODE_MODEL_ID: "gpt-4o"

# External code agent, used when no OpenAI key is set.
CODE_AGENT_PATH: "claude"
CODE_AGENT_TIMEOUT: 300

# Where generated projects land by default.
OUTPUT_DIR: "./generated"

# Address for 'design2code serve'.
SERVER_ADDRESS: ":8080"
`

func newConfigCmd(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and initialize configuration",
	}
	cmd.AddCommand(newConfigShowCmd(cfg), newConfigInitCmd())
	return cmd
}

func newConfigShowCmd(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration (secrets masked)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "GEMINI_API_KEY:     %s\n", maskSecret(cfg.GeminiAPIKey))
			fmt.Fprintf(out, "DESIGN_MODEL_ID:    %s\n", cfg.DesignModelID)
			fmt.Fprintf(out, "OPENAI_API_KEY:     %s\n", maskSecret(cfg.OpenAIKey))
			fmt.Fprintf(out, "CODE_MODEL_ID:      %s\n", cfg.CodeModelID)
			fmt.Fprintf(out, "CODE_AGENT_PATH:    %s\n", cfg.CodeAgentPath)
			fmt.Fprintf(out, "CODE_AGENT_TIMEOUT: %d\n", cfg.CodeAgentTimeout)
			fmt.Fprintf(out, "OUTPUT_DIR:         %s\n", cfg.OutputDir)
			fmt.Fprintf(out, "SERVER_ADDRESS:     %s\n", cfg.ServerAddress)
			return nil
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented config.yaml template",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := os.Stat(outPath); err == nil {
				return fmt.Errorf("%s already exists, refusing to overwrite", outPath)
			}
			if err := os.WriteFile(outPath, []byte(configTemplate), 0600); err != nil {
				return fmt.Errorf("failed to write config template %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "config.yaml", "Where to write the template")
	return cmd
}

// maskSecret keeps a short prefix so keys can be told apart in output
// without leaking them.
func maskSecret(secret string) string {
	if secret == "" {
		return "(not set)"
	}
	if len(secret) <= 4 {
		return "****"
	}
	return secret[:4] + "****"
}
