package cli

import (
	"bufio"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"design2code/config"
	"design2code/internal/ai"
	"design2code/internal/ai/prompts"
	"design2code/internal/output"
)

func newWorkflowCmd(cfg config.Config) *cobra.Command {
	var (
		framework string
		outDir    string
	)

	cmd := &cobra.Command{
		Use:   "workflow <prompt>",
		Short: "Run design and code generation in one shot",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outDir == "" {
				outDir = cfg.OutputDir
			}
			return runWorkflow(cmd, cfg, strings.Join(args, " "), framework, outDir)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&framework, "framework", "F", prompts.DefaultFramework, "Target framework (react, nextjs, vue, svelte, html)")
	fl.StringVarP(&outDir, "out", "o", "", "Output `directory` for the generated project")
	return cmd
}

func newGenerateCmd(cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Interactively describe a UI and generate the project",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reader := bufio.NewReader(cmd.InOrStdin())

			prompt, err := readLine(cmd, reader, "Describe the UI you want to build: ")
			if err != nil {
				return err
			}
			if prompt == "" {
				return errors.New("a UI description is required")
			}

			framework, err := readLine(cmd, reader, fmt.Sprintf("Target framework [%s]: ", prompts.DefaultFramework))
			if err != nil {
				return err
			}
			if framework == "" {
				framework = prompts.DefaultFramework
			}

			outDir, err := readLine(cmd, reader, fmt.Sprintf("Output directory [%s]: ", cfg.OutputDir))
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = cfg.OutputDir
			}

			return runWorkflow(cmd, cfg, prompt, framework, outDir)
		},
	}
}

// runWorkflow is the shared design -> code -> write pipeline: one design call,
// one code call, then file materialization. The design spec is also saved
// into the output root so it can be refined later.
func runWorkflow(cmd *cobra.Command, cfg config.Config, prompt, framework, outDir string) error {
	designGen := ai.NewDesignGenerator(cfg)
	spec, err := designGen.GenerateDesign(cmd.Context(), prompt)
	if err != nil {
		return err
	}
	log.Printf("Design spec %q generated", spec.Name)

	codeGen := ai.NewCodeGenerator(cfg)
	code, err := codeGen.GenerateCode(cmd.Context(), spec, framework)
	if err != nil {
		return err
	}

	if err := output.WriteProject(code, outDir); err != nil {
		return err
	}
	if err := spec.Save(filepath.Join(outDir, "design.json")); err != nil {
		return err
	}
	log.Printf("Project %q generated in %s", spec.Name, outDir)
	return nil
}

func readLine(cmd *cobra.Command, reader *bufio.Reader, promptText string) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), promptText)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
