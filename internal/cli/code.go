package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"design2code/config"
	"design2code/internal/ai"
	"design2code/internal/ai/prompts"
	"design2code/internal/output"
	"design2code/internal/types"
)

func newCodeCmd(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "code",
		Short: "Generate and modify project code",
	}
	cmd.AddCommand(
		newCodeGenerateCmd(cfg),
		newCodeRefactorCmd(cfg),
		newCodeAddFeatureCmd(cfg),
	)
	return cmd
}

func newCodeGenerateCmd(cfg config.Config) *cobra.Command {
	var (
		inPath    string
		framework string
		outDir    string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Implement a design spec as project files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := types.LoadDesignSpec(inPath)
			if err != nil {
				return err
			}

			generator := ai.NewCodeGenerator(cfg)
			code, err := generator.GenerateCode(cmd.Context(), spec, framework)
			if err != nil {
				return err
			}

			if outDir == "" {
				outDir = cfg.OutputDir
			}
			if err := output.WriteProject(code, outDir); err != nil {
				return err
			}
			log.Printf("Project %q generated in %s", spec.Name, outDir)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&inPath, "input", "i", "design.json", "Design spec `path` to implement")
	fl.StringVarP(&framework, "framework", "F", prompts.DefaultFramework, "Target framework (react, nextjs, vue, svelte, html)")
	fl.StringVarP(&outDir, "out", "o", "", "Output `directory` for generated files")
	cmd.MarkFlagFilename("input", "json")
	return cmd
}

func newCodeRefactorCmd(cfg config.Config) *cobra.Command {
	var (
		inPath       string
		instructions string
		outPath      string
	)

	cmd := &cobra.Command{
		Use:   "refactor",
		Short: "Refactor an existing source file per instructions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			source, err := os.ReadFile(inPath)
			if err != nil {
				return fmt.Errorf("failed to read source file %s: %w", inPath, err)
			}

			generator := ai.NewCodeGenerator(cfg)
			refactored, err := generator.RefactorCode(cmd.Context(), string(source), instructions)
			if err != nil {
				return err
			}

			if outPath == "" {
				outPath = inPath
			}
			if err := os.WriteFile(outPath, []byte(refactored+"\n"), 0644); err != nil {
				return fmt.Errorf("failed to write refactored file %s: %w", outPath, err)
			}
			log.Printf("Refactored source saved to %s", outPath)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&inPath, "input", "i", "", "Source file `path` to refactor")
	fl.StringVarP(&instructions, "instructions", "n", "", "What to change")
	fl.StringVarP(&outPath, "out", "o", "", "Output `path` (defaults to overwriting the input)")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("instructions")
	return cmd
}

func newCodeAddFeatureCmd(cfg config.Config) *cobra.Command {
	var (
		inPath       string
		instructions string
		framework    string
		outDir       string
	)

	cmd := &cobra.Command{
		Use:   "add-feature",
		Short: "Add a feature to existing source, writing changed files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			source, err := os.ReadFile(inPath)
			if err != nil {
				return fmt.Errorf("failed to read source file %s: %w", inPath, err)
			}

			generator := ai.NewCodeGenerator(cfg)
			code, err := generator.AddFeature(cmd.Context(), string(source), instructions, framework)
			if err != nil {
				return err
			}

			if outDir == "" {
				outDir = cfg.OutputDir
			}
			if err := output.WriteProject(code, outDir); err != nil {
				return err
			}
			log.Printf("Feature files written to %s", outDir)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&inPath, "input", "i", "", "Source file `path` to extend")
	fl.StringVarP(&instructions, "instructions", "n", "", "Feature to add")
	fl.StringVarP(&framework, "framework", "F", prompts.DefaultFramework, "Target framework (react, nextjs, vue, svelte, html)")
	fl.StringVarP(&outDir, "out", "o", "", "Output `directory` for changed files")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("instructions")
	return cmd
}
