package cli

import (
	"log"

	"github.com/spf13/cobra"

	"design2code/config"
	"design2code/internal/ai"
	"design2code/internal/types"
)

func newDesignCmd(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "design",
		Short: "Create, analyze, and refine UI design specs",
	}
	cmd.AddCommand(
		newDesignGenerateCmd(cfg),
		newDesignAnalyzeCmd(cfg),
		newDesignRefineCmd(cfg),
	)
	return cmd
}

func newDesignGenerateCmd(cfg config.Config) *cobra.Command {
	var (
		prompt  string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a design spec from a text prompt",
		RunE: func(cmd *cobra.Command, _ []string) error {
			generator := ai.NewDesignGenerator(cfg)
			spec, err := generator.GenerateDesign(cmd.Context(), prompt)
			if err != nil {
				return err
			}
			if err := spec.Save(outPath); err != nil {
				return err
			}
			log.Printf("Design spec %q saved to %s", spec.Name, outPath)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&prompt, "prompt", "p", "", "Description of the UI to design")
	fl.StringVarP(&outPath, "out", "o", "design.json", "Output `path` for the design spec")
	cmd.MarkFlagRequired("prompt")
	return cmd
}

func newDesignAnalyzeCmd(cfg config.Config) *cobra.Command {
	var (
		imagePath string
		hint      string
		outPath   string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Reverse-engineer a design spec from a UI image",
		RunE: func(cmd *cobra.Command, _ []string) error {
			generator := ai.NewDesignGenerator(cfg)
			spec, err := generator.AnalyzeImage(cmd.Context(), imagePath, hint)
			if err != nil {
				return err
			}
			if err := spec.Save(outPath); err != nil {
				return err
			}
			log.Printf("Design spec %q saved to %s", spec.Name, outPath)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&imagePath, "image", "i", "", "Path to a UI screenshot or mockup (.png or .jpg)")
	fl.StringVarP(&hint, "prompt", "p", "", "Optional extra context about the image")
	fl.StringVarP(&outPath, "out", "o", "design.json", "Output `path` for the design spec")
	cmd.MarkFlagRequired("image")
	cmd.MarkFlagFilename("image", "png", "jpg", "jpeg")
	return cmd
}

func newDesignRefineCmd(cfg config.Config) *cobra.Command {
	var (
		inPath   string
		feedback string
		outPath  string
	)

	cmd := &cobra.Command{
		Use:   "refine",
		Short: "Apply feedback to an existing design spec",
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := types.LoadDesignSpec(inPath)
			if err != nil {
				return err
			}

			generator := ai.NewDesignGenerator(cfg)
			refined, err := generator.RefineDesign(cmd.Context(), spec, feedback)
			if err != nil {
				return err
			}

			if outPath == "" {
				outPath = inPath
			}
			if err := refined.Save(outPath); err != nil {
				return err
			}
			log.Printf("Refined design spec %q saved to %s", refined.Name, outPath)
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&inPath, "input", "i", "design.json", "Design spec `path` to refine")
	fl.StringVarP(&feedback, "feedback", "f", "", "Feedback to apply to the design")
	fl.StringVarP(&outPath, "out", "o", "", "Output `path` (defaults to overwriting the input)")
	cmd.MarkFlagRequired("feedback")
	cmd.MarkFlagFilename("input", "json")
	return cmd
}
