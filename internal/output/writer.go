package output

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"design2code/internal/types"
	"design2code/internal/utils"
)

// InstructionsFileName is the setup document written alongside generated files
// when the model returned instructions text.
const InstructionsFileName = "SETUP.md"

// WriteProject materializes generated code under outputDir: every file's
// parent directories are created as needed, contents are written verbatim,
// and existing files are overwritten unconditionally.
func WriteProject(code *types.GeneratedCode, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	for _, file := range code.Files {
		fileType := file.Type
		if fileType == "" {
			fileType = utils.DetermineFileType(file.Filename) // Fallback
		}

		filePath := filepath.Join(outputDir, file.Filename)
		if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", filePath, err)
		}
		if err := os.WriteFile(filePath, []byte(file.Content), 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", filePath, err)
		}
		log.Printf("File saved: %s (%s)", filePath, fileType)
	}

	if code.Instructions != "" {
		setupPath := filepath.Join(outputDir, InstructionsFileName)
		content := "# Setup Instructions\n\n" + code.Instructions + "\n"
		if err := os.WriteFile(setupPath, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write setup instructions %s: %w", setupPath, err)
		}
		log.Printf("Setup instructions saved: %s", setupPath)
	}

	log.Printf("Successfully wrote %d files to %s", len(code.Files), outputDir)
	return nil
}
