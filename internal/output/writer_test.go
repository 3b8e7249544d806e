package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"design2code/internal/types"
)

func sampleCode() *types.GeneratedCode {
	return &types.GeneratedCode{
		Files: []types.GeneratedFile{
			{Filename: "index.html", Type: "html", Content: "<html></html>"},
			{Filename: "components/ui/Card.tsx", Content: "export const Card = () => null"},
		},
		Instructions: "Run npm install, then npm run dev.",
	}
}

func TestWriteProjectCreatesNestedDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteProject(sampleCode(), dir))

	content, err := os.ReadFile(filepath.Join(dir, "components", "ui", "Card.tsx"))
	require.NoError(t, err)
	assert.Equal(t, "export const Card = () => null", string(content))
}

func TestWriteProjectWritesSetupInstructions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteProject(sampleCode(), dir))

	content, err := os.ReadFile(filepath.Join(dir, InstructionsFileName))
	require.NoError(t, err)
	assert.Contains(t, string(content), "# Setup Instructions")
	assert.Contains(t, string(content), "Run npm install")
}

func TestWriteProjectSkipsSetupFileWithoutInstructions(t *testing.T) {
	dir := t.TempDir()
	code := sampleCode()
	code.Instructions = ""
	require.NoError(t, WriteProject(code, dir))

	_, err := os.Stat(filepath.Join(dir, InstructionsFileName))
	assert.True(t, os.IsNotExist(err))
}

func TestWriteProjectIsIdempotentAndOverwrites(t *testing.T) {
	dir := t.TempDir()
	code := sampleCode()

	require.NoError(t, WriteProject(code, dir))
	require.NoError(t, WriteProject(code, dir))

	content, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(content))

	// A second run with different content overwrites unconditionally.
	code.Files[0].Content = "<html><body/></html>"
	require.NoError(t, WriteProject(code, dir))

	content, err = os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<html><body/></html>", string(content))
}

func TestWriteProjectUnwritableDirectorySurfacesPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.MkdirAll(dir, 0555))

	err := WriteProject(sampleCode(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), dir)
}
