package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetFrameworkInstructions(t *testing.T) {
	assert.Contains(t, GetFrameworkInstructions("vue"), "Vue 3")
	assert.Contains(t, GetFrameworkInstructions("html"), "no build step")

	// Unrecognized keys fall back to the default block, not an error.
	def := GetFrameworkInstructions(DefaultFramework)
	assert.Equal(t, def, GetFrameworkInstructions("ember"))
	assert.Equal(t, def, GetFrameworkInstructions(""))
}

func TestGetCodeGenerationPrompt(t *testing.T) {
	specJSON := `{"name":"Landing","components":[]}`
	prompt := GetCodeGenerationPrompt(specJSON, "svelte")

	assert.Contains(t, prompt, specJSON)
	assert.Contains(t, prompt, GetFrameworkInstructions("svelte"))
	assert.Contains(t, prompt, `"instructions"`)

	// Same inputs, same prompt.
	assert.Equal(t, prompt, GetCodeGenerationPrompt(specJSON, "svelte"))
}

func TestGetAddFeaturePrompt(t *testing.T) {
	prompt := GetAddFeaturePrompt("const x = 1", "add a dark mode toggle", "react")
	assert.Contains(t, prompt, "const x = 1")
	assert.Contains(t, prompt, "add a dark mode toggle")
	assert.Contains(t, prompt, GetFrameworkInstructions("react"))
}

func TestGetCodeRefactorPrompt(t *testing.T) {
	prompt := GetCodeRefactorPrompt("const x = 1", "rename x to count")
	assert.Contains(t, prompt, "const x = 1")
	assert.Contains(t, prompt, "rename x to count")
	// The refactor flow expects raw source back, not a file-list object.
	assert.NotContains(t, prompt, `"files"`)
}
