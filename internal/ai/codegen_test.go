package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"design2code/config"
	"design2code/internal/ai/prompts"
	"design2code/internal/types"
)

// fakeBackend returns a canned response and records the prompts it received.
type fakeBackend struct {
	response     string
	err          error
	systemPrompt string
	userPrompt   string
}

func (f *fakeBackend) invoke(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	f.systemPrompt = systemPrompt
	f.userPrompt = userPrompt
	return f.response, f.err
}

func sampleSpec() *types.DesignSpec {
	return &types.DesignSpec{
		Name:        "Landing",
		Description: "A landing page",
		Layout:      types.Layout{Type: "single", Sections: []string{"hero", "footer"}},
		ColorScheme: types.ColorScheme{Primary: "#000", Secondary: "#111", Accent: "#222", Background: "#fff", Text: "#000"},
		Typography:  types.Typography{HeadingFont: "Inter", BodyFont: "Inter"},
		Components: []types.Component{
			{
				Type: "hero",
				Name: "Hero",
				Children: []types.Component{
					{Type: "button", Name: "CTA", Properties: map[string]string{"label": "Start"}},
				},
			},
		},
	}
}

func TestBuildCodePromptIsPure(t *testing.T) {
	spec := sampleSpec()

	first, err := BuildCodePrompt(spec, "vue")
	require.NoError(t, err)
	second, err := BuildCodePrompt(spec, "vue")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// The serialized spec and the exact framework block are embedded.
	assert.Contains(t, first, `"name": "Landing"`)
	assert.Contains(t, first, `"label": "Start"`)
	assert.Contains(t, first, prompts.GetFrameworkInstructions("vue"))
}

func TestBuildCodePromptUnknownFrameworkUsesDefault(t *testing.T) {
	prompt, err := BuildCodePrompt(sampleSpec(), "backbone")
	require.NoError(t, err)
	assert.Contains(t, prompt, prompts.GetFrameworkInstructions(prompts.DefaultFramework))
}

func TestGenerateCodeParsesProseWrappedResponse(t *testing.T) {
	backend := &fakeBackend{response: "Here is your project:\n```json\n" +
		`{"files":[{"filename":"components/ui/Card.tsx","type":"","content":"export const Card = () => null"}],"instructions":"npm install && npm run dev"}` +
		"\n```\nHappy hacking!"}
	g := &CodeGenerator{backend: backend}

	code, err := g.GenerateCode(context.Background(), sampleSpec(), "react")
	require.NoError(t, err)
	require.Len(t, code.Files, 1)
	assert.Equal(t, "components/ui/Card.tsx", code.Files[0].Filename)
	assert.Equal(t, "TSX", code.Files[0].Type) // inferred from the extension
	assert.Equal(t, "npm install && npm run dev", code.Instructions)
	assert.Equal(t, prompts.CodeSystemPrompt, backend.systemPrompt)
}

func TestGenerateCodeNoJSONIsParseFailure(t *testing.T) {
	g := &CodeGenerator{backend: &fakeBackend{response: "I wrote the files for you."}}

	_, err := g.GenerateCode(context.Background(), sampleSpec(), "react")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse generated code")
}

func TestRefactorCodeStripsFences(t *testing.T) {
	g := &CodeGenerator{backend: &fakeBackend{response: "```tsx\nexport const Card = () => <div/>\n```"}}

	out, err := g.RefactorCode(context.Background(), "export const Card = () => null", "render a div")
	require.NoError(t, err)
	assert.Equal(t, "export const Card = () => <div/>", out)
}

func TestAddFeatureParsesFileList(t *testing.T) {
	g := &CodeGenerator{backend: &fakeBackend{
		response: `{"files":[{"filename":"src/Dark.tsx","type":"tsx","content":"..."}],"instructions":""}`,
	}}

	code, err := g.AddFeature(context.Background(), "src", "dark mode", "react")
	require.NoError(t, err)
	require.Len(t, code.Files, 1)
	assert.Equal(t, "src/Dark.tsx", code.Files[0].Filename)
}

func TestNoBackendFailsWithAuthMessage(t *testing.T) {
	// An agent path that cannot resolve and no API key leaves no backend.
	g := NewCodeGenerator(config.Config{CodeAgentPath: "/nonexistent/agent-binary"})

	_, err := g.GenerateCode(context.Background(), sampleSpec(), "react")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "code model auth not configured")
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}
