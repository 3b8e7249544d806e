package prompts

import "fmt"

// DefaultFramework is used when a requested framework has no instruction block.
const DefaultFramework = "react"

// CodeSystemPrompt is the system message for every code-generation call.
const CodeSystemPrompt = `You are a helpful AI assistant that generates code based on design specs and specific formatting instructions.`

// frameworkInstructions maps a framework key to the fixed instruction block
// steering generation toward that framework's conventions. Lookup is an exact
// string match; unknown keys fall back to DefaultFramework.
var frameworkInstructions = map[string]string{
	"react": `1.  **Framework**: React 18 + TypeScript (Vite)
2.  **Styling**: TailwindCSS; put theme colors and fonts in tailwind.config.ts
3.  **Structure**: src/main.tsx app root, src/App.tsx for routes/layout, one file per component under src/components/
4.  **Build files**: include package.json (with @vitejs/plugin-react and tailwindcss as dev dependencies), vite.config.ts, tailwind.config.ts, index.html`,

	"nextjs": `1.  **Framework**: Next.js 14 (App Router) + TypeScript
2.  **Styling**: TailwindCSS; put theme colors and fonts in tailwind.config.ts
3.  **Structure**: app/layout.tsx and app/page.tsx, one file per component under components/
4.  **Build files**: include package.json, next.config.mjs, tailwind.config.ts, tsconfig.json`,

	"vue": `1.  **Framework**: Vue 3 + TypeScript (Vite), <script setup> single-file components
2.  **Styling**: TailwindCSS; put theme colors and fonts in tailwind.config.ts
3.  **Structure**: src/main.ts app root, src/App.vue for layout, one .vue file per component under src/components/
4.  **Build files**: include package.json (with @vitejs/plugin-vue and tailwindcss as dev dependencies), vite.config.ts, tailwind.config.ts, index.html`,

	"svelte": `1.  **Framework**: Svelte 4 + TypeScript (Vite)
2.  **Styling**: TailwindCSS; put theme colors and fonts in tailwind.config.ts
3.  **Structure**: src/main.ts app root, src/App.svelte for layout, one .svelte file per component under src/components/
4.  **Build files**: include package.json (with @sveltejs/vite-plugin-svelte and tailwindcss as dev dependencies), vite.config.ts, tailwind.config.ts, index.html`,

	"html": `1.  **Framework**: plain HTML5 + CSS + vanilla JavaScript, no build step
2.  **Styling**: a single styles.css carrying the color scheme and fonts as CSS custom properties
3.  **Structure**: index.html as the entry point, one JS file per interactive component under js/
4.  **Build files**: none required; the project must open directly in a browser`,
}

// codeOutputFormat is appended to every prompt whose response is parsed into
// types.GeneratedCode.
const codeOutputFormat = `
Respond with a single JSON object in the following format:

` + "```json" + `
{
  "files": [
    {
      "filename": "src/App.tsx",
      "type": "tsx",
      "content": "..."
    },
    {
      "filename": "src/components/Navbar.tsx",
      "type": "tsx",
      "content": "..."
    }
  ],
  "instructions": "How to install dependencies and run the project."
}
` + "```" + `

Only include the JSON object — no extra explanation. Your output will be parsed and saved as project files.`

// GetFrameworkInstructions returns the instruction block for framework, or
// the default block when the key is unrecognized.
func GetFrameworkInstructions(framework string) string {
	if block, ok := frameworkInstructions[framework]; ok {
		return block
	}
	return frameworkInstructions[DefaultFramework]
}

// GetCodeGenerationPrompt builds the full prompt for turning a design spec
// into project files for the given framework.
func GetCodeGenerationPrompt(specJSON string, framework string) string {
	return fmt.Sprintf(`You are a full-stack site generator AI.

Implement the following UI design spec as a complete **multi-file project**:

---
%s
---

Follow these framework rules exactly:

%s

Use the spec's colorScheme and typography everywhere. Build every component
in the spec's component tree, preserving nesting.
%s`, specJSON, GetFrameworkInstructions(framework), codeOutputFormat)
}

// GetAddFeaturePrompt builds the prompt for adding a feature to existing code.
func GetAddFeaturePrompt(source string, instructions string, framework string) string {
	return fmt.Sprintf(`You are a code assistant helping to **extend an existing project**.

User's feature request:
---
%s
---

Here is the existing source:
---
%s
---

Follow these framework rules exactly:

%s

Only return the modified or newly added files. Do not include duplicates or files that were not changed.
%s`, instructions, source, GetFrameworkInstructions(framework), codeOutputFormat)
}

// GetCodeRefactorPrompt builds the prompt for refactoring existing source.
// The response is a single fenced code block holding the full modified source,
// not a file-list JSON object.
func GetCodeRefactorPrompt(source string, instructions string) string {
	return fmt.Sprintf(`You are a code assistant helping to **refactor an existing source file**.

User's instruction:
---
%s
---

Here is the current source:
---
%s
---

Respond with the complete refactored source inside one fenced code block.
Do not drop any behavior the instruction does not mention. No commentary
outside the code block.`, instructions, source)
}
