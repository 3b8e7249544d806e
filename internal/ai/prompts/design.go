package prompts

import "fmt"

// designSpecSchema describes the JSON shape every design response must follow.
// Embedded in every design prompt so the model output parses into types.DesignSpec.
const designSpecSchema = `
Respond with a single JSON object in exactly this shape:

` + "```json" + `
{
  "name": "Short project name",
  "description": "One-paragraph description of the UI",
  "layout": {
    "type": "single | sidebar | grid",
    "sections": ["hero", "features", "footer"]
  },
  "colorScheme": {
    "primary": "#1A73E8",
    "secondary": "#174EA6",
    "accent": "#FF6F61",
    "background": "#F9FAFB",
    "text": "#202124"
  },
  "typography": {
    "headingFont": "Inter",
    "bodyFont": "Inter"
  },
  "components": [
    {
      "type": "navbar",
      "name": "MainNav",
      "properties": { "sticky": "true" },
      "children": []
    }
  ]
}
` + "```" + `

Every field is required. Components may nest arbitrarily via "children".
Only include the JSON object — no extra explanation. Your output will be parsed directly.`

// GetDesignGenerationPrompt returns the prompt template for creating a new
// design spec from a text description. Apply with fmt.Sprintf(template, userPrompt).
func GetDesignGenerationPrompt() string {
	return `You are a senior UI/UX designer AI.

A user has described the interface they want:

---
"%s"
---

Design a complete, modern, visually coherent web UI for this request.
Choose a layout, a five-color scheme, two fonts, and a full component tree.
` + designSpecSchema
}

// GetImageAnalysisPrompt returns the instruction text sent alongside an
// attached UI screenshot or mockup image.
func GetImageAnalysisPrompt(hint string) string {
	prompt := `You are a senior UI/UX designer AI.

Analyze the attached image of a user interface. Reverse-engineer it into a
structured design spec: identify the layout, the color palette actually used,
the typography, and every visible component (nested where appropriate).`
	if hint != "" {
		prompt += fmt.Sprintf("\n\nAdditional context from the user:\n---\n\"%s\"\n---", hint)
	}
	return prompt + "\n" + designSpecSchema
}

// GetDesignRefinePrompt returns the prompt for refining an existing design
// spec according to user feedback.
func GetDesignRefinePrompt(specJSON string, feedback string) string {
	return fmt.Sprintf(`You are a senior UI/UX designer AI iterating on an existing design.

Here is the current design spec:

---
%s
---

The user has given the following feedback:

---
"%s"
---

Apply the feedback and return the full updated design spec. Keep everything
the feedback does not touch unchanged.
`+designSpecSchema, specJSON, feedback)
}
