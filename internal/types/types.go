package types

import (
	"encoding/json"
	"fmt"
	"os"
)

// DesignSpec is the structured description of a UI produced by the design model.
type DesignSpec struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Layout      Layout      `json:"layout"`
	ColorScheme ColorScheme `json:"colorScheme"`
	Typography  Typography  `json:"typography"`
	Components  []Component `json:"components"`
}

// Layout describes the page structure as a type tag plus ordered sections.
type Layout struct {
	Type     string   `json:"type"` // e.g., "single", "sidebar", "grid"
	Sections []string `json:"sections"`
}

// ColorScheme holds the five named colors of a design.
type ColorScheme struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

// Typography holds the heading and body font names.
type Typography struct {
	HeadingFont string `json:"headingFont"`
	BodyFont    string `json:"bodyFont"`
}

// Component is a UI element in the design tree. Children nest recursively.
type Component struct {
	Type       string            `json:"type"` // e.g., "navbar", "hero", "card"
	Name       string            `json:"name"`
	Properties map[string]string `json:"properties,omitempty"`
	Children   []Component       `json:"children,omitempty"`
}

// GeneratedFile represents the structure expected from the LLM for each file.
type GeneratedFile struct {
	Filename string `json:"filename"`
	Type     string `json:"type"` // e.g., "tsx", "css", "json"
	Content  string `json:"content"`
}

// GeneratedCode is one code-generation result: the files to write plus
// free-text setup instructions.
type GeneratedCode struct {
	Files        []GeneratedFile `json:"files"`
	Instructions string          `json:"instructions"`
}

// Save writes the design spec as indented JSON to path.
func (s *DesignSpec) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("could not serialize design spec: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write design spec %s: %w", path, err)
	}
	return nil
}

// LoadDesignSpec reads a design spec JSON file from disk.
func LoadDesignSpec(path string) (*DesignSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read design spec %s: %w", path, err)
	}
	var spec DesignSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse design spec %s: %w", path, err)
	}
	return &spec, nil
}
