package utils

import (
	"path/filepath"
	"strings"
)

// DetermineFileType provides a fallback if the LLM doesn't specify a type.
func DetermineFileType(filename string) string {
	lowerFilename := strings.ToLower(filename)
	ext := filepath.Ext(lowerFilename)
	switch ext {
	case ".html":
		return "HTML"
	case ".css":
		return "CSS"
	case ".js":
		return "JavaScript"
	case ".jsx":
		return "JSX"
	case ".ts":
		return "TypeScript"
	case ".tsx":
		return "TSX"
	case ".vue":
		return "Vue"
	case ".svelte":
		return "Svelte"
	case ".json":
		return "JSON"
	case ".md":
		return "Markdown"
	case ".txt":
		return "Text"
	case ".yaml", ".yml":
		return "YAML"
	case ".toml":
		return "TOML"
	case ".sh":
		return "Shell"
	case ".svg":
		return "SVG"
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
		return "Image"
	default:
		// Try getting type from common config file names
		base := filepath.Base(lowerFilename)
		if strings.Contains(base, "dockerfile") {
			return "Dockerfile"
		}
		if strings.Contains(base, "vite.config") {
			return "Config"
		}
		if strings.Contains(base, "tailwind.config") {
			return "Config"
		}
		if strings.Contains(base, "next.config") {
			return "Config"
		}
		if strings.Contains(base, "package.json") {
			return "JSON"
		}
		if strings.Contains(base, "tsconfig.json") {
			return "JSON"
		}
		if base == ".gitignore" {
			return "GitIgnore"
		}
		if base == ".env" {
			return "Env"
		}

		return "Unknown"
	}
}
