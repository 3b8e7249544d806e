package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoJSONObject is returned when a model response contains no `{...}` span.
var ErrNoJSONObject = errors.New("no JSON object found in response")

// StripCodeFences removes a surrounding markdown code fence from a model
// response, if present. The opening fence's info string (json, tsx, ...) is
// dropped along with the fence.
func StripCodeFences(s string) string {
	out := strings.TrimSpace(s)
	if strings.HasPrefix(out, "```") {
		if nl := strings.Index(out, "\n"); nl >= 0 && !strings.ContainsAny(out[3:nl], " \t{") {
			out = out[nl+1:]
		} else {
			out = strings.TrimPrefix(out, "```")
		}
	}
	out = strings.TrimSuffix(strings.TrimSpace(out), "```")
	return strings.TrimSpace(out)
}

// ExtractJSONObject returns the substring spanning the first '{' through the
// last '}' of s. This is a best-effort heuristic for pulling a single JSON
// object out of free-form model output: it misparses when the surrounding
// prose itself contains braces, or when the response holds several objects.
// Callers must treat a failure here as a parse error, not retry the model.
func ExtractJSONObject(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return "", ErrNoJSONObject
	}
	return s[start : end+1], nil
}

// DecodeJSONObject strips markdown fences, extracts the first JSON object
// from a model response, and unmarshals it into v.
func DecodeJSONObject(response string, v any) error {
	raw, err := ExtractJSONObject(StripCodeFences(response))
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("could not parse JSON: %w", err)
	}
	return nil
}
