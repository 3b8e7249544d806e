package types

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDesignSpecRoundTrip(t *testing.T) {
	spec := &DesignSpec{
		Name:        "Landing",
		Description: "A landing page",
		Layout:      Layout{Type: "single", Sections: []string{"hero", "features", "footer"}},
		ColorScheme: ColorScheme{Primary: "#000", Secondary: "#111", Accent: "#222", Background: "#fff", Text: "#000"},
		Typography:  Typography{HeadingFont: "Inter", BodyFont: "Roboto"},
		Components: []Component{
			{
				Type:       "navbar",
				Name:       "MainNav",
				Properties: map[string]string{"sticky": "true"},
				Children: []Component{
					{Type: "link", Name: "Home", Properties: map[string]string{"href": "/"}},
				},
			},
			{Type: "hero", Name: "Hero"},
		},
	}

	path := filepath.Join(t.TempDir(), "design.json")
	require.NoError(t, spec.Save(path))

	loaded, err := LoadDesignSpec(path)
	require.NoError(t, err)
	assert.Equal(t, spec, loaded)
}

func TestLoadDesignSpecMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.json")
	_, err := LoadDesignSpec(missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), missing)
}

func TestLoadDesignSpecMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "design.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadDesignSpec(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse design spec")
}
