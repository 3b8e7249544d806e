package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"design2code/config"
)

const landingResponse = `{"name":"Landing","description":"d","layout":{"type":"single","sections":[]},"colorScheme":{"primary":"#000","secondary":"#111","accent":"#222","background":"#fff","text":"#000"},"typography":{"headingFont":"Inter","bodyFont":"Inter"},"components":[]}`

func TestParseDesignResponse(t *testing.T) {
	t.Run("bare JSON", func(t *testing.T) {
		spec, err := parseDesignResponse(landingResponse)
		require.NoError(t, err)
		assert.Equal(t, "Landing", spec.Name)
		assert.Equal(t, "single", spec.Layout.Type)
		assert.Equal(t, "#fff", spec.ColorScheme.Background)
		assert.Equal(t, "Inter", spec.Typography.HeadingFont)
		assert.Empty(t, spec.Components)
	})

	t.Run("JSON wrapped in prose and fences", func(t *testing.T) {
		spec, err := parseDesignResponse("Here is your design:\n```json\n" + landingResponse + "\n```\nEnjoy!")
		require.NoError(t, err)
		assert.Equal(t, "Landing", spec.Name)
	})

	t.Run("no JSON object", func(t *testing.T) {
		_, err := parseDesignResponse("Sorry, I cannot help with that.")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse design response")
	})
}

func TestImageFormat(t *testing.T) {
	assert.Equal(t, "png", imageFormat("mockup.png"))
	assert.Equal(t, "png", imageFormat("MOCKUP.PNG"))
	assert.Equal(t, "jpeg", imageFormat("mockup.jpg"))
	assert.Equal(t, "jpeg", imageFormat("mockup.webp"))
}

func TestNoCredentialsFailsWithoutNetworkCall(t *testing.T) {
	g := &DesignGenerator{creds: noCredentials{}, modelID: config.DefaultDesignModelID}

	_, err := g.GenerateDesign(context.Background(), "landing page")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "design model auth not configured")
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestResolveGeminiCredentialsPrefersAPIKey(t *testing.T) {
	creds := resolveGeminiCredentials(config.Config{GeminiAPIKey: "test-key"})
	assert.IsType(t, apiKeyCredentials{}, creds)
}
