package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"

	"design2code/config"
	"design2code/internal/ai/prompts"
	"design2code/internal/ai/utils"
	"design2code/internal/types"
)

// geminiCredentials is the credential strategy for the design model, resolved
// once at construction. Exactly one of the implementations below is active.
type geminiCredentials interface {
	clientOptions(ctx context.Context) ([]option.ClientOption, error)
}

// apiKeyCredentials authenticates with a static API key.
type apiKeyCredentials struct {
	key string
}

func (c apiKeyCredentials) clientOptions(context.Context) ([]option.ClientOption, error) {
	return []option.ClientOption{option.WithAPIKey(c.key)}, nil
}

// gcloudCredentials fetches an OAuth access token from the gcloud CLI on each
// call; tokens are short-lived, so nothing is cached.
type gcloudCredentials struct {
	gcloudPath string
}

func (c gcloudCredentials) clientOptions(ctx context.Context) ([]option.ClientOption, error) {
	out, err := exec.CommandContext(ctx, c.gcloudPath, "auth", "print-access-token").Output()
	if err != nil {
		return nil, fmt.Errorf("gcloud access token fetch failed (run 'gcloud auth login' first): %w", err)
	}
	token := strings.TrimSpace(string(out))
	if token == "" {
		return nil, errors.New("gcloud returned an empty access token")
	}
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return []option.ClientOption{option.WithTokenSource(source)}, nil
}

// noCredentials makes every call fail with setup instructions before any
// network request is attempted.
type noCredentials struct{}

func (noCredentials) clientOptions(context.Context) ([]option.ClientOption, error) {
	return nil, errors.New("design model auth not configured: set GEMINI_API_KEY in the environment or config.yaml, or install the gcloud CLI and run 'gcloud auth login'")
}

// DesignGenerator turns text prompts or UI images into design specs via the
// Gemini API.
type DesignGenerator struct {
	creds   geminiCredentials
	modelID string
}

// NewDesignGenerator resolves the credential strategy once: a static API key
// wins, then the gcloud login flow, otherwise calls fail with an auth error.
func NewDesignGenerator(cfg config.Config) *DesignGenerator {
	return &DesignGenerator{
		creds:   resolveGeminiCredentials(cfg),
		modelID: cfg.DesignModelID,
	}
}

func resolveGeminiCredentials(cfg config.Config) geminiCredentials {
	if cfg.GeminiAPIKey != "" {
		return apiKeyCredentials{key: cfg.GeminiAPIKey}
	}
	if path, err := exec.LookPath("gcloud"); err == nil {
		log.Printf("GEMINI_API_KEY not set, using gcloud OAuth tokens from %s", path)
		return gcloudCredentials{gcloudPath: path}
	}
	return noCredentials{}
}

// GenerateDesign creates a new design spec from a text description.
func (g *DesignGenerator) GenerateDesign(ctx context.Context, userPrompt string) (*types.DesignSpec, error) {
	fullPrompt := fmt.Sprintf(prompts.GetDesignGenerationPrompt(), userPrompt)

	text, err := g.invoke(ctx, genai.Text(fullPrompt))
	if err != nil {
		return nil, err
	}
	return parseDesignResponse(text)
}

// AnalyzeImage reverse-engineers a design spec from a UI screenshot or mockup.
// The optional hint gives the model extra context about the image.
func (g *DesignGenerator) AnalyzeImage(ctx context.Context, imagePath string, hint string) (*types.DesignSpec, error) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read image %s: %w", imagePath, err)
	}

	text, err := g.invoke(ctx,
		genai.Text(prompts.GetImageAnalysisPrompt(hint)),
		genai.ImageData(imageFormat(imagePath), data),
	)
	if err != nil {
		return nil, err
	}
	return parseDesignResponse(text)
}

// RefineDesign applies user feedback to an existing design spec and returns
// the updated spec.
func (g *DesignGenerator) RefineDesign(ctx context.Context, spec *types.DesignSpec, feedback string) (*types.DesignSpec, error) {
	specJSON, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("could not serialize design spec: %w", err)
	}

	text, err := g.invoke(ctx, genai.Text(prompts.GetDesignRefinePrompt(string(specJSON), feedback)))
	if err != nil {
		return nil, err
	}
	return parseDesignResponse(text)
}

// invoke performs one Gemini call and returns the concatenated text parts of
// the first candidate.
func (g *DesignGenerator) invoke(ctx context.Context, parts ...genai.Part) (string, error) {
	opts, err := g.creds.clientOptions(ctx)
	if err != nil {
		return "", err
	}

	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("gemini client init failed: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(g.modelID)
	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("gemini generate content failed: %w", err)
	}
	return responseText(resp)
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("gemini returned empty response")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("gemini returned no text parts")
	}
	return sb.String(), nil
}

// imageFormat picks the inline-attachment image format from the file
// extension: ".png" maps to png, everything else is treated as jpeg.
func imageFormat(imagePath string) string {
	if strings.EqualFold(filepath.Ext(imagePath), ".png") {
		return "png"
	}
	return "jpeg"
}

func parseDesignResponse(text string) (*types.DesignSpec, error) {
	var spec types.DesignSpec
	if err := utils.DecodeJSONObject(text, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse design response: %w", err)
	}
	return &spec, nil
}
