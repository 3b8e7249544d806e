package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os/exec"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"design2code/config"
	"design2code/internal/ai/prompts"
	aiutils "design2code/internal/ai/utils"
	"design2code/internal/types"
	"design2code/internal/utils"
)

// codeBackend is the credential strategy for the code model, resolved once at
// construction: a direct OpenAI call, a delegated external agent process, or
// an immediate auth error.
type codeBackend interface {
	invoke(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// openAIBackend issues one chat completion per request. No client-side
// timeout and no retry; transient failures surface to the caller.
type openAIBackend struct {
	client  *openai.Client
	modelID string
}

func (b *openAIBackend) invoke(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := b.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: b.modelID,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: userPrompt},
			},
			Temperature: 0.3, // Lower temperature for more predictable code generation
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		log.Printf("OpenAI usage for failed request: %+v", resp.Usage)
		return "", errors.New("openai returned empty response")
	}
	return resp.Choices[0].Message.Content, nil
}

// agentBackend delegates to an external command-line AI agent. The agent
// takes a single prompt, so the system text is folded in.
type agentBackend struct {
	runner *AgentRunner
}

func (b *agentBackend) invoke(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return b.runner.Run(ctx, systemPrompt+"\n\n"+userPrompt)
}

// noBackend makes every call fail with setup instructions before any network
// call or process spawn is attempted.
type noBackend struct{}

func (noBackend) invoke(context.Context, string, string) (string, error) {
	return "", errors.New("code model auth not configured: set OPENAI_API_KEY in the environment or config.yaml, or install an agent CLI and point CODE_AGENT_PATH at it")
}

// CodeGenerator turns design specs into project files, and modifies existing
// code, via whichever backend is configured.
type CodeGenerator struct {
	backend codeBackend
}

// NewCodeGenerator resolves the backend once: an OpenAI API key wins,
// otherwise the external agent executable is used if it resolves on PATH.
func NewCodeGenerator(cfg config.Config) *CodeGenerator {
	return &CodeGenerator{backend: resolveCodeBackend(cfg)}
}

func resolveCodeBackend(cfg config.Config) codeBackend {
	if cfg.OpenAIKey != "" {
		return &openAIBackend{
			client:  openai.NewClient(cfg.OpenAIKey),
			modelID: cfg.CodeModelID,
		}
	}
	if path, err := exec.LookPath(cfg.CodeAgentPath); err == nil {
		log.Printf("OPENAI_API_KEY not set, delegating code generation to agent %s", path)
		return &agentBackend{
			runner: NewAgentRunner(path, time.Duration(cfg.CodeAgentTimeout)*time.Second),
		}
	}
	return noBackend{}
}

// BuildCodePrompt is the pure prompt-construction step for GenerateCode:
// the serialized spec plus the instruction block for framework (or the
// default block for unknown keys).
func BuildCodePrompt(spec *types.DesignSpec, framework string) (string, error) {
	specJSON, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("could not serialize design spec: %w", err)
	}
	return prompts.GetCodeGenerationPrompt(string(specJSON), framework), nil
}

// GenerateCode implements a design spec as a multi-file project for the given
// framework.
func (g *CodeGenerator) GenerateCode(ctx context.Context, spec *types.DesignSpec, framework string) (*types.GeneratedCode, error) {
	userPrompt, err := BuildCodePrompt(spec, framework)
	if err != nil {
		return nil, err
	}

	text, err := g.backend.invoke(ctx, prompts.CodeSystemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}
	return parseCodeResponse(text, "generated code")
}

// AddFeature extends existing source with a requested feature, returning only
// the modified or newly added files.
func (g *CodeGenerator) AddFeature(ctx context.Context, source string, instructions string, framework string) (*types.GeneratedCode, error) {
	text, err := g.backend.invoke(ctx, prompts.CodeSystemPrompt, prompts.GetAddFeaturePrompt(source, instructions, framework))
	if err != nil {
		return nil, err
	}
	return parseCodeResponse(text, "feature code")
}

// RefactorCode rewrites existing source per the instructions and returns the
// full modified source text.
func (g *CodeGenerator) RefactorCode(ctx context.Context, source string, instructions string) (string, error) {
	text, err := g.backend.invoke(ctx, prompts.CodeSystemPrompt, prompts.GetCodeRefactorPrompt(source, instructions))
	if err != nil {
		return "", err
	}
	refactored := aiutils.StripCodeFences(text)
	if refactored == "" {
		return "", errors.New("failed to parse refactored code: model returned no source")
	}
	return refactored, nil
}

func parseCodeResponse(text string, what string) (*types.GeneratedCode, error) {
	var code types.GeneratedCode
	if err := aiutils.DecodeJSONObject(text, &code); err != nil {
		return nil, fmt.Errorf("failed to parse %s response: %w", what, err)
	}
	if len(code.Files) == 0 {
		return nil, fmt.Errorf("model did not return any %s files", what)
	}
	for i := range code.Files {
		if code.Files[i].Type == "" {
			code.Files[i].Type = utils.DetermineFileType(code.Files[i].Filename) // Fallback
		}
	}
	return &code, nil
}
