package ai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"
	"time"
)

// AgentRunner shells out to an external command-line AI agent (e.g., the
// claude CLI) for code generation. No API key needed on this path.
type AgentRunner struct {
	agentPath string
	timeout   time.Duration
}

func NewAgentRunner(agentPath string, timeout time.Duration) *AgentRunner {
	return &AgentRunner{agentPath: agentPath, timeout: timeout}
}

// Run sends prompt to the agent and returns its stdout. The prompt is staged
// in a temp file and first piped over stdin; if that invocation fails, the
// prompt is passed as a direct argument before giving up. The temp file is
// removed on every exit path, and the whole call is bounded by the configured
// wall-clock timeout, which kills the child process when exceeded.
func (r *AgentRunner) Run(ctx context.Context, prompt string) (string, error) {
	promptFile, err := os.CreateTemp("", "design2code-prompt-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create agent prompt file: %w", err)
	}
	defer os.Remove(promptFile.Name())

	if _, err := promptFile.WriteString(prompt); err != nil {
		promptFile.Close()
		return "", fmt.Errorf("failed to write agent prompt file %s: %w", promptFile.Name(), err)
	}
	if err := promptFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close agent prompt file %s: %w", promptFile.Name(), err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	out, stdinErr := r.runViaStdin(ctx, promptFile.Name())
	if stdinErr == nil {
		return out, nil
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "", fmt.Errorf("agent timed out after %s: %w", r.timeout, stdinErr)
	}
	log.Printf("Agent stdin invocation failed (%v), retrying with prompt as argument", stdinErr)

	out, argErr := r.runViaArgument(ctx, prompt)
	if argErr != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("agent timed out after %s: %w", r.timeout, argErr)
		}
		return "", fmt.Errorf("agent invocation failed (stdin attempt: %v): %w", stdinErr, argErr)
	}
	return out, nil
}

// runViaStdin pipes the staged prompt file to the agent's stdin.
func (r *AgentRunner) runViaStdin(ctx context.Context, promptPath string) (string, error) {
	f, err := os.Open(promptPath)
	if err != nil {
		return "", fmt.Errorf("failed to open agent prompt file %s: %w", promptPath, err)
	}
	defer f.Close()

	cmd := exec.CommandContext(ctx, r.agentPath, "--print")
	cmd.Stdin = f
	return r.collect(cmd)
}

// runViaArgument passes the prompt directly on the command line.
func (r *AgentRunner) runViaArgument(ctx context.Context, prompt string) (string, error) {
	cmd := exec.CommandContext(ctx, r.agentPath, "--print", prompt)
	return r.collect(cmd)
}

func (r *AgentRunner) collect(cmd *exec.Cmd) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("agent process error: %w (stderr: %s)", err, strings.TrimSpace(stderr.String()))
	}

	response := strings.TrimSpace(stdout.String())
	if response == "" {
		return "", errors.New("agent returned empty response")
	}
	return response, nil
}
