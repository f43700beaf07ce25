package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/moolen/crewline/internal/agent/multiagent/types"
	"github.com/moolen/crewline/internal/agent/runner"
)

// Shared flags for commands that run a one-shot crew task.
var (
	crewTaskAnthropicKey string
	crewTaskModel        string
	crewTaskMockTools    bool
)

// addCrewTaskFlags registers the LLM flags on a crew task command.
func addCrewTaskFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&crewTaskAnthropicKey, "anthropic-key", "",
		"Anthropic API key (defaults to ANTHROPIC_API_KEY env var or config)")
	cmd.Flags().StringVar(&crewTaskModel, "model", "",
		"Claude model to use (defaults to the configured model)")
	cmd.Flags().BoolVar(&crewTaskMockTools, "mock-tools", false,
		"Use mock tool responses (canned data instead of the real knowledge base)")
}

// runCrewTask runs one task against the named crew without the TUI and
// prints the final answer.
func runCrewTask(crew string, task types.Task) error {
	if err := setupLog(logLevelFlags); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	model := crewTaskModel
	if model == "" {
		model = cfg.Model
	}
	apiKey := crewTaskAnthropicKey
	if apiKey == "" {
		apiKey = cfg.AnthropicAPIKey
	}

	isMockModel := strings.HasPrefix(model, "mock")
	if !isMockModel && apiKey == "" {
		return fmt.Errorf("Anthropic API key required. Set ANTHROPIC_API_KEY, the anthropic_api_key config field, or use --anthropic-key")
	}

	r, err := runner.New(runner.Config{
		AnthropicAPIKey: apiKey,
		Model:           model,
		Crew:            crew,
		MockTools:       crewTaskMockTools || isMockModel,
	})
	if err != nil {
		return fmt.Errorf("failed to create crew runner: %w", err)
	}
	defer r.Close()

	answer, err := r.RunTask(ctx, task)
	if err != nil {
		return fmt.Errorf("task failed: %w", err)
	}

	return emitDocument(answer, true)
}
