package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/moolen/crewline/internal/agent/runner"
)

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Start an interactive crew agent session",
	Long: `Start an interactive AI-powered crew session in a full terminal UI.

Two crews are available:
- crm: Creatio CRM analytics (schema, queries, metrics, documentation)
- lifecycle: development lifecycle (tickets, requirements, planning, quality)

The TUI shows which specialist agent is active, tool calls with timing,
and context window usage. Use /crew <name> inside the session to switch
crews.

Examples:
  # Start the CRM crew
  crewline agent

  # Start the lifecycle crew with an initial prompt
  crewline agent --crew lifecycle --prompt "triage: login page returns 500"

  # Use a specific model
  crewline agent --model claude-sonnet-4-5-20250929
`,
	RunE: runAgentSession,
}

var (
	agentCrew         string
	agentAnthropicKey string
	agentModel        string
	agentSessionID    string
	agentAuditLog     string
	agentPrompt       string
	agentMockTools    bool
)

func init() {
	rootCmd.AddCommand(agentCmd)

	agentCmd.Flags().StringVar(&agentCrew, "crew", "",
		"Crew to start: crm or lifecycle (defaults to the configured crew)")
	agentCmd.Flags().StringVar(&agentAnthropicKey, "anthropic-key", "",
		"Anthropic API key (defaults to ANTHROPIC_API_KEY env var or config)")
	agentCmd.Flags().StringVar(&agentModel, "model", "",
		"Claude model to use (defaults to the configured model)")
	agentCmd.Flags().StringVar(&agentSessionID, "session-id", "",
		"Resume a previous session by ID")

	// Audit logging flag
	agentCmd.Flags().StringVar(&agentAuditLog, "audit-log", "",
		"Path to write the session audit log (JSONL format). If empty, a default under the audit dir is used.")

	// Initial prompt flag
	agentCmd.Flags().StringVar(&agentPrompt, "prompt", "",
		"Initial prompt to send to the crew (useful for scripting)")

	// Mock LLM flag
	agentCmd.Flags().BoolVar(&agentMockTools, "mock-tools", false,
		"Use mock tool responses (canned data instead of the real knowledge base)")
}

func runAgentSession(cmd *cobra.Command, args []string) error {
	// Initialize logging
	if err := setupLog(logLevelFlags); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\nShutting down...")
		cancel()
	}()

	// CLI flags override config
	model := agentModel
	if model == "" {
		model = cfg.Model
	}
	crew := agentCrew
	if crew == "" {
		crew = cfg.Crew
	}
	apiKey := agentAnthropicKey
	if apiKey == "" {
		apiKey = cfg.AnthropicAPIKey
	}

	// Check for API key (skip for mock models)
	isMockModel := strings.HasPrefix(model, "mock")
	if !isMockModel && apiKey == "" {
		return fmt.Errorf("Anthropic API key required. Set ANTHROPIC_API_KEY, the anthropic_api_key config field, or use --anthropic-key")
	}

	r, err := runner.New(runner.Config{
		AnthropicAPIKey: apiKey,
		Model:           model,
		Crew:            crew,
		SessionID:       agentSessionID,
		AuditLogPath:    agentAuditLog,
		InitialPrompt:   agentPrompt,
		MockTools:       agentMockTools || isMockModel,
	})
	if err != nil {
		return fmt.Errorf("failed to create crew runner: %w", err)
	}

	return r.Run(ctx)
}
