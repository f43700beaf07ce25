// Package runner provides the interactive CLI runner for the crew agents.
// It wraps ADK's runner with TUI rendering, slash commands, and audit logging.
package runner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"google.golang.org/genai"

	"google.golang.org/adk/agent"
	adkmodel "google.golang.org/adk/model"
	"google.golang.org/adk/runner"
	adksession "google.golang.org/adk/session"

	"github.com/moolen/crewline/internal/agent/audit"
	"github.com/moolen/crewline/internal/agent/commands"
	"github.com/moolen/crewline/internal/agent/model"
	"github.com/moolen/crewline/internal/agent/multiagent/crmcrew"
	"github.com/moolen/crewline/internal/agent/multiagent/lifecyclecrew"
	"github.com/moolen/crewline/internal/agent/multiagent/types"
	"github.com/moolen/crewline/internal/agent/tools"
	"github.com/moolen/crewline/internal/agent/tui"
)

const (
	// AppName is the ADK application name.
	AppName = "crewline"

	// DefaultUserID is used when no user ID is specified.
	DefaultUserID = "default"
)

// Config contains the runner configuration.
type Config struct {
	// AnthropicAPIKey is the Anthropic API key.
	AnthropicAPIKey string

	// Model is the model name to use (e.g., "claude-sonnet-4-5-20250929").
	// A name starting with "mock" selects the scripted offline LLM.
	Model string

	// Crew selects the agent crew: types.CrewCRM or types.CrewLifecycle.
	Crew string

	// SessionID allows resuming a previous session (optional).
	SessionID string

	// AuditLogPath is the path to write the audit log (JSONL format).
	// If empty, a default under ~/.crewline/sessions/ is used.
	AuditLogPath string

	// InitialPrompt is an optional prompt to send immediately when starting.
	InitialPrompt string

	// MockTools makes tools return canned responses when using the mock LLM.
	MockTools bool
}

// Runner manages the crew agent session.
type Runner struct {
	config Config

	// ADK components
	adkRunner      *runner.Runner
	sessionService adksession.Service
	sessionID      string
	userID         string

	llm          adkmodel.LLM
	toolRegistry *tools.Registry
	crewName     string

	// Audit logging
	auditLogger *audit.Logger

	// LLM metrics tracking
	totalLLMRequests  int
	totalInputTokens  int
	totalOutputTokens int
	lastContextTokens int

	// TUI components
	tuiProgram           *tea.Program
	tuiPendingQuestion   *tools.PendingUserQuestion // Track pending question for TUI mode
	tuiPendingQuestionMu sync.Mutex                 // Protect pending question access
}

// New creates a new crew Runner.
func New(cfg Config) (*Runner, error) {
	r := &Runner{
		config:         cfg,
		userID:         DefaultUserID,
		sessionService: adksession.InMemoryService(),
	}

	// Create session ID first (needed for default audit log path)
	var sessionID string
	if cfg.SessionID != "" {
		sessionID = cfg.SessionID
	} else {
		sessionID = uuid.NewString()
	}

	// Set default audit log path if not specified
	auditLogPath := cfg.AuditLogPath
	if auditLogPath == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			sessionsDir := filepath.Join(home, ".crewline", "sessions")
			if err := os.MkdirAll(sessionsDir, 0750); err == nil {
				auditLogPath = filepath.Join(sessionsDir, sessionID+".audit.log")
			}
		}
	}

	// Create structured logger for tool registry
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Create LLM adapter
	if strings.HasPrefix(cfg.Model, "mock") {
		r.llm = model.NewMockLLM(nil)

		if cfg.MockTools {
			r.toolRegistry = tools.NewMockRegistry()
		} else {
			r.toolRegistry = tools.NewRegistry(tools.Dependencies{
				Logger: logger,
			})
		}
	} else {
		r.toolRegistry = tools.NewRegistry(tools.Dependencies{
			Logger: logger,
		})

		r.llm = model.NewAnthropicLLM(model.Options{
			APIKey: cfg.AnthropicAPIKey,
			Model:  cfg.Model,
		})
	}

	// Build the selected crew and wrap it in an ADK runner
	crewName := cfg.Crew
	if crewName == "" {
		crewName = types.CrewCRM
	}
	if err := r.buildCrew(crewName); err != nil {
		return nil, err
	}

	// Set session ID
	r.sessionID = sessionID

	// Initialize audit logger with default or configured path
	if auditLogPath != "" {
		auditLogger, err := audit.NewLogger(auditLogPath, r.sessionID)
		if err != nil {
			return nil, fmt.Errorf("failed to create audit logger: %w", err)
		}
		r.auditLogger = auditLogger
	}

	return r, nil
}

// buildCrew constructs the named crew coordinator and replaces the ADK runner.
func (r *Runner) buildCrew(name string) error {
	var crewAgent agent.Agent
	var err error

	switch name {
	case types.CrewCRM:
		crewAgent, err = crmcrew.New(r.llm, r.toolRegistry)
	case types.CrewLifecycle:
		crewAgent, err = lifecyclecrew.New(r.llm, r.toolRegistry)
	default:
		return fmt.Errorf("unknown crew %q (expected %q or %q)", name, types.CrewCRM, types.CrewLifecycle)
	}
	if err != nil {
		return fmt.Errorf("failed to create %s crew: %w", name, err)
	}

	adkRunner, err := runner.New(runner.Config{
		AppName:        AppName,
		Agent:          crewAgent,
		SessionService: r.sessionService,
	})
	if err != nil {
		return fmt.Errorf("failed to create ADK runner: %w", err)
	}

	r.adkRunner = adkRunner
	r.crewName = name
	return nil
}

// SwitchCrew replaces the active crew mid-session. The session history is
// kept; the next message is handled by the new crew's coordinator.
func (r *Runner) SwitchCrew(name string) error {
	if name == r.crewName {
		return nil
	}
	return r.buildCrew(name)
}

// CrewName returns the active crew name.
func (r *Runner) CrewName() string {
	return r.crewName
}

// Run starts the interactive agent loop with the TUI.
func (r *Runner) Run(ctx context.Context) error {
	// Create session
	_, err := r.sessionService.Create(ctx, &adksession.CreateRequest{
		AppName:   AppName,
		UserID:    r.userID,
		SessionID: r.sessionID,
	})
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	// Log session start to audit log
	if r.auditLogger != nil {
		_ = r.auditLogger.LogSessionStart(r.config.Model, r.crewName)
	}

	// Create event channel for TUI updates
	eventCh := make(chan interface{}, 100)

	// Create TUI model
	tuiModel := tui.NewModel(eventCh, r.sessionID, r.crewName, r.config.Model)

	// Create TUI program with a custom model that wraps the input handling
	wrappedModel := &tuiModelWrapper{
		Model:         &tuiModel,
		runner:        r,
		eventCh:       eventCh,
		ctx:           ctx,
		initialPrompt: r.config.InitialPrompt,
	}

	// Create TUI program
	r.tuiProgram = tea.NewProgram(
		wrappedModel,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Enable mouse support for scrolling
		tea.WithContext(ctx),
	)

	// Run the TUI program
	_, err = r.tuiProgram.Run()

	// Log session end and close audit logger
	if r.auditLogger != nil {
		_ = r.auditLogger.LogSessionMetrics(r.totalLLMRequests, r.totalInputTokens, r.totalOutputTokens)
		_ = r.auditLogger.LogSessionEnd()
		_ = r.auditLogger.Close()
		r.auditLogger = nil
	}

	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	close(eventCh)
	return nil
}

// tuiModelWrapper wraps the TUI model to intercept input submissions.
type tuiModelWrapper struct {
	*tui.Model
	runner        *Runner
	eventCh       chan interface{}
	ctx           context.Context
	initialPrompt string
}

// Update intercepts InputSubmittedMsg to trigger agent processing.
func (w *tuiModelWrapper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Check for input submission
	if inputMsg, ok := msg.(tui.InputSubmittedMsg); ok {
		// Check if this is a slash command
		cmd := commands.ParseCommand(inputMsg.Input)
		if cmd != nil {
			// Execute command and send result
			go func() {
				ctx := &commands.Context{
					SessionID:         w.runner.sessionID,
					CrewName:          w.runner.crewName,
					TotalLLMRequests:  w.runner.totalLLMRequests,
					TotalInputTokens:  w.runner.totalInputTokens,
					TotalOutputTokens: w.runner.totalOutputTokens,
					ContextTokens:     w.runner.lastContextTokens,
					ContextMax:        model.ContextWindow(w.runner.config.Model),
					QuitFunc: func() {
						if w.runner.tuiProgram != nil {
							w.runner.tuiProgram.Quit()
						}
					},
					SwitchCrewFunc: w.runner.SwitchCrew,
				}
				result := commands.DefaultRegistry.Execute(ctx, cmd)
				w.eventCh <- tui.CommandExecutedMsg{
					Success: result.Success,
					Message: result.Message,
					IsInfo:  result.IsInfo,
				}
			}()
			// Don't process as a message to the LLM
		} else {
			// Not a command, process as normal message in a goroutine
			go func() {
				// Check if this is a response to a pending question
				message := inputMsg.Input

				w.runner.tuiPendingQuestionMu.Lock()
				pendingQuestion := w.runner.tuiPendingQuestion
				if pendingQuestion != nil {
					// Parse the user response and build contextual message
					parsedResponse := tools.ParseUserResponse(inputMsg.Input, pendingQuestion.DefaultConfirm)

					if parsedResponse.Confirmed {
						message = fmt.Sprintf("User confirmed. Please continue with the task. The user's confirmation response: %q", inputMsg.Input)
					} else if parsedResponse.HasClarification {
						message = fmt.Sprintf("User provided clarification instead of confirming. Their response: %q. Please process this clarification and re-confirm with the user if needed.", inputMsg.Input)
					} else {
						message = fmt.Sprintf("User rejected with response: %q. Please ask what needs to be corrected.", inputMsg.Input)
					}

					// Clear the pending question
					w.runner.tuiPendingQuestion = nil
				}
				w.runner.tuiPendingQuestionMu.Unlock()

				if err := w.runner.processMessageWithTUI(w.ctx, message, w.eventCh); err != nil {
					w.eventCh <- tui.ErrorMsg{Error: err}
				}
			}()
		}
		// Continue with the normal update
	}

	// Delegate to the wrapped model
	newModel, cmd := w.Model.Update(msg)
	if m, ok := newModel.(*tui.Model); ok {
		w.Model = m
	}
	return w, cmd
}

// View delegates to the wrapped model.
func (w *tuiModelWrapper) View() string {
	return w.Model.View()
}

// Init delegates to the wrapped model and sends the initial prompt if set.
func (w *tuiModelWrapper) Init() tea.Cmd {
	cmds := []tea.Cmd{w.Model.Init()}
	if w.initialPrompt != "" {
		prompt := w.initialPrompt
		w.initialPrompt = ""
		cmds = append(cmds, func() tea.Msg {
			return tui.InitialPromptMsg{Prompt: prompt}
		})
	}
	return tea.Batch(cmds...)
}

// processMessageWithTUI processes a message and sends events to the TUI.
func (r *Runner) processMessageWithTUI(ctx context.Context, message string, eventCh chan<- interface{}) error {
	// Log user message to audit log
	if r.auditLogger != nil {
		_ = r.auditLogger.LogUserMessage(message)
	}

	// Create user content
	userContent := &genai.Content{
		Role: "user",
		Parts: []*genai.Part{
			{Text: message},
		},
	}

	// Run the agent
	runConfig := agent.RunConfig{
		StreamingMode: agent.StreamingModeNone,
	}

	var currentAgent string
	var lastTextResponse string
	toolStartTimes := make(map[string]time.Time)                   // Key is tool call ID (or name if no ID)
	askUserQuestionArgs := make(map[string]map[string]interface{}) // Store ask_user_question args by tool key
	completedSent := false
	pipelineStart := time.Now()
	var pendingQuestion *tools.PendingUserQuestion // Track if a user question is pending

	contextMax := model.ContextWindow(r.config.Model)

	for event, err := range r.adkRunner.Run(ctx, r.userID, r.sessionID, userContent, runConfig) {
		if err != nil {
			if r.auditLogger != nil {
				_ = r.auditLogger.LogError(currentAgent, err)
			}
			eventCh <- tui.ErrorMsg{Error: err}
			return fmt.Errorf("agent error: %w", err)
		}

		if event == nil {
			continue
		}

		// Update context usage from event metadata
		if event.UsageMetadata != nil && event.UsageMetadata.PromptTokenCount > 0 {
			// Prompt token count represents how much of the context window
			// is being used for input
			r.lastContextTokens = int(event.UsageMetadata.PromptTokenCount)
			eventCh <- tui.ContextUpdateMsg{
				Used: r.lastContextTokens,
				Max:  contextMax,
			}

			// Track LLM metrics
			inputTokens := int(event.UsageMetadata.PromptTokenCount)
			outputTokens := int(event.UsageMetadata.CandidatesTokenCount)

			r.totalLLMRequests++
			r.totalInputTokens += inputTokens
			r.totalOutputTokens += outputTokens

			providerName := "anthropic"
			if strings.HasPrefix(r.config.Model, "mock") {
				providerName = "mock"
			}

			// Determine stop reason based on event content
			stopReason := "end_turn"
			if event.Content != nil {
				for _, part := range event.Content.Parts {
					if part.FunctionCall != nil {
						stopReason = "tool_use"
						break
					}
				}
			}

			// Log LLM request to audit log
			if r.auditLogger != nil {
				_ = r.auditLogger.LogLLMRequest(providerName, r.config.Model, inputTokens, outputTokens, stopReason)
			}
		}

		// Check for agent change (from event.Author)
		if event.Author != "" && event.Author != currentAgent {
			currentAgent = event.Author
			eventCh <- tui.AgentActivatedMsg{Name: currentAgent}

			// Log agent activation to audit log
			if r.auditLogger != nil {
				_ = r.auditLogger.LogAgentActivated(currentAgent)
			}
		}

		// Check for function calls (tool use)
		if event.Content != nil {
			for _, part := range event.Content.Parts {
				if part.FunctionCall != nil {
					toolName := part.FunctionCall.Name
					// Use ID if available, otherwise fall back to name
					toolKey := part.FunctionCall.ID
					if toolKey == "" {
						toolKey = toolName
					}
					toolStartTimes[toolKey] = time.Now()

					// Store args for ask_user_question so we can extract them when the response arrives
					if toolName == "ask_user_question" {
						askUserQuestionArgs[toolKey] = part.FunctionCall.Args
					}

					eventCh <- tui.ToolStartedMsg{
						Agent:    currentAgent,
						ToolID:   toolKey,
						ToolName: toolName,
					}

					// Log tool start to audit log
					if r.auditLogger != nil {
						_ = r.auditLogger.LogToolStart(currentAgent, toolName, part.FunctionCall.Args)
					}
				}
				if part.FunctionResponse != nil {
					toolName := part.FunctionResponse.Name
					// Use ID if available, otherwise fall back to name
					toolKey := part.FunctionResponse.ID
					if toolKey == "" {
						toolKey = toolName
					}

					// Calculate duration
					var duration time.Duration
					if startTime, ok := toolStartTimes[toolKey]; ok {
						duration = time.Since(startTime)
						delete(toolStartTimes, toolKey) // Clean up
					}

					// Check if tool succeeded (simple heuristic)
					success := true
					summary := ""
					if errMsg, exists := part.FunctionResponse.Response["error"]; exists && errMsg != nil {
						success = false
						summary = fmt.Sprintf("%v", errMsg)
					}

					// Check if this is ask_user_question with pending status
					if toolName == "ask_user_question" {
						if status, ok := part.FunctionResponse.Response["status"].(string); ok && status == "pending" {
							// Extract the question from the stored FunctionCall args
							if args, ok := askUserQuestionArgs[toolKey]; ok {
								question := ""
								questionSummary := ""
								defaultConfirm := false

								if q, ok := args["question"].(string); ok {
									question = q
								}
								if s, ok := args["summary"].(string); ok {
									questionSummary = s
								}
								if dc, ok := args["default_confirm"].(bool); ok {
									defaultConfirm = dc
								}

								if question != "" {
									pendingQuestion = &tools.PendingUserQuestion{
										Question:       question,
										Summary:        questionSummary,
										DefaultConfirm: defaultConfirm,
										AgentName:      currentAgent,
									}
								}

								// Clean up stored args
								delete(askUserQuestionArgs, toolKey)
							}

							if r.auditLogger != nil {
								_ = r.auditLogger.LogEventReceived("tui-ask-user-pending", currentAgent, map[string]interface{}{
									"tool_name":        toolName,
									"status":           status,
									"pending_question": pendingQuestion != nil,
								})
							}
						}
					}

					eventCh <- tui.ToolCompletedMsg{
						Agent:    currentAgent,
						ToolID:   toolKey,
						ToolName: toolName,
						Success:  success,
						Duration: duration,
						Summary:  summary,
					}

					// Log tool completion to audit log
					if r.auditLogger != nil {
						_ = r.auditLogger.LogToolComplete(currentAgent, toolName, success, duration, part.FunctionResponse.Response)
					}
				}
			}
		}

		// Check for text response
		if event.Content != nil {
			for _, part := range event.Content.Parts {
				if part.Text != "" && !part.Thought {
					lastTextResponse = part.Text
					eventCh <- tui.AgentTextMsg{
						Agent:   currentAgent,
						Content: part.Text,
						IsFinal: false,
					}

					// Log agent text to audit log (non-final)
					if r.auditLogger != nil {
						_ = r.auditLogger.LogAgentText(currentAgent, part.Text, false)
					}
				}
			}
		}

		// Check for pending user question in state delta
		if event.Actions.StateDelta != nil {
			if r.auditLogger != nil {
				keys := make([]string, 0, len(event.Actions.StateDelta))
				for key := range event.Actions.StateDelta {
					keys = append(keys, key)
				}
				_ = r.auditLogger.LogEventReceived("tui-state-delta", currentAgent, map[string]interface{}{
					"keys":                 keys,
					"escalate":             event.Actions.Escalate,
					"skip_summarization":   event.Actions.SkipSummarization,
					"has_pending_question": event.Actions.StateDelta[types.StateKeyPendingUserQuestion] != nil,
				})
			}

			if questionJSON, ok := event.Actions.StateDelta[types.StateKeyPendingUserQuestion]; ok {
				if jsonStr, ok := questionJSON.(string); ok {
					var q tools.PendingUserQuestion
					if err := json.Unmarshal([]byte(jsonStr), &q); err == nil {
						pendingQuestion = &q
					}
				}
			}
		}

		// Also check if escalate is set (even without state delta)
		if event.Actions.Escalate && r.auditLogger != nil {
			_ = r.auditLogger.LogEventReceived("tui-escalate", currentAgent, map[string]interface{}{
				"escalate":           true,
				"has_state_delta":    event.Actions.StateDelta != nil,
				"skip_summarization": event.Actions.SkipSummarization,
			})
		}

		// Check if this is a final response
		if event.IsFinalResponse() {
			// Mark the agent as done (content was already sent)
			if lastTextResponse != "" {
				eventCh <- tui.AgentTextMsg{
					Agent:   currentAgent,
					Content: "", // Don't resend content, just mark as final
					IsFinal: true,
				}

				// Log final agent text to audit log
				if r.auditLogger != nil {
					_ = r.auditLogger.LogAgentText(currentAgent, lastTextResponse, true)
				}
			}

			// Check if we have a pending user question - if so, don't send CompletedMsg yet
			if pendingQuestion != nil {
				// Store on runner for the TUI wrapper to access when user responds
				r.tuiPendingQuestionMu.Lock()
				r.tuiPendingQuestion = pendingQuestion
				r.tuiPendingQuestionMu.Unlock()

				// Send the question to the TUI
				eventCh <- tui.UserQuestionMsg{
					Question:       pendingQuestion.Question,
					Summary:        pendingQuestion.Summary,
					DefaultConfirm: pendingQuestion.DefaultConfirm,
					AgentName:      pendingQuestion.AgentName,
				}
				// Don't send CompletedMsg - wait for user response.
				// Clear pendingQuestion so we don't process it again after the loop.
				pendingQuestion = nil
				completedSent = true
				continue
			}

			eventCh <- tui.CompletedMsg{}
			completedSent = true

			// Log pipeline completion to audit log
			if r.auditLogger != nil {
				_ = r.auditLogger.LogPipelineComplete(time.Since(pipelineStart))
			}
		}
	}

	// Ensure we always send a completed message when the loop finishes
	if !completedSent {
		eventCh <- tui.CompletedMsg{}

		// Log pipeline completion even if no final response was received
		if r.auditLogger != nil {
			_ = r.auditLogger.LogPipelineComplete(time.Since(pipelineStart))
		}
	}

	return nil
}

// SessionID returns the current session ID.
func (r *Runner) SessionID() string {
	return r.sessionID
}

// ProcessMessageForTUI is a public method to process a message and send events to a channel.
// This is used by the TUI to trigger agent runs.
func (r *Runner) ProcessMessageForTUI(ctx context.Context, message string, eventCh chan<- interface{}) error {
	return r.processMessageWithTUI(ctx, message, eventCh)
}

// RunTask executes a single crew task without the TUI and returns the final
// text response. Used by the one-shot CLI commands.
func (r *Runner) RunTask(ctx context.Context, task types.Task) (string, error) {
	_, err := r.sessionService.Create(ctx, &adksession.CreateRequest{
		AppName:   AppName,
		UserID:    r.userID,
		SessionID: r.sessionID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	if r.auditLogger != nil {
		_ = r.auditLogger.LogSessionStart(r.config.Model, r.crewName)
		_ = r.auditLogger.LogTaskDispatched(task.Operation, task.Agent)
		_ = r.auditLogger.LogUserMessage(task.Prompt)
	}

	userContent := &genai.Content{
		Role: "user",
		Parts: []*genai.Part{
			{Text: task.Prompt},
		},
	}

	runConfig := agent.RunConfig{
		StreamingMode: agent.StreamingModeNone,
	}

	var currentAgent string
	var finalText string
	start := time.Now()

	for event, err := range r.adkRunner.Run(ctx, r.userID, r.sessionID, userContent, runConfig) {
		if err != nil {
			if r.auditLogger != nil {
				_ = r.auditLogger.LogError(currentAgent, err)
			}
			return "", fmt.Errorf("agent error: %w", err)
		}
		if event == nil {
			continue
		}

		if event.Author != "" && event.Author != currentAgent {
			currentAgent = event.Author
			if r.auditLogger != nil {
				_ = r.auditLogger.LogAgentActivated(currentAgent)
			}
		}

		if event.Content != nil {
			for _, part := range event.Content.Parts {
				if part.Text != "" && !part.Thought {
					finalText = part.Text
				}
			}
		}
	}

	if r.auditLogger != nil {
		_ = r.auditLogger.LogPipelineComplete(time.Since(start))
		_ = r.auditLogger.LogSessionEnd()
	}

	return finalText, nil
}

// Close releases runner resources.
func (r *Runner) Close() error {
	if r.auditLogger != nil {
		return r.auditLogger.Close()
	}
	return nil
}
