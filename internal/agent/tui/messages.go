// Package tui renders the interactive crew session: a scrolling
// transcript of agent activity, a composer for prompts and slash
// commands, and a confirmation prompt for crew questions.
package tui

import "time"

// Status tracks an agent or tool through its lifecycle.
type Status int

const (
	StatusPending Status = iota
	StatusActive
	StatusCompleted
	StatusError
)

// AgentActivatedMsg announces the specialist now driving the turn.
type AgentActivatedMsg struct {
	Name string
}

// AgentTextMsg carries text an agent produced. IsFinal marks the
// crew's answer for this turn.
type AgentTextMsg struct {
	Agent   string
	Content string
	IsFinal bool
}

// ToolStartedMsg announces a tool call. ToolID pairs it with the
// matching ToolCompletedMsg.
type ToolStartedMsg struct {
	Agent    string
	ToolID   string
	ToolName string
}

// ToolCompletedMsg reports a finished tool call.
type ToolCompletedMsg struct {
	Agent    string
	ToolID   string
	ToolName string
	Success  bool
	Duration time.Duration
	Summary  string
}

// ContextUpdateMsg refreshes the context window gauge.
type ContextUpdateMsg struct {
	Used int
	Max  int
}

// ErrorMsg surfaces a processing error.
type ErrorMsg struct {
	Error error
}

// InputSubmittedMsg is emitted when the user submits the composer or
// answers a question; the runner intercepts it.
type InputSubmittedMsg struct {
	Input string
}

// InitialPromptMsg seeds the session with a prompt passed on the
// command line.
type InitialPromptMsg struct {
	Prompt string
}

// CompletedMsg marks the end of a turn's event stream.
type CompletedMsg struct{}

// UserQuestionMsg pauses the crew until the user confirms or
// clarifies. DefaultConfirm makes an empty answer a yes.
type UserQuestionMsg struct {
	Question       string
	Summary        string
	DefaultConfirm bool
	AgentName      string
}

// CommandExecutedMsg carries the outcome of a slash command.
type CommandExecutedMsg struct {
	Success bool
	Message string
	IsInfo  bool
}

// waitForEventMsg wraps one event read from the runner's channel.
type waitForEventMsg struct {
	event interface{}
}
