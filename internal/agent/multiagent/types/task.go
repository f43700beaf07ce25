// Package types holds shared types and session state keys for the crew agents.
package types

// Task is a unit of work for a crew: a prompt addressed to a named
// specialist agent. Task prompts are built deterministically by the crew
// packages and fed to the coordinator, which transfers to the named agent.
type Task struct {
	// Agent is the name of the specialist agent the task is intended for.
	Agent string

	// Operation identifies the operation the prompt was built for.
	// Recorded in the session audit log when the task is dispatched.
	Operation string

	// Prompt is the full task description handed to the agent.
	Prompt string
}
