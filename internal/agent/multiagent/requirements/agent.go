package requirements

import (
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"

	"github.com/moolen/crewline/internal/agent/multiagent/bridge"
	"github.com/moolen/crewline/internal/agent/tools"
)

// AgentName is the name of the Requirements Analyst Agent.
const AgentName = "requirements_analyst_agent"

// AgentDescription is the description of the Requirements Analyst Agent for the coordinator.
const AgentDescription = "Turns tickets and raw requests into structured requirements: parses user stories, validates completeness and testability, and maintains traceability."

// New creates a new Requirements Analyst Agent backed by the given tool registry.
func New(llm model.LLM, registry *tools.Registry) (agent.Agent, error) {
	adkTools, err := bridge.WrapNamed(registry, toolNames...)
	if err != nil {
		return nil, err
	}

	return llmagent.New(llmagent.Config{
		Name:            AgentName,
		Description:     AgentDescription,
		Model:           llm,
		Instruction:     SystemPrompt,
		Tools:           adkTools,
		IncludeContents: llmagent.IncludeContentsDefault,
	})
}
