package metricsexpert

import (
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"

	"github.com/moolen/crewline/internal/agent/multiagent/bridge"
	"github.com/moolen/crewline/internal/agent/tools"
)

// AgentName is the name of the Metrics Expert Agent.
const AgentName = "metrics_expert_agent"

// AgentDescription is the description of the Metrics Expert Agent for the coordinator.
const AgentDescription = "Defines and calculates KPIs from CRM data: metric formulas, time-scoped calculations, dashboard designs, and pipeline analytics."

// New creates a new Metrics Expert Agent backed by the given tool registry.
// The system prompt has the current timestamp injected so the agent reasons
// about relative time periods consistently.
func New(llm model.LLM, registry *tools.Registry) (agent.Agent, error) {
	adkTools, err := bridge.WrapNamed(registry, toolNames...)
	if err != nil {
		return nil, err
	}

	return llmagent.New(llmagent.Config{
		Name:            AgentName,
		Description:     AgentDescription,
		Model:           llm,
		Instruction:     GetSystemPrompt(),
		Tools:           adkTools,
		IncludeContents: llmagent.IncludeContentsDefault,
	})
}
