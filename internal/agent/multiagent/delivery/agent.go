package delivery

import (
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"

	"github.com/moolen/crewline/internal/agent/multiagent/bridge"
	"github.com/moolen/crewline/internal/agent/tools"
)

// AgentName is the name of the Delivery Manager Agent.
const AgentName = "delivery_manager_agent"

// AgentDescription is the description of the Delivery Manager Agent for the coordinator.
const AgentDescription = "Manages delivery: sprint planning, project status reporting, change impact assessment, blocker resolution, and risk management."

// New creates a new Delivery Manager Agent backed by the given tool registry.
// The system prompt has the current date injected so sprint and milestone
// dates are computed from a consistent reference.
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
