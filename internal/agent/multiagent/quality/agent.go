package quality

import (
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"

	"github.com/moolen/crewline/internal/agent/multiagent/bridge"
	"github.com/moolen/crewline/internal/agent/tools"
)

// AgentName is the name of the Quality Advocate Agent.
const AgentName = "quality_advocate_agent"

// AgentDescription is the description of the Quality Advocate Agent for the coordinator.
const AgentDescription = "Guards quality through the lifecycle: reviews requirements for testability, designs test strategies, and performs quality gate checks."

// New creates a new Quality Advocate Agent backed by the given tool registry.
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
