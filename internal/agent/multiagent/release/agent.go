package release

import (
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"

	"github.com/moolen/crewline/internal/agent/multiagent/bridge"
	"github.com/moolen/crewline/internal/agent/tools"
)

// AgentName is the name of the Release Planner Agent.
const AgentName = "release_planner_agent"

// AgentDescription is the description of the Release Planner Agent for the coordinator.
const AgentDescription = "Plans releases: version sequencing, milestone schedules, go/no-go criteria, rollback strategy, and release risk assessment."

// New creates a new Release Planner Agent backed by the given tool registry.
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
