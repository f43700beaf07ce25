package dataarchitect

import (
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"

	"github.com/moolen/crewline/internal/agent/multiagent/bridge"
	"github.com/moolen/crewline/internal/agent/tools"
)

// AgentName is the name of the Data Architect Agent.
const AgentName = "data_architect_agent"

// AgentDescription is the description of the Data Architect Agent for the coordinator.
const AgentDescription = "Provides data modeling guidance for the CRM: entity design reviews, integration planning, normalization advice, and comprehensive entity analyses combining schema, query, and documentation views."

// New creates a new Data Architect Agent backed by the given tool registry.
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
