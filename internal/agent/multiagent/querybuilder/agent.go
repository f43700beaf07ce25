package querybuilder

import (
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"

	"github.com/moolen/crewline/internal/agent/multiagent/bridge"
	"github.com/moolen/crewline/internal/agent/tools"
)

// AgentName is the name of the Query Builder Agent.
const AgentName = "query_builder_agent"

// AgentDescription is the description of the Query Builder Agent for the coordinator.
const AgentDescription = "Translates business questions into SQL and OData queries against the CRM: joins, filters, aggregations, validation, and performance tuning."

// New creates a new Query Builder Agent backed by the given tool registry.
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
