package schemaanalyst

import (
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"

	"github.com/moolen/crewline/internal/agent/multiagent/bridge"
	"github.com/moolen/crewline/internal/agent/tools"
)

// AgentName is the name of the Schema Analyst Agent.
const AgentName = "schema_analyst_agent"

// AgentDescription is the description of the Schema Analyst Agent for the coordinator.
const AgentDescription = "Explains the CRM database schema: entities, columns, relationships, and how business concepts map to tables. Can also generate schema documentation, data dictionaries, and ER diagrams."

// New creates a new Schema Analyst Agent backed by the given tool registry.
func New(llm model.LLM, registry *tools.Registry) (agent.Agent, error) {
	adkTools, err := bridge.WrapNamed(registry, toolNames...)
	if err != nil {
		return nil, err
	}

	return llmagent.New(llmagent.Config{
		Name:        AgentName,
		Description: AgentDescription,
		Model:       llm,
		Instruction: SystemPrompt,
		Tools:       adkTools,
		// Include conversation history so follow-up questions keep context
		IncludeContents: llmagent.IncludeContentsDefault,
	})
}
