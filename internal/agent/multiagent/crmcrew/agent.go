package crmcrew

import (
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"

	"github.com/moolen/crewline/internal/agent/multiagent/dataarchitect"
	"github.com/moolen/crewline/internal/agent/multiagent/metricsexpert"
	"github.com/moolen/crewline/internal/agent/multiagent/querybuilder"
	"github.com/moolen/crewline/internal/agent/multiagent/schemaanalyst"
	"github.com/moolen/crewline/internal/agent/tools"
)

// AgentName is the name of the CRM crew coordinator.
const AgentName = "crm_crew_coordinator"

// AgentDescription is the description of the CRM crew coordinator.
const AgentDescription = "Entry point for CRM questions. Routes schema, query, metrics, and architecture tasks to the matching specialist agent."

// New creates the CRM crew: a coordinator with the four specialist agents
// as sub-agents. ADK automatically creates transfer tools for sub-agents.
func New(llm model.LLM, registry *tools.Registry) (agent.Agent, error) {
	schemaAgent, err := schemaanalyst.New(llm, registry)
	if err != nil {
		return nil, err
	}

	architectAgent, err := dataarchitect.New(llm, registry)
	if err != nil {
		return nil, err
	}

	metricsAgent, err := metricsexpert.New(llm, registry)
	if err != nil {
		return nil, err
	}

	queryAgent, err := querybuilder.New(llm, registry)
	if err != nil {
		return nil, err
	}

	return llmagent.New(llmagent.Config{
		Name:        AgentName,
		Description: AgentDescription,
		Model:       llm,
		Instruction: SystemPrompt,
		SubAgents: []agent.Agent{
			schemaAgent,
			architectAgent,
			metricsAgent,
			queryAgent,
		},
		// Include conversation history for multi-turn interactions
		IncludeContents: llmagent.IncludeContentsDefault,
	})
}
