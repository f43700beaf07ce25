package lifecyclecrew

import (
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"

	"github.com/moolen/crewline/internal/agent/multiagent/delivery"
	"github.com/moolen/crewline/internal/agent/multiagent/intake"
	"github.com/moolen/crewline/internal/agent/multiagent/quality"
	"github.com/moolen/crewline/internal/agent/multiagent/release"
	"github.com/moolen/crewline/internal/agent/multiagent/requirements"
	"github.com/moolen/crewline/internal/agent/tools"
)

// AgentName is the name of the dev-lifecycle crew coordinator.
const AgentName = "lifecycle_crew_coordinator"

// AgentDescription is the description of the dev-lifecycle crew coordinator.
const AgentDescription = "Entry point for development lifecycle work. Routes ticket triage, requirements analysis, planning, quality, and release tasks to the matching specialist agent."

// New creates the dev-lifecycle crew: a coordinator with the five
// specialist agents as sub-agents.
func New(llm model.LLM, registry *tools.Registry) (agent.Agent, error) {
	intakeAgent, err := intake.New(llm, registry)
	if err != nil {
		return nil, err
	}

	requirementsAgent, err := requirements.New(llm, registry)
	if err != nil {
		return nil, err
	}

	deliveryAgent, err := delivery.New(llm, registry)
	if err != nil {
		return nil, err
	}

	qualityAgent, err := quality.New(llm, registry)
	if err != nil {
		return nil, err
	}

	releaseAgent, err := release.New(llm, registry)
	if err != nil {
		return nil, err
	}

	return llmagent.New(llmagent.Config{
		Name:        AgentName,
		Description: AgentDescription,
		Model:       llm,
		Instruction: SystemPrompt,
		SubAgents: []agent.Agent{
			intakeAgent,
			requirementsAgent,
			deliveryAgent,
			qualityAgent,
			releaseAgent,
		},
		IncludeContents: llmagent.IncludeContentsDefault,
	})
}
