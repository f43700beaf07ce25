package intake

import (
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"

	"github.com/moolen/crewline/internal/agent/multiagent/bridge"
	"github.com/moolen/crewline/internal/agent/tools"
)

// AgentName is the name of the Intake Agent.
const AgentName = "intake_agent"

// AgentDescription is the description of the Intake Agent for the coordinator.
const AgentDescription = "Triages incoming development tickets: classifies type and priority, checks for duplicates, creates and updates tickets. Asks the user for clarification when a request is too vague to triage."

// New creates a new Intake Agent backed by the given tool registry.
// The agent can pause and ask the user for clarification via the
// ask_user_question tool.
func New(llm model.LLM, registry *tools.Registry) (agent.Agent, error) {
	adkTools, err := bridge.WrapNamed(registry, toolNames...)
	if err != nil {
		return nil, err
	}

	askUserTool, err := tools.NewAskUserQuestionTool()
	if err != nil {
		return nil, err
	}
	adkTools = append(adkTools, askUserTool)

	return llmagent.New(llmagent.Config{
		Name:        AgentName,
		Description: AgentDescription,
		Model:       llm,
		Instruction: GetSystemPrompt(),
		Tools:       adkTools,
		// Include conversation history so the agent can see the user message
		IncludeContents: llmagent.IncludeContentsDefault,
	})
}
