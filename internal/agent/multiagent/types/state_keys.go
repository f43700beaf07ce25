package types

// State keys for inter-agent communication via ADK session state.
// Keys with the "temp:" prefix are transient and cleared after each invocation.
// This follows ADK's state scoping conventions.
const (
	// StateKeyUserMessage is the original user message that triggered the task.
	StateKeyUserMessage = "temp:user_message"

	// StateKeyActiveCrew names the crew handling the current task.
	// Values: CrewCRM or CrewLifecycle.
	StateKeyActiveCrew = "temp:active_crew"

	// StateKeyTaskOperation names the operation the current task prompt was
	// built for (e.g. "explore_entity", "plan_sprint").
	StateKeyTaskOperation = "temp:task_operation"

	// StateKeyTaskAgent names the specialist agent the task was routed to.
	StateKeyTaskAgent = "temp:task_agent"

	// StateKeyFinalAnswer contains the final answer text for persistence.
	// This uses a non-temp key so it survives beyond the current invocation
	// and follow-up questions can reference it.
	StateKeyFinalAnswer = "final_answer"
)

// Crew identifiers for StateKeyActiveCrew.
const (
	CrewCRM       = "crm"
	CrewLifecycle = "lifecycle"
)

// User interaction state keys.
const (
	// StateKeyPendingUserQuestion contains the question awaiting user response.
	// When set, the runner should pause execution and display the question to the user.
	// Value is JSON-encoded PendingUserQuestion from the tools package.
	StateKeyPendingUserQuestion = "temp:pending_user_question"

	// StateKeyUserConfirmationResponse contains the user's response to a confirmation question.
	// Value is JSON-encoded UserQuestionResponse from the tools package.
	StateKeyUserConfirmationResponse = "temp:user_confirmation_response"
)
