package tools

import (
	"encoding/json"
	"strings"

	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"

	"github.com/moolen/crewline/internal/agent/multiagent/types"
)

// AskUserQuestionArgs is the input of the ask_user_question tool.
type AskUserQuestionArgs struct {
	// Question is what the specialist needs answered before it proceeds.
	Question string `json:"question"`

	// Summary is optional context shown above the question, e.g. the
	// query plan or sprint scope the agent wants confirmed.
	Summary string `json:"summary,omitempty"`

	// DefaultConfirm treats an empty response as a yes.
	DefaultConfirm bool `json:"default_confirm,omitempty"`
}

// AskUserQuestionResult is returned to the model after the tool call.
type AskUserQuestionResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// PendingUserQuestion is stored in session state while the crew waits
// for the user. The TUI reads it to render the confirmation prompt.
type PendingUserQuestion struct {
	Question       string `json:"question"`
	Summary        string `json:"summary,omitempty"`
	DefaultConfirm bool   `json:"default_confirm"`
	AgentName      string `json:"agent_name"`
}

// UserQuestionResponse is the parsed outcome of a user's reply.
type UserQuestionResponse struct {
	// Confirmed is true for a yes, or for an empty reply when the
	// question defaulted to confirm.
	Confirmed bool `json:"confirmed"`

	// Response is the trimmed reply text.
	Response string `json:"response"`

	// HasClarification is true when the reply is free text rather than
	// a plain yes or no; the crew re-plans with it.
	HasClarification bool `json:"has_clarification"`
}

var (
	confirmWords = map[string]bool{
		"yes": true, "y": true, "yeah": true, "yep": true,
		"correct": true, "confirmed": true, "ok": true, "okay": true,
	}
	denyWords = map[string]bool{
		"no": true, "n": true, "nope": true,
		"wrong": true, "incorrect": true,
	}
)

// ParseUserResponse classifies a reply as confirmation, rejection, or
// clarification text.
func ParseUserResponse(response string, defaultConfirm bool) UserQuestionResponse {
	trimmed := strings.TrimSpace(response)
	result := UserQuestionResponse{Response: trimmed}

	switch lower := strings.ToLower(trimmed); {
	case lower == "":
		result.Confirmed = defaultConfirm
	case confirmWords[lower]:
		result.Confirmed = true
	case denyWords[lower]:
	default:
		result.HasClarification = true
	}
	return result
}

// NewAskUserQuestionTool creates the ask_user_question tool. Calling it
// pauses the crew and hands control back to the user.
func NewAskUserQuestionTool() (tool.Tool, error) {
	return functiontool.New(functiontool.Config{
		Name: "ask_user_question",
		Description: `Ask the user a question and wait for their response.

Use this before any action that commits the user to something: running a
generated query against their CRM data, creating or updating tickets, or
locking in a sprint plan. Put what you are about to do in the summary
(the SQL, the ticket fields, the sprint scope) and ask a single yes/no
question about it.

The user can confirm ("yes", "ok"), reject ("no"), or type free text;
free text is a clarification you must fold into your plan before asking
again. Execution pauses until the user responds, and the response
arrives as the next message.`,
	}, askUserQuestion)
}

func askUserQuestion(ctx tool.Context, args AskUserQuestionArgs) (AskUserQuestionResult, error) {
	if args.Question == "" {
		return AskUserQuestionResult{
			Status:  "error",
			Message: "question is required",
		}, nil
	}

	pending := PendingUserQuestion{
		Question:       args.Question,
		Summary:        args.Summary,
		DefaultConfirm: args.DefaultConfirm,
		AgentName:      ctx.AgentName(),
	}

	pendingJSON, err := json.Marshal(pending)
	if err != nil {
		return AskUserQuestionResult{
			Status:  "error",
			Message: "failed to serialize question",
		}, err
	}

	actions := ctx.Actions()
	if actions.StateDelta == nil {
		actions.StateDelta = make(map[string]any)
	}
	actions.StateDelta[types.StateKeyPendingUserQuestion] = string(pendingJSON)

	// Escalate pauses the crew until the user replies.
	actions.Escalate = true
	actions.SkipSummarization = true

	return AskUserQuestionResult{
		Status:  "pending",
		Message: "Waiting for user response. The user will see your question and can confirm or provide clarification.",
	}, nil
}
