package lifecyclecrew

import (
	"fmt"
	"strings"

	"github.com/moolen/crewline/internal/agent/multiagent/delivery"
	"github.com/moolen/crewline/internal/agent/multiagent/intake"
	"github.com/moolen/crewline/internal/agent/multiagent/quality"
	"github.com/moolen/crewline/internal/agent/multiagent/release"
	"github.com/moolen/crewline/internal/agent/multiagent/requirements"
	"github.com/moolen/crewline/internal/agent/multiagent/types"
)

// Keyword tables for RouteQuestion, checked in order. Intake wins over
// requirements wins over release wins over quality; anything unmatched
// goes to the delivery manager.
var (
	intakeKeywords       = []string{"ticket", "bug", "triage", "duplicate", "incoming"}
	requirementsKeywords = []string{"requirement", "acceptance", "user story", "traceability", "criteria"}
	releaseKeywords      = []string{"release", "version", "rollback", "deploy", "changelog"}
	qualityKeywords      = []string{"test", "quality", "coverage", "gate", "defect"}
)

// RouteQuestion picks the specialist agent for an ad-hoc question by
// keyword matching on the question text.
func RouteQuestion(question string) string {
	lower := strings.ToLower(question)

	if containsAny(lower, intakeKeywords) {
		return intake.AgentName
	}
	if containsAny(lower, requirementsKeywords) {
		return requirements.AgentName
	}
	if containsAny(lower, releaseKeywords) {
		return release.AgentName
	}
	if containsAny(lower, qualityKeywords) {
		return quality.AgentName
	}
	return delivery.AgentName
}

// AskTask routes an ad-hoc question to the right specialist by keyword
// and builds a generic question prompt for it.
func AskTask(question string) types.Task {
	return types.Task{
		Agent:     RouteQuestion(question),
		Operation: "ask",
		Prompt: fmt.Sprintf(`Answer the following question about the project:

QUESTION: %s

Provide a thorough, accurate answer by:
1. Understanding the intent behind the question
2. Using the project tools to find the relevant information
3. Explaining the relevant tickets, requirements, or plans
4. Providing concrete examples where helpful
5. Noting any risks or open items

Expected output: a direct answer, supporting project details, and
references to related tickets or requirements.`, question),
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
