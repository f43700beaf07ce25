package lifecyclecrew

import (
	"strings"
	"testing"

	"github.com/moolen/crewline/internal/agent/multiagent/delivery"
	"github.com/moolen/crewline/internal/agent/multiagent/intake"
	"github.com/moolen/crewline/internal/agent/multiagent/quality"
	"github.com/moolen/crewline/internal/agent/multiagent/release"
	"github.com/moolen/crewline/internal/agent/multiagent/requirements"
)

func TestRouteQuestion(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     string
	}{
		{
			name:     "triage keyword routes to intake",
			question: "Please triage this bug report from support",
			want:     intake.AgentName,
		},
		{
			name:     "acceptance keyword routes to requirements analyst",
			question: "Are the acceptance criteria for checkout complete?",
			want:     requirements.AgentName,
		},
		{
			name:     "version keyword routes to release planner",
			question: "When can we ship version 2.1?",
			want:     release.AgentName,
		},
		{
			name:     "coverage keyword routes to quality advocate",
			question: "What is our coverage for the billing module?",
			want:     quality.AgentName,
		},
		{
			name:     "intake wins over quality",
			question: "Open a ticket for the failing test suite",
			want:     intake.AgentName,
		},
		{
			name:     "no keyword defaults to delivery manager",
			question: "How is the sprint going?",
			want:     delivery.AgentName,
		},
		{
			name:     "matching is case insensitive",
			question: "PLAN THE NEXT RELEASE",
			want:     release.AgentName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RouteQuestion(tt.question); got != tt.want {
				t.Errorf("RouteQuestion(%q) = %s, want %s", tt.question, got, tt.want)
			}
		})
	}
}

func TestAskTask(t *testing.T) {
	task := AskTask("Which requirement covers password resets?")
	if task.Agent != requirements.AgentName {
		t.Errorf("Agent = %s, want %s", task.Agent, requirements.AgentName)
	}
	if task.Operation != "ask" {
		t.Errorf("Operation = %s, want ask", task.Operation)
	}
	if !strings.Contains(task.Prompt, "Which requirement covers password resets?") {
		t.Errorf("Prompt does not contain the question: %s", task.Prompt)
	}
}

func TestAskTaskDefaultAgent(t *testing.T) {
	task := AskTask("Summarize where the team stands")
	if task.Agent != delivery.AgentName {
		t.Errorf("Agent = %s, want %s", task.Agent, delivery.AgentName)
	}
}
