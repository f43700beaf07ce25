package lifecyclecrew

import (
	"strings"
	"testing"

	"github.com/moolen/crewline/internal/agent/multiagent/delivery"
	"github.com/moolen/crewline/internal/agent/multiagent/intake"
	"github.com/moolen/crewline/internal/agent/multiagent/quality"
	"github.com/moolen/crewline/internal/agent/multiagent/release"
	"github.com/moolen/crewline/internal/agent/multiagent/requirements"
	"github.com/moolen/crewline/internal/agent/multiagent/types"
)

func assertTask(t *testing.T, task types.Task, agent, operation string, contains ...string) {
	t.Helper()
	if task.Agent != agent {
		t.Errorf("expected agent %s, got %s", agent, task.Agent)
	}
	if task.Operation != operation {
		t.Errorf("expected operation %s, got %s", operation, task.Operation)
	}
	for _, want := range contains {
		if !strings.Contains(task.Prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestTriageTicketTask(t *testing.T) {
	task := TriageTicketTask("Login page returns 500 after deploy")
	assertTask(t, task, intake.AgentName, "triage_ticket",
		"Login page returns 500 after deploy", "Classify the ticket type", "duplicate")
}

func TestAnalyzeRequirementsTask(t *testing.T) {
	task := AnalyzeRequirementsTask("Add CSV export to the reports page", "Requested by finance")
	assertTask(t, task, requirements.AgentName, "analyze_requirements",
		"Add CSV export to the reports page", "Requested by finance", "Given/When/Then")

	task = AnalyzeRequirementsTask("Add CSV export", "")
	if !strings.Contains(task.Prompt, "None provided") {
		t.Error("expected None provided for empty context")
	}
}

func TestPlanSprintTask(t *testing.T) {
	task := PlanSprintTask("Ship export feature", "3 devs, 2 weeks", "TICK-1, TICK-2, TICK-3")
	assertTask(t, task, delivery.AgentName, "plan_sprint",
		"Ship export feature", "3 devs, 2 weeks", "TICK-1, TICK-2, TICK-3", "80-85%")
}

func TestPlanReleaseTask(t *testing.T) {
	task := PlanReleaseTask("export, sso", "no downtime", "end of quarter")
	assertTask(t, task, release.AgentName, "plan_release",
		"export, sso", "no downtime", "end of quarter", "rollback")
}

func TestStatusReportTask(t *testing.T) {
	task := StatusReportTask("project alpha, sprint 4 of 6")
	assertTask(t, task, delivery.AgentName, "status_report",
		"project alpha, sprint 4 of 6", "project health", "Blockers")
}

func TestAssessImpactTask(t *testing.T) {
	task := AssessImpactTask("add SAML support", "sprint 4, 60% complete")
	assertTask(t, task, delivery.AgentName, "assess_impact",
		"add SAML support", "sprint 4, 60% complete", "accept, defer, or reject")
}

func TestTestStrategyTask(t *testing.T) {
	task := TestStrategyTask("REQ-1: export must complete in 30s", "greenfield service")
	assertTask(t, task, quality.AgentName, "test_strategy",
		"REQ-1: export must complete in 30s", "greenfield service", "Entry and exit criteria")
}

func TestManageBlockersTask(t *testing.T) {
	task := ManageBlockersTask("waiting on security review; staging env down")
	assertTask(t, task, delivery.AgentName, "manage_blockers",
		"waiting on security review; staging env down", "root cause", "escalation")
}

func TestQualityGateTask(t *testing.T) {
	task := QualityGateTask("v2.1 release candidate", "coverage >= 80%, zero critical defects")
	assertTask(t, task, quality.AgentName, "quality_gate",
		"v2.1 release candidate", "coverage >= 80%, zero critical defects", "CONDITIONAL PASS")
}
