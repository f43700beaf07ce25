package lifecyclecrew

import (
	"fmt"

	"github.com/moolen/crewline/internal/agent/multiagent/delivery"
	"github.com/moolen/crewline/internal/agent/multiagent/intake"
	"github.com/moolen/crewline/internal/agent/multiagent/quality"
	"github.com/moolen/crewline/internal/agent/multiagent/release"
	"github.com/moolen/crewline/internal/agent/multiagent/requirements"
	"github.com/moolen/crewline/internal/agent/multiagent/types"
)

// Task prompt factories for the dev-lifecycle crew. Each factory builds the
// full task description for one operation and names the specialist agent
// that should execute it.

// TriageTicketTask classifies and records an incoming request.
func TriageTicketTask(ticketData string) types.Task {
	return types.Task{
		Agent:     intake.AgentName,
		Operation: "triage_ticket",
		Prompt: fmt.Sprintf(`Analyze and triage the following incoming ticket:

%s

Your responsibilities:
1. Parse and understand the ticket content
2. Classify the ticket type (bug, feature, enhancement, task, support)
3. Assess priority (critical, high, medium, low) based on impact and urgency
4. Tag with relevant labels
5. Check for potential duplicate tickets with search_tickets
6. Create the ticket with create_ticket once classified
7. Determine if additional information is needed; if so, ask the user

Consider business impact, number of users affected, workaround
availability, and security implications.

Expected output: a triage report with the ticket ID and title,
classification, duplicate check results, recommended labels, information
gaps if any, and next steps.`, ticketData),
	}
}

// AnalyzeRequirementsTask extracts structured requirements from a request.
// An empty context omits the context section.
func AnalyzeRequirementsTask(ticketData, context string) types.Task {
	if context == "" {
		context = "None provided"
	}

	return types.Task{
		Agent:     requirements.AgentName,
		Operation: "analyze_requirements",
		Prompt: fmt.Sprintf(`Perform comprehensive requirements analysis on the following:

TICKET/REQUEST:
%s

ADDITIONAL CONTEXT:
%s

Your analysis should:
1. Identify all functional requirements using parse_requirements
2. Identify non-functional requirements (performance, security, usability)
3. Define clear acceptance criteria in Given/When/Then form
4. Identify assumptions, dependencies, and risks
5. Score the result with validate_requirements
6. Note ambiguities that need clarification

Expected output: a requirements document with overview, numbered
functional requirements, non-functional requirements, acceptance
criteria, assumptions and dependencies, the validation scorecard, and
open questions.`, ticketData, context),
	}
}

// PlanSprintTask builds a sprint plan from backlog and capacity.
func PlanSprintTask(sprintGoal, teamCapacity, backlog string) types.Task {
	return types.Task{
		Agent:     delivery.AgentName,
		Operation: "plan_sprint",
		Prompt: fmt.Sprintf(`Plan a sprint with the following inputs:

SPRINT GOAL:
%s

TEAM CAPACITY:
%s

AVAILABLE BACKLOG:
%s

Create a sprint plan that:
1. Aligns with the sprint goal
2. Respects team capacity, aiming for 80-85%% utilization
3. Prioritizes by business value and considers dependencies
4. Uses the plan_sprint tool for the capacity math

Expected output: a sprint plan with the sprint overview, capacity
planning (total, planned load, buffer, utilization), committed items
with points, dependencies, risks, and what was deliberately excluded
with reasons.`, sprintGoal, teamCapacity, backlog),
	}
}

// PlanReleaseTask builds a release plan from scope and constraints.
func PlanReleaseTask(features, constraints, timeline string) types.Task {
	return types.Task{
		Agent:     release.AgentName,
		Operation: "plan_release",
		Prompt: fmt.Sprintf(`Plan a release with the following:

FEATURES/SCOPE:
%s

CONSTRAINTS:
%s

TIMELINE:
%s

Create a release plan that:
1. Sequences features appropriately and identifies milestones
2. Accounts for hardening and stabilization time
3. Defines the deployment sequence and a rollback strategy
4. Defines go/no-go criteria
5. Uses plan_release for the version bump and milestone schedule

Expected output: a release plan with the release version and theme,
scope split into must-have, should-have, and deferred, the milestone
timeline with code freeze and release dates, quality gates, the
deployment and rollback plan, and risks with mitigations.`, features, constraints, timeline),
	}
}

// StatusReportTask generates a project status report.
func StatusReportTask(projectData string) types.Task {
	return types.Task{
		Agent:     delivery.AgentName,
		Operation: "status_report",
		Prompt: fmt.Sprintf(`Generate a comprehensive project status report based on:

%s

Include:
1. Overall project health (on track, at risk, behind)
2. Progress against milestones
3. Completed items this period and items in progress
4. Blockers and issues with owners
5. Key metrics (velocity, completion rate) via project_status
6. Upcoming priorities and decisions needed

Expected output: a status report with the status summary, milestone
progress, accomplishments, in-progress work, blockers with owners and
resolution plans, metrics, and decisions needed.`, projectData),
	}
}

// AssessImpactTask assesses a change request against the current state.
func AssessImpactTask(changeRequest, currentState string) types.Task {
	return types.Task{
		Agent:     delivery.AgentName,
		Operation: "assess_impact",
		Prompt: fmt.Sprintf(`Assess the impact of this change request:

CHANGE REQUEST:
%s

CURRENT PROJECT STATE:
%s

Analyze:
1. Scope impact - what is affected?
2. Timeline impact - how does this affect delivery?
3. Resource impact - additional effort needed?
4. Risk impact - new risks introduced? Use assess_risk
5. Quality impact - testing implications?

Provide a recommendation on whether to accept, defer, or reject.

Expected output: an impact assessment with the change summary, impact
analysis per dimension, affected items, effort estimate, options, and a
recommendation with rationale.`, changeRequest, currentState),
	}
}

// TestStrategyTask creates a test strategy for a set of requirements.
func TestStrategyTask(requirementsText, projectContext string) types.Task {
	return types.Task{
		Agent:     quality.AgentName,
		Operation: "test_strategy",
		Prompt: fmt.Sprintf(`Create a comprehensive test strategy for:

REQUIREMENTS:
%s

PROJECT CONTEXT:
%s

The strategy should cover:
1. Test objectives and scope
2. Test levels (unit, integration, system, acceptance) and types
3. Entry and exit criteria per level
4. Test environment and data requirements
5. Automation approach
6. Risk-based testing priorities - use validate_requirements to find
   the weakest requirements first

Expected output: a test strategy document with the test approach,
coverage goals with risk-based priorities, automation strategy,
entry/exit criteria, and defect management process.`, requirementsText, projectContext),
	}
}

// ManageBlockersTask develops resolution strategies for blockers.
func ManageBlockersTask(blockers string) types.Task {
	return types.Task{
		Agent:     delivery.AgentName,
		Operation: "manage_blockers",
		Prompt: fmt.Sprintf(`Analyze and develop resolution strategies for these blockers:

%s

For each blocker:
1. Assess severity and impact (which items are blocked?)
2. Identify the root cause
3. Propose resolution options with pros and cons
4. Assign an owner and target resolution date
5. Suggest an escalation path if needed

Expected output: a blocker resolution plan with, per blocker, the
severity, blocked items, root cause, resolution options, recommended
action, owner, and target date, plus a summary with the count of
critical blockers and whether executive attention is needed.`, blockers),
	}
}

// QualityGateTask verifies deliverables against gate criteria.
func QualityGateTask(deliverables, criteria string) types.Task {
	return types.Task{
		Agent:     quality.AgentName,
		Operation: "quality_gate",
		Prompt: fmt.Sprintf(`Perform quality gate verification:

DELIVERABLES:
%s

QUALITY CRITERIA:
%s

Verify:
1. All mandatory criteria are met
2. Documentation is complete
3. Test coverage thresholds are met
4. No critical or high severity defects remain open
5. Required reviews and approvals are in place

Provide a pass/fail determination per criterion with detailed rationale.

Expected output: a quality gate assessment with the overall result
(PASS, FAIL, or CONDITIONAL PASS), a criteria checklist of required vs
actual, detailed findings, outstanding items with a remediation
timeline, and a proceed / do-not-proceed recommendation.`, deliverables, criteria),
	}
}
