package lifecycle

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ticketIDPattern = regexp.MustCompile(`^TICKET-[0-9A-F]{8}$`)

func TestCreateTicket(t *testing.T) {
	result := CreateTicket("Fix login crash", "Crash on empty password", "bug", "high", "auth, crash")

	require.True(t, result.Success)
	assert.Regexp(t, ticketIDPattern, result.TicketID)
	assert.Equal(t, "bug", result.Type)
	assert.Equal(t, "high", result.Priority)
	assert.Equal(t, []string{"auth", "crash"}, result.Labels)
	assert.Equal(t, "open", result.Status)
	assert.Contains(t, result.Message, result.TicketID)
}

func TestCreateTicketDefaults(t *testing.T) {
	result := CreateTicket("Investigate flaky test", "", "", "", "")

	require.True(t, result.Success)
	assert.Equal(t, "task", result.Type)
	assert.Equal(t, "medium", result.Priority)
	assert.Empty(t, result.Labels)
}

func TestCreateTicketUniqueIDs(t *testing.T) {
	a := CreateTicket("a", "", "", "", "")
	b := CreateTicket("b", "", "", "", "")
	assert.NotEqual(t, a.TicketID, b.TicketID)
}

func TestSearchTickets(t *testing.T) {
	result := SearchTickets("login", "", 0)

	require.True(t, result.Success)
	assert.Equal(t, "all", result.StatusFilter)
	assert.Equal(t, 2, result.ResultsCount)
	assert.Contains(t, result.Tickets[0].Title, "login")
}

func TestSearchTicketsLimit(t *testing.T) {
	result := SearchTickets("login", "open", 1)

	require.True(t, result.Success)
	assert.Len(t, result.Tickets, 1)
	assert.Equal(t, 1, result.ResultsCount)
	assert.Equal(t, "open", result.StatusFilter)
}

func TestUpdateTicket(t *testing.T) {
	result := UpdateTicket("TICKET-001", "Status", "closed")

	require.True(t, result.Success)
	assert.Equal(t, "status", result.FieldUpdated)
	assert.Equal(t, "closed", result.NewValue)
	assert.Contains(t, result.Message, "TICKET-001")
}

func TestUpdateTicketInvalidField(t *testing.T) {
	result := UpdateTicket("TICKET-001", "severity", "1")

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "severity")
	assert.Equal(t, []string{"status", "priority", "assignee", "labels", "description"}, result.ValidFields)
}

func TestParseRequirements(t *testing.T) {
	result := ParseRequirements("The system shall...", "auto")

	require.True(t, result.Success)
	assert.Equal(t, "mixed", result.FormatDetected)
	require.Len(t, result.RequirementsFound.Functional, 1)
	assert.Equal(t, "FR-001", result.RequirementsFound.Functional[0].ID)
	require.Len(t, result.RequirementsFound.UserStories, 1)
	assert.Equal(t, "developer", result.RequirementsFound.UserStories[0].AsA)
	require.Len(t, result.RequirementsFound.AcceptanceCriteria, 1)
	assert.Equal(t, "a logged-in user", result.RequirementsFound.AcceptanceCriteria[0].Given)
	assert.Len(t, result.ParsingNotes, 2)
}

func TestParseRequirementsExplicitFormat(t *testing.T) {
	result := ParseRequirements("As a user...", "user_story")
	assert.Equal(t, "user_story", result.FormatDetected)
}

func TestValidateRequirements(t *testing.T) {
	result := ValidateRequirements("FR-001: ...", "")

	require.True(t, result.Success)
	assert.Equal(t, "full", result.ValidationType)
	assert.Equal(t, 7.5, result.OverallScore)
	assert.Equal(t, 10, result.MaxScore)
	assert.Equal(t, 8, result.Checks.Testability.Score)
	assert.True(t, result.Checks.Consistency.Passed)
	assert.Empty(t, result.Checks.Consistency.Issues)
	assert.False(t, result.Checks.Clarity.Passed)
	assert.True(t, result.ReadyForDevelopment)
	assert.Len(t, result.Recommendations, 3)
}

func TestTraceabilityBoth(t *testing.T) {
	result := Traceability("FR-001", "")

	require.True(t, result.Success)
	assert.Equal(t, "both", result.Direction)
	require.NotNil(t, result.Traces.Backward)
	assert.Equal(t, "TICKET-123", result.Traces.Backward.SourceTicket)
	require.NotNil(t, result.Traces.Forward)
	assert.Len(t, result.Traces.Forward.TestCases, 3)
	assert.True(t, result.Coverage.FullyTraced)
}

func TestTraceabilityDirectional(t *testing.T) {
	forward := Traceability("FR-001", "forward")
	assert.Nil(t, forward.Traces.Backward)
	assert.NotNil(t, forward.Traces.Forward)

	backward := Traceability("FR-001", "backward")
	assert.NotNil(t, backward.Traces.Backward)
	assert.Nil(t, backward.Traces.Forward)
}

func TestPlanSprint(t *testing.T) {
	result := PlanSprint("Sprint 6", 40, "US-1, US-2, US-3, US-4, US-5, US-6, US-7")

	require.True(t, result.Success)
	assert.Equal(t, 34, result.PlannedPoints)
	assert.Equal(t, 6, result.BufferPoints)
	assert.Equal(t, 7, result.ItemsConsidered)
	assert.Equal(t, []string{"US-1", "US-2", "US-3", "US-4", "US-5"}, result.RecommendedItems)
	assert.Equal(t, []string{"US-6", "US-7"}, result.DeferredItems)
	assert.Contains(t, result.SprintGoal, "Sprint 6")
}

func TestPlanSprintSmallBacklog(t *testing.T) {
	result := PlanSprint("Sprint 7", 20, "US-1, US-2")

	assert.Equal(t, []string{"US-1", "US-2"}, result.RecommendedItems)
	assert.Empty(t, result.DeferredItems)
	assert.Equal(t, 17, result.PlannedPoints)
}

func TestStatusDetailed(t *testing.T) {
	result := Status("", true)

	require.True(t, result.Success)
	assert.Equal(t, "default", result.ProjectID)
	assert.Equal(t, "on_track", result.OverallHealth)
	require.NotNil(t, result.CurrentSprint)
	assert.Equal(t, "Sprint 5", result.CurrentSprint.Name)
	assert.Equal(t, 65, result.CurrentSprint.Progress)
	require.NotNil(t, result.Velocity)
	assert.Equal(t, 32, result.Velocity.Average)
	require.NotNil(t, result.ReleaseProgress)
	assert.Equal(t, "Release 2.0", result.ReleaseProgress.Name)
	assert.Equal(t, 7, result.ReleaseProgress.FeaturesDone)
	require.Len(t, result.Blockers, 1)
	assert.Equal(t, "BLOCK-001", result.Blockers[0].ID)
}

func TestStatusSimplified(t *testing.T) {
	result := Status("crm", false)

	require.True(t, result.Success)
	assert.Equal(t, "crm", result.ProjectID)
	assert.Equal(t, 65, result.SprintProgress)
	assert.Equal(t, 1, result.BlockersCount)
	assert.Nil(t, result.CurrentSprint)
	assert.Nil(t, result.Velocity)
	assert.Empty(t, result.Blockers)
}

func TestAssessRisk(t *testing.T) {
	now := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	result := AssessRisk("release", "migrating auth provider", now)

	require.True(t, result.Success)
	assert.Equal(t, "2026-08-25", result.AssessmentDate)
	assert.Equal(t, "medium", result.OverallRiskLevel)
	require.Len(t, result.Risks, 3)
	assert.Equal(t, "RISK-001", result.Risks[0].ID)
	assert.Equal(t, 6, result.Risks[0].RiskScore)
	assert.Equal(t, RiskSummary{High: 2, Medium: 1}, result.RiskSummary)
	assert.Contains(t, result.ContextAnalysis, "migrating auth provider")
}

func TestPlanRelease(t *testing.T) {
	result := PlanRelease("1.4.2", "2.0.0", "sso, audit-log")

	require.True(t, result.Success)
	assert.Equal(t, "1.4.2", result.CurrentVersion)
	assert.Equal(t, "2.0.0", result.TargetVersion)
	assert.Equal(t, "major", result.ReleaseType)
	assert.Equal(t, []string{"sso", "audit-log"}, result.Features)
	require.Len(t, result.Phases, 5)
	assert.Equal(t, "Feature freeze", result.Phases[0].Name)
}

func TestPlanReleaseDefaultTarget(t *testing.T) {
	result := PlanRelease("1.4.2", "", "")

	require.True(t, result.Success)
	assert.Equal(t, "1.5.0", result.TargetVersion)
	assert.Equal(t, "minor", result.ReleaseType)
}

func TestPlanReleaseInvalidVersions(t *testing.T) {
	result := PlanRelease("not-a-version", "", "")
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "not-a-version")

	result = PlanRelease("2.0.0", "1.9.0", "")
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "must be greater than")
}

func TestPlanReleasePatch(t *testing.T) {
	result := PlanRelease("1.4.2", "1.4.3", "")

	require.True(t, result.Success)
	assert.Equal(t, "patch", result.ReleaseType)
}
