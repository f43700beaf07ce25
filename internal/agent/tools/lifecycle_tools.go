package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/moolen/crewline/internal/lifecycle"
)

// =============================================================================
// Lifecycle Tools
// =============================================================================

// CreateTicketTool exposes ticket creation.
type CreateTicketTool struct{}

func (t *CreateTicketTool) Name() string { return "create_ticket" }

func (t *CreateTicketTool) Description() string {
	return `Create a new work ticket with title, description, type, priority, and labels.

Use this tool to:
- Turn a triaged request into a tracked ticket
- Record bugs, features, and tasks with a generated ticket ID

Input:
- title: Short ticket title (required)
- description (optional): Full ticket description
- ticket_type (optional): 'bug', 'feature', 'task', or 'epic' (default: 'task')
- priority (optional): 'low', 'medium', 'high', or 'critical' (default: 'medium')
- labels (optional): Comma-separated labels`
}

func (t *CreateTicketTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"title"},
		"properties": map[string]interface{}{
			"title": map[string]interface{}{
				"type":        "string",
				"description": "Short ticket title",
			},
			"description": map[string]interface{}{
				"type":        "string",
				"description": "Full ticket description",
			},
			"ticket_type": map[string]interface{}{
				"type":        "string",
				"description": "'bug', 'feature', 'task', or 'epic' (default: 'task')",
			},
			"priority": map[string]interface{}{
				"type":        "string",
				"description": "'low', 'medium', 'high', or 'critical' (default: 'medium')",
			},
			"labels": map[string]interface{}{
				"type":        "string",
				"description": "Comma-separated labels",
			},
		},
	}
}

func (t *CreateTicketTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var args struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		TicketType  string `json:"ticket_type"`
		Priority    string `json:"priority"`
		Labels      string `json:"labels"`
	}
	if err := json.Unmarshal(input, &args); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	result := lifecycle.CreateTicket(args.Title, args.Description, args.TicketType, args.Priority, args.Labels)

	return &Result{
		Success: true,
		Data:    result,
		Summary: fmt.Sprintf("Created %s ticket %s", result.Type, result.TicketID),
	}, nil
}

// SearchTicketsTool exposes ticket search.
type SearchTicketsTool struct{}

func (t *SearchTicketsTool) Name() string { return "search_tickets" }

func (t *SearchTicketsTool) Description() string {
	return `Search existing tickets by free-text query with an optional status filter.

Use this tool to:
- Check for duplicates before creating a ticket
- Find tickets related to a feature or bug report

Input:
- query: Free-text search query (required)
- status (optional): Filter by status ('open', 'in_progress', 'closed'); omit for all
- limit (optional): Maximum results to return (default: 10)`
}

func (t *SearchTicketsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"query"},
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Free-text search query",
			},
			"status": map[string]interface{}{
				"type":        "string",
				"description": "Filter by status ('open', 'in_progress', 'closed'); omit for all",
			},
			"limit": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum results to return (default: 10)",
			},
		},
	}
}

func (t *SearchTicketsTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var args struct {
		Query  string `json:"query"`
		Status string `json:"status"`
		Limit  int    `json:"limit"`
	}
	if err := json.Unmarshal(input, &args); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	result := lifecycle.SearchTickets(args.Query, args.Status, args.Limit)

	return &Result{
		Success: true,
		Data:    result,
		Summary: fmt.Sprintf("Found %d tickets matching %q", result.ResultsCount, args.Query),
	}, nil
}

// UpdateTicketTool exposes single-field ticket updates.
type UpdateTicketTool struct{}

func (t *UpdateTicketTool) Name() string { return "update_ticket" }

func (t *UpdateTicketTool) Description() string {
	return `Update one field of an existing ticket.

Use this tool to:
- Move tickets through statuses
- Reassign, reprioritize, or relabel a ticket

Input:
- ticket_id: Ticket to update (required)
- field: One of 'status', 'priority', 'assignee', 'labels', 'description' (required)
- value: New value for the field (required)

Unknown fields return the valid field list.`
}

func (t *UpdateTicketTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"ticket_id", "field", "value"},
		"properties": map[string]interface{}{
			"ticket_id": map[string]interface{}{
				"type":        "string",
				"description": "Ticket to update",
			},
			"field": map[string]interface{}{
				"type":        "string",
				"description": "One of 'status', 'priority', 'assignee', 'labels', 'description'",
			},
			"value": map[string]interface{}{
				"type":        "string",
				"description": "New value for the field",
			},
		},
	}
}

func (t *UpdateTicketTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var args struct {
		TicketID string `json:"ticket_id"`
		Field    string `json:"field"`
		Value    string `json:"value"`
	}
	if err := json.Unmarshal(input, &args); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	result := lifecycle.UpdateTicket(args.TicketID, args.Field, args.Value)
	if !result.Success {
		return &Result{
			Success: false,
			Data:    result,
			Error:   result.Error,
			Summary: fmt.Sprintf("Invalid field %q", args.Field),
		}, nil
	}

	return &Result{
		Success: true,
		Data:    result,
		Summary: fmt.Sprintf("Updated %s of %s", result.FieldUpdated, result.TicketID),
	}, nil
}

// ParseRequirementsTool exposes the requirements parser.
type ParseRequirementsTool struct{}

func (t *ParseRequirementsTool) Name() string { return "parse_requirements" }

func (t *ParseRequirementsTool) Description() string {
	return `Parse raw requirements text into structured functional requirements, non-functional requirements, user stories, and acceptance criteria.

Use this tool to:
- Turn free-form stakeholder text into a structured requirements set
- Detect the requirements format in use

Input:
- text: Raw requirements text (required)
- format (optional): 'functional', 'user_story', 'acceptance_criteria', or 'auto' (default: 'auto')`
}

func (t *ParseRequirementsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"text"},
		"properties": map[string]interface{}{
			"text": map[string]interface{}{
				"type":        "string",
				"description": "Raw requirements text",
			},
			"format": map[string]interface{}{
				"type":        "string",
				"description": "'functional', 'user_story', 'acceptance_criteria', or 'auto' (default: 'auto')",
			},
		},
	}
}

func (t *ParseRequirementsTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var args struct {
		Text   string `json:"text"`
		Format string `json:"format"`
	}
	if err := json.Unmarshal(input, &args); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	result := lifecycle.ParseRequirements(args.Text, args.Format)
	found := result.RequirementsFound

	return &Result{
		Success: true,
		Data:    result,
		Summary: fmt.Sprintf("Parsed %d functional, %d non-functional, %d stories, %d criteria",
			len(found.Functional), len(found.NonFunctional), len(found.UserStories), len(found.AcceptanceCriteria)),
	}, nil
}

// ValidateRequirementsTool exposes the requirements quality checker.
type ValidateRequirementsTool struct{}

func (t *ValidateRequirementsTool) Name() string { return "validate_requirements" }

func (t *ValidateRequirementsTool) Description() string {
	return `Score a requirements set on testability, completeness, consistency, and clarity.

Use this tool to:
- Gate requirements before development starts
- Get concrete recommendations for fixing weak requirements

Input:
- requirements: The requirements text or structured set to validate (required)
- validation_type (optional): 'full', 'testability', 'completeness', 'consistency', or 'clarity' (default: 'full')`
}

func (t *ValidateRequirementsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"requirements"},
		"properties": map[string]interface{}{
			"requirements": map[string]interface{}{
				"type":        "string",
				"description": "The requirements text or structured set to validate",
			},
			"validation_type": map[string]interface{}{
				"type":        "string",
				"description": "'full', 'testability', 'completeness', 'consistency', or 'clarity' (default: 'full')",
			},
		},
	}
}

func (t *ValidateRequirementsTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var args struct {
		Requirements   string `json:"requirements"`
		ValidationType string `json:"validation_type"`
	}
	if err := json.Unmarshal(input, &args); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	result := lifecycle.ValidateRequirements(args.Requirements, args.ValidationType)

	return &Result{
		Success: true,
		Data:    result,
		Summary: fmt.Sprintf("Requirements scored %.1f/%d, ready for development: %t",
			result.OverallScore, result.MaxScore, result.ReadyForDevelopment),
	}, nil
}

// TraceRequirementTool exposes requirement traceability.
type TraceRequirementTool struct{}

func (t *TraceRequirementTool) Name() string { return "trace_requirement" }

func (t *TraceRequirementTool) Description() string {
	return `Trace a requirement backward to its business need and forward to stories, design docs, tests, and code.

Use this tool to:
- Check whether a requirement is fully covered by downstream artifacts
- Find the origin ticket and stakeholder behind a requirement

Input:
- requirement_id: Requirement to trace (required, e.g. 'FR-001')
- direction (optional): 'forward', 'backward', or 'both' (default: 'both')`
}

func (t *TraceRequirementTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"requirement_id"},
		"properties": map[string]interface{}{
			"requirement_id": map[string]interface{}{
				"type":        "string",
				"description": "Requirement to trace (e.g. 'FR-001')",
			},
			"direction": map[string]interface{}{
				"type":        "string",
				"description": "'forward', 'backward', or 'both' (default: 'both')",
			},
		},
	}
}

func (t *TraceRequirementTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var args struct {
		RequirementID string `json:"requirement_id"`
		Direction     string `json:"direction"`
	}
	if err := json.Unmarshal(input, &args); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	result := lifecycle.Traceability(args.RequirementID, args.Direction)

	return &Result{
		Success: true,
		Data:    result,
		Summary: fmt.Sprintf("Traced %s (%s), fully traced: %t",
			result.RequirementID, result.Direction, result.Coverage.FullyTraced),
	}, nil
}

// PlanSprintTool exposes sprint planning.
type PlanSprintTool struct{}

func (t *PlanSprintTool) Name() string { return "plan_sprint" }

func (t *PlanSprintTool) Description() string {
	return `Plan a sprint: split capacity into committed points and buffer, and recommend which backlog items to take.

Use this tool to:
- Propose a sprint composition for a given capacity
- Keep a buffer for unplanned work (15% of capacity)

Input:
- sprint_name: Name of the sprint (required)
- capacity: Team capacity in story points (required)
- items: Comma-separated backlog item IDs in priority order (required)`
}

func (t *PlanSprintTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"sprint_name", "capacity", "items"},
		"properties": map[string]interface{}{
			"sprint_name": map[string]interface{}{
				"type":        "string",
				"description": "Name of the sprint",
			},
			"capacity": map[string]interface{}{
				"type":        "integer",
				"description": "Team capacity in story points",
			},
			"items": map[string]interface{}{
				"type":        "string",
				"description": "Comma-separated backlog item IDs in priority order",
			},
		},
	}
}

func (t *PlanSprintTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var args struct {
		SprintName string `json:"sprint_name"`
		Capacity   int    `json:"capacity"`
		Items      string `json:"items"`
	}
	if err := json.Unmarshal(input, &args); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	result := lifecycle.PlanSprint(args.SprintName, args.Capacity, args.Items)

	return &Result{
		Success: true,
		Data:    result,
		Summary: fmt.Sprintf("Planned %s: %d points committed, %d items recommended",
			result.Sprint, result.PlannedPoints, len(result.RecommendedItems)),
	}, nil
}

// ProjectStatusTool exposes project delivery status.
type ProjectStatusTool struct{}

func (t *ProjectStatusTool) Name() string { return "project_status" }

func (t *ProjectStatusTool) Description() string {
	return `Get the current delivery status of a project: sprint progress, velocity, release progress, and blockers.

Use this tool to:
- Answer 'how is the project going' questions
- Spot blockers and at-risk releases

Input:
- project_id (optional): Project to report on (default: 'default')
- include_details (optional): Full breakdown instead of the summary view (default: false)`
}

func (t *ProjectStatusTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"project_id": map[string]interface{}{
				"type":        "string",
				"description": "Project to report on (default: 'default')",
			},
			"include_details": map[string]interface{}{
				"type":        "boolean",
				"description": "Full breakdown instead of the summary view (default: false)",
			},
		},
	}
}

func (t *ProjectStatusTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var args struct {
		ProjectID      string `json:"project_id"`
		IncludeDetails bool   `json:"include_details"`
	}
	if err := json.Unmarshal(input, &args); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	result := lifecycle.Status(args.ProjectID, args.IncludeDetails)

	return &Result{
		Success: true,
		Data:    result,
		Summary: fmt.Sprintf("Project %s is %s", result.ProjectID, result.OverallHealth),
	}, nil
}

// AssessRiskTool exposes project risk assessment.
type AssessRiskTool struct{}

func (t *AssessRiskTool) Name() string { return "assess_risk" }

func (t *AssessRiskTool) Description() string {
	return `Assess delivery risks for a project, sprint, release, or feature scope.

Use this tool to:
- Enumerate technical, resource, and schedule risks with scores
- Get mitigations and owners per risk

Input:
- scope: 'project', 'sprint', 'release', or 'feature' (required)
- context (optional): What is being assessed, in the user's words`
}

func (t *AssessRiskTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"scope"},
		"properties": map[string]interface{}{
			"scope": map[string]interface{}{
				"type":        "string",
				"description": "'project', 'sprint', 'release', or 'feature'",
			},
			"context": map[string]interface{}{
				"type":        "string",
				"description": "What is being assessed, in the user's words",
			},
		},
	}
}

func (t *AssessRiskTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var args struct {
		Scope   string `json:"scope"`
		Context string `json:"context"`
	}
	if err := json.Unmarshal(input, &args); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	result := lifecycle.AssessRisk(args.Scope, args.Context, time.Now())

	return &Result{
		Success: true,
		Data:    result,
		Summary: fmt.Sprintf("Assessed %d risks, overall level %s", len(result.Risks), result.OverallRiskLevel),
	}, nil
}

// PlanReleaseTool exposes release planning.
type PlanReleaseTool struct{}

func (t *PlanReleaseTool) Name() string { return "plan_release" }

func (t *PlanReleaseTool) Description() string {
	return `Plan a release: validate the version jump, classify it as major/minor/patch, and lay out the release phases.

Use this tool to:
- Turn a feature list and version bump into a phased release plan
- Catch invalid or non-increasing version numbers early

Input:
- current_version: Current released version (required, semver)
- target_version (optional): Target version; omit to bump the minor version
- features (optional): Comma-separated features scoped into the release`
}

func (t *PlanReleaseTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"current_version"},
		"properties": map[string]interface{}{
			"current_version": map[string]interface{}{
				"type":        "string",
				"description": "Current released version (semver)",
			},
			"target_version": map[string]interface{}{
				"type":        "string",
				"description": "Target version; omit to bump the minor version",
			},
			"features": map[string]interface{}{
				"type":        "string",
				"description": "Comma-separated features scoped into the release",
			},
		},
	}
}

func (t *PlanReleaseTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var args struct {
		CurrentVersion string `json:"current_version"`
		TargetVersion  string `json:"target_version"`
		Features       string `json:"features"`
	}
	if err := json.Unmarshal(input, &args); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	result := lifecycle.PlanRelease(args.CurrentVersion, args.TargetVersion, args.Features)
	if !result.Success {
		return &Result{
			Success: false,
			Data:    result,
			Error:   result.Error,
			Summary: "Release plan rejected",
		}, nil
	}

	return &Result{
		Success: true,
		Data:    result,
		Summary: fmt.Sprintf("Planned %s release %s -> %s with %d phases",
			result.ReleaseType, result.CurrentVersion, result.TargetVersion, len(result.Phases)),
	}, nil
}
