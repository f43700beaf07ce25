package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/moolen/crewline/internal/crm/query"
)

// =============================================================================
// Query Tools
// =============================================================================

// BuildSQLTool exposes the deterministic SQL builder.
type BuildSQLTool struct{}

func (t *BuildSQLTool) Name() string { return "build_sql" }

func (t *BuildSQLTool) Description() string {
	return `Build a T-SQL query against the CRM database from a business objective and an entity list.

Use this tool to:
- Produce a ready-to-run SELECT with the correct joins between entities
- Translate natural-language filters into WHERE clauses
- Add aggregations (count, sum, avg) and grouping

Input:
- objective: Business question the query should answer (required)
- entities: Comma-separated entity list; the first is the primary table (required)
- filters (optional): Filter conditions in natural language
- aggregations (optional): Aggregations needed, e.g. 'count', 'sum of amount'
- grouping (optional): Grouping columns
- ordering (optional): Sort order description

The first listed entity drives the FROM clause; joins are derived from known relationships.`
}

func (t *BuildSQLTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"objective", "entities"},
		"properties": map[string]interface{}{
			"objective": map[string]interface{}{
				"type":        "string",
				"description": "Business question the query should answer",
			},
			"entities": map[string]interface{}{
				"type":        "string",
				"description": "Comma-separated entity list; the first is the primary table",
			},
			"filters": map[string]interface{}{
				"type":        "string",
				"description": "Filter conditions in natural language",
			},
			"aggregations": map[string]interface{}{
				"type":        "string",
				"description": "Aggregations needed (count, sum, avg)",
			},
			"grouping": map[string]interface{}{
				"type":        "string",
				"description": "Grouping columns",
			},
			"ordering": map[string]interface{}{
				"type":        "string",
				"description": "Sort order description",
			},
		},
	}
}

func (t *BuildSQLTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var req query.SQLRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	result := query.BuildSQL(req)
	if !result.Success {
		return &Result{
			Success: false,
			Data:    result,
			Error:   result.Error,
			Summary: "SQL build failed",
		}, nil
	}

	return &Result{
		Success: true,
		Data:    result,
		Summary: fmt.Sprintf("Built %s query over %d entities", result.QueryType, len(result.EntitiesUsed)),
	}, nil
}

// BuildODataTool exposes the OData URL builder.
type BuildODataTool struct{}

func (t *BuildODataTool) Name() string { return "build_odata" }

func (t *BuildODataTool) Description() string {
	return `Build an OData query URL for the CRM REST endpoint (/0/odata/{Entity}Collection).

Use this tool to:
- Produce integration-ready OData URLs instead of raw SQL
- Select specific fields and expand related entities
- Apply filters and record caps via query options

Input:
- entity: Primary entity to query (required)
- select_fields (optional): Comma-separated list of fields to return
- filter_expression (optional): Filter in natural language
- expand_relations (optional): Related entities to expand
- top (optional): Maximum records to return (default: 100)`
}

func (t *BuildODataTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"entity"},
		"properties": map[string]interface{}{
			"entity": map[string]interface{}{
				"type":        "string",
				"description": "Primary entity to query",
			},
			"select_fields": map[string]interface{}{
				"type":        "string",
				"description": "Comma-separated list of fields to return",
			},
			"filter_expression": map[string]interface{}{
				"type":        "string",
				"description": "Filter in natural language",
			},
			"expand_relations": map[string]interface{}{
				"type":        "string",
				"description": "Related entities to expand",
			},
			"top": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum records to return (default: 100)",
			},
		},
	}
}

func (t *BuildODataTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var req query.ODataRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	result := query.BuildOData(req)
	if !result.Success {
		return &Result{
			Success: false,
			Data:    result,
			Error:   result.Error,
			Summary: "OData build failed",
		}, nil
	}

	return &Result{
		Success: true,
		Data:    result,
		Summary: fmt.Sprintf("Built OData query for %s", result.Entity),
	}, nil
}

// OptimizeQueryTool exposes the rule-based query optimizer.
type OptimizeQueryTool struct{}

func (t *OptimizeQueryTool) Name() string { return "optimize_query" }

func (t *OptimizeQueryTool) Description() string {
	return `Analyze a SQL or OData query for performance issues and suggest improvements.

Use this tool to:
- Check a query before recommending it to the user
- Get concrete rewrite suggestions (missing TOP, SELECT *, leading-wildcard LIKE, missing join indexes)
- Tune a query toward a goal (performance, readability, maintainability)

Input:
- query: The query text to analyze (required)
- query_type (optional): 'sql' or 'odata' (default: 'sql')
- optimization_goal (optional): 'performance', 'readability', or 'maintainability' (default: 'performance')`
}

func (t *OptimizeQueryTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"query"},
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "The query text to analyze",
			},
			"query_type": map[string]interface{}{
				"type":        "string",
				"description": "'sql' or 'odata' (default: 'sql')",
			},
			"optimization_goal": map[string]interface{}{
				"type":        "string",
				"description": "'performance', 'readability', or 'maintainability' (default: 'performance')",
			},
		},
	}
}

func (t *OptimizeQueryTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var args struct {
		Query            string `json:"query"`
		QueryType        string `json:"query_type"`
		OptimizationGoal string `json:"optimization_goal"`
	}
	if err := json.Unmarshal(input, &args); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	result := query.Optimize(args.Query, args.QueryType, args.OptimizationGoal)

	return &Result{
		Success: true,
		Data:    result,
		Summary: fmt.Sprintf("Found %d issues (%d critical), %d recommendations",
			result.Summary.IssuesCount, result.Summary.CriticalIssues, result.Summary.RecommendationsCount),
	}, nil
}

// ValidateQueryTool exposes the query validator.
type ValidateQueryTool struct{}

func (t *ValidateQueryTool) Name() string { return "validate_query" }

func (t *ValidateQueryTool) Description() string {
	return `Validate a SQL or OData query against the CRM schema: known entities, balanced syntax, and common mistakes.

Use this tool to:
- Verify a query references only entities that exist in the schema
- Catch unbalanced parentheses/brackets and missing clauses
- Get warnings for risky patterns before execution

Input:
- query: The query text to validate (required)
- query_type (optional): 'sql' or 'odata' (default: 'sql')`
}

func (t *ValidateQueryTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"query"},
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "The query text to validate",
			},
			"query_type": map[string]interface{}{
				"type":        "string",
				"description": "'sql' or 'odata' (default: 'sql')",
			},
		},
	}
}

func (t *ValidateQueryTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var args struct {
		Query     string `json:"query"`
		QueryType string `json:"query_type"`
	}
	if err := json.Unmarshal(input, &args); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	result := query.Validate(args.Query, args.QueryType)

	verdict := "valid"
	if !result.IsValid {
		verdict = "invalid"
	}

	return &Result{
		Success: true,
		Data:    result,
		Summary: fmt.Sprintf("Query is %s (%d errors, %d warnings)", verdict, len(result.Errors), len(result.Warnings)),
	}, nil
}
