package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/moolen/crewline/internal/crm/metrics"
)

// =============================================================================
// Metrics Tools
// =============================================================================

// DefineMetricTool exposes the custom metric definition builder.
type DefineMetricTool struct{}

func (t *DefineMetricTool) Name() string { return "define_metric" }

func (t *DefineMetricTool) Description() string {
	return `Define a custom CRM metric: similar existing KPIs, a suggested formula, data requirements, and implementation steps.

Use this tool to:
- Check whether a requested metric already exists in the KPI library
- Get a concrete formula and source entities for a new metric
- Recommend calculation frequency and visualization type

Input:
- metric_name: Name of the metric to define (required)
- business_context (optional): Why the metric is needed
- target_entity (optional): Entity the metric is primarily based on`
}

func (t *DefineMetricTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"metric_name"},
		"properties": map[string]interface{}{
			"metric_name": map[string]interface{}{
				"type":        "string",
				"description": "Name of the metric to define",
			},
			"business_context": map[string]interface{}{
				"type":        "string",
				"description": "Why the metric is needed",
			},
			"target_entity": map[string]interface{}{
				"type":        "string",
				"description": "Entity the metric is primarily based on",
			},
		},
	}
}

func (t *DefineMetricTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var args struct {
		MetricName      string `json:"metric_name"`
		BusinessContext string `json:"business_context"`
		TargetEntity    string `json:"target_entity"`
	}
	if err := json.Unmarshal(input, &args); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	result := metrics.Define(args.MetricName, args.BusinessContext, args.TargetEntity)

	return &Result{
		Success: true,
		Data:    result,
		Summary: fmt.Sprintf("Defined %q with %d similar existing KPIs", args.MetricName, len(result.SimilarExistingKPIs)),
	}, nil
}

// CalculateMetricTool exposes the KPI calculation query generator.
type CalculateMetricTool struct{}

func (t *CalculateMetricTool) Name() string { return "calculate_metric" }

func (t *CalculateMetricTool) Description() string {
	return `Generate the SQL calculation for a KPI from the metric library, scoped to a time period.

Use this tool to:
- Get the exact formula and SQL for a known KPI (e.g., 'sales.win_rate')
- Scope a calculation to a period like 'last_quarter' or 'this_month'
- See which entities the calculation reads from

Input:
- metric_id: Metric identifier in 'category.metric' format (required, e.g. 'sales.win_rate')
- time_period (optional): Period such as 'last_month', 'last_quarter', 'this_year' (default: 'last_month')
- group_by (optional): Dimension to group the calculation by

Unknown metric IDs return the available categories and metrics.`
}

func (t *CalculateMetricTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"metric_id"},
		"properties": map[string]interface{}{
			"metric_id": map[string]interface{}{
				"type":        "string",
				"description": "Metric identifier in 'category.metric' format (e.g. 'sales.win_rate')",
			},
			"time_period": map[string]interface{}{
				"type":        "string",
				"description": "Period such as 'last_month', 'last_quarter', 'this_year' (default: 'last_month')",
			},
			"group_by": map[string]interface{}{
				"type":        "string",
				"description": "Dimension to group the calculation by",
			},
		},
	}
}

func (t *CalculateMetricTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var args struct {
		MetricID   string `json:"metric_id"`
		TimePeriod string `json:"time_period"`
		GroupBy    string `json:"group_by"`
	}
	if err := json.Unmarshal(input, &args); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	result := metrics.Calculate(args.MetricID, args.TimePeriod, args.GroupBy, time.Now())
	if !result.Success {
		return &Result{
			Success: false,
			Data:    result,
			Error:   result.Error,
			Summary: fmt.Sprintf("Metric %q not found", args.MetricID),
		}, nil
	}

	return &Result{
		Success: true,
		Data:    result,
		Summary: fmt.Sprintf("Calculation ready for %s (%s)", result.Metric.ID, result.Calculation.TimePeriod),
	}, nil
}

// BrowseKPIsTool exposes the KPI library browser.
type BrowseKPIsTool struct{}

func (t *BrowseKPIsTool) Name() string { return "browse_kpis" }

func (t *BrowseKPIsTool) Description() string {
	return `Browse the KPI library by category or search term.

Use this tool to:
- List the KPIs available in a category (sales, marketing, customer_service, activity, customer_health)
- Search KPIs by name or description fragment
- Discover what can be measured before defining a custom metric

Input:
- category (optional): Category to browse; omit for all categories
- search_term (optional): Filter KPIs by name/description fragment`
}

func (t *BrowseKPIsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"category": map[string]interface{}{
				"type":        "string",
				"description": "Category to browse; omit for all categories",
			},
			"search_term": map[string]interface{}{
				"type":        "string",
				"description": "Filter KPIs by name/description fragment",
			},
		},
	}
}

func (t *BrowseKPIsTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var args struct {
		Category   string `json:"category"`
		SearchTerm string `json:"search_term"`
	}
	if err := json.Unmarshal(input, &args); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	result := metrics.Browse(args.Category, args.SearchTerm)

	return &Result{
		Success: true,
		Data:    result,
		Summary: fmt.Sprintf("Found %d KPIs across %d categories",
			result.Summary.TotalKPIsFound, len(result.Summary.CategoriesSearched)),
	}, nil
}

// DesignDashboardTool exposes the dashboard designer.
type DesignDashboardTool struct{}

func (t *DesignDashboardTool) Name() string { return "design_dashboard" }

func (t *DesignDashboardTool) Description() string {
	return `Design a CRM dashboard: recommended KPIs, widget layout, refresh frequency, and data requirements for a purpose and audience.

Use this tool to:
- Turn a reporting request into a concrete widget plan
- Match layout density and refresh rate to the audience (executive, manager, analyst, rep)
- Enumerate the entities the dashboard needs data from

Input:
- purpose: What the dashboard is for (required, e.g. 'sales pipeline overview')
- audience (optional): 'executive', 'manager', 'analyst', or 'rep' (default: 'manager')
- key_questions (optional): Questions the dashboard should answer`
}

func (t *DesignDashboardTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"purpose"},
		"properties": map[string]interface{}{
			"purpose": map[string]interface{}{
				"type":        "string",
				"description": "What the dashboard is for (e.g. 'sales pipeline overview')",
			},
			"audience": map[string]interface{}{
				"type":        "string",
				"description": "'executive', 'manager', 'analyst', or 'rep' (default: 'manager')",
			},
			"key_questions": map[string]interface{}{
				"type":        "string",
				"description": "Questions the dashboard should answer",
			},
		},
	}
}

func (t *DesignDashboardTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var args struct {
		Purpose      string `json:"purpose"`
		Audience     string `json:"audience"`
		KeyQuestions string `json:"key_questions"`
	}
	if err := json.Unmarshal(input, &args); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	result := metrics.DesignDashboard(args.Purpose, args.Audience, args.KeyQuestions)

	return &Result{
		Success: true,
		Data:    result,
		Summary: fmt.Sprintf("Designed %s dashboard with %d KPIs and %d widgets",
			result.TargetAudience, len(result.RecommendedKPIs), len(result.WidgetRecommendations)),
	}, nil
}
