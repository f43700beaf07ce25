package metrics

import (
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"
)

// DefaultPeriod is used when the requested time period is unknown.
const DefaultPeriod = "last_month"

var dateFilters = map[string]string{
	"today":        "CAST(CreatedOn AS DATE) = CAST(GETDATE() AS DATE)",
	"last_week":    "CreatedOn >= DATEADD(WEEK, -1, GETDATE())",
	"last_month":   "CreatedOn >= DATEADD(MONTH, -1, GETDATE())",
	"last_quarter": "CreatedOn >= DATEADD(QUARTER, -1, GETDATE())",
	"ytd":          "YEAR(CreatedOn) = YEAR(GETDATE())",
	"last_year":    "CreatedOn >= DATEADD(YEAR, -1, GETDATE())",
}

// periodPhrases map the period keys to phrases the date parser resolves
// against a reference time.
var periodPhrases = map[string]string{
	"today":        "today",
	"last_week":    "1 week ago",
	"last_month":   "1 month ago",
	"last_quarter": "3 months ago",
	"ytd":          "january 1",
	"last_year":    "1 year ago",
}

// MetricRef identifies the metric being calculated.
type MetricRef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Unit        string `json:"unit"`
}

// Calculation carries the generated SQL and the resolved period.
type Calculation struct {
	Formula     string `json:"formula"`
	SQLQuery    string `json:"sql_query"`
	TimePeriod  string `json:"time_period"`
	DateFilter  string `json:"date_filter"`
	PeriodStart string `json:"period_start,omitempty"`
	GroupBy     string `json:"group_by,omitempty"`
}

// CalculateResult is the output of Calculate.
type CalculateResult struct {
	Success             bool        `json:"success"`
	Error               string      `json:"error,omitempty"`
	AvailableCategories []string    `json:"available_categories,omitempty"`
	AvailableMetrics    []string    `json:"available_metrics,omitempty"`
	Metric              MetricRef   `json:"metric,omitzero"`
	Calculation         Calculation `json:"calculation,omitzero"`
	EntitiesRequired    []string    `json:"entities_required,omitempty"`
	Notes               []string    `json:"notes,omitempty"`
}

// Calculate resolves a "category.metric" identifier against the KPI
// library and produces the SQL needed to compute it for the period.
// Unknown categories and metrics come back with the valid options.
// The reference time anchors the resolved period start; pass
// time.Now() outside of tests.
func Calculate(metricID, timePeriod, groupBy string, now time.Time) CalculateResult {
	parts := strings.SplitN(metricID, ".", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return CalculateResult{
			Error:               "Invalid metric_id format. Use 'category.metric_name' (e.g., 'sales.win_rate')",
			AvailableCategories: Categories(),
		}
	}

	category, ok := CategoryByName(parts[0])
	if !ok {
		return CalculateResult{
			Error:               "Unknown category: " + parts[0],
			AvailableCategories: Categories(),
		}
	}

	metric, ok := LookupMetric(metricID)
	if !ok {
		return CalculateResult{
			Error:            "Unknown metric: " + parts[1],
			AvailableMetrics: MetricKeys(category),
		}
	}

	if timePeriod == "" {
		timePeriod = DefaultPeriod
	}

	calc := Calculation{
		Formula:    metric.Formula,
		SQLQuery:   calculationQuery(metric, timePeriod),
		TimePeriod: timePeriod,
		DateFilter: dateFilter(timePeriod),
		GroupBy:    groupBy,
	}
	if start, ok := PeriodStart(timePeriod, now); ok {
		calc.PeriodStart = start.Format("2006-01-02")
	}

	return CalculateResult{
		Success: true,
		Metric: MetricRef{
			ID:          metric.ID,
			Name:        metric.Name,
			Description: metric.Description,
			Unit:        metric.Unit,
		},
		Calculation:      calc,
		EntitiesRequired: metric.Entities,
		Notes: []string{
			"Recommended calculation frequency: " + metric.Frequency,
			"Ensure appropriate indexes exist for date columns",
			"Consider caching results for dashboard performance",
		},
	}
}

// PeriodStart resolves a period key to a concrete start date anchored
// at the reference time. The second return is false when the phrase
// cannot be resolved.
func PeriodStart(timePeriod string, now time.Time) (time.Time, bool) {
	phrase, ok := periodPhrases[timePeriod]
	if !ok {
		phrase = periodPhrases[DefaultPeriod]
	}
	parser := dps.Parser{}
	cfg := &dps.Configuration{
		CurrentTime:         now,
		PreferredDateSource: dps.CurrentPeriod,
	}
	parsed, err := parser.Parse(cfg, phrase)
	if err != nil || parsed.IsZero() {
		return time.Time{}, false
	}
	return parsed.Time, true
}

func dateFilter(timePeriod string) string {
	if filter, ok := dateFilters[timePeriod]; ok {
		return filter
	}
	return dateFilters[DefaultPeriod]
}

func calculationQuery(metric Metric, timePeriod string) string {
	nameLower := strings.ToLower(metric.Name)
	filter := dateFilter(timePeriod)
	primaryEntity := "Opportunity"
	if len(metric.Entities) > 0 {
		primaryEntity = metric.Entities[0]
	}

	if metric.Unit == "percentage" && strings.Contains(nameLower, "rate") {
		if strings.Contains(nameLower, "win") {
			return `SELECT
    CAST(SUM(CASE WHEN s.Name = 'Closed won' THEN 1 ELSE 0 END) AS FLOAT) /
    NULLIF(COUNT(*), 0) * 100 AS WinRate
FROM [Opportunity] o
JOIN [OpportunityStage] s ON o.StageId = s.Id
WHERE s.IsFinal = 1
    AND ` + filter
		}
		if strings.Contains(nameLower, "conversion") {
			return `SELECT
    CAST(SUM(CASE WHEN QualifiedContactId IS NOT NULL THEN 1 ELSE 0 END) AS FLOAT) /
    NULLIF(COUNT(*), 0) * 100 AS ConversionRate
FROM [Lead]
WHERE ` + filter
		}
	}

	if metric.Unit == "currency" {
		if strings.Contains(nameLower, "pipeline") {
			return `SELECT SUM(o.Amount) AS PipelineValue
FROM [Opportunity] o
JOIN [OpportunityStage] s ON o.StageId = s.Id
WHERE s.IsFinal = 0`
		}
		if strings.Contains(nameLower, "average") {
			return `SELECT AVG(o.Amount) AS AverageDealSize
FROM [Opportunity] o
JOIN [OpportunityStage] s ON o.StageId = s.Id
WHERE s.Name = 'Closed won'
    AND ` + filter
		}
	}

	if metric.Unit == "days" || metric.Unit == "hours" {
		unit := strings.TrimSuffix(metric.Unit, "s")
		alias := strings.ReplaceAll(metric.Name, " ", "")
		return "SELECT AVG(DATEDIFF(" + unit + ", CreatedOn, CloseDate)) AS " + alias + "\nFROM [" + primaryEntity + "]\nWHERE " + filter
	}

	alias := strings.ReplaceAll(metric.Name, " ", "")
	return "SELECT COUNT(*) AS " + alias + "\nFROM [" + primaryEntity + "]\nWHERE " + filter
}
