// Package query contains the deterministic SQL and OData builders for
// the CRM schema, plus a rule-based optimizer and validator. Builders
// translate free-form phrases into fixed templates; unmatched phrases
// produce commented placeholders instead of errors.
package query

import "strings"

// SQLRequest captures what the SQL builder needs.
type SQLRequest struct {
	// Objective is the business question the query should answer.
	Objective string `json:"objective"`
	// Entities is a comma-separated entity list; the first is primary.
	Entities string `json:"entities"`
	// Filters holds filter conditions in natural language.
	Filters string `json:"filters,omitempty"`
	// Aggregations names the aggregations needed (count, sum, avg).
	Aggregations string `json:"aggregations,omitempty"`
	// Grouping lists grouping columns.
	Grouping string `json:"grouping,omitempty"`
	// Ordering describes the sort order.
	Ordering string `json:"ordering,omitempty"`
}

// SQLResult is the output of BuildSQL.
type SQLResult struct {
	Success          bool     `json:"success"`
	Error            string   `json:"error,omitempty"`
	Objective        string   `json:"objective,omitempty"`
	Query            string   `json:"query,omitempty"`
	EntitiesUsed     []string `json:"entities_used,omitempty"`
	QueryType        string   `json:"query_type,omitempty"`
	HasAggregation   bool     `json:"has_aggregation"`
	HasGrouping      bool     `json:"has_grouping"`
	Explanation      string   `json:"explanation,omitempty"`
	PerformanceNotes []string `json:"performance_notes,omitempty"`
}

var tableAliases = map[string]string{
	"Contact":     "c",
	"Account":     "a",
	"Opportunity": "o",
	"Lead":        "l",
	"Activity":    "act",
	"Case":        "cs",
	"Product":     "p",
	"Order":       "ord",
}

var defaultColumns = map[string][]string{
	"Contact":     {"c.Id", "c.Name", "c.Email", "c.Phone", "c.AccountId"},
	"Account":     {"a.Id", "a.Name", "a.Phone", "a.Web", "a.IndustryId"},
	"Opportunity": {"o.Id", "o.Title", "o.Amount", "o.StageId", "o.CloseDate"},
	"Lead":        {"l.Id", "l.LeadName", "l.Email", "l.QualifyStatusId"},
	"Activity":    {"act.Id", "act.Title", "act.TypeId", "act.StartDate"},
	"Case":        {"cs.Id", "cs.Number", "cs.Subject", "cs.StatusId"},
}

type joinKey struct{ primary, secondary string }

var joinTemplates = map[joinKey]string{
	{"Contact", "Account"}:     "LEFT JOIN [Account] a ON c.AccountId = a.Id",
	{"Account", "Contact"}:     "LEFT JOIN [Contact] c ON c.AccountId = a.Id",
	{"Opportunity", "Account"}: "LEFT JOIN [Account] a ON o.AccountId = a.Id",
	{"Activity", "Contact"}:    "LEFT JOIN [Contact] c ON act.ContactId = c.Id",
	{"Activity", "Account"}:    "LEFT JOIN [Account] a ON act.AccountId = a.Id",
	{"Case", "Contact"}:        "LEFT JOIN [Contact] c ON cs.ContactId = c.Id",
	{"Case", "Account"}:        "LEFT JOIN [Account] a ON cs.AccountId = a.Id",
	{"Lead", "Contact"}:        "LEFT JOIN [Contact] c ON l.QualifiedContactId = c.Id",
}

// BuildSQL assembles a T-SQL SELECT statement from the request. The
// result is deterministic: the same request yields the same query text.
func BuildSQL(req SQLRequest) SQLResult {
	entities := splitList(req.Entities)
	if len(entities) == 0 {
		return SQLResult{Error: "at least one entity is required"}
	}
	primary := entities[0]

	parts := []string{
		buildSelect(primary, req.Aggregations),
		buildFrom(primary, entities[1:]),
	}
	if req.Filters != "" {
		parts = append(parts, buildWhere(req.Filters))
	}
	if req.Grouping != "" {
		parts = append(parts, "GROUP BY "+req.Grouping)
	}
	if req.Ordering != "" {
		parts = append(parts, buildOrder(req.Ordering))
	}

	return SQLResult{
		Success:        true,
		Objective:      req.Objective,
		Query:          strings.Join(parts, "\n") + ";",
		EntitiesUsed:   entities,
		QueryType:      "SELECT",
		HasAggregation: req.Aggregations != "",
		HasGrouping:    req.Grouping != "",
		Explanation:    explainQuery(primary, entities, req.Filters, req.Aggregations),
		PerformanceNotes: []string{
			"Consider adding indexes on filter columns",
			"Use date range filters to limit result set",
			"Add TOP clause for testing with large datasets",
		},
	}
}

func buildSelect(primary, aggregations string) string {
	if aggregations != "" {
		aggLower := strings.ToLower(aggregations)
		var aggCols []string
		if strings.Contains(aggLower, "count") {
			aggCols = append(aggCols, "COUNT("+primary+".Id) AS RecordCount")
		}
		if strings.Contains(aggLower, "sum") {
			aggCols = append(aggCols, "SUM("+primary+".Amount) AS TotalAmount")
		}
		if strings.Contains(aggLower, "avg") {
			aggCols = append(aggCols, "AVG("+primary+".Amount) AS AvgAmount")
		}
		if len(aggCols) > 0 {
			return "SELECT\n    " + strings.Join(aggCols, ", ")
		}
	}

	cols, ok := defaultColumns[primary]
	if !ok {
		alias := fallbackAlias(primary)
		cols = []string{alias + ".Id", alias + ".Name"}
	}
	return "SELECT\n    " + strings.Join(cols, ",\n    ")
}

func buildFrom(primary string, rest []string) string {
	var sb strings.Builder
	sb.WriteString("FROM [" + primary + "] " + aliasFor(primary))

	for _, entity := range rest {
		if join, ok := joinTemplates[joinKey{primary, entity}]; ok {
			sb.WriteString("\n" + join)
		} else if join, ok := joinTemplates[joinKey{entity, primary}]; ok {
			sb.WriteString("\n" + join)
		} else {
			sb.WriteString("\n-- Add JOIN for [" + entity + "] based on your relationship")
		}
	}
	return sb.String()
}

func buildWhere(filters string) string {
	var conditions []string
	filterLower := strings.ToLower(filters)

	if strings.Contains(filterLower, "this month") {
		conditions = append(conditions, "CreatedOn >= DATEADD(MONTH, DATEDIFF(MONTH, 0, GETDATE()), 0)")
	}
	if strings.Contains(filterLower, "this quarter") {
		conditions = append(conditions, "CreatedOn >= DATEADD(QUARTER, DATEDIFF(QUARTER, 0, GETDATE()), 0)")
	}
	if strings.Contains(filterLower, "this year") {
		conditions = append(conditions, "YEAR(CreatedOn) = YEAR(GETDATE())")
	}
	if strings.Contains(filterLower, "active") {
		conditions = append(conditions, "IsActive = 1")
	}
	if strings.Contains(filterLower, "closed") {
		conditions = append(conditions, "StatusId IN (SELECT Id FROM [OpportunityStatus] WHERE IsFinal = 1)")
	}
	if strings.Contains(filterLower, "won") {
		conditions = append(conditions, "StageId = (SELECT Id FROM [OpportunityStage] WHERE Name = 'Closed won')")
	}

	if len(conditions) > 0 {
		return "WHERE\n    " + strings.Join(conditions, "\n    AND ")
	}
	return "WHERE -- Add conditions based on: " + filters
}

func buildOrder(ordering string) string {
	orderLower := strings.ToLower(ordering)
	switch {
	case strings.Contains(orderLower, "newest") || strings.Contains(orderLower, "recent"):
		return "ORDER BY CreatedOn DESC"
	case strings.Contains(orderLower, "oldest"):
		return "ORDER BY CreatedOn ASC"
	case strings.Contains(orderLower, "amount"):
		return "ORDER BY Amount DESC"
	}
	return "ORDER BY " + ordering
}

func explainQuery(primary string, entities []string, filters, aggregations string) string {
	explanation := "This query retrieves data from " + primary
	if len(entities) > 1 {
		explanation += " joined with " + strings.Join(entities[1:], ", ")
	}
	if filters != "" {
		explanation += " filtered by: " + filters
	}
	if aggregations != "" {
		explanation += " with aggregations: " + aggregations
	}
	return explanation
}

func aliasFor(entity string) string {
	if alias, ok := tableAliases[entity]; ok {
		return alias
	}
	return fallbackAlias(entity)
}

func fallbackAlias(entity string) string {
	if entity == "" {
		return "t"
	}
	return strings.ToLower(entity[:1])
}

func splitList(csv string) []string {
	var out []string
	for _, part := range strings.Split(csv, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
