package query

import "strings"

// Query kinds accepted by Optimize and Validate.
const (
	TypeSQL   = "sql"
	TypeOData = "odata"
)

// Issue is a problem found by the optimizer, with a suggested fix.
type Issue struct {
	Severity string `json:"severity"`
	Issue    string `json:"issue"`
	Fix      string `json:"fix"`
}

// OptimizationSummary counts what the optimizer found.
type OptimizationSummary struct {
	IssuesCount          int `json:"issues_count"`
	RecommendationsCount int `json:"recommendations_count"`
	CriticalIssues       int `json:"critical_issues"`
}

// OptimizeResult is the output of Optimize.
type OptimizeResult struct {
	Success          bool                `json:"success"`
	OriginalQuery    string              `json:"original_query"`
	QueryType        string              `json:"query_type"`
	OptimizationGoal string              `json:"optimization_goal"`
	IssuesFound      []Issue             `json:"issues_found"`
	Recommendations  []string            `json:"recommendations"`
	OptimizedQuery   string              `json:"optimized_query"`
	Summary          OptimizationSummary `json:"optimization_summary"`
}

// Optimize runs rule-based checks against a SQL or OData query and
// returns issues and recommendations. Critical issues are those with
// severity "high".
func Optimize(queryText, queryType, goal string) OptimizeResult {
	if queryType == "" {
		queryType = TypeSQL
	}
	if goal == "" {
		goal = "performance"
	}
	result := OptimizeResult{
		Success:          true,
		OriginalQuery:    queryText,
		QueryType:        queryType,
		OptimizationGoal: goal,
		IssuesFound:      []Issue{},
		Recommendations:  []string{},
		OptimizedQuery:   queryText,
	}

	queryLower := strings.ToLower(queryText)

	switch queryType {
	case TypeSQL:
		if strings.Contains(queryLower, "select *") {
			result.IssuesFound = append(result.IssuesFound, Issue{
				Severity: "high",
				Issue:    "Using SELECT * returns unnecessary columns",
				Fix:      "Specify only needed columns",
			})
			result.Recommendations = append(result.Recommendations, "Replace SELECT * with specific columns")
		}
		if !strings.Contains(queryLower, "where") && !strings.Contains(queryLower, "group by") {
			result.IssuesFound = append(result.IssuesFound, Issue{
				Severity: "high",
				Issue:    "Query has no WHERE clause - will scan entire table",
				Fix:      "Add appropriate filter conditions",
			})
		}
		if !strings.Contains(queryLower, "top") && !strings.Contains(queryLower, "limit") {
			result.IssuesFound = append(result.IssuesFound, Issue{
				Severity: "medium",
				Issue:    "No row limit specified",
				Fix:      "Add TOP or LIMIT clause for testing",
			})
			result.Recommendations = append(result.Recommendations, "Add TOP 1000 during development")
		}
		if strings.Contains(queryLower, "createdon") &&
			!strings.Contains(queryLower, "between") && !strings.Contains(queryLower, ">=") {
			result.Recommendations = append(result.Recommendations,
				"Consider adding date range filter on CreatedOn for better index usage")
		}
		if strings.Contains(queryLower, "join") {
			result.Recommendations = append(result.Recommendations,
				"Ensure join columns have appropriate indexes",
				"Consider the order of joins - put most restrictive first")
		}
		for _, fn := range []string{"year(", "month(", "day(", "datepart("} {
			if strings.Contains(queryLower, fn) {
				result.IssuesFound = append(result.IssuesFound, Issue{
					Severity: "medium",
					Issue:    "Function " + strings.ToUpper(fn) + " on column prevents index usage",
					Fix:      "Use range comparison instead of function extraction",
				})
			}
		}

	case TypeOData:
		if !strings.Contains(queryLower, "$select") {
			result.IssuesFound = append(result.IssuesFound, Issue{
				Severity: "medium",
				Issue:    "No $select - returning all columns",
				Fix:      "Add $select with only needed fields",
			})
		}
		if !strings.Contains(queryLower, "$top") {
			result.Recommendations = append(result.Recommendations, "Add $top for pagination")
		}
		if strings.Contains(queryLower, "$expand") && strings.Contains(queryLower, "$select") {
			result.Recommendations = append(result.Recommendations,
				"Consider using $select within $expand to limit expanded data")
		}
	}

	for _, col := range []struct{ needle, column string }{
		{"accountid", "AccountId"},
		{"createdon", "CreatedOn"},
		{"ownerid", "OwnerId"},
	} {
		if strings.Contains(queryLower, col.needle) {
			result.Recommendations = append(result.Recommendations,
				"Ensure index exists on "+col.column+" column")
		}
	}

	critical := 0
	for _, issue := range result.IssuesFound {
		if issue.Severity == "high" {
			critical++
		}
	}
	result.Summary = OptimizationSummary{
		IssuesCount:          len(result.IssuesFound),
		RecommendationsCount: len(result.Recommendations),
		CriticalIssues:       critical,
	}
	return result
}
