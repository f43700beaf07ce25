package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSQL_DefaultColumns(t *testing.T) {
	result := BuildSQL(SQLRequest{
		Objective: "List all contacts",
		Entities:  "Contact",
	})

	require.True(t, result.Success)
	assert.Contains(t, result.Query, "SELECT")
	assert.Contains(t, result.Query, "c.Id")
	assert.Contains(t, result.Query, "c.Email")
	assert.Contains(t, result.Query, "FROM [Contact] c")
	assert.True(t, strings.HasSuffix(result.Query, ";"))
	assert.Equal(t, []string{"Contact"}, result.EntitiesUsed)
	assert.Equal(t, "SELECT", result.QueryType)
	assert.Len(t, result.PerformanceNotes, 3)
}

func TestBuildSQL_JoinTemplate(t *testing.T) {
	result := BuildSQL(SQLRequest{
		Objective: "Contacts with their companies",
		Entities:  "Contact, Account",
	})

	require.True(t, result.Success)
	assert.Contains(t, result.Query, "LEFT JOIN [Account] a ON c.AccountId = a.Id")
	assert.Contains(t, result.Explanation, "joined with Account")
}

func TestBuildSQL_ReverseJoinFallback(t *testing.T) {
	// (Account, Opportunity) has no template; the reverse pair does.
	result := BuildSQL(SQLRequest{
		Objective: "Accounts with deals",
		Entities:  "Account, Opportunity",
	})

	require.True(t, result.Success)
	assert.Contains(t, result.Query, "LEFT JOIN [Account] a ON o.AccountId = a.Id")
}

func TestBuildSQL_UnknownJoinPlaceholder(t *testing.T) {
	result := BuildSQL(SQLRequest{
		Objective: "Products per order",
		Entities:  "Product, Order",
	})

	require.True(t, result.Success)
	assert.Contains(t, result.Query, "-- Add JOIN for [Order]")
}

func TestBuildSQL_FilterPhrases(t *testing.T) {
	result := BuildSQL(SQLRequest{
		Objective: "Won deals this month",
		Entities:  "Opportunity",
		Filters:   "won this month",
	})

	require.True(t, result.Success)
	assert.Contains(t, result.Query, "CreatedOn >= DATEADD(MONTH, DATEDIFF(MONTH, 0, GETDATE()), 0)")
	assert.Contains(t, result.Query, "StageId = (SELECT Id FROM [OpportunityStage] WHERE Name = 'Closed won')")
	assert.Contains(t, result.Query, "AND")
}

func TestBuildSQL_UnmatchedFilterPlaceholder(t *testing.T) {
	result := BuildSQL(SQLRequest{
		Objective: "Special",
		Entities:  "Contact",
		Filters:   "born on a tuesday",
	})

	require.True(t, result.Success)
	assert.Contains(t, result.Query, "WHERE -- Add conditions based on: born on a tuesday")
}

func TestBuildSQL_Aggregations(t *testing.T) {
	result := BuildSQL(SQLRequest{
		Objective:    "Deal totals",
		Entities:     "Opportunity",
		Aggregations: "count and sum",
		Grouping:     "o.StageId",
	})

	require.True(t, result.Success)
	assert.True(t, result.HasAggregation)
	assert.True(t, result.HasGrouping)
	assert.Contains(t, result.Query, "COUNT(Opportunity.Id) AS RecordCount")
	assert.Contains(t, result.Query, "SUM(Opportunity.Amount) AS TotalAmount")
	assert.Contains(t, result.Query, "GROUP BY o.StageId")
}

func TestBuildSQL_OrderingRules(t *testing.T) {
	cases := []struct {
		ordering string
		want     string
	}{
		{"newest first", "ORDER BY CreatedOn DESC"},
		{"most recent", "ORDER BY CreatedOn DESC"},
		{"oldest", "ORDER BY CreatedOn ASC"},
		{"by amount", "ORDER BY Amount DESC"},
		{"Name ASC", "ORDER BY Name ASC"},
	}
	for _, tc := range cases {
		result := BuildSQL(SQLRequest{Objective: "x", Entities: "Contact", Ordering: tc.ordering})
		require.True(t, result.Success)
		assert.Contains(t, result.Query, tc.want, "ordering %q", tc.ordering)
	}
}

func TestBuildSQL_Deterministic(t *testing.T) {
	req := SQLRequest{Objective: "repeat", Entities: "Contact, Account", Filters: "active", Ordering: "newest"}
	assert.Equal(t, BuildSQL(req), BuildSQL(req))
}

func TestBuildSQL_NoEntities(t *testing.T) {
	result := BuildSQL(SQLRequest{Objective: "nothing", Entities: "  "})
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}

func TestBuildOData_FullURL(t *testing.T) {
	result := BuildOData(ODataRequest{
		Entity:          "Contact",
		SelectFields:    "Name, Email",
		ExpandRelations: "Account",
		Top:             25,
	})

	require.True(t, result.Success)
	assert.Equal(t, "/0/odata/ContactCollection", result.QueryParts.Base)
	assert.Contains(t, result.ODataURL, "$select=Name,Email")
	assert.Contains(t, result.ODataURL, "$expand=Account")
	assert.Contains(t, result.ODataURL, "$top=25")
	assert.Contains(t, result.CurlExample, "BPMCSRF")
	assert.Len(t, result.UsageNotes, 3)
}

func TestBuildOData_DefaultTop(t *testing.T) {
	result := BuildOData(ODataRequest{Entity: "Account"})

	require.True(t, result.Success)
	assert.Equal(t, DefaultODataTop, result.QueryParts.Top)
	assert.Contains(t, result.ODataURL, "$top=100")
}

func TestBuildOData_NaturalFilters(t *testing.T) {
	result := BuildOData(ODataRequest{
		Entity:           "Opportunity",
		FilterExpression: "open deals created this month",
	})

	require.True(t, result.Success)
	assert.Contains(t, result.ODataURL, "month(CreatedOn) eq month(now())")
	assert.Contains(t, result.ODataURL, "Stage/IsFinal eq false")
}

func TestBuildOData_OpenCaseFilter(t *testing.T) {
	result := BuildOData(ODataRequest{Entity: "Case", FilterExpression: "open"})

	require.True(t, result.Success)
	assert.Contains(t, result.ODataURL, "Status/IsFinal eq false")
}

func TestBuildOData_UnmatchedFilterPlaceholder(t *testing.T) {
	result := BuildOData(ODataRequest{Entity: "Contact", FilterExpression: "wearing a hat"})

	require.True(t, result.Success)
	assert.Contains(t, result.ODataURL, "/* Add filter for: wearing a hat */")
}

func TestBuildOData_MissingEntity(t *testing.T) {
	result := BuildOData(ODataRequest{})
	assert.False(t, result.Success)
}

func TestOptimize_SQLIssues(t *testing.T) {
	result := Optimize("SELECT * FROM Contact", TypeSQL, "performance")

	require.True(t, result.Success)
	// SELECT *, no WHERE, no TOP.
	assert.Len(t, result.IssuesFound, 3)
	assert.Equal(t, 2, result.Summary.CriticalIssues)
	assert.Equal(t, len(result.IssuesFound), result.Summary.IssuesCount)
}

func TestOptimize_FunctionOnColumn(t *testing.T) {
	result := Optimize("SELECT Id FROM Contact WHERE YEAR(CreatedOn) = 2025 AND Id >= 1 LIMIT 10", TypeSQL, "")

	require.True(t, result.Success)
	var found bool
	for _, issue := range result.IssuesFound {
		if strings.Contains(issue.Issue, "YEAR(") {
			found = true
			assert.Equal(t, "medium", issue.Severity)
		}
	}
	assert.True(t, found, "expected function-on-column issue")
	assert.Contains(t, result.Recommendations, "Ensure index exists on CreatedOn column")
}

func TestOptimize_ODataChecks(t *testing.T) {
	result := Optimize("/0/odata/ContactCollection?$expand=Account", TypeOData, "performance")

	require.True(t, result.Success)
	require.Len(t, result.IssuesFound, 1)
	assert.Contains(t, result.IssuesFound[0].Issue, "$select")
	assert.Contains(t, result.Recommendations, "Add $top for pagination")
}

func TestOptimize_CleanQuery(t *testing.T) {
	result := Optimize("SELECT TOP 10 Id FROM [Product] WHERE IsActive = 1", TypeSQL, "performance")

	require.True(t, result.Success)
	assert.Empty(t, result.IssuesFound)
	assert.Zero(t, result.Summary.CriticalIssues)
}

func TestValidate_ValidSQL(t *testing.T) {
	result := Validate("SELECT Id FROM [Contact] WHERE AccountId IS NOT NULL", TypeSQL)

	require.True(t, result.Success)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
	assert.Contains(t, result.EntitiesReferenced, "Contact")
	assert.Contains(t, result.EntitiesReferenced, "Account")
}

func TestValidate_MissingSelect(t *testing.T) {
	result := Validate("FROM [Contact]", TypeSQL)

	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "Missing required keyword: SELECT")
}

func TestValidate_UnbalancedBrackets(t *testing.T) {
	result := Validate("SELECT Id FROM [Contact WHERE (Id = 1", TypeSQL)

	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "Unbalanced square brackets")
	assert.Contains(t, result.Errors, "Unbalanced parentheses")
}

func TestValidate_Typos(t *testing.T) {
	result := Validate("slect Id frmo [Contact]", TypeSQL)

	assert.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "Possible typo: 'slect' should be 'SELECT'")
	assert.Contains(t, result.Errors, "Possible typo: 'frmo' should be 'FROM'")
}

func TestValidate_DestructiveWarnings(t *testing.T) {
	result := Validate("SELECT 1; DROP TABLE [Contact]", TypeSQL)

	assert.True(t, result.IsValid)
	assert.Contains(t, result.Warnings, "Query contains destructive operation - use with caution!")
}

func TestValidate_UpdateWithoutWhere(t *testing.T) {
	result := Validate("SELECT 1; UPDATE Contact SET Name = 'x'", TypeSQL)

	assert.Contains(t, result.Warnings, "UPDATE without WHERE will affect all rows!")
}

func TestValidate_ODataPathWarning(t *testing.T) {
	result := Validate("/api/ContactList?$top=5", TypeOData)

	require.True(t, result.Success)
	assert.Contains(t, result.Warnings, "OData URL should include /odata/ path and Collection suffix")
}

func TestValidate_ODataParamFormat(t *testing.T) {
	result := Validate("/0/odata/ContactCollection?$select", TypeOData)

	assert.Contains(t, result.Warnings, "$select should be followed by = and value")
}

func TestValidate_SummaryCounts(t *testing.T) {
	result := Validate("slect Id frmo [Contact", TypeSQL)

	assert.Equal(t, len(result.Errors), result.Summary.ErrorCount)
	assert.Equal(t, len(result.Warnings), result.Summary.WarningCount)
	assert.Equal(t, len(result.EntitiesReferenced), result.Summary.EntitiesFound)
	assert.False(t, result.Summary.IsValid)
}
