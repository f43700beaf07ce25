package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLibraryCategories(t *testing.T) {
	assert.Equal(t, []string{"sales", "marketing", "customer_service", "customer_health", "activity_metrics"}, Categories())

	total := 0
	for _, c := range Library {
		total += len(c.Metrics)
	}
	assert.Equal(t, 29, total)
}

func TestLookupMetricCaseInsensitive(t *testing.T) {
	metric, ok := LookupMetric("SALES.Win_Rate")
	require.True(t, ok)
	assert.Equal(t, "sales.win_rate", metric.ID)
	assert.Equal(t, "Win Rate", metric.Name)
	assert.Equal(t, "percentage", metric.Unit)

	_, ok = LookupMetric("sales.does_not_exist")
	assert.False(t, ok)
	_, ok = LookupMetric("no-dot")
	assert.False(t, ok)
}

func TestCalculateWinRate(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	result := Calculate("sales.win_rate", "last_quarter", "OwnerId", now)

	require.True(t, result.Success)
	assert.Empty(t, result.Error)
	assert.Equal(t, "Win Rate", result.Metric.Name)
	assert.Contains(t, result.Calculation.SQLQuery, "WinRate")
	assert.Contains(t, result.Calculation.SQLQuery, "DATEADD(QUARTER, -1, GETDATE())")
	assert.Equal(t, "CreatedOn >= DATEADD(QUARTER, -1, GETDATE())", result.Calculation.DateFilter)
	assert.Equal(t, "OwnerId", result.Calculation.GroupBy)
	assert.Equal(t, []string{"Opportunity", "OpportunityStage"}, result.EntitiesRequired)
	require.NotEmpty(t, result.Calculation.PeriodStart)
	start, err := time.Parse("2006-01-02", result.Calculation.PeriodStart)
	require.NoError(t, err)
	assert.True(t, start.Before(now))
}

func TestCalculateDefaultPeriod(t *testing.T) {
	result := Calculate("marketing.lead_volume", "", "", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))

	require.True(t, result.Success)
	assert.Equal(t, DefaultPeriod, result.Calculation.TimePeriod)
	assert.Equal(t, "CreatedOn >= DATEADD(MONTH, -1, GETDATE())", result.Calculation.DateFilter)
	assert.Contains(t, result.Calculation.SQLQuery, "SELECT COUNT(*) AS LeadVolume")
	assert.Contains(t, result.Calculation.SQLQuery, "FROM [Lead]")
}

func TestCalculateTemplates(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	pipeline := Calculate("sales.pipeline_value", "today", "", now)
	require.True(t, pipeline.Success)
	assert.Contains(t, pipeline.Calculation.SQLQuery, "SUM(o.Amount) AS PipelineValue")
	assert.Contains(t, pipeline.Calculation.SQLQuery, "s.IsFinal = 0")

	cycle := Calculate("sales.sales_cycle_length", "ytd", "", now)
	require.True(t, cycle.Success)
	assert.Contains(t, cycle.Calculation.SQLQuery, "DATEDIFF(day, CreatedOn, CloseDate)")
	assert.Contains(t, cycle.Calculation.SQLQuery, "AS SalesCycleLength")

	resolution := Calculate("customer_service.average_resolution_time", "last_week", "", now)
	require.True(t, resolution.Success)
	assert.Contains(t, resolution.Calculation.SQLQuery, "DATEDIFF(hour,")
	assert.Contains(t, resolution.Calculation.SQLQuery, "FROM [Case]")
}

func TestCalculateUnknownCategory(t *testing.T) {
	result := Calculate("finance.revenue", "last_month", "", time.Now())

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "Unknown category: finance")
	assert.Equal(t, Categories(), result.AvailableCategories)
}

func TestCalculateUnknownMetric(t *testing.T) {
	result := Calculate("sales.revenue_per_click", "last_month", "", time.Now())

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "Unknown metric: revenue_per_click")
	assert.Len(t, result.AvailableMetrics, 8)
	assert.Contains(t, result.AvailableMetrics, "win_rate")
}

func TestCalculateInvalidFormat(t *testing.T) {
	result := Calculate("winrate", "last_month", "", time.Now())

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "category.metric_name")
	assert.Equal(t, Categories(), result.AvailableCategories)
}

func TestPeriodStart(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	today, ok := PeriodStart("today", now)
	require.True(t, ok)
	assert.Equal(t, now.Year(), today.Year())
	assert.Equal(t, now.Month(), today.Month())
	assert.Equal(t, now.Day(), today.Day())

	lastMonth, ok := PeriodStart("last_month", now)
	require.True(t, ok)
	assert.True(t, lastMonth.Before(now))

	// Unknown periods fall back to the default.
	fallback, ok := PeriodStart("whenever", now)
	require.True(t, ok)
	assert.Equal(t, lastMonth, fallback)
}

func TestDefineCustomMetric(t *testing.T) {
	result := Define("Conversion Rate", "Track how well we convert", "Lead")

	require.True(t, result.Success)
	assert.Equal(t, "Conversion Rate", result.MetricRequest)
	require.Len(t, result.SimilarExistingKPIs, 1)
	assert.Equal(t, "sales.lead_conversion_rate", result.SimilarExistingKPIs[0].ID)

	def := result.CustomDefinition
	assert.Equal(t, "(COUNT(matching_records) / COUNT(total_records)) * 100", def.SuggestedFormula)
	assert.Equal(t, "monthly", def.CalculationFrequency)
	assert.Equal(t, "gauge", def.VisualizationType)
	assert.Equal(t, "Lead", def.DataRequirements.PrimaryEntity)
	assert.Len(t, result.ImplementationSteps, 5)
}

func TestDefineDataRequirementKeywords(t *testing.T) {
	result := Define("Pipeline health by stage", "", "")

	req := result.CustomDefinition.DataRequirements
	assert.Equal(t, "Opportunity", req.PrimaryEntity)
	assert.Contains(t, req.RequiredColumns, "Amount")
	assert.Contains(t, req.RelatedEntities, "OpportunityStage")
	assert.Equal(t, "bar_chart", result.CustomDefinition.VisualizationType)
}

func TestDefineNoTargetEntity(t *testing.T) {
	result := Define("Total revenue", "", "")

	def := result.CustomDefinition
	assert.Equal(t, "SUM(column_name)", def.SuggestedFormula)
	assert.Equal(t, "To be determined", def.DataRequirements.PrimaryEntity)
	assert.Equal(t, "single_value_card", def.VisualizationType)
}

func TestBrowseByCategory(t *testing.T) {
	result := Browse("sales", "")

	require.True(t, result.Success)
	assert.Len(t, result.KPIs, 8)
	assert.Equal(t, []string{"sales"}, result.Summary.CategoriesSearched)
	assert.Equal(t, 8, result.Summary.TotalKPIsFound)
	for _, kpi := range result.KPIs {
		assert.True(t, strings.HasPrefix(kpi.ID, "sales."))
	}
}

func TestBrowseBySearchTerm(t *testing.T) {
	result := Browse("", "lead")

	require.True(t, result.Success)
	assert.Len(t, result.KPIs, 5)
	assert.Equal(t, Categories(), result.Summary.CategoriesSearched)
}

func TestBrowseUnknownCategory(t *testing.T) {
	result := Browse("finance", "")

	require.True(t, result.Success)
	assert.Empty(t, result.KPIs)
	assert.Empty(t, result.Summary.CategoriesSearched)
	assert.Equal(t, Categories(), result.Summary.AvailableCategories)
}

func TestDesignDashboardSales(t *testing.T) {
	result := DesignDashboard("Sales performance", "executive", "How is the pipeline trending?")

	require.True(t, result.Success)
	assert.Equal(t, []string{
		"sales.pipeline_value",
		"sales.win_rate",
		"sales.average_deal_size",
		"sales.sales_cycle_length",
		"sales.revenue_by_rep",
	}, result.RecommendedKPIs)

	assert.Equal(t, "high-level summary", result.Design.LayoutStyle)
	assert.Equal(t, 6, result.Design.RecommendedWidgetCount)
	assert.Equal(t, "daily", result.Design.RefreshFrequency)

	require.Len(t, result.WidgetRecommendations, 5)
	assert.Equal(t, "scorecard", result.WidgetRecommendations[0].WidgetType)
	assert.Equal(t, "gauge", result.WidgetRecommendations[1].WidgetType)
	assert.Equal(t, "trend_line", result.WidgetRecommendations[3].WidgetType)
	assert.Equal(t, "medium", result.WidgetRecommendations[3].Size)
	assert.False(t, result.WidgetRecommendations[3].ShowTrend)

	assert.Equal(t, []string{"Opportunity", "OpportunityStage", "Contact"}, result.DataRequirements.EntitiesNeeded)
	assert.Equal(t, "low", result.DataRequirements.EstimatedQueryComplexity)
}

func TestDesignDashboardExecutiveOverride(t *testing.T) {
	result := DesignDashboard("Executive overview of sales and service", "cfo", "")

	assert.Contains(t, result.RecommendedKPIs, "customer_health.revenue_retention")
	assert.Len(t, result.RecommendedKPIs, 5)
	// Unknown audiences get the manager layout.
	assert.Equal(t, "operational overview", result.Design.LayoutStyle)
	assert.Equal(t, "hourly", result.Design.RefreshFrequency)
}

func TestDesignDashboardCountWidgetsAlternate(t *testing.T) {
	result := DesignDashboard("Marketing funnel", "manager", "")

	require.Len(t, result.WidgetRecommendations, 4)
	assert.Equal(t, "bar_chart", result.WidgetRecommendations[0].WidgetType)
	assert.Equal(t, "gauge", result.WidgetRecommendations[1].WidgetType)
	assert.Equal(t, "bar_chart", result.WidgetRecommendations[2].WidgetType)
	assert.Equal(t, "scorecard", result.WidgetRecommendations[3].WidgetType)
}

func TestDesignDashboardCombinedPurposeCap(t *testing.T) {
	result := DesignDashboard("Sales and marketing review", "analyst", "")

	assert.Len(t, result.RecommendedKPIs, 8)
	assert.Len(t, result.WidgetRecommendations, 6)
	assert.Equal(t, "medium", result.DataRequirements.EstimatedQueryComplexity)
}

func TestDesignDashboardNoKeywordMatch(t *testing.T) {
	result := DesignDashboard("Warehouse logistics", "manager", "")

	require.True(t, result.Success)
	assert.Empty(t, result.RecommendedKPIs)
	assert.Empty(t, result.WidgetRecommendations)
	assert.Equal(t, "low", result.DataRequirements.EstimatedQueryComplexity)
}
