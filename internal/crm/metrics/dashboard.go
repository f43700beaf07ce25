package metrics

import "strings"

// maxDashboardKPIs caps the KPIs recommended per dashboard; the widget
// layout uses the first 6.
const (
	maxDashboardKPIs   = 8
	maxLayoutWidgets   = 6
	defaultAudienceKey = "manager"
)

// AudienceConfig drives the layout style for one audience.
type AudienceConfig struct {
	Style            string   `json:"style"`
	MaxWidgets       int      `json:"max_widgets"`
	WidgetTypes      []string `json:"widget_types"`
	RefreshFrequency string   `json:"refresh_frequency"`
}

var audienceConfigs = map[string]AudienceConfig{
	"executive": {
		Style:            "high-level summary",
		MaxWidgets:       6,
		WidgetTypes:      []string{"scorecard", "trend_line", "gauge"},
		RefreshFrequency: "daily",
	},
	"manager": {
		Style:            "operational overview",
		MaxWidgets:       10,
		WidgetTypes:      []string{"scorecard", "bar_chart", "table", "trend_line"},
		RefreshFrequency: "hourly",
	},
	"analyst": {
		Style:            "detailed analysis",
		MaxWidgets:       15,
		WidgetTypes:      []string{"table", "pivot", "scatter", "heatmap", "drill-down"},
		RefreshFrequency: "real-time",
	},
	"rep": {
		Style:            "personal performance",
		MaxWidgets:       8,
		WidgetTypes:      []string{"scorecard", "progress_bar", "activity_feed", "leaderboard"},
		RefreshFrequency: "real-time",
	},
}

// DashboardLayout summarizes the recommended layout.
type DashboardLayout struct {
	LayoutStyle            string   `json:"layout_style"`
	RecommendedWidgetCount int      `json:"recommended_widget_count"`
	WidgetTypes            []string `json:"widget_types"`
	RefreshFrequency       string   `json:"refresh_frequency"`
}

// Widget is one positioned widget recommendation.
type Widget struct {
	Position   int    `json:"position"`
	KPIID      string `json:"kpi_id"`
	KPIName    string `json:"kpi_name"`
	WidgetType string `json:"widget_type"`
	Size       string `json:"size"`
	ShowTrend  bool   `json:"show_trend"`
}

// DashboardData names what the dashboard needs from the schema.
type DashboardData struct {
	EntitiesNeeded           []string `json:"entities_needed"`
	EstimatedQueryComplexity string   `json:"estimated_query_complexity"`
}

// DashboardResult is the output of DesignDashboard.
type DashboardResult struct {
	Success               bool            `json:"success"`
	DashboardPurpose      string          `json:"dashboard_purpose"`
	TargetAudience        string          `json:"target_audience"`
	KeyQuestions          string          `json:"key_questions"`
	Design                DashboardLayout `json:"design"`
	RecommendedKPIs       []string        `json:"recommended_kpis"`
	WidgetRecommendations []Widget        `json:"widget_recommendations"`
	ImplementationNotes   []string        `json:"implementation_notes"`
	DataRequirements      DashboardData   `json:"data_requirements"`
}

// DesignDashboard recommends KPIs, layout, and widgets for a dashboard
// based on purpose keywords and the target audience.
func DesignDashboard(purpose, audience, keyQuestions string) DashboardResult {
	purposeLower := strings.ToLower(purpose)

	var recommended []string
	if strings.Contains(purposeLower, "sales") || strings.Contains(purposeLower, "revenue") {
		recommended = append(recommended,
			"sales.pipeline_value",
			"sales.win_rate",
			"sales.average_deal_size",
			"sales.sales_cycle_length",
			"sales.revenue_by_rep")
	}
	if strings.Contains(purposeLower, "marketing") || strings.Contains(purposeLower, "lead") {
		recommended = append(recommended,
			"marketing.lead_volume",
			"sales.lead_conversion_rate",
			"marketing.lead_source_effectiveness",
			"marketing.marketing_qualified_leads")
	}
	if strings.Contains(purposeLower, "service") || strings.Contains(purposeLower, "support") ||
		strings.Contains(purposeLower, "case") {
		recommended = append(recommended,
			"customer_service.case_volume",
			"customer_service.average_resolution_time",
			"customer_service.customer_satisfaction",
			"customer_service.sla_compliance")
	}
	// Executive overview replaces topical picks with a cross-area set.
	if strings.Contains(purposeLower, "executive") || strings.Contains(purposeLower, "overview") {
		recommended = []string{
			"sales.pipeline_value",
			"sales.win_rate",
			"sales.lead_conversion_rate",
			"customer_service.customer_satisfaction",
			"customer_health.revenue_retention",
		}
	}
	if len(recommended) > maxDashboardKPIs {
		recommended = recommended[:maxDashboardKPIs]
	}
	if recommended == nil {
		recommended = []string{}
	}

	config, ok := audienceConfigs[strings.ToLower(audience)]
	if !ok {
		config = audienceConfigs[defaultAudienceKey]
	}

	layoutKPIs := recommended
	if len(layoutKPIs) > maxLayoutWidgets {
		layoutKPIs = layoutKPIs[:maxLayoutWidgets]
	}

	return DashboardResult{
		Success:               true,
		DashboardPurpose:      purpose,
		TargetAudience:        audience,
		KeyQuestions:          keyQuestions,
		Design: DashboardLayout{
			LayoutStyle:            config.Style,
			RecommendedWidgetCount: config.MaxWidgets,
			WidgetTypes:            config.WidgetTypes,
			RefreshFrequency:       config.RefreshFrequency,
		},
		RecommendedKPIs:       recommended,
		WidgetRecommendations: widgetLayout(layoutKPIs),
		ImplementationNotes: []string{
			"Use the CRM's built-in dashboard designer for native integration",
			"Consider external BI tools (Power BI, Tableau) for advanced analytics",
			"Implement caching for complex calculations",
			"Set up scheduled data refresh for consistency",
		},
		DataRequirements: DashboardData{
			EntitiesNeeded:           entitiesFor(recommended),
			EstimatedQueryComplexity: complexityFor(recommended),
		},
	}
}

func widgetLayout(kpiIDs []string) []Widget {
	widgets := []Widget{}
	for i, id := range kpiIDs {
		metric, ok := LookupMetric(id)
		if !ok {
			continue
		}
		var widgetType string
		switch metric.Unit {
		case "percentage":
			widgetType = "gauge"
		case "currency":
			widgetType = "scorecard"
		case "count":
			if i%2 == 0 {
				widgetType = "bar_chart"
			} else {
				widgetType = "scorecard"
			}
		default:
			widgetType = "trend_line"
		}
		size := "small"
		if widgetType == "bar_chart" || widgetType == "trend_line" {
			size = "medium"
		}
		showTrend := metric.Unit == "percentage" || metric.Unit == "currency" || metric.Unit == "count"
		widgets = append(widgets, Widget{
			Position:   i + 1,
			KPIID:      id,
			KPIName:    metric.Name,
			WidgetType: widgetType,
			Size:       size,
			ShowTrend:  showTrend,
		})
	}
	return widgets
}

func entitiesFor(kpiIDs []string) []string {
	seen := make(map[string]bool)
	entities := []string{}
	for _, id := range kpiIDs {
		metric, ok := LookupMetric(id)
		if !ok {
			continue
		}
		for _, entity := range metric.Entities {
			if !seen[entity] {
				seen[entity] = true
				entities = append(entities, entity)
			}
		}
	}
	return entities
}

func complexityFor(kpiIDs []string) string {
	if len(kpiIDs) > 5 {
		return "medium"
	}
	return "low"
}
