package metricsexpert

// toolNames lists the registry tools available to the Metrics Expert Agent.
// build_sql is included for custom extractions the KPI library does not cover.
var toolNames = []string{
	"define_metric",
	"calculate_metric",
	"browse_kpis",
	"design_dashboard",
	"build_sql",
}
