package crmcrew

import (
	"strings"
	"testing"

	"github.com/moolen/crewline/internal/agent/multiagent/dataarchitect"
	"github.com/moolen/crewline/internal/agent/multiagent/metricsexpert"
	"github.com/moolen/crewline/internal/agent/multiagent/querybuilder"
	"github.com/moolen/crewline/internal/agent/multiagent/schemaanalyst"
	"github.com/moolen/crewline/internal/agent/multiagent/types"
)

func assertTask(t *testing.T, task types.Task, agent, operation string, contains ...string) {
	t.Helper()
	if task.Agent != agent {
		t.Errorf("expected agent %s, got %s", agent, task.Agent)
	}
	if task.Operation != operation {
		t.Errorf("expected operation %s, got %s", operation, task.Operation)
	}
	for _, want := range contains {
		if !strings.Contains(task.Prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestExploreEntityTask(t *testing.T) {
	task := ExploreEntityTask("Opportunity")
	assertTask(t, task, schemaanalyst.AgentName, "explore_entity",
		"Opportunity", "Foreign key relationships", "column catalog")
}

func TestAnalyzeRelationshipsTask(t *testing.T) {
	task := AnalyzeRelationshipsTask("Contact", "Account")
	assertTask(t, task, schemaanalyst.AgentName, "analyze_relationships",
		"Contact", "Account", "Cardinality")

	// without a target the prompt covers all related entities
	task = AnalyzeRelationshipsTask("Contact", "")
	if !strings.Contains(task.Prompt, "all related entities") {
		t.Error("expected all-related-entities clause for empty target")
	}
}

func TestSchemaOverviewTask(t *testing.T) {
	task := SchemaOverviewTask()
	assertTask(t, task, schemaanalyst.AgentName, "schema_overview",
		"Core entities", "lookup tables")
}

func TestCompareEntitiesTask(t *testing.T) {
	task := CompareEntitiesTask("Lead", "Opportunity")
	assertTask(t, task, schemaanalyst.AgentName, "compare_entities",
		"Lead", "Opportunity", "similarities and differences")
}

func TestBuildQueryTask(t *testing.T) {
	task := BuildQueryTask("show all open opportunities by account")
	assertTask(t, task, querybuilder.AgentName, "build_query",
		"show all open opportunities by account", "SQL and OData")
}

func TestBuildReportQueryTask(t *testing.T) {
	task := BuildReportQueryTask("monthly sales summary", "Opportunity, Account", "last quarter")
	assertTask(t, task, querybuilder.AgentName, "build_report_query",
		"monthly sales summary", "Opportunity, Account", "TIME RANGE: last quarter")

	task = BuildReportQueryTask("monthly sales summary", "Opportunity", "")
	if strings.Contains(task.Prompt, "TIME RANGE") {
		t.Error("expected no time range clause when empty")
	}
}

func TestOptimizeQueryTask_DefaultType(t *testing.T) {
	task := OptimizeQueryTask("SELECT * FROM Contact", "")
	assertTask(t, task, querybuilder.AgentName, "optimize_query",
		"sql query", "SELECT * FROM Contact")
}

func TestCalculateMetricTask(t *testing.T) {
	task := CalculateMetricTask("win rate", "last_quarter", "owner")
	assertTask(t, task, metricsexpert.AgentName, "calculate_metric",
		"win rate", "last_quarter", "DIMENSIONS: owner")

	task = CalculateMetricTask("win rate", "last_month", "")
	if strings.Contains(task.Prompt, "DIMENSIONS") {
		t.Error("expected no dimensions clause when empty")
	}
}

func TestDefineKPIsTask(t *testing.T) {
	task := DefineKPIsTask("improve sales conversion", "B2B pipeline")
	assertTask(t, task, metricsexpert.AgentName, "define_kpis",
		"improve sales conversion", "B2B pipeline", "Leading indicators")
}

func TestPipelineAnalysisTask_DefaultDepth(t *testing.T) {
	task := PipelineAnalysisTask("")
	assertTask(t, task, metricsexpert.AgentName, "pipeline_analysis",
		"standard analysis", "conversion rates")
}

func TestGenerateERDTask(t *testing.T) {
	task := GenerateERDTask("Contact,Account", true)
	assertTask(t, task, schemaanalyst.AgentName, "generate_erd",
		"Contact,Account", "with column details")

	task = GenerateERDTask("Contact", false)
	if !strings.Contains(task.Prompt, "entity names only") {
		t.Error("expected entity-names-only clause")
	}
}

func TestIntegrationGuideTask(t *testing.T) {
	task := IntegrationGuideTask("Salesforce", "Contact, Account")
	assertTask(t, task, dataarchitect.AgentName, "integration_guide",
		"Salesforce", "Contact, Account", "Field mapping")
}

func TestComprehensiveEntityAnalysisTask(t *testing.T) {
	task := ComprehensiveEntityAnalysisTask("Case")
	assertTask(t, task, dataarchitect.AgentName, "comprehensive_entity_analysis",
		"Case", "Architectural assessment")
}

func TestAskTask_RoutesByKeyword(t *testing.T) {
	tests := []struct {
		question string
		agent    string
	}{
		{"what tables store contact data", schemaanalyst.AgentName},
		{"write a sql query for opportunities", querybuilder.AgentName},
		{"which kpi measures churn", metricsexpert.AgentName},
		{"something unrelated", schemaanalyst.AgentName},
	}

	for _, tt := range tests {
		task := AskTask(tt.question)
		if task.Agent != tt.agent {
			t.Errorf("AskTask(%q) agent = %s, want %s", tt.question, task.Agent, tt.agent)
		}
		if task.Operation != "ask" {
			t.Errorf("AskTask(%q) operation = %s, want ask", tt.question, task.Operation)
		}
		if !strings.Contains(task.Prompt, tt.question) {
			t.Errorf("AskTask(%q) prompt missing the question", tt.question)
		}
	}
}
