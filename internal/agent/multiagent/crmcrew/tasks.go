package crmcrew

import (
	"fmt"

	"github.com/moolen/crewline/internal/agent/multiagent/dataarchitect"
	"github.com/moolen/crewline/internal/agent/multiagent/metricsexpert"
	"github.com/moolen/crewline/internal/agent/multiagent/querybuilder"
	"github.com/moolen/crewline/internal/agent/multiagent/schemaanalyst"
	"github.com/moolen/crewline/internal/agent/multiagent/types"
)

// Task prompt factories for the CRM crew. Each factory builds the full task
// description for one operation and names the specialist agent that should
// execute it. The prompts are deterministic; only the LLM run is not.

// ExploreEntityTask analyzes the schema of a single entity.
func ExploreEntityTask(entityName string) types.Task {
	return types.Task{
		Agent:     schemaanalyst.AgentName,
		Operation: "explore_entity",
		Prompt: fmt.Sprintf(`Thoroughly explore and analyze the schema for the CRM entity: %s

Your analysis should include:
1. Entity description and business purpose
2. Table name and physical structure
3. All key columns with their data types and purposes
4. Foreign key relationships to other entities
5. Common use cases for this entity
6. Best practices for querying this entity

Use your schema exploration tools to gather the information. Present the
findings in a format useful for data architects and developers.

Expected output: an entity analysis report with an entity overview
(name, purpose, table), column catalog, relationship map, usage patterns,
and sample queries for common operations.`, entityName),
	}
}

// AnalyzeRelationshipsTask maps how entities connect. An empty target
// analyzes all relationships of the source.
func AnalyzeRelationshipsTask(sourceEntity, targetEntity string) types.Task {
	targetClause := "all related entities"
	if targetEntity != "" {
		targetClause = targetEntity
	}

	return types.Task{
		Agent:     schemaanalyst.AgentName,
		Operation: "analyze_relationships",
		Prompt: fmt.Sprintf(`Analyze the relationships between %s and %s in the CRM schema.

Your analysis should cover:
1. Direct foreign key relationships
2. Multi-hop join paths between the entities
3. Lookup references
4. Cardinality of each relationship (1:1, 1:N, N:M)
5. Common join patterns used in queries

Consider how these relationships affect query performance, data integrity,
and reporting.

Expected output: a relationship analysis with a text relationship diagram,
relationship details (type, cardinality, columns), join path recommendations,
and query pattern examples.`, sourceEntity, targetClause),
	}
}

// SchemaQuestionTask answers an ad-hoc question about the schema.
func SchemaQuestionTask(question string) types.Task {
	return types.Task{
		Agent:     schemaanalyst.AgentName,
		Operation: "schema_question",
		Prompt: fmt.Sprintf(`Answer the following question about the CRM schema:

QUESTION: %s

Provide a thorough, accurate answer by:
1. Understanding the intent behind the question
2. Using schema exploration tools to find the relevant information
3. Explaining the relevant parts of the schema
4. Providing examples where helpful
5. Noting any caveats or considerations

Expected output: a direct answer, supporting schema details, relevant
examples or queries, and references to related schema elements.`, question),
	}
}

// SchemaOverviewTask produces an orientation document for the whole schema.
func SchemaOverviewTask() types.Task {
	return types.Task{
		Agent:     schemaanalyst.AgentName,
		Operation: "schema_overview",
		Prompt: `Provide a comprehensive overview of the CRM schema.

Your overview should include:
1. Core entities and their purposes (Contact, Account, Opportunity, etc.)
2. Entity categories (master data, transactional, reference, system)
3. Key relationship patterns used throughout the system
4. The role of lookup tables
5. How custom entities extend the base schema
6. Tips for navigating and understanding the schema

This overview should serve as an orientation for anyone new to the CRM
data model.

Expected output: an overview document with an executive summary, core
entity catalog, entity category classification, relationship overview,
and schema navigation tips.`,
	}
}

// CompareEntitiesTask compares two entities side by side.
func CompareEntitiesTask(entity1, entity2 string) types.Task {
	return types.Task{
		Agent:     schemaanalyst.AgentName,
		Operation: "compare_entities",
		Prompt: fmt.Sprintf(`Compare the CRM entities %s and %s.

Your comparison should include:
1. Purpose and business function of each entity
2. Structural similarities and differences
3. Common columns across both entities
4. Unique columns in each entity
5. Relationship patterns for each
6. When to use one vs the other, and how they work together

Expected output: a comparison report with a side-by-side overview,
structural comparison, relationship comparison, and use case guidance.`, entity1, entity2),
	}
}

// BuildQueryTask translates a business question into SQL and OData queries.
func BuildQueryTask(question string) types.Task {
	return types.Task{
		Agent:     querybuilder.AgentName,
		Operation: "build_query",
		Prompt: fmt.Sprintf(`Translate the following business question into an efficient query for CRM data:

QUESTION: %s

Your process should include:
1. Analyze the question to understand data requirements
2. Identify the relevant entities and columns
3. Determine necessary joins and relationships
4. Define appropriate filters and conditions
5. Build both SQL and OData versions of the query
6. Validate the query for correctness
7. Optimize for performance

Expected output: a complete query solution with the interpreted
requirements, entities and columns used, the SQL query, the OData query,
an explanation of the query logic, and performance notes.`, question),
	}
}

// BuildReportQueryTask builds a commented SQL query for a report. An empty
// timeRange omits the time filter requirement.
func BuildReportQueryTask(reportDescription, entities, timeRange string) types.Task {
	timeClause := ""
	if timeRange != "" {
		timeClause = fmt.Sprintf("\nTIME RANGE: %s", timeRange)
	}

	return types.Task{
		Agent:     querybuilder.AgentName,
		Operation: "build_report_query",
		Prompt: fmt.Sprintf(`Build a SQL query for the following report requirement:

REPORT: %s
ENTITIES: %s%s

Your query should:
1. Extract all necessary columns for the report
2. Include proper joins between entities
3. Apply appropriate filters and date ranges
4. Include aggregations and groupings as needed
5. Be formatted for readability with comments explaining each section

Also provide index recommendations and data volume considerations.

Expected output: a report query package with the commented SQL query,
output column descriptions, performance tips, and index recommendations.`, reportDescription, entities, timeClause),
	}
}

// BuildODataQueryTask builds an OData API query for an entity.
func BuildODataQueryTask(entity, requirements string) types.Task {
	return types.Task{
		Agent:     querybuilder.AgentName,
		Operation: "build_odata_query",
		Prompt: fmt.Sprintf(`Build an OData query for accessing %s data via the CRM API.

REQUIREMENTS: %s

Your OData query should include:
1. The proper entity collection URL
2. $select for specific columns
3. $filter for conditions
4. $expand for related entities if needed
5. $top and $skip for pagination

Also provide a curl command for testing, the expected response structure,
and pagination guidance.

Expected output: a complete OData solution with the URL and all
parameters, a curl example, the expected response structure, and a
pagination strategy.`, entity, requirements),
	}
}

// OptimizeQueryTask reviews an existing query for performance.
func OptimizeQueryTask(query, queryType string) types.Task {
	if queryType == "" {
		queryType = "sql"
	}

	return types.Task{
		Agent:     querybuilder.AgentName,
		Operation: "optimize_query",
		Prompt: fmt.Sprintf(`Optimize the following %s query for better performance:

QUERY:
%s

Your optimization should address:
1. Query structure efficiency
2. Join optimization
3. Filter placement and selectivity
4. Column selection (avoid SELECT *)
5. Index utilization
6. Pagination

Provide both the optimized query and a detailed explanation of the
changes made and their expected impact.

Expected output: an optimization report with the identified issues, the
optimized query, the changes made with explanations, and index
recommendations.`, queryType, query),
	}
}

// DefineKPIsTask defines KPIs for a business goal.
func DefineKPIsTask(businessGoal, context string) types.Task {
	return types.Task{
		Agent:     metricsexpert.AgentName,
		Operation: "define_kpis",
		Prompt: fmt.Sprintf(`Define Key Performance Indicators (KPIs) for the following business goal:

BUSINESS GOAL: %s
CONTEXT: %s

Your KPI definition should include:
1. Primary KPIs that directly measure the goal
2. Supporting KPIs that provide context
3. Leading indicators (predictive) and lagging indicators (outcome)
4. For each KPI: definition, formula, data sources in the CRM, SQL
   calculation, recommended targets, measurement frequency, and
   visualization type

Check the KPI library first and reuse existing metrics where they fit.
Ensure every KPI can be calculated from available CRM data.

Expected output: a KPI definition document with primary and supporting
KPIs, each fully specified, plus an implementation roadmap and dashboard
recommendations.`, businessGoal, context),
	}
}

// CalculateMetricTask generates the calculation for a named metric. An
// empty dimensions omits the breakdown requirement.
func CalculateMetricTask(metricName, timePeriod, dimensions string) types.Task {
	dimensionClause := ""
	if dimensions != "" {
		dimensionClause = fmt.Sprintf("\nDIMENSIONS: %s", dimensions)
	}

	return types.Task{
		Agent:     metricsexpert.AgentName,
		Operation: "calculate_metric",
		Prompt: fmt.Sprintf(`Calculate the following metric from CRM data:

METRIC: %s
TIME PERIOD: %s%s

Your calculation should:
1. Identify the exact metric definition from the KPI library
2. Determine required data sources
3. Build the calculation query with appropriate time filters
4. Add dimensional breakdowns if specified
5. Note any data quality considerations

Expected output: a metric calculation package with the metric
definition, the SQL calculation query, the calculation methodology, and
interpretation guidance.`, metricName, timePeriod, dimensionClause),
	}
}

// RecommendMetricsTask recommends metrics for a role and focus area.
func RecommendMetricsTask(role, focusArea string) types.Task {
	return types.Task{
		Agent:     metricsexpert.AgentName,
		Operation: "recommend_metrics",
		Prompt: fmt.Sprintf(`Recommend key metrics for a %s focused on %s.

Consider:
1. What decisions does this role need to make?
2. What information helps those decisions?
3. What level of detail and time horizon is appropriate?

For each recommended metric explain why it matters for this role, how
often it should be reviewed, and what actions it should trigger. Use the
KPI library to identify relevant metrics.

Expected output: a role-specific recommendation with the top 5-10
metrics, each with definition, rationale, review frequency, and action
triggers, plus a dashboard layout suggestion.`, role, focusArea),
	}
}

// DesignDashboardTask designs a metrics dashboard.
func DesignDashboardTask(purpose, audience string) types.Task {
	return types.Task{
		Agent:     metricsexpert.AgentName,
		Operation: "design_dashboard",
		Prompt: fmt.Sprintf(`Design a metrics dashboard for CRM data:

PURPOSE: %s
AUDIENCE: %s

Your dashboard design should include:
1. Dashboard objectives and the key questions it answers
2. Selected KPIs and metrics
3. Widget layout and visualization types
4. Data refresh frequency appropriate for the audience
5. For each widget: the metric displayed, visualization type, and the
   query that feeds it

Expected output: a dashboard design document with the key questions
answered, widget specifications with queries, filtering options, and an
implementation guide.`, purpose, audience),
	}
}

// PipelineAnalysisTask analyzes sales pipeline health. Depth is one of
// "quick", "standard", or "deep"; empty defaults to standard.
func PipelineAnalysisTask(depth string) types.Task {
	if depth == "" {
		depth = "standard"
	}

	return types.Task{
		Agent:     metricsexpert.AgentName,
		Operation: "pipeline_analysis",
		Prompt: fmt.Sprintf(`Perform a %s analysis of sales pipeline metrics from CRM data.

Your analysis should include:
1. Pipeline value (total, by stage, by owner)
2. Stage conversion rates
3. Average deal size
4. Sales cycle length
5. Win/loss analysis
6. Pipeline coverage ratio

For each metric provide the calculation query, interpretation guidance,
and recommended actions.

Expected output: a pipeline analysis report with an executive summary,
stage-by-stage analysis, risk areas, recommendations, and the data
extraction queries.`, depth),
	}
}

// MetricsQuestionTask answers an ad-hoc question about metrics and KPIs.
func MetricsQuestionTask(question string) types.Task {
	return types.Task{
		Agent:     metricsexpert.AgentName,
		Operation: "metrics_question",
		Prompt: fmt.Sprintf(`Answer the following question about metrics and KPIs in the CRM:

QUESTION: %s

Provide a thorough answer that:
1. Directly addresses the question
2. References relevant KPIs from the library
3. Provides calculation formulas and queries where applicable
4. Notes any caveats or considerations

If the question involves a custom metric, help define it based on the
CRM data model.

Expected output: a direct answer with the relevant KPIs, formulas,
queries, and related metrics to explore.`, question),
	}
}

// GenerateDocumentationTask generates documentation for entities
// ("all" documents the whole schema).
func GenerateDocumentationTask(entities string) types.Task {
	return types.Task{
		Agent:     schemaanalyst.AgentName,
		Operation: "generate_documentation",
		Prompt: fmt.Sprintf(`Generate comprehensive documentation for CRM entities: %s

The documentation should include for each entity:
1. Entity overview and business purpose
2. Database table mapping
3. Complete column reference (name, type, description, constraints)
4. Relationships with other entities
5. Example queries

Use the generate_docs tool and enrich its output where the reader needs
more context. Format the documentation for data architects, report
builders, and integration specialists.

Expected output: complete entity documentation with a table of
contents, entity overview sections, column reference tables, and query
examples.`, entities),
	}
}

// DataDictionaryTask creates a per-column data dictionary for one entity.
func DataDictionaryTask(entity string) types.Task {
	return types.Task{
		Agent:     schemaanalyst.AgentName,
		Operation: "data_dictionary",
		Prompt: fmt.Sprintf(`Create a detailed data dictionary for the CRM entity: %s

The data dictionary should include:
1. Entity metadata (name, table, description)
2. For each column: name, data type, nullability, key indicators,
   referenced table for foreign keys, business definition, and sample values
3. Recommended indexes
4. Audit column documentation

Use the data_dictionary tool as the source of truth.

Expected output: a complete data dictionary with the entity header,
column catalog table, foreign key references, index recommendations, and
business rules.`, entity),
	}
}

// GenerateERDTask generates an entity relationship diagram.
func GenerateERDTask(entities string, includeDetails bool) types.Task {
	detailClause := "entity names only"
	if includeDetails {
		detailClause = "with column details"
	}

	return types.Task{
		Agent:     schemaanalyst.AgentName,
		Operation: "generate_erd",
		Prompt: fmt.Sprintf(`Generate an entity relationship diagram for CRM entities: %s
Format: %s

The ERD should:
1. Show all specified entities and the relationships between them
2. Indicate relationship cardinality
3. Mark primary and foreign keys

Generate the diagram in mermaid, plantuml, and dbml notation using the
generate_erd tool, and include rendering instructions for each format.

Expected output: an ERD package with the diagram code in all three
formats, rendering instructions, and a relationship legend.`, entities, detailClause),
	}
}

// IntegrationGuideTask creates a guide for integrating an external system.
func IntegrationGuideTask(sourceSystem, targetEntities string) types.Task {
	return types.Task{
		Agent:     dataarchitect.AgentName,
		Operation: "integration_guide",
		Prompt: fmt.Sprintf(`Create an integration guide for connecting %s with the CRM.
Target entities: %s

The guide should include:
1. Integration overview and scope
2. Entity details for the target entities
3. Field mapping recommendations
4. OData API endpoints for each entity
5. Sample API requests for CRUD operations
6. Error handling and data synchronization best practices

This should enable a developer to implement the integration without deep
CRM knowledge.

Expected output: an integration guide with the entity schema reference,
field mapping table, API endpoint catalog, sample requests, and sync
strategy recommendations.`, sourceSystem, targetEntities),
	}
}

// ComprehensiveEntityAnalysisTask runs the full analysis of one entity:
// schema, relationships, queries, and documentation combined.
func ComprehensiveEntityAnalysisTask(entity string) types.Task {
	return types.Task{
		Agent:     dataarchitect.AgentName,
		Operation: "comprehensive_entity_analysis",
		Prompt: fmt.Sprintf(`Perform a comprehensive analysis of the CRM entity: %s

Combine all views of the entity:
1. Schema structure: columns, types, and categorization
2. Relationships: direct connections and common join paths
3. Query patterns: representative SQL and OData queries for the entity
4. Documentation: a data dictionary summary
5. Architectural assessment: how well the entity serves its purpose and
   where extensions should go

Use the schema, query, and documentation tools to gather each view.

Expected output: a comprehensive entity report with sections for
structure, relationships, query patterns, data dictionary, and
architecture recommendations.`, entity),
	}
}

// AskTask routes an ad-hoc question to the right specialist by keyword
// and builds the matching task prompt.
func AskTask(question string) types.Task {
	switch RouteQuestion(question) {
	case querybuilder.AgentName:
		task := BuildQueryTask(question)
		task.Operation = "ask"
		return task
	case metricsexpert.AgentName:
		task := MetricsQuestionTask(question)
		task.Operation = "ask"
		return task
	default:
		task := SchemaQuestionTask(question)
		task.Operation = "ask"
		return task
	}
}
