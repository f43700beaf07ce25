package crmcrew

import (
	"strings"

	"github.com/moolen/crewline/internal/agent/multiagent/metricsexpert"
	"github.com/moolen/crewline/internal/agent/multiagent/querybuilder"
	"github.com/moolen/crewline/internal/agent/multiagent/schemaanalyst"
)

// Keyword tables for RouteQuestion, checked in order. Schema wins over
// query wins over metrics; anything unmatched goes to the schema analyst.
var (
	schemaKeywords  = []string{"schema", "table", "column", "entity", "relationship", "structure"}
	queryKeywords   = []string{"query", "sql", "odata", "select", "join", "extract"}
	metricsKeywords = []string{"kpi", "metric", "measure", "dashboard", "report", "analytics"}
)

// RouteQuestion picks the specialist agent for an ad-hoc question by
// keyword matching on the question text.
func RouteQuestion(question string) string {
	lower := strings.ToLower(question)

	if containsAny(lower, schemaKeywords) {
		return schemaanalyst.AgentName
	}
	if containsAny(lower, queryKeywords) {
		return querybuilder.AgentName
	}
	if containsAny(lower, metricsKeywords) {
		return metricsexpert.AgentName
	}
	return schemaanalyst.AgentName
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
