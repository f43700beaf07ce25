package crmcrew

import (
	"testing"

	"github.com/moolen/crewline/internal/agent/multiagent/metricsexpert"
	"github.com/moolen/crewline/internal/agent/multiagent/querybuilder"
	"github.com/moolen/crewline/internal/agent/multiagent/schemaanalyst"
)

func TestRouteQuestion(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     string
	}{
		{
			name:     "schema keyword routes to schema analyst",
			question: "What columns does the Contact table have?",
			want:     schemaanalyst.AgentName,
		},
		{
			name:     "relationship keyword routes to schema analyst",
			question: "Explain the relationship between Account and Opportunity",
			want:     schemaanalyst.AgentName,
		},
		{
			name:     "sql keyword routes to query builder",
			question: "Write SQL to list all open opportunities",
			want:     querybuilder.AgentName,
		},
		{
			name:     "odata keyword routes to query builder",
			question: "How do I fetch accounts via OData?",
			want:     querybuilder.AgentName,
		},
		{
			name:     "kpi keyword routes to metrics expert",
			question: "Which KPIs should a sales manager track?",
			want:     metricsexpert.AgentName,
		},
		{
			name:     "dashboard keyword routes to metrics expert",
			question: "Design a dashboard for the support team",
			want:     metricsexpert.AgentName,
		},
		{
			name:     "schema wins over query",
			question: "Which table should my SQL query join on?",
			want:     schemaanalyst.AgentName,
		},
		{
			name:     "query wins over metrics",
			question: "Build a SQL query for the win rate metric",
			want:     querybuilder.AgentName,
		},
		{
			name:     "no keyword defaults to schema analyst",
			question: "Tell me about leads",
			want:     schemaanalyst.AgentName,
		},
		{
			name:     "matching is case insensitive",
			question: "SHOW ME THE SCHEMA",
			want:     schemaanalyst.AgentName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RouteQuestion(tt.question); got != tt.want {
				t.Errorf("RouteQuestion(%q) = %s, want %s", tt.question, got, tt.want)
			}
		})
	}
}
