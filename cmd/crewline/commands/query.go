package commands

import (
	"github.com/spf13/cobra"

	"github.com/moolen/crewline/internal/crm/query"
)

var (
	querySQLEntities     string
	querySQLFilters      string
	querySQLAggregations string
	querySQLGrouping     string
	querySQLOrdering     string

	queryODataSelect string
	queryODataFilter string
	queryODataExpand string
	queryODataTop    int

	queryType string
	queryGoal string
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Build and check CRM queries without an LLM",
	Long:  `Deterministic query tools: SQL generation from a business objective, OData URL assembly, optimization checks, and syntax validation.`,
}

var queryBuildCmd = &cobra.Command{
	Use:   "build <objective>",
	Short: "Build a SQL query from a business objective",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result := query.BuildSQL(query.SQLRequest{
			Objective:    args[0],
			Entities:     querySQLEntities,
			Filters:      querySQLFilters,
			Aggregations: querySQLAggregations,
			Grouping:     querySQLGrouping,
			Ordering:     querySQLOrdering,
		})
		HandleError(printYAML(result), "Failed to print result")
	},
}

var queryReportCmd = &cobra.Command{
	Use:   "report <description>",
	Short: "Build an aggregated report query from a description",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		aggregations := querySQLAggregations
		if aggregations == "" {
			aggregations = "count"
		}
		result := query.BuildSQL(query.SQLRequest{
			Objective:    args[0],
			Entities:     querySQLEntities,
			Filters:      querySQLFilters,
			Aggregations: aggregations,
			Grouping:     querySQLGrouping,
			Ordering:     querySQLOrdering,
		})
		HandleError(printYAML(result), "Failed to print result")
	},
}

var queryODataCmd = &cobra.Command{
	Use:   "odata <entity>",
	Short: "Build an OData service URL for an entity",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result := query.BuildOData(query.ODataRequest{
			Entity:           args[0],
			SelectFields:     queryODataSelect,
			FilterExpression: queryODataFilter,
			ExpandRelations:  queryODataExpand,
			Top:              queryODataTop,
		})
		HandleError(printYAML(result), "Failed to print result")
	},
}

var queryOptimizeCmd = &cobra.Command{
	Use:   "optimize <query>",
	Short: "Suggest performance improvements for a query",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result := query.Optimize(args[0], queryType, queryGoal)
		HandleError(printYAML(result), "Failed to print result")
	},
}

var queryValidateCmd = &cobra.Command{
	Use:   "validate <query>",
	Short: "Check a query for syntax problems",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result := query.Validate(args[0], queryType)
		HandleError(printYAML(result), "Failed to print result")
	},
}

func init() {
	queryBuildCmd.Flags().StringVar(&querySQLEntities, "entities", "",
		"Comma-separated entities to query; the first is primary")
	queryBuildCmd.Flags().StringVar(&querySQLFilters, "filters", "",
		"Filter conditions in natural language")
	queryBuildCmd.Flags().StringVar(&querySQLAggregations, "aggregations", "",
		"Aggregations to apply (count, sum, avg)")
	queryBuildCmd.Flags().StringVar(&querySQLGrouping, "grouping", "",
		"Grouping columns")
	queryBuildCmd.Flags().StringVar(&querySQLOrdering, "ordering", "",
		"Sort order description")

	queryReportCmd.Flags().StringVar(&querySQLEntities, "entities", "",
		"Comma-separated entities to report over; the first is primary")
	queryReportCmd.Flags().StringVar(&querySQLFilters, "filters", "",
		"Filter conditions in natural language")
	queryReportCmd.Flags().StringVar(&querySQLAggregations, "aggregations", "",
		"Aggregations to apply (defaults to count)")
	queryReportCmd.Flags().StringVar(&querySQLGrouping, "grouping", "",
		"Grouping columns")
	queryReportCmd.Flags().StringVar(&querySQLOrdering, "ordering", "",
		"Sort order description")

	queryODataCmd.Flags().StringVar(&queryODataSelect, "select", "",
		"Comma-separated fields to return")
	queryODataCmd.Flags().StringVar(&queryODataFilter, "filter", "",
		"Filter expression in natural language")
	queryODataCmd.Flags().StringVar(&queryODataExpand, "expand", "",
		"Related entities to expand")
	queryODataCmd.Flags().IntVar(&queryODataTop, "top", 0,
		"Cap on the number of records (0 uses the default)")

	queryOptimizeCmd.Flags().StringVar(&queryType, "type", "sql",
		"Query type: sql or odata")
	queryOptimizeCmd.Flags().StringVar(&queryGoal, "goal", "",
		"Optimization goal (e.g. speed, readability)")
	queryValidateCmd.Flags().StringVar(&queryType, "type", "sql",
		"Query type: sql or odata")

	queryCmd.AddCommand(queryBuildCmd)
	queryCmd.AddCommand(queryReportCmd)
	queryCmd.AddCommand(queryODataCmd)
	queryCmd.AddCommand(queryOptimizeCmd)
	queryCmd.AddCommand(queryValidateCmd)
	rootCmd.AddCommand(queryCmd)
}
