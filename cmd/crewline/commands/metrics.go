package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/moolen/crewline/internal/crm/metrics"
)

var (
	metricsContext      string
	metricsTargetEntity string
	metricsPeriod       string
	metricsGroupBy      string
	metricsCategory     string
	metricsSearchTerm   string
	metricsAudience     string
	metricsQuestions    string
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Work with the CRM metric library without an LLM",
	Long:  `Deterministic metric tools: the built-in metric library, custom metric definitions, calculation templates, and dashboard design.`,
}

var metricsDefineCmd = &cobra.Command{
	Use:   "define <name>",
	Short: "Define a custom metric with formula and data requirements",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result := metrics.Define(args[0], metricsContext, metricsTargetEntity)
		HandleError(printYAML(result), "Failed to print result")
	},
}

var metricsCalculateCmd = &cobra.Command{
	Use:   "calculate <metric-id>",
	Short: "Produce the calculation template for a library metric",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result := metrics.Calculate(args[0], metricsPeriod, metricsGroupBy, time.Now())
		HandleError(printYAML(result), "Failed to print result")
	},
}

var metricsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the metric library by category or search term",
	Run: func(cmd *cobra.Command, args []string) {
		result := metrics.Browse(metricsCategory, metricsSearchTerm)
		HandleError(printYAML(result), "Failed to print result")
	},
}

var metricsDashboardCmd = &cobra.Command{
	Use:   "dashboard <purpose>",
	Short: "Design a dashboard layout for a purpose and audience",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result := metrics.DesignDashboard(args[0], metricsAudience, metricsQuestions)
		HandleError(printYAML(result), "Failed to print result")
	},
}

func init() {
	metricsDefineCmd.Flags().StringVar(&metricsContext, "context", "",
		"Business context the metric serves")
	metricsDefineCmd.Flags().StringVar(&metricsTargetEntity, "entity", "",
		"Primary entity the metric is computed from")

	metricsCalculateCmd.Flags().StringVar(&metricsPeriod, "period", "",
		"Time period (e.g. last_month, last_quarter, ytd)")
	metricsCalculateCmd.Flags().StringVar(&metricsGroupBy, "group-by", "",
		"Dimension to group the calculation by")

	metricsListCmd.Flags().StringVar(&metricsCategory, "category", "",
		"Restrict to one metric category")
	metricsListCmd.Flags().StringVar(&metricsSearchTerm, "search", "",
		"Filter metrics by search term")

	metricsDashboardCmd.Flags().StringVar(&metricsAudience, "audience", "",
		"Intended audience (e.g. executives, sales managers)")
	metricsDashboardCmd.Flags().StringVar(&metricsQuestions, "questions", "",
		"Key questions the dashboard should answer")

	metricsCmd.AddCommand(metricsDefineCmd)
	metricsCmd.AddCommand(metricsCalculateCmd)
	metricsCmd.AddCommand(metricsListCmd)
	metricsCmd.AddCommand(metricsDashboardCmd)
	rootCmd.AddCommand(metricsCmd)
}
