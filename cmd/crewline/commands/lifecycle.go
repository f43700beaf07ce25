package commands

import (
	"github.com/spf13/cobra"

	"github.com/moolen/crewline/internal/agent/multiagent/lifecyclecrew"
	"github.com/moolen/crewline/internal/agent/multiagent/types"
	"github.com/moolen/crewline/internal/lifecycle"
)

var (
	lcContext      string
	lcCapacity     string
	lcBacklog      string
	lcConstraints  string
	lcTimeline     string
	lcCurrentState string
	lcCriteria     string

	ticketDescription string
	ticketType        string
	ticketPriority    string
	ticketLabels      string
	ticketStatus      string
	ticketLimit       int

	reqFormat         string
	reqValidationType string
	reqTraceDirection string
)

var lifecycleCmd = &cobra.Command{
	Use:   "lifecycle",
	Short: "Run the dev-lifecycle crew",
	Long: `Development lifecycle operations handled by the lifecycle crew: intake,
requirements analysis, sprint and release planning, status reporting, impact
and risk assessment, and quality gates.

The ticket-* and req-* subcommands run the underlying deterministic tools
directly, without an LLM.`,
}

// lifecycleTaskCmd builds a crew subcommand from a task factory.
func lifecycleTaskCmd(use, short string, build func(args []string) types.Task) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCrewTask(types.CrewLifecycle, build(args))
		},
	}
	addCrewTaskFlags(cmd)
	return cmd
}

var ticketCreateCmd = &cobra.Command{
	Use:   "ticket-create <title>",
	Short: "Create a ticket (deterministic, no LLM)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result := lifecycle.CreateTicket(args[0], ticketDescription, ticketType, ticketPriority, ticketLabels)
		HandleError(printYAML(result), "Failed to print result")
	},
}

var ticketSearchCmd = &cobra.Command{
	Use:   "ticket-search <query>",
	Short: "Search tickets by keyword (deterministic, no LLM)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result := lifecycle.SearchTickets(args[0], ticketStatus, ticketLimit)
		HandleError(printYAML(result), "Failed to print result")
	},
}

var ticketUpdateCmd = &cobra.Command{
	Use:   "ticket-update <id> <field> <value>",
	Short: "Update one field of a ticket (deterministic, no LLM)",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		result := lifecycle.UpdateTicket(args[0], args[1], args[2])
		HandleError(printYAML(result), "Failed to print result")
	},
}

var reqParseCmd = &cobra.Command{
	Use:   "req-parse <text>",
	Short: "Extract structured requirements from free text (deterministic, no LLM)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result := lifecycle.ParseRequirements(args[0], reqFormat)
		HandleError(printYAML(result), "Failed to print result")
	},
}

var reqValidateCmd = &cobra.Command{
	Use:   "req-validate <requirements>",
	Short: "Check requirements for completeness, clarity, and testability (deterministic, no LLM)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result := lifecycle.ValidateRequirements(args[0], reqValidationType)
		HandleError(printYAML(result), "Failed to print result")
	},
}

var reqTraceCmd = &cobra.Command{
	Use:   "req-trace <requirement-id>",
	Short: "Build a traceability matrix for a requirement (deterministic, no LLM)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result := lifecycle.Traceability(args[0], reqTraceDirection)
		HandleError(printYAML(result), "Failed to print result")
	},
}

func init() {
	triageCmd := lifecycleTaskCmd("triage <ticket-text>",
		"Triage an incoming request through the intake agent",
		func(args []string) types.Task { return lifecyclecrew.TriageTicketTask(args[0]) })

	analyzeCmd := lifecycleTaskCmd("analyze <ticket-text>",
		"Extract structured requirements from a request",
		func(args []string) types.Task { return lifecyclecrew.AnalyzeRequirementsTask(args[0], lcContext) })
	analyzeCmd.Flags().StringVar(&lcContext, "context", "",
		"Additional project context")

	planSprintCmd := lifecycleTaskCmd("plan-sprint <goal>",
		"Plan a sprint from a goal, capacity, and backlog",
		func(args []string) types.Task { return lifecyclecrew.PlanSprintTask(args[0], lcCapacity, lcBacklog) })
	planSprintCmd.Flags().StringVar(&lcCapacity, "capacity", "",
		"Team capacity in story points")
	planSprintCmd.Flags().StringVar(&lcBacklog, "backlog", "",
		"Backlog items to consider")

	planReleaseCmd := lifecycleTaskCmd("plan-release <features>",
		"Plan a release for a set of features",
		func(args []string) types.Task { return lifecyclecrew.PlanReleaseTask(args[0], lcConstraints, lcTimeline) })
	planReleaseCmd.Flags().StringVar(&lcConstraints, "constraints", "",
		"Constraints on the release (freeze windows, dependencies)")
	planReleaseCmd.Flags().StringVar(&lcTimeline, "timeline", "",
		"Target timeline for the release")

	statusReportCmd := lifecycleTaskCmd("status <project-data>",
		"Produce a project status report",
		func(args []string) types.Task { return lifecyclecrew.StatusReportTask(args[0]) })

	impactCmd := lifecycleTaskCmd("impact <change-request>",
		"Assess the impact of a change request",
		func(args []string) types.Task { return lifecyclecrew.AssessImpactTask(args[0], lcCurrentState) })
	impactCmd.Flags().StringVar(&lcCurrentState, "current-state", "",
		"Current state of the affected work")

	testStrategyCmd := lifecycleTaskCmd("test-strategy <requirements>",
		"Design a test strategy for a set of requirements",
		func(args []string) types.Task { return lifecyclecrew.TestStrategyTask(args[0], lcContext) })
	testStrategyCmd.Flags().StringVar(&lcContext, "context", "",
		"Additional project context")

	blockersCmd := lifecycleTaskCmd("blockers <blocker-list>",
		"Analyze and prioritize current blockers",
		func(args []string) types.Task { return lifecyclecrew.ManageBlockersTask(args[0]) })

	qualityGateCmd := lifecycleTaskCmd("quality-gate <deliverables>",
		"Run a quality gate over a set of deliverables",
		func(args []string) types.Task { return lifecyclecrew.QualityGateTask(args[0], lcCriteria) })
	qualityGateCmd.Flags().StringVar(&lcCriteria, "criteria", "",
		"Gate criteria to check against")

	ticketCreateCmd.Flags().StringVar(&ticketDescription, "description", "",
		"Ticket description")
	ticketCreateCmd.Flags().StringVar(&ticketType, "type", "",
		"Ticket type: bug, feature, enhancement, task, or support")
	ticketCreateCmd.Flags().StringVar(&ticketPriority, "priority", "",
		"Priority: critical, high, medium, or low")
	ticketCreateCmd.Flags().StringVar(&ticketLabels, "labels", "",
		"Comma-separated labels")

	ticketSearchCmd.Flags().StringVar(&ticketStatus, "status", "",
		"Restrict to one ticket status")
	ticketSearchCmd.Flags().IntVar(&ticketLimit, "limit", 10,
		"Maximum number of results")

	reqParseCmd.Flags().StringVar(&reqFormat, "format", "",
		"Input format hint: user_story, formal, or freeform")
	reqValidateCmd.Flags().StringVar(&reqValidationType, "type", "",
		"Validation type: completeness, clarity, testability, or all")
	reqTraceCmd.Flags().StringVar(&reqTraceDirection, "direction", "both",
		"Trace direction: forward, backward, or both")

	lifecycleCmd.AddCommand(triageCmd)
	lifecycleCmd.AddCommand(analyzeCmd)
	lifecycleCmd.AddCommand(planSprintCmd)
	lifecycleCmd.AddCommand(planReleaseCmd)
	lifecycleCmd.AddCommand(statusReportCmd)
	lifecycleCmd.AddCommand(impactCmd)
	lifecycleCmd.AddCommand(testStrategyCmd)
	lifecycleCmd.AddCommand(blockersCmd)
	lifecycleCmd.AddCommand(qualityGateCmd)
	lifecycleCmd.AddCommand(ticketCreateCmd)
	lifecycleCmd.AddCommand(ticketSearchCmd)
	lifecycleCmd.AddCommand(ticketUpdateCmd)
	lifecycleCmd.AddCommand(reqParseCmd)
	lifecycleCmd.AddCommand(reqValidateCmd)
	lifecycleCmd.AddCommand(reqTraceCmd)
	rootCmd.AddCommand(lifecycleCmd)
}
