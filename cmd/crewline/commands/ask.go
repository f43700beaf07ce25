package commands

import (
	"github.com/spf13/cobra"

	"github.com/moolen/crewline/internal/agent/multiagent/crmcrew"
	"github.com/moolen/crewline/internal/agent/multiagent/lifecyclecrew"
	"github.com/moolen/crewline/internal/agent/multiagent/types"
)

var askCrew string

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask a crew a single question and print the answer",
	Long: `Run a one-shot crew task without the interactive TUI. The question is
routed to the right specialist agent by keyword and the final answer is
printed to stdout.

Examples:
  crewline ask "which entities link contacts to opportunities?"
  crewline ask --crew lifecycle "what are the risks of shipping the payments migration this sprint?"
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		crew := askCrew
		if crew == "" {
			crew = cfg.Crew
		}

		var task types.Task
		switch crew {
		case types.CrewLifecycle:
			task = lifecyclecrew.AskTask(args[0])
		default:
			task = crmcrew.AskTask(args[0])
		}
		return runCrewTask(crew, task)
	},
}

func init() {
	askCmd.Flags().StringVar(&askCrew, "crew", "",
		"Crew to ask: crm or lifecycle (defaults to the configured crew)")
	addCrewTaskFlags(askCmd)
	rootCmd.AddCommand(askCmd)
}
