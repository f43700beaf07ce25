package commands

import (
	"github.com/spf13/cobra"

	"github.com/moolen/crewline/internal/crm/schema"
)

var (
	schemaNoRelationships bool
	schemaTargetEntity    string
	schemaDepth           int
	schemaColumnFilter    string
	schemaIncludeSystem   bool
	schemaSearchScope     string
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Explore the CRM schema without an LLM",
	Long:  `Deterministic schema tools: entity exploration, relationship analysis, column categorization, and search.`,
}

var schemaExploreCmd = &cobra.Command{
	Use:   "explore <entity>",
	Short: "Show structure and relationships of an entity",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result := schema.Explore(args[0], !schemaNoRelationships)
		HandleError(printYAML(result), "Failed to print result")
	},
}

var schemaRelationshipsCmd = &cobra.Command{
	Use:   "relationships <entity>",
	Short: "Analyze relationships and join paths from an entity",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result := schema.Relationships(args[0], schemaTargetEntity, schemaDepth)
		HandleError(printYAML(result), "Failed to print result")
	},
}

var schemaColumnsCmd = &cobra.Command{
	Use:   "columns <entity>",
	Short: "Categorize the columns of an entity",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result := schema.AnalyzeColumns(args[0], schemaColumnFilter, schemaIncludeSystem)
		HandleError(printYAML(result), "Failed to print result")
	},
}

var schemaSearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search entities, columns, and relationships",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result := schema.Search(args[0], schemaSearchScope)
		HandleError(printYAML(result), "Failed to print result")
	},
}

var schemaOverviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "List all known entities with their descriptions",
	Run: func(cmd *cobra.Command, args []string) {
		overview := make([]map[string]string, 0, len(schema.Names()))
		for _, name := range schema.Names() {
			entity, _ := schema.Lookup(name)
			overview = append(overview, map[string]string{
				"entity":      name,
				"table":       entity.TableName,
				"description": entity.Description,
			})
		}
		HandleError(printYAML(overview), "Failed to print result")
	},
}

func init() {
	schemaExploreCmd.Flags().BoolVar(&schemaNoRelationships, "no-relationships", false,
		"Omit relationship details from the output")

	schemaRelationshipsCmd.Flags().StringVar(&schemaTargetEntity, "target", "",
		"Restrict the analysis to paths toward this entity")
	schemaRelationshipsCmd.Flags().IntVar(&schemaDepth, "depth", 1,
		"Relationship traversal depth (1 or 2)")

	schemaColumnsCmd.Flags().StringVar(&schemaColumnFilter, "filter", "",
		"Only show columns whose name contains this substring")
	schemaColumnsCmd.Flags().BoolVar(&schemaIncludeSystem, "include-system", false,
		"Include system columns (Id, CreatedOn, ...)")

	schemaSearchCmd.Flags().StringVar(&schemaSearchScope, "scope", "all",
		"Search scope: all, entities, columns, or relationships")

	schemaCmd.AddCommand(schemaExploreCmd)
	schemaCmd.AddCommand(schemaRelationshipsCmd)
	schemaCmd.AddCommand(schemaColumnsCmd)
	schemaCmd.AddCommand(schemaSearchCmd)
	schemaCmd.AddCommand(schemaOverviewCmd)
	rootCmd.AddCommand(schemaCmd)
}
