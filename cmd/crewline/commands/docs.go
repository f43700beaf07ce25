package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/moolen/crewline/internal/crm/docs"
)

var (
	docsFormat          string
	docsNoRelationships bool
	docsNoExamples      bool
	docsOutputFile      string
	docsIncludeSamples  bool
	docsERDFormat       string
	docsERDColumns      bool
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Generate CRM schema documentation without an LLM",
	Long:  `Deterministic documentation tools: entity documentation, data dictionaries, and ER diagrams.`,
}

var docsGenerateCmd = &cobra.Command{
	Use:   "generate <entities>",
	Short: "Generate documentation for entities (comma-separated, or 'all')",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result := docs.NewGenerator().Generate(docs.DocsRequest{
			Entities:             args[0],
			Format:               docsFormat,
			IncludeRelationships: !docsNoRelationships,
			IncludeExamples:      !docsNoExamples,
		})
		if !result.Success {
			HandleError(fmt.Errorf("%s", result.Error), "Documentation failed")
		}
		HandleError(emitDocument(result.Documentation, docsFormat == "markdown"), "Failed to write documentation")
	},
}

var docsDictionaryCmd = &cobra.Command{
	Use:   "dictionary <entity>",
	Short: "Build a data dictionary for one entity",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result := docs.DataDictionary(args[0], docsIncludeSamples)
		HandleError(printYAML(result), "Failed to print result")
	},
}

var docsERDCmd = &cobra.Command{
	Use:   "erd <entities>",
	Short: "Render an ER diagram (comma-separated entities, or 'all')",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result := docs.GenerateERD(args[0], docsERDFormat, docsERDColumns)
		if !result.Success {
			HandleError(fmt.Errorf("%s", result.Error), "ERD generation failed")
		}
		HandleError(emitDocument(result.Diagram, false), "Failed to write diagram")
	},
}

// emitDocument writes content to --output when set, otherwise to stdout.
// Markdown written to a terminal is rendered with glamour.
func emitDocument(content string, markdown bool) error {
	if docsOutputFile != "" {
		if dir := filepath.Dir(docsOutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return err
			}
		}
		return os.WriteFile(docsOutputFile, []byte(content), 0644)
	}

	if markdown && term.IsTerminal(int(os.Stdout.Fd())) {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err == nil {
			if rendered, rerr := renderer.Render(content); rerr == nil {
				_, werr := fmt.Print(rendered)
				return werr
			}
		}
	}

	_, err := fmt.Println(content)
	return err
}

func init() {
	docsGenerateCmd.Flags().StringVar(&docsFormat, "format", "markdown",
		"Output format: markdown, json, or yaml")
	docsGenerateCmd.Flags().BoolVar(&docsNoRelationships, "no-relationships", false,
		"Omit relationship sections")
	docsGenerateCmd.Flags().BoolVar(&docsNoExamples, "no-examples", false,
		"Omit example queries")
	docsGenerateCmd.Flags().StringVarP(&docsOutputFile, "output", "o", "",
		"Write documentation to this file instead of stdout")

	docsDictionaryCmd.Flags().BoolVar(&docsIncludeSamples, "samples", false,
		"Include sample values for columns")

	docsERDCmd.Flags().StringVar(&docsERDFormat, "format", "mermaid",
		"Diagram format: mermaid, plantuml, or dbml")
	docsERDCmd.Flags().BoolVar(&docsERDColumns, "columns", false,
		"Include column details in the diagram")
	docsERDCmd.Flags().StringVarP(&docsOutputFile, "output", "o", "",
		"Write the diagram to this file instead of stdout")

	docsCmd.AddCommand(docsGenerateCmd)
	docsCmd.AddCommand(docsDictionaryCmd)
	docsCmd.AddCommand(docsERDCmd)
	rootCmd.AddCommand(docsCmd)
}
