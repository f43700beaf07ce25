package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/moolen/crewline/internal/crm/docs"
)

// =============================================================================
// Documentation Tools
// =============================================================================

// GenerateDocsTool exposes the cached schema documentation generator.
type GenerateDocsTool struct {
	generator *docs.Generator
}

func (t *GenerateDocsTool) Name() string { return "generate_docs" }

func (t *GenerateDocsTool) Description() string {
	return `Generate schema documentation for one or more CRM entities in markdown, JSON, or YAML.

Use this tool to:
- Produce shareable documentation of entity structures
- Include relationship listings and example queries
- Document the whole schema at once with 'all'

Input:
- entities: Comma-separated entity names, or 'all' (required)
- format (optional): 'markdown', 'json', or 'yaml' (default: 'markdown')
- include_relationships (optional): Document entity relationships (default: false)
- include_examples (optional): Add example queries per entity, markdown only (default: false)

Results are cached; repeated calls with the same arguments are cheap.`
}

func (t *GenerateDocsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"entities"},
		"properties": map[string]interface{}{
			"entities": map[string]interface{}{
				"type":        "string",
				"description": "Comma-separated entity names, or 'all'",
			},
			"format": map[string]interface{}{
				"type":        "string",
				"description": "'markdown', 'json', or 'yaml' (default: 'markdown')",
			},
			"include_relationships": map[string]interface{}{
				"type":        "boolean",
				"description": "Document entity relationships (default: false)",
			},
			"include_examples": map[string]interface{}{
				"type":        "boolean",
				"description": "Add example queries per entity, markdown only (default: false)",
			},
		},
	}
}

func (t *GenerateDocsTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var req docs.DocsRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	gen := t.generator
	if gen == nil {
		gen = docs.NewGenerator()
	}

	result := gen.Generate(req)
	if !result.Success {
		return &Result{
			Success: false,
			Data:    result,
			Error:   result.Error,
			Summary: "Documentation generation failed",
		}, nil
	}

	return &Result{
		Success: true,
		Data:    result,
		Summary: fmt.Sprintf("Documented %d entities as %s (%d columns, %d relationships)",
			result.Metadata.EntityCount, result.Format,
			result.Metadata.TotalColumns, result.Metadata.TotalRelationships),
	}, nil
}

// DataDictionaryTool exposes the per-entity data dictionary.
type DataDictionaryTool struct{}

func (t *DataDictionaryTool) Name() string { return "data_dictionary" }

func (t *DataDictionaryTool) Description() string {
	return `Build a detailed data dictionary for one CRM entity: per-column types, nullability, business rules, foreign key references, and recommended indexes.

Use this tool to:
- Answer detailed questions about what a column means and how it behaves
- See which columns reference other tables
- Get index recommendations for query performance

Input:
- entity_name: Entity to document (required)
- include_samples (optional): Include representative sample values per column (default: false)`
}

func (t *DataDictionaryTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"entity_name"},
		"properties": map[string]interface{}{
			"entity_name": map[string]interface{}{
				"type":        "string",
				"description": "Entity to document",
			},
			"include_samples": map[string]interface{}{
				"type":        "boolean",
				"description": "Include representative sample values per column (default: false)",
			},
		},
	}
}

func (t *DataDictionaryTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var args struct {
		EntityName     string `json:"entity_name"`
		IncludeSamples bool   `json:"include_samples"`
	}
	if err := json.Unmarshal(input, &args); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	result := docs.DataDictionary(args.EntityName, args.IncludeSamples)
	if !result.Success {
		return &Result{
			Success: false,
			Data:    result,
			Error:   result.Error,
			Summary: fmt.Sprintf("Entity %q not found", args.EntityName),
		}, nil
	}

	return &Result{
		Success: true,
		Data:    result,
		Summary: fmt.Sprintf("Data dictionary for %s: %d columns, %d foreign keys",
			result.Entity, result.DataDictionary.ColumnCount, result.DataDictionary.ForeignKeyCount),
	}, nil
}

// GenerateERDTool exposes the entity relationship diagram generator.
type GenerateERDTool struct{}

func (t *GenerateERDTool) Name() string { return "generate_erd" }

func (t *GenerateERDTool) Description() string {
	return `Generate an entity relationship diagram for CRM entities in mermaid, plantuml, or dbml notation.

Use this tool to:
- Visualize how a set of entities connects
- Produce diagram source the user can paste into mermaid.live, PlantUML, or dbdiagram.io
- Optionally include column-level detail per entity

Input:
- entities: Comma-separated entity names, or 'all' (required)
- format (optional): 'mermaid', 'plantuml', or 'dbml' (default: 'mermaid')
- show_columns (optional): Include column detail in the diagram (default: false)

Relationships are drawn only between included entities, each pair once.`
}

func (t *GenerateERDTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"entities"},
		"properties": map[string]interface{}{
			"entities": map[string]interface{}{
				"type":        "string",
				"description": "Comma-separated entity names, or 'all'",
			},
			"format": map[string]interface{}{
				"type":        "string",
				"description": "'mermaid', 'plantuml', or 'dbml' (default: 'mermaid')",
			},
			"show_columns": map[string]interface{}{
				"type":        "boolean",
				"description": "Include column detail in the diagram (default: false)",
			},
		},
	}
}

func (t *GenerateERDTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var args struct {
		Entities    string `json:"entities"`
		Format      string `json:"format"`
		ShowColumns bool   `json:"show_columns"`
	}
	if err := json.Unmarshal(input, &args); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	result := docs.GenerateERD(args.Entities, args.Format, args.ShowColumns)
	if !result.Success {
		return &Result{
			Success: false,
			Data:    result,
			Error:   result.Error,
			Summary: "ERD generation failed",
		}, nil
	}

	return &Result{
		Success: true,
		Data:    result,
		Summary: fmt.Sprintf("Generated %s ERD for %s", result.Format, strings.Join(result.EntitiesIncluded, ", ")),
	}, nil
}
