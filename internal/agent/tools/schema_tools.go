package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/moolen/crewline/internal/crm/schema"
)

// =============================================================================
// Schema Tools
// =============================================================================

// ExploreEntityTool exposes the deterministic entity explorer.
type ExploreEntityTool struct{}

func (t *ExploreEntityTool) Name() string { return "explore_entity" }

func (t *ExploreEntityTool) Description() string {
	return `Explore the structure of a CRM entity: table name, description, columns with data types, and optionally its relationships.

Use this tool to:
- Understand what data an entity holds before writing queries
- See the exact column names and data types of a table
- Discover how an entity connects to the rest of the schema

Input:
- entity_name: Name of the entity to explore (e.g., 'Contact', 'Opportunity')
- include_relationships (optional): Include the entity's relationships (default: false)

Unknown entities return the list of available entities instead of failing.`
}

func (t *ExploreEntityTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"entity_name"},
		"properties": map[string]interface{}{
			"entity_name": map[string]interface{}{
				"type":        "string",
				"description": "Name of the entity to explore (e.g., 'Contact')",
			},
			"include_relationships": map[string]interface{}{
				"type":        "boolean",
				"description": "Include the entity's relationships (default: false)",
			},
		},
	}
}

func (t *ExploreEntityTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var args struct {
		EntityName           string `json:"entity_name"`
		IncludeRelationships bool   `json:"include_relationships"`
	}
	if err := json.Unmarshal(input, &args); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	result := schema.Explore(args.EntityName, args.IncludeRelationships)
	if !result.Success {
		return &Result{
			Success: false,
			Data:    result,
			Error:   result.Error,
			Summary: fmt.Sprintf("Entity %q not found", args.EntityName),
		}, nil
	}

	summary := fmt.Sprintf("Explored %s: %d columns", result.Entity, result.ColumnCount)
	if args.IncludeRelationships {
		summary = fmt.Sprintf("%s, %d relationships", summary, result.RelationshipCount)
	}

	return &Result{
		Success: true,
		Data:    result,
		Summary: summary,
	}, nil
}

// FindRelationshipsTool exposes the relationship path finder.
type FindRelationshipsTool struct{}

func (t *FindRelationshipsTool) Name() string { return "find_relationships" }

func (t *FindRelationshipsTool) Description() string {
	return `Find how CRM entities relate to each other, including direct relationships and multi-hop join paths.

Use this tool to:
- Work out how to join two entities in a query
- List everything a given entity connects to
- Discover indirect paths (e.g., Contact -> Account -> Opportunity)

Input:
- source_entity: Entity to start from (required)
- target_entity (optional): Entity to reach; omit to list all relationships of the source
- depth (optional): Maximum number of hops to search (default: 2)`
}

func (t *FindRelationshipsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"source_entity"},
		"properties": map[string]interface{}{
			"source_entity": map[string]interface{}{
				"type":        "string",
				"description": "Entity to start from",
			},
			"target_entity": map[string]interface{}{
				"type":        "string",
				"description": "Entity to reach; omit to list all relationships of the source",
			},
			"depth": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum number of hops to search (default: 2)",
			},
		},
	}
}

func (t *FindRelationshipsTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var args struct {
		SourceEntity string `json:"source_entity"`
		TargetEntity string `json:"target_entity"`
		Depth        int    `json:"depth"`
	}
	if err := json.Unmarshal(input, &args); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	result := schema.Relationships(args.SourceEntity, args.TargetEntity, args.Depth)
	if !result.Success {
		return &Result{
			Success: false,
			Data:    result,
			Error:   result.Error,
			Summary: "Relationship lookup failed",
		}, nil
	}

	summary := fmt.Sprintf("Found %d direct relationships for %s", len(result.DirectRelationships), result.SourceEntity)
	if args.TargetEntity != "" {
		summary = fmt.Sprintf("Found %d paths from %s to %s", len(result.RelationshipPaths), result.SourceEntity, args.TargetEntity)
	}

	return &Result{
		Success: true,
		Data:    result,
		Summary: summary,
	}, nil
}

// AnalyzeColumnsTool exposes the column analyzer.
type AnalyzeColumnsTool struct{}

func (t *AnalyzeColumnsTool) Name() string { return "analyze_columns" }

func (t *AnalyzeColumnsTool) Description() string {
	return `Analyze the columns of a CRM entity: categorization into identifiers, foreign keys, dates, and business fields, plus per-column detail.

Use this tool to:
- Identify which columns are foreign keys and what they point to
- Separate system/audit columns from business columns
- Narrow down to columns matching a name fragment

Input:
- entity_name: Entity whose columns to analyze (required)
- column_filter (optional): Only include columns whose name contains this fragment
- include_system (optional): Include system/audit columns (default: false)`
}

func (t *AnalyzeColumnsTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"entity_name"},
		"properties": map[string]interface{}{
			"entity_name": map[string]interface{}{
				"type":        "string",
				"description": "Entity whose columns to analyze",
			},
			"column_filter": map[string]interface{}{
				"type":        "string",
				"description": "Only include columns whose name contains this fragment",
			},
			"include_system": map[string]interface{}{
				"type":        "boolean",
				"description": "Include system/audit columns (default: false)",
			},
		},
	}
}

func (t *AnalyzeColumnsTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var args struct {
		EntityName    string `json:"entity_name"`
		ColumnFilter  string `json:"column_filter"`
		IncludeSystem bool   `json:"include_system"`
	}
	if err := json.Unmarshal(input, &args); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	result := schema.AnalyzeColumns(args.EntityName, args.ColumnFilter, args.IncludeSystem)
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
		Summary: fmt.Sprintf("Analyzed %d columns of %s", result.TotalColumns, result.Entity),
	}, nil
}

// SearchSchemaTool exposes the schema-wide search.
type SearchSchemaTool struct{}

func (t *SearchSchemaTool) Name() string { return "search_schema" }

func (t *SearchSchemaTool) Description() string {
	return `Search the whole CRM schema for entities, columns, and relationships matching a term.

Use this tool to:
- Locate where a concept lives in the schema (e.g., 'email', 'amount', 'stage')
- Find candidate entities when the user names a business concept
- Check whether a column exists anywhere before referencing it

Input:
- search_term: Term to search for (required, case-insensitive substring match)
- search_scope (optional): One of 'all', 'entities', 'columns', 'relationships' (default: 'all')`
}

func (t *SearchSchemaTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"search_term"},
		"properties": map[string]interface{}{
			"search_term": map[string]interface{}{
				"type":        "string",
				"description": "Term to search for (case-insensitive substring match)",
			},
			"search_scope": map[string]interface{}{
				"type":        "string",
				"description": "One of 'all', 'entities', 'columns', 'relationships' (default: 'all')",
			},
		},
	}
}

func (t *SearchSchemaTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	var args struct {
		SearchTerm  string `json:"search_term"`
		SearchScope string `json:"search_scope"`
	}
	if err := json.Unmarshal(input, &args); err != nil {
		return &Result{Success: false, Error: fmt.Sprintf("invalid input: %v", err)}, nil
	}

	result := schema.Search(args.SearchTerm, args.SearchScope)

	return &Result{
		Success: true,
		Data:    result,
		Summary: fmt.Sprintf("Found %d matches for %q (%d entities, %d columns, %d relationships)",
			result.Summary.TotalMatches, args.SearchTerm,
			result.Summary.EntitiesFound, result.Summary.ColumnsFound, result.Summary.RelationshipsFound),
	}, nil
}
