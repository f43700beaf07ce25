// Package docs generates schema documentation, data dictionaries, and
// entity-relationship diagrams from the built-in CRM knowledge base.
package docs

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"gopkg.in/yaml.v3"

	"github.com/moolen/crewline/internal/crm/schema"
)

// Supported documentation output formats. Unknown formats fall back to
// markdown.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
	FormatYAML     = "yaml"
)

const (
	cacheSize = 64
	cacheTTL  = 5 * time.Minute
)

// maxExampleColumns limits the column list in generated example queries.
const maxExampleColumns = 5

// DocsRequest selects what to document and how.
type DocsRequest struct {
	// Entities is a comma-separated entity list, or "all".
	Entities             string
	Format               string
	IncludeRelationships bool
	IncludeExamples      bool
}

// DocsMetadata counts what went into a documentation run.
type DocsMetadata struct {
	EntityCount        int `json:"entity_count"`
	TotalColumns       int `json:"total_columns"`
	TotalRelationships int `json:"total_relationships"`
}

// DocsResult is the output of Generator.Generate.
type DocsResult struct {
	Success            bool         `json:"success"`
	Error              string       `json:"error,omitempty"`
	AvailableEntities  []string     `json:"available_entities,omitempty"`
	EntitiesDocumented []string     `json:"entities_documented,omitempty"`
	Format             string       `json:"format,omitempty"`
	Documentation      string       `json:"documentation,omitempty"`
	Metadata           DocsMetadata `json:"metadata,omitzero"`
}

// Generator renders schema documentation. Results are cached since the
// knowledge base is static and agents tend to re-request the same
// entity sets within a session.
type Generator struct {
	cache *expirable.LRU[string, DocsResult]
}

func NewGenerator() *Generator {
	return &Generator{
		cache: expirable.NewLRU[string, DocsResult](cacheSize, nil, cacheTTL),
	}
}

// Generate renders documentation for the requested entities.
func (g *Generator) Generate(req DocsRequest) DocsResult {
	key := fmt.Sprintf("%s|%s|%t|%t",
		strings.ToLower(req.Entities), strings.ToLower(req.Format),
		req.IncludeRelationships, req.IncludeExamples)
	if cached, ok := g.cache.Get(key); ok {
		return cached
	}
	result := generate(req)
	if result.Success {
		g.cache.Add(key, result)
	}
	return result
}

func generate(req DocsRequest) DocsResult {
	entities := resolveEntities(req.Entities)
	if len(entities) == 0 {
		return DocsResult{
			Error:             "No valid entities found",
			AvailableEntities: schema.Names(),
		}
	}

	format := strings.ToLower(req.Format)
	var doc string
	var err error
	switch format {
	case FormatJSON:
		doc, err = structuredDoc(entities, req.IncludeRelationships, json.MarshalIndent)
	case FormatYAML:
		doc, err = structuredDoc(entities, req.IncludeRelationships, func(v any, _, _ string) ([]byte, error) {
			return yaml.Marshal(v)
		})
	default:
		format = FormatMarkdown
		doc = markdownDoc(entities, req.IncludeRelationships, req.IncludeExamples)
	}
	if err != nil {
		return DocsResult{Error: "rendering documentation: " + err.Error()}
	}

	names := make([]string, len(entities))
	meta := DocsMetadata{EntityCount: len(entities)}
	for i, e := range entities {
		names[i] = e.Name
		meta.TotalColumns += len(e.Columns)
		meta.TotalRelationships += len(e.Relationships)
	}

	return DocsResult{
		Success:            true,
		EntitiesDocumented: names,
		Format:             format,
		Documentation:      doc,
		Metadata:           meta,
	}
}

// resolveEntities expands a comma-separated entity list ("all" for the
// whole knowledge base) into resolved entities, dropping unknown names.
func resolveEntities(spec string) []schema.Entity {
	if strings.EqualFold(strings.TrimSpace(spec), "all") {
		return schema.Entities
	}
	var entities []schema.Entity
	for _, name := range strings.Split(spec, ",") {
		if entity, ok := schema.Lookup(name); ok {
			entities = append(entities, entity)
		}
	}
	return entities
}

func markdownDoc(entities []schema.Entity, includeRels, includeExamples bool) string {
	var b strings.Builder
	b.WriteString("# CRM Schema Documentation\n\n")
	fmt.Fprintf(&b, "*Documentation for %d entities*\n\n", len(entities))
	b.WriteString("---\n\n")

	for _, entity := range entities {
		fmt.Fprintf(&b, "## %s\n\n", entity.Name)
		fmt.Fprintf(&b, "**Description:** %s\n\n", entity.Description)
		fmt.Fprintf(&b, "**Table Name:** `%s`\n\n", entity.TableName)

		b.WriteString("### Columns\n\n")
		b.WriteString("| Column | Type | Description |\n")
		b.WriteString("|--------|------|-------------|\n")
		for _, col := range entity.Columns {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", col.Name, col.Type, col.Description)
		}
		b.WriteString("\n")

		if includeRels && len(entity.Relationships) > 0 {
			b.WriteString("### Relationships\n\n")
			for _, rel := range entity.Relationships {
				fmt.Fprintf(&b, "- **%s** (%s)", rel.Entity, rel.Type)
				if via := relationshipVia(rel); via != "" {
					fmt.Fprintf(&b, " via `%s`", via)
				}
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}

		if includeExamples {
			b.WriteString("### Example Queries\n\n")
			b.WriteString("```sql\n")
			fmt.Fprintf(&b, "-- Get all %s records\n", entity.Name)
			fmt.Fprintf(&b, "SELECT TOP 100 * FROM [%s]\n\n", entity.TableName)
			fmt.Fprintf(&b, "-- Get %s with specific columns\n", entity.Name)
			cols := entity.Columns
			if len(cols) > maxExampleColumns {
				cols = cols[:maxExampleColumns]
			}
			names := make([]string, len(cols))
			for i, col := range cols {
				names[i] = col.Name
			}
			fmt.Fprintf(&b, "SELECT %s FROM [%s]\n", strings.Join(names, ", "), entity.TableName)
			b.WriteString("```\n\n")
		}

		b.WriteString("---\n\n")
	}
	return b.String()
}

func relationshipVia(rel schema.Relationship) string {
	if rel.Column != "" {
		return rel.Column
	}
	return rel.Via
}

type entityDoc struct {
	Name          string                `json:"name" yaml:"name"`
	TableName     string                `json:"table_name" yaml:"table_name"`
	Description   string                `json:"description" yaml:"description"`
	Columns       []schema.Column       `json:"columns" yaml:"columns"`
	Relationships []schema.Relationship `json:"relationships,omitempty" yaml:"relationships,omitempty"`
}

func structuredDoc(entities []schema.Entity, includeRels bool, marshal func(v any, prefix, indent string) ([]byte, error)) (string, error) {
	docs := make([]entityDoc, len(entities))
	for i, entity := range entities {
		docs[i] = entityDoc{
			Name:        entity.Name,
			TableName:   entity.TableName,
			Description: entity.Description,
			Columns:     entity.Columns,
		}
		if includeRels {
			docs[i].Relationships = entity.Relationships
		}
	}
	out, err := marshal(map[string][]entityDoc{"entities": docs}, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
