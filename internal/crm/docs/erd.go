package docs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/moolen/crewline/internal/crm/schema"
)

// Supported diagram formats. Unknown formats fall back to mermaid.
const (
	ERDFormatMermaid  = "mermaid"
	ERDFormatPlantUML = "plantuml"
	ERDFormatDBML     = "dbml"
)

// maxDiagramColumns keeps column-level diagrams readable.
const maxDiagramColumns = 8

// ERDResult is the output of GenerateERD.
type ERDResult struct {
	Success           bool     `json:"success"`
	Error             string   `json:"error,omitempty"`
	AvailableEntities []string `json:"available_entities,omitempty"`
	EntitiesIncluded  []string `json:"entities_included,omitempty"`
	Format            string   `json:"format,omitempty"`
	Diagram           string   `json:"diagram,omitempty"`
	UsageInstructions string   `json:"usage_instructions,omitempty"`
}

// GenerateERD renders an entity-relationship diagram for the requested
// entities. Relationships are emitted once per entity pair and only
// when both ends are part of the diagram.
func GenerateERD(entities, format string, showColumns bool) ERDResult {
	resolved := resolveEntities(entities)
	if len(resolved) == 0 {
		return ERDResult{
			Error:             "No valid entities found",
			AvailableEntities: schema.Names(),
		}
	}

	format = strings.ToLower(format)
	var diagram string
	switch format {
	case ERDFormatPlantUML:
		diagram = plantumlERD(resolved, showColumns)
	case ERDFormatDBML:
		diagram = dbmlERD(resolved)
	default:
		format = ERDFormatMermaid
		diagram = mermaidERD(resolved, showColumns)
	}

	names := make([]string, len(resolved))
	for i, e := range resolved {
		names[i] = e.Name
	}
	return ERDResult{
		Success:           true,
		EntitiesIncluded:  names,
		Format:            format,
		Diagram:           diagram,
		UsageInstructions: usageInstructions(format),
	}
}

func includedSet(entities []schema.Entity) map[string]bool {
	set := make(map[string]bool, len(entities))
	for _, e := range entities {
		set[e.Name] = true
	}
	return set
}

func pairKey(a, b string) string {
	pair := []string{a, b}
	sort.Strings(pair)
	return pair[0] + "|" + pair[1]
}

func mermaidERD(entities []schema.Entity, showColumns bool) string {
	lines := []string{"erDiagram"}

	for _, entity := range entities {
		if !showColumns {
			lines = append(lines, "    "+entity.Name)
			continue
		}
		lines = append(lines, fmt.Sprintf("    %s {", entity.Name))
		cols := entity.Columns
		if len(cols) > maxDiagramColumns {
			cols = cols[:maxDiagramColumns]
		}
		for _, col := range cols {
			colType := strings.NewReplacer("(", "_", ")", "", ",", "").Replace(col.Type)
			marker := ""
			switch {
			case col.Name == "Id":
				marker = " PK"
			case strings.HasSuffix(col.Name, "Id"):
				marker = " FK"
			}
			lines = append(lines, fmt.Sprintf("        %s %s%s", colType, col.Name, marker))
		}
		lines = append(lines, "    }")
	}

	included := includedSet(entities)
	added := make(map[string]bool)
	for _, entity := range entities {
		for _, rel := range entity.Relationships {
			if !included[rel.Entity] {
				continue
			}
			key := pairKey(entity.Name, rel.Entity)
			if added[key] {
				continue
			}
			added[key] = true
			switch rel.Type {
			case "one-to-many":
				lines = append(lines, fmt.Sprintf("    %s ||--o{ %s : has", entity.Name, rel.Entity))
			case "many-to-one":
				lines = append(lines, fmt.Sprintf("    %s }o--|| %s : belongs_to", entity.Name, rel.Entity))
			case "many-to-many":
				lines = append(lines, fmt.Sprintf("    %s }o--o{ %s : relates", entity.Name, rel.Entity))
			case "one-to-one":
				lines = append(lines, fmt.Sprintf("    %s ||--|| %s : is", entity.Name, rel.Entity))
			}
		}
	}
	return strings.Join(lines, "\n")
}

func plantumlERD(entities []schema.Entity, showColumns bool) string {
	lines := []string{"@startuml", "skinparam linetype ortho", ""}

	for _, entity := range entities {
		if !showColumns {
			lines = append(lines, "entity "+entity.Name)
			continue
		}
		lines = append(lines, fmt.Sprintf("entity %s {", entity.Name))
		lines = append(lines, "    * Id : uniqueidentifier <<PK>>")
		cols := entity.Columns
		if len(cols) > 6 {
			cols = cols[:6]
		}
		for _, col := range cols {
			if col.Name == "Id" {
				continue
			}
			fk := ""
			if strings.HasSuffix(col.Name, "Id") {
				fk = " <<FK>>"
			}
			lines = append(lines, fmt.Sprintf("    %s : %s%s", col.Name, col.Type, fk))
		}
		lines = append(lines, "}")
	}
	lines = append(lines, "")

	included := includedSet(entities)
	added := make(map[string]bool)
	for _, entity := range entities {
		for _, rel := range entity.Relationships {
			if !included[rel.Entity] {
				continue
			}
			key := pairKey(entity.Name, rel.Entity)
			if added[key] {
				continue
			}
			added[key] = true
			switch rel.Type {
			case "one-to-many":
				lines = append(lines, fmt.Sprintf("%s ||--o{ %s", entity.Name, rel.Entity))
			case "many-to-one":
				lines = append(lines, fmt.Sprintf("%s }o--|| %s", entity.Name, rel.Entity))
			case "many-to-many":
				lines = append(lines, fmt.Sprintf("%s }o--o{ %s", entity.Name, rel.Entity))
			case "one-to-one":
				lines = append(lines, fmt.Sprintf("%s ||--|| %s", entity.Name, rel.Entity))
			}
		}
	}

	lines = append(lines, "", "@enduml")
	return strings.Join(lines, "\n")
}

func dbmlERD(entities []schema.Entity) string {
	lines := []string{"// CRM Schema - DBML Format", ""}

	for _, entity := range entities {
		lines = append(lines, fmt.Sprintf("Table %s {", entity.TableName))
		for _, col := range entity.Columns {
			line := fmt.Sprintf("    %s %s", col.Name, col.Type)
			switch {
			case col.Name == "Id":
				line += " [pk]"
			case strings.HasSuffix(col.Name, "Id"):
				line += fmt.Sprintf(" [ref: > %s.Id]", dbmlReferenceTable(col.Name))
			}
			line += " // " + col.Description
			lines = append(lines, line)
		}
		lines = append(lines, "}", "")
	}
	return strings.Join(lines, "\n")
}

var dbmlReferenceOverrides = map[string]string{
	"Owner": "Contact",
	"Stage": "OpportunityStage",
}

func dbmlReferenceTable(columnName string) string {
	base := strings.TrimSuffix(columnName, "Id")
	if table, ok := dbmlReferenceOverrides[base]; ok {
		return table
	}
	return base
}

func usageInstructions(format string) string {
	switch format {
	case ERDFormatPlantUML:
		return "To render this PlantUML diagram:\n" +
			"1. Use PlantUML Online: http://www.plantuml.com/plantuml\n" +
			"2. Use VS Code with PlantUML extension\n" +
			"3. Install PlantUML locally with Java runtime"
	case ERDFormatDBML:
		return "To render this DBML diagram:\n" +
			"1. Use dbdiagram.io: https://dbdiagram.io\n" +
			"2. Use DBML CLI tool for programmatic rendering\n" +
			"3. Export to various formats including SQL"
	}
	return "To render this Mermaid diagram:\n" +
		"1. Use Mermaid Live Editor: https://mermaid.live\n" +
		"2. Paste in GitHub/GitLab markdown with ```mermaid code block\n" +
		"3. Use VS Code with Mermaid extension"
}
