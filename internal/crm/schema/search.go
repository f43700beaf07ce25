package schema

import "strings"

// Search scopes.
const (
	ScopeAll           = "all"
	ScopeEntities      = "entities"
	ScopeColumns       = "columns"
	ScopeRelationships = "relationships"
)

// EntityMatch is a knowledge-base entity that matched a search.
type EntityMatch struct {
	Entity      string `json:"entity"`
	Description string `json:"description"`
	Table       string `json:"table"`
}

// ColumnMatch is a column that matched a search.
type ColumnMatch struct {
	Entity      string `json:"entity"`
	Column      string `json:"column"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// RelationshipMatch is a relationship that matched a search.
type RelationshipMatch struct {
	FromEntity string `json:"from_entity"`
	ToEntity   string `json:"to_entity"`
	Type       string `json:"type"`
}

// SearchMatches groups the matches of a search by kind.
type SearchMatches struct {
	Entities      []EntityMatch       `json:"entities"`
	Columns       []ColumnMatch       `json:"columns"`
	Relationships []RelationshipMatch `json:"relationships"`
}

// SearchSummary counts the matches of a search.
type SearchSummary struct {
	TotalMatches       int `json:"total_matches"`
	EntitiesFound      int `json:"entities_found"`
	ColumnsFound       int `json:"columns_found"`
	RelationshipsFound int `json:"relationships_found"`
}

// SearchResult is the output of Search.
type SearchResult struct {
	Success    bool          `json:"success"`
	SearchTerm string        `json:"search_term"`
	Scope      string        `json:"scope"`
	Matches    SearchMatches `json:"matches"`
	Summary    SearchSummary `json:"summary"`
}

// Search scans the knowledge base for entities, columns, and
// relationships whose names or descriptions contain the term
// (case-insensitive substring). Scope narrows the search to one kind.
func Search(term, scope string) SearchResult {
	if scope == "" {
		scope = ScopeAll
	}
	lower := strings.ToLower(term)
	inScope := func(s string) bool { return scope == ScopeAll || scope == s }

	result := SearchResult{
		Success:    true,
		SearchTerm: term,
		Scope:      scope,
		Matches: SearchMatches{
			Entities:      []EntityMatch{},
			Columns:       []ColumnMatch{},
			Relationships: []RelationshipMatch{},
		},
	}

	for _, entity := range Entities {
		if inScope(ScopeEntities) {
			if strings.Contains(strings.ToLower(entity.Name), lower) ||
				strings.Contains(strings.ToLower(entity.Description), lower) {
				result.Matches.Entities = append(result.Matches.Entities, EntityMatch{
					Entity:      entity.Name,
					Description: entity.Description,
					Table:       entity.TableName,
				})
			}
		}
		if inScope(ScopeColumns) {
			for _, col := range entity.Columns {
				if strings.Contains(strings.ToLower(col.Name), lower) ||
					strings.Contains(strings.ToLower(col.Description), lower) {
					result.Matches.Columns = append(result.Matches.Columns, ColumnMatch{
						Entity:      entity.Name,
						Column:      col.Name,
						Type:        col.Type,
						Description: col.Description,
					})
				}
			}
		}
		if inScope(ScopeRelationships) {
			for _, rel := range entity.Relationships {
				if strings.Contains(strings.ToLower(rel.Entity), lower) ||
					strings.Contains(strings.ToLower(rel.Type), lower) {
					result.Matches.Relationships = append(result.Matches.Relationships, RelationshipMatch{
						FromEntity: entity.Name,
						ToEntity:   rel.Entity,
						Type:       rel.Type,
					})
				}
			}
		}
	}

	result.Summary = SearchSummary{
		TotalMatches: len(result.Matches.Entities) +
			len(result.Matches.Columns) +
			len(result.Matches.Relationships),
		EntitiesFound:      len(result.Matches.Entities),
		ColumnsFound:       len(result.Matches.Columns),
		RelationshipsFound: len(result.Matches.Relationships),
	}
	return result
}
