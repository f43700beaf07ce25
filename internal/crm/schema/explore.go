package schema

// ExploreResult is the output of Explore.
type ExploreResult struct {
	Success           bool           `json:"success"`
	Error             string         `json:"error,omitempty"`
	AvailableEntities []string       `json:"available_entities,omitempty"`
	Suggestion        string         `json:"suggestion,omitempty"`
	Entity            string         `json:"entity,omitempty"`
	TableName         string         `json:"table_name,omitempty"`
	Description       string         `json:"description,omitempty"`
	Columns           []Column       `json:"columns,omitempty"`
	ColumnCount       int            `json:"column_count,omitempty"`
	Relationships     []Relationship `json:"relationships,omitempty"`
	RelationshipCount int            `json:"relationship_count,omitempty"`
}

// Explore returns the full schema record for an entity. Matching is
// case-insensitive. Relationship details are included unless
// includeRelationships is false.
func Explore(entityName string, includeRelationships bool) ExploreResult {
	entity, ok := Lookup(entityName)
	if !ok {
		errMsg, available, suggestion := notFoundError(entityName)
		return ExploreResult{
			Error:             errMsg,
			AvailableEntities: available,
			Suggestion:        suggestion,
		}
	}

	result := ExploreResult{
		Success:     true,
		Entity:      entity.Name,
		TableName:   entity.TableName,
		Description: entity.Description,
		Columns:     entity.Columns,
		ColumnCount: len(entity.Columns),
	}
	if includeRelationships {
		result.Relationships = entity.Relationships
		result.RelationshipCount = len(entity.Relationships)
	}
	return result
}
