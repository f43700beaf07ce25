package schema

import "strings"

// CategorizedColumns groups an entity's columns by their role.
type CategorizedColumns struct {
	PrimaryKey       []Column `json:"primary_key"`
	ForeignKeys      []Column `json:"foreign_keys"`
	LookupReferences []Column `json:"lookup_references"`
	DataColumns      []Column `json:"data_columns"`
	DatetimeColumns  []Column `json:"datetime_columns"`
}

// ColumnAnalysis summarizes the structural shape of an entity.
type ColumnAnalysis struct {
	HasPrimaryKey      bool `json:"has_primary_key"`
	ForeignKeyCount    int  `json:"foreign_key_count"`
	IsHighlyRelational bool `json:"is_highly_relational"`
}

// AnalyzeColumnsResult is the output of AnalyzeColumns.
type AnalyzeColumnsResult struct {
	Success           bool               `json:"success"`
	Error             string             `json:"error,omitempty"`
	AvailableEntities []string           `json:"available_entities,omitempty"`
	Entity            string             `json:"entity,omitempty"`
	TotalColumns      int                `json:"total_columns"`
	Columns           []Column           `json:"columns,omitempty"`
	Categorized       CategorizedColumns `json:"categorized"`
	Analysis          ColumnAnalysis     `json:"analysis"`
}

// AnalyzeColumns categorizes an entity's columns. System columns are
// excluded unless includeSystem is set; columnFilter restricts by
// case-insensitive substring on the column name. An entity with more
// than three foreign keys is flagged as highly relational.
func AnalyzeColumns(entityName, columnFilter string, includeSystem bool) AnalyzeColumnsResult {
	entity, ok := Lookup(entityName)
	if !ok {
		return AnalyzeColumnsResult{
			Error:             "Entity '" + entityName + "' not found",
			AvailableEntities: Names(),
		}
	}

	columns := make([]Column, 0, len(entity.Columns))
	filter := strings.ToLower(columnFilter)
	for _, c := range entity.Columns {
		if !includeSystem && isSystemColumn(c.Name) {
			continue
		}
		if filter != "" && !strings.Contains(strings.ToLower(c.Name), filter) {
			continue
		}
		columns = append(columns, c)
	}

	categorized := CategorizedColumns{
		PrimaryKey:       []Column{},
		ForeignKeys:      []Column{},
		LookupReferences: []Column{},
		DataColumns:      []Column{},
		DatetimeColumns:  []Column{},
	}
	for _, c := range columns {
		switch {
		case c.Name == "Id":
			categorized.PrimaryKey = append(categorized.PrimaryKey, c)
		case strings.HasSuffix(c.Name, "Id") && c.Type == "uniqueidentifier":
			if strings.Contains(c.Description, "FK") {
				categorized.ForeignKeys = append(categorized.ForeignKeys, c)
			} else {
				categorized.LookupReferences = append(categorized.LookupReferences, c)
			}
		case strings.Contains(c.Type, "datetime"):
			categorized.DatetimeColumns = append(categorized.DatetimeColumns, c)
		default:
			categorized.DataColumns = append(categorized.DataColumns, c)
		}
	}

	return AnalyzeColumnsResult{
		Success:      true,
		Entity:       entity.Name,
		TotalColumns: len(columns),
		Columns:      columns,
		Categorized:  categorized,
		Analysis: ColumnAnalysis{
			HasPrimaryKey:      len(categorized.PrimaryKey) > 0,
			ForeignKeyCount:    len(categorized.ForeignKeys),
			IsHighlyRelational: len(categorized.ForeignKeys) > 3,
		},
	}
}
