package docs

import (
	"strings"

	"github.com/moolen/crewline/internal/crm/schema"
)

// Reference names the table a foreign key points at.
type Reference struct {
	Table  string `json:"table"`
	Column string `json:"column"`
}

// ColumnSpec is one data dictionary entry.
type ColumnSpec struct {
	ColumnName    string     `json:"column_name"`
	DataType      string     `json:"data_type"`
	Description   string     `json:"description"`
	Nullable      bool       `json:"nullable"`
	IsPrimaryKey  bool       `json:"is_primary_key"`
	IsForeignKey  bool       `json:"is_foreign_key"`
	BusinessRules []string   `json:"business_rules"`
	SampleValues  []string   `json:"sample_values"`
	References    *Reference `json:"references,omitempty"`
}

// Dictionary is the column-level detail of a data dictionary.
type Dictionary struct {
	Columns            []ColumnSpec `json:"columns"`
	ColumnCount        int          `json:"column_count"`
	PrimaryKey         string       `json:"primary_key"`
	ForeignKeyCount    int          `json:"foreign_key_count"`
	IndexesRecommended []string     `json:"indexes_recommended"`
}

// DictionaryResult is the output of DataDictionary.
type DictionaryResult struct {
	Success           bool              `json:"success"`
	Error             string            `json:"error,omitempty"`
	AvailableEntities []string          `json:"available_entities,omitempty"`
	Entity            string            `json:"entity,omitempty"`
	TableName         string            `json:"table_name,omitempty"`
	Description       string            `json:"description,omitempty"`
	DataDictionary    Dictionary        `json:"data_dictionary,omitzero"`
	AuditColumns      map[string]string `json:"audit_columns,omitempty"`
	Notes             []string          `json:"notes,omitempty"`
}

// DataDictionary builds a detailed data dictionary for one entity.
// Sample values are included only when requested since they add bulk
// to agent tool responses.
func DataDictionary(entityName string, includeSamples bool) DictionaryResult {
	entity, ok := schema.Lookup(entityName)
	if !ok {
		return DictionaryResult{
			Error:             "Entity '" + entityName + "' not found",
			AvailableEntities: schema.Names(),
		}
	}

	columns := make([]ColumnSpec, 0, len(entity.Columns))
	fkCount := 0
	for _, col := range entity.Columns {
		isFK := strings.HasSuffix(col.Name, "Id") && col.Name != "Id"
		spec := ColumnSpec{
			ColumnName:    col.Name,
			DataType:      col.Type,
			Description:   col.Description,
			Nullable:      col.Name != "Id",
			IsPrimaryKey:  col.Name == "Id",
			IsForeignKey:  isFK,
			BusinessRules: businessRules(col),
			SampleValues:  []string{},
		}
		if includeSamples {
			spec.SampleValues = sampleValues(col)
		}
		if isFK {
			fkCount++
			spec.References = reference(col.Name)
		}
		columns = append(columns, spec)
	}

	return DictionaryResult{
		Success:     true,
		Entity:      entity.Name,
		TableName:   entity.TableName,
		Description: entity.Description,
		DataDictionary: Dictionary{
			Columns:            columns,
			ColumnCount:        len(columns),
			PrimaryKey:         "Id",
			ForeignKeyCount:    fkCount,
			IndexesRecommended: recommendIndexes(columns),
		},
		AuditColumns: map[string]string{
			"CreatedOn":    "Record creation timestamp",
			"ModifiedOn":   "Last modification timestamp",
			"CreatedById":  "User who created the record",
			"ModifiedById": "User who last modified the record",
		},
		Notes: []string{
			"All timestamps are stored in UTC",
			"GUID columns use uniqueidentifier type",
			"Lookup references point to Id columns in related tables",
		},
	}
}

func businessRules(col schema.Column) []string {
	switch {
	case col.Name == "Id":
		return []string{"Auto-generated GUID primary key"}
	case col.Name == "Name":
		return []string{"Required field for record identification"}
	case col.Name == "Email":
		return []string{
			"Must be valid email format",
			"Should be unique for Contact records",
		}
	case strings.Contains(col.Name, "Phone"):
		return []string{"Phone number format validation recommended"}
	case col.Name == "OwnerId":
		return []string{
			"Must reference active system user",
			"Used for record ownership and security",
		}
	case strings.Contains(col.Name, "Date"):
		return []string{"Date validation applies to future-dated fields"}
	case col.Name == "Amount" || col.Type == "decimal":
		return []string{"Non-negative value constraint recommended"}
	}
	return []string{}
}

func sampleValues(col schema.Column) []string {
	switch {
	case col.Type == "uniqueidentifier":
		return []string{"00000000-0000-0000-0000-000000000001"}
	case strings.HasPrefix(col.Type, "nvarchar"):
		switch {
		case strings.Contains(col.Name, "Email"):
			return []string{"john.doe@example.com", "jane.smith@company.org"}
		case strings.Contains(col.Name, "Phone"):
			return []string{"+1-555-123-4567", "(555) 987-6543"}
		case strings.Contains(col.Name, "Name"):
			return []string{"Acme Corporation", "John Doe"}
		}
		return []string{"Sample text value"}
	case col.Type == "datetime":
		return []string{"2026-01-15T10:30:00Z"}
	case col.Type == "decimal":
		return []string{"10000.00", "25000.50"}
	case col.Type == "int":
		return []string{"100", "500"}
	case col.Type == "bit":
		return []string{"1 (true)", "0 (false)"}
	}
	return []string{}
}

var knownReferences = map[string]string{
	"AccountId":           "Account",
	"ContactId":           "Contact",
	"OwnerId":             "Contact",
	"OpportunityId":       "Opportunity",
	"LeadId":              "Lead",
	"ActivityId":          "Activity",
	"StageId":             "OpportunityStage",
	"PriorityId":          "Priority",
	"GroupId":             "SysAdminUnit",
	"SatisfactionLevelId": "SatisfactionLevel",
}

// reference resolves a foreign key column to its target table. Lookup
// columns follow the convention that the table name is the column name
// without the Id suffix.
func reference(columnName string) *Reference {
	if table, ok := knownReferences[columnName]; ok {
		return &Reference{Table: table, Column: "Id"}
	}
	base := strings.TrimSuffix(columnName, "Id")
	if strings.HasSuffix(base, "Type") || strings.HasSuffix(base, "Status") ||
		strings.HasSuffix(base, "Category") || strings.HasSuffix(base, "Source") {
		return &Reference{Table: base, Column: "Id"}
	}
	return &Reference{Table: "Unknown", Column: "Id"}
}

func recommendIndexes(columns []ColumnSpec) []string {
	var indexes []string
	for _, col := range columns {
		if col.IsForeignKey {
			indexes = append(indexes, "IX_"+col.ColumnName)
		}
	}
	return append(indexes,
		"IX_CreatedOn (for date range queries)",
		"IX_OwnerId_CreatedOn (for user activity queries)")
}
