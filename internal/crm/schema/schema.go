// Package schema holds the built-in CRM schema knowledge base and the
// deterministic exploration tools that operate on it. All lookups are
// case-insensitive and never fail with an error: an unknown entity yields
// a result with Success=false and the list of valid entity names.
package schema

import "strings"

// Column describes a single column of an entity.
type Column struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Relationship describes how an entity relates to another. Exactly one of
// Column or Via is set for FK and junction relationships; Detail marks
// parent-child detail relationships.
type Relationship struct {
	Entity string `json:"entity"`
	Type   string `json:"type"`
	Column string `json:"column,omitempty"`
	Via    string `json:"via,omitempty"`
	Detail bool   `json:"detail,omitempty"`
}

// Entity is one record of the schema knowledge base.
type Entity struct {
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	TableName     string         `json:"table_name"`
	Columns       []Column       `json:"columns"`
	Relationships []Relationship `json:"relationships"`
}

// Lookup resolves an entity by name, case-insensitively. The returned
// entity keeps its canonical casing.
func Lookup(name string) (Entity, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, e := range Entities {
		if strings.ToLower(e.Name) == want {
			return e, true
		}
	}
	return Entity{}, false
}

// Names returns the canonical entity names in knowledge-base order.
func Names() []string {
	names := make([]string, len(Entities))
	for i, e := range Entities {
		names[i] = e.Name
	}
	return names
}

// SystemColumns are audit/bookkeeping columns excluded from column
// analysis unless explicitly requested.
var SystemColumns = []string{"CreatedOn", "ModifiedOn", "CreatedById", "ModifiedById", "ProcessListeners"}

func isSystemColumn(name string) bool {
	for _, s := range SystemColumns {
		if name == s {
			return true
		}
	}
	return false
}

// notFound builds the uniform miss payload shared by the schema tools.
func notFoundError(entityName string) (string, []string, string) {
	available := Names()
	return "Entity '" + entityName + "' not found in schema knowledge base",
		available,
		"Try one of: " + strings.Join(available, ", ")
}
