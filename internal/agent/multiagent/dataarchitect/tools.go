package dataarchitect

// toolNames lists the registry tools available to the Data Architect Agent.
// The architect spans schema, query, and documentation concerns because
// architectural reviews need all three views of an entity.
var toolNames = []string{
	"explore_entity",
	"find_relationships",
	"analyze_columns",
	"search_schema",
	"build_sql",
	"build_odata",
	"generate_docs",
	"data_dictionary",
	"generate_erd",
}
