package schemaanalyst

// toolNames lists the registry tools available to the Schema Analyst Agent:
// schema exploration plus the documentation generators it needs for entity
// reports.
var toolNames = []string{
	"explore_entity",
	"find_relationships",
	"analyze_columns",
	"search_schema",
	"generate_docs",
	"data_dictionary",
	"generate_erd",
}
