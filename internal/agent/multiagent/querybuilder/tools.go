package querybuilder

// toolNames lists the registry tools available to the Query Builder Agent.
// Schema tools are included so the agent can verify entities and join paths
// before building queries.
var toolNames = []string{
	"build_sql",
	"build_odata",
	"optimize_query",
	"validate_query",
	"explore_entity",
	"find_relationships",
	"search_schema",
}
