package requirements

// toolNames lists the registry tools available to the Requirements Analyst Agent.
var toolNames = []string{
	"parse_requirements",
	"validate_requirements",
	"trace_requirement",
	"search_tickets",
}
