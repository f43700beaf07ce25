package quality

// toolNames lists the registry tools available to the Quality Advocate Agent.
var toolNames = []string{
	"validate_requirements",
	"trace_requirement",
}
