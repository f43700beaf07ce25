package release

// toolNames lists the registry tools available to the Release Planner Agent.
var toolNames = []string{
	"plan_release",
	"assess_risk",
	"project_status",
}
