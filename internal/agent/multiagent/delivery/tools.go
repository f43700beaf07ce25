package delivery

// toolNames lists the registry tools available to the Delivery Manager Agent.
var toolNames = []string{
	"plan_sprint",
	"project_status",
	"assess_risk",
	"create_ticket",
	"search_tickets",
	"update_ticket",
}
