package intake

// toolNames lists the registry tools available to the Intake Agent.
// ask_user_question is added separately in New because it is not a
// registry tool.
var toolNames = []string{
	"create_ticket",
	"search_tickets",
	"update_ticket",
}
