// Package lifecycle implements the deterministic development lifecycle
// tools: ticket management, requirements analysis, and delivery
// planning. The ticket and status backends serve canned data; wiring a
// real tracker replaces the data source, not the tool surface.
package lifecycle

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

const (
	ticketIDPrefix  = "TICKET-"
	defaultType     = "task"
	defaultPriority = "medium"
	defaultLimit    = 10
)

// validUpdateFields are the ticket fields UpdateTicket accepts.
var validUpdateFields = []string{"status", "priority", "assignee", "labels", "description"}

// TicketSummary is one search hit.
type TicketSummary struct {
	TicketID string `json:"ticket_id"`
	Title    string `json:"title"`
	Status   string `json:"status"`
	Priority string `json:"priority"`
	Type     string `json:"type"`
}

// CreateTicketResult is the output of CreateTicket.
type CreateTicketResult struct {
	Success  bool     `json:"success"`
	TicketID string   `json:"ticket_id"`
	Title    string   `json:"title"`
	Type     string   `json:"type"`
	Priority string   `json:"priority"`
	Labels   []string `json:"labels"`
	Status   string   `json:"status"`
	Message  string   `json:"message"`
}

// CreateTicket registers a new ticket and returns its generated ID.
// Empty type and priority fall back to task/medium. Labels are a
// comma-separated list.
func CreateTicket(title, description, ticketType, priority, labels string) CreateTicketResult {
	if ticketType == "" {
		ticketType = defaultType
	}
	if priority == "" {
		priority = defaultPriority
	}

	labelList := []string{}
	for _, label := range strings.Split(labels, ",") {
		if label = strings.TrimSpace(label); label != "" {
			labelList = append(labelList, label)
		}
	}

	id := newTicketID()
	return CreateTicketResult{
		Success:  true,
		TicketID: id,
		Title:    title,
		Type:     ticketType,
		Priority: priority,
		Labels:   labelList,
		Status:   "open",
		Message:  "Successfully created " + ticketType + " ticket: " + id,
	}
}

func newTicketID() string {
	u := uuid.New()
	return ticketIDPrefix + strings.ToUpper(hex.EncodeToString(u[:4]))
}

// SearchTicketsResult is the output of SearchTickets.
type SearchTicketsResult struct {
	Success      bool            `json:"success"`
	Query        string          `json:"query"`
	StatusFilter string          `json:"status_filter"`
	ResultsCount int             `json:"results_count"`
	Tickets      []TicketSummary `json:"tickets"`
}

// SearchTickets looks up tickets matching a query. The backend is
// canned; results echo the query so agents can reason about hits.
func SearchTickets(query, status string, limit int) SearchTicketsResult {
	if status == "" {
		status = "all"
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	tickets := []TicketSummary{
		{
			TicketID: "TICKET-001",
			Title:    "Sample ticket matching: " + query,
			Status:   "open",
			Priority: "medium",
			Type:     "task",
		},
		{
			TicketID: "TICKET-002",
			Title:    "Related to: " + query,
			Status:   "in_progress",
			Priority: "high",
			Type:     "feature",
		},
	}
	if limit < len(tickets) {
		tickets = tickets[:limit]
	}

	return SearchTicketsResult{
		Success:      true,
		Query:        query,
		StatusFilter: status,
		ResultsCount: len(tickets),
		Tickets:      tickets,
	}
}

// UpdateTicketResult is the output of UpdateTicket.
type UpdateTicketResult struct {
	Success      bool     `json:"success"`
	Error        string   `json:"error,omitempty"`
	ValidFields  []string `json:"valid_fields,omitempty"`
	TicketID     string   `json:"ticket_id,omitempty"`
	FieldUpdated string   `json:"field_updated,omitempty"`
	NewValue     string   `json:"new_value,omitempty"`
	Message      string   `json:"message,omitempty"`
}

// UpdateTicket sets one field of an existing ticket. Unknown fields
// come back with the valid field list.
func UpdateTicket(ticketID, field, value string) UpdateTicketResult {
	fieldLower := strings.ToLower(field)
	valid := false
	for _, f := range validUpdateFields {
		if f == fieldLower {
			valid = true
			break
		}
	}
	if !valid {
		return UpdateTicketResult{
			Error:       "Invalid field '" + field + "'",
			ValidFields: validUpdateFields,
		}
	}

	return UpdateTicketResult{
		Success:      true,
		TicketID:     ticketID,
		FieldUpdated: fieldLower,
		NewValue:     value,
		Message:      "Successfully updated " + fieldLower + " to '" + value + "' for ticket " + ticketID,
	}
}
