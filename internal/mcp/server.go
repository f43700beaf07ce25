// Package mcp exposes the deterministic crew tools over the Model Context
// Protocol so external MCP clients can call them directly.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/moolen/crewline/internal/agent/tools"
)

// Server wraps the mcp-go server with the crewline tool registry.
type Server struct {
	mcpServer *server.MCPServer
	registry  *tools.Registry
	version   string
}

// NewServer creates an MCP server exposing every tool in the registry.
func NewServer(registry *tools.Registry, version string) (*Server, error) {
	if registry == nil {
		return nil, fmt.Errorf("tool registry is required")
	}

	mcpServer := server.NewMCPServer(
		"Crewline MCP Server",
		version,
		server.WithToolCapabilities(false), // No tool subscription for now
		server.WithLogging(),               // Enable logging capability
	)

	s := &Server{
		mcpServer: mcpServer,
		registry:  registry,
		version:   version,
	}

	s.registerTools()
	s.registerPrompts()

	return s, nil
}

// registerTools registers every registry tool with the mcp-go server.
func (s *Server) registerTools() {
	for _, t := range s.registry.List() {
		schemaJSON, err := json.Marshal(t.InputSchema())
		if err != nil {
			// This should never happen with well-formed schemas
			panic(fmt.Sprintf("failed to marshal schema for tool %s: %v", t.Name(), err))
		}

		mcpTool := mcp.NewToolWithRawSchema(t.Name(), t.Description(), schemaJSON)
		s.mcpServer.AddTool(mcpTool, s.createToolHandler(t.Name()))
	}
}

// createToolHandler adapts a registry tool to the mcp-go handler format.
// Execution goes through the registry so instrumentation and response
// truncation apply to MCP calls as well.
func (s *Server) createToolHandler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := json.Marshal(request.Params.Arguments)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid arguments: %v", err)), nil
		}

		result := s.registry.Execute(ctx, name, args)
		if !result.Success {
			return mcp.NewToolResultError(result.Error), nil
		}

		resultJSON, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to format result: %v", err)), nil
		}

		return mcp.NewToolResultText(string(resultJSON)), nil
	}
}

func (s *Server) registerPrompts() {
	// Schema exploration workflow prompt
	explorePrompt := mcp.Prompt{
		Name:        "entity_exploration",
		Description: "Explore a CRM entity end to end: structure, relationships, and example queries",
		Arguments: []mcp.PromptArgument{
			{Name: "entity_name", Description: "The entity to explore (e.g. Contact, Opportunity)", Required: true},
			{Name: "focus", Description: "Optional focus area (columns, relationships, queries)", Required: false},
		},
	}

	s.mcpServer.AddPrompt(explorePrompt, func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		entity := request.Params.Arguments["entity_name"]
		focus := request.Params.Arguments["focus"]

		text := fmt.Sprintf("Explore the %s entity. Use explore_entity and find_relationships to map its structure, then build an example query with build_sql.", entity)
		if focus != "" {
			text += fmt.Sprintf(" Focus on: %s", focus)
		}

		return &mcp.GetPromptResult{
			Description: "Entity exploration workflow",
			Messages: []mcp.PromptMessage{
				{
					Role: mcp.RoleUser,
					Content: mcp.TextContent{
						Type: "text",
						Text: text,
					},
				},
			},
		}, nil
	})

	// Sprint planning workflow prompt
	sprintPrompt := mcp.Prompt{
		Name:        "sprint_planning",
		Description: "Plan a sprint from a goal, team capacity, and backlog items",
		Arguments: []mcp.PromptArgument{
			{Name: "sprint_goal", Description: "The goal of the sprint", Required: true},
			{Name: "capacity", Description: "Team capacity in points or person-days", Required: true},
			{Name: "backlog", Description: "Optional comma-separated backlog item ids", Required: false},
		},
	}

	s.mcpServer.AddPrompt(sprintPrompt, func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		goal := request.Params.Arguments["sprint_goal"]
		capacity := request.Params.Arguments["capacity"]
		backlog := request.Params.Arguments["backlog"]

		text := fmt.Sprintf("Plan a sprint for the goal %q with capacity %s. Use plan_sprint for the capacity math and assess_risk for the committed items.", goal, capacity)
		if backlog != "" {
			text += fmt.Sprintf(" Candidate backlog items: %s", backlog)
		}

		return &mcp.GetPromptResult{
			Description: "Sprint planning workflow",
			Messages: []mcp.PromptMessage{
				{
					Role: mcp.RoleUser,
					Content: mcp.TextContent{
						Type: "text",
						Text: text,
					},
				},
			},
		}, nil
	})
}

// ServeStdio serves MCP over stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// GetMCPServer returns the underlying mcp-go server for transport setup.
func (s *Server) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}
