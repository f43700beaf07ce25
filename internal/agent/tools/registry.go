// Package tools provides the tool registry and execution for the crewline agents.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/moolen/crewline/internal/crm/docs"
)

const (
	// MaxToolResponseBytes is the maximum size of a tool response in bytes.
	// Responses larger than this will be truncated to prevent context overflow.
	// 50KB is a reasonable limit (~12,500 tokens at 4 chars/token).
	MaxToolResponseBytes = 50 * 1024
)

// truncatedData is used when tool output exceeds MaxToolResponseBytes.
// It preserves structure while indicating data was truncated.
type truncatedData struct {
	Truncated      bool   `json:"_truncated"`
	OriginalBytes  int    `json:"_original_bytes"`
	TruncatedBytes int    `json:"_truncated_bytes"`
	TruncationNote string `json:"_truncation_note"`
	PartialData    string `json:"partial_data"`
}

// truncateResult checks if the result data exceeds MaxToolResponseBytes and
// truncates it if necessary to prevent context overflow.
func truncateResult(result *Result, maxBytes int) *Result {
	if result == nil || result.Data == nil {
		return result
	}

	// Marshal the data to check its size
	dataBytes, err := json.Marshal(result.Data)
	if err != nil {
		// If we can't marshal, return as-is and let the caller handle it
		return result
	}

	if len(dataBytes) <= maxBytes {
		return result
	}

	// Data exceeds limit - create truncated version
	// Keep some of the original data for context (first ~80% of allowed bytes for partial data)
	partialDataBytes := maxBytes * 80 / 100
	partialData := string(dataBytes)
	if len(partialData) > partialDataBytes {
		partialData = partialData[:partialDataBytes]
	}

	truncated := &truncatedData{
		Truncated:      true,
		OriginalBytes:  len(dataBytes),
		TruncatedBytes: maxBytes,
		TruncationNote: fmt.Sprintf("Response truncated from %d to ~%d bytes to prevent context overflow. Consider using more specific filters to reduce result size.", len(dataBytes), maxBytes),
		PartialData:    partialData,
	}

	// Update summary to indicate truncation
	summary := result.Summary
	if summary != "" {
		summary = fmt.Sprintf("%s [TRUNCATED: %d→%d bytes]", summary, len(dataBytes), maxBytes)
	} else {
		summary = fmt.Sprintf("[TRUNCATED: %d→%d bytes]", len(dataBytes), maxBytes)
	}

	return &Result{
		Success:         result.Success,
		Data:            truncated,
		Error:           result.Error,
		Summary:         summary,
		ExecutionTimeMs: result.ExecutionTimeMs,
	}
}

// Tool defines the interface for agent tools.
type Tool interface {
	// Name returns the tool's unique identifier.
	Name() string

	// Description returns a human-readable description for the LLM.
	Description() string

	// InputSchema returns JSON Schema for input validation.
	InputSchema() map[string]interface{}

	// Execute runs the tool with given input.
	Execute(ctx context.Context, input json.RawMessage) (*Result, error)
}

// Result represents the output of a tool execution.
type Result struct {
	// Success indicates if the tool executed successfully
	Success bool `json:"success"`

	// Data contains the tool's output (tool-specific structure)
	Data interface{} `json:"data,omitempty"`

	// Error contains error details if Success is false
	Error string `json:"error,omitempty"`

	// Summary is a brief description of what happened (for display)
	Summary string `json:"summary,omitempty"`

	// ExecutionTimeMs is how long the tool took to run
	ExecutionTimeMs int64 `json:"executionTimeMs"`
}

// Registry manages tool registration and discovery.
type Registry struct {
	tools  map[string]Tool
	mu     sync.RWMutex
	logger *slog.Logger
}

// Dependencies contains the external dependencies needed by tools.
type Dependencies struct {
	// DocsGenerator caches rendered schema documentation. A nil generator
	// is replaced with a fresh one.
	DocsGenerator *docs.Generator
	Logger        *slog.Logger
}

// NewRegistry creates a new tool registry with the provided dependencies.
func NewRegistry(deps Dependencies) *Registry {
	r := &Registry{
		tools:  make(map[string]Tool),
		logger: deps.Logger,
	}

	if r.logger == nil {
		r.logger = slog.Default()
	}
	if deps.DocsGenerator == nil {
		deps.DocsGenerator = docs.NewGenerator()
	}

	// Schema tools
	r.register(&ExploreEntityTool{})
	r.register(&FindRelationshipsTool{})
	r.register(&AnalyzeColumnsTool{})
	r.register(&SearchSchemaTool{})

	// Query tools
	r.register(&BuildSQLTool{})
	r.register(&BuildODataTool{})
	r.register(&OptimizeQueryTool{})
	r.register(&ValidateQueryTool{})

	// Metrics tools
	r.register(&DefineMetricTool{})
	r.register(&CalculateMetricTool{})
	r.register(&BrowseKPIsTool{})
	r.register(&DesignDashboardTool{})

	// Documentation tools
	r.register(&GenerateDocsTool{generator: deps.DocsGenerator})
	r.register(&DataDictionaryTool{})
	r.register(&GenerateERDTool{})

	// Lifecycle tools
	r.register(&CreateTicketTool{})
	r.register(&SearchTicketsTool{})
	r.register(&UpdateTicketTool{})
	r.register(&ParseRequirementsTool{})
	r.register(&ValidateRequirementsTool{})
	r.register(&TraceRequirementTool{})
	r.register(&PlanSprintTool{})
	r.register(&ProjectStatusTool{})
	r.register(&AssessRiskTool{})
	r.register(&PlanReleaseTool{})

	return r
}

// NewMockRegistry creates a tool registry with mock tools that return canned
// responses. This is used for testing the TUI without real tool execution.
func NewMockRegistry() *Registry {
	r := &Registry{
		tools:  make(map[string]Tool),
		logger: slog.Default(),
	}

	r.register(&MockTool{
		name:        "explore_entity",
		description: "Explore the structure of a CRM entity",
		schema: map[string]interface{}{
			"type":     "object",
			"required": []string{"entity_name"},
			"properties": map[string]interface{}{
				"entity_name":           map[string]interface{}{"type": "string"},
				"include_relationships": map[string]interface{}{"type": "boolean"},
			},
		},
		response: &Result{
			Success: true,
			Summary: "Explored Contact: 15 columns, 4 relationships",
			Data: map[string]interface{}{
				"entity":       "Contact",
				"table_name":   "Contact",
				"column_count": 15,
				"relationships": []map[string]interface{}{
					{"related_entity": "Account", "type": "many-to-one", "via": "AccountId"},
				},
			},
		},
		delay: 300 * time.Millisecond,
	})

	r.register(&MockTool{
		name:        "build_sql",
		description: "Build a SQL query against the CRM schema",
		schema: map[string]interface{}{
			"type":     "object",
			"required": []string{"objective", "entities"},
			"properties": map[string]interface{}{
				"objective":    map[string]interface{}{"type": "string"},
				"entities":     map[string]interface{}{"type": "string"},
				"filters":      map[string]interface{}{"type": "string"},
				"aggregations": map[string]interface{}{"type": "string"},
			},
		},
		response: &Result{
			Success: true,
			Summary: "Built SELECT over Contact JOIN Account",
			Data: map[string]interface{}{
				"query":         "SELECT c.Id, c.Name FROM [Contact] c INNER JOIN [Account] a ON c.AccountId = a.Id",
				"entities_used": []string{"Contact", "Account"},
				"query_type":    "simple_select",
			},
		},
		delay: 300 * time.Millisecond,
	})

	r.register(&MockTool{
		name:        "calculate_metric",
		description: "Generate the calculation query for a KPI",
		schema: map[string]interface{}{
			"type":     "object",
			"required": []string{"metric_id"},
			"properties": map[string]interface{}{
				"metric_id":   map[string]interface{}{"type": "string"},
				"time_period": map[string]interface{}{"type": "string"},
				"group_by":    map[string]interface{}{"type": "string"},
			},
		},
		response: &Result{
			Success: true,
			Summary: "Calculation ready for sales.win_rate (last_quarter)",
			Data: map[string]interface{}{
				"metric_id":   "sales.win_rate",
				"metric_name": "Win Rate",
				"time_period": "last_quarter",
				"unit":        "percentage",
			},
		},
		delay: 300 * time.Millisecond,
	})

	r.register(&MockTool{
		name:        "project_status",
		description: "Get the current project delivery status",
		schema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"project_id":      map[string]interface{}{"type": "string"},
				"include_details": map[string]interface{}{"type": "boolean"},
			},
		},
		response: &Result{
			Success: true,
			Summary: "Project default is on_track (sprint 65% complete, 1 blocker)",
			Data: map[string]interface{}{
				"project_id":      "default",
				"overall_health":  "on_track",
				"sprint_progress": 65,
				"blockers_count":  1,
			},
		},
		delay: 300 * time.Millisecond,
	})

	return r
}

// MockTool is a tool that returns canned responses for testing.
type MockTool struct {
	name        string
	description string
	schema      map[string]interface{}
	response    *Result
	delay       time.Duration
}

func (t *MockTool) Name() string                        { return t.name }
func (t *MockTool) Description() string                 { return t.description }
func (t *MockTool) InputSchema() map[string]interface{} { return t.schema }

func (t *MockTool) Execute(ctx context.Context, input json.RawMessage) (*Result, error) {
	// Simulate execution delay
	if t.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(t.delay):
		}
	}

	if t.response == nil {
		return &Result{
			Success: true,
			Summary: fmt.Sprintf("Mock response for %s", t.name),
			Data:    map[string]interface{}{"mock": true},
		}, nil
	}

	return &Result{
		Success:         t.response.Success,
		Data:            t.response.Data,
		Error:           t.response.Error,
		Summary:         t.response.Summary,
		ExecutionTimeMs: t.delay.Milliseconds(),
	}, nil
}

// register adds a tool to the registry (internal, no locking).
func (r *Registry) register(tool Tool) {
	r.tools[tool.Name()] = tool
	r.logger.Debug("registered tool", "name", tool.Name())
}

// Register adds a tool to the registry.
func (r *Registry) Register(tool Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.register(tool)
}

// Get returns a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools.
func (r *Registry) List() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	return tools
}

// Definition is the wire shape of a tool as sent to the Messages API.
type Definition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"input_schema"`
}

// Definitions returns the wire definitions of all registered tools.
func (r *Registry) Definitions() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]Definition, 0, len(r.tools))
	for _, tool := range r.tools {
		defs = append(defs, Definition{
			Name:        tool.Name(),
			Description: tool.Description(),
			InputSchema: tool.InputSchema(),
		})
	}
	return defs
}

// Execute runs a tool by name with the given input.
func (r *Registry) Execute(ctx context.Context, name string, input json.RawMessage) *Result {
	tool, ok := r.Get(name)
	if !ok {
		toolExecutions.WithLabelValues(name, "not_found").Inc()
		return &Result{
			Success: false,
			Error:   fmt.Sprintf("tool %q not found", name),
		}
	}

	start := time.Now()
	result, err := tool.Execute(ctx, input)
	toolDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	if err != nil {
		toolExecutions.WithLabelValues(name, "error").Inc()
		return &Result{
			Success:         false,
			Error:           err.Error(),
			ExecutionTimeMs: time.Since(start).Milliseconds(),
		}
	}

	result.ExecutionTimeMs = time.Since(start).Milliseconds()
	if result.Success {
		toolExecutions.WithLabelValues(name, "success").Inc()
	} else {
		toolExecutions.WithLabelValues(name, "failure").Inc()
	}

	// Truncate result if it exceeds the maximum size to prevent context overflow
	result = truncateResult(result, MaxToolResponseBytes)

	return result
}
