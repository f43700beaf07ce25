// Package bridge exposes registry tools to ADK agents.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/functiontool"

	crewtools "github.com/moolen/crewline/internal/agent/tools"
)

// toolWrapper adapts a registry tool to the ADK tool interface.
type toolWrapper struct {
	inner crewtools.Tool
}

// Wrap creates an ADK tool from a registry tool.
func Wrap(t crewtools.Tool) (tool.Tool, error) {
	w := &toolWrapper{inner: t}
	return functiontool.New(functiontool.Config{
		Name:        t.Name(),
		Description: t.Description(),
	}, w.execute)
}

// WrapNamed wraps the named tools from the registry, preserving order.
// Unknown names fail rather than being skipped so an agent never starts
// with a partial toolset.
func WrapNamed(registry *crewtools.Registry, names ...string) ([]tool.Tool, error) {
	wrapped := make([]tool.Tool, 0, len(names))
	for _, name := range names {
		t, ok := registry.Get(name)
		if !ok {
			return nil, fmt.Errorf("tool %q not registered", name)
		}
		adkTool, err := Wrap(t)
		if err != nil {
			return nil, fmt.Errorf("wrapping %s: %w", name, err)
		}
		wrapped = append(wrapped, adkTool)
	}
	return wrapped, nil
}

// execute is the handler that bridges registry tools to ADK.
func (w *toolWrapper) execute(ctx tool.Context, args map[string]any) (map[string]any, error) {
	// Registry tools take json.RawMessage input
	argsJSON, err := json.Marshal(args)
	if err != nil {
		return map[string]any{"error": fmt.Sprintf("failed to marshal args: %v", err)}, nil
	}

	// tool.Context carries ADK invocation state, not a context.Context,
	// so registry tools run without cancellation here. All registry
	// tools are in-memory and return quickly.
	result, err := w.inner.Execute(context.Background(), argsJSON)
	if err != nil {
		return map[string]any{"error": fmt.Sprintf("tool execution failed: %v", err)}, nil
	}

	if !result.Success {
		return map[string]any{
			"success": false,
			"error":   result.Error,
		}, nil
	}

	// Serialize and deserialize to convert the typed payload to map[string]any
	dataJSON, err := json.Marshal(result.Data)
	if err != nil {
		return map[string]any{
			"success": true,
			"summary": result.Summary,
			"data":    fmt.Sprintf("%v", result.Data),
		}, nil
	}

	var dataMap map[string]any
	if err := json.Unmarshal(dataJSON, &dataMap); err != nil {
		return map[string]any{
			"success": true,
			"summary": result.Summary,
			"data":    string(dataJSON),
		}, nil
	}

	return map[string]any{
		"success": true,
		"summary": result.Summary,
		"data":    dataMap,
	}, nil
}
