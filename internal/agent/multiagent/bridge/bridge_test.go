package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"iter"
	"testing"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/memory"
	"google.golang.org/adk/session"
	"google.golang.org/genai"

	crewtools "github.com/moolen/crewline/internal/agent/tools"
)

// mockState implements session.State for testing.
type mockState struct {
	data map[string]any
}

func newMockState() *mockState {
	return &mockState{data: make(map[string]any)}
}

func (m *mockState) Get(key string) (any, error) {
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return nil, session.ErrStateKeyNotExist
}

func (m *mockState) Set(key string, value any) error {
	m.data[key] = value
	return nil
}

func (m *mockState) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for k, v := range m.data {
			if !yield(k, v) {
				return
			}
		}
	}
}

// mockToolContext implements tool.Context for testing.
type mockToolContext struct {
	context.Context
	state   *mockState
	actions *session.EventActions
}

func newMockToolContext() *mockToolContext {
	return &mockToolContext{
		Context: context.Background(),
		state:   newMockState(),
		actions: &session.EventActions{
			StateDelta: make(map[string]any),
		},
	}
}

func (m *mockToolContext) FunctionCallID() string         { return "test-function-call-id" }
func (m *mockToolContext) Actions() *session.EventActions { return m.actions }
func (m *mockToolContext) SearchMemory(ctx context.Context, query string) (*memory.SearchResponse, error) {
	return &memory.SearchResponse{}, nil
}
func (m *mockToolContext) Artifacts() agent.Artifacts           { return nil }
func (m *mockToolContext) State() session.State                 { return m.state }
func (m *mockToolContext) UserContent() *genai.Content          { return nil }
func (m *mockToolContext) InvocationID() string                 { return "test-invocation-id" }
func (m *mockToolContext) AgentName() string                    { return "test-agent" }
func (m *mockToolContext) ReadonlyState() session.ReadonlyState { return m.state }
func (m *mockToolContext) UserID() string                       { return "test-user" }
func (m *mockToolContext) AppName() string                      { return "test-app" }
func (m *mockToolContext) SessionID() string                    { return "test-session" }
func (m *mockToolContext) Branch() string                       { return "" }

// fakeTool is a minimal registry tool for bridge tests.
type fakeTool struct {
	name    string
	result  *crewtools.Result
	err     error
	gotArgs json.RawMessage
}

func (f *fakeTool) Name() string        { return f.name }
func (f *fakeTool) Description() string { return "fake tool for tests" }
func (f *fakeTool) InputSchema() map[string]interface{} {
	return map[string]interface{}{"type": "object"}
}
func (f *fakeTool) Execute(ctx context.Context, input json.RawMessage) (*crewtools.Result, error) {
	f.gotArgs = input
	return f.result, f.err
}

func TestExecute_Success(t *testing.T) {
	fake := &fakeTool{
		name: "explore_entity",
		result: &crewtools.Result{
			Success: true,
			Summary: "Explored Contact: 12 columns",
			Data:    map[string]any{"entity": "Contact", "columnCount": 12},
		},
	}
	w := &toolWrapper{inner: fake}

	out, err := w.execute(newMockToolContext(), map[string]any{"entity_name": "Contact"})
	if err != nil {
		t.Fatalf("execute returned error: %v", err)
	}

	if out["success"] != true {
		t.Errorf("expected success=true, got %v", out["success"])
	}
	if out["summary"] != "Explored Contact: 12 columns" {
		t.Errorf("unexpected summary: %v", out["summary"])
	}

	data, ok := out["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data to be map[string]any, got %T", out["data"])
	}
	if data["entity"] != "Contact" {
		t.Errorf("expected entity Contact, got %v", data["entity"])
	}

	// Args must round-trip to the registry tool as JSON
	var gotArgs map[string]any
	if err := json.Unmarshal(fake.gotArgs, &gotArgs); err != nil {
		t.Fatalf("args did not round-trip: %v", err)
	}
	if gotArgs["entity_name"] != "Contact" {
		t.Errorf("expected entity_name Contact, got %v", gotArgs["entity_name"])
	}
}

func TestExecute_ToolFailure(t *testing.T) {
	fake := &fakeTool{
		name: "explore_entity",
		result: &crewtools.Result{
			Success: false,
			Error:   "entity 'Bogus' not found",
		},
	}
	w := &toolWrapper{inner: fake}

	out, err := w.execute(newMockToolContext(), map[string]any{"entity_name": "Bogus"})
	if err != nil {
		t.Fatalf("execute returned error: %v", err)
	}
	if out["success"] != false {
		t.Errorf("expected success=false, got %v", out["success"])
	}
	if out["error"] != "entity 'Bogus' not found" {
		t.Errorf("unexpected error message: %v", out["error"])
	}
}

func TestExecute_ToolError(t *testing.T) {
	fake := &fakeTool{
		name: "build_sql",
		err:  errors.New("boom"),
	}
	w := &toolWrapper{inner: fake}

	out, err := w.execute(newMockToolContext(), map[string]any{})
	if err != nil {
		t.Fatalf("execute should swallow tool errors, got: %v", err)
	}
	if _, ok := out["error"]; !ok {
		t.Error("expected error key in output")
	}
}

func TestExecute_NonMapData(t *testing.T) {
	// Slices can't become map[string]any; the bridge falls back to a JSON string
	fake := &fakeTool{
		name: "browse_kpis",
		result: &crewtools.Result{
			Success: true,
			Summary: "Found 3 KPIs",
			Data:    []string{"win_rate", "pipeline_value", "churn_rate"},
		},
	}
	w := &toolWrapper{inner: fake}

	out, err := w.execute(newMockToolContext(), map[string]any{})
	if err != nil {
		t.Fatalf("execute returned error: %v", err)
	}
	if out["success"] != true {
		t.Errorf("expected success=true, got %v", out["success"])
	}
	if _, ok := out["data"].(string); !ok {
		t.Errorf("expected data to be a JSON string fallback, got %T", out["data"])
	}
}

func TestWrapNamed_UnknownTool(t *testing.T) {
	registry := crewtools.NewRegistry(crewtools.Dependencies{})
	if _, err := WrapNamed(registry, "explore_entity", "no_such_tool"); err == nil {
		t.Error("expected error for unknown tool name")
	}
}

func TestWrapNamed_PreservesOrder(t *testing.T) {
	registry := crewtools.NewRegistry(crewtools.Dependencies{})
	names := []string{"build_sql", "explore_entity", "validate_query"}

	wrapped, err := WrapNamed(registry, names...)
	if err != nil {
		t.Fatalf("WrapNamed returned error: %v", err)
	}
	if len(wrapped) != len(names) {
		t.Fatalf("expected %d tools, got %d", len(names), len(wrapped))
	}
	for i, want := range names {
		if got := wrapped[i].Name(); got != want {
			t.Errorf("tool %d: expected %s, got %s", i, want, got)
		}
	}
}
