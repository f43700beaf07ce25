package model

import (
	"testing"

	"google.golang.org/genai"
)

func TestNewAnthropicLLM_Defaults(t *testing.T) {
	llm := NewAnthropicLLM(Options{})
	if llm.Name() != DefaultModel {
		t.Errorf("Name() = %q, want %q", llm.Name(), DefaultModel)
	}
	if llm.maxTokens != DefaultMaxTokens {
		t.Errorf("maxTokens = %d, want %d", llm.maxTokens, DefaultMaxTokens)
	}

	llm = NewAnthropicLLM(Options{Model: "claude-3-5-haiku-20241022", MaxTokens: 1024})
	if llm.Name() != "claude-3-5-haiku-20241022" || llm.maxTokens != 1024 {
		t.Errorf("options not applied: %q / %d", llm.Name(), llm.maxTokens)
	}
}

func TestContextWindow(t *testing.T) {
	if got := ContextWindow(DefaultModel); got != 200000 {
		t.Errorf("ContextWindow(default) = %d", got)
	}
	if got := ContextWindow("some-future-model"); got != defaultContextWindow {
		t.Errorf("ContextWindow(unknown) = %d, want fallback", got)
	}
}

func TestSystemText(t *testing.T) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: "You build SQL queries."}, {Text: "Always confirm first."}},
		},
	}
	if got := systemText(cfg); got != "You build SQL queries.\nAlways confirm first." {
		t.Errorf("systemText = %q", got)
	}
	if got := systemText(nil); got != "" {
		t.Errorf("systemText(nil) = %q", got)
	}
}

func TestMessageParam_Roles(t *testing.T) {
	user, ok := messageParam(&genai.Content{Role: "user", Parts: []*genai.Part{{Text: "hi"}}})
	if !ok || user.Role != "user" {
		t.Errorf("user turn = %+v, ok=%v", user, ok)
	}

	assistant, ok := messageParam(&genai.Content{Role: "model", Parts: []*genai.Part{{Text: "hello"}}})
	if !ok || assistant.Role != "assistant" {
		t.Errorf("model turn = %+v, ok=%v", assistant, ok)
	}

	if _, ok := messageParam(&genai.Content{Role: "user"}); ok {
		t.Error("empty turn should be skipped")
	}
	if _, ok := messageParam(nil); ok {
		t.Error("nil turn should be skipped")
	}
}

func TestSchemaMap_TypedSchema(t *testing.T) {
	schema := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"entity_name": {Type: genai.TypeString, Description: "CRM entity"},
			"limit":       {Type: genai.TypeInteger},
			"formats":     {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		},
		Required: []string{"entity_name"},
	}

	m := schemaMap(schema, nil)
	if m["type"] != "object" {
		t.Errorf("type = %v", m["type"])
	}
	props, ok := m["properties"].(map[string]interface{})
	if !ok {
		t.Fatalf("properties = %T", m["properties"])
	}
	entity := props["entity_name"].(map[string]interface{})
	if entity["type"] != "string" || entity["description"] != "CRM entity" {
		t.Errorf("entity_name schema = %v", entity)
	}
	formats := props["formats"].(map[string]interface{})
	if items, ok := formats["items"].(map[string]interface{}); !ok || items["type"] != "string" {
		t.Errorf("formats items = %v", formats["items"])
	}
	required, ok := m["required"].([]string)
	if !ok || len(required) != 1 || required[0] != "entity_name" {
		t.Errorf("required = %v", m["required"])
	}
}

func TestSchemaMap_RawWinsAndFallback(t *testing.T) {
	raw := map[string]interface{}{"type": "object", "properties": map[string]interface{}{"q": map[string]interface{}{"type": "string"}}}
	if m := schemaMap(&genai.Schema{Type: genai.TypeString}, raw); m["type"] != "object" {
		t.Errorf("raw schema should win, got %v", m)
	}

	m := schemaMap(nil, nil)
	if m["type"] != "object" {
		t.Errorf("nil schema fallback = %v", m)
	}
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		in   genai.Type
		want string
	}{
		{genai.TypeString, "string"},
		{genai.TypeNumber, "number"},
		{genai.TypeInteger, "integer"},
		{genai.TypeBoolean, "boolean"},
		{genai.TypeArray, "array"},
		{genai.TypeObject, "object"},
	}
	for _, tt := range tests {
		if got := typeName(tt.in); got != tt.want {
			t.Errorf("typeName(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
