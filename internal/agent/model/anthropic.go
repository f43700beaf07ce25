// Package model provides the LLM implementations behind the crew agents:
// an Anthropic-backed model.LLM and a scripted mock for offline runs.
package model

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"google.golang.org/adk/model"
	"google.golang.org/genai"
)

// Options configures the Anthropic-backed LLM.
type Options struct {
	// APIKey overrides the ANTHROPIC_API_KEY environment variable.
	APIKey string

	// Model is the model identifier. Empty selects DefaultModel.
	Model string

	// MaxTokens caps each response. Zero selects DefaultMaxTokens.
	MaxTokens int
}

// AnthropicLLM implements ADK's model.LLM against the Anthropic Messages API.
// Requests are non-streaming; each GenerateContent call yields one response.
type AnthropicLLM struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewAnthropicLLM creates an Anthropic-backed LLM.
func NewAnthropicLLM(opts Options) *AnthropicLLM {
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}

	return &AnthropicLLM{
		client:    anthropic.NewClient(clientOpts...),
		model:     opts.Model,
		maxTokens: int64(opts.MaxTokens),
	}
}

// Name returns the model identifier.
func (a *AnthropicLLM) Name() string {
	return a.model
}

// GenerateContent implements model.LLM.GenerateContent.
func (a *AnthropicLLM) GenerateContent(ctx context.Context, req *model.LLMRequest, stream bool) iter.Seq2[*model.LLMResponse, error] {
	return func(yield func(*model.LLMResponse, error) bool) {
		params := a.buildParams(req)

		msg, err := a.client.Messages.New(ctx, params)
		if err != nil {
			yield(nil, fmt.Errorf("anthropic request failed: %w", err))
			return
		}

		yield(toLLMResponse(msg), nil)
	}
}

// buildParams assembles the Messages API request from an ADK request.
func (a *AnthropicLLM) buildParams(req *model.LLMRequest) anthropic.MessageNewParams {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: a.maxTokens,
	}

	if system := systemText(req.Config); system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	for _, content := range req.Contents {
		if msg, ok := messageParam(content); ok {
			params.Messages = append(params.Messages, msg)
		}
	}

	params.Tools = toolParams(req.Config)
	return params
}

// systemText joins the system instruction parts into one prompt.
func systemText(cfg *genai.GenerateContentConfig) string {
	if cfg == nil || cfg.SystemInstruction == nil {
		return ""
	}
	var parts []string
	for _, part := range cfg.SystemInstruction.Parts {
		if part.Text != "" {
			parts = append(parts, part.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// messageParam converts one genai content turn into an Anthropic message.
// Tool results lead the block list; text is carried only on turns without
// tool results, matching how the Messages API pairs tool_use and tool_result.
func messageParam(content *genai.Content) (anthropic.MessageParam, bool) {
	if content == nil {
		return anthropic.MessageParam{}, false
	}

	var blocks []anthropic.ContentBlockParamUnion
	var text string
	hasToolResult := false

	for _, part := range content.Parts {
		switch {
		case part == nil:
		case part.FunctionResponse != nil:
			hasToolResult = true
			payload := ""
			if part.FunctionResponse.Response != nil {
				if data, err := json.Marshal(part.FunctionResponse.Response); err == nil {
					payload = string(data)
				}
			}
			blocks = append(blocks, anthropic.NewToolResultBlock(part.FunctionResponse.ID, payload, false))
		case part.FunctionCall != nil:
			var input json.RawMessage
			if part.FunctionCall.Args != nil {
				if data, err := json.Marshal(part.FunctionCall.Args); err == nil {
					input = data
				}
			}
			blocks = append(blocks, anthropic.NewToolUseBlock(part.FunctionCall.ID, input, part.FunctionCall.Name))
		case part.Text != "":
			if text != "" {
				text += "\n"
			}
			text += part.Text
		}
	}

	if text != "" && !hasToolResult {
		blocks = append([]anthropic.ContentBlockParamUnion{anthropic.NewTextBlock(text)}, blocks...)
	}

	if len(blocks) == 0 {
		return anthropic.MessageParam{}, false
	}

	if content.Role == "model" {
		return anthropic.NewAssistantMessage(blocks...), true
	}
	return anthropic.NewUserMessage(blocks...), true
}

// toolParams converts the ADK function declarations to Anthropic tools.
func toolParams(cfg *genai.GenerateContentConfig) []anthropic.ToolUnionParam {
	if cfg == nil {
		return nil
	}

	var tools []anthropic.ToolUnionParam
	for _, tool := range cfg.Tools {
		if tool == nil {
			continue
		}
		for _, fn := range tool.FunctionDeclarations {
			if fn == nil {
				continue
			}
			schema := schemaMap(fn.Parameters, fn.ParametersJsonSchema)
			required, _ := schema["required"].([]string)
			tools = append(tools, anthropic.ToolUnionParam{
				OfTool: &anthropic.ToolParam{
					Name:        fn.Name,
					Description: anthropic.String(fn.Description),
					InputSchema: anthropic.ToolInputSchemaParam{
						Properties: schema["properties"],
						Required:   required,
					},
				},
			})
		}
	}
	return tools
}

// schemaMap renders a tool input schema as a JSON Schema map. A raw JSON
// schema on the declaration wins over the typed genai schema.
func schemaMap(schema *genai.Schema, raw any) map[string]interface{} {
	if raw != nil {
		if m, ok := raw.(map[string]interface{}); ok {
			return m
		}
		if data, err := json.Marshal(raw); err == nil {
			var m map[string]interface{}
			if json.Unmarshal(data, &m) == nil {
				return m
			}
		}
	}

	if schema == nil {
		return map[string]interface{}{
			"type":       "object",
			"properties": map[string]interface{}{},
		}
	}

	m := map[string]interface{}{"type": typeName(schema.Type)}
	if schema.Description != "" {
		m["description"] = schema.Description
	}
	if len(schema.Properties) > 0 {
		props := make(map[string]interface{}, len(schema.Properties))
		for name, prop := range schema.Properties {
			props[name] = schemaMap(prop, nil)
		}
		m["properties"] = props
	}
	if len(schema.Required) > 0 {
		m["required"] = schema.Required
	}
	if schema.Items != nil {
		m["items"] = schemaMap(schema.Items, nil)
	}
	if len(schema.Enum) > 0 {
		m["enum"] = schema.Enum
	}
	return m
}

// typeName maps a genai schema type to its JSON Schema name.
func typeName(t genai.Type) string {
	switch t {
	case genai.TypeString:
		return "string"
	case genai.TypeNumber:
		return "number"
	case genai.TypeInteger:
		return "integer"
	case genai.TypeBoolean:
		return "boolean"
	case genai.TypeArray:
		return "array"
	default:
		return "object"
	}
}

// toLLMResponse converts an Anthropic message to the ADK response shape.
func toLLMResponse(msg *anthropic.Message) *model.LLMResponse {
	var parts []*genai.Part
	var textParts []string

	for i := range msg.Content {
		block := &msg.Content[i]
		switch block.Type {
		case "text":
			textParts = append(textParts, block.Text)
		case "tool_use":
			var args map[string]any
			if block.Input != nil {
				_ = json.Unmarshal(block.Input, &args)
			}
			parts = append(parts, &genai.Part{
				FunctionCall: &genai.FunctionCall{
					ID:   block.ID,
					Name: block.Name,
					Args: args,
				},
			})
		}
	}
	if text := strings.Join(textParts, ""); text != "" {
		parts = append([]*genai.Part{{Text: text}}, parts...)
	}

	finish := genai.FinishReasonStop
	if msg.StopReason == anthropic.StopReasonMaxTokens {
		finish = genai.FinishReasonMaxTokens
	}

	in, out := msg.Usage.InputTokens, msg.Usage.OutputTokens
	return &model.LLMResponse{
		Content:      &genai.Content{Parts: parts, Role: "model"},
		FinishReason: finish,
		TurnComplete: true,
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
			// Token counts are bounded by the context window and fit in int32.
			// #nosec G115
			PromptTokenCount: int32(in),
			// #nosec G115
			CandidatesTokenCount: int32(out),
			// #nosec G115
			TotalTokenCount: int32(in + out),
		},
	}
}

// Ensure AnthropicLLM implements model.LLM at compile time.
var _ model.LLM = (*AnthropicLLM)(nil)
