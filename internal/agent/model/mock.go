package model

import (
	"context"
	"fmt"
	"iter"
	"sync"
	"time"

	"google.golang.org/adk/model"
	"google.golang.org/genai"
)

// ScriptedToolCall is a tool invocation emitted by a scripted response.
type ScriptedToolCall struct {
	Name string
	Args map[string]any
}

// ScriptedResponse is one turn of a scripted conversation.
type ScriptedResponse struct {
	Text      string
	ToolCalls []ScriptedToolCall
}

// MockLLM implements model.LLM with scripted responses for offline runs
// and tests. Responses are served in order; once exhausted every request
// gets a completion message.
type MockLLM struct {
	thinkingDelay time.Duration

	mu        sync.Mutex
	responses []ScriptedResponse
	next      int
	requests  int
}

// MockLLMOption configures a MockLLM.
type MockLLMOption func(*MockLLM)

// WithThinkingDelay adds an artificial delay before each response.
func WithThinkingDelay(d time.Duration) MockLLMOption {
	return func(m *MockLLM) {
		m.thinkingDelay = d
	}
}

// NewMockLLM creates a MockLLM serving the given responses in order.
func NewMockLLM(responses []ScriptedResponse, opts ...MockLLMOption) *MockLLM {
	m := &MockLLM{responses: responses}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Name returns the model identifier.
func (m *MockLLM) Name() string {
	return "mock"
}

// RequestCount returns the number of requests served so far.
func (m *MockLLM) RequestCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests
}

// Reset rewinds the script for a new conversation.
func (m *MockLLM) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next = 0
	m.requests = 0
}

// GenerateContent implements model.LLM.GenerateContent.
func (m *MockLLM) GenerateContent(ctx context.Context, req *model.LLMRequest, stream bool) iter.Seq2[*model.LLMResponse, error] {
	return func(yield func(*model.LLMResponse, error) bool) {
		if m.thinkingDelay > 0 {
			select {
			case <-ctx.Done():
				yield(nil, ctx.Err())
				return
			case <-time.After(m.thinkingDelay):
			}
		}

		m.mu.Lock()
		m.requests++
		var step *ScriptedResponse
		if m.next < len(m.responses) {
			step = &m.responses[m.next]
			m.next++
		}
		m.mu.Unlock()

		if step == nil {
			yield(completionResponse("Done. All scripted responses have been served."), nil)
			return
		}

		parts := make([]*genai.Part, 0, 1+len(step.ToolCalls))
		if step.Text != "" {
			parts = append(parts, &genai.Part{Text: step.Text})
		}
		for i, tc := range step.ToolCalls {
			args := tc.Args
			if args == nil {
				args = make(map[string]any)
			}
			parts = append(parts, &genai.Part{
				FunctionCall: &genai.FunctionCall{
					ID:   mockCallID(i),
					Name: tc.Name,
					Args: args,
				},
			})
		}

		yield(&model.LLMResponse{
			Content:      &genai.Content{Parts: parts, Role: "model"},
			FinishReason: genai.FinishReasonStop,
			TurnComplete: true,
			UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
				// Rough estimates, plenty small for int32.
				// #nosec G115 -- Mock estimates are bounded and will never overflow int32
				PromptTokenCount:     int32(len(parts) * 50),
				CandidatesTokenCount: int32(len(step.Text) / 4),              // #nosec G115 -- Safe conversion, bounded values
				TotalTokenCount:      int32(len(parts)*50 + len(step.Text)/4), // #nosec G115 -- Safe conversion, bounded values
			},
		}, nil)
	}
}

func mockCallID(i int) string {
	return fmt.Sprintf("mock_call_%d", i)
}

func completionResponse(text string) *model.LLMResponse {
	return &model.LLMResponse{
		Content: &genai.Content{
			Parts: []*genai.Part{{Text: text}},
			Role:  "model",
		},
		FinishReason: genai.FinishReasonStop,
		TurnComplete: true,
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
			PromptTokenCount:     100,
			CandidatesTokenCount: 10,
			TotalTokenCount:      110,
		},
	}
}

// Ensure MockLLM implements model.LLM at compile time.
var _ model.LLM = (*MockLLM)(nil)
