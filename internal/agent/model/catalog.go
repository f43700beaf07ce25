package model

// DefaultModel is used when no model is configured. Deterministic schema and
// query work favors a low temperature; the API default of 1.0 is fine for the
// conversational coordinators.
const DefaultModel = "claude-sonnet-4-5-20250929"

// DefaultMaxTokens caps a single response.
const DefaultMaxTokens = 4096

// contextWindows maps model identifiers to their context window in tokens.
var contextWindows = map[string]int{
	"claude-sonnet-4-5-20250929": 200000,
	"claude-3-5-sonnet-20241022": 200000,
	"claude-3-5-sonnet-20240620": 200000,
	"claude-3-5-haiku-20241022":  200000,
	"claude-3-opus-20240229":     200000,
	"claude-3-sonnet-20240229":   200000,
	"claude-3-haiku-20240307":    200000,
}

const defaultContextWindow = 200000

// ContextWindow returns the context window size for a model, falling back
// to 200k for unknown identifiers.
func ContextWindow(name string) int {
	if size, ok := contextWindows[name]; ok {
		return size
	}
	return defaultContextWindow
}
