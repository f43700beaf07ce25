package commands

import (
	"sort"
	"strings"
	"sync"
)

// DefaultRegistry holds every command compiled into the binary.
var DefaultRegistry = NewRegistry()

// Registry maps command names to handlers and answers dropdown queries.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register adds a handler under its Entry().Name. Later registrations
// replace earlier ones.
func (r *Registry) Register(h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[h.Entry().Name] = h
}

// Execute dispatches a parsed command to its handler.
func (r *Registry) Execute(ctx *Context, cmd *Command) Result {
	r.mu.RLock()
	h, ok := r.handlers[cmd.Name]
	r.mu.RUnlock()

	if !ok {
		return Result{
			Message: "Unknown command: /" + cmd.Name + " (type /help for available commands)",
			IsInfo:  true,
		}
	}
	return h.Execute(ctx, cmd.Args)
}

// AllEntries returns every registered command, sorted by name.
func (r *Registry) AllEntries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, 0, len(r.handlers))
	for _, h := range r.handlers {
		entries = append(entries, h.Entry())
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// FuzzyMatch returns the entries matching query, best match first.
// An empty query returns everything.
func (r *Registry) FuzzyMatch(query string) []Entry {
	entries := r.AllEntries()
	if query == "" {
		return entries
	}
	query = strings.ToLower(query)

	type ranked struct {
		entry Entry
		score int
	}
	var matched []ranked
	for _, e := range entries {
		if score, ok := rank(e, query); ok {
			matched = append(matched, ranked{e, score})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool { return matched[i].score > matched[j].score })

	result := make([]Entry, len(matched))
	for i, m := range matched {
		result[i] = m.entry
	}
	return result
}

// rank scores an entry against a lowercase query. Name prefix matches rank
// highest (shorter names first), then name substrings, then in-order
// subsequences, then description hits.
func rank(e Entry, query string) (int, bool) {
	name := strings.ToLower(e.Name)
	switch {
	case strings.HasPrefix(name, query):
		return 100 - (len(name) - len(query)), true
	case strings.Contains(name, query):
		return 50, true
	case subsequence(name, query):
		return 25, true
	case strings.Contains(strings.ToLower(e.Description), query):
		return 10, true
	}
	return 0, false
}

// subsequence reports whether every byte of query appears in s in order.
func subsequence(s, query string) bool {
	i := 0
	for _, c := range s {
		if i < len(query) && c == rune(query[i]) {
			i++
		}
	}
	return i == len(query)
}

// ParseCommand parses a "/name args..." input line. Returns nil for input
// that is not a slash command.
func ParseCommand(input string) *Command {
	rest, ok := strings.CutPrefix(input, "/")
	if !ok {
		return nil
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return nil
	}
	return &Command{Name: strings.ToLower(fields[0]), Args: fields[1:]}
}
