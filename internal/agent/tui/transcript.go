package tui

import (
	"strings"
	"time"
)

// agentLabels maps crew member names to the short labels shown in the
// transcript.
var agentLabels = map[string]string{
	"crm_crew_coordinator":       "coordinator",
	"schema_analyst_agent":       "schema analyst",
	"query_builder_agent":        "query builder",
	"metrics_expert_agent":       "metrics expert",
	"data_architect_agent":       "data architect",
	"lifecycle_crew_coordinator": "coordinator",
	"intake_agent":               "intake",
	"requirements_analyst_agent": "requirements analyst",
	"delivery_manager_agent":     "delivery manager",
	"quality_advocate_agent":     "quality advocate",
	"release_planner_agent":      "release planner",
}

func agentLabel(name string) string {
	if label, ok := agentLabels[name]; ok {
		return label
	}
	return strings.TrimSuffix(name, "_agent")
}

// toolRun is one tool call within an agent's slice of the turn.
type toolRun struct {
	id      string
	name    string
	status  Status
	elapsed time.Duration
	note    string
}

// agentEntry groups one agent's activity in the current turn: the
// tools it ran and the text it produced, in order.
type agentEntry struct {
	agent   string
	status  Status
	tools   []toolRun
	outputs []string
}

// transcript accumulates the session. Finished turns live in past as
// rendered text; the current turn stays structured so spinners and
// running tools re-render on every tick.
type transcript struct {
	past    strings.Builder
	prompts []string
	entries []agentEntry
}

func newTranscript() *transcript {
	return &transcript{}
}

func (t *transcript) entry(agent string) *agentEntry {
	for i := range t.entries {
		if t.entries[i].agent == agent {
			return &t.entries[i]
		}
	}
	t.entries = append(t.entries, agentEntry{agent: agent, status: StatusActive})
	return &t.entries[len(t.entries)-1]
}

func (t *transcript) startTool(agent, id, name string) {
	e := t.entry(agent)
	e.tools = append(e.tools, toolRun{id: id, name: name, status: StatusActive})
}

func (t *transcript) finishTool(agent, id string, success bool, elapsed time.Duration, note string) {
	e := t.entry(agent)
	for i := range e.tools {
		if e.tools[i].id != id {
			continue
		}
		e.tools[i].status = StatusCompleted
		if !success {
			e.tools[i].status = StatusError
		}
		e.tools[i].elapsed = elapsed
		e.tools[i].note = note
		return
	}
}

func (t *transcript) addOutput(agent, text string) {
	e := t.entry(agent)
	e.outputs = append(e.outputs, text)
}

// setOutput replaces an agent's text, used when a question supersedes
// the agent's intermediate output.
func (t *transcript) setOutput(agent, text string) {
	e := t.entry(agent)
	e.outputs = []string{text}
}

func (t *transcript) finishAgent(agent string) {
	for i := range t.entries {
		if t.entries[i].agent == agent {
			t.entries[i].status = StatusCompleted
			return
		}
	}
}

// note appends a completed system entry, used for slash command output.
func (t *transcript) note(text string) {
	t.entries = append(t.entries, agentEntry{
		agent:   "system",
		status:  StatusCompleted,
		outputs: []string{text},
	})
}

// beginTurn archives the current turn and records the new prompt.
func (t *transcript) beginTurn(prompt string, md func(string) string) {
	t.archive(md)
	t.prompts = append(t.prompts, prompt)
}

// archive renders the current turn into past and clears it.
func (t *transcript) archive(md func(string) string) {
	if len(t.entries) == 0 && len(t.prompts) == 0 {
		return
	}

	if t.past.Len() > 0 {
		t.past.WriteString("\n")
		t.past.WriteString(strings.Repeat("─", 72))
		t.past.WriteString("\n\n")
	}

	for _, prompt := range t.prompts {
		t.past.WriteString("❯ ")
		t.past.WriteString(prompt)
		t.past.WriteString("\n\n")
	}
	for _, e := range t.entries {
		t.past.WriteString(renderEntryStatic(e, md))
	}

	t.prompts = nil
	t.entries = nil
}

// renderEntryStatic renders a finished entry without styling, for the
// archived part of the transcript.
func renderEntryStatic(e agentEntry, md func(string) string) string {
	var b strings.Builder

	b.WriteString("▸ ")
	b.WriteString(agentLabel(e.agent))
	b.WriteString("\n")

	for _, tr := range e.tools {
		mark := "✓"
		if tr.status == StatusError {
			mark = "✗"
		}
		b.WriteString("    ")
		b.WriteString(mark)
		b.WriteString(" ")
		b.WriteString(tr.name)
		b.WriteString(" (")
		b.WriteString(tr.elapsed.String())
		b.WriteString(")")
		if tr.note != "" {
			b.WriteString("  ")
			b.WriteString(tr.note)
		}
		b.WriteString("\n")
	}
	for _, out := range e.outputs {
		b.WriteString(md(out))
	}
	b.WriteString("\n")

	return b.String()
}

// render produces the full viewport content: archived turns, then the
// current prompts and entries with live spinners.
func (t *transcript) render(th theme, md func(string) string, spin string, width int) string {
	var b strings.Builder

	b.WriteString(t.past.String())

	for _, prompt := range t.prompts {
		b.WriteString(th.youLabel.Render("❯ "))
		b.WriteString(th.youText.Render(wrapPrompt(prompt, width)))
		b.WriteString("\n\n")
	}

	for _, e := range t.entries {
		b.WriteString(t.renderEntry(e, th, md, spin))
	}

	return b.String()
}

func (t *transcript) renderEntry(e agentEntry, th theme, md func(string) string, spin string) string {
	var b strings.Builder

	b.WriteString(th.agentHead.Render("▸ " + agentLabel(e.agent)))
	b.WriteString("\n")

	for _, tr := range e.tools {
		b.WriteString("    ")
		switch tr.status {
		case StatusCompleted:
			b.WriteString(th.toolOK.Render("✓"))
		case StatusError:
			b.WriteString(th.toolBad.Render("✗"))
		default:
			b.WriteString(spin)
		}
		b.WriteString(" ")
		b.WriteString(tr.name)
		if tr.status != StatusActive {
			b.WriteString(th.toolNote.Render(" (" + tr.elapsed.String() + ")"))
		}
		if tr.note != "" {
			b.WriteString(th.toolNote.Render("  " + tr.note))
		}
		b.WriteString("\n")
	}

	switch {
	case len(e.outputs) > 0:
		for i, out := range e.outputs {
			rendered := md(out)
			if i == len(e.outputs)-1 && e.status == StatusActive {
				b.WriteString("  ")
				b.WriteString(spin)
				b.WriteString(" ")
				b.WriteString(strings.TrimLeft(rendered, "\n"))
			} else {
				b.WriteString(rendered)
			}
		}
	case e.status == StatusActive && len(e.tools) == 0:
		b.WriteString("  ")
		b.WriteString(spin)
		b.WriteString(" thinking\n")
	}
	b.WriteString("\n")

	return b.String()
}

// wrapPrompt wraps a user prompt at word boundaries, indenting
// continuation lines under the marker.
func wrapPrompt(text string, width int) string {
	if width < 40 {
		width = 40
	}
	if width > 100 {
		width = 100
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) <= width {
			line += " " + word
			continue
		}
		lines = append(lines, line)
		line = word
	}
	lines = append(lines, line)

	return strings.Join(lines, "\n  ")
}
