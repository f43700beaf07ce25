package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/moolen/crewline/internal/agent/commands"
)

func TestAgentLabel(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"schema_analyst_agent", "schema analyst"},
		{"crm_crew_coordinator", "coordinator"},
		{"lifecycle_crew_coordinator", "coordinator"},
		{"release_planner_agent", "release planner"},
		{"custom_helper_agent", "custom_helper"},
		{"system", "system"},
	}
	for _, tt := range tests {
		if got := agentLabel(tt.name); got != tt.want {
			t.Errorf("agentLabel(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestTranscript_ToolLifecycle(t *testing.T) {
	log := newTranscript()

	log.startTool("query_builder_agent", "t1", "build_sql")
	log.startTool("query_builder_agent", "t2", "validate_query")
	log.finishTool("query_builder_agent", "t1", true, 80*time.Millisecond, "2 joins")
	log.finishTool("query_builder_agent", "t2", false, 10*time.Millisecond, "syntax error")

	e := log.entry("query_builder_agent")
	if len(e.tools) != 2 {
		t.Fatalf("expected 2 tool runs, got %d", len(e.tools))
	}
	if e.tools[0].status != StatusCompleted || e.tools[0].note != "2 joins" {
		t.Errorf("first tool = %+v", e.tools[0])
	}
	if e.tools[1].status != StatusError {
		t.Errorf("failed tool status = %v, want StatusError", e.tools[1].status)
	}
}

func TestTranscript_EntryReuse(t *testing.T) {
	log := newTranscript()

	log.addOutput("intake_agent", "first")
	log.addOutput("intake_agent", "second")
	log.startTool("intake_agent", "t1", "parse_requirements")

	if len(log.entries) != 1 {
		t.Fatalf("expected one entry per agent, got %d", len(log.entries))
	}
	if got := log.entry("intake_agent"); len(got.outputs) != 2 || len(got.tools) != 1 {
		t.Errorf("entry = %+v", got)
	}
}

func TestTranscript_ArchiveClearsCurrentTurn(t *testing.T) {
	identity := func(s string) string { return s }
	log := newTranscript()

	log.beginTurn("explore the Contact entity", identity)
	log.addOutput("schema_analyst_agent", "Contact has 42 columns")
	log.finishAgent("schema_analyst_agent")

	log.beginTurn("now build a query", identity)

	if len(log.entries) != 0 {
		t.Errorf("entries not cleared after archive: %d", len(log.entries))
	}
	if got := log.prompts; len(got) != 1 || got[0] != "now build a query" {
		t.Errorf("prompts = %v", got)
	}
	past := log.past.String()
	for _, want := range []string{"explore the Contact entity", "schema analyst", "Contact has 42 columns"} {
		if !strings.Contains(past, want) {
			t.Errorf("archived text missing %q:\n%s", want, past)
		}
	}
}

func TestTranscript_RenderShowsSpinnerForActiveTool(t *testing.T) {
	identity := func(s string) string { return s }
	log := newTranscript()
	log.startTool("metrics_expert_agent", "t1", "calculate_metric")

	out := log.render(newTheme("crm"), identity, "*", 80)
	if !strings.Contains(out, "* calculate_metric") {
		t.Errorf("active tool should carry the spinner marker:\n%s", out)
	}
}

func TestWrapPrompt(t *testing.T) {
	long := strings.Repeat("churn ", 30)
	wrapped := wrapPrompt(long, 60)
	for _, line := range strings.Split(wrapped, "\n") {
		if len(strings.TrimSpace(line)) > 60 {
			t.Errorf("line exceeds width: %q", line)
		}
	}

	if got := wrapPrompt("short", 60); got != "short" {
		t.Errorf("wrapPrompt(short) = %q", got)
	}
	if got := wrapPrompt("", 60); got != "" {
		t.Errorf("wrapPrompt(empty) = %q", got)
	}
}

func TestPalette_SyncFiltersAndCloses(t *testing.T) {
	p := newPalette(commands.DefaultRegistry)

	p.sync("/he")
	if !p.open {
		t.Fatal("palette should open for a slash prefix")
	}
	if pick := p.pick(); pick == nil || pick.Name != "help" {
		t.Errorf("pick = %v, want help", pick)
	}

	p.sync("/help ")
	if p.open {
		t.Error("palette should close once the command has a space")
	}

	p.sync("plain text")
	if p.open {
		t.Error("palette should stay closed for non-command text")
	}
}

func TestPalette_CursorWraps(t *testing.T) {
	p := newPalette(commands.DefaultRegistry)
	p.sync("/")

	rows := p.visibleRows()
	if rows == 0 {
		t.Fatal("expected visible rows")
	}
	p.up()
	if p.cursor != rows-1 {
		t.Errorf("up from 0 should wrap to %d, got %d", rows-1, p.cursor)
	}
	p.down()
	if p.cursor != 0 {
		t.Errorf("down from last should wrap to 0, got %d", p.cursor)
	}
}

func TestConfirmPrompt_DefaultSelection(t *testing.T) {
	c := newConfirmPrompt()

	c.set(UserQuestionMsg{Question: "Run this query?", DefaultConfirm: true})
	if c.value() != "yes" {
		t.Errorf("default-confirm value = %q, want yes", c.value())
	}

	c.set(UserQuestionMsg{Question: "Delete the ticket?", DefaultConfirm: false})
	if c.value() != "no" {
		t.Errorf("default-deny value = %q, want no", c.value())
	}
}

func TestConfirmPrompt_FocusCycle(t *testing.T) {
	c := newConfirmPrompt()
	c.set(UserQuestionMsg{Question: "Proceed?", DefaultConfirm: true})

	c.down()
	if c.value() != "no" {
		t.Errorf("after down, value = %q, want no", c.value())
	}
	c.down()
	if !c.typing() {
		t.Error("second down should focus the free-text field")
	}
	c.up()
	if c.typing() || c.value() != "no" {
		t.Errorf("up from text should select no, got typing=%v value=%q", c.typing(), c.value())
	}

	c.toggleText()
	if !c.typing() {
		t.Error("toggleText should focus the free-text field")
	}
	c.input.SetValue("only opportunities from this quarter")
	if got := c.value(); got != "only opportunities from this quarter" {
		t.Errorf("typed value = %q", got)
	}
}

func TestIsOSCResponse(t *testing.T) {
	for _, key := range []string{"11;rgb:1e1e/2a2a/3a3a", "]11;rgb:0000/0000/0000", "]52;c"} {
		if !isOSCResponse(key) {
			t.Errorf("expected %q to be filtered", key)
		}
	}
	for _, key := range []string{"enter", "a", "ctrl+c", "["} {
		if isOSCResponse(key) {
			t.Errorf("%q should not be filtered", key)
		}
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("0c9d2f4e-aaaa-bbbb-cccc-000000000000"); got != "0c9d2f4e" {
		t.Errorf("shortID = %q", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("shortID(short) = %q", got)
	}
}
