package commands

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input string
		want  *Command
	}{
		{"/help", &Command{Name: "help"}},
		{"/CREW crm", &Command{Name: "crew", Args: []string{"crm"}}},
		{"/export crm-review.md", &Command{Name: "export", Args: []string{"crm-review.md"}}},
		{"/compact keep the sprint plan", &Command{Name: "compact", Args: []string{"keep", "the", "sprint", "plan"}}},
		{"plain message", nil},
		{"", nil},
		{"/", nil},
		{"  /help", nil},
	}

	for _, tt := range tests {
		got := ParseCommand(tt.input)
		if tt.want == nil {
			if got != nil {
				t.Errorf("ParseCommand(%q) = %+v, want nil", tt.input, got)
			}
			continue
		}
		if got == nil {
			t.Errorf("ParseCommand(%q) = nil, want %+v", tt.input, tt.want)
			continue
		}
		if got.Name != tt.want.Name {
			t.Errorf("ParseCommand(%q).Name = %q, want %q", tt.input, got.Name, tt.want.Name)
		}
		if len(got.Args) != len(tt.want.Args) || (len(tt.want.Args) > 0 && !reflect.DeepEqual(got.Args, tt.want.Args)) {
			t.Errorf("ParseCommand(%q).Args = %v, want %v", tt.input, got.Args, tt.want.Args)
		}
	}
}

func TestBuiltinsRegistered(t *testing.T) {
	want := []string{"compact", "context", "crew", "exit", "export", "help", "quit", "reset", "sessions", "stats"}
	entries := DefaultRegistry.AllEntries()

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("registered commands = %v, want %v", names, want)
	}
}

func TestFuzzyMatch(t *testing.T) {
	if got := DefaultRegistry.FuzzyMatch("he"); len(got) == 0 || got[0].Name != "help" {
		t.Errorf("FuzzyMatch(\"he\") first = %v, want help", got)
	}

	all := DefaultRegistry.AllEntries()
	if got := DefaultRegistry.FuzzyMatch(""); len(got) != len(all) {
		t.Errorf("empty query returned %d entries, want %d", len(got), len(all))
	}

	if got := DefaultRegistry.FuzzyMatch("zzzz"); len(got) != 0 {
		t.Errorf("FuzzyMatch(\"zzzz\") = %v, want none", got)
	}
}

func TestExecute_Unknown(t *testing.T) {
	result := DefaultRegistry.Execute(&Context{}, &Command{Name: "nope"})
	if result.Success || result.Message == "" {
		t.Errorf("unknown command result = %+v", result)
	}
}

func TestExecute_Help(t *testing.T) {
	result := DefaultRegistry.Execute(&Context{}, &Command{Name: "help"})
	if !result.Success || !result.IsInfo {
		t.Errorf("help result = %+v", result)
	}
}

func TestExecute_Stats(t *testing.T) {
	ctx := &Context{
		SessionID:         "sess-1",
		CrewName:          "crm",
		TotalLLMRequests:  5,
		TotalInputTokens:  1000,
		TotalOutputTokens: 500,
	}
	result := DefaultRegistry.Execute(ctx, &Command{Name: "stats"})
	if !result.Success {
		t.Fatalf("stats failed: %s", result.Message)
	}
}

func TestExecute_CrewShow(t *testing.T) {
	result := DefaultRegistry.Execute(&Context{CrewName: "crm"}, &Command{Name: "crew"})
	if !result.Success {
		t.Errorf("crew show failed: %s", result.Message)
	}
}

func TestExecute_CrewSwitch(t *testing.T) {
	var switched string
	ctx := &Context{
		CrewName: "crm",
		SwitchCrewFunc: func(name string) error {
			switched = name
			return nil
		},
	}
	result := DefaultRegistry.Execute(ctx, &Command{Name: "crew", Args: []string{"lifecycle"}})
	if !result.Success {
		t.Fatalf("crew switch failed: %s", result.Message)
	}
	if switched != "lifecycle" || ctx.CrewName != "lifecycle" {
		t.Errorf("switched = %q, CrewName = %q, want lifecycle", switched, ctx.CrewName)
	}
}

func TestExecute_CrewSwitchErrors(t *testing.T) {
	if result := DefaultRegistry.Execute(&Context{CrewName: "crm"}, &Command{Name: "crew", Args: []string{"lifecycle"}}); result.Success {
		t.Error("expected failure when SwitchCrewFunc is nil")
	}

	ctx := &Context{
		CrewName:       "crm",
		SwitchCrewFunc: func(string) error { return errors.New("unknown crew") },
	}
	result := DefaultRegistry.Execute(ctx, &Command{Name: "crew", Args: []string{"ops"}})
	if result.Success {
		t.Error("expected failure from SwitchCrewFunc error")
	}
	if ctx.CrewName != "crm" {
		t.Errorf("CrewName changed to %q on failed switch", ctx.CrewName)
	}
}

func TestExecute_Quit(t *testing.T) {
	quit := false
	result := DefaultRegistry.Execute(&Context{QuitFunc: func() { quit = true }}, &Command{Name: "exit"})
	if !result.Success || !quit {
		t.Errorf("exit: result = %+v, quit = %v", result, quit)
	}
}
