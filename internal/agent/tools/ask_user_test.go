package tools

import "testing"

func TestParseUserResponse_Confirmations(t *testing.T) {
	for _, input := range []string{"yes", "Yes", "YES", "y", "yeah", "yep", "correct", "confirmed", "ok", "okay", "  ok  "} {
		t.Run(input, func(t *testing.T) {
			got := ParseUserResponse(input, false)
			if !got.Confirmed || got.HasClarification {
				t.Errorf("ParseUserResponse(%q) = %+v, want confirmed without clarification", input, got)
			}
		})
	}
}

func TestParseUserResponse_Rejections(t *testing.T) {
	for _, input := range []string{"no", "No", "NO", "n", "nope", "wrong", "incorrect"} {
		t.Run(input, func(t *testing.T) {
			// defaultConfirm must not override an explicit no
			got := ParseUserResponse(input, true)
			if got.Confirmed || got.HasClarification {
				t.Errorf("ParseUserResponse(%q) = %+v, want rejected without clarification", input, got)
			}
		})
	}
}

func TestParseUserResponse_EmptyUsesDefault(t *testing.T) {
	if got := ParseUserResponse("", true); !got.Confirmed || got.HasClarification {
		t.Errorf("empty with default confirm = %+v", got)
	}
	if got := ParseUserResponse("", false); got.Confirmed || got.HasClarification {
		t.Errorf("empty without default confirm = %+v", got)
	}
	if got := ParseUserResponse("   \t\n  ", true); !got.Confirmed {
		t.Errorf("whitespace-only should use the default, got %+v", got)
	}
}

func TestParseUserResponse_Clarifications(t *testing.T) {
	for _, input := range []string{
		"Actually I meant the Account entity, not Contact",
		"filter to opportunities closed this quarter",
		"drop PROJ-12 from the sprint, it's blocked",
		"use OData instead of SQL",
	} {
		t.Run(input, func(t *testing.T) {
			got := ParseUserResponse(input, true)
			if got.Confirmed || !got.HasClarification {
				t.Errorf("ParseUserResponse(%q) = %+v, want clarification", input, got)
			}
			if got.Response != input {
				t.Errorf("Response = %q, want %q", got.Response, input)
			}
		})
	}
}

func TestParseUserResponse_TrimsResponse(t *testing.T) {
	got := ParseUserResponse("  yes  ", false)
	if got.Response != "yes" {
		t.Errorf("Response = %q, want trimmed %q", got.Response, "yes")
	}
}

func TestNewAskUserQuestionTool(t *testing.T) {
	askTool, err := NewAskUserQuestionTool()
	if err != nil {
		t.Fatalf("unexpected error creating tool: %v", err)
	}
	if askTool == nil {
		t.Fatal("expected non-nil tool")
	}
}
