package commands

import (
	"fmt"
	"strings"
)

// command is a Handler built from an Entry and a function. All built-in
// commands use this form; anything needing state can still implement
// Handler directly.
type command struct {
	entry Entry
	run   func(ctx *Context, args []string) Result
}

func (c *command) Entry() Entry { return c.entry }

func (c *command) Execute(ctx *Context, args []string) Result { return c.run(ctx, args) }

func init() {
	for _, c := range builtins() {
		DefaultRegistry.Register(c)
	}
}

func builtins() []Handler {
	return []Handler{
		&command{
			entry: Entry{Name: "help", Description: "Show help message", Usage: "/help"},
			run:   runHelp,
		},
		&command{
			entry: Entry{Name: "crew", Description: "Show or switch the active crew", Usage: "/crew [crm|lifecycle]"},
			run:   runCrew,
		},
		&command{
			entry: Entry{Name: "stats", Description: "Show session statistics", Usage: "/stats"},
			run:   runStats,
		},
		&command{
			entry: Entry{Name: "context", Description: "Show context window usage", Usage: "/context"},
			run:   runContext,
		},
		&command{
			entry: Entry{Name: "quit", Description: "Exit the agent", Usage: "/quit"},
			run:   runQuit,
		},
		&command{
			entry: Entry{Name: "exit", Description: "Exit the agent", Usage: "/exit"},
			run:   runQuit,
		},
		&command{
			entry: Entry{Name: "export", Description: "Export session to markdown", Usage: "/export [file]"},
			run:   runExport,
		},
		&command{
			entry: Entry{Name: "sessions", Description: "Browse and switch sessions", Usage: "/sessions"},
			run:   notImplemented("/sessions - Not yet implemented (would browse previous sessions)"),
		},
		&command{
			entry: Entry{Name: "reset", Description: "Clear session and start fresh", Usage: "/reset"},
			run:   notImplemented("/reset - Not yet implemented"),
		},
		&command{
			entry: Entry{Name: "compact", Description: "Summarize conversation", Usage: "/compact [prompt]"},
			run:   notImplemented("/compact - Not yet implemented (would summarize conversation to free up context)"),
		},
	}
}

func runHelp(ctx *Context, args []string) Result {
	var b strings.Builder
	b.WriteString("Available Commands:\n\n")
	for _, e := range DefaultRegistry.AllEntries() {
		fmt.Fprintf(&b, "  %-22s %s\n", e.Usage, e.Description)
	}
	return Result{Success: true, Message: b.String(), IsInfo: true}
}

func runCrew(ctx *Context, args []string) Result {
	if len(args) == 0 {
		return Result{
			Success: true,
			Message: fmt.Sprintf("Active crew: %s (use /crew crm or /crew lifecycle to switch)", ctx.CrewName),
			IsInfo:  true,
		}
	}
	if ctx.SwitchCrewFunc == nil {
		return Result{Message: "Crew switching is not available in this session", IsInfo: true}
	}
	if err := ctx.SwitchCrewFunc(args[0]); err != nil {
		return Result{Message: fmt.Sprintf("Failed to switch crew: %v", err), IsInfo: true}
	}
	ctx.CrewName = args[0]
	return Result{Success: true, Message: fmt.Sprintf("Switched to the %s crew", args[0]), IsInfo: true}
}

func runStats(ctx *Context, args []string) Result {
	var b strings.Builder
	b.WriteString("Session Statistics:\n\n")
	fmt.Fprintf(&b, "  Crew:            %s\n", ctx.CrewName)
	fmt.Fprintf(&b, "  LLM Requests:    %d\n", ctx.TotalLLMRequests)
	fmt.Fprintf(&b, "  Input Tokens:    %d\n", ctx.TotalInputTokens)
	fmt.Fprintf(&b, "  Output Tokens:   %d\n", ctx.TotalOutputTokens)
	fmt.Fprintf(&b, "  Session ID:      %s\n", ctx.SessionID)
	return Result{Success: true, Message: b.String(), IsInfo: true}
}

func runContext(ctx *Context, args []string) Result {
	var b strings.Builder
	b.WriteString("Context Window:\n\n")
	if ctx.ContextMax > 0 {
		pct := float64(ctx.ContextTokens) / float64(ctx.ContextMax) * 100
		fmt.Fprintf(&b, "  Used:    %d / %d tokens (%.1f%%)\n", ctx.ContextTokens, ctx.ContextMax, pct)
	} else {
		fmt.Fprintf(&b, "  Used:    %d tokens\n", ctx.ContextTokens)
	}
	fmt.Fprintf(&b, "  Crew:    %s\n", ctx.CrewName)
	return Result{Success: true, Message: b.String(), IsInfo: true}
}

func runQuit(ctx *Context, args []string) Result {
	if ctx.QuitFunc != nil {
		ctx.QuitFunc()
	}
	return Result{Success: true, Message: "Goodbye!", IsInfo: true}
}

func runExport(ctx *Context, args []string) Result {
	filename := "session"
	if len(args) > 0 {
		filename = args[0]
	}
	// TODO: write the transcript from the audit log once /sessions lands
	return Result{
		Message: fmt.Sprintf("/export - Not yet implemented (would export to %s)", filename),
		IsInfo:  true,
	}
}

func notImplemented(message string) func(*Context, []string) Result {
	return func(*Context, []string) Result {
		return Result{Message: message, IsInfo: true}
	}
}
