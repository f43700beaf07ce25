package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// isOSCResponse reports whether a key string is actually a terminal
// OSC color query response leaking through as input (e.g. "]11;rgb:…").
func isOSCResponse(key string) bool {
	if strings.Contains(key, "rgb:") {
		return true
	}
	if strings.HasPrefix(key, "11;") || strings.HasPrefix(key, "]11;") {
		return true
	}
	return key != "" && key[0] == ']' && strings.Contains(key, ";")
}

// Update routes messages to the composer, pager, and transcript.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isOSCResponse(msg.String()) {
			return m, nil
		}
		return m.onKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.pager, cmd = m.pager.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		return m.onResize(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		if m.processing {
			m.refresh()
		}
		return m, cmd

	case waitForEventMsg:
		return m.onEvent(msg.event)

	case AgentActivatedMsg, AgentTextMsg, ToolStartedMsg, ToolCompletedMsg,
		ContextUpdateMsg, ErrorMsg, CompletedMsg, UserQuestionMsg:
		model, cmd := m.applyEvent(msg)
		return model, cmd

	case InitialPromptMsg:
		return m.onInitialPrompt(msg)

	case CommandExecutedMsg:
		return m.onCommandExecuted(msg)
	}

	if m.inputMode {
		var cmd tea.Cmd
		m.composer, cmd = m.composer.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) onResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.ready = true

	resized := m.width != msg.Width
	m.width = msg.Width
	m.height = msg.Height
	m.composer.SetWidth(msg.Width - 4)
	m.confirm.setWidth(msg.Width)

	// Recreating the renderer can trigger terminal queries, so only do
	// it when the wrap width actually changed.
	if m.markdown == nil || resized {
		m.markdown, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(msg.Width-8),
		)
	}

	// header + two rules + composer + help + margins
	pagerHeight := msg.Height - 9
	if pagerHeight < 3 {
		pagerHeight = 3
	}
	m.pager.Width = msg.Width - 4
	m.pager.Height = pagerHeight

	m.refresh()
	return m, nil
}

func (m *Model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "esc":
		if m.palette.open {
			m.palette.close()
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	if m.pending != nil && m.inputMode {
		return m.onConfirmKey(msg)
	}

	if m.palette.open {
		switch key {
		case "up":
			m.palette.up()
			return m, nil
		case "down":
			m.palette.down()
			return m, nil
		case "enter", "tab":
			if entry := m.palette.pick(); entry != nil {
				m.composer.SetValue("/" + entry.Name + " ")
				m.composer.CursorEnd()
			}
			m.palette.close()
			return m, nil
		}
	}

	switch key {
	case "enter":
		if m.inputMode {
			return m.onSubmit()
		}

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.pager, cmd = m.pager.Update(msg)
		return m, cmd

	case "ctrl+up":
		m.pager.LineUp(3)
		return m, nil

	case "ctrl+down":
		m.pager.LineDown(3)
		return m, nil

	case "up", "down", "k", "j":
		if !m.inputMode {
			var cmd tea.Cmd
			m.pager, cmd = m.pager.Update(msg)
			return m, cmd
		}
	}

	if m.inputMode {
		var cmd tea.Cmd
		m.composer, cmd = m.composer.Update(msg)
		m.palette.sync(m.composer.Value())
		return m, cmd
	}
	return m, nil
}

// onSubmit handles enter in the composer: backslash continuation, then
// submission of a new prompt.
func (m *Model) onSubmit() (tea.Model, tea.Cmd) {
	value := m.composer.Value()

	if strings.HasSuffix(value, "\\") {
		m.composer.SetValue(strings.TrimSuffix(value, "\\") + "\n")
		m.composer.CursorEnd()
		return m, nil
	}

	input := strings.TrimSpace(value)
	if input == "" {
		return m, nil
	}

	m.composer.Reset()
	m.palette.close()
	m.inputMode = false
	m.beginTurn(input)
	m.refresh()

	return m, tea.Batch(
		func() tea.Msg { return InputSubmittedMsg{Input: input} },
		m.waitForEvent(),
		m.spin.Tick,
	)
}

func (m *Model) onConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		m.confirm.up()
		return m, nil

	case "down":
		m.confirm.down()
		return m, nil

	case "tab":
		m.confirm.toggleText()
		return m, nil

	case "enter":
		if m.confirm.typing() {
			if value := m.confirm.input.Value(); strings.HasSuffix(value, "\\") {
				m.confirm.input.SetValue(strings.TrimSuffix(value, "\\") + "\n")
				return m, nil
			}
		}

		input := m.confirm.value()
		if input == "" {
			return m, nil
		}
		m.pending = nil
		m.inputMode = false
		m.processing = true
		m.refresh()

		return m, tea.Batch(
			func() tea.Msg { return InputSubmittedMsg{Input: input} },
			m.waitForEvent(),
			m.spin.Tick,
		)

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.pager, cmd = m.pager.Update(msg)
		return m, cmd

	case "ctrl+up":
		m.pager.LineUp(3)
		return m, nil

	case "ctrl+down":
		m.pager.LineDown(3)
		return m, nil
	}

	if m.confirm.typing() {
		m.confirm.feed(msg)
	}
	return m, nil
}

// onEvent applies one channel event and keeps listening unless the
// turn is over or the crew is waiting on the user.
func (m *Model) onEvent(event interface{}) (tea.Model, tea.Cmd) {
	model, cmd := m.applyEvent(event)

	switch event.(type) {
	case CompletedMsg, UserQuestionMsg:
		return model, cmd
	}
	return model, tea.Batch(cmd, m.waitForEvent())
}

// applyEvent updates the transcript for a single crew event.
func (m *Model) applyEvent(event interface{}) (tea.Model, tea.Cmd) {
	switch ev := event.(type) {
	case AgentActivatedMsg:
		// The previous entry is done once another agent takes over.
		for i := range m.log.entries {
			if m.log.entries[i].status == StatusActive && m.log.entries[i].agent != ev.Name {
				m.log.entries[i].status = StatusCompleted
			}
		}
		m.log.entry(ev.Name)
		m.refresh()
		return m, m.spin.Tick

	case AgentTextMsg:
		if ev.Content != "" {
			m.log.addOutput(ev.Agent, ev.Content)
		}
		if ev.IsFinal {
			m.log.finishAgent(ev.Agent)
		}
		m.refresh()

	case ToolStartedMsg:
		m.log.startTool(ev.Agent, ev.ToolID, ev.ToolName)
		m.refresh()
		return m, m.spin.Tick

	case ToolCompletedMsg:
		m.log.finishTool(ev.Agent, ev.ToolID, ev.Success, ev.Duration, ev.Summary)
		m.refresh()

	case ContextUpdateMsg:
		m.contextUsed = ev.Used
		m.contextMax = ev.Max

	case ErrorMsg:
		m.lastError = ev.Error
		m.refresh()

	case UserQuestionMsg:
		return m.onUserQuestion(ev)

	case CompletedMsg:
		m.inputMode = true
		m.processing = false
		m.refresh()
	}
	return m, nil
}

// onUserQuestion swaps the composer for the confirm prompt until the
// user answers.
func (m *Model) onUserQuestion(msg UserQuestionMsg) (tea.Model, tea.Cmd) {
	m.pending = &msg

	agent := msg.AgentName
	if agent == "" {
		agent = "system"
	}

	var content strings.Builder
	if msg.Summary != "" {
		content.WriteString(msg.Summary)
		content.WriteString("\n\n")
	}
	content.WriteString("Question: ")
	content.WriteString(msg.Question)
	if msg.DefaultConfirm {
		content.WriteString(" [Y/n]")
	} else {
		content.WriteString(" [y/N]")
	}
	m.log.setOutput(agent, content.String())

	m.confirm.set(msg)
	m.confirm.setWidth(m.width)
	m.inputMode = true
	m.processing = false

	m.refresh()
	return m, nil
}

func (m *Model) onInitialPrompt(msg InitialPromptMsg) (tea.Model, tea.Cmd) {
	m.inputMode = false
	m.beginTurn(msg.Prompt)
	m.refresh()

	return m, tea.Batch(
		func() tea.Msg { return InputSubmittedMsg{Input: msg.Prompt} },
		m.waitForEvent(),
		m.spin.Tick,
	)
}

func (m *Model) onCommandExecuted(msg CommandExecutedMsg) (tea.Model, tea.Cmd) {
	if msg.IsInfo {
		m.log.note(msg.Message)
	} else if !msg.Success {
		m.lastError = fmt.Errorf("%s", msg.Message)
	}

	m.inputMode = true
	m.refresh()
	return m, nil
}
