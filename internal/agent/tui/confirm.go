package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// Focus positions within the confirm prompt.
const (
	focusYes = iota
	focusNo
	focusText
)

// confirmPrompt collects the answer to a crew question: a yes/no
// choice plus an optional free-text reply that becomes a
// clarification.
type confirmPrompt struct {
	question string
	focus    int
	input    textarea.Model
	width    int
}

func newConfirmPrompt() *confirmPrompt {
	ta := textarea.New()
	ta.Placeholder = "Or type a clarification..."
	ta.CharLimit = 1000
	ta.SetWidth(60)
	ta.SetHeight(2)
	ta.MaxHeight = 4
	ta.ShowLineNumbers = false
	ta.SetPromptFunc(2, func(lineIdx int) string {
		if lineIdx == 0 {
			return "> "
		}
		return "  "
	})
	ta.KeyMap.InsertNewline.SetKeys("shift+enter")

	return &confirmPrompt{input: ta}
}

// set loads a question. The default answer starts selected.
func (c *confirmPrompt) set(msg UserQuestionMsg) {
	c.question = msg.Question
	c.focus = focusYes
	if !msg.DefaultConfirm {
		c.focus = focusNo
	}
	c.input.Reset()
	c.input.Blur()
}

func (c *confirmPrompt) setWidth(width int) {
	c.width = width
	c.input.SetWidth(width - 10)
}

func (c *confirmPrompt) up() {
	switch c.focus {
	case focusText:
		c.input.Blur()
		c.focus = focusNo
	case focusNo:
		c.focus = focusYes
	}
}

func (c *confirmPrompt) down() {
	switch c.focus {
	case focusYes:
		c.focus = focusNo
	case focusNo:
		c.focus = focusText
		c.input.Focus()
	}
}

// toggleText flips focus between the options and the free-text field.
func (c *confirmPrompt) toggleText() {
	if c.focus == focusText {
		c.input.Blur()
		c.focus = focusYes
		return
	}
	c.focus = focusText
	c.input.Focus()
}

func (c *confirmPrompt) typing() bool {
	return c.focus == focusText
}

// value returns what the user chose: typed text when the free-text
// field holds any, otherwise the selected option.
func (c *confirmPrompt) value() string {
	if c.focus == focusText {
		if text := strings.TrimSpace(c.input.Value()); text != "" {
			return text
		}
	}
	if c.focus == focusNo {
		return "no"
	}
	return "yes"
}

func (c *confirmPrompt) feed(msg tea.KeyMsg) {
	c.input, _ = c.input.Update(msg)
}

func (c *confirmPrompt) view(th theme) string {
	var b strings.Builder

	row := func(focused bool, label string) {
		if focused {
			b.WriteString(th.confirmCursor.Render("▸ "))
			b.WriteString(th.confirmActive.Render(label))
		} else {
			b.WriteString("  ")
			b.WriteString(th.confirmOption.Render(label))
		}
		b.WriteString("\n")
	}

	if c.question != "" {
		b.WriteString(th.confirmOption.Render(c.question))
		b.WriteString("\n\n")
	}

	row(c.focus == focusYes, "Yes")
	row(c.focus == focusNo, "No")

	b.WriteString("\n")
	row(c.focus == focusText, "Type a reply:")
	b.WriteString("  ")
	b.WriteString(c.input.View())

	return th.confirmBox.Width(c.width - 4).Render(b.String())
}
