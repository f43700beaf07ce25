package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const gaugeCells = 10

// View renders the whole frame: header, transcript, composer, help.
func (m *Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	if !m.ready {
		return "Initializing...\n"
	}

	var b strings.Builder

	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(m.rule())
	b.WriteString("\n")

	b.WriteString(m.pager.View())
	b.WriteString("\n")

	if m.lastError != nil {
		b.WriteString(m.theme.err.Render(fmt.Sprintf("Error: %v", m.lastError)))
		b.WriteString("\n")
	}

	b.WriteString(m.rule())
	b.WriteString("\n")

	if m.palette.open {
		m.palette.width = m.width
		b.WriteString(m.palette.view(m.theme))
		b.WriteString("\n")
	}

	b.WriteString(m.inputArea())
	b.WriteString("\n")
	b.WriteString(m.helpBar())

	return b.String()
}

// header shows the app name, active crew, session, and context gauge.
func (m *Model) header() string {
	left := m.theme.title.Render("crewline")
	info := m.theme.muted.Render(fmt.Sprintf(" · %s crew · %s · %s",
		m.crewName, shortID(m.sessionID), m.modelName))
	right := m.gauge()

	used := lipgloss.Width(left) + lipgloss.Width(info) + lipgloss.Width(right)
	gap := m.width - used - 2
	if gap < 1 {
		gap = 1
	}

	return left + info + strings.Repeat(" ", gap) + right
}

// gauge renders context window usage as a segmented bar.
func (m *Model) gauge() string {
	if m.contextMax <= 0 {
		return ""
	}

	pct := float64(m.contextUsed) / float64(m.contextMax) * 100
	lit := int(float64(gaugeCells) * pct / 100)
	if lit > gaugeCells {
		lit = gaugeCells
	}

	style := m.theme.gaugeOK
	switch {
	case pct >= 90:
		style = m.theme.gaugeBad
	case pct >= 70:
		style = m.theme.gaugeWarn
	}

	return fmt.Sprintf("ctx %s%s %.0f%%",
		style.Render(strings.Repeat("▰", lit)),
		m.theme.gaugeOff.Render(strings.Repeat("▱", gaugeCells-lit)),
		pct,
	)
}

func (m *Model) rule() string {
	width := m.width - 2
	if width < 1 {
		width = 1
	}
	return m.theme.rule.Render(strings.Repeat("─", width))
}

func (m *Model) inputArea() string {
	if !m.inputMode {
		return m.theme.busy.Render("Crew working... (ctrl+c to cancel)")
	}
	if m.pending != nil {
		return m.confirm.view(m.theme)
	}
	return m.composer.View()
}

func (m *Model) helpBar() string {
	bindings := [][2]string{
		{"enter", "submit"},
		{"shift+enter", "newline"},
		{"pgup/pgdn", "scroll"},
		{"ctrl+c", "quit"},
	}
	if m.pending != nil {
		bindings = [][2]string{
			{"up/down", "choose"},
			{"tab", "free text"},
			{"enter", "answer"},
			{"ctrl+c", "quit"},
		}
	}

	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		parts = append(parts, m.theme.helpKey.Render(kb[0])+" "+kb[1])
	}
	return m.theme.help.Render(strings.Join(parts, " · "))
}

// shortID trims a session UUID to its leading segment for the header.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
