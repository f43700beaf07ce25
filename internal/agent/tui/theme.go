package tui

import "github.com/charmbracelet/lipgloss"

// Each crew gets its own accent color so a mid-session /crew switch
// is visible at a glance.
var crewAccents = map[string]lipgloss.Color{
	"crm":       lipgloss.Color("#36A3F7"),
	"lifecycle": lipgloss.Color("#BD93F9"),
}

const defaultAccent = lipgloss.Color("#00D4FF")

var (
	colorOK    = lipgloss.Color("#10B981")
	colorWarn  = lipgloss.Color("#F59E0B")
	colorBad   = lipgloss.Color("#EF4444")
	colorMuted = lipgloss.Color("#6B7280")
	colorText  = lipgloss.Color("#E5E7EB")
	colorFaint = lipgloss.Color("#4B5563")
)

// theme bundles every style the TUI renders with, keyed off the
// active crew's accent.
type theme struct {
	accent lipgloss.Color

	title   lipgloss.Style
	muted   lipgloss.Style
	rule    lipgloss.Style
	err     lipgloss.Style
	busy    lipgloss.Style
	prompt  lipgloss.Style
	spinner lipgloss.Style

	gaugeOK   lipgloss.Style
	gaugeWarn lipgloss.Style
	gaugeBad  lipgloss.Style
	gaugeOff  lipgloss.Style

	youLabel lipgloss.Style
	youText  lipgloss.Style

	agentHead lipgloss.Style
	toolOK    lipgloss.Style
	toolBad   lipgloss.Style
	toolNote  lipgloss.Style

	helpKey lipgloss.Style
	help    lipgloss.Style

	paletteBox    lipgloss.Style
	paletteRow    lipgloss.Style
	paletteCursor lipgloss.Style
	paletteName   lipgloss.Style
	paletteDesc   lipgloss.Style

	confirmBox    lipgloss.Style
	confirmCursor lipgloss.Style
	confirmOption lipgloss.Style
	confirmActive lipgloss.Style
}

func newTheme(crew string) theme {
	accent, ok := crewAccents[crew]
	if !ok {
		accent = defaultAccent
	}

	return theme{
		accent: accent,

		title:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		muted:   lipgloss.NewStyle().Foreground(colorMuted),
		rule:    lipgloss.NewStyle().Foreground(colorFaint),
		err:     lipgloss.NewStyle().Bold(true).Foreground(colorBad),
		busy:    lipgloss.NewStyle().Italic(true).Foreground(colorMuted),
		prompt:  lipgloss.NewStyle().Bold(true).Foreground(colorOK),
		spinner: lipgloss.NewStyle().Foreground(accent),

		gaugeOK:   lipgloss.NewStyle().Foreground(colorOK),
		gaugeWarn: lipgloss.NewStyle().Foreground(colorWarn),
		gaugeBad:  lipgloss.NewStyle().Foreground(colorBad),
		gaugeOff:  lipgloss.NewStyle().Foreground(colorFaint),

		youLabel: lipgloss.NewStyle().Bold(true).Foreground(accent),
		youText:  lipgloss.NewStyle().Foreground(colorText),

		agentHead: lipgloss.NewStyle().Bold(true).Foreground(accent),
		toolOK:    lipgloss.NewStyle().Foreground(colorOK),
		toolBad:   lipgloss.NewStyle().Foreground(colorBad),
		toolNote:  lipgloss.NewStyle().Foreground(colorMuted),

		helpKey: lipgloss.NewStyle().Foreground(accent),
		help:    lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1),

		paletteBox:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1),
		paletteRow:    lipgloss.NewStyle().Foreground(colorText).PaddingLeft(1),
		paletteCursor: lipgloss.NewStyle().Bold(true).Foreground(accent).Background(lipgloss.Color("#1E3A5F")).PaddingLeft(1),
		paletteName:   lipgloss.NewStyle().Bold(true).Foreground(colorOK),
		paletteDesc:   lipgloss.NewStyle().Foreground(colorMuted),

		confirmBox:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(1, 2),
		confirmCursor: lipgloss.NewStyle().Bold(true).Foreground(accent),
		confirmOption: lipgloss.NewStyle().Foreground(colorText),
		confirmActive: lipgloss.NewStyle().Bold(true).Foreground(accent),
	}
}
