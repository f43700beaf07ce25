package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/moolen/crewline/internal/agent/commands"
)

const composerPlaceholder = "Ask a question or describe a task for the crew..."

// Model is the Bubble Tea model for a crew session.
type Model struct {
	width  int
	height int

	sessionID string
	crewName  string
	modelName string

	contextUsed int
	contextMax  int

	theme    theme
	log      *transcript
	composer textarea.Model
	pager    viewport.Model
	spin     spinner.Model
	markdown *glamour.TermRenderer
	palette  *palette
	confirm  *confirmPrompt

	eventCh <-chan interface{}

	pending    *UserQuestionMsg
	ready      bool
	quitting   bool
	inputMode  bool
	processing bool
	lastError  error
}

// NewModel creates the session model. Events arrive on eventCh and
// drive the transcript.
func NewModel(eventCh <-chan interface{}, sessionID, crewName, modelName string) Model {
	th := newTheme(crewName)

	ta := textarea.New()
	ta.Placeholder = composerPlaceholder
	ta.Focus()
	ta.CharLimit = 4000
	ta.SetWidth(80)
	ta.SetHeight(2)
	ta.MaxHeight = 10
	ta.ShowLineNumbers = false
	ta.SetPromptFunc(2, func(lineIdx int) string {
		if lineIdx == 0 {
			return "> "
		}
		return "  "
	})
	ta.FocusedStyle.Prompt = th.prompt
	ta.BlurredStyle.Prompt = th.prompt
	// Enter submits; shift+enter inserts a newline.
	ta.KeyMap.InsertNewline.SetKeys("shift+enter")

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = th.spinner

	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true

	md, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(76),
	)

	return Model{
		theme:      th,
		log:        newTranscript(),
		composer:   ta,
		pager:      vp,
		spin:       sp,
		markdown:   md,
		palette:    newPalette(commands.DefaultRegistry),
		confirm:    newConfirmPrompt(),
		eventCh:    eventCh,
		sessionID:  sessionID,
		crewName:   crewName,
		modelName:  modelName,
		inputMode:  true,
		contextMax: 200000,
	}
}

// Init requests the window size so the first frame lays out correctly.
func (m *Model) Init() tea.Cmd {
	return tea.WindowSize()
}

// waitForEvent reads the next runner event. A closed channel ends the
// turn.
func (m *Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		if m.eventCh == nil {
			return nil
		}
		event, ok := <-m.eventCh
		if !ok {
			return CompletedMsg{}
		}
		return waitForEventMsg{event: event}
	}
}

// refresh re-renders the transcript into the pager and follows the
// tail.
func (m *Model) refresh() {
	m.pager.SetContent(m.log.render(m.theme, m.renderMarkdown, m.spin.View(), m.width-10))
	m.pager.GotoBottom()
}

// beginTurn archives the previous turn and starts processing a new
// prompt.
func (m *Model) beginTurn(prompt string) {
	m.log.beginTurn(prompt, m.renderMarkdown)
	m.lastError = nil
	m.processing = true
}

func (m *Model) renderMarkdown(content string) string {
	if m.markdown == nil {
		return content
	}
	rendered, err := m.markdown.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n") + "\n"
}
