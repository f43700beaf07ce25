package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/moolen/crewline/internal/agent/commands"
)

const paletteRows = 8

// palette is the slash-command picker shown while the composer starts
// with "/". It filters the registry as the user types.
type palette struct {
	registry *commands.Registry
	open     bool
	matches  []commands.Entry
	cursor   int
	width    int
}

func newPalette(registry *commands.Registry) *palette {
	return &palette{
		registry: registry,
		matches:  registry.AllEntries(),
		width:    60,
	}
}

// sync opens, filters, or closes the palette from the composer text.
// It stays closed once the command has a trailing space.
func (p *palette) sync(text string) {
	query, isCommand := strings.CutPrefix(text, "/")
	if !isCommand || strings.Contains(query, " ") {
		p.close()
		return
	}
	if !p.open {
		p.open = true
		p.cursor = 0
	}
	p.matches = p.registry.FuzzyMatch(query)
	if p.cursor >= len(p.matches) {
		p.cursor = 0
	}
}

func (p *palette) close() {
	p.open = false
	p.cursor = 0
	p.matches = p.registry.AllEntries()
}

func (p *palette) visibleRows() int {
	if len(p.matches) < paletteRows {
		return len(p.matches)
	}
	return paletteRows
}

func (p *palette) up() {
	if rows := p.visibleRows(); rows > 0 {
		p.cursor = (p.cursor + rows - 1) % rows
	}
}

func (p *palette) down() {
	if rows := p.visibleRows(); rows > 0 {
		p.cursor = (p.cursor + 1) % rows
	}
}

// pick returns the highlighted command, or nil when nothing matches.
func (p *palette) pick() *commands.Entry {
	if len(p.matches) == 0 || p.cursor >= len(p.matches) {
		return nil
	}
	return &p.matches[p.cursor]
}

func (p *palette) view(th theme) string {
	if !p.open || len(p.matches) == 0 {
		return ""
	}

	var lines []string
	for i, entry := range p.matches {
		if i >= paletteRows {
			break
		}

		name := th.paletteName.Render("/" + entry.Name)
		pad := 16 - lipgloss.Width(name)
		if pad < 1 {
			pad = 1
		}
		line := name + strings.Repeat(" ", pad) + th.paletteDesc.Render(entry.Description)

		style := th.paletteRow
		if i == p.cursor {
			style = th.paletteCursor
		}
		lines = append(lines, style.Width(p.width-6).Render(line))
	}

	if extra := len(p.matches) - paletteRows; extra > 0 {
		lines = append(lines, th.paletteDesc.Render(fmt.Sprintf("  … %d more", extra)))
	}

	return th.paletteBox.Width(p.width - 4).Render(strings.Join(lines, "\n"))
}
