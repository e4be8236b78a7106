package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/stefanclaw/chippick/internal/picker"
)

// removeGlyph is the clickable removal control on each chip.
const removeGlyph = "✕"

// chipHit is the screen span of one chip's removal control.
type chipHit struct {
	row    int
	startX int
	endX   int
	id     string
}

// frame is one rendering of the model plus the regions mouse clicks map to.
// View and the mouse handler both build it, so they always agree.
type frame struct {
	lines       []string
	chipHits    []chipHit
	inputRow    int
	dropdownRow int // first dropdown row, -1 when hidden
	dropdownLen int // clickable rows; 0 when showing the empty text
}

func (m Model) render() frame {
	f := frame{dropdownRow: -1}

	f.lines = append(f.lines, fit(headerStyle.Render(m.options.Header), m.width))

	rows, hits := chipRows(m.state.Chips(), m.width, len(f.lines))
	f.lines = append(f.lines, rows...)
	f.chipHits = hits

	f.inputRow = len(f.lines)
	f.lines = append(f.lines, fit(m.input.View(), m.width))

	if m.state.DropdownVisible() {
		f.dropdownRow = len(f.lines)
		filtered := m.state.Filtered()
		if len(filtered) == 0 {
			f.lines = append(f.lines, fit(emptyStyle.Render("  "+m.options.EmptyText), m.width))
		} else {
			f.dropdownLen = len(filtered)
			for i, e := range filtered {
				style, marker := rowStyle, "  "
				if i == m.state.Highlight() {
					style, marker = highlightRowStyle, "› "
				}
				line := marker + avatar(e.Label) + " " + style.Render(e.Label) + "  " + mailStyle.Render(e.MailID)
				f.lines = append(f.lines, fit(line, m.width))
			}
		}
	}

	f.lines = append(f.lines, "")
	f.lines = append(f.lines, StatusBar(len(m.state.Chips()), m.state.Directory().Len(), m.width))
	f.lines = append(f.lines, m.help.View(m.keys))
	return f
}

// chipRows lays chips out left to right, wrapping at width. firstRow is the
// screen row of the first chip line.
func chipRows(chips []picker.Chip, width, firstRow int) ([]string, []chipHit) {
	if len(chips) == 0 {
		return nil, nil
	}

	var (
		rows []string
		hits []chipHit
		line strings.Builder
		x    int
	)
	remove := chipRemoveStyle.Render(removeGlyph + " ")
	removeW := lipgloss.Width(remove)
	for _, c := range chips {
		label := c.Label
		// A chip never spans more than one screen line, or every hit
		// region below it would drift.
		if width > 0 {
			overhead := 3 + lipgloss.Width(avatar(label)) + removeW
			if overhead+lipgloss.Width(label) > width {
				label = ansi.Truncate(label, max(width-overhead, 1), "…")
			}
		}
		body := chipStyle.Render(" ") + avatar(c.Label) + chipStyle.Render(" "+label+" ")
		bodyW := lipgloss.Width(body)
		w := bodyW + removeW

		if x > 0 && width > 0 && x+1+w > width {
			rows = append(rows, line.String())
			line.Reset()
			x = 0
		}
		if x > 0 {
			line.WriteString(" ")
			x++
		}

		hits = append(hits, chipHit{
			row:    firstRow + len(rows),
			startX: x + bodyW,
			endX:   x + bodyW + lipgloss.Width(removeGlyph),
			id:     c.ID,
		})
		line.WriteString(body + remove)
		x += w
	}
	rows = append(rows, line.String())
	return rows, hits
}

// avatar stands in for the person's image: a badge with their initials.
func avatar(label string) string {
	var initials []rune
	for _, word := range strings.Fields(label) {
		r := []rune(word)
		initials = append(initials, unicode.ToUpper(r[0]))
		if len(initials) == 2 {
			break
		}
	}
	if len(initials) == 0 {
		initials = []rune{'?'}
	}
	return avatarStyle.Render(string(initials))
}

// fit cuts s to the terminal width so one rendered line is one screen line.
func fit(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Truncate(s, width, "…")
}
