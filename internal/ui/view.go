package ui

import (
	"fmt"
	"strings"
)

func (m *Model) View() string {
	if !m.mounted {
		return m.styles.Dim.Render("  palette hidden. ctrl+space to open, q to quit.")
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render(m.view.Title))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	// Everything above this line is chrome; mouse mapping needs to
	// know where the rows start.
	m.listTop = 2

	results := m.idx.Results()
	offset := m.cursor.ViewportOffset()
	height := m.cursor.ViewportHeight()

	end := offset + height
	if end > len(results) {
		end = len(results)
	}

	for i := offset; i < end; i++ {
		b.WriteString(m.renderRow(i))
		b.WriteString("\n")
	}

	if len(results) == 0 {
		b.WriteString(m.styles.Dim.Render("  no results"))
		b.WriteString("\n")
	}

	b.WriteString(m.statusLine(len(results), offset, end))
	return m.styles.Main.Render(b.String())
}

func (m *Model) renderRow(i int) string {
	item := m.idx.Results()[i]

	title := item.Title
	if item.Subtitle != "" {
		title = fmt.Sprintf("%s  %s", title, m.styles.Dim.Render(item.Subtitle))
	}

	line := "  " + title
	switch {
	case item.Invalid:
		line = m.styles.Invalid.Render(line)
	case i == m.cursor.Index():
		line = m.styles.SelectionBg.Render("▌" + line[1:])
	case i == m.selection.HoveredRow():
		line = m.styles.HighlightBg.Render(line)
	}
	return line
}

func (m *Model) statusLine(total, offset, end int) string {
	status := fmt.Sprintf("%d results", total)
	if total == 1 {
		status = "1 result"
	}
	if offset > 0 || end < total {
		status += fmt.Sprintf(" (%d-%d shown)", offset+1, end)
	}
	hint := m.styles.Help.Render("  enter run · esc back · f1 help")
	return m.styles.Status.Render(status) + hint
}
