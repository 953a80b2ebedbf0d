package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"graphseq/sequencer"
	"graphseq/theme"
)

// renderGrid draws the piano-roll pane: 13 pitch rows by 16 step
// columns, with the edit cursor and, while playing, the playhead column.
func renderGrid(th *theme.Theme, cells [sequencer.NumPitches][sequencer.NumSteps]bool, curPitch, curStep, playStep int) string {
	mutedStyle := lipgloss.NewStyle().Foreground(th.Muted())
	activeStyle := lipgloss.NewStyle().Foreground(th.Active())
	cursorStyle := lipgloss.NewStyle().Foreground(th.Cursor()).Bold(true)
	playStyle := lipgloss.NewStyle().Foreground(th.Highlight()).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(th.FG())

	var out strings.Builder

	// Step ruler, beat starts emphasized.
	out.WriteString(labelStyle.Render("    "))
	for s := 0; s < sequencer.NumSteps; s++ {
		mark := "· "
		if s%4 == 0 {
			mark = fmt.Sprintf("%-2d", s+1)
		}
		if s == playStep {
			out.WriteString(playStyle.Render(mark))
		} else {
			out.WriteString(mutedStyle.Render(mark))
		}
	}
	out.WriteString("\n")

	for p := sequencer.Pitch(0); p < sequencer.NumPitches; p++ {
		out.WriteString(labelStyle.Render(fmt.Sprintf("%-4s", p.Name())))
		for s := 0; s < sequencer.NumSteps; s++ {
			on := cells[p][s]
			underCursor := int(p) == curPitch && s == curStep

			r := th.Symbols.CellEmpty
			st := mutedStyle
			switch {
			case underCursor && on:
				r, st = th.Symbols.CursorActive, cursorStyle
			case underCursor:
				r, st = th.Symbols.CursorEmpty, cursorStyle
			case on && s == playStep:
				r, st = th.Symbols.CellActive, playStyle
			case on:
				r, st = th.Symbols.CellActive, activeStyle
			case s == playStep:
				st = playStyle
			}
			out.WriteString(st.Render(string(r)) + " ")
		}
		if p < sequencer.NumPitches-1 {
			out.WriteString("\n")
		}
	}
	return out.String()
}
