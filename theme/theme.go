package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

// Symbols are the runes the grid and graph panes draw with.
type Symbols struct {
	// Grid cells
	CellEmpty    rune // · inactive cell
	CellActive   rune // ● active cell
	CursorEmpty  rune // ○ cursor on empty cell
	CursorActive rune // ◉ cursor on active cell

	// Graph canvas
	Node        rune // ● event node
	NodeLit     rune // ◉ highlighted event node
	Marker      rune // ✦ traversal marker
	EdgeDot     rune // · chord-stack edge
	SequenceDot rune // ∙ sequence edge
}

func New(palette *Palette) *Theme {
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			CellEmpty:    '·',
			CellActive:   '●',
			CursorEmpty:  '○',
			CursorActive: '◉',

			Node:        '●',
			NodeLit:     '◉',
			Marker:      '✦',
			EdgeDot:     '·',
			SequenceDot: '∙',
		},
	}
}

// Color roles mapped to palette positions (0-1)
const (
	RoleBG        = 0.0
	RoleSurface   = 0.1
	RoleMuted     = 0.25
	RoleFG        = 0.45
	RoleEdge      = 0.35
	RoleAccent    = 0.6
	RoleCursor    = 0.7
	RoleActive    = 0.8
	RoleHighlight = 0.9
	RoleMarker    = 1.0
)

func (t *Theme) BG() lipgloss.Color        { return rgbToLipgloss(t.Palette.Lookup(RoleBG)) }
func (t *Theme) FG() lipgloss.Color        { return rgbToLipgloss(t.Palette.Lookup(RoleFG)) }
func (t *Theme) Muted() lipgloss.Color     { return rgbToLipgloss(t.Palette.Lookup(RoleMuted)) }
func (t *Theme) Edge() lipgloss.Color      { return rgbToLipgloss(t.Palette.Lookup(RoleEdge)) }
func (t *Theme) Accent() lipgloss.Color    { return rgbToLipgloss(t.Palette.Lookup(RoleAccent)) }
func (t *Theme) Cursor() lipgloss.Color    { return rgbToLipgloss(t.Palette.Lookup(RoleCursor)) }
func (t *Theme) Active() lipgloss.Color    { return rgbToLipgloss(t.Palette.Lookup(RoleActive)) }
func (t *Theme) Highlight() lipgloss.Color { return rgbToLipgloss(t.Palette.Lookup(RoleHighlight)) }
func (t *Theme) Marker() lipgloss.Color    { return rgbToLipgloss(t.Palette.Lookup(RoleMarker)) }

// Color returns the lipgloss color for any normalized position 0-1.
func (t *Theme) Color(norm float64) lipgloss.Color {
	return rgbToLipgloss(t.Palette.Lookup(norm))
}

func rgbToLipgloss(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
