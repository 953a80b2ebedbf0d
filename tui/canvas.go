package tui

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"graphseq/graph"
	"graphseq/sequencer"
	"graphseq/theme"
)

// Canvas implements graph.Renderer on a character-cell grid. Layout
// space is mapped to cells at render time by the fit pass; position
// animations are interpolated per rendered frame at a constant rate.
type Canvas struct {
	th   *theme.Theme
	cols int
	rows int

	nodes map[sequencer.NodeID]*nodeState
	order []sequencer.NodeID // insertion order, for stable draws
	edges []edgeState
	pad   float64
}

type nodeState struct {
	label       string
	pos         graph.Point
	highlighted bool
	visible     bool
	anim        *animState
}

type animState struct {
	from, to graph.Point
	start    time.Time
	dur      time.Duration
}

type edgeState struct {
	id             string
	source, target sequencer.NodeID
	kind           graph.EdgeKind
	steps          int
}

func NewCanvas(th *theme.Theme, cols, rows int) *Canvas {
	return &Canvas{
		th:    th,
		cols:  cols,
		rows:  rows,
		nodes: map[sequencer.NodeID]*nodeState{},
		pad:   1,
	}
}

func (c *Canvas) SetSize(cols, rows int) {
	if cols < 4 {
		cols = 4
	}
	if rows < 4 {
		rows = 4
	}
	c.cols, c.rows = cols, rows
}

// graph.Renderer implementation

func (c *Canvas) AddNode(id sequencer.NodeID, label string, pos graph.Point) {
	if _, ok := c.nodes[id]; !ok {
		c.order = append(c.order, id)
	}
	c.nodes[id] = &nodeState{label: label, pos: pos, visible: true}
}

func (c *Canvas) RemoveNode(id sequencer.NodeID) {
	if _, ok := c.nodes[id]; !ok {
		return
	}
	delete(c.nodes, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *Canvas) AddEdge(id string, source, target sequencer.NodeID, kind graph.EdgeKind, steps int) {
	c.edges = append(c.edges, edgeState{id: id, source: source, target: target, kind: kind, steps: steps})
}

func (c *Canvas) RemoveAllEdges() {
	c.edges = c.edges[:0]
}

// SetNodePosition pins a node, cancelling any animation in flight.
func (c *Canvas) SetNodePosition(id sequencer.NodeID, pos graph.Point) {
	if n, ok := c.nodes[id]; ok {
		n.pos = pos
		n.anim = nil
	}
}

// AnimatePosition starts a constant-rate glide. The glide clock starts
// at the call, not the musical tick it belongs to, which puts it at most
// one render frame behind the audio.
func (c *Canvas) AnimatePosition(id sequencer.NodeID, to graph.Point, d time.Duration) {
	n, ok := c.nodes[id]
	if !ok {
		return
	}
	if d <= 0 {
		n.pos = to
		n.anim = nil
		return
	}
	n.anim = &animState{from: n.pos, to: to, start: time.Now(), dur: d}
}

func (c *Canvas) SetHighlighted(id sequencer.NodeID, on bool) {
	if n, ok := c.nodes[id]; ok {
		n.highlighted = on
	}
}

// SetVisible hides or shows a node. Hiding cancels its animation, so a
// halted marker cannot keep gliding toward a removed target.
func (c *Canvas) SetVisible(id sequencer.NodeID, on bool) {
	if n, ok := c.nodes[id]; ok {
		n.visible = on
		if !on {
			n.anim = nil
		}
	}
}

func (c *Canvas) FitView(padding float64) {
	c.pad = padding
}

// AnimationsActive reports whether any node still has a glide in flight.
func (c *Canvas) AnimationsActive(now time.Time) bool {
	for _, n := range c.nodes {
		if n.anim != nil && now.Sub(n.anim.start) < n.anim.dur {
			return true
		}
	}
	return false
}

// posAt resolves a node's position at the given time, retiring finished
// animations. Interpolation is constant-rate.
func (n *nodeState) posAt(now time.Time) graph.Point {
	if n.anim == nil {
		return n.pos
	}
	t := float64(now.Sub(n.anim.start)) / float64(n.anim.dur)
	if t >= 1 {
		n.pos = n.anim.to
		n.anim = nil
		return n.pos
	}
	if t < 0 {
		t = 0
	}
	return graph.Point{
		X: n.anim.from.X + (n.anim.to.X-n.anim.from.X)*t,
		Y: n.anim.from.Y + (n.anim.to.Y-n.anim.from.Y)*t,
	}
}

type cell struct {
	r     rune
	style lipgloss.Style
}

// Render draws the graph into a cols x rows block of styled runes.
func (c *Canvas) Render(now time.Time) string {
	buf := make([][]cell, c.rows)
	empty := lipgloss.NewStyle().Foreground(c.th.Muted())
	for y := range buf {
		buf[y] = make([]cell, c.cols)
		for x := range buf[y] {
			buf[y][x] = cell{r: ' ', style: empty}
		}
	}

	cellOf := c.projection(now)

	// Edges under nodes.
	edgeStyle := lipgloss.NewStyle().Foreground(c.th.Edge())
	stackStyle := lipgloss.NewStyle().Foreground(c.th.Muted())
	for _, e := range c.edges {
		src, okS := c.nodes[e.source]
		dst, okT := c.nodes[e.target]
		if !okS || !okT {
			continue
		}
		x0, y0 := cellOf(src.posAt(now))
		x1, y1 := cellOf(dst.posAt(now))
		r, st := c.th.Symbols.SequenceDot, edgeStyle
		if e.kind == graph.EdgeChord {
			r, st = c.th.Symbols.EdgeDot, stackStyle
		}
		c.line(buf, x0, y0, x1, y1, r, st)
	}

	// Nodes, then the marker on top of everything.
	nodeStyle := lipgloss.NewStyle().Foreground(c.th.Accent())
	litStyle := lipgloss.NewStyle().Foreground(c.th.Highlight()).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(c.th.Muted())
	markerStyle := lipgloss.NewStyle().Foreground(c.th.Marker()).Bold(true)

	for _, id := range c.order {
		if id == graph.MarkerID {
			continue
		}
		n := c.nodes[id]
		if !n.visible {
			continue
		}
		x, y := cellOf(n.posAt(now))
		r, st := c.th.Symbols.Node, nodeStyle
		if n.highlighted {
			r, st = c.th.Symbols.NodeLit, litStyle
		}
		c.put(buf, x, y, r, st)
		for i, lr := range n.label {
			c.put(buf, x+2+i, y, lr, labelStyle)
		}
	}
	if m, ok := c.nodes[graph.MarkerID]; ok && m.visible {
		x, y := cellOf(m.posAt(now))
		c.put(buf, x, y, c.th.Symbols.Marker, markerStyle)
	}

	var out strings.Builder
	for y, row := range buf {
		if y > 0 {
			out.WriteByte('\n')
		}
		for _, cl := range row {
			out.WriteString(cl.style.Render(string(cl.r)))
		}
	}
	return out.String()
}

// projection maps layout space onto the cell grid: the bounding box of
// all visible nodes plus the fit padding fills the canvas. Terminal
// cells are about twice as tall as wide, which the independent x/y
// scales absorb.
func (c *Canvas) projection(now time.Time) func(graph.Point) (int, int) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	any := false
	for _, n := range c.nodes {
		if !n.visible {
			continue
		}
		p := n.posAt(now)
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		any = true
	}
	if !any {
		return func(graph.Point) (int, int) { return 0, 0 }
	}
	minX -= c.pad
	minY -= c.pad
	maxX += c.pad
	maxY += c.pad
	w, h := maxX-minX, maxY-minY
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	sx := float64(c.cols-1) / w
	sy := float64(c.rows-1) / h
	return func(p graph.Point) (int, int) {
		return int(math.Round((p.X - minX) * sx)), int(math.Round((p.Y - minY) * sy))
	}
}

func (c *Canvas) put(buf [][]cell, x, y int, r rune, st lipgloss.Style) {
	if y < 0 || y >= len(buf) || x < 0 || x >= len(buf[y]) {
		return
	}
	buf[y][x] = cell{r: r, style: st}
}

// line rasterizes between two cells (Bresenham), leaving the endpoints
// for the nodes themselves.
func (c *Canvas) line(buf [][]cell, x0, y0, x1, y1 int, r rune, st lipgloss.Style) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	x, y := x0, y0
	for {
		if (x != x0 || y != y0) && (x != x1 || y != y1) {
			c.put(buf, x, y, r, st)
		}
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
