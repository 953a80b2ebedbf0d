package tui

import (
	"strings"
	"testing"
	"time"

	"graphseq/graph"
	"graphseq/theme"
)

func testCanvas() *Canvas {
	return NewCanvas(theme.New(theme.Default()), 40, 16)
}

func TestCanvasAnimationInterpolatesAtConstantRate(t *testing.T) {
	c := testCanvas()
	c.AddNode("n", "", graph.Point{X: 0, Y: 0})
	c.AnimatePosition("n", graph.Point{X: 100, Y: 0}, time.Second)

	n := c.nodes["n"]
	mid := n.anim.start.Add(500 * time.Millisecond)
	p := n.posAt(mid)
	if p.X < 45 || p.X > 55 {
		t.Fatalf("halfway through the glide X = %v, want ~50", p.X)
	}

	end := n.anim.start.Add(2 * time.Second)
	p = n.posAt(end)
	if p.X != 100 {
		t.Fatalf("finished glide should rest at the target, got %v", p.X)
	}
	if n.anim != nil {
		t.Fatal("finished animation should be retired")
	}
}

func TestCanvasSetPositionCancelsAnimation(t *testing.T) {
	c := testCanvas()
	c.AddNode("n", "", graph.Point{})
	c.AnimatePosition("n", graph.Point{X: 10}, time.Second)
	c.SetNodePosition("n", graph.Point{X: 3})
	if c.nodes["n"].anim != nil {
		t.Fatal("SetNodePosition must cancel the animation in flight")
	}
	if c.nodes["n"].pos.X != 3 {
		t.Fatalf("node should be pinned at 3, got %v", c.nodes["n"].pos.X)
	}
}

func TestCanvasHideCancelsAnimation(t *testing.T) {
	c := testCanvas()
	c.AddNode("n", "", graph.Point{})
	c.AnimatePosition("n", graph.Point{X: 10}, time.Second)
	c.SetVisible("n", false)
	if c.nodes["n"].anim != nil {
		t.Fatal("hiding a node must cancel its animation")
	}
	if c.AnimationsActive(time.Now()) {
		t.Fatal("no animations should remain active")
	}
}

func TestCanvasRenderDrawsVisibleNodesOnly(t *testing.T) {
	c := testCanvas()
	c.AddNode("a", "C4", graph.Point{X: 0, Y: 0})
	c.AddNode("b", "", graph.Point{X: 50, Y: 20})
	c.SetVisible("b", false)
	c.SetHighlighted("a", true)

	out := c.Render(time.Now())
	th := theme.New(theme.Default())
	if !strings.ContainsRune(out, th.Symbols.NodeLit) {
		t.Fatal("highlighted node glyph missing from render")
	}
	if strings.ContainsRune(out, th.Symbols.Node) {
		t.Fatal("hidden node must not be drawn")
	}
	if !strings.Contains(out, "C4") {
		t.Fatal("node label missing from render")
	}
}

func TestCanvasZeroDurationAnimationSnaps(t *testing.T) {
	c := testCanvas()
	c.AddNode("n", "", graph.Point{})
	c.AnimatePosition("n", graph.Point{X: 7}, 0)
	if c.nodes["n"].pos.X != 7 || c.nodes["n"].anim != nil {
		t.Fatal("zero-duration animation should snap to the target")
	}
}
