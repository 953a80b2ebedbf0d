package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"graphseq/config"
	"graphseq/graph"
	"graphseq/sequencer"
	"graphseq/theme"
)

const (
	frameRate     = 30 // marker interpolation frames per second
	resizeSettle  = 150 * time.Millisecond
	gridPaneWidth = 4 + sequencer.NumSteps*2
	minCanvasCols = 24
	minCanvasRows = 10
	chromeHeight  = 5 // header, blanks, help
)

type Model struct {
	session *sequencer.Session
	sync    *graph.Synchronizer
	layout  *graph.Layout
	anim    *graph.Animator
	canvas  *Canvas
	th      *theme.Theme
	cfg     *config.Config

	cursorPitch int
	cursorStep  int
	playStep    int // step lit by the last tick, -1 when stopped

	width, height int
	resizeSeq     int
	quitting      bool
}

type (
	// TickMsg carries one clock tick into the update loop.
	TickMsg sequencer.TickEvent
	// FrameMsg drives marker interpolation between ticks.
	FrameMsg  time.Time
	resizeMsg struct{ seq int }
)

// NewModel wires the session to the graph layer and returns the root
// bubbletea model.
func NewModel(session *sequencer.Session, th *theme.Theme, cfg *config.Config) *Model {
	canvas := NewCanvas(th, minCanvasCols, minCanvasRows)
	layout := graph.NewLayout(canvas, float64(minCanvasCols), float64(minCanvasRows)*2)
	anim := graph.NewAnimator(canvas, layout)
	sync := graph.NewSynchronizer(canvas, layout, anim)
	session.OnChange(sync.Rebuild)

	return &Model{
		session:  session,
		sync:     sync,
		layout:   layout,
		anim:     anim,
		canvas:   canvas,
		th:       th,
		cfg:      cfg,
		playStep: -1,
	}
}

func listenTicks(clock *sequencer.Clock) tea.Cmd {
	return func() tea.Msg {
		return TickMsg(<-clock.Ticks)
	}
}

func frameTick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(listenTicks(m.session.Clock()), frameTick())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	clock := m.session.Clock()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			clock.Stop()
			m.saveConfig()
			return m, tea.Quit

		case "up", "k":
			if m.cursorPitch > 0 {
				m.cursorPitch--
			}
		case "down", "j":
			if m.cursorPitch < sequencer.NumPitches-1 {
				m.cursorPitch++
			}
		case "left", "h":
			if m.cursorStep > 0 {
				m.cursorStep--
			}
		case "right", "l":
			if m.cursorStep < sequencer.NumSteps-1 {
				m.cursorStep++
			}

		case " ", "enter":
			m.session.Toggle(sequencer.Pitch(m.cursorPitch), m.cursorStep)

		case "c":
			m.session.Clear()

		case "p":
			if clock.Playing() {
				clock.Stop()
				m.anim.ClearHighlights()
				m.anim.Halt()
				m.playStep = -1
			} else {
				clock.Play()
			}

		case "m":
			// Cycle from the queued target so repeated presses walk the
			// modes instead of fighting the pending slot.
			cur, _ := clock.PendingMode()
			clock.RequestMode(nextMode(cur))

		case "+", "=":
			clock.SetTempo(clock.Tempo() + 5)
		case "-", "_":
			clock.SetTempo(clock.Tempo() - 5)
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if p, s, ok := m.gridCellAt(msg.X, msg.Y); ok {
				m.cursorPitch, m.cursorStep = int(p), s
				m.session.Toggle(p, s)
			}
		}

	case TickMsg:
		ev := sequencer.TickEvent(msg)
		m.playStep = ev.Step
		m.anim.Tick(ev, m.session.Groups())
		return m, listenTicks(clock)

	case FrameMsg:
		return m, frameTick()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resizeSeq++
		seq := m.resizeSeq
		return m, tea.Tick(resizeSettle, func(time.Time) tea.Msg {
			return resizeMsg{seq: seq}
		})

	case resizeMsg:
		if msg.seq == m.resizeSeq {
			m.applyResize()
		}
	}

	return m, nil
}

// applyResize resizes the canvas and reruns the layout pass. The marker
// is halted first so it never glides against stale positions.
func (m *Model) applyResize() {
	cols, rows := m.canvasDims()
	m.canvas.SetSize(cols, rows)
	// Double the row count in layout space so the world stays roughly
	// isotropic despite tall terminal cells.
	m.layout.Resize(float64(cols), float64(rows)*2)
	m.anim.Halt()
	m.layout.Apply(m.session.Sequence())
}

func (m *Model) canvasDims() (int, int) {
	cols := m.width - gridPaneWidth - 3
	if cols < minCanvasCols {
		cols = minCanvasCols
	}
	rows := m.height - chromeHeight
	if rows < minCanvasRows {
		rows = minCanvasRows
	}
	return cols, rows
}

// gridCellAt maps terminal coordinates to a grid cell, if the position
// falls inside the grid pane. Layout constants mirror View.
func (m *Model) gridCellAt(x, y int) (sequencer.Pitch, int, bool) {
	const top = 4 // blank, header, blank, ruler
	row := y - top
	col := (x - 4) / 2
	if row < 0 || row >= sequencer.NumPitches || col < 0 || col >= sequencer.NumSteps {
		return 0, 0, false
	}
	if (x-4)%2 != 0 {
		return 0, 0, false // gap between cells
	}
	return sequencer.Pitch(row), col, true
}

func nextMode(m sequencer.Mode) sequencer.Mode {
	switch m {
	case sequencer.ModeForward:
		return sequencer.ModeReverse
	case sequencer.ModeReverse:
		return sequencer.ModePingPong
	default:
		return sequencer.ModeForward
	}
}

func (m *Model) saveConfig() {
	clock := m.session.Clock()
	m.cfg.Tempo = clock.Tempo()
	m.cfg.Mode = clock.Mode().String()
	m.cfg.Save()
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	clock := m.session.Clock()

	headerStyle := lipgloss.NewStyle().Foreground(m.th.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.th.Muted())

	playState := "STOP"
	if clock.Playing() {
		playState = "PLAY"
	}
	mode := clock.Mode().String()
	if pending, ok := clock.PendingMode(); ok {
		mode = fmt.Sprintf("%s>%s", mode, pending)
	}
	stepLabel := "--"
	if m.playStep >= 0 {
		stepLabel = fmt.Sprintf("%02d", m.playStep+1)
	}
	header := headerStyle.Render(fmt.Sprintf(
		"graphseq  %s  %3dbpm  %s  step:%s", playState, clock.Tempo(), mode, stepLabel))

	grid := renderGrid(m.th, m.session.GridSnapshot(), m.cursorPitch, m.cursorStep, m.playStep)
	canvas := m.canvas.Render(time.Now())

	body := lipgloss.JoinHorizontal(lipgloss.Top, grid, "   ", canvas)

	help := dimStyle.Render("hjkl:move  space:toggle  p:play  m:mode  +/-:tempo  c:clear  q:quit")

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(body)
	out.WriteString("\n\n")
	out.WriteString(help)
	return out.String()
}
