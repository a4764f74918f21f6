package tui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/randscreen/internal/core"
	"github.com/vovakirdan/randscreen/internal/registry"
	"github.com/vovakirdan/randscreen/internal/saver"
)

// BackendName is the registry name of the Bubble Tea backend.
const BackendName = "tui"

func init() {
	registry.Register(registry.Backend{
		Name:        BackendName,
		Description: "Render through Bubble Tea on the alternate screen",
		Run:         Run,
	})
}

// Model is the Bubble Tea model running the render loop.
// Each tick stands for the pause between two paints.
type Model struct {
	ctx      context.Context
	term     *core.BufferTerminal
	loop     *saver.Loop
	quitting bool
}

// NewModel creates a model painting into a width x height buffer.
func NewModel(ctx context.Context, cfg core.RuntimeConfig, width, height int, opts ...saver.Option) Model {
	buf := core.NewBufferTerminal(width, height)
	return Model{
		ctx:  ctx,
		term: buf,
		loop: saver.New(buf, cfg, opts...),
	}
}

// Init captures the colors, paints the first glyph and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.loop.Start()
	m.loop.Paint()

	cmds := []tea.Cmd{tickCmd(m.loop.Interval())}
	if title := m.term.Title(); title != "" {
		cmds = append(cmds, tea.SetWindowTitle(title))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Any key interrupts; the loop notices on the next tick
		m.term.PressKey()
		return m, nil

	case tea.WindowSizeMsg:
		m.term.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick checks for an interrupt, then paints and waits again.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.loop.Poll(m.ctx) {
		m.quitting = true
		return m, tea.Quit
	}

	m.loop.Paint()
	return m, tickCmd(m.loop.Interval())
}

// View renders the painted buffer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.term.Screen())
}

// Loop exposes the render loop, mainly for inspecting the final state.
func (m Model) Loop() *saver.Loop {
	return m.loop
}

// Run starts the Bubble Tea program and blocks until the loop stops.
func Run(ctx context.Context, cfg core.RuntimeConfig, logger *log.Logger) (registry.Result, error) {
	width, height := 80, 24 // Defaults until the first WindowSizeMsg
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	model := NewModel(ctx, cfg, width, height, saver.WithLogger(logger))

	loop, err := runProgram(model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)
	if err != nil {
		return registry.Result{}, err
	}
	return registry.Result{Reason: loop.Reason(), Painted: loop.Painted()}, nil
}

// runProgram runs model until the loop stops. Bubble Tea's own signal
// handler is disabled: signals cancel the model's context, and the next
// tick stops the loop through Poll.
func runProgram(model Model, opts ...tea.ProgramOption) (*saver.Loop, error) {
	opts = append(opts, tea.WithoutSignalHandler())
	p := tea.NewProgram(model, opts...)

	final, err := p.Run()
	loop := model.Loop()
	if fm, ok := final.(Model); ok {
		loop = fm.Loop()
	}

	// Killed programs never deliver the last tick
	loop.Stop(saver.StopAborted)

	if err != nil {
		return loop, fmt.Errorf("tui: %w", err)
	}
	return loop, nil
}
