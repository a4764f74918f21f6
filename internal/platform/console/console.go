// Package console binds core.Terminal to a real terminal through tcell.
package console

import (
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/vovakirdan/randscreen/internal/core"
)

// ErrNotTerminal is returned by Open when stdout is not a terminal.
var ErrNotTerminal = errors.New("console: stdout is not a terminal")

// eventBuffer bounds how many terminal events wait between two polls.
const eventBuffer = 64

// Console paints on a tcell screen.
// Painting happens on the caller's goroutine; a separate goroutine only
// collects input events so KeyPending never blocks.
type Console struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}

	style    tcell.Style
	fg, bg   core.Color
	col, row int
	keys     int
}

// Open initializes the process terminal and wraps it.
// The caller must Close it to give the terminal back.
func Open() (*Console, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, ErrNotTerminal
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("console: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("console: cannot initialize screen: %w", err)
	}
	return New(screen), nil
}

// New wraps an initialized tcell screen.
func New(screen tcell.Screen) *Console {
	c := &Console{
		screen: screen,
		events: make(chan tcell.Event, eventBuffer),
		quit:   make(chan struct{}),
		style:  tcell.StyleDefault,
	}
	screen.SetStyle(c.style)
	screen.HideCursor()

	go c.pump()
	return c
}

// pump forwards screen events until the screen is finalized.
func (c *Console) pump() {
	for {
		ev := c.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case c.events <- ev:
		case <-c.quit:
			return
		}
	}
}

// Close finalizes the screen, restoring the terminal's own mode.
func (c *Console) Close() {
	close(c.quit)
	c.screen.Fini()
}

func (c *Console) Foreground() core.Color { return c.fg }
func (c *Console) Background() core.Color { return c.bg }

// SetForeground sets the color of subsequent writes.
func (c *Console) SetForeground(col core.Color) {
	c.fg = col
	c.style = c.style.Foreground(tcellColor(col))
}

// SetBackground sets the background of subsequent writes and clears.
func (c *Console) SetBackground(col core.Color) {
	c.bg = col
	c.style = c.style.Background(tcellColor(col))
}

// Viewport returns the whole screen.
func (c *Console) Viewport() core.Rect {
	w, h := c.screen.Size()
	return core.NewRect(0, 0, w, h)
}

// SetCursor moves the write position. The hardware cursor stays hidden.
func (c *Console) SetCursor(col, row int) {
	c.col, c.row = col, row
}

// WriteChar draws r at the write position and shows it.
func (c *Console) WriteChar(r rune) {
	c.screen.SetContent(c.col, c.row, r, nil, c.style)
	c.screen.Show()

	w, h := c.screen.Size()
	c.col++
	if c.col >= w {
		c.col = 0
		if c.row < h-1 {
			c.row++
		}
	}
}

// Clear blanks the screen in the current colors.
func (c *Console) Clear() {
	c.screen.SetStyle(c.style)
	c.screen.Clear()
	c.screen.Show()
	c.col, c.row = 0, 0
}

// KeyPending drains waiting events and reports whether any was a key press.
// Resize events resync the screen along the way.
func (c *Console) KeyPending() bool {
	for {
		select {
		case ev := <-c.events:
			switch ev.(type) {
			case *tcell.EventKey:
				c.keys++
			case *tcell.EventResize:
				c.screen.Sync()
			}
		default:
			return c.keys > 0
		}
	}
}

// SetTitle sets the window title when the screen supports it.
func (c *Console) SetTitle(title string) {
	if t, ok := c.screen.(interface{ SetTitle(string) }); ok {
		t.SetTitle(title)
	}
}

// tcellColor maps a console color onto the 16-color ANSI palette.
func tcellColor(c core.Color) tcell.Color {
	idx := c.ANSI()
	if idx < 0 {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(idx)
}

var (
	_ core.Terminal = (*Console)(nil)
	_ core.Titler   = (*Console)(nil)
)
