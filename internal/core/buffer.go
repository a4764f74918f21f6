package core

// BufferTerminal is a Terminal that paints into a Screen.
// Key presses are fed in with PressKey; the viewport always starts at (0, 0).
type BufferTerminal struct {
	screen   *Screen
	fg, bg   Color
	col, row int
	pending  int
	title    string
}

// NewBufferTerminal creates a buffer terminal of the given size with
// default colors.
func NewBufferTerminal(width, height int) *BufferTerminal {
	return &BufferTerminal{screen: NewScreen(width, height)}
}

// Screen exposes the underlying cell buffer.
func (b *BufferTerminal) Screen() *Screen {
	return b.screen
}

// Resize changes the buffer size. The cursor is clamped into the new bounds.
func (b *BufferTerminal) Resize(width, height int) {
	b.screen.Resize(width, height)
	b.col = Clamp(b.col, 0, Max(width-1, 0))
	b.row = Clamp(b.row, 0, Max(height-1, 0))
}

func (b *BufferTerminal) Foreground() Color { return b.fg }
func (b *BufferTerminal) Background() Color { return b.bg }

func (b *BufferTerminal) SetForeground(c Color) { b.fg = c }
func (b *BufferTerminal) SetBackground(c Color) { b.bg = c }

// Viewport returns the whole buffer.
func (b *BufferTerminal) Viewport() Rect {
	return NewRect(0, 0, b.screen.Width(), b.screen.Height())
}

// SetCursor moves the cursor.
func (b *BufferTerminal) SetCursor(col, row int) {
	b.col, b.row = col, row
}

// Cursor returns the current cursor position.
func (b *BufferTerminal) Cursor() (col, row int) {
	return b.col, b.row
}

// WriteChar stores r at the cursor and advances it, wrapping at the right edge.
func (b *BufferTerminal) WriteChar(r rune) {
	b.screen.Set(b.col, b.row, Cell{Rune: r, Fg: b.fg, Bg: b.bg})
	b.col++
	if b.col >= b.screen.Width() {
		b.col = 0
		if b.row < b.screen.Height()-1 {
			b.row++
		}
	}
}

// Clear blanks the buffer with the current colors and homes the cursor.
func (b *BufferTerminal) Clear() {
	b.screen.Fill(Cell{Rune: ' ', Fg: b.fg, Bg: b.bg})
	b.col, b.row = 0, 0
}

// PressKey queues one key press.
func (b *BufferTerminal) PressKey() {
	b.pending++
}

// KeyPending reports whether a key press is queued. It does not consume it.
func (b *BufferTerminal) KeyPending() bool {
	return b.pending > 0
}

// SetTitle records the window title.
func (b *BufferTerminal) SetTitle(title string) {
	b.title = title
}

// Title returns the last title set.
func (b *BufferTerminal) Title() string {
	return b.title
}

var (
	_ Terminal = (*BufferTerminal)(nil)
	_ Titler   = (*BufferTerminal)(nil)
)
