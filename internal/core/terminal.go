package core

// Terminal is the console surface the render loop paints on.
// Backends bind it to a real terminal; tests bind it to a buffer.
type Terminal interface {
	// Foreground and Background return the colors currently in effect.
	Foreground() Color
	Background() Color

	SetForeground(c Color)
	SetBackground(c Color)

	// Viewport returns the visible region. Column and row arguments to
	// SetCursor are absolute, so they fall inside this rectangle.
	Viewport() Rect

	SetCursor(col, row int)

	// WriteChar writes r at the cursor with the current colors and
	// advances the cursor one column.
	WriteChar(r rune)

	// Clear blanks the whole screen using the current colors.
	Clear()

	// KeyPending reports, without blocking, whether a key press is waiting.
	KeyPending() bool
}

// Titler is implemented by terminals that can set the window title.
type Titler interface {
	SetTitle(title string)
}
