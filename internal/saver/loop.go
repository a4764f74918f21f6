// Package saver implements the screensaver render loop: paint one random
// glyph in random colors at a random spot, pause, and repeat until a key is
// pressed, then put the terminal colors back and clear the screen.
package saver

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/randscreen/internal/core"
)

// State is the loop's lifecycle state.
type State int

const (
	StateIdle    State = iota // Constructed, colors not yet captured
	StateRunning              // Painting
	StateStopped              // Colors restored, screen cleared; terminal
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// StopReason records why the loop left the Running state.
type StopReason int

const (
	StopNone      StopReason = iota
	StopKey                  // A key press was pending
	StopCancelled            // The context was cancelled (signal)
	StopCount                // The configured glyph count was reached
	StopAborted              // Run unwound without a normal stop (panic)
)

// String returns a human-readable name for the reason.
func (r StopReason) String() string {
	switch r {
	case StopNone:
		return "none"
	case StopKey:
		return "key"
	case StopCancelled:
		return "cancelled"
	case StopCount:
		return "count"
	case StopAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Option configures a Loop.
type Option func(*Loop)

// WithLogger sets the logger used for state transitions.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithSleep replaces the pause between paints.
func WithSleep(sleep func(time.Duration)) Option {
	return func(l *Loop) {
		if sleep != nil {
			l.sleep = sleep
		}
	}
}

// Loop is the render loop bound to one terminal.
type Loop struct {
	term   core.Terminal
	picker *Picker
	config core.RuntimeConfig
	logger *log.Logger
	sleep  func(time.Duration)

	state   State
	reason  StopReason
	savedFg core.Color
	savedBg core.Color
	painted int
}

// New creates a loop painting on term.
func New(term core.Terminal, cfg core.RuntimeConfig, opts ...Option) *Loop {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = core.DefaultInterval
	}

	l := &Loop{
		term:   term,
		picker: NewPicker(cfg.Seed, cfg.GlyphMin, cfg.GlyphMax),
		config: cfg,
		logger: log.New(io.Discard),
		sleep:  time.Sleep,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State returns the current lifecycle state.
func (l *Loop) State() State {
	return l.state
}

// Reason returns why the loop stopped, or StopNone while it runs.
func (l *Loop) Reason() StopReason {
	return l.reason
}

// Painted returns the number of glyphs written so far.
func (l *Loop) Painted() int {
	return l.painted
}

// Saved returns the colors captured by Start.
func (l *Loop) Saved() (fg, bg core.Color) {
	return l.savedFg, l.savedBg
}

// Interval returns the pause between paints.
func (l *Loop) Interval() time.Duration {
	return l.config.Interval
}

// Start captures the terminal colors and enters Running.
// It does nothing unless the loop is Idle.
func (l *Loop) Start() {
	if l.state != StateIdle {
		return
	}
	l.savedFg = l.term.Foreground()
	l.savedBg = l.term.Background()

	if l.config.Title != "" {
		if t, ok := l.term.(core.Titler); ok {
			t.SetTitle(l.config.Title)
		}
	}

	l.state = StateRunning
	l.logger.Debug("render loop started",
		"saved_fg", l.savedFg, "saved_bg", l.savedBg, "seed", l.config.Seed)
}

// Paint writes one random glyph in random colors at a random position.
// It returns false, painting nothing, when the loop is not running or the
// viewport has no cells.
func (l *Loop) Paint() bool {
	if l.state != StateRunning {
		return false
	}

	fg := l.picker.Color()
	bg := l.picker.Color()

	vp := l.term.Viewport()
	if vp.Empty() {
		return false
	}
	col, row := l.picker.Position(vp)

	l.term.SetForeground(fg)
	l.term.SetBackground(bg)
	l.term.SetCursor(col, row)
	l.term.WriteChar(l.picker.Glyph())
	l.painted++
	return true
}

// Poll checks the stop conditions and stops the loop if one holds.
// It reports whether the loop is still running.
func (l *Loop) Poll(ctx context.Context) bool {
	if l.state != StateRunning {
		return false
	}

	switch {
	case l.term.KeyPending():
		l.Stop(StopKey)
	case ctx.Err() != nil:
		l.Stop(StopCancelled)
	case l.config.Count > 0 && l.painted >= l.config.Count:
		l.Stop(StopCount)
	}
	return l.state == StateRunning
}

// Stop restores the saved colors and clears the screen.
// Only the first call after Start has any effect.
func (l *Loop) Stop(reason StopReason) {
	if l.state != StateRunning {
		return
	}
	l.state = StateStopped
	l.reason = reason

	l.term.SetForeground(l.savedFg)
	l.term.SetBackground(l.savedBg)
	l.term.Clear()

	l.logger.Debug("render loop stopped", "reason", reason, "painted", l.painted)
}

// Run starts the loop and paints until a stop condition holds.
// The terminal is restored on every exit path, including a panic from the
// terminal, which is re-raised after the restore.
func (l *Loop) Run(ctx context.Context) StopReason {
	l.Start()
	defer l.Stop(StopAborted)

	for {
		l.Paint()
		l.sleep(l.config.Interval)
		if !l.Poll(ctx) {
			return l.reason
		}
	}
}
