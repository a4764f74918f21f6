package saver

import (
	"context"
	"testing"
	"time"

	"github.com/vovakirdan/randscreen/internal/core"
)

// recordingTerminal wraps a BufferTerminal and counts the calls the loop makes.
type recordingTerminal struct {
	*core.BufferTerminal
	clears  int
	writes  int
	onWrite func(n int)
	fgSets  []core.Color
	bgSets  []core.Color
	cursors [][2]int
	glyphs  []rune
}

func newRecordingTerminal(w, h int) *recordingTerminal {
	return &recordingTerminal{BufferTerminal: core.NewBufferTerminal(w, h)}
}

func (r *recordingTerminal) SetForeground(c core.Color) {
	r.fgSets = append(r.fgSets, c)
	r.BufferTerminal.SetForeground(c)
}

func (r *recordingTerminal) SetBackground(c core.Color) {
	r.bgSets = append(r.bgSets, c)
	r.BufferTerminal.SetBackground(c)
}

func (r *recordingTerminal) SetCursor(col, row int) {
	r.cursors = append(r.cursors, [2]int{col, row})
	r.BufferTerminal.SetCursor(col, row)
}

func (r *recordingTerminal) WriteChar(ch rune) {
	r.writes++
	r.glyphs = append(r.glyphs, ch)
	r.BufferTerminal.WriteChar(ch)
	if r.onWrite != nil {
		r.onWrite(r.writes)
	}
}

func (r *recordingTerminal) Clear() {
	r.clears++
	r.BufferTerminal.Clear()
}

func testConfig(seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	return cfg
}

func noSleep(time.Duration) {}

func TestLoopRestoresSavedColors(t *testing.T) {
	term := newRecordingTerminal(80, 24)
	term.BufferTerminal.SetForeground(core.ColorGray)
	term.BufferTerminal.SetBackground(core.ColorDarkBlue)
	term.onWrite = func(n int) {
		if n == 50 {
			term.PressKey()
		}
	}

	l := New(term, testConfig(1), WithSleep(noSleep))
	reason := l.Run(context.Background())

	if reason != StopKey {
		t.Errorf("Run() = %v, expected key", reason)
	}
	if term.Foreground() != core.ColorGray {
		t.Errorf("foreground after stop = %v, expected Gray", term.Foreground())
	}
	if term.Background() != core.ColorDarkBlue {
		t.Errorf("background after stop = %v, expected DarkBlue", term.Background())
	}
	if term.clears != 1 {
		t.Errorf("screen cleared %d times, expected 1", term.clears)
	}

	fg, bg := l.Saved()
	if fg != core.ColorGray || bg != core.ColorDarkBlue {
		t.Errorf("Saved() = (%v, %v), expected (Gray, DarkBlue)", fg, bg)
	}
	if l.State() != StateStopped {
		t.Errorf("State() = %v, expected Stopped", l.State())
	}
}

func TestLoopStopIsIdempotent(t *testing.T) {
	term := newRecordingTerminal(10, 10)
	l := New(term, testConfig(2), WithSleep(noSleep))

	l.Start()
	l.Paint()
	l.Stop(StopKey)
	l.Stop(StopCancelled)
	l.Stop(StopAborted)

	if term.clears != 1 {
		t.Errorf("screen cleared %d times, expected 1", term.clears)
	}
	if l.Reason() != StopKey {
		t.Errorf("Reason() = %v, expected the first reason (key)", l.Reason())
	}
	if l.Paint() {
		t.Error("Paint() after Stop should do nothing")
	}
}

func TestLoopStopBeforeStartDoesNothing(t *testing.T) {
	term := newRecordingTerminal(10, 10)
	l := New(term, testConfig(3))

	l.Stop(StopKey)
	if term.clears != 0 {
		t.Errorf("Stop before Start cleared %d times, expected 0", term.clears)
	}
	if l.State() != StateIdle {
		t.Errorf("State() = %v, expected Idle", l.State())
	}
}

func TestLoopKeyDuringPaintStopsImmediately(t *testing.T) {
	const injectAt = 17

	term := newRecordingTerminal(80, 24)
	term.onWrite = func(n int) {
		if n == injectAt {
			term.PressKey()
		}
	}

	l := New(term, testConfig(4), WithSleep(noSleep))
	l.Run(context.Background())

	if term.writes > injectAt+1 {
		t.Errorf("painted %d glyphs, expected at most %d after key at %d", term.writes, injectAt+1, injectAt)
	}
	if l.Painted() != term.writes {
		t.Errorf("Painted() = %d, terminal saw %d writes", l.Painted(), term.writes)
	}
}

func TestLoopKeyDuringSleepStopsWithinOnePaint(t *testing.T) {
	const injectAfter = 9

	term := newRecordingTerminal(80, 24)
	sleeps := 0
	sleep := func(time.Duration) {
		sleeps++
		if sleeps == injectAfter {
			term.PressKey()
		}
	}

	l := New(term, testConfig(5), WithSleep(sleep))
	l.Run(context.Background())

	if term.writes < injectAfter || term.writes > injectAfter+1 {
		t.Errorf("painted %d glyphs, expected %d or %d", term.writes, injectAfter, injectAfter+1)
	}
}

func TestLoopPaintUsesPaletteBoundsAndGlyphs(t *testing.T) {
	term := newRecordingTerminal(7, 3)
	l := New(term, testConfig(6))
	l.Start()

	for i := 0; i < 2000; i++ {
		if !l.Paint() {
			t.Fatalf("Paint() returned false on iteration %d", i)
		}
	}

	vp := term.Viewport()
	for i, c := range term.fgSets {
		if !c.InPalette() {
			t.Fatalf("foreground %d = %v, not in palette", i, c)
		}
	}
	for i, c := range term.bgSets {
		if !c.InPalette() {
			t.Fatalf("background %d = %v, not in palette", i, c)
		}
	}
	for i, pos := range term.cursors {
		if !vp.Contains(pos[0], pos[1]) {
			t.Fatalf("cursor %d = %v, outside %+v", i, pos, vp)
		}
	}
	for i, g := range term.glyphs {
		if g < 32 || g > 126 {
			t.Fatalf("glyph %d = %d, outside printable ASCII", i, g)
		}
	}
}

func TestLoopEmptyViewportPaintsNothing(t *testing.T) {
	term := newRecordingTerminal(0, 0)
	l := New(term, testConfig(7))
	l.Start()

	if l.Paint() {
		t.Error("Paint() on an empty viewport should return false")
	}
	if term.writes != 0 {
		t.Errorf("wrote %d glyphs to an empty viewport", term.writes)
	}
}

func TestLoopCancelledContextStops(t *testing.T) {
	term := newRecordingTerminal(20, 5)
	term.BufferTerminal.SetBackground(core.ColorDarkGreen)

	ctx, cancel := context.WithCancel(context.Background())
	term.onWrite = func(n int) {
		if n == 3 {
			cancel()
		}
	}
	defer cancel()

	l := New(term, testConfig(8), WithSleep(noSleep))
	if reason := l.Run(ctx); reason != StopCancelled {
		t.Errorf("Run() = %v, expected cancelled", reason)
	}
	if term.writes != 3 {
		t.Errorf("painted %d glyphs, expected 3", term.writes)
	}
	if term.Background() != core.ColorDarkGreen || term.clears != 1 {
		t.Errorf("cancel path did not restore: bg=%v clears=%d", term.Background(), term.clears)
	}
}

func TestLoopCountBoundsRun(t *testing.T) {
	term := newRecordingTerminal(20, 5)
	cfg := testConfig(9)
	cfg.Count = 25

	l := New(term, cfg, WithSleep(noSleep))
	if reason := l.Run(context.Background()); reason != StopCount {
		t.Errorf("Run() = %v, expected count", reason)
	}
	if term.writes != 25 {
		t.Errorf("painted %d glyphs, expected 25", term.writes)
	}
	if term.clears != 1 {
		t.Errorf("screen cleared %d times, expected 1", term.clears)
	}
}

func TestLoopKeyWinsOverCount(t *testing.T) {
	term := newRecordingTerminal(20, 5)
	cfg := testConfig(10)
	cfg.Count = 1
	term.PressKey()

	l := New(term, cfg, WithSleep(noSleep))
	if reason := l.Run(context.Background()); reason != StopKey {
		t.Errorf("Run() = %v, expected key", reason)
	}
}

func TestLoopPanicStillRestores(t *testing.T) {
	term := newRecordingTerminal(20, 5)
	term.BufferTerminal.SetForeground(core.ColorWhite)
	term.BufferTerminal.SetBackground(core.ColorBlack)
	term.onWrite = func(n int) {
		if n == 4 {
			panic("terminal went away")
		}
	}

	l := New(term, testConfig(11), WithSleep(noSleep))

	func() {
		defer func() {
			if r := recover(); r == nil {
				t.Error("panic should propagate out of Run")
			}
		}()
		l.Run(context.Background())
	}()

	if l.Reason() != StopAborted {
		t.Errorf("Reason() = %v, expected aborted", l.Reason())
	}
	if term.Foreground() != core.ColorWhite || term.Background() != core.ColorBlack {
		t.Errorf("colors after panic = (%v, %v), expected (White, Black)", term.Foreground(), term.Background())
	}
	if term.clears != 1 {
		t.Errorf("screen cleared %d times, expected 1", term.clears)
	}
}

func TestLoopSetsTitle(t *testing.T) {
	term := newRecordingTerminal(5, 5)
	cfg := testConfig(12)
	cfg.Title = "Goofy Chars!"

	l := New(term, cfg)
	l.Start()

	if term.Title() != "Goofy Chars!" {
		t.Errorf("Title() = %q, expected %q", term.Title(), "Goofy Chars!")
	}
}

func TestLoopSleepsConfiguredInterval(t *testing.T) {
	term := newRecordingTerminal(80, 24)
	var slept []time.Duration
	sleep := func(d time.Duration) { slept = append(slept, d) }

	cfg := testConfig(13)
	cfg.Count = 10
	l := New(term, cfg, WithSleep(sleep))
	l.Run(context.Background())

	if len(slept) != 10 {
		t.Fatalf("slept %d times, expected 10", len(slept))
	}
	for i, d := range slept {
		if d != 5*time.Millisecond {
			t.Errorf("sleep %d = %v, expected 5ms", i, d)
		}
	}
}

func TestLoopRealSleepTiming(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test")
	}

	const n = 40
	term := newRecordingTerminal(80, 24)
	cfg := testConfig(14)
	cfg.Count = n

	l := New(term, cfg)
	start := time.Now()
	l.Run(context.Background())
	elapsed := time.Since(start)

	lower := n * core.DefaultInterval
	upper := lower + 2*time.Second
	if elapsed < lower || elapsed > upper {
		t.Errorf("%d iterations took %v, expected within [%v, %v]", n, elapsed, lower, upper)
	}
}

func TestLoopDefaultsInterval(t *testing.T) {
	cfg := testConfig(15)
	cfg.Interval = 0

	l := New(newRecordingTerminal(1, 1), cfg)
	if l.Interval() != core.DefaultInterval {
		t.Errorf("Interval() = %v, expected %v", l.Interval(), core.DefaultInterval)
	}
}

func TestStateAndReasonStrings(t *testing.T) {
	if StateRunning.String() != "Running" || StateStopped.String() != "Stopped" {
		t.Error("unexpected state names")
	}
	if StopKey.String() != "key" || StopReason(99).String() != "unknown" {
		t.Error("unexpected reason names")
	}
}
