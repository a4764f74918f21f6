//go:build unix

package tui

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"testing"
	"time"

	"github.com/vovakirdan/randscreen/internal/saver"
)

// Signals must reach the render loop through the context, so the buffer is
// restored and the run ends as a cancellation rather than an interrupt error.
func TestProgramStopsOnSignal(t *testing.T) {
	for _, sig := range []syscall.Signal{syscall.SIGTERM, syscall.SIGINT} {
		t.Run(sig.String(), func(t *testing.T) {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			time.AfterFunc(100*time.Millisecond, func() {
				syscall.Kill(os.Getpid(), sig)
			})

			m, err := runHeadless(t, ctx)
			if err != nil {
				t.Fatalf("runProgram() failed: %v", err)
			}
			loop := m.Loop()
			if loop.State() != saver.StateStopped {
				t.Errorf("State() = %v, expected Stopped", loop.State())
			}
			if loop.Reason() != saver.StopCancelled {
				t.Errorf("Reason() = %v, expected cancelled", loop.Reason())
			}
			assertRestored(t, m)
		})
	}
}
