package console

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/randscreen/internal/core"
	"github.com/vovakirdan/randscreen/internal/registry"
	"github.com/vovakirdan/randscreen/internal/saver"
)

// BackendName is the registry name of the tcell backend.
const BackendName = "console"

func init() {
	registry.Register(registry.Backend{
		Name:        BackendName,
		Description: "Paint straight onto the terminal through tcell",
		Run:         Run,
	})
}

// Run opens the terminal, runs the render loop on it and closes it again.
func Run(ctx context.Context, cfg core.RuntimeConfig, logger *log.Logger) (registry.Result, error) {
	c, err := Open()
	if err != nil {
		return registry.Result{}, err
	}
	defer c.Close()

	return RunOn(ctx, c, cfg, logger), nil
}

// RunOn runs the render loop on an already opened console.
func RunOn(ctx context.Context, c *Console, cfg core.RuntimeConfig, logger *log.Logger) registry.Result {
	loop := saver.New(c, cfg, saver.WithLogger(logger))
	reason := loop.Run(ctx)
	return registry.Result{Reason: reason, Painted: loop.Painted()}
}
