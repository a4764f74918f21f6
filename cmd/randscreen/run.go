package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/randscreen/internal/config"
	"github.com/vovakirdan/randscreen/internal/registry"
)

var (
	flagBackend  string
	flagInterval time.Duration
	flagCount    int
	flagTitle    string
)

func addSaverFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagBackend, "backend", "console", "Terminal backend (see 'randscreen backends')")
	cmd.Flags().DurationVar(&flagInterval, "interval", 5*time.Millisecond, "Pause after each character")
	cmd.Flags().IntVar(&flagCount, "count", 0, "Stop after this many characters (0 = until a key is pressed)")
	cmd.Flags().StringVar(&flagTitle, "title", "", "Window title to set while running")
}

// loadConfig reads the config file and lays explicitly set flags over it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = flagBackend
	}
	if flags.Changed("interval") {
		cfg.Interval = flagInterval
	}
	if flags.Changed("count") {
		cfg.Count = flagCount
	}
	if flags.Changed("title") {
		cfg.Title = flagTitle
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func runSaver(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	backend, err := registry.Get(cfg.Backend)
	if err != nil {
		return fmt.Errorf("%w (run 'randscreen backends' to see available backends)", err)
	}

	logger, closeLog, err := newLogger(cfg.Level(), flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	// Signals stop the loop through the same restore path as a key press
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	logger.Info("starting", "backend", backend.Name, "interval", cfg.Interval, "count", cfg.Count)

	res, err := backend.Run(ctx, cfg.Runtime(), logger)
	if err != nil {
		logger.Error("backend failed", "backend", backend.Name, "error", err)
		return err
	}

	logger.Info("stopped", "reason", res.Reason, "glyphs", res.Painted)
	return nil
}
