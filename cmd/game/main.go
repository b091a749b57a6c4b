// game runs Planet Defense in the current terminal.
//
// Usage:
//
//	game [--config path] [--fps rate] [--seed value] [--log-file path] [--log-level level]
//
// Aim with the mouse (or A/D), fire with SPACE or a left click, restart with
// R after the planet falls, quit with Q.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tomz197/planetdefense/internal/config"
	"github.com/tomz197/planetdefense/internal/loop"
)

var (
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "Defend the planet from incoming asteroids",
	Long: `Planet Defense: a turret orbits a pulsating planet. Shoot the asteroids
drifting inward before they hit it; the planet survives five hits.

Controls:
  Mouse / A,D   - Aim
  Space / click - Fire
  R             - Restart (after game over)
  Q / Ctrl+C    - Quit

Examples:
  game
  game --seed 42
  game --config ./planetdefense.yaml --log-file /tmp/planetdefense.log`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to config YAML (default: $"+config.EnvConfigPath+" or search path)")
	rootCmd.Flags().IntVar(&flagFPS, "fps", 0, "Frames per second (overrides config)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (overrides config, 0 = random based on time)")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (overrides config)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
}

func runGame(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := cfg.Loop.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("starting", "seed", seed, "fps", cfg.Loop.FPS)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	err = loop.Run(ctx, os.Stdin, os.Stdout, loop.Options{
		Width:  cfg.Screen.Width,
		Height: cfg.Screen.Height,
		FPS:    cfg.Loop.FPS,
		Rand:   rand.New(rand.NewSource(seed)),
		Logger: logger,
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("game error", "error", err)
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}

// applyFlags overrides config values with flags the user set explicitly.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.Loop.FPS = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Loop.Seed = flagSeed
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
}

// newLogger builds the game logger. The terminal belongs to the game while it
// runs, so without a log file the logger discards everything.
func newLogger(cfg config.LogConfig) (*log.Logger, func(), error) {
	level, err := cfg.ParseLevel()
	if err != nil {
		return nil, nil, err
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file %s: %w", cfg.File, err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "planetdefense",
		Level:           level,
	})
	return logger, closeFn, nil
}
