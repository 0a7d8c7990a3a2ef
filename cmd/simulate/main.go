// Simulate replays an input script over a level without opening a window and
// reports the player's trajectory.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"platformer/internal/logger"
	"platformer/internal/replay"
	"platformer/internal/world"
)

func main() {
	os.Exit(realMain(os.Args[1:], os.Stderr))
}

// realMain returns the process exit code so deferred log flushing runs
// before main exits.
func realMain(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	levelPath := fs.String("level", "assets/levels/demo.yaml", "level file")
	scriptPath := fs.String("script", "assets/inputs/demo.yaml", "input script")
	out := fs.String("out", "", "write the trajectory as YAML to this file")
	every := fs.Int("every", 10, "keep one sample every N frames (events are always kept)")
	extra := fs.Int("extra", 0, "frames to keep running after the script ends")
	logLevel := fs.String("log-level", "info", "debug, info, warn or error")
	logFormat := fs.String("log-format", "console", "console or json")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	log, err := logger.New(logger.Config{Level: *logLevel, Format: *logFormat})
	if err != nil {
		fmt.Fprintf(stderr, "logger: %v\n", err)
		return 1
	}
	defer log.Sync()

	if err := run(log, *levelPath, *scriptPath, *out, *every, *extra); err != nil {
		log.Error("simulate failed", zap.Error(err))
		return 1
	}
	return 0
}

func run(log *zap.Logger, levelPath, scriptPath, out string, every, extra int) error {
	lvl, err := world.LoadLevel(levelPath)
	if err != nil {
		return err
	}
	script, err := replay.LoadScript(scriptPath)
	if err != nil {
		return err
	}
	w, err := world.New(lvl, replay.NewPlayer(script), log)
	if err != nil {
		return err
	}

	r := replay.NewRunner(w, script.DeltaTime, log)
	r.Every = every
	tr := r.Run(script.Frames() + max(extra, 0))

	if out == "" {
		return nil
	}
	if err := tr.Save(out); err != nil {
		return err
	}
	log.Info("trajectory written", zap.String("path", out), zap.Int("samples", len(tr.Samples)))
	return nil
}
