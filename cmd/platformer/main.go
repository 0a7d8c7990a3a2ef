package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"platformer/internal/game"
	"platformer/internal/logger"
	"platformer/internal/world"
)

func main() {
	levelPath := flag.String("level", "assets/levels/demo.yaml", "level file")
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 720, "window height")
	debug := flag.Bool("debug", false, "log every controller decision")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") && !filepath.IsAbs(*levelPath) {
			os.Chdir(execDir)
		}
	}

	logCfg := logger.DefaultConfig()
	if *debug {
		logCfg = logger.DevelopmentConfig()
	}
	log, err := logger.New(logCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	lvl, err := world.LoadLevel(*levelPath)
	if err != nil {
		log.Fatal("load level", zap.Error(err))
	}
	g, err := game.New(lvl, log)
	if err != nil {
		log.Fatal("start game", zap.Error(err))
	}
	g.Run(int32(*width), int32(*height))
}
