package main

import (
	"flag"
	"log/slog"
	"time"

	"github.com/soocke/pulse-cam-go/app"
	"github.com/soocke/pulse-cam-go/config"
	"github.com/soocke/pulse-cam-go/debug"
)

func main() {
	cfgPath := flag.String("config", "pulse-cam.json", "path to the JSON config file")
	debugFlag := flag.Bool("debug", false, "enable debug logging and runtime metrics")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if *debugFlag {
		cfg.Debug = true
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", err)
	}

	if cfg.Debug {
		debug.StartGoroutineLogger(5*time.Second, logger)
		debug.StartMemLogger(5*time.Second, logger)
	}

	application := app.NewApp("Pulse Cam", 560, 760, cfg, logger, *cfgPath)
	application.Start()
}
