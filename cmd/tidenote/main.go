// cmd/tidenote/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	stlog "log" // Standard log for errors before the logger is ready
	"os"

	"github.com/bethropolis/tidenote/internal/app"
	"github.com/bethropolis/tidenote/internal/config"
	"github.com/bethropolis/tidenote/internal/logger"
)

func main() {
	// --- Argument & Flag Parsing ---
	flags := config.NewFlags(config.AppName)
	args, err := flags.Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		os.Exit(0)
	}

	// --- Configuration ---
	cfg, err := config.Load(*flags.ConfigFilePath, flags)
	if err != nil {
		// Defaults and flags still apply; keep going.
		stlog.Printf("Warning: %v", err)
	}
	if len(args) > 0 {
		cfg.Note.Path = args[0]
	}

	// --- Logger Initialization ---
	closer, err := logger.Setup(cfg.Logger)
	if err != nil {
		stlog.Fatalf("Failed to set up logging: %v", err)
	}
	defer closer.Close()

	logger.Infof("Starting %s %s...", config.AppName, config.Version)
	logger.Debugf("Note: %s, prefs: %s (%s)", cfg.Note.Path, cfg.Prefs.Path, cfg.Prefs.Backend)

	// --- Create and Run App ---
	noteApp, err := app.NewApp(cfg, app.Options{})
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		closer.Close()
		os.Exit(1)
	}

	if err := noteApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		closer.Close()
		os.Exit(1)
	}

	logger.Infof("%s finished.", config.AppName)
}
