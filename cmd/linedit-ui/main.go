package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/linedit/linedit/internal/config"
	"github.com/linedit/linedit/internal/editor"
	"github.com/linedit/linedit/internal/logging"
	"github.com/linedit/linedit/internal/tui"
	"github.com/linedit/linedit/internal/workspace"
)

// Version info set by ldflags at build time
var (
	version    = "dev"
	commitHash = "dev"
	commitDate = "unknown"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "", "path to config file (empty = built-in defaults)")
	workdir := flag.String("workdir", "", "override the working directory used for relative path suggestions")
	logFile := flag.String("log", "", "log file path (overrides config when set)")
	enableLint := flag.Bool("lint", false, "enable linting after edits")
	quiet := flag.Bool("quiet", false, "suppress decoration and session stats")
	showVersion := flag.Bool("version", false, "show version information and exit")
	flag.Parse()

	// Handle --version
	if *showVersion {
		fmt.Printf("%s-%s-%s\n", version, commitDate, commitHash)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *workdir != "" {
		cfg.Editor.Workdir = *workdir
	}
	if *logFile != "" {
		cfg.Log.Path = *logFile
	}
	if *enableLint {
		cfg.Lint.Enabled = true
	}
	if *quiet {
		cfg.UI.Quiet = true
	}

	logger, err := logging.NewLogger(cfg.Log.Path, cfg.Log.Development)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logger.Close()

	ed, err := editor.New(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize editor: %v", err)
	}

	// One interactive session per workspace; undo history is in-process.
	wsLock, err := workspace.AcquireLock(ed.Workdir())
	if err != nil {
		log.Fatalf("Failed to acquire workspace lock: %v", err)
	}
	defer wsLock.Release()

	// Create and run UI
	shell := tui.New(tui.Options{
		ConfigPath: *configPath,
		Config:     cfg,
		Editor:     ed,
		Logger:     logger,
	})

	if err := shell.Run(); err != nil {
		log.Fatalf("UI error: %v", err)
	}
}
