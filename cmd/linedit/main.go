package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/linedit/linedit/internal/config"
	"github.com/linedit/linedit/internal/editor"
	"github.com/linedit/linedit/internal/logging"
	"github.com/linedit/linedit/internal/runner"
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
	oneShot := flag.String("c", "", "run a single JSON request and exit")
	workdir := flag.String("workdir", "", "override the working directory used for relative path suggestions")
	logFile := flag.String("log", "", "log file path (overrides config when set)")
	enableLint := flag.Bool("lint", false, "enable linting after edits")
	pretty := flag.Bool("pretty", false, "indent JSON results")
	showSchema := flag.Bool("schema", false, "print the command schema as JSON and exit")
	showVersion := flag.Bool("version", false, "show version information and exit")
	flag.Parse()

	// Handle --version
	if *showVersion {
		fmt.Printf("%s-%s-%s\n", version, commitDate, commitHash)
		return
	}

	// Handle --schema
	if *showSchema {
		data, err := json.MarshalIndent(editor.JSONSchema(), "", "  ")
		if err != nil {
			log.Fatalf("Failed to render schema: %v", err)
		}
		fmt.Println(string(data))
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

	logger, err := logging.NewLogger(cfg.Log.Path, cfg.Log.Development)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logger.Close()

	ed, err := editor.New(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize editor: %v", err)
	}

	run := runner.New(ed, logger, *pretty)
	ctx := context.Background()

	// One-shot mode: a single request from the command line
	if *oneShot != "" {
		code := run.RunOnce(ctx, *oneShot, os.Stdout)
		logger.Close()
		os.Exit(code)
	}

	// Session mode: JSONL requests on stdin, one result per line
	if err := run.RunSession(ctx, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("Session failed: %v", err)
	}
}
