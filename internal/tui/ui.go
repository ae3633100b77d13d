// Package tui provides the interactive terminal UI for linedit-ui.
package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/linedit/linedit/internal/config"
	"github.com/linedit/linedit/internal/editor"
	"github.com/linedit/linedit/internal/logging"
	"github.com/linedit/linedit/internal/stats"
	"github.com/linedit/linedit/internal/ui"
)

// Options contains configuration for the UI
type Options struct {
	ConfigPath string
	Config     *config.Config
	Editor     *editor.Editor
	Logger     *logging.Logger
}

// UI manages the interactive terminal interface. Requests run against one
// in-process Editor, so undo history carries across the whole session.
type UI struct {
	configPath  string
	cfg         *config.Config
	ed          *editor.Editor
	log         *logging.Logger
	writer      *ui.Writer
	stats       *stats.SessionStats
	sessionID   string
	history     []string
	historyFile string
	lastResult  *editor.Result
}

// New creates a new UI instance
func New(opts Options) *UI {
	historyFile := opts.Config.UI.HistoryFile
	if historyFile == "" {
		homeDir, _ := os.UserHomeDir()
		historyFile = filepath.Join(homeDir, ".linedit_history")
	}
	history, _ := ui.LoadHistory(historyFile)

	writer := ui.NewWriter()
	writer.SetQuiet(opts.Config.UI.Quiet)

	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}

	return &UI{
		configPath:  opts.ConfigPath,
		cfg:         opts.Config,
		ed:          opts.Editor,
		log:         log,
		writer:      writer,
		stats:       stats.New(),
		sessionID:   uuid.NewString(),
		history:     history,
		historyFile: historyFile,
	}
}

// Run starts the interactive UI loop
func (u *UI) Run() error {
	// Ensure terminal is properly reset on exit
	restoreTerminal := func() {
		if os.Stdin.Fd() == 0 {
			cmd := exec.Command("sh", "-c", "stty sane </dev/tty >/dev/tty 2>&1")
			_ = cmd.Run()
		}
	}
	defer func() {
		fmt.Println()
		restoreTerminal()
	}()

	start := time.Now()
	u.log.SessionStarted(u.sessionID, "interactive")

	// Show startup info
	fmt.Println("\033[38;5;136mlinedit UI v0.1\033[0m")
	fmt.Printf("\033[38;5;136mWorkdir: %s\033[0m\n", u.ed.Workdir())
	fmt.Printf("\033[38;5;136mLinting: %s\033[0m\n", onOff(u.ed.LintEnabled()))
	fmt.Println("\033[38;5;136mPress Ctrl+C to exit, ':help' for commands\033[0m")
	fmt.Println()

	commands := 0
	for {
		input, shouldExit, err := u.readInput()
		if err != nil {
			u.writer.Error(fmt.Sprintf("Input error: %v", err))
			break
		}
		if shouldExit {
			break
		}

		if input == "" {
			continue
		}

		// Add to history and save
		u.history = append(u.history, input)
		_ = ui.SaveHistory(u.historyFile, u.history) // Silently ignore history save errors

		// Handle UI commands
		if strings.HasPrefix(input, ":") {
			if u.handleCommand(input) {
				break
			}
			continue
		}

		commands++
		u.runRequest(input)
	}

	u.log.SessionFinished(u.sessionID, commands, time.Since(start))
	if !u.writer.IsQuiet() {
		u.writer.Info(fmt.Sprintf("Session: %d commands in %s", commands, ui.FormatDuration(time.Since(start))))
		u.stats.PrintTo(os.Stderr)
	}
	return nil
}

// readInput reads user input using the BubbleTea-based input model
func (u *UI) readInput() (string, bool, error) {
	promptText := ui.MakePrompt("[linedit]> ")

	inputModel := ui.NewInputModel(promptText, u.history)
	p := tea.NewProgram(inputModel)
	result, err := p.Run()
	if err != nil {
		return "", false, err
	}

	finalModel := result.(ui.InputModel)
	if finalModel.Cancelled() || !finalModel.Submitted() {
		return "", true, nil // User cancelled (Ctrl+C)
	}

	input := strings.TrimSpace(finalModel.Value())

	// Display the submitted input with gray background
	colorStart := "\033[97;100m"
	colorEnd := "\033[0m"
	for _, line := range strings.Split(finalModel.Value(), "\n") {
		fmt.Printf("%s%s%s\n", colorStart, line, colorEnd)
	}
	fmt.Println()

	return input, false, nil
}

// runRequest decodes one JSON request and executes it.
func (u *UI) runRequest(input string) {
	start := time.Now()
	req, err := editor.DecodeRequest([]byte(input))
	if err != nil {
		u.stats.RecordCommand("", "", time.Since(start), err)
		u.writer.Error(err.Error())
		return
	}

	// Announce the call as understood, post normalization.
	var args map[string]any
	if json.Unmarshal([]byte(input), &args) == nil {
		delete(args, "command")
		u.writer.Info(fmt.Sprintf("%s(%s)", req.Command, ui.FormatArgs(args)))
	}

	res, err := u.ed.Do(context.Background(), req)
	elapsed := time.Since(start)
	u.stats.RecordCommand(req.Command, req.Path, elapsed, err)
	if err != nil {
		u.writer.Error(err.Error())
		return
	}

	u.lastResult = res
	u.writer.Result(res.Output)
	if res.Error != "" {
		u.writer.Warn(res.Error)
	}
	u.writer.Detail(fmt.Sprintf("%s in %s", ui.SummarizeOutput(res.Output), elapsed.Round(time.Millisecond)))
	fmt.Println()
}

// handleCommand handles UI meta-commands
func (u *UI) handleCommand(input string) bool {
	cmd := strings.TrimPrefix(input, ":")
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return false
	}

	switch parts[0] {
	case "quit", "q", "exit":
		return true

	case "help", "h":
		u.showHelp()

	case "stats":
		u.stats.PrintTo(os.Stdout)
		fmt.Println()

	case "lint":
		if len(parts) < 2 {
			fmt.Printf("Linting is %s. Usage: :lint on|off\n\n", onOff(u.ed.LintEnabled()))
			return false
		}
		switch parts[1] {
		case "on":
			u.ed.SetLintEnabled(true)
			fmt.Println("Linting enabled.")
		case "off":
			u.ed.SetLintEnabled(false)
			fmt.Println("Linting disabled.")
		default:
			fmt.Println("Usage: :lint on|off")
		}
		fmt.Println()

	case "diff":
		u.showDiff()

	case "clear":
		// Clear terminal
		fmt.Print("\033[2J\033[H")

	case "config":
		fmt.Printf("Config: %s\n", u.configPath)
		fmt.Printf("Workdir: %s\n", u.ed.Workdir())
		fmt.Printf("Linting: %s\n", onOff(u.ed.LintEnabled()))
		fmt.Println()

	default:
		fmt.Printf("Unknown command: %s. Type :help for available commands.\n\n", parts[0])
	}

	return false
}

// showDiff renders a unified diff of the most recent edit.
func (u *UI) showDiff() {
	if u.lastResult == nil || u.lastResult.NewContent == "" {
		fmt.Println("No edit to diff yet.")
		fmt.Println()
		return
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(u.lastResult.OldContent),
		B:        difflib.SplitLines(u.lastResult.NewContent),
		FromFile: u.lastResult.Path,
		ToFile:   u.lastResult.Path,
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		u.writer.Error(fmt.Sprintf("Diff failed: %v", err))
		return
	}
	if text == "" {
		fmt.Println("No changes in the last edit.")
		fmt.Println()
		return
	}
	u.writer.Diff(text)
	fmt.Println()
}

// showHelp displays the help message
func (u *UI) showHelp() {
	fmt.Println("Available commands:")
	fmt.Println("  :help, :h        Show this help message")
	fmt.Println("  :quit, :q        Exit the UI")
	fmt.Println("  :stats           Show session statistics")
	fmt.Println("  :lint on|off     Toggle linting after edits")
	fmt.Println("  :diff            Show a unified diff of the last edit")
	fmt.Println("  :clear           Clear the terminal")
	fmt.Println("  :config          Show configuration")
	fmt.Println()
	fmt.Println("Enter a JSON request to run an editing command, for example:")
	fmt.Println(`  {"command": "view", "path": "/workspace/main.py", "view_range": [1, 20]}`)
	fmt.Println(`  {"command": "str_replace", "path": "/workspace/main.py", "old_str": "foo", "new_str": "bar"}`)
	fmt.Println()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
