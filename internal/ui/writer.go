package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Color definitions for consistent UI
var (
	// Brown color for startup info
	brownColor = color.New(color.FgYellow, color.Faint)

	// Gray color for secondary detail
	grayColor = color.New(color.FgWhite, color.Faint)

	// Red for errors
	errorColor = color.New(color.FgRed)

	// Yellow for warnings
	warnColor = color.New(color.FgYellow)

	// White for command results
	whiteColor = color.New(color.FgWhite)

	// Colors for diff rendering
	diffAddColor    = color.New(color.FgGreen)
	diffRemoveColor = color.New(color.FgRed)
	diffHeaderColor = color.New(color.FgCyan)
)

// Writer provides formatted output with consistent prefixes and colors.
// Quiet mode suppresses decoration but never errors or command results.
type Writer struct {
	quiet  bool
	stdout io.Writer
	stderr io.Writer
}

func NewWriter() *Writer {
	return &Writer{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// SetQuiet enables or disables quiet mode.
func (w *Writer) SetQuiet(quiet bool) {
	w.quiet = quiet
}

// IsQuiet returns true if quiet mode is enabled.
func (w *Writer) IsQuiet() bool {
	return w.quiet
}

// StartupInfo prints startup information in brown.
func (w *Writer) StartupInfo(msg string) {
	if w.quiet {
		return
	}
	brownColor.Fprintln(w.stderr, msg)
}

// Info prints an info message with [info] prefix in gray.
func (w *Writer) Info(msg string) {
	if w.quiet {
		return
	}
	grayColor.Fprintf(w.stderr, "[info] %s\n", msg)
}

// Warn prints a warning message with [warn] prefix in yellow.
func (w *Writer) Warn(msg string) {
	if w.quiet {
		return
	}
	warnColor.Fprintf(w.stderr, "[warn] %s\n", msg)
}

// Error prints an error message with [error] prefix in red. Not silenced
// by quiet mode.
func (w *Writer) Error(msg string) {
	errorColor.Fprintf(w.stderr, "[error] %s\n", msg)
}

// Result prints a command result body in white to stdout.
func (w *Writer) Result(msg string) {
	whiteColor.Fprintf(w.stdout, "%s\n", msg)
}

// Detail prints secondary information in gray, indented under the command
// that produced it.
func (w *Writer) Detail(msg string) {
	if w.quiet {
		return
	}
	for _, line := range splitLines(msg) {
		grayColor.Fprintf(w.stderr, "  %s\n", line)
	}
}

// Diff prints unified diff text with the conventional coloring: additions
// green, removals red, hunk and file headers cyan.
func (w *Writer) Diff(text string) {
	for _, line := range splitLines(text) {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"), strings.HasPrefix(line, "@@"):
			diffHeaderColor.Fprintln(w.stdout, line)
		case strings.HasPrefix(line, "+"):
			diffAddColor.Fprintln(w.stdout, line)
		case strings.HasPrefix(line, "-"):
			diffRemoveColor.Fprintln(w.stdout, line)
		default:
			fmt.Fprintln(w.stdout, line)
		}
	}
}

// Helper functions
func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
