package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNewLoggerDisabled(t *testing.T) {
	l, err := NewLogger("", false)
	if err != nil {
		t.Fatalf("NewLogger(\"\") error: %v", err)
	}
	// Must be safe to use without a sink.
	l.CommandExecuted("view", "/f.txt", time.Millisecond, nil)
	l.Error("oops", errors.New("boom"))
	if err := l.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}

func TestNewLoggerWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linedit.log")
	l, err := NewLogger(path, false)
	if err != nil {
		t.Fatalf("NewLogger() error: %v", err)
	}

	l.CommandExecuted("str_replace", "/work/f.txt", 42*time.Millisecond, nil)
	l.CommandExecuted("view", "/work/f.txt", time.Millisecond, errors.New("boom"))
	l.LintExecuted("/work/f.txt", 2, 10*time.Millisecond)
	l.SessionStarted("abc123", "stdin")
	l.SessionFinished("abc123", 3, time.Second)
	l.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 5 {
		t.Fatalf("len(lines) = %d, want 5", len(lines))
	}

	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("line 0 is not JSON: %v", err)
	}
	if first["command"] != "str_replace" {
		t.Errorf("command = %v, want str_replace", first["command"])
	}
	if first["success"] != true {
		t.Errorf("success = %v, want true", first["success"])
	}

	var second map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("line 1 is not JSON: %v", err)
	}
	if second["success"] != false {
		t.Errorf("success = %v, want false", second["success"])
	}
	if second["error"] != "boom" {
		t.Errorf("error = %v, want boom", second["error"])
	}

	if !strings.Contains(lines[3], "abc123") {
		t.Errorf("line 3 = %q, want the session id", lines[3])
	}
}

func TestNewLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "linedit.log")

	l1, err := NewLogger(path, false)
	if err != nil {
		t.Fatalf("NewLogger() error: %v", err)
	}
	l1.Info("first run")
	l1.Close()

	l2, err := NewLogger(path, false)
	if err != nil {
		t.Fatalf("NewLogger() error: %v", err)
	}
	l2.Info("second run")
	l2.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "first run") || !strings.Contains(string(data), "second run") {
		t.Errorf("log = %q, want entries from both runs", string(data))
	}
}

func TestNewLoggerBadPath(t *testing.T) {
	if _, err := NewLogger(filepath.Join(t.TempDir(), "missing", "dir", "x.log"), false); err == nil {
		t.Error("NewLogger() with an unwritable path should return error")
	}
}
