package editor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/linedit/linedit/internal/config"
)

// newTestEditor builds an Editor with default config anchored in a fresh
// temp dir. The second return value is that workdir.
func newTestEditor(t *testing.T) (*Editor, string) {
	t.Helper()
	cfg := config.Default()
	cfg.Editor.Workdir = t.TempDir()
	ed, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return ed, cfg.Editor.Workdir
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// do runs a request that must succeed.
func do(t *testing.T, ed *Editor, req *Request) *Result {
	t.Helper()
	res, err := ed.Do(context.Background(), req)
	if err != nil {
		t.Fatalf("Do(%s) error: %v", req.Command, err)
	}
	return res
}

// doErr runs a request that must fail and returns the error.
func doErr(t *testing.T, ed *Editor, req *Request) error {
	t.Helper()
	_, err := ed.Do(context.Background(), req)
	if err == nil {
		t.Fatalf("Do(%s) succeeded, expected an error", req.Command)
	}
	return err
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
