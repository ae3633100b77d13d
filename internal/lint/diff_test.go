package lint

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDiff(t *testing.T) {
	t.Run("keeps findings on changed lines only", func(t *testing.T) {
		dir := t.TempDir()
		oldPath := writeTempFile(t, dir, "old.app.py", "import os\nvalue = 1\n")
		newPath := writeTempFile(t, dir, "new.app.py", "import os\nvalue = 2\n")

		// One finding on the untouched line 1, one on the edited line 2.
		l := NewCommandLinter(map[string]string{
			".py": `printf '%s:1:1: W1 one\n%s:2:1: W2 two\n' {file} {file}`,
		}, time.Second)

		findings, err := Diff(context.Background(), l, oldPath, newPath)
		if err != nil {
			t.Fatalf("Diff() error: %v", err)
		}
		if len(findings) != 1 {
			t.Fatalf("len(findings) = %d, want 1", len(findings))
		}
		if findings[0].Line != 2 || findings[0].Message != "W2 two" {
			t.Errorf("findings[0] = %+v, want the line 2 finding", findings[0])
		}
	})

	t.Run("inserted lines count as changed", func(t *testing.T) {
		dir := t.TempDir()
		oldPath := writeTempFile(t, dir, "old.app.py", "import os\n")
		newPath := writeTempFile(t, dir, "new.app.py", "import os\nimport sys\n")

		l := NewCommandLinter(map[string]string{
			".py": `printf '%s:2:1: F401 sys imported but unused\n' {file}`,
		}, time.Second)

		findings, err := Diff(context.Background(), l, oldPath, newPath)
		if err != nil {
			t.Fatalf("Diff() error: %v", err)
		}
		if len(findings) != 1 || findings[0].Line != 2 {
			t.Errorf("findings = %+v, want the inserted line finding", findings)
		}
	})

	t.Run("unsupported file", func(t *testing.T) {
		dir := t.TempDir()
		oldPath := writeTempFile(t, dir, "old.notes.txt", "a\n")
		newPath := writeTempFile(t, dir, "new.notes.txt", "b\n")

		l := NewCommandLinter(map[string]string{".py": "echo {file}:1:1: E1 x"}, time.Second)
		findings, err := Diff(context.Background(), l, oldPath, newPath)
		if err != nil || findings != nil {
			t.Errorf("Diff() = %v, %v, want nil, nil", findings, err)
		}
	})

	t.Run("clean output", func(t *testing.T) {
		dir := t.TempDir()
		oldPath := writeTempFile(t, dir, "old.app.py", "value = 1\n")
		newPath := writeTempFile(t, dir, "new.app.py", "value = 2\n")

		l := NewCommandLinter(map[string]string{".py": "true"}, time.Second)
		findings, err := Diff(context.Background(), l, oldPath, newPath)
		if err != nil {
			t.Fatalf("Diff() error: %v", err)
		}
		if len(findings) != 0 {
			t.Errorf("findings = %+v, want none", findings)
		}
	})

	t.Run("identical files keep nothing", func(t *testing.T) {
		dir := t.TempDir()
		oldPath := writeTempFile(t, dir, "old.app.py", "value = 1\n")
		newPath := writeTempFile(t, dir, "new.app.py", "value = 1\n")

		l := NewCommandLinter(map[string]string{
			".py": `printf '%s:1:1: W1 pre existing\n' {file}`,
		}, time.Second)
		findings, err := Diff(context.Background(), l, oldPath, newPath)
		if err != nil {
			t.Fatalf("Diff() error: %v", err)
		}
		if len(findings) != 0 {
			t.Errorf("findings = %+v, want pre existing issues filtered out", findings)
		}
	})
}

func TestChangedLines(t *testing.T) {
	dir := t.TempDir()
	oldPath := writeTempFile(t, dir, "old.txt", "a\nb\nc\n")
	newPath := writeTempFile(t, dir, "new.txt", "a\nB\nc\nd\n")

	changed, err := changedLines(oldPath, newPath)
	if err != nil {
		t.Fatalf("changedLines() error: %v", err)
	}
	for _, line := range []int{2, 4} {
		if !changed[line] {
			t.Errorf("changed[%d] = false, want true", line)
		}
	}
	for _, line := range []int{1, 3} {
		if changed[line] {
			t.Errorf("changed[%d] = true, want false", line)
		}
	}
}
