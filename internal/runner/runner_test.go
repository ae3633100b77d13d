package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/linedit/linedit/internal/config"
	"github.com/linedit/linedit/internal/editor"
)

func newTestRunner(t *testing.T, pretty bool) (*Runner, string) {
	t.Helper()
	cfg := config.Default()
	cfg.Editor.Workdir = t.TempDir()
	ed, err := editor.New(cfg, nil)
	if err != nil {
		t.Fatalf("editor.New() error: %v", err)
	}
	return New(ed, nil, pretty), cfg.Editor.Workdir
}

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func decodeResult(t *testing.T, line string) editor.Result {
	t.Helper()
	var res editor.Result
	if err := json.Unmarshal([]byte(line), &res); err != nil {
		t.Fatalf("result line %q is not valid JSON: %v", line, err)
	}
	return res
}

func TestRunOnce(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, dir := newTestRunner(t, false)
		path := writeFixture(t, dir, "f.txt", "hello\nworld")

		var out bytes.Buffer
		raw := fmt.Sprintf(`{"command":"view","path":%q}`, path)
		code := r.RunOnce(context.Background(), raw, &out)
		if code != 0 {
			t.Errorf("RunOnce() = %d, want 0", code)
		}
		res := decodeResult(t, strings.TrimSpace(out.String()))
		if !strings.Contains(res.Output, "     1\thello\n     2\tworld") {
			t.Errorf("Output = %q, want the numbered file", res.Output)
		}
		if res.Error != "" {
			t.Errorf("Error = %q, want empty", res.Error)
		}
	})

	t.Run("command failure", func(t *testing.T) {
		r, dir := newTestRunner(t, false)
		path := writeFixture(t, dir, "f.txt", "hello")

		var out bytes.Buffer
		raw := fmt.Sprintf(`{"command":"drop","path":%q}`, path)
		code := r.RunOnce(context.Background(), raw, &out)
		if code != 1 {
			t.Errorf("RunOnce() = %d, want 1", code)
		}
		res := decodeResult(t, strings.TrimSpace(out.String()))
		if !strings.Contains(res.Error, "Unrecognized command drop") {
			t.Errorf("Error = %q, want the unknown command message", res.Error)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		r, _ := newTestRunner(t, false)
		var out bytes.Buffer
		code := r.RunOnce(context.Background(), `{"command":`, &out)
		if code != 1 {
			t.Errorf("RunOnce() = %d, want 1", code)
		}
		res := decodeResult(t, strings.TrimSpace(out.String()))
		if !strings.HasPrefix(res.Error, "invalid arguments:") {
			t.Errorf("Error = %q, want an invalid arguments message", res.Error)
		}
	})

	t.Run("pretty output", func(t *testing.T) {
		r, dir := newTestRunner(t, true)
		path := writeFixture(t, dir, "f.txt", "hello")

		var out bytes.Buffer
		raw := fmt.Sprintf(`{"command":"view","path":%q}`, path)
		r.RunOnce(context.Background(), raw, &out)
		if !strings.HasPrefix(out.String(), "{\n  \"output\"") {
			t.Errorf("output = %q, want indented JSON", out.String())
		}
	})
}

func TestRunSession(t *testing.T) {
	t.Run("answers each request on its own line", func(t *testing.T) {
		r, dir := newTestRunner(t, false)
		path := filepath.Join(dir, "session.txt")

		input := strings.Join([]string{
			fmt.Sprintf(`{"command":"create","path":%q,"file_text":"first\nsecond"}`, path),
			"",
			fmt.Sprintf(`{"command":"str_replace","path":%q,"old_str":"first","new_str":"FIRST"}`, path),
			fmt.Sprintf(`{"command":"view","path":%q}`, path),
		}, "\n") + "\n"

		var out bytes.Buffer
		if err := r.RunSession(context.Background(), strings.NewReader(input), &out); err != nil {
			t.Fatalf("RunSession() error: %v", err)
		}

		lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
		if len(lines) != 3 {
			t.Fatalf("len(lines) = %d, want 3 result lines", len(lines))
		}
		created := decodeResult(t, lines[0])
		if !strings.HasPrefix(created.Output, "File created successfully at:") {
			t.Errorf("lines[0] Output = %q, want the create confirmation", created.Output)
		}
		edited := decodeResult(t, lines[1])
		if !strings.Contains(edited.Output, "has been edited") {
			t.Errorf("lines[1] Output = %q, want the edit confirmation", edited.Output)
		}
		viewed := decodeResult(t, lines[2])
		if !strings.Contains(viewed.Output, "     1\tFIRST\n     2\tsecond") {
			t.Errorf("lines[2] Output = %q, want the final content", viewed.Output)
		}

		s := r.Stats()
		if s.CreateCount != 1 || s.StrReplaceCount != 1 || s.ViewCount != 1 {
			t.Errorf("stats = %d/%d/%d, want 1/1/1", s.CreateCount, s.StrReplaceCount, s.ViewCount)
		}
		if s.Succeeded != 3 || s.Failed != 0 {
			t.Errorf("outcomes = %d/%d, want 3/0", s.Succeeded, s.Failed)
		}
	})

	t.Run("bad line does not abort the session", func(t *testing.T) {
		r, dir := newTestRunner(t, false)
		path := writeFixture(t, dir, "keep.txt", "content")

		input := "not json at all\n" +
			fmt.Sprintf(`{"command":"view","path":%q}`, path) + "\n"

		var out bytes.Buffer
		if err := r.RunSession(context.Background(), strings.NewReader(input), &out); err != nil {
			t.Fatalf("RunSession() error: %v", err)
		}
		lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
		if len(lines) != 2 {
			t.Fatalf("len(lines) = %d, want 2 result lines", len(lines))
		}
		first := decodeResult(t, lines[0])
		if first.Error == "" {
			t.Error("lines[0] Error is empty, want a decode failure")
		}
		second := decodeResult(t, lines[1])
		if second.Error != "" {
			t.Errorf("lines[1] Error = %q, want the view to succeed", second.Error)
		}
		if r.Stats().Failed != 1 {
			t.Errorf("Failed = %d, want 1", r.Stats().Failed)
		}
	})

	t.Run("undo history survives across requests", func(t *testing.T) {
		r, dir := newTestRunner(t, false)
		path := filepath.Join(dir, "undo.txt")

		input := strings.Join([]string{
			fmt.Sprintf(`{"command":"create","path":%q,"file_text":"v1"}`, path),
			fmt.Sprintf(`{"command":"str_replace","path":%q,"old_str":"v1","new_str":"v2"}`, path),
			fmt.Sprintf(`{"command":"undo_edit","path":%q}`, path),
		}, "\n") + "\n"

		var out bytes.Buffer
		if err := r.RunSession(context.Background(), strings.NewReader(input), &out); err != nil {
			t.Fatalf("RunSession() error: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if string(data) != "v1" {
			t.Errorf("file content = %q, want %q", string(data), "v1")
		}
	})

	t.Run("empty input", func(t *testing.T) {
		r, _ := newTestRunner(t, false)
		var out bytes.Buffer
		if err := r.RunSession(context.Background(), strings.NewReader(""), &out); err != nil {
			t.Fatalf("RunSession() error: %v", err)
		}
		if out.Len() != 0 {
			t.Errorf("output = %q, want none", out.String())
		}
	})
}
