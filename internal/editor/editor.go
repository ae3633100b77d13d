package editor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/linedit/linedit/internal/config"
	"github.com/linedit/linedit/internal/lint"
	"github.com/linedit/linedit/internal/logging"
	"github.com/linedit/linedit/internal/shell"
)

// Editor executes the five editing commands against the filesystem. One
// Editor holds one in-memory undo history, so everything that should share
// undo state must share the instance.
type Editor struct {
	cfg     *config.Config
	history *History
	linter  lint.Linter
	sh      *shell.Runner
	log     *logging.Logger
	workdir string
}

// New builds an Editor from cfg. A nil cfg gets the defaults and a nil
// logger is replaced with a no-op one. The working directory anchoring
// relative-path suggestions comes from cfg, falling back to the process
// working directory.
func New(cfg *config.Config, log *logging.Logger) (*Editor, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logging.Nop()
	}
	workdir := cfg.Editor.Workdir
	if workdir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolve working directory: %w", err)
		}
		workdir = wd
	}
	return &Editor{
		cfg:     cfg,
		history: NewHistory(),
		linter:  lint.NewCommandLinter(cfg.Lint.Commands, cfg.LintTimeout()),
		sh:      shell.NewRunner(cfg.ShellTimeout()),
		log:     log,
		workdir: workdir,
	}, nil
}

// Workdir returns the directory used to anchor relative-path suggestions.
func (e *Editor) Workdir() string { return e.workdir }

// LintEnabled reports the configured default for post-edit linting.
func (e *Editor) LintEnabled() bool { return e.cfg.Lint.Enabled }

// SetLintEnabled flips the configured default. A request carrying
// enable_linting still wins for that call.
func (e *Editor) SetLintEnabled(v bool) { e.cfg.Lint.Enabled = v }

// Do executes one command. Failures come back as *CommandError values
// whose Message is ready to show to the caller verbatim.
func (e *Editor) Do(ctx context.Context, req *Request) (*Result, error) {
	start := time.Now()
	res, err := e.dispatch(ctx, req)
	e.log.CommandExecuted(req.Command, req.Path, time.Since(start), err)
	return res, err
}

func (e *Editor) dispatch(ctx context.Context, req *Request) (*Result, error) {
	if err := validatePath(req.Command, req.Path, e.workdir); err != nil {
		return nil, err
	}
	if err := checkAccess(e.cfg, req.Command, req.Path); err != nil {
		return nil, err
	}
	switch req.Command {
	case CmdView:
		return e.view(ctx, req)
	case CmdCreate:
		if err := checkRequired(req); err != nil {
			return nil, err
		}
		return e.create(req)
	case CmdStrReplace:
		if err := checkRequired(req); err != nil {
			return nil, err
		}
		// Compared before tab expansion: a replacement that only changes
		// tabs to spaces is still a replacement.
		if req.NewStr != nil && *req.NewStr == *req.OldStr {
			return nil, errNoOp(*req.NewStr)
		}
		return e.strReplace(ctx, req)
	case CmdInsert:
		if err := checkRequired(req); err != nil {
			return nil, err
		}
		return e.insert(ctx, req)
	case CmdUndoEdit:
		return e.undoEdit(req)
	}
	return nil, errUnknownCommand(req.Command)
}

func (e *Editor) create(req *Request) (*Result, error) {
	fileText := *req.FileText
	if err := e.writeFile(req.Path, fileText); err != nil {
		return nil, err
	}
	e.history.Record(req.Path, fileText)
	return &Result{
		Output:     fmt.Sprintf("File created successfully at: %s", req.Path),
		Path:       req.Path,
		PrevExist:  false,
		NewContent: fileText,
	}, nil
}

func (e *Editor) strReplace(ctx context.Context, req *Request) (*Result, error) {
	raw, err := e.readFile(req.Path)
	if err != nil {
		return nil, err
	}
	tabWidth := e.cfg.Editor.TabWidth
	fileContent := ExpandTabs(raw, tabWidth)
	oldStr := ExpandTabs(*req.OldStr, tabWidth)
	newStr := ""
	if req.NewStr != nil {
		newStr = ExpandTabs(*req.NewStr, tabWidth)
	}

	sel, err := resolveSelector(req, numLines(fileContent))
	if err != nil {
		return nil, err
	}
	newContent, err := applyReplace(req.Path, fileContent, sel, oldStr, newStr)
	if err != nil {
		return nil, err
	}
	if err := e.writeFile(req.Path, newContent); err != nil {
		return nil, err
	}
	e.history.Record(req.Path, fileContent)

	res := &Result{
		Path:       req.Path,
		PrevExist:  true,
		OldContent: fileContent,
		NewContent: newContent,
	}
	switch sel.kind {
	case selDeleteLines:
		res.Output = fmt.Sprintf("The file %s has been edited. Specified lines have been deleted.", req.Path)
		return res, nil
	case selDeleteRange:
		res.Output = fmt.Sprintf("The file %s has been edited. The specified line range was deleted.", req.Path)
		return res, nil
	}

	// The snippet is anchored where oldStr first occurs in the previous
	// content, even when line selectors edited elsewhere.
	window := e.cfg.Editor.SnippetContextWindow
	anchor := newlinesBefore(fileContent, oldStr)
	startLine := max(0, anchor-window)
	endLine := anchor + window + strings.Count(newStr, "\n")
	snippet := joinLines(clampLines(splitLines(newContent), startLine, endLine+1))

	msg := fmt.Sprintf("The file %s has been edited. ", req.Path)
	msg += e.makeOutput(snippet, fmt.Sprintf("a snippet of %s", req.Path), startLine+1)
	if e.lintEnabled(req) {
		msg += "\n" + e.runLinting(ctx, fileContent, newContent, req.Path) + "\n"
	}
	msg += "Review the changes and make sure they are as expected. Edit the file again if necessary."
	res.Output = msg
	return res, nil
}

func (e *Editor) insert(ctx context.Context, req *Request) (*Result, error) {
	raw, err := e.readFile(req.Path)
	if err != nil {
		return nil, err
	}
	tabWidth := e.cfg.Editor.TabWidth
	fileText := ExpandTabs(raw, tabWidth)
	newStr := ExpandTabs(*req.NewStr, tabWidth)
	insertLine := *req.InsertLine
	window := e.cfg.Editor.SnippetContextWindow

	newContent, snippet, err := applyInsert(fileText, insertLine, newStr, window)
	if err != nil {
		return nil, err
	}
	if err := e.writeFile(req.Path, newContent); err != nil {
		return nil, err
	}
	e.history.Record(req.Path, fileText)

	msg := fmt.Sprintf("The file %s has been edited. ", req.Path)
	msg += e.makeOutput(snippet, "a snippet of the edited file", max(1, insertLine-window+1))
	if e.lintEnabled(req) {
		msg += "\n" + e.runLinting(ctx, fileText, newContent, req.Path) + "\n"
	}
	msg += "Review the changes and make sure they are as expected (correct indentation, no duplicate lines, etc). Edit the file again if necessary."
	return &Result{
		Output:     msg,
		Path:       req.Path,
		PrevExist:  true,
		OldContent: fileText,
		NewContent: newContent,
	}, nil
}

func (e *Editor) undoEdit(req *Request) (*Result, error) {
	if e.history.Depth(req.Path) == 0 {
		return nil, errNoHistory(req.Path)
	}
	raw, err := e.readFile(req.Path)
	if err != nil {
		return nil, err
	}
	currentText := ExpandTabs(raw, e.cfg.Editor.TabWidth)
	oldText, err := e.history.Undo(req.Path)
	if err != nil {
		return nil, err
	}
	if err := e.writeFile(req.Path, oldText); err != nil {
		return nil, err
	}
	return &Result{
		Output:     fmt.Sprintf("Last edit to %s undone successfully. %s", req.Path, e.makeOutput(oldText, req.Path, 1)),
		Path:       req.Path,
		PrevExist:  true,
		OldContent: currentText,
		NewContent: oldText,
	}, nil
}

func (e *Editor) lintEnabled(req *Request) bool {
	if req.EnableLint != nil {
		return *req.EnableLint
	}
	return e.cfg.Lint.Enabled
}

// runLinting writes both versions to a scratch directory, lints the
// changed lines, and renders the result block. Lint trouble of any kind
// degrades to the no-issues message; it never fails the edit that
// triggered it.
func (e *Editor) runLinting(ctx context.Context, oldContent, newContent, path string) string {
	start := time.Now()
	findings := e.lintChanges(ctx, oldContent, newContent, path)
	e.log.LintExecuted(path, len(findings), time.Since(start))
	if len(findings) == 0 {
		return "No linting issues found in the changes."
	}
	lines := []string{"Linting issues found in the changes:"}
	for _, f := range findings {
		lines = append(lines, fmt.Sprintf("- Line %d, Column %d: %s", f.Line, f.Column, f.Message))
	}
	return strings.Join(lines, "\n") + "\n"
}

func (e *Editor) lintChanges(ctx context.Context, oldContent, newContent, path string) []lint.Finding {
	if e.linter == nil {
		return nil
	}
	dir := filepath.Join(os.TempDir(), "linedit-lint-"+uuid.NewString())
	if err := os.Mkdir(dir, 0o700); err != nil {
		return nil
	}
	defer os.RemoveAll(dir)

	// old.{name}/new.{name} keeps the extension visible to the linter.
	name := filepath.Base(path)
	oldPath := filepath.Join(dir, "old."+name)
	newPath := filepath.Join(dir, "new."+name)
	if err := os.WriteFile(oldPath, []byte(oldContent), 0o644); err != nil {
		return nil
	}
	if err := os.WriteFile(newPath, []byte(newContent), 0o644); err != nil {
		return nil
	}
	findings, err := lint.Diff(ctx, e.linter, oldPath, newPath)
	if err != nil {
		return nil
	}
	return findings
}

func (e *Editor) makeOutput(content, description string, startLine int) string {
	return makeOutput(content, description, startLine, e.cfg.Editor.TabWidth, e.cfg.Editor.MaxOutputChars)
}

func (e *Editor) readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errReadFailure(path, err)
	}
	return string(data), nil
}

// writeFile replaces path atomically: the content lands in a temp file in
// the same directory and is renamed over the target, so a crash never
// leaves a half-written file.
func (e *Editor) writeFile(path, content string) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".linedit-*")
	if err != nil {
		return errWriteFailure(path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errWriteFailure(path, err)
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errWriteFailure(path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errWriteFailure(path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errWriteFailure(path, err)
	}
	return nil
}
