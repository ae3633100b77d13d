package lint

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/linedit/linedit/internal/shell"
)

// CommandLinter runs an external lint command chosen by file extension and
// parses its "path:line:column: message" output. The command template is
// configured per extension with a {file} placeholder.
type CommandLinter struct {
	commands map[string]string
	runner   *shell.Runner
}

// NewCommandLinter builds a linter from an extension-to-command map, e.g.
// {".py": "flake8 --isolated {file}"}. Extensions are matched
// case-insensitively and include the leading dot.
func NewCommandLinter(commands map[string]string, timeout time.Duration) *CommandLinter {
	normalized := make(map[string]string, len(commands))
	for ext, cmd := range commands {
		normalized[strings.ToLower(ext)] = cmd
	}
	return &CommandLinter{
		commands: normalized,
		runner:   shell.NewRunner(timeout),
	}
}

func (c *CommandLinter) Supports(path string) bool {
	_, ok := c.commands[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Lint runs the configured command for the file's extension. A command
// that cannot be started (interpreter not installed, for instance) yields
// no findings instead of an error.
func (c *CommandLinter) Lint(ctx context.Context, path string) ([]Finding, error) {
	tmpl, ok := c.commands[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, nil
	}
	command := strings.ReplaceAll(tmpl, "{file}", shellQuote(path))
	res, err := c.runner.Run(ctx, "", command)
	if err != nil || res.TimedOut {
		return nil, nil
	}
	return ParseFindings(res.Stdout), nil
}

// ParseFindings extracts findings from linter output in the conventional
// "path:line:column: message" form. Lines without a parsable line number
// are skipped. A line whose column field does not parse keeps column 1 and
// folds the unparsed field back into the message, so near-miss formats
// still surface something useful.
func ParseFindings(output string) []Finding {
	var findings []Finding
	for _, raw := range strings.Split(output, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ":", 4)
		if len(parts) < 3 {
			continue
		}
		lineNo, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || lineNo < 1 {
			continue
		}
		f := Finding{Path: parts[0], Line: lineNo, Column: 1}
		if col, colErr := strconv.Atoi(strings.TrimSpace(parts[2])); colErr == nil {
			f.Column = col
			if len(parts) == 4 {
				f.Message = strings.TrimSpace(parts[3])
			}
		} else {
			msg := strings.TrimSpace(parts[2])
			if len(parts) == 4 {
				msg += " " + strings.TrimSpace(parts[3])
			}
			f.Message = strings.TrimSpace(msg)
		}
		findings = append(findings, f)
	}
	return findings
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
