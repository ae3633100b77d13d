package lint

import "context"

// Finding is one issue reported by a linter, positioned 1-based.
type Finding struct {
	Path    string `json:"path"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Message string `json:"message"`
}

// Linter checks a single file. Implementations are called with temporary
// copies of edited content, never the live file, and must treat their own
// failures as "no findings" rather than surfacing them into an edit.
type Linter interface {
	// Supports reports whether this linter can check files like path.
	Supports(path string) bool

	// Lint returns the findings for the file at path.
	Lint(ctx context.Context, path string) ([]Finding, error)
}
