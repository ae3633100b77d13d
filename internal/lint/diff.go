package lint

import (
	"context"
	"os"

	"github.com/pmezard/go-difflib/difflib"
)

// Diff lints newPath and keeps only the findings on lines that changed
// relative to oldPath, so an edit is not blamed for issues it did not
// introduce. If the diff itself cannot be computed the findings are
// returned unfiltered.
func Diff(ctx context.Context, l Linter, oldPath, newPath string) ([]Finding, error) {
	if !l.Supports(newPath) {
		return nil, nil
	}
	findings, err := l.Lint(ctx, newPath)
	if err != nil || len(findings) == 0 {
		return nil, err
	}
	changed, err := changedLines(oldPath, newPath)
	if err != nil {
		return findings, nil
	}
	var kept []Finding
	for _, f := range findings {
		if changed[f.Line] {
			kept = append(kept, f)
		}
	}
	return kept, nil
}

// changedLines returns the 1-based numbers of lines in newPath that are
// inserted or replaced relative to oldPath.
func changedLines(oldPath, newPath string) (map[int]bool, error) {
	oldData, err := os.ReadFile(oldPath)
	if err != nil {
		return nil, err
	}
	newData, err := os.ReadFile(newPath)
	if err != nil {
		return nil, err
	}
	matcher := difflib.NewMatcher(
		difflib.SplitLines(string(oldData)),
		difflib.SplitLines(string(newData)),
	)
	changed := make(map[int]bool)
	for _, op := range matcher.GetOpCodes() {
		if op.Tag == 'e' {
			continue
		}
		for n := op.J1 + 1; n <= op.J2; n++ {
			changed[n] = true
		}
	}
	return changed, nil
}
