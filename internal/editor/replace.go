package editor

import (
	"regexp"
	"strings"
)

// applyReplace computes the new content for one str_replace call. The
// content, oldStr and newStr arrive tab-expanded and sel has already been
// validated, so this is a pure function over the selector variant. The
// caller persists the returned content and records history.
func applyReplace(path, content string, sel selector, oldStr, newStr string) (string, error) {
	switch sel.kind {
	case selDeleteLines:
		return deleteLines(content, sel.lines), nil
	case selDeleteRange:
		return deleteRange(content, sel.start, sel.end), nil
	case selLineNumbers:
		return replaceOnLines(content, sel.lines, oldStr, newStr, sel.regex)
	case selLineRange:
		nums := make([]int, 0, sel.end-sel.start+1)
		for n := sel.start; n <= sel.end; n++ {
			nums = append(nums, n)
		}
		return replaceOnLines(content, nums, oldStr, newStr, sel.regex)
	case selAllOccurrences:
		if sel.regex {
			re, err := compilePattern(oldStr, true)
			if err != nil {
				return "", err
			}
			return re.ReplaceAllString(content, newStr), nil
		}
		// Literal mode replaces per line, so a needle containing a
		// newline never matches here even though it would match in
		// first-occurrence mode.
		lines := splitLines(content)
		for i := range lines {
			lines[i] = strings.ReplaceAll(lines[i], oldStr, newStr)
		}
		return joinLines(lines), nil
	default: // selFirstOccurrence
		if sel.regex {
			return replaceFirstMatch(content, oldStr, newStr)
		}
		switch count := strings.Count(content, oldStr); {
		case count == 0:
			return "", errNotFound(path, oldStr)
		case count > 1:
			return "", errAmbiguousMatch(oldStr, occurrenceLines(content, oldStr))
		}
		return strings.Replace(content, oldStr, newStr, 1), nil
	}
}

func deleteLines(content string, nums []int) string {
	drop := make(map[int]struct{}, len(nums))
	for _, n := range nums {
		drop[n-1] = struct{}{}
	}
	lines := splitLines(content)
	kept := make([]string, 0, len(lines))
	for i, line := range lines {
		if _, gone := drop[i]; !gone {
			kept = append(kept, line)
		}
	}
	return joinLines(kept)
}

func deleteRange(content string, start, end int) string {
	lines := splitLines(content)
	kept := make([]string, 0, len(lines))
	for i, line := range lines {
		if n := i + 1; n < start || n > end {
			kept = append(kept, line)
		}
	}
	return joinLines(kept)
}

// replaceOnLines applies the substitution to the named 1-based lines only.
// Indexes past the end of the file are skipped, not reported; every match
// within a targeted line is replaced.
func replaceOnLines(content string, nums []int, oldStr, newStr string, useRegex bool) (string, error) {
	var re *regexp.Regexp
	if useRegex {
		var err error
		re, err = compilePattern(oldStr, true)
		if err != nil {
			return "", err
		}
	}
	lines := splitLines(content)
	for _, n := range nums {
		i := n - 1
		if i >= len(lines) {
			continue
		}
		if useRegex {
			lines[i] = re.ReplaceAllString(lines[i], newStr)
		} else {
			lines[i] = strings.ReplaceAll(lines[i], oldStr, newStr)
		}
	}
	return joinLines(lines), nil
}

// replaceFirstMatch substitutes only the first regex match. No match means
// the content comes back unchanged; that is a successful outcome, unlike
// the literal path which demands exactly one occurrence.
func replaceFirstMatch(content, pattern, repl string) (string, error) {
	re, err := compilePattern(pattern, false)
	if err != nil {
		return "", err
	}
	m := re.FindStringSubmatchIndex(content)
	if m == nil {
		return content, nil
	}
	out := make([]byte, 0, len(content)+len(repl))
	out = append(out, content[:m[0]]...)
	out = re.ExpandString(out, repl, content, m)
	out = append(out, content[m[1]:]...)
	return string(out), nil
}

// compilePattern compiles oldStr as a regular expression, with dot
// matching newline when dotall is set. First-occurrence mode compiles
// without dotall; every other regex mode uses it.
func compilePattern(pattern string, dotall bool) (*regexp.Regexp, error) {
	expr := pattern
	if dotall {
		expr = "(?s)" + pattern
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errInvalidParam(CmdStrReplace, "old_str", pattern, "It should be a valid regular expression.")
	}
	return re, nil
}
