package editor

import "strings"

// The line model is a plain split on '\n': splitLines followed by joinLines
// reproduces the input byte for byte, including a trailing empty element for
// content ending in a newline. Line numbers are 1-based at the command
// surface and 0-based internally; conversions happen at the call sites, not
// here.

func splitLines(content string) []string {
	return strings.Split(content, "\n")
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

func numLines(content string) int {
	return strings.Count(content, "\n") + 1
}

// ExpandTabs replaces each tab with spaces up to the next multiple of
// tabWidth, counting columns in runes and resetting the column on '\n' and
// '\r'. A tabWidth of zero or less removes tabs outright. This matches how
// the command surface normalizes text before any comparison, so needles and
// file content always agree on columns.
func ExpandTabs(s string, tabWidth int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 16)
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			if tabWidth > 0 {
				pad := tabWidth - col%tabWidth
				b.WriteString(strings.Repeat(" ", pad))
				col += pad
			}
		case '\n', '\r':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}

// newlinesBefore counts the newlines preceding the first occurrence of
// needle in content. An absent needle counts every newline, which anchors
// snippets at the last line.
func newlinesBefore(content, needle string) int {
	idx := strings.Index(content, needle)
	if idx < 0 {
		return strings.Count(content, "\n")
	}
	return strings.Count(content[:idx], "\n")
}

// lineOfOffset returns the 1-based line number containing byte offset off.
func lineOfOffset(content string, off int) int {
	if off > len(content) {
		off = len(content)
	}
	return strings.Count(content[:off], "\n") + 1
}

// occurrenceLines returns the 1-based starting line of every occurrence of
// needle in content. The scan advances one byte past each hit, so
// self-overlapping needles report every starting position.
func occurrenceLines(content, needle string) []int {
	var lines []int
	start := 0
	for start <= len(content) {
		idx := strings.Index(content[start:], needle)
		if idx < 0 {
			break
		}
		abs := start + idx
		lines = append(lines, lineOfOffset(content, abs))
		start = abs + 1
	}
	return lines
}
