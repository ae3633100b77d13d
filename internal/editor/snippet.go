package editor

import (
	"fmt"
	"strings"
)

// makeOutput renders content the way `cat -n` would: a banner naming what
// is shown, then every line prefixed with its right-aligned number and a
// tab. Content is clipped to maxChars before tabs are expanded and numbers
// attached, so the numbering always reflects what is actually shown.
func makeOutput(content, description string, startLine, tabWidth, maxChars int) string {
	content = truncateOutput(content, maxChars, fileTruncatedNotice)
	content = ExpandTabs(content, tabWidth)
	lines := splitLines(content)
	numbered := make([]string, len(lines))
	for i, line := range lines {
		numbered[i] = fmt.Sprintf("%6d\t%s", i+startLine, line)
	}
	return fmt.Sprintf("Here's the result of running `cat -n` on %s:\n", description) +
		strings.Join(numbered, "\n") + "\n"
}

// clampLines slices lines[lo:hi) with out-of-range bounds pulled back into
// the valid window instead of panicking.
func clampLines(lines []string, lo, hi int) []string {
	if lo < 0 {
		lo = 0
	}
	if hi > len(lines) {
		hi = len(lines)
	}
	if lo > hi {
		lo = hi
	}
	return lines[lo:hi]
}
