package editor

import "fmt"

// applyInsert splices newStr's lines into content after the first
// insertLine existing lines (0 prepends, numLines appends) and builds the
// preview window around the insertion point. Both inputs arrive
// tab-expanded. The snippet always contains every inserted line, padded
// with up to window lines of existing context on each side.
func applyInsert(content string, insertLine int, newStr string, window int) (newContent, snippet string, err error) {
	lines := splitLines(content)
	total := len(lines)
	if insertLine < 0 || insertLine > total {
		return "", "", errInvalidParam(CmdInsert, "insert_line", insertLine,
			fmt.Sprintf("It should be within the range of lines of the file: %s", formatIntList([]int{0, total})))
	}

	inserted := splitLines(newStr)
	merged := make([]string, 0, total+len(inserted))
	merged = append(merged, lines[:insertLine]...)
	merged = append(merged, inserted...)
	merged = append(merged, lines[insertLine:]...)

	preview := make([]string, 0, len(inserted)+2*window)
	preview = append(preview, lines[max(0, insertLine-window):insertLine]...)
	preview = append(preview, inserted...)
	preview = append(preview, lines[insertLine:min(total, insertLine+window)]...)

	return joinLines(merged), joinLines(preview), nil
}
