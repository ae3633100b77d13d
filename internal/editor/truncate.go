package editor

import "unicode/utf8"

// Notices appended when output is clipped at the configured limit. Kept as
// single constants so the command output stays greppable.
const (
	fileTruncatedNotice = "<response clipped><NOTE>To save on context only part of this file has been shown to you. You should retry this tool after you have searched inside the file with `grep -n` in order to find the line numbers of what you are looking for.</NOTE>"

	directoryTruncatedNotice = "<response clipped><NOTE>To save on context only part of this directory has been shown to you. Use `ls -la` on specific subdirectories to explore the rest.</NOTE>"
)

// truncateOutput clips content at limit bytes, backing up to a rune
// boundary, and appends the notice. A limit of zero or less disables
// clipping.
func truncateOutput(content string, limit int, notice string) string {
	if limit <= 0 || len(content) <= limit {
		return content
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(content[cut]) {
		cut--
	}
	return content[:cut] + notice
}
