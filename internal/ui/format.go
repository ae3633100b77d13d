package ui

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// MakePrompt creates a colored prompt with white text on gray background
func MakePrompt(text string) string {
	// ANSI codes for white on gray background
	colorStart := "\033[97;100m"
	colorEnd := "\033[0m"
	return colorStart + text + colorEnd
}

// FormatArgs formats request arguments for compact display
func FormatArgs(args map[string]any) string {
	if len(args) == 0 {
		return ""
	}

	var parts []string
	for key, val := range args {
		var valStr string
		switch v := val.(type) {
		case string:
			// Truncate long strings
			if len(v) > 50 {
				valStr = fmt.Sprintf("%q", v[:47]+"...")
			} else {
				valStr = fmt.Sprintf("%q", v)
			}
		case float64, int, bool:
			valStr = fmt.Sprintf("%v", v)
		default:
			// For complex types, use JSON
			jsonBytes, _ := json.Marshal(v)
			valStr = string(jsonBytes)
		}
		parts = append(parts, fmt.Sprintf("%s=%s", key, valStr))
	}
	return strings.Join(parts, ", ")
}

// FormatDuration formats a duration in a human-readable way, omitting zero values
func FormatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}
	return strings.Join(parts, " ")
}

// FormatChars formats character count in a human-readable way (e.g., "1.5k")
func FormatChars(chars int) string {
	if chars < 1000 {
		return fmt.Sprintf("%d", chars)
	}
	k := float64(chars) / 1000.0
	if k < 10 {
		return fmt.Sprintf("%.1fk", k)
	}
	return fmt.Sprintf("%.0fk", k)
}

// SummarizeOutput extracts size info from command output for status lines
func SummarizeOutput(output string) string {
	charCount := len(output)
	if charCount == 0 {
		return "empty output"
	}
	lineCount := strings.Count(output, "\n")
	if lineCount == 0 {
		lineCount = 1
	}
	return fmt.Sprintf("%d lines, %s chars", lineCount, FormatChars(charCount))
}
