package editor

// Description summarizes the tool for clients that advertise it.
const Description = "Custom editing tool for viewing, creating and editing files\n" +
	"* State is persistent across command calls\n" +
	"* If `path` is a file, `view` displays the result of applying `cat -n`. If `path` is a directory, `view` lists non-hidden files and directories up to 2 levels deep\n" +
	"* The `create` command cannot be used if the specified `path` already exists as a file\n" +
	"* If a `command` generates a long output, it will be truncated and marked with `<response clipped>`\n" +
	"* The `undo_edit` command will revert the last edit made to the file at `path`\n" +
	"\n" +
	"Notes for using the `str_replace` command:\n" +
	"* The `old_str` parameter should match EXACTLY one or more consecutive lines from the original file. Be mindful of whitespaces!\n" +
	"* The `new_str` parameter should contain the edited lines that should replace the `old_str`\n" +
	"* Use `line_numbers`, `line_range`, `line_all`, `delete_lines` or `delete_range` to target specific lines instead of the first unique match\n"

// JSONSchema describes the accepted arguments for every command.
func JSONSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"command": map[string]any{
				"description": "The command to run. Allowed options are: `view`, `create`, `str_replace`, `insert`, `undo_edit`.",
				"enum":        Commands(),
				"type":        "string",
			},
			"path": map[string]any{
				"description": "Absolute path to file or directory, e.g. `/workspace/file.py` or `/workspace`.",
				"type":        "string",
			},
			"file_text": map[string]any{
				"description": "Required parameter of `create` command, with the content of the file to be created.",
				"type":        "string",
			},
			"old_str": map[string]any{
				"description": "Required parameter of `str_replace` command containing the string in `path` to replace.",
				"type":        "string",
			},
			"new_str": map[string]any{
				"description": "Optional parameter of `str_replace` command containing the new string (if not given, no string will be added). Required parameter of `insert` command containing the string to insert.",
				"type":        "string",
			},
			"insert_line": map[string]any{
				"description": "Required parameter of `insert` command. The `new_str` will be inserted AFTER the line `insert_line` of `path`.",
				"type":        "integer",
			},
			"view_range": map[string]any{
				"description": "Optional parameter of `view` command when `path` points to a file. If none is given, the full file is shown. If provided, the file will be shown in the indicated line number range, e.g. [11, 12] will show lines 11 and 12. Indexing at 1 to start. Setting `[start_line, -1]` shows all lines from `start_line` to the end of the file.",
				"type":        "array",
				"items":       map[string]any{"type": "integer"},
			},
			"line_numbers": map[string]any{
				"description": "Optional parameter of `str_replace` command. A list of 1-indexed line numbers where the replacement should occur.",
				"type":        "array",
				"items":       map[string]any{"type": "integer"},
			},
			"line_range": map[string]any{
				"description": "Optional parameter of `str_replace` command. A pair [start, end] of 1-indexed lines (inclusive) limiting where the replacement occurs.",
				"type":        "array",
				"items":       map[string]any{"type": "integer"},
			},
			"line_all": map[string]any{
				"description": "Optional parameter of `str_replace` command. If true, all occurrences of `old_str` will be replaced.",
				"type":        "boolean",
			},
			"delete_lines": map[string]any{
				"description": "Optional parameter of `str_replace` command. A list of 1-indexed line numbers to delete. Takes precedence over every other targeting parameter.",
				"type":        "array",
				"items":       map[string]any{"type": "integer"},
			},
			"delete_range": map[string]any{
				"description": "Optional parameter of `str_replace` command. A pair [start, end] of 1-indexed lines (inclusive) to delete. Takes precedence over everything except `delete_lines`.",
				"type":        "array",
				"items":       map[string]any{"type": "integer"},
			},
			"regex": map[string]any{
				"description": "Optional parameter of `str_replace` command. If true, `old_str` will be treated as a regular expression.",
				"type":        "boolean",
			},
			"enable_linting": map[string]any{
				"description": "Optional parameter of `str_replace` and `insert` commands. If true, the edited file is linted and issues on the changed lines are reported.",
				"type":        "boolean",
			},
		},
		"required": []string{"command", "path"},
	}
}
