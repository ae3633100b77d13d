package editor

import "strings"

// ToolName identifies this command surface in schemas and error text.
const ToolName = "linedit"

// The five commands, in their documented order.
const (
	CmdView       = "view"
	CmdCreate     = "create"
	CmdStrReplace = "str_replace"
	CmdInsert     = "insert"
	CmdUndoEdit   = "undo_edit"
)

// Commands lists every recognized command in documented order.
func Commands() []string {
	return []string{CmdView, CmdCreate, CmdStrReplace, CmdInsert, CmdUndoEdit}
}

func allowedCommands() string {
	return strings.Join(Commands(), ", ")
}

// Request carries one command invocation. Pointer fields distinguish
// "absent" from a zero value where that changes behavior: a missing
// new_str means delete, a present empty one means replace with nothing.
type Request struct {
	Command     string  `json:"command"`
	Path        string  `json:"path"`
	FileText    *string `json:"file_text,omitempty"`
	ViewRange   []int   `json:"view_range,omitempty"`
	OldStr      *string `json:"old_str,omitempty"`
	NewStr      *string `json:"new_str,omitempty"`
	InsertLine  *int    `json:"insert_line,omitempty"`
	LineNumbers []int   `json:"line_numbers,omitempty"`
	LineRange   []int   `json:"line_range,omitempty"`
	LineAll     bool    `json:"line_all,omitempty"`
	DeleteLines []int   `json:"delete_lines,omitempty"`
	DeleteRange []int   `json:"delete_range,omitempty"`
	Regex       bool    `json:"regex,omitempty"`
	EnableLint  *bool   `json:"enable_linting,omitempty"`
}

// requiredParams names each command's required parameters in the order
// they are reported when missing.
var requiredParams = map[string][]string{
	CmdCreate:     {"file_text"},
	CmdStrReplace: {"old_str"},
	CmdInsert:     {"insert_line", "new_str"},
}

func (r *Request) hasParam(name string) bool {
	switch name {
	case "file_text":
		return r.FileText != nil
	case "old_str":
		return r.OldStr != nil
	case "new_str":
		return r.NewStr != nil
	case "insert_line":
		return r.InsertLine != nil
	}
	return false
}

func checkRequired(r *Request) error {
	for _, p := range requiredParams[r.Command] {
		if !r.hasParam(p) {
			return errMissingArg(r.Command, p)
		}
	}
	return nil
}
