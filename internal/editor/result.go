package editor

// Result is the structured outcome of one command. Output carries the
// caller-facing text; OldContent/NewContent carry the file states around a
// mutation so callers can diff or display them.
type Result struct {
	Output     string `json:"output"`
	Error      string `json:"error,omitempty"`
	Path       string `json:"path"`
	PrevExist  bool   `json:"prev_exist"`
	OldContent string `json:"old_content,omitempty"`
	NewContent string `json:"new_content,omitempty"`
}

// ErrorResult shapes a failed command into the same Result structure the
// success path uses, for callers that report errors in-band.
func ErrorResult(path string, err error) Result {
	return Result{
		Error: err.Error(),
		Path:  path,
	}
}
