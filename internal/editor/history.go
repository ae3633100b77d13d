package editor

// History holds per-path stacks of pre-mutation snapshots for undo. Each
// Editor owns one instance; nothing here is global and nothing touches the
// filesystem, so independent editors never see each other's edits.
type History struct {
	snapshots map[string][]string
}

func NewHistory() *History {
	return &History{snapshots: make(map[string][]string)}
}

// Record pushes the content that was current before a successful mutation.
// Depth is unbounded; entries live until undone or the process exits.
func (h *History) Record(path, content string) {
	h.snapshots[path] = append(h.snapshots[path], content)
}

// Undo pops and returns the most recent snapshot for path.
func (h *History) Undo(path string) (string, error) {
	stack := h.snapshots[path]
	if len(stack) == 0 {
		return "", errNoHistory(path)
	}
	content := stack[len(stack)-1]
	h.snapshots[path] = stack[:len(stack)-1]
	return content, nil
}

// Depth reports how many undo steps are recorded for path.
func (h *History) Depth(path string) int {
	return len(h.snapshots[path])
}
