package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// InputModel wraps the textarea component for multi-line command input
type InputModel struct {
	textarea   textarea.Model
	history    []string
	historyIdx int
	submitted  bool
	cancelled  bool
	value      string
	prompt     string
	maxHeight  int
	quitting   bool
}

// adjustHeight adjusts the textarea height to fit content, up to maxHeight
func (m *InputModel) adjustHeight() {
	newHeight := m.textarea.LineCount()
	if newHeight > m.maxHeight {
		newHeight = m.maxHeight
	}
	if newHeight < 1 {
		newHeight = 1
	}
	m.textarea.SetHeight(newHeight)
}

// NewInputModel creates a new input model with the given prompt
func NewInputModel(prompt string, history []string) InputModel {
	ta := textarea.New()
	ta.Prompt = "" // The prompt renders on its own line above
	ta.Placeholder = "(Ctrl+J for newline, Enter to submit)"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0

	ta.SetHeight(1)
	ta.SetWidth(80)

	// Remove cursor line highlighting
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.BlurredStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	ta.FocusedStyle.Text = lipgloss.NewStyle()

	// Enter submits; Ctrl+J inserts the newline instead
	ta.KeyMap.InsertNewline.SetEnabled(false)

	ta.Focus()

	return InputModel{
		textarea:   ta,
		history:    history,
		historyIdx: -1,
		prompt:     prompt,
		maxHeight:  20,
	}
}

// Init initializes the input model
func (m InputModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles input events
func (m InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := msg.Width - 10
		if width < 40 {
			width = 40
		}
		m.textarea.SetWidth(width)

		m.maxHeight = msg.Height - 5
		if m.maxHeight < 5 {
			m.maxHeight = 5
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			m.value = m.textarea.Value()
			m.submitted = true
			m.quitting = true
			return m, tea.Quit

		case "ctrl+j":
			m.textarea.InsertString("\n")
			m.adjustHeight()
			return m, nil

		case "up":
			// History applies when the input is empty or already showing a
			// history entry with the cursor on its first line.
			if len(m.history) > 0 && (m.textarea.Value() == "" || (m.historyIdx >= 0 && m.textarea.Line() == 0)) {
				if m.historyIdx < len(m.history)-1 {
					m.historyIdx++
					m.setFromHistory()
				}
				return m, nil
			}

		case "down":
			if len(m.history) > 0 && (m.textarea.Value() == "" || (m.historyIdx >= 0 && m.textarea.Line() == m.textarea.LineCount()-1)) {
				if m.historyIdx > 0 {
					m.historyIdx--
					m.setFromHistory()
				} else if m.historyIdx == 0 {
					m.historyIdx = -1
					m.textarea.SetValue("")
					m.adjustHeight()
				}
				return m, nil
			}

		case "ctrl+c":
			m.cancelled = true
			m.quitting = true
			return m, tea.Quit

		case "esc":
			// ESC clears the current input, it does not exit
			m.textarea.SetValue("")
			m.adjustHeight()
			return m, nil
		}
	}

	beforeValue := m.textarea.Value()
	m.textarea, cmd = m.textarea.Update(msg)

	// Editing the text leaves history mode; plain navigation does not.
	if m.historyIdx >= 0 && m.textarea.Value() != beforeValue {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			key := keyMsg.String()
			if len(key) == 1 || key == "backspace" || key == "delete" || key == "ctrl+u" || key == "ctrl+k" {
				m.historyIdx = -1
			}
		}
	}

	m.adjustHeight()
	return m, cmd
}

// setFromHistory loads the selected history entry and moves the cursor to
// its beginning.
func (m *InputModel) setFromHistory() {
	m.textarea.SetValue(m.history[len(m.history)-1-m.historyIdx])
	m.adjustHeight()
	m.textarea.CursorStart()
	for m.textarea.Line() > 0 {
		m.textarea.CursorUp()
	}
	m.textarea.CursorStart()
}

// View renders the input model
func (m InputModel) View() string {
	// If quitting, return empty string to clear the display
	if m.quitting {
		return ""
	}
	return m.prompt + "\n" + m.textarea.View()
}

// Value returns the submitted value
func (m InputModel) Value() string {
	return m.value
}

// Submitted returns whether the input was submitted
func (m InputModel) Submitted() bool {
	return m.submitted
}

// Cancelled returns whether the input was cancelled
func (m InputModel) Cancelled() bool {
	return m.cancelled
}

// LoadHistory loads history from a file
func LoadHistory(filepath string) ([]string, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}

	// Null byte delimiters preserve multi-line entries
	entries := strings.Split(string(data), "\x00")
	var history []string
	for _, entry := range entries {
		if strings.TrimSpace(entry) != "" {
			history = append(history, entry)
		}
	}
	return history, nil
}

// SaveHistory saves history to a file
func SaveHistory(filepath string, history []string) error {
	// Limit history size to last 1000 entries
	const maxHistory = 1000
	if len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}

	return os.WriteFile(filepath, []byte(strings.Join(history, "\x00")), 0644)
}
