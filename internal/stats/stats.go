// Package stats provides statistics tracking for editing sessions.
package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"
)

// SessionStats tracks cumulative counters across one editing session.
type SessionStats struct {
	ViewCount       int
	CreateCount     int
	StrReplaceCount int
	InsertCount     int
	UndoEditCount   int
	Succeeded       int
	Failed          int
	TotalTime       time.Duration

	touched map[string]bool
}

func New() *SessionStats {
	return &SessionStats{touched: make(map[string]bool)}
}

// RecordCommand notes one executed command. Successful mutating commands
// mark their path as touched; view never does.
func (s *SessionStats) RecordCommand(command, path string, d time.Duration, err error) {
	switch command {
	case "view":
		s.ViewCount++
	case "create":
		s.CreateCount++
	case "str_replace":
		s.StrReplaceCount++
	case "insert":
		s.InsertCount++
	case "undo_edit":
		s.UndoEditCount++
	}
	s.TotalTime += d
	if err != nil {
		s.Failed++
		return
	}
	s.Succeeded++
	if command != "view" && path != "" {
		s.touched[path] = true
	}
}

// FilesTouched returns the mutated paths in sorted order.
func (s *SessionStats) FilesTouched() []string {
	paths := make([]string, 0, len(s.touched))
	for p := range s.touched {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// SessionStatsJSON is the JSON output format for session stats
type SessionStatsJSON struct {
	Commands struct {
		View       int `json:"view"`
		Create     int `json:"create"`
		StrReplace int `json:"str_replace"`
		Insert     int `json:"insert"`
		UndoEdit   int `json:"undo_edit"`
		Total      int `json:"total"`
	} `json:"commands"`
	Outcomes struct {
		Succeeded int `json:"succeeded"`
		Failed    int `json:"failed"`
	} `json:"outcomes"`
	FilesTouched []string `json:"files_touched"`
	Timing       struct {
		TotalSeconds float64 `json:"total_seconds"`
	} `json:"timing"`
}

// ToJSON converts SessionStats to its JSON representation
func (s *SessionStats) ToJSON() SessionStatsJSON {
	var j SessionStatsJSON
	j.Commands.View = s.ViewCount
	j.Commands.Create = s.CreateCount
	j.Commands.StrReplace = s.StrReplaceCount
	j.Commands.Insert = s.InsertCount
	j.Commands.UndoEdit = s.UndoEditCount
	j.Commands.Total = s.ViewCount + s.CreateCount + s.StrReplaceCount + s.InsertCount + s.UndoEditCount
	j.Outcomes.Succeeded = s.Succeeded
	j.Outcomes.Failed = s.Failed
	j.FilesTouched = s.FilesTouched()
	j.Timing.TotalSeconds = s.TotalTime.Seconds()
	return j
}

// Print outputs the session stats in a formatted JSON block to stdout
func (s *SessionStats) Print() {
	s.PrintTo(os.Stdout)
}

// PrintTo outputs the session stats in a formatted JSON block to the given writer
func (s *SessionStats) PrintTo(w io.Writer) {
	j := s.ToJSON()
	jsonBytes, _ := json.MarshalIndent(j, "", "  ")
	fmt.Fprintln(w, "=== SESSION STATS START ===")
	fmt.Fprintln(w, string(jsonBytes))
	fmt.Fprintln(w, "=== SESSION STATS END ===")
}
