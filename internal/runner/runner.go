// Package runner provides the headless execution modes: one command from
// the command line, or a JSONL session on stdin.
package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/linedit/linedit/internal/editor"
	"github.com/linedit/linedit/internal/logging"
	"github.com/linedit/linedit/internal/stats"
)

// maxRequestLine bounds one JSONL request. file_text payloads can be
// large, so the cap is generous.
const maxRequestLine = 16 * 1024 * 1024

// Runner executes raw JSON requests against one Editor and answers each
// with one JSON result. Failures are reported in-band through the result's
// error field, never as bare text.
type Runner struct {
	ed     *editor.Editor
	log    *logging.Logger
	stats  *stats.SessionStats
	pretty bool
}

func New(ed *editor.Editor, log *logging.Logger, pretty bool) *Runner {
	if log == nil {
		log = logging.Nop()
	}
	return &Runner{
		ed:     ed,
		log:    log,
		stats:  stats.New(),
		pretty: pretty,
	}
}

// Stats exposes the counters accumulated so far.
func (r *Runner) Stats() *stats.SessionStats { return r.stats }

// RunOnce executes a single raw JSON request and writes its result. The
// return value is the process exit code: 0 on success, 1 when the command
// failed.
func (r *Runner) RunOnce(ctx context.Context, raw string, w io.Writer) int {
	res := r.execute(ctx, []byte(raw))
	r.write(w, res)
	if res.Error != "" {
		return 1
	}
	return 0
}

// RunSession reads JSONL requests from in until EOF, answering each on its
// own line. A malformed line produces an error result, not a session
// abort; only a read failure ends the session early.
func (r *Runner) RunSession(ctx context.Context, in io.Reader, w io.Writer) error {
	sessionID := uuid.NewString()
	start := time.Now()
	r.log.SessionStarted(sessionID, "stdin")

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), maxRequestLine)
	commands := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		commands++
		r.write(w, r.execute(ctx, []byte(line)))
	}
	r.log.SessionFinished(sessionID, commands, time.Since(start))
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read requests: %w", err)
	}
	return nil
}

func (r *Runner) execute(ctx context.Context, raw []byte) editor.Result {
	start := time.Now()
	req, err := editor.DecodeRequest(raw)
	if err != nil {
		r.stats.RecordCommand("", "", time.Since(start), err)
		return editor.ErrorResult("", err)
	}
	res, err := r.ed.Do(ctx, req)
	r.stats.RecordCommand(req.Command, req.Path, time.Since(start), err)
	if err != nil {
		return editor.ErrorResult(req.Path, err)
	}
	return *res
}

func (r *Runner) write(w io.Writer, res editor.Result) {
	var (
		data []byte
		err  error
	)
	if r.pretty {
		data, err = json.MarshalIndent(res, "", "  ")
	} else {
		data, err = json.Marshal(res)
	}
	if err != nil {
		data = []byte(fmt.Sprintf(`{"output":"","error":%q,"path":"","prev_exist":false}`, err.Error()))
	}
	fmt.Fprintln(w, string(data))
}
