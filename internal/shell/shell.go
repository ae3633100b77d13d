package shell

import (
	"bytes"
	"context"
	"os/exec"
	"syscall"
	"time"
)

// Result carries the captured output of one command.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	TimedOut bool
}

// Runner executes commands through `sh -c` with a bounded runtime. Each
// command gets its own process group so a timeout kills the whole
// pipeline, not just the shell.
type Runner struct {
	Timeout time.Duration
}

func NewRunner(timeout time.Duration) *Runner {
	return &Runner{Timeout: timeout}
}

// Run executes command in dir (empty means the inherited working
// directory) and captures both output streams. A non-zero exit is not an
// error; spawn failures and context cancellation are.
func (r *Runner) Run(ctx context.Context, dir, command string) (*Result, error) {
	cmd := exec.Command("sh", "-c", command)
	cmd.Dir = dir
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	var timeout <-chan time.Time
	if r.Timeout > 0 {
		t := time.NewTimer(r.Timeout)
		defer t.Stop()
		timeout = t.C
	}

	res := &Result{}
	select {
	case err := <-done:
		if err != nil {
			exitErr, ok := err.(*exec.ExitError)
			if !ok {
				return nil, err
			}
			res.ExitCode = exitErr.ExitCode()
		}
	case <-timeout:
		killProcessGroup(cmd)
		<-done
		res.TimedOut = true
		res.ExitCode = -1
	case <-ctx.Done():
		killProcessGroup(cmd)
		<-done
		return nil, ctx.Err()
	}

	res.Stdout = stdout.String()
	res.Stderr = stderr.String()
	return res, nil
}

func killProcessGroup(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	if pgid, err := syscall.Getpgid(cmd.Process.Pid); err == nil {
		syscall.Kill(-pgid, syscall.SIGKILL)
	} else {
		cmd.Process.Kill()
	}
}
