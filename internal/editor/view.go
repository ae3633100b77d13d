package editor

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// view handles the view command for both files and directories.
func (e *Editor) view(ctx context.Context, req *Request) (*Result, error) {
	info, err := os.Stat(req.Path)
	if err != nil {
		return nil, errReadFailure(req.Path, err)
	}
	if info.IsDir() {
		return e.viewDirectory(ctx, req)
	}
	return e.viewFile(req)
}

func (e *Editor) viewFile(req *Request) (*Result, error) {
	content, err := e.readFile(req.Path)
	if err != nil {
		return nil, err
	}
	startLine := 1
	if len(req.ViewRange) == 0 {
		return &Result{
			Output:    e.makeOutput(content, req.Path, startLine),
			Path:      req.Path,
			PrevExist: true,
		}, nil
	}
	if len(req.ViewRange) != 2 {
		return nil, errInvalidParam(CmdView, "view_range", req.ViewRange,
			"It should be a list of two integers.")
	}

	lines := splitLines(content)
	numLines := len(lines)
	startLine, endLine := req.ViewRange[0], req.ViewRange[1]
	if startLine < 1 || startLine > numLines {
		return nil, errInvalidParam(CmdView, "view_range", req.ViewRange,
			fmt.Sprintf("Its first element `%d` should be within the range of lines of the file: %s.",
				startLine, formatIntList([]int{1, numLines})))
	}
	if endLine > numLines {
		return nil, errInvalidParam(CmdView, "view_range", req.ViewRange,
			fmt.Sprintf("Its second element `%d` should be smaller than the number of lines in the file: `%d`.",
				endLine, numLines))
	}
	if endLine != -1 && endLine < startLine {
		return nil, errInvalidParam(CmdView, "view_range", req.ViewRange,
			fmt.Sprintf("Its second element `%d` should be greater than or equal to the first element `%d`.",
				endLine, startLine))
	}

	if endLine == -1 {
		content = joinLines(lines[startLine-1:])
	} else {
		content = joinLines(lines[startLine-1 : endLine])
	}
	return &Result{
		Output:    e.makeOutput(content, req.Path, startLine),
		Path:      req.Path,
		PrevExist: true,
	}, nil
}

// viewDirectory lists entries up to two levels deep, hiding dotfiles and
// reporting how many were hidden at the top level.
func (e *Editor) viewDirectory(ctx context.Context, req *Request) (*Result, error) {
	if len(req.ViewRange) > 0 {
		return nil, errInvalidParam(CmdView, "view_range", req.ViewRange,
			"The `view_range` parameter is not allowed when `path` points to a directory.")
	}
	path := req.Path

	// -mindepth 1 keeps the directory itself out of the count.
	hidden, err := e.sh.Run(ctx, "", fmt.Sprintf(`find -L %s -mindepth 1 -maxdepth 1 -name '.*'`, path))
	if err != nil {
		return nil, errReadFailure(path, err)
	}
	hiddenCount := 0
	if trimmed := strings.TrimSpace(hidden.Stdout); trimmed != "" {
		hiddenCount = len(strings.Split(trimmed, "\n"))
	}

	listing, err := e.sh.Run(ctx, "",
		fmt.Sprintf(`find -L %s -maxdepth 2 -not \( -path '%s/\.*' -o -path '%s/*/\.*' \) | sort`, path, path, path))
	if err != nil {
		return nil, errReadFailure(path, err)
	}

	stdout := truncateOutput(listing.Stdout, e.cfg.Editor.MaxOutputChars, directoryTruncatedNotice)
	stderr := listing.Stderr
	if strings.TrimSpace(stderr) == "" {
		stderr = ""
		out := fmt.Sprintf("Here's the files and directories up to 2 levels deep in %s, excluding hidden items:\n%s",
			path, strings.TrimRight(stdout, "\n"))
		if hiddenCount > 0 {
			out += fmt.Sprintf("\n\n%d hidden files/directories in this directory are excluded. You can use \"ls -la %s\" to see them.",
				hiddenCount, path)
		}
		stdout = out
	}
	return &Result{
		Output:    stdout,
		Error:     stderr,
		Path:      path,
		PrevExist: true,
	}, nil
}
