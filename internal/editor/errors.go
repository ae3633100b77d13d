package editor

import (
	"errors"
	"fmt"
)

// Kind classifies a command failure so callers can branch on the failure
// class without parsing messages.
type Kind string

const (
	KindMissingArg   Kind = "missing_required_arg"
	KindInvalidPath  Kind = "invalid_path"
	KindInvalidParam Kind = "invalid_parameter"
	KindNotFound     Kind = "not_found"
	KindAmbiguous    Kind = "ambiguous_match"
	KindNoOp         Kind = "no_op"
	KindNoHistory    Kind = "no_history"
	KindIOFailure    Kind = "io_failure"
)

// CommandError is the error type returned by every editor command. Message
// is the caller-facing text; Err carries the underlying cause for
// KindIOFailure.
type CommandError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *CommandError) Error() string {
	return e.Message
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ErrorKind returns the Kind of err, or "" if err is not a CommandError.
func ErrorKind(err error) Kind {
	var ce *CommandError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

func errMissingArg(command, parameter string) *CommandError {
	return &CommandError{
		Kind:    KindMissingArg,
		Message: fmt.Sprintf("Parameter `%s` is required for command: %s.", parameter, command),
	}
}

// invalidParamMessage builds the shared frame for rejected parameters: the
// parameter name, the command, the offending value, then the hint sentence.
func invalidParamMessage(command, parameter string, value any, hint string) string {
	msg := fmt.Sprintf("Invalid `%s` parameter for command `%s`: %s.", parameter, command, formatValue(value))
	if hint != "" {
		msg += " " + hint
	}
	return msg
}

func errInvalidParam(command, parameter string, value any, hint string) *CommandError {
	return &CommandError{
		Kind:    KindInvalidParam,
		Message: invalidParamMessage(command, parameter, value, hint),
	}
}

// errInvalidPath frames path failures as invalid `path` parameters, the
// same shape other parameter rejections use.
func errInvalidPath(command, path, hint string) *CommandError {
	return &CommandError{
		Kind:    KindInvalidPath,
		Message: invalidParamMessage(command, "path", path, hint),
	}
}

func errNoOp(newStr string) *CommandError {
	return &CommandError{
		Kind:    KindNoOp,
		Message: invalidParamMessage("str_replace", "new_str", newStr, "No replacement was performed. `new_str` and `old_str` must be different."),
	}
}

func errNotFound(path, oldStr string) *CommandError {
	return &CommandError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("No replacement was performed, old_str `%s` did not appear verbatim in %s.", oldStr, path),
	}
}

func errAmbiguousMatch(oldStr string, lines []int) *CommandError {
	return &CommandError{
		Kind:    KindAmbiguous,
		Message: fmt.Sprintf("No replacement was performed. Multiple occurrences of old_str `%s` in lines %s. Please ensure it is unique.", oldStr, formatIntList(lines)),
	}
}

func errNoHistory(path string) *CommandError {
	return &CommandError{
		Kind:    KindNoHistory,
		Message: fmt.Sprintf("No edit history found for %s.", path),
	}
}

func errReadFailure(path string, err error) *CommandError {
	return &CommandError{
		Kind:    KindIOFailure,
		Message: fmt.Sprintf("Ran into %v while trying to read %s", err, path),
		Err:     err,
	}
}

func errWriteFailure(path string, err error) *CommandError {
	return &CommandError{
		Kind:    KindIOFailure,
		Message: fmt.Sprintf("Ran into %v while trying to write to %s", err, path),
		Err:     err,
	}
}

// errLineBounds reports a selector index outside [1, numLines]. label is
// the selector's human name (line number, line range, delete lines,
// delete range); n is the offending bound.
func errLineBounds(label string, n, numLines int) *CommandError {
	return &CommandError{
		Kind:    KindInvalidParam,
		Message: fmt.Sprintf("Invalid %s: %d. Line numbers must be between 1 and %d.", label, n, numLines),
	}
}

func errReversedRange(label string, start, end int) *CommandError {
	return &CommandError{
		Kind:    KindInvalidParam,
		Message: fmt.Sprintf("Invalid %s: %s. Start line must be less than or equal to end line.", label, formatIntList([]int{start, end})),
	}
}

func errUnknownCommand(command string) *CommandError {
	return &CommandError{
		Kind:    KindInvalidParam,
		Message: fmt.Sprintf("Unrecognized command %s. The allowed commands for the %s tool are: %s", command, ToolName, allowedCommands()),
	}
}

// formatValue renders a value the way it should read inside an error
// message: int slices in list form, everything else via %v.
func formatValue(v any) string {
	switch x := v.(type) {
	case []int:
		return formatIntList(x)
	case string:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}

// formatIntList renders ints as "[1, 2, 3]".
func formatIntList(ns []int) string {
	s := "["
	for i, n := range ns {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%d", n)
	}
	return s + "]"
}
